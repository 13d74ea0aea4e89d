// Package config describes one labyrinth run (space, storage, generator,
// braid pass, solver, endpoints) as a YAML document and resolves it into
// the library's building blocks.
//
// Example document:
//
//	space:
//	  kind: box
//	  dims: [20, 12]
//	storage: inline
//	generator:
//	  name: growing-tree
//	  seed: 42
//	  selector: mixed
//	  mixed: 0.75
//	braid:
//	  dead_ends: 0.1
//	solver:
//	  name: astar
//	start: [0, 0]
//	goal: [19, 11]
//
// Parse decodes strictly (unknown keys are errors) and validates; Build
// turns a valid Run into a maze plus resolved start and goal cells.
package config
