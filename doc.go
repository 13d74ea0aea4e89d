// Package labyrinth is an engine for building, carving and solving mazes
// over arbitrary coordinate topologies: N-dimensional boxes, circular
// (polar) grids, hexagonal grids and plain graphs.
//
// What is a maze here?
//
//	A space (which cells exist and who neighbours whom) plus a storage
//	backend (which of those neighbour links are open passages). Generators
//	open passages, solvers walk them. Both see only the maze.Graph
//	interface, so every algorithm runs on every topology that provides
//	the geometry it needs.
//
// Packages:
//
//	space/    - coordinate spaces: Box, Strip, Polar, Hex, Network
//	storage/  - connection storage: bit-packed Inline, struct-per-cell Block
//	maze/     - Maze graph core, Path, read-side analysis
//	random/   - seeded, derivable random sources
//	generate/ - backtracker, hunt-and-kill, sidewinder, Aldous-Broder,
//	            Wilson, Kruskal, Prim, growing tree/forest, Eller (also
//	            streamed), n-ary tree, recursive division, unicursal,
//	            braid pass
//	solve/    - random mouse, wall follower, Pledge, Trémaux, BFS, A*
//	config/   - YAML run descriptions
//	export/   - msgpack snapshots
//	render/   - text drawing of planar boxes
//
// Quick ASCII example, a 3×2 box with one route from S to G:
//
//	+---+---+---+
//	| S   *   * |
//	+---+---+   +
//	|         G |
//	+---+---+---+
//
// The labyrinth command (cmd/labyrinth) wires all of the above together.
//
//	go install github.com/katalvlaran/labyrinth/cmd/labyrinth@latest
package labyrinth
