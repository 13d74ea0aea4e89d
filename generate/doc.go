// Package generate carves mazes: it mutates an empty maze.Graph into a
// spanning tree (a perfect maze) or a unicursal loop, and optionally braids
// it afterwards.
//
// What
//
//   - RecursiveBacktracker: randomized depth-first search on an explicit stack.
//   - HuntAndKill:          random walk until stuck, then scan for the first
//     unvisited cell beside a visited one.
//   - Sidewinder:           row runs closed by one northward passage (planar boxes).
//   - AldousBroder, Wilson: uniform spanning trees by (loop-erased) random walk.
//   - Kruskal:              shuffled edges merged through a disjoint-set forest.
//   - Prim:                 frontier growth under a pluggable Weighting policy.
//   - GrowingTree:          frontier growth under a pluggable Selector.
//   - GrowingForest:        several seeds grown at once, then joined Kruskal-style.
//   - Eller:                row-by-row sets (planar boxes), backed by EllerStream
//     for unbounded, resumable generation.
//   - NaryTree:             each cell links to a random earlier neighbour.
//   - RecursiveDivision:    iterative binary space partition of any box.
//   - Unicursal:            one closed corridor traced around a half-size
//     perfect maze (planar boxes with even sides).
//   - Braid:                post-pass that removes dead ends down to a target.
//
// Contract
//
// Every generator expects a maze whose connections are all closed (except
// Braid, RecursiveDivision and Unicursal, which do not care). The Aux tag of
// each cell is cleared before and after a run. On disconnected topologies (networks)
// each generator yields one tree per connected component.
//
// Randomness comes only from the *rand.Rand argument; a nil rng behaves as
// random.New(0). Equal seeds on equal spaces give bit-identical mazes on any
// storage backend.
//
// Errors
//
//   - ErrEmptySpace:          the maze has no cells.
//   - ErrUnsupportedTopology: the algorithm needs geometry the space lacks.
//   - ErrInvalidOption:       an option or parameter is out of range.
//   - ErrUnknownGenerator:    ByName got a name it does not know.
package generate
