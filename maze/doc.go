// Package maze binds a coordinate space to a storage backend and exposes the
// single graph surface that generators, solvers, renderers and analysers use.
//
// What
//
//   - Graph: the CellID-level interface consumed by algorithms. Connect and
//     Disconnect set both directions of an edge in one call, so no caller
//     can produce an asymmetric edge.
//   - Maze[P]: the concrete binding of one space.Space[P] and one
//     storage.Backend, with point-level convenience methods.
//   - Path: an ordered, non-empty sequence of CellIDs where consecutive cells
//     are adjacent and connected. Paths are values; they hold no reference
//     back into the maze.
//   - Read helpers (Passages, DeadEnds, IsPerfect, Component, Equal,
//     CheckSymmetry) derived purely from the Graph surface.
//
// Lifecycle
//
//	space + backend ──New──▶ empty Maze ──generator──▶ perfect maze
//	        ──(braid)──▶ braided maze ──solver(s)──▶ Path values
//
// A Maze is mutated by exactly one generator at a time. Once generated it is
// treated as read-only, and any number of solvers may read it concurrently.
//
// Errors
//
//   - space.ErrOutOfBounds:        a CellID or point outside the space.
//   - ErrInvalidAdjacency:         the two cells are not neighbours.
//   - storage.ErrCapacityExceeded: the space does not fit the backend.
//   - ErrInvalidPath:              Path.Validate found a broken step.
//   - ErrAsymmetric:               CheckSymmetry found a one-sided edge.
package maze
