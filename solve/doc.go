// Package solve finds paths through a maze.Graph.
//
// What
//
//   - RandomMouse:  random walk that only reverses at dead ends.
//   - WallFollower: keeps one hand on the wall; valid only on acyclic regions.
//   - Pledge:       wall following with a turn counter, for braided mazes.
//   - Tremaux:      marks passages 0..2 times; finds a path whenever one exists.
//   - BFS:          breadth-first search; fewest passages.
//   - AStar:        best-first search on g + space distance; fewest passages.
//
// Every solver returns a maze.Path from start to a cell satisfying the Goal,
// or an error. Walkers (mouse, wall follower, Pledge) return their walk
// with loops erased as they walk, so the path never repeats a cell and
// memory stays O(V).
//
// Why
//
//   - Solvers read the maze only. All bookkeeping (visited sets, marks,
//     parents) is local to one call, so any number of solvers can run on
//     the same finished maze concurrently.
//   - Options follow the functional style: invalid values are recorded and
//     surfaced as ErrOptionViolation when Solve runs.
//
// Errors
//
//   - ErrNoPath:          no goal cell is reachable from start.
//   - ErrInapplicable:    the algorithm cannot run on this maze or space.
//   - ErrStepLimit:       WithMaxSteps (or a walker's default bound) was hit.
//   - ErrOptionViolation: an option value is invalid.
//   - ErrInvalidGoal:     a nil goal predicate.
//   - space.ErrOutOfBounds: start or goal cell outside the maze.
//   - context errors from WithContext.
package solve
