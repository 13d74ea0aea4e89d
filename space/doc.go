// Package space defines coordinate spaces: the set of valid points of a maze
// topology, their dense integer addresses and the adjacency between them.
//
// What
//
//   - Topology: the CellID-level view used by generators and solvers.
//     Len, TypeCount, Adjacent (append-style, always finite) and Distance
//     (an admissible lower bound on the number of moves between two cells).
//   - Space[P]: the point-level view for callers and renderers. It adds the
//     Point↔CellID bijection, per-point neighbours and connection type names.
//   - Optional capabilities discovered by type assertion:
//   - Oriented: cyclic clockwise headings (wall followers, Pledge).
//   - Shaped:   row-major box extents (Sidewinder, Eller, Recursive Division).
//
// Implementations
//
//   - Box:     N-dimensional rectangular grid (1..MaxDims axes).
//   - Strip:   planar grid of fixed width and unbounded height.
//   - Polar:   concentric rings whose sector count doubles as the radius grows.
//   - Hex:     axial-coordinate parallelogram of hexagons.
//   - Network: graph-only space built from an explicit edge list.
//
// Invariants
//
//   - CellID values are contiguous from 0 to Len()-1 for finite spaces.
//   - Adjacency is symmetric: if a lists b, then b lists a.
//   - Each adjacent pair is linked by exactly one ConnectionType per side.
//   - Boundary cells report fewer neighbours; there are no sentinel cells.
//
// Errors
//
//   - ErrOutOfBounds:  a point or CellID is not part of the space.
//   - ErrInvalidShape: constructor arguments describe no valid space.
package space
