// Package storage holds per-cell connectivity state for mazes.
//
// What
//
//   - Backend: the storage contract, addressed only by space.CellID.
//     Connection/SetConnection read and write one "is this edge open" bit;
//     Aux/SetAux expose a small per-cell tag that generators use for
//     transient markers (visited, frontier) during a single run.
//   - Inline: bit-packed encoding. Each cell is a power-of-two slot inside a
//     []uint64 holding one bit per connection type plus two aux bits.
//     Minimal memory footprint, O(1) access by shifts and masks.
//   - Block: one small struct per cell with 32 connection bits, a full aux
//     byte and a 16-bit payload Tag for exporters.
//
// Both encodings give identical observable connectivity; only the footprint
// and the width of the aux channel differ (Inline: 2 bits, Block: 8 bits).
//
// Backends do not validate CellIDs: the maze layer checks bounds once so
// that the storage hot path stays branch-free.
//
// Errors
//
//   - ErrCapacityExceeded: the per-cell requirement (connection types) or the
//     cell count does not fit the encoding. Raised at bind time, never by
//     silent truncation.
//   - ErrUnknownBackend:   ByName was given an unrecognised backend name.
package storage
