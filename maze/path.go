package maze

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/space"
)

// Path is an ordered sequence of cells where consecutive cells are adjacent
// and connected. The first element is the start, the last the goal.
type Path []space.CellID

// Edges returns the number of steps in p.
func (p Path) Edges() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Start returns the first cell, or space.NoCell for an empty path.
func (p Path) Start() space.CellID {
	if len(p) == 0 {
		return space.NoCell
	}
	return p[0]
}

// End returns the last cell, or space.NoCell for an empty path.
func (p Path) End() space.CellID {
	if len(p) == 0 {
		return space.NoCell
	}
	return p[len(p)-1]
}

// Clone returns an independent copy of p.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// Validate checks that p is non-empty and that every step crosses an open
// edge of g. Failures wrap ErrInvalidPath.
// Complexity: O(len(p) · degree).
func (p Path) Validate(g Graph) error {
	if len(p) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	n := space.CellID(g.Len())
	for i, id := range p {
		if id < 0 || id >= n {
			return fmt.Errorf("%w: step %d: cell %d outside space", ErrInvalidPath, i, id)
		}
		if i == 0 {
			continue
		}
		ok, err := g.IsConnected(p[i-1], id)
		if err != nil {
			return fmt.Errorf("%w: step %d: %v", ErrInvalidPath, i, err)
		}
		if !ok {
			return fmt.Errorf("%w: step %d: %d and %d are not connected", ErrInvalidPath, i, p[i-1], id)
		}
	}
	return nil
}

// LoopErase removes cycles from a walk so that every cell appears once,
// keeping the most recent route to each revisited cell.
// Complexity: O(len(walk)) time, O(len(walk)) memory.
func LoopErase(walk []space.CellID) Path {
	out := make(Path, 0, len(walk))
	at := make(map[space.CellID]int, len(walk))
	for _, id := range walk {
		if i, seen := at[id]; seen {
			for _, dropped := range out[i+1:] {
				delete(at, dropped)
			}
			out = out[:i+1]
			continue
		}
		at[id] = len(out)
		out = append(out, id)
	}
	return out
}
