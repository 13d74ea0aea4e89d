package generate

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/space"
)

// region is a half-open box [lo, hi) of cell coordinates.
type region struct {
	lo, hi [space.MaxDims]int
}

// RecursiveDivision opens every passage of a box, then repeatedly splits
// a region with a wall across its longest axis, leaving one random gap,
// until no region is wider than one cell. Regions wait on an explicit stack.
//
// Works on boxes of any dimension. The maze need not start closed.
// Complexity: O(V · log V) time, O(log V) stack.
type RecursiveDivision struct{}

// Generate implements Generator.
func (RecursiveDivision) Generate(g maze.Graph, rng *rand.Rand) error {
	rng, err := begin(g, rng)
	if err != nil {
		return err
	}
	defer g.ResetAux()

	shaped, ok := g.Topology().(space.Shaped)
	if !ok || g.Topology().TypeCount() != 2*len(shaped.Shape()) {
		return fmt.Errorf("%w: recursive division needs a box", ErrUnsupportedTopology)
	}
	shape := shaped.Shape()
	dims := len(shape)
	var stride [space.MaxDims]int
	s := 1
	for a := 0; a < dims; a++ {
		stride[a] = s
		s *= shape[a]
	}

	for id := range g.Cells() {
		for _, adj := range g.Adjacent(id) {
			if adj.Cell > id {
				if err = g.Connect(id, adj.Cell); err != nil {
					return err
				}
			}
		}
	}

	var whole region
	copy(whole.hi[:], shape)
	stack := []region{whole}
	var at [space.MaxDims]int
	for len(stack) > 0 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// longest axis, ties broken at random
		axis, span, ties := -1, 1, 0
		for a := 0; a < dims; a++ {
			ext := r.hi[a] - r.lo[a]
			switch {
			case ext > span:
				axis, span, ties = a, ext, 1
			case ext == span && axis >= 0:
				ties++
				if rng.Intn(ties) == 0 {
					axis = a
				}
			}
		}
		if axis < 0 {
			continue
		}

		// the wall closes passages between layer cut-1 and cut along axis
		cut := r.lo[axis] + 1 + rng.Intn(span-1)
		var gap [space.MaxDims]int
		for a := 0; a < dims; a++ {
			if a != axis {
				gap[a] = r.lo[a] + rng.Intn(r.hi[a]-r.lo[a])
			}
		}

		at = r.lo
		at[axis] = cut - 1
		for {
			isGap := true
			id := 0
			for a := 0; a < dims; a++ {
				id += at[a] * stride[a]
				if a != axis && at[a] != gap[a] {
					isGap = false
				}
			}
			if !isGap {
				c := space.CellID(id)
				if err = g.Disconnect(c, c+space.CellID(stride[axis])); err != nil {
					return err
				}
			}
			if !odometer(&at, &r, axis, dims) {
				break
			}
		}

		lower, upper := r, r
		lower.hi[axis] = cut
		upper.lo[axis] = cut
		stack = append(stack, lower, upper)
	}
	return nil
}

// odometer advances at through every coordinate of r with at[fixed] held
// still, reporting false once the walk wraps around.
func odometer(at *[space.MaxDims]int, r *region, fixed, dims int) bool {
	for a := 0; a < dims; a++ {
		if a == fixed {
			continue
		}
		at[a]++
		if at[a] < r.hi[a] {
			return true
		}
		at[a] = r.lo[a]
	}
	return false
}
