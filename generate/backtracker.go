package generate

import (
	"math/rand"

	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/space"
)

// RecursiveBacktracker carves a perfect maze by randomized depth-first
// search. The recursion is an explicit stack, so depth is bounded only by
// memory.
//
// Complexity: O(V · degree) time, O(V) stack in the worst case.
type RecursiveBacktracker struct{}

// Generate implements Generator.
func (RecursiveBacktracker) Generate(g maze.Graph, rng *rand.Rand) error {
	rng, err := begin(g, rng)
	if err != nil {
		return err
	}
	defer g.ResetAux()

	var (
		stack []space.CellID
		buf   []space.CellID
	)
	carve := func(root space.CellID) error {
		g.SetAux(root, visited)
		stack = append(stack[:0], root)
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			buf = neighboursWhere(g, cur, false, buf[:0])
			if len(buf) == 0 {
				stack = stack[:len(stack)-1]
				continue
			}
			next := buf[rng.Intn(len(buf))]
			if err := g.Connect(cur, next); err != nil {
				return err
			}
			g.SetAux(next, visited)
			stack = append(stack, next)
		}
		return nil
	}

	if err = carve(space.CellID(rng.Intn(g.Len()))); err != nil {
		return err
	}
	c := cursor{g: g}
	for id, ok := c.next(); ok; id, ok = c.next() {
		if err = carve(id); err != nil {
			return err
		}
	}
	return nil
}
