package generate

import (
	"math/rand"

	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/space"
)

// HuntAndKill walks randomly through unvisited cells until stuck, then
// hunts in id order for the first unvisited cell bordering a visited one,
// links it to a random visited neighbour and resumes the walk from there.
//
// Complexity: O(V² · degree) time in the worst case, O(1) extra memory.
type HuntAndKill struct{}

// Generate implements Generator.
func (HuntAndKill) Generate(g maze.Graph, rng *rand.Rand) error {
	rng, err := begin(g, rng)
	if err != nil {
		return err
	}
	defer g.ResetAux()

	var buf []space.CellID
	cur := space.CellID(rng.Intn(g.Len()))
	g.SetAux(cur, visited)
	low := cursor{g: g}
	for {
		// kill: walk until no unvisited neighbour remains
		for {
			buf = neighboursWhere(g, cur, false, buf[:0])
			if len(buf) == 0 {
				break
			}
			next := buf[rng.Intn(len(buf))]
			if err = g.Connect(cur, next); err != nil {
				return err
			}
			g.SetAux(next, visited)
			cur = next
		}

		// hunt
		first, ok := low.next()
		if !ok {
			return nil
		}
		found := false
		for id := first; id < space.CellID(g.Len()); id++ {
			if isVisited(g, id) {
				continue
			}
			buf = neighboursWhere(g, id, true, buf[:0])
			if len(buf) == 0 {
				continue
			}
			if err = g.Connect(id, buf[rng.Intn(len(buf))]); err != nil {
				return err
			}
			cur, found = id, true
			break
		}
		if !found {
			// nothing borders the carved region: start a new tree
			cur = first
		}
		g.SetAux(cur, visited)
	}
}
