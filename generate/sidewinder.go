package generate

import (
	"math/rand"

	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/space"
)

// Sidewinder carves a planar box row by row. The top row is one corridor;
// every later row is cut into runs of eastward passages, and each run is
// closed by a single passage north from one of its cells.
//
// Complexity: O(V) time, O(1) extra memory.
type Sidewinder struct{}

// Generate implements Generator.
func (Sidewinder) Generate(g maze.Graph, rng *rand.Rand) error {
	rng, err := begin(g, rng)
	if err != nil {
		return err
	}
	defer g.ResetAux()
	w, h, err := planar(g, "sidewinder")
	if err != nil {
		return err
	}

	for y := 0; y < h; y++ {
		row := space.CellID(y * w)
		run := 0
		for x := 0; x < w; x++ {
			id := row + space.CellID(x)
			if y == 0 {
				if x+1 < w {
					if err = g.Connect(id, id+1); err != nil {
						return err
					}
				}
				continue
			}
			if x+1 == w || rng.Intn(2) == 0 {
				pick := row + space.CellID(run+rng.Intn(x-run+1))
				if err = g.Connect(pick, pick-space.CellID(w)); err != nil {
					return err
				}
				run = x + 1
				continue
			}
			if err = g.Connect(id, id+1); err != nil {
				return err
			}
		}
	}
	return nil
}
