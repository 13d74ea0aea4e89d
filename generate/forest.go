package generate

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/random"
	"github.com/katalvlaran/labyrinth/space"
)

// GrowingForest plants Seeds random roots and grows them together on one
// active list (see GrowingTree). The resulting trees are then joined by
// shuffled walls through a disjoint-set forest, as in Kruskal.
//
// Seeds must be at least 1; it is capped at the number of cells.
// Complexity: O(V · degree + E · α(V)) time, O(V + E) memory.
type GrowingForest struct {
	Seeds  int
	Select Selector
}

// Generate implements Generator.
func (gf GrowingForest) Generate(g maze.Graph, rng *rand.Rand) error {
	if gf.Seeds < 1 {
		return fmt.Errorf("%w: growing forest needs at least one seed, got %d", ErrInvalidOption, gf.Seeds)
	}
	rng, err := begin(g, rng)
	if err != nil {
		return err
	}
	defer g.ResetAux()

	n := g.Len()
	order, err := random.Perm(n, rng)
	if err != nil {
		return err
	}
	// label[c] is the tree c was grown into.
	label := make([]int, n)
	trees := 0
	gr := grower{g: g, rng: rng, sel: gf.Select}
	for _, i := range order[:min(gf.Seeds, n)] {
		id := space.CellID(i)
		g.SetAux(id, visited)
		label[id] = trees
		trees++
		gr.active = append(gr.active, id)
	}
	err = gr.run(func(parent, child space.CellID) {
		if parent == space.NoCell {
			label[child] = trees
			trees++
			return
		}
		label[child] = label[parent]
	})
	if err != nil {
		return err
	}

	walls := edges(g, func(a, b space.CellID) bool { return label[a] != label[b] })
	random.Shuffle(walls, rng)
	return join(g, newDSU(trees), walls, func(id space.CellID) int { return label[id] })
}
