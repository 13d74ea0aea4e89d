package generate

import (
	"math/rand"

	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/space"
)

// NaryTree links every cell to one random "earlier" neighbour, where
// earlier means discovered first by a breadth-first sweep from the lowest
// id of each component. On a planar box the earlier neighbours are exactly
// north and west, so this is the Binary Tree algorithm.
//
// Complexity: O(V · degree) time, O(V) memory.
type NaryTree struct{}

// Generate implements Generator.
func (NaryTree) Generate(g maze.Graph, rng *rand.Rand) error {
	rng, err := begin(g, rng)
	if err != nil {
		return err
	}
	defer g.ResetAux()

	n := g.Len()
	rank := make([]int, n)
	for i := range rank {
		rank[i] = -1
	}
	order := make([]space.CellID, 0, n)
	for root := range g.Cells() {
		if rank[root] >= 0 {
			continue
		}
		rank[root] = len(order)
		order = append(order, root)
		for i := len(order) - 1; i < len(order); i++ {
			for _, adj := range g.Adjacent(order[i]) {
				if rank[adj.Cell] < 0 {
					rank[adj.Cell] = len(order)
					order = append(order, adj.Cell)
				}
			}
		}
	}

	var earlier []space.CellID
	for _, id := range order {
		earlier = earlier[:0]
		for _, adj := range g.Adjacent(id) {
			if rank[adj.Cell] < rank[id] {
				earlier = append(earlier, adj.Cell)
			}
		}
		if len(earlier) == 0 {
			continue
		}
		if err = g.Connect(id, earlier[rng.Intn(len(earlier))]); err != nil {
			return err
		}
	}
	return nil
}
