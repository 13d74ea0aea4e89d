package generate

import (
	"math/rand"

	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/random"
	"github.com/katalvlaran/labyrinth/space"
)

// AldousBroder performs a random walk over each component and links every
// cell to the cell it was first entered from. The result is a uniformly
// distributed spanning tree.
//
// Complexity: expected O(cover time) steps, O(V) memory for components.
type AldousBroder struct{}

// Generate implements Generator.
func (AldousBroder) Generate(g maze.Graph, rng *rand.Rand) error {
	rng, err := begin(g, rng)
	if err != nil {
		return err
	}
	defer g.ResetAux()

	for _, comp := range components(g) {
		cur := random.Pick(comp, rng)
		g.SetAux(cur, visited)
		for remaining := len(comp) - 1; remaining > 0; {
			adj := g.Adjacent(cur)
			next := adj[rng.Intn(len(adj))].Cell
			if !isVisited(g, next) {
				if err = g.Connect(cur, next); err != nil {
					return err
				}
				g.SetAux(next, visited)
				remaining--
			}
			cur = next
		}
	}
	return nil
}

// Wilson grows a tree by loop-erased random walks: each walk starts at a
// cell outside the tree and is committed, minus its cycles, once it reaches
// the tree. The result is a uniformly distributed spanning tree.
//
// Complexity: expected O(mean hitting time · V), O(V) memory.
type Wilson struct{}

// Generate implements Generator.
func (Wilson) Generate(g maze.Graph, rng *rand.Rand) error {
	rng, err := begin(g, rng)
	if err != nil {
		return err
	}
	defer g.ResetAux()

	// next[c] is the latest exit taken from c by the current walk. Later
	// exits overwrite earlier ones, which erases loops implicitly.
	next := make([]space.CellID, g.Len())
	for _, comp := range components(g) {
		order := append([]space.CellID(nil), comp...)
		random.Shuffle(order, rng)
		g.SetAux(order[0], visited)
		for _, start := range order[1:] {
			if isVisited(g, start) {
				continue
			}
			for cur := start; !isVisited(g, cur); {
				adj := g.Adjacent(cur)
				next[cur] = adj[rng.Intn(len(adj))].Cell
				cur = next[cur]
			}
			for cur := start; !isVisited(g, cur); cur = next[cur] {
				if err = g.Connect(cur, next[cur]); err != nil {
					return err
				}
				g.SetAux(cur, visited)
			}
		}
	}
	return nil
}
