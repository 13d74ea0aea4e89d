package generate

import (
	"math/rand"

	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/random"
	"github.com/katalvlaran/labyrinth/space"
)

// edge is an undirected pair of adjacent cells with a < b.
type edge struct{ a, b space.CellID }

// edges lists every adjacent pair of g once. When keep is non-nil only
// pairs for which it returns true are listed.
func edges(g maze.Graph, keep func(a, b space.CellID) bool) []edge {
	var out []edge
	for id := range g.Cells() {
		for _, adj := range g.Adjacent(id) {
			if adj.Cell > id && (keep == nil || keep(id, adj.Cell)) {
				out = append(out, edge{id, adj.Cell})
			}
		}
	}
	return out
}

// Kruskal shuffles every wall and opens it when it separates two distinct
// trees of a disjoint-set forest.
//
// Complexity: O(E · α(V)) time after an O(E) shuffle, O(V + E) memory.
type Kruskal struct{}

// Generate implements Generator.
func (Kruskal) Generate(g maze.Graph, rng *rand.Rand) error {
	rng, err := begin(g, rng)
	if err != nil {
		return err
	}
	defer g.ResetAux()

	walls := edges(g, nil)
	random.Shuffle(walls, rng)
	sets := newDSU(g.Len())
	return join(g, sets, walls, func(id space.CellID) int { return int(id) })
}

// join opens each wall whose sides lie in different sets.
func join(g maze.Graph, sets *dsu, walls []edge, set func(space.CellID) int) error {
	for _, w := range walls {
		if !sets.union(set(w.a), set(w.b)) {
			continue
		}
		if err := g.Connect(w.a, w.b); err != nil {
			return err
		}
	}
	return nil
}
