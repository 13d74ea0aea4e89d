package generate

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/random"
	"github.com/katalvlaran/labyrinth/space"
)

// Braid adds passages to an existing maze until the share of dead ends
// (cells with exactly one open connection) among all cells is at most
// DeadEnds. Dead ends are visited in random order; each is linked to a
// closed neighbour, preferring neighbours that are dead ends too so one
// passage removes two of them.
//
// DeadEnds must lie in [0, 1]. With 0 every dead end that has a closed
// neighbour is removed. Cells whose every neighbour is already open stay
// as they are.
//
// Complexity: O(V · degree) time, O(V) memory.
type Braid struct {
	DeadEnds float64
}

// Generate implements Generator.
func (b Braid) Generate(g maze.Graph, rng *rand.Rand) error {
	if b.DeadEnds < 0 || b.DeadEnds > 1 {
		return fmt.Errorf("%w: dead-end fraction %v outside [0, 1]", ErrInvalidOption, b.DeadEnds)
	}
	rng, err := begin(g, rng)
	if err != nil {
		return err
	}
	defer g.ResetAux()

	var ends []space.CellID
	for id := range g.Cells() {
		if g.Degree(id) == 1 {
			ends = append(ends, id)
		}
	}
	target := int(b.DeadEnds * float64(g.Len()))
	count := len(ends)
	random.Shuffle(ends, rng)

	var closed, paired []space.CellID
	for _, id := range ends {
		if count <= target {
			break
		}
		if g.Degree(id) != 1 {
			continue
		}
		closed, paired = closed[:0], paired[:0]
		for _, adj := range g.Adjacent(id) {
			if g.Open(id, adj.Type) {
				continue
			}
			closed = append(closed, adj.Cell)
			if g.Degree(adj.Cell) == 1 {
				paired = append(paired, adj.Cell)
			}
		}
		pool := paired
		if len(pool) == 0 {
			pool = closed
		}
		if len(pool) == 0 {
			continue
		}
		mate := pool[rng.Intn(len(pool))]
		if g.Degree(mate) == 1 {
			count--
		}
		if err = g.Connect(id, mate); err != nil {
			return err
		}
		count--
	}
	return nil
}
