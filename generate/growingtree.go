package generate

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/random"
	"github.com/katalvlaran/labyrinth/space"
)

// Selector picks the index of the active cell to grow from, given the
// number of active cells (ordered oldest first).
type Selector func(n int, rng *rand.Rand) int

// Newest always grows the most recently added cell (recursive backtracker).
func Newest() Selector { return func(n int, _ *rand.Rand) int { return n - 1 } }

// Oldest always grows the earliest added cell.
func Oldest() Selector { return func(int, *rand.Rand) int { return 0 } }

// RandomCell grows a uniformly random active cell (Prim-like texture).
func RandomCell() Selector { return func(n int, rng *rand.Rand) int { return rng.Intn(n) } }

// Mixed grows the newest cell with probability p and a random one otherwise.
// p is clamped to [0, 1]; use ParseSelector for validation.
func Mixed(p float64) Selector {
	p = min(max(p, 0), 1)
	return func(n int, rng *rand.Rand) int {
		if random.Chance(rng, p) {
			return n - 1
		}
		return rng.Intn(n)
	}
}

// Selector names accepted by ParseSelector.
const (
	SelectNewest = "newest"
	SelectOldest = "oldest"
	SelectRandom = "random"
	SelectMixed  = "mixed"
)

// ParseSelector resolves a selector by name. p is the newest-probability of
// SelectMixed and must lie in [0, 1]; it is ignored otherwise.
func ParseSelector(name string, p float64) (Selector, error) {
	switch name {
	case "", SelectNewest:
		return Newest(), nil
	case SelectOldest:
		return Oldest(), nil
	case SelectRandom:
		return RandomCell(), nil
	case SelectMixed:
		if p < 0 || p > 1 {
			return nil, fmt.Errorf("%w: mixed probability %v outside [0, 1]", ErrInvalidOption, p)
		}
		return Mixed(p), nil
	}
	return nil, fmt.Errorf("%w: unknown selector %q", ErrInvalidOption, name)
}

// GrowingTree keeps a list of active cells. Each step grows the cell chosen
// by Select into a random unvisited neighbour, or retires it when none is
// left. A nil Select behaves as Newest.
//
// Complexity: O(V · degree) plus O(V) per mid-list removal.
type GrowingTree struct {
	Select Selector
}

// Generate implements Generator.
func (gt GrowingTree) Generate(g maze.Graph, rng *rand.Rand) error {
	rng, err := begin(g, rng)
	if err != nil {
		return err
	}
	defer g.ResetAux()

	start := space.CellID(rng.Intn(g.Len()))
	g.SetAux(start, visited)
	gr := grower{g: g, rng: rng, sel: gt.Select, active: []space.CellID{start}}
	return gr.run(nil)
}

// grower runs the shared active-list loop of GrowingTree and GrowingForest.
type grower struct {
	g      maze.Graph
	rng    *rand.Rand
	sel    Selector
	active []space.CellID
	buf    []space.CellID
}

// run grows until every cell is visited, seeding a fresh tree whenever the
// active list drains. onGrow, if set, is told about each new (parent, child) link.
func (gr *grower) run(onGrow func(parent, child space.CellID)) error {
	if gr.sel == nil {
		gr.sel = Newest()
	}
	roots := cursor{g: gr.g}
	for {
		for len(gr.active) > 0 {
			i := gr.sel(len(gr.active), gr.rng)
			cur := gr.active[i]
			gr.buf = neighboursWhere(gr.g, cur, false, gr.buf[:0])
			if len(gr.buf) == 0 {
				gr.retire(i)
				continue
			}
			next := gr.buf[gr.rng.Intn(len(gr.buf))]
			if err := gr.g.Connect(cur, next); err != nil {
				return err
			}
			gr.g.SetAux(next, visited)
			if onGrow != nil {
				onGrow(cur, next)
			}
			gr.active = append(gr.active, next)
		}
		root, ok := roots.next()
		if !ok {
			return nil
		}
		gr.g.SetAux(root, visited)
		if onGrow != nil {
			onGrow(space.NoCell, root)
		}
		gr.active = append(gr.active, root)
	}
}

// retire removes active[i] keeping the remaining order.
func (gr *grower) retire(i int) {
	switch i {
	case 0:
		gr.active = gr.active[1:]
	case len(gr.active) - 1:
		gr.active = gr.active[:i]
	default:
		gr.active = append(gr.active[:i], gr.active[i+1:]...)
	}
}
