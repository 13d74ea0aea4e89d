package generate

import (
	"container/heap"
	"math/rand"

	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/space"
)

// WeightFunc returns the cost of growing the tree from a tree cell into a
// frontier cell. Lower costs are taken first.
type WeightFunc func(from, to space.CellID) int64

// Weighting builds the WeightFunc for one run over a maze of the given
// size, drawing any randomness it needs from rng.
type Weighting func(cells int, rng *rand.Rand) WeightFunc

// EdgeWeights assigns every candidate passage an independent random weight
// the first time it reaches the frontier (true Prim's).
func EdgeWeights() Weighting {
	return func(_ int, rng *rand.Rand) WeightFunc {
		return func(_, _ space.CellID) int64 { return rng.Int63() }
	}
}

// CellWeights assigns every cell one random weight up front; the cheapest
// frontier cell joins through the passage that first reached it
// (modified Prim's).
func CellWeights() Weighting {
	return func(cells int, rng *rand.Rand) WeightFunc {
		w := make([]int64, cells)
		for i := range w {
			w[i] = rng.Int63()
		}
		return func(_, to space.CellID) int64 { return w[to] }
	}
}

// Prim grows one tree per component from a random root by repeatedly
// adding a frontier cell.
//
// With a nil Weighting the frontier is a plain set and each step takes a
// uniformly random frontier cell, linked to a random tree neighbour
// (simplified Prim's). Otherwise candidate passages sit in a min-heap keyed
// by the Weighting, ties broken by insertion order.
//
// Complexity: O(V · degree) simplified; O(E log E) weighted.
type Prim struct {
	Weighting Weighting
}

// Generate implements Generator.
func (p Prim) Generate(g maze.Graph, rng *rand.Rand) error {
	rng, err := begin(g, rng)
	if err != nil {
		return err
	}
	defer g.ResetAux()

	if p.Weighting == nil {
		return primSimplified(g, rng)
	}
	return primWeighted(g, rng, p.Weighting(g.Len(), rng))
}

func primSimplified(g maze.Graph, rng *rand.Rand) error {
	var frontier, buf []space.CellID
	grow := func(id space.CellID) {
		g.SetAux(id, visited)
		for _, adj := range g.Adjacent(id) {
			if g.Aux(adj.Cell) == 0 {
				g.SetAux(adj.Cell, marked)
				frontier = append(frontier, adj.Cell)
			}
		}
	}

	grow(space.CellID(rng.Intn(g.Len())))
	roots := cursor{g: g}
	for {
		for len(frontier) > 0 {
			i := rng.Intn(len(frontier))
			cell := frontier[i]
			frontier[i] = frontier[len(frontier)-1]
			frontier = frontier[:len(frontier)-1]

			buf = neighboursWhere(g, cell, true, buf[:0])
			if err := g.Connect(cell, buf[rng.Intn(len(buf))]); err != nil {
				return err
			}
			grow(cell)
		}
		root, ok := roots.next()
		if !ok {
			return nil
		}
		grow(root)
	}
}

func primWeighted(g maze.Graph, rng *rand.Rand, weight WeightFunc) error {
	pq := make(candidatePQ, 0, g.Len())
	var seq uint64
	grow := func(id space.CellID) {
		g.SetAux(id, visited)
		for _, adj := range g.Adjacent(id) {
			if !isVisited(g, adj.Cell) {
				heap.Push(&pq, &candidate{from: id, to: adj.Cell, cost: weight(id, adj.Cell), seq: seq})
				seq++
			}
		}
	}

	grow(space.CellID(rng.Intn(g.Len())))
	roots := cursor{g: g}
	for {
		for pq.Len() > 0 {
			c := heap.Pop(&pq).(*candidate)
			if isVisited(g, c.to) {
				continue
			}
			if err := g.Connect(c.from, c.to); err != nil {
				return err
			}
			grow(c.to)
		}
		root, ok := roots.next()
		if !ok {
			return nil
		}
		grow(root)
	}
}

// candidate is a passage from the tree to a frontier cell.
type candidate struct {
	from, to space.CellID
	cost     int64
	seq      uint64
}

// candidatePQ is a min-heap of *candidate ordered by cost, then seq.
type candidatePQ []*candidate

// Len returns the number of items in the heap.
func (pq candidatePQ) Len() int { return len(pq) }

// Less orders by cost, falling back to insertion order.
func (pq candidatePQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq candidatePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be a *candidate.
func (pq *candidatePQ) Push(x interface{}) { *pq = append(*pq, x.(*candidate)) }

// Pop removes and returns the last element.
func (pq *candidatePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}
