package solve

import (
	"container/heap"

	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/space"
)

// BFS explores open passages breadth first and returns a path with the
// fewest passages. Ties resolve by neighbour order, so the result is
// deterministic.
//
// Complexity: O(V + E) time, O(V) memory.
type BFS struct{}

// Solve implements Solver.
func (BFS) Solve(g maze.Graph, start space.CellID, goal Goal, opts ...Option) (maze.Path, error) {
	r, err := setup(g, start, goal, opts)
	if err != nil {
		return nil, err
	}

	parent := make([]space.CellID, g.Len())
	for i := range parent {
		parent[i] = space.NoCell
	}
	seen := make([]bool, g.Len())
	seen[start] = true
	queue := []space.CellID{start}
	var buf []space.Adjacency
	for len(queue) > 0 {
		if err = r.step(); err != nil {
			return nil, err
		}
		id := queue[0]
		queue = queue[1:]
		if goal.Reached(id) {
			return trace(parent, id), nil
		}
		for _, adj := range exits(g, id, buf[:0]) {
			if !seen[adj.Cell] {
				seen[adj.Cell] = true
				parent[adj.Cell] = id
				queue = append(queue, adj.Cell)
			}
		}
	}
	return nil, ErrNoPath
}

// AStar expands cells in order of f = g + h, where g counts passages from
// start and h is the space's Distance to a To goal (0 for Where goals).
// Space distances are admissible, so the path has the fewest passages.
// Equal f values pop in insertion order.
//
// Complexity: O(E log V) time, O(V) memory.
type AStar struct{}

// Solve implements Solver.
func (AStar) Solve(g maze.Graph, start space.CellID, goal Goal, opts ...Option) (maze.Path, error) {
	r, err := setup(g, start, goal, opts)
	if err != nil {
		return nil, err
	}

	topo := g.Topology()
	target, single := goal.Cell()
	h := func(id space.CellID) int {
		if !single {
			return 0
		}
		return topo.Distance(id, target)
	}

	n := g.Len()
	parent := make([]space.CellID, n)
	cost := make([]int, n)
	closed := make([]bool, n)
	for i := range parent {
		parent[i] = space.NoCell
		cost[i] = -1
	}
	cost[start] = 0

	var seq uint64
	pq := make(nodePQ, 0, 64)
	heap.Push(&pq, &nodeItem{id: start, f: h(start), seq: seq})
	var buf []space.Adjacency
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		if closed[item.id] {
			continue
		}
		if err = r.step(); err != nil {
			return nil, err
		}
		closed[item.id] = true
		if goal.Reached(item.id) {
			return trace(parent, item.id), nil
		}
		next := cost[item.id] + 1
		for _, adj := range exits(g, item.id, buf[:0]) {
			if closed[adj.Cell] || (cost[adj.Cell] >= 0 && cost[adj.Cell] <= next) {
				continue
			}
			cost[adj.Cell] = next
			parent[adj.Cell] = item.id
			seq++
			heap.Push(&pq, &nodeItem{id: adj.Cell, f: next + h(adj.Cell), seq: seq})
		}
	}
	return nil, ErrNoPath
}

// nodeItem is an open-set entry of AStar.
type nodeItem struct {
	id  space.CellID
	f   int
	seq uint64
}

// nodePQ is a min-heap of *nodeItem ordered by f, then by seq.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by f, falling back to insertion order.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be a *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}
