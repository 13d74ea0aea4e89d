package solve

import (
	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/space"
)

// Tremaux marks a passage each time it is walked and never enters one
// marked twice. Arriving at an already visited cell through a fresh
// passage, it turns back; otherwise it prefers unmarked passages, then
// passages marked once. The passages marked exactly once form the
// returned path. Finds a path whenever one exists, braided or not.
// Ties between passages go to neighbour order, or to WithRand if given.
//
// Complexity: O(E) moves, O(V + E) memory.
type Tremaux struct{}

// Solve implements Solver.
func (Tremaux) Solve(g maze.Graph, start space.CellID, goal Goal, opts ...Option) (maze.Path, error) {
	r, err := setup(g, start, goal, opts)
	if err != nil {
		return nil, err
	}

	marks := make(map[edgeKey]uint8)
	seen := make([]bool, g.Len())
	seen[start] = true
	prev, cur := space.NoCell, start
	walk := []space.CellID{start}
	revisit := false
	var buf []space.Adjacency
	var pool []space.CellID
	for !goal.Reached(cur) {
		if err = r.step(); err != nil {
			return nil, err
		}
		next := space.NoCell
		if revisit && marks[key(prev, cur)] == 1 {
			next = prev
		} else {
			for want := uint8(0); want < 2 && next == space.NoCell; want++ {
				pool = pool[:0]
				for _, adj := range exits(g, cur, buf[:0]) {
					if marks[key(cur, adj.Cell)] == want {
						pool = append(pool, adj.Cell)
					}
				}
				switch {
				case len(pool) == 0:
				case r.opts.Rand != nil:
					next = pool[r.opts.Rand.Intn(len(pool))]
				default:
					next = pool[0]
				}
			}
		}
		if next == space.NoCell {
			return nil, ErrNoPath
		}
		marks[key(cur, next)]++
		prev, cur = cur, next
		walk = append(walk, cur)
		revisit = seen[cur]
		seen[cur] = true
	}
	if path, ok := onceMarked(g, start, cur, marks); ok {
		return path, nil
	}
	return maze.LoopErase(walk), nil
}

// edgeKey identifies an undirected passage.
type edgeKey struct{ lo, hi space.CellID }

func key(a, b space.CellID) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// onceMarked follows passages marked exactly once from start to end.
func onceMarked(g maze.Graph, start, end space.CellID, marks map[edgeKey]uint8) (maze.Path, bool) {
	parent := map[space.CellID]space.CellID{start: space.NoCell}
	queue := []space.CellID{start}
	var buf []space.Adjacency
	for len(queue) > 0 && queue[0] != end {
		id := queue[0]
		queue = queue[1:]
		for _, adj := range exits(g, id, buf[:0]) {
			if _, ok := parent[adj.Cell]; ok || marks[key(id, adj.Cell)] != 1 {
				continue
			}
			parent[adj.Cell] = id
			queue = append(queue, adj.Cell)
		}
	}
	if _, ok := parent[end]; !ok {
		return nil, false
	}
	var path maze.Path
	for c := end; c != space.NoCell; c = parent[c] {
		path = append(path, c)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}
