package maze

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/space"
)

// Passages returns the number of open edges in g.
// Complexity: O(V · degree).
func Passages(g Graph) int {
	total := 0
	for id := range g.Cells() {
		total += g.Degree(id)
	}
	return total / 2
}

// DeadEnds returns the number of cells with exactly one open connection.
func DeadEnds(g Graph) int {
	count := 0
	for id := range g.Cells() {
		if g.Degree(id) == 1 {
			count++
		}
	}
	return count
}

// Component walks the open edges reachable from start and reports the
// number of cells and passages in that connected region.
// Complexity: O(V + E) time, O(V) memory.
func Component(g Graph, start space.CellID) (cells, passages int) {
	n := g.Len()
	if start < 0 || start >= space.CellID(n) {
		return 0, 0
	}
	seen := make([]bool, n)
	seen[start] = true
	stack := []space.CellID{start}
	degrees := 0
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cells++
		for _, adj := range g.Adjacent(id) {
			if !g.Open(id, adj.Type) {
				continue
			}
			degrees++
			if !seen[adj.Cell] {
				seen[adj.Cell] = true
				stack = append(stack, adj.Cell)
			}
		}
	}
	return cells, degrees / 2
}

// IsTree reports whether the region reachable from start is acyclic.
func IsTree(g Graph, start space.CellID) bool {
	cells, passages := Component(g, start)
	return cells > 0 && passages == cells-1
}

// IsPerfect reports whether g is a spanning tree: every cell reachable from
// every other by exactly one route.
func IsPerfect(g Graph) bool {
	n := g.Len()
	if n == 0 {
		return false
	}
	cells, passages := Component(g, 0)
	return cells == n && passages == n-1
}

// Equal reports whether a and b have the same cell count and identical
// open connections.
func Equal(a, b Graph) bool {
	if a.Len() != b.Len() {
		return false
	}
	for id := range a.Cells() {
		for _, adj := range a.Adjacent(id) {
			if a.Open(id, adj.Type) != b.Open(id, adj.Type) {
				return false
			}
		}
	}
	return true
}

// CheckSymmetry verifies that every open connection is open from both
// sides. The first violation wraps ErrAsymmetric.
func CheckSymmetry(g Graph) error {
	for id := range g.Cells() {
		for _, adj := range g.Adjacent(id) {
			if !g.Open(id, adj.Type) {
				continue
			}
			back, err := g.IsConnected(adj.Cell, id)
			if err != nil {
				return err
			}
			if !back {
				return fmt.Errorf("%w: %d→%d open, %d→%d closed", ErrAsymmetric, id, adj.Cell, adj.Cell, id)
			}
		}
	}
	return nil
}
