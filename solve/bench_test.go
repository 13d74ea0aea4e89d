package solve_test

import (
	"testing"

	"github.com/katalvlaran/labyrinth/generate"
	"github.com/katalvlaran/labyrinth/solve"
	"github.com/katalvlaran/labyrinth/space"
)

// BenchmarkSearch compares BFS and A* across a braided 128×128 box.
func BenchmarkSearch(b *testing.B) {
	m := boxMaze(b, 128, 128)
	carve(b, m, generate.Chain(generate.RecursiveBacktracker{}, generate.Braid{DeadEnds: 0.2}), 1)
	goal := solve.To(space.CellID(m.Len() - 1))
	for _, s := range []solve.Solver{solve.BFS{}, solve.AStar{}, solve.Tremaux{}} {
		b.Run(name(s), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = s.Solve(m, 0, goal)
			}
		})
	}
}

func name(s solve.Solver) string {
	switch s.(type) {
	case solve.BFS:
		return solve.NameBFS
	case solve.AStar:
		return solve.NameAStar
	}
	return solve.NameTremaux
}
