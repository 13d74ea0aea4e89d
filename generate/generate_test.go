package generate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/labyrinth/generate"
	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/random"
	"github.com/katalvlaran/labyrinth/space"
	"github.com/katalvlaran/labyrinth/storage"
)

// anySpace lists generators that accept every finite topology.
var anySpace = map[string]generate.Generator{
	"backtracker":        generate.RecursiveBacktracker{},
	"hunt-and-kill":      generate.HuntAndKill{},
	"aldous-broder":      generate.AldousBroder{},
	"wilson":             generate.Wilson{},
	"kruskal":            generate.Kruskal{},
	"prim":               generate.Prim{},
	"prim/edges":         generate.Prim{Weighting: generate.EdgeWeights()},
	"prim/cells":         generate.Prim{Weighting: generate.CellWeights()},
	"growing-tree":       generate.GrowingTree{},
	"growing-tree/old":   generate.GrowingTree{Select: generate.Oldest()},
	"growing-tree/rand":  generate.GrowingTree{Select: generate.RandomCell()},
	"growing-tree/mixed": generate.GrowingTree{Select: generate.Mixed(0.5)},
	"growing-forest":     generate.GrowingForest{Seeds: 3},
	"growing-forest/1":   generate.GrowingForest{Seeds: 1, Select: generate.RandomCell()},
	"nary-tree":          generate.NaryTree{},
}

// boxOnly lists generators that need box geometry.
var boxOnly = map[string]generate.Generator{
	"sidewinder": generate.Sidewinder{},
	"eller":      generate.Eller{},
	"division":   generate.RecursiveDivision{},
}

func boxMaze(t testing.TB, f storage.Factory, shape ...int) *maze.Maze[space.Point] {
	t.Helper()
	b, err := space.NewBox(shape...)
	require.NoError(t, err)
	m, err := maze.New[space.Point](b, f)
	require.NoError(t, err)
	return m
}

// requirePerfect checks the spanning-tree property directly and against
// gonum's connected components.
func requirePerfect(t *testing.T, g maze.Graph) {
	t.Helper()
	require.NoError(t, maze.CheckSymmetry(g))
	require.True(t, maze.IsPerfect(g), "not a spanning tree")
	assert.Equal(t, g.Len()-1, maze.Passages(g))

	ug := simple.NewUndirectedGraph()
	for id := range g.Cells() {
		ug.AddNode(simple.Node(id))
	}
	for id := range g.Cells() {
		for _, adj := range g.Adjacent(id) {
			if adj.Cell > id && g.Open(id, adj.Type) {
				ug.SetEdge(ug.NewEdge(simple.Node(id), simple.Node(adj.Cell)))
			}
		}
	}
	assert.Len(t, topo.ConnectedComponents(ug), 1)

	for id := range g.Cells() {
		assert.Zero(t, g.Aux(id), "aux must be cleared after a run")
	}
}

func TestGenerators_PerfectOnBoxes(t *testing.T) {
	all := map[string]generate.Generator{}
	for k, v := range anySpace {
		all[k] = v
	}
	for k, v := range boxOnly {
		all[k] = v
	}
	for name, gen := range all {
		t.Run(name, func(t *testing.T) {
			for _, shape := range [][]int{{1, 1}, {1, 7}, {7, 1}, {9, 6}, {12, 12}} {
				for _, f := range []storage.Factory{storage.InlineFactory, storage.BlockFactory} {
					m := boxMaze(t, f, shape...)
					require.NoError(t, gen.Generate(m, random.New(int64(shape[0]*31+shape[1]))))
					requirePerfect(t, m)
				}
			}
		})
	}
}

func TestGenerators_PerfectOnOtherSpaces(t *testing.T) {
	polar, err := space.NewPolar(5, 4)
	require.NoError(t, err)
	hex, err := space.NewHex(7, 5)
	require.NoError(t, err)
	cube, err := space.NewBox(4, 3, 3)
	require.NoError(t, err)

	for name, gen := range anySpace {
		t.Run(name, func(t *testing.T) {
			pm, err := maze.New[space.PolarPoint](polar, nil)
			require.NoError(t, err)
			require.NoError(t, gen.Generate(pm, random.New(5)))
			requirePerfect(t, pm)

			hm, err := maze.New[space.HexPoint](hex, storage.BlockFactory)
			require.NoError(t, err)
			require.NoError(t, gen.Generate(hm, random.New(6)))
			requirePerfect(t, hm)

			cm, err := maze.New[space.Point](cube, nil)
			require.NoError(t, err)
			require.NoError(t, gen.Generate(cm, random.New(7)))
			requirePerfect(t, cm)
		})
	}

	t.Run("division/3d", func(t *testing.T) {
		cm, err := maze.New[space.Point](cube, nil)
		require.NoError(t, err)
		require.NoError(t, generate.RecursiveDivision{}.Generate(cm, random.New(7)))
		requirePerfect(t, cm)
	})
}

func TestGenerators_ForestOnDisconnectedNetwork(t *testing.T) {
	nw, err := space.NewNetwork(7, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}, {4, 5}})
	require.NoError(t, err)
	for name, gen := range anySpace {
		t.Run(name, func(t *testing.T) {
			m, err := maze.New[space.Node](nw, nil)
			require.NoError(t, err)
			require.NoError(t, gen.Generate(m, random.New(3)))

			assert.Equal(t, 4, maze.Passages(m), "one tree per component")
			for _, root := range []space.CellID{0, 4, 6} {
				assert.True(t, maze.IsTree(m, root), "component of %d", root)
			}
			cells, _ := maze.Component(m, 0)
			assert.Equal(t, 4, cells)
		})
	}
}

func TestGenerators_Reproducible(t *testing.T) {
	for name, gen := range anySpace {
		t.Run(name, func(t *testing.T) {
			a := boxMaze(t, storage.InlineFactory, 10, 8)
			b := boxMaze(t, storage.BlockFactory, 10, 8)
			c := boxMaze(t, storage.InlineFactory, 10, 8)
			require.NoError(t, gen.Generate(a, random.New(99)))
			require.NoError(t, gen.Generate(b, random.New(99)))
			require.NoError(t, gen.Generate(c, random.New(100)))
			assert.True(t, maze.Equal(a, b), "same seed, different backend")
			assert.False(t, maze.Equal(a, c), "different seeds should differ")
		})
	}
}

func TestGenerators_NilRNGUsesDefaultSeed(t *testing.T) {
	a := boxMaze(t, nil, 6, 6)
	b := boxMaze(t, nil, 6, 6)
	require.NoError(t, generate.Kruskal{}.Generate(a, nil))
	require.NoError(t, generate.Kruskal{}.Generate(b, random.New(random.DefaultSeed)))
	assert.True(t, maze.Equal(a, b))
}

type emptyGraph struct{ maze.Graph }

func (emptyGraph) Len() int { return 0 }

func TestGenerators_Errors(t *testing.T) {
	for name, gen := range anySpace {
		assert.ErrorIs(t, gen.Generate(emptyGraph{}, random.New(1)), generate.ErrEmptySpace, name)
	}

	polar, err := space.NewPolar(3, 3)
	require.NoError(t, err)
	pm, err := maze.New[space.PolarPoint](polar, nil)
	require.NoError(t, err)
	for name, gen := range boxOnly {
		assert.ErrorIs(t, gen.Generate(pm, random.New(1)), generate.ErrUnsupportedTopology, name)
	}

	cube := boxMaze(t, nil, 3, 3, 3)
	assert.ErrorIs(t, generate.Sidewinder{}.Generate(cube, nil), generate.ErrUnsupportedTopology)
	assert.ErrorIs(t, generate.Eller{}.Generate(cube, nil), generate.ErrUnsupportedTopology)

	m := boxMaze(t, nil, 3, 3)
	assert.ErrorIs(t, generate.GrowingForest{}.Generate(m, nil), generate.ErrInvalidOption)
	assert.ErrorIs(t, generate.Braid{DeadEnds: -0.1}.Generate(m, nil), generate.ErrInvalidOption)
	assert.ErrorIs(t, generate.Braid{DeadEnds: 1.5}.Generate(m, nil), generate.ErrInvalidOption)
}

func TestNaryTree_IsBinaryTreeOnBoxes(t *testing.T) {
	m := boxMaze(t, nil, 8, 5)
	require.NoError(t, generate.NaryTree{}.Generate(m, random.New(4)))
	requirePerfect(t, m)
	for id := range m.Cells() {
		if id == 0 {
			continue
		}
		back := 0
		if m.Open(id, space.North) {
			back++
		}
		if m.Open(id, space.West) {
			back++
		}
		assert.Equal(t, 1, back, "cell %d links exactly one of north/west", id)
	}
}

func TestSidewinder_TopRowIsCorridor(t *testing.T) {
	m := boxMaze(t, nil, 9, 4)
	require.NoError(t, generate.Sidewinder{}.Generate(m, random.New(12)))
	for x := space.CellID(0); x < 8; x++ {
		assert.True(t, m.Open(x, space.East))
	}
}

func TestRecursiveDivision_IgnoresPriorState(t *testing.T) {
	a := boxMaze(t, nil, 7, 7)
	b := boxMaze(t, nil, 7, 7)
	require.NoError(t, generate.Kruskal{}.Generate(b, random.New(1)))
	require.NoError(t, generate.RecursiveDivision{}.Generate(a, random.New(8)))
	require.NoError(t, generate.RecursiveDivision{}.Generate(b, random.New(8)))
	assert.True(t, maze.Equal(a, b))
}

func TestGrowingForest_MoreSeedsThanCells(t *testing.T) {
	m := boxMaze(t, nil, 3, 2)
	require.NoError(t, generate.GrowingForest{Seeds: 50}.Generate(m, random.New(2)))
	requirePerfect(t, m)
}

func TestBraid(t *testing.T) {
	for _, gen := range []generate.Generator{generate.RecursiveBacktracker{}, generate.Kruskal{}, generate.NaryTree{}} {
		m := boxMaze(t, nil, 15, 11)
		require.NoError(t, gen.Generate(m, random.New(21)))
		require.NotZero(t, maze.DeadEnds(m))

		require.NoError(t, generate.Braid{DeadEnds: 0}.Generate(m, random.New(22)))
		for id := range m.Cells() {
			assert.GreaterOrEqual(t, m.Degree(id), 2, "cell %d", id)
		}
		assert.NoError(t, maze.CheckSymmetry(m))
	}

	m := boxMaze(t, nil, 20, 20)
	require.NoError(t, generate.RecursiveBacktracker{}.Generate(m, random.New(3)))
	require.NoError(t, generate.Braid{DeadEnds: 0.02}.Generate(m, random.New(3)))
	assert.LessOrEqual(t, maze.DeadEnds(m), 8)
	cells, _ := maze.Component(m, 0)
	assert.Equal(t, m.Len(), cells)

	before := boxMaze(t, nil, 10, 10)
	after := boxMaze(t, nil, 10, 10)
	require.NoError(t, generate.Wilson{}.Generate(before, random.New(5)))
	require.NoError(t, generate.Wilson{}.Generate(after, random.New(5)))
	require.NoError(t, generate.Braid{DeadEnds: 1}.Generate(after, random.New(5)))
	assert.True(t, maze.Equal(before, after), "a full quota changes nothing")
}

func TestChain(t *testing.T) {
	m := boxMaze(t, nil, 6, 6)
	gen := generate.Chain(generate.Kruskal{}, generate.Braid{})
	require.NoError(t, gen.Generate(m, random.New(1)))
	assert.Zero(t, maze.DeadEnds(m))

	err := generate.Chain(generate.Kruskal{}, generate.Braid{DeadEnds: 2}).Generate(m, nil)
	assert.ErrorIs(t, err, generate.ErrInvalidOption)
}
