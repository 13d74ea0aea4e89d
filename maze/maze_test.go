package maze_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/space"
	"github.com/katalvlaran/labyrinth/storage"
)

func newBox(t *testing.T, f storage.Factory, shape ...int) *maze.Maze[space.Point] {
	t.Helper()
	b, err := space.NewBox(shape...)
	require.NoError(t, err)
	m, err := maze.New[space.Point](b, f)
	require.NoError(t, err)
	return m
}

func TestNew_Errors(t *testing.T) {
	_, err := maze.New[space.Point](nil, nil)
	assert.ErrorIs(t, err, maze.ErrNilSpace)

	strip, err := space.NewStrip(4)
	require.NoError(t, err)
	_, err = maze.New[space.Point](strip, nil)
	assert.ErrorIs(t, err, storage.ErrCapacityExceeded)

	// a 34-node star needs 33 connection types, one more than Block holds.
	edges := make([][2]int, 0, 33)
	for i := 1; i <= 33; i++ {
		edges = append(edges, [2]int{0, i})
	}
	star, err := space.NewNetwork(34, edges)
	require.NoError(t, err)
	_, err = maze.New[space.Node](star, storage.BlockFactory)
	assert.ErrorIs(t, err, storage.ErrCapacityExceeded)
}

func TestNew_StartsClosed(t *testing.T) {
	m := newBox(t, nil, 4, 3)
	assert.Equal(t, 12, m.Len())
	assert.Zero(t, maze.Passages(m))
	for id := range m.Cells() {
		assert.Zero(t, m.Degree(id))
	}
	assert.False(t, maze.IsPerfect(m))
}

func TestConnect_IsSymmetric(t *testing.T) {
	for name, f := range map[string]storage.Factory{"inline": storage.InlineFactory, "block": storage.BlockFactory} {
		t.Run(name, func(t *testing.T) {
			m := newBox(t, f, 3, 3)
			require.NoError(t, m.ConnectPoints(space.Pt(0, 0), space.Pt(1, 0)))

			ok, err := m.IsConnectedPoints(space.Pt(1, 0), space.Pt(0, 0))
			require.NoError(t, err)
			assert.True(t, ok)
			assert.True(t, m.Open(0, space.East))
			assert.True(t, m.Open(1, space.West))
			assert.Equal(t, 1, m.Degree(0))
			assert.Equal(t, 1, m.Degree(1))
			assert.Equal(t, []space.CellID{1}, m.OpenNeighbours(0))
			assert.NoError(t, maze.CheckSymmetry(m))

			require.NoError(t, m.Disconnect(1, 0))
			ok, err = m.IsConnected(0, 1)
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Zero(t, maze.Passages(m))
		})
	}
}

func TestConnect_Errors(t *testing.T) {
	m := newBox(t, nil, 3, 3)

	err := m.Connect(0, 4)
	assert.ErrorIs(t, err, maze.ErrInvalidAdjacency)
	err = m.Connect(0, 0)
	assert.ErrorIs(t, err, maze.ErrInvalidAdjacency)
	err = m.Connect(0, 9)
	assert.ErrorIs(t, err, space.ErrOutOfBounds)
	_, err = m.IsConnected(-1, 0)
	assert.ErrorIs(t, err, space.ErrOutOfBounds)
	err = m.ConnectPoints(space.Pt(2, 2), space.Pt(3, 2))
	assert.ErrorIs(t, err, space.ErrOutOfBounds)

	assert.Zero(t, maze.Passages(m), "failed calls must not leave half edges")
}

func TestCheckSymmetry_DetectsOneSidedEdge(t *testing.T) {
	m := newBox(t, nil, 2, 2)
	m.Backend().SetConnection(0, space.South, true)

	err := maze.CheckSymmetry(m)
	assert.ErrorIs(t, err, maze.ErrAsymmetric)
}

func TestAux_IsIndependentOfConnections(t *testing.T) {
	m := newBox(t, nil, 3, 1)
	require.NoError(t, m.Connect(0, 1))
	m.SetAux(1, storage.AuxVisited|storage.AuxMarked)
	assert.Equal(t, storage.AuxVisited|storage.AuxMarked, m.Aux(1))
	m.ResetAux()
	assert.Zero(t, m.Aux(1))
	assert.True(t, m.Open(1, space.West))

	m.Reset()
	assert.Zero(t, maze.Passages(m))
}

func TestPath(t *testing.T) {
	m := newBox(t, nil, 3, 2)
	require.NoError(t, m.Connect(0, 1))
	require.NoError(t, m.Connect(1, 4))
	require.NoError(t, m.Connect(4, 5))

	p := maze.Path{0, 1, 4, 5}
	assert.NoError(t, p.Validate(m))
	assert.Equal(t, 3, p.Edges())
	assert.Equal(t, space.CellID(0), p.Start())
	assert.Equal(t, space.CellID(5), p.End())

	pts, err := m.PathPoints(p)
	require.NoError(t, err)
	assert.Equal(t, []space.Point{space.Pt(0, 0), space.Pt(1, 0), space.Pt(1, 1), space.Pt(2, 1)}, pts)

	c := p.Clone()
	c[0] = 3
	assert.Equal(t, space.CellID(0), p[0])

	assert.NoError(t, maze.Path{2}.Validate(m), "a single cell is a valid path")
	assert.ErrorIs(t, maze.Path{}.Validate(m), maze.ErrInvalidPath)
	assert.ErrorIs(t, maze.Path{0, 3}.Validate(m), maze.ErrInvalidPath, "closed edge")
	assert.ErrorIs(t, maze.Path{0, 4}.Validate(m), maze.ErrInvalidPath, "not adjacent")
	assert.ErrorIs(t, maze.Path{5, 6}.Validate(m), maze.ErrInvalidPath, "outside space")

	var empty maze.Path
	assert.Equal(t, space.NoCell, empty.Start())
	assert.Zero(t, empty.Edges())
}

func TestLoopErase(t *testing.T) {
	cases := []struct {
		walk []space.CellID
		want maze.Path
	}{
		{[]space.CellID{0}, maze.Path{0}},
		{[]space.CellID{0, 1, 2, 1, 3}, maze.Path{0, 1, 3}},
		{[]space.CellID{0, 1, 2, 3, 1, 4}, maze.Path{0, 1, 4}},
		{[]space.CellID{0, 1, 0, 1, 0, 2}, maze.Path{0, 2}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, maze.LoopErase(tc.walk), "walk %v", tc.walk)
	}
}

func TestIsPerfect(t *testing.T) {
	m := newBox(t, nil, 3, 1)
	require.NoError(t, m.Connect(0, 1))
	assert.False(t, maze.IsPerfect(m))
	require.NoError(t, m.Connect(1, 2))
	assert.True(t, maze.IsPerfect(m))
	assert.Equal(t, 2, maze.DeadEnds(m))

	sq := newBox(t, nil, 2, 2)
	require.NoError(t, sq.Connect(0, 1))
	require.NoError(t, sq.Connect(1, 3))
	require.NoError(t, sq.Connect(3, 2))
	assert.True(t, maze.IsPerfect(sq))
	require.NoError(t, sq.Connect(2, 0))
	assert.False(t, maze.IsPerfect(sq), "a cycle is not a tree")
	assert.False(t, maze.IsTree(sq, 0))
	assert.Zero(t, maze.DeadEnds(sq))
}

func TestEqual_AcrossBackends(t *testing.T) {
	a := newBox(t, storage.InlineFactory, 4, 4)
	b := newBox(t, storage.BlockFactory, 4, 4)
	require.NoError(t, a.Connect(5, 6))
	assert.False(t, maze.Equal(a, b))
	require.NoError(t, b.Connect(6, 5))
	assert.True(t, maze.Equal(a, b))
}

// TestComponent_AgainstGonum opens random walls and checks component sizes
// against gonum's connected components.
func TestComponent_AgainstGonum(t *testing.T) {
	m := newBox(t, nil, 7, 6)
	r := rand.New(rand.NewSource(11))
	for i := 0; i < 25; i++ {
		id := space.CellID(r.Intn(m.Len()))
		adj := m.Adjacent(id)
		require.NoError(t, m.Connect(id, adj[r.Intn(len(adj))].Cell))
	}

	ug := simple.NewUndirectedGraph()
	for id := range m.Cells() {
		ug.AddNode(simple.Node(id))
	}
	for id := range m.Cells() {
		for _, nb := range m.OpenNeighbours(id) {
			if nb > id {
				ug.SetEdge(ug.NewEdge(simple.Node(id), simple.Node(nb)))
			}
		}
	}

	var want []int
	for _, cc := range topo.ConnectedComponents(ug) {
		want = append(want, len(cc))
	}
	var got []int
	seen := make(map[space.CellID]bool)
	for id := range m.Cells() {
		if seen[id] {
			continue
		}
		cells, _ := maze.Component(m, id)
		got = append(got, cells)
		// mark the whole region
		stack := []space.CellID{id}
		seen[id] = true
		for len(stack) > 0 {
			c := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, nb := range m.OpenNeighbours(c) {
				if !seen[nb] {
					seen[nb] = true
					stack = append(stack, nb)
				}
			}
		}
	}
	sort.Ints(want)
	sort.Ints(got)
	assert.Equal(t, want, got)
	assert.Equal(t, ug.Edges().Len(), maze.Passages(m))
}

func TestMaze_OtherSpaces(t *testing.T) {
	p, err := space.NewPolar(3, 3)
	require.NoError(t, err)
	pm, err := maze.New[space.PolarPoint](p, storage.BlockFactory)
	require.NoError(t, err)
	require.NoError(t, pm.ConnectPoints(space.PolarPoint{Ring: 0, Sector: 0}, space.PolarPoint{Ring: 1, Sector: 0}))
	ok, err := pm.IsConnectedPoints(space.PolarPoint{Ring: 1, Sector: 0}, space.PolarPoint{Ring: 0, Sector: 0})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, maze.CheckSymmetry(pm))

	nw, err := space.NewNetwork(4, [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 3}})
	require.NoError(t, err)
	nm, err := maze.New[space.Node](nw, nil)
	require.NoError(t, err)
	require.NoError(t, nm.ConnectPoints(2, 3))
	assert.ErrorIs(t, nm.ConnectPoints(0, 3), maze.ErrInvalidAdjacency)
	assert.Equal(t, 1, nm.Degree(3))
}
