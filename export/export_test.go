package export_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/export"
	"github.com/katalvlaran/labyrinth/generate"
	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/random"
	"github.com/katalvlaran/labyrinth/solve"
	"github.com/katalvlaran/labyrinth/space"
	"github.com/katalvlaran/labyrinth/storage"
)

func carved(t *testing.T, f storage.Factory) *maze.Maze[space.Point] {
	t.Helper()
	b, err := space.NewBox(8, 6)
	require.NoError(t, err)
	m, err := maze.New[space.Point](b, f)
	require.NoError(t, err)
	require.NoError(t, generate.Chain(generate.Wilson{}, generate.Braid{DeadEnds: 0.1}).Generate(m, random.New(12)))
	return m
}

func TestRoundTrip(t *testing.T) {
	src := carved(t, storage.InlineFactory)
	p, err := solve.BFS{}.Solve(src, 0, solve.To(47))
	require.NoError(t, err)

	snap, err := export.Capture(src)
	require.NoError(t, err)
	snap.WithPath(p)
	assert.Equal(t, export.KindBox, snap.Kind)
	assert.Equal(t, []int{8, 6}, snap.Shape)

	data, err := export.Marshal(snap)
	require.NoError(t, err)
	back, err := export.Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, snap, back)
	assert.Equal(t, p, back.Solution())

	box, err := space.NewBox(8, 6)
	require.NoError(t, err)
	dst, err := maze.New[space.Point](box, storage.BlockFactory)
	require.NoError(t, err)
	require.NoError(t, export.Restore(back, dst))
	assert.True(t, maze.Equal(src, dst))
	assert.NoError(t, back.Solution().Validate(dst))
}

func TestRestore_OverwritesExistingState(t *testing.T) {
	src := carved(t, nil)
	snap, err := export.Capture(src)
	require.NoError(t, err)

	dst := carved(t, nil)
	require.NoError(t, generate.RecursiveDivision{}.Generate(dst, random.New(99)))
	require.NoError(t, export.Restore(snap, dst))
	assert.True(t, maze.Equal(src, dst))
}

func TestBlockTags_RoundTrip(t *testing.T) {
	src := carved(t, storage.BlockFactory)
	snap, err := export.Capture(src)
	require.NoError(t, err)
	assert.Nil(t, snap.Tags, "all-zero tags are not recorded")

	blk, ok := src.Backend().(*storage.Block)
	require.True(t, ok)
	blk.SetTag(3, 7)
	blk.SetTag(40, 0xBEEF)
	snap, err = export.Capture(src)
	require.NoError(t, err)
	require.Len(t, snap.Tags, src.Len())

	data, err := export.Marshal(snap)
	require.NoError(t, err)
	back, err := export.Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, snap.Tags, back.Tags)

	dst := carved(t, storage.BlockFactory)
	dst.Backend().(*storage.Block).SetTag(5, 9)
	require.NoError(t, export.Restore(back, dst))
	got := dst.Backend().(*storage.Block)
	assert.Equal(t, uint16(7), got.Tag(3))
	assert.Equal(t, uint16(0xBEEF), got.Tag(40))
	assert.Zero(t, got.Tag(5))

	inline := carved(t, storage.InlineFactory)
	require.NoError(t, export.Restore(back, inline), "tags are dropped on backends without them")
	assert.True(t, maze.Equal(src, inline))

	back.Tags = back.Tags[:4]
	assert.ErrorIs(t, back.Validate(), export.ErrCorrupt)
	assert.ErrorIs(t, export.Restore(back, dst), export.ErrCorrupt)
}

func TestCapture_IDsAreUnique(t *testing.T) {
	m := carved(t, nil)
	a, err := export.Capture(m)
	require.NoError(t, err)
	b, err := export.Capture(m)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, a.Open, b.Open)
}

func TestRestore_Errors(t *testing.T) {
	m := carved(t, nil)
	snap, err := export.Capture(m)
	require.NoError(t, err)

	other, err := space.NewBox(6, 8)
	require.NoError(t, err)
	om, err := maze.New[space.Point](other, nil)
	require.NoError(t, err)
	assert.ErrorIs(t, export.Restore(snap, om), export.ErrMismatch, "transposed box")

	polar, err := space.NewPolar(3, 4)
	require.NoError(t, err)
	pm, err := maze.New[space.PolarPoint](polar, nil)
	require.NoError(t, err)
	assert.ErrorIs(t, export.Restore(snap, pm), export.ErrMismatch)

	box, err := space.NewBox(8, 6)
	require.NoError(t, err)
	fresh, err := maze.New[space.Point](box, nil)
	require.NoError(t, err)
	snap.Open[0] ^= 1 << space.South
	assert.ErrorIs(t, export.Restore(snap, fresh), export.ErrCorrupt)
	assert.Zero(t, maze.Passages(fresh), "nothing applied")
}

func TestUnmarshal_Corrupt(t *testing.T) {
	_, err := export.Unmarshal([]byte{0xc1})
	assert.ErrorIs(t, err, export.ErrCorrupt)

	m := carved(t, nil)
	snap, err := export.Capture(m)
	require.NoError(t, err)

	bad := *snap
	bad.ID = "not-a-uuid"
	data, err := export.Marshal(&bad)
	require.NoError(t, err)
	_, err = export.Unmarshal(data)
	assert.ErrorIs(t, err, export.ErrCorrupt)

	bad = *snap
	bad.Open = bad.Open[:3]
	assert.ErrorIs(t, bad.Validate(), export.ErrCorrupt)

	bad = *snap
	bad.Open = append([]uint64(nil), snap.Open...)
	bad.Open[2] |= 1 << 10
	assert.ErrorIs(t, bad.Validate(), export.ErrCorrupt)

	bad = *snap
	bad.Path = []int64{0, 500}
	assert.ErrorIs(t, bad.Validate(), export.ErrCorrupt)
}

type wideGraph struct {
	maze.Graph
	topo space.Topology
}

func (w wideGraph) Topology() space.Topology { return w.topo }

func TestCapture_TooManyTypes(t *testing.T) {
	edges := make([][2]int, 0, 65)
	for i := 1; i <= 65; i++ {
		edges = append(edges, [2]int{0, i})
	}
	star, err := space.NewNetwork(66, edges)
	require.NoError(t, err)
	_, err = export.Capture(wideGraph{topo: star})
	assert.ErrorIs(t, err, export.ErrTooManyTypes)
}
