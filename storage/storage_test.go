package storage_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/space"
	"github.com/katalvlaran/labyrinth/storage"
)

var factories = map[string]storage.Factory{
	storage.NameInline: storage.InlineFactory,
	storage.NameBlock:  storage.BlockFactory,
}

// TestBackends_SameSemantics drives both encodings with one random script of
// writes and checks every bit after each step.
func TestBackends_SameSemantics(t *testing.T) {
	for _, types := range []int{1, 4, 5, 6, 14, 30} {
		const cells = 97
		inline, err := storage.NewInline(cells, types)
		require.NoError(t, err)
		block, err := storage.NewBlock(cells, types)
		require.NoError(t, err)

		want := make([][]bool, cells)
		for i := range want {
			want[i] = make([]bool, types)
		}
		r := rand.New(rand.NewSource(int64(types)))
		for step := 0; step < 2000; step++ {
			id := space.CellID(r.Intn(cells))
			ct := space.ConnectionType(r.Intn(types))
			open := r.Intn(2) == 0
			inline.SetConnection(id, ct, open)
			block.SetConnection(id, ct, open)
			want[id][ct] = open
			if step%7 == 0 {
				inline.SetAux(id, uint8(step))
				block.SetAux(id, uint8(step)&3)
			}
		}
		for id := 0; id < cells; id++ {
			for ct := 0; ct < types; ct++ {
				cid, cct := space.CellID(id), space.ConnectionType(ct)
				require.Equal(t, want[id][ct], inline.Connection(cid, cct), "inline types=%d cell=%d type=%d", types, id, ct)
				require.Equal(t, want[id][ct], block.Connection(cid, cct), "block types=%d cell=%d type=%d", types, id, ct)
			}
			require.Equal(t, block.Aux(space.CellID(id)), inline.Aux(space.CellID(id)))
		}
	}
}

func TestBackends_AuxIsIndependent(t *testing.T) {
	for name, f := range factories {
		t.Run(name, func(t *testing.T) {
			b, err := f(10, 4)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, b.AuxBits(), 2)

			for id := space.CellID(0); id < 10; id++ {
				b.SetConnection(id, 3, true)
				b.SetAux(id, storage.AuxVisited|storage.AuxMarked)
			}
			b.SetConnection(4, 3, false)
			assert.Equal(t, storage.AuxVisited|storage.AuxMarked, b.Aux(4))

			b.ResetAux()
			for id := space.CellID(0); id < 10; id++ {
				assert.Zero(t, b.Aux(id))
				assert.Equal(t, id != 4, b.Connection(id, 3))
				for ct := space.ConnectionType(0); ct < 3; ct++ {
					assert.False(t, b.Connection(id, ct))
				}
			}

			b.Clear()
			for id := space.CellID(0); id < 10; id++ {
				assert.False(t, b.Connection(id, 3))
			}
		})
	}
}

func TestInline_AuxIsMasked(t *testing.T) {
	b, err := storage.NewInline(3, 4)
	require.NoError(t, err)
	b.SetAux(1, 0xFF)
	assert.Equal(t, uint8(3), b.Aux(1))
	assert.Zero(t, b.Aux(0))
	assert.Zero(t, b.Aux(2))
	for ct := space.ConnectionType(0); ct < 4; ct++ {
		assert.False(t, b.Connection(1, ct))
	}
	assert.Equal(t, 8, b.SlotBits())
	assert.Equal(t, 8, b.Bytes())
}

func TestCapacityExceeded(t *testing.T) {
	_, err := storage.NewInline(10, 63)
	assert.ErrorIs(t, err, storage.ErrCapacityExceeded)
	_, err = storage.NewInline(10, 62)
	assert.NoError(t, err)
	_, err = storage.NewBlock(10, 33)
	assert.ErrorIs(t, err, storage.ErrCapacityExceeded)
	_, err = storage.NewBlock(-1, 4)
	assert.ErrorIs(t, err, storage.ErrCapacityExceeded)
	_, err = storage.BlockFactory(10, 40)
	assert.ErrorIs(t, err, storage.ErrCapacityExceeded)
}

func TestBlock_Tag(t *testing.T) {
	b, err := storage.NewBlock(4, 4)
	require.NoError(t, err)
	b.SetTag(2, 0xBEEF)
	b.SetAux(2, 0xFF)
	b.ResetAux()
	assert.Equal(t, uint16(0xBEEF), b.Tag(2))
	assert.Equal(t, uint8(0), b.Aux(2))
}

func TestByName(t *testing.T) {
	for _, name := range []string{"", storage.NameInline, storage.NameBlock} {
		f, err := storage.ByName(name)
		require.NoError(t, err)
		b, err := f(4, 4)
		require.NoError(t, err)
		assert.Equal(t, 4, b.Len())
	}
	_, err := storage.ByName("tape")
	assert.ErrorIs(t, err, storage.ErrUnknownBackend)
}
