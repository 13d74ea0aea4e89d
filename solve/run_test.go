package solve

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/space"
)

func TestTrail_MatchesLoopErase(t *testing.T) {
	walks := [][]space.CellID{
		{0},
		{0, 1, 2, 3},
		{0, 1, 0},
		{0, 1, 2, 1, 3},
		{0, 1, 2, 3, 1, 4, 5, 4, 6},
		{0, 1, 2, 0, 3, 4, 3, 0, 5},
	}
	for _, walk := range walks {
		tr := newTrail(walk[0])
		for _, id := range walk[1:] {
			tr.push(id)
		}
		assert.Equal(t, maze.LoopErase(walk), tr.path, "walk %v", walk)
		assert.Len(t, tr.at, len(tr.path))
	}
}

func TestMouseBound(t *testing.T) {
	assert.Equal(t, 64+16, mouseBound(1))
	assert.Equal(t, 4160, mouseBound(16))
	assert.Equal(t, int(^uint(0)>>1), mouseBound(1<<30))
}
