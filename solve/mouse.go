package solve

import (
	"math"

	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/random"
	"github.com/katalvlaran/labyrinth/space"
)

// mouseStepFactor scales RandomMouse's default step bound with the square
// of the cell count.
const mouseStepFactor = 16

// RandomMouse wanders at random, never reversing unless at a dead end.
// The random source comes from WithRand (random.New(0) if absent). When no
// goal cell is reachable it fails fast with ErrNoPath instead of wandering
// forever; otherwise it runs until the goal or the step bound: WithMaxSteps,
// or 16·V²+64 moves by default, well above the expected hitting time.
//
// Complexity: expected O(V²) moves on a tree, O(V) memory.
type RandomMouse struct{}

// Solve implements Solver.
func (RandomMouse) Solve(g maze.Graph, start space.CellID, goal Goal, opts ...Option) (maze.Path, error) {
	r, err := setup(g, start, goal, opts)
	if err != nil {
		return nil, err
	}
	if goal.Reached(start) {
		return maze.Path{start}, nil
	}
	if !r.reachable() {
		return nil, ErrNoPath
	}
	if r.opts.MaxSteps == 0 {
		r.opts.MaxSteps = mouseBound(g.Len())
	}
	rng := r.opts.Rand
	if rng == nil {
		rng = random.New(0)
	}

	t := newTrail(start)
	prev, cur := space.NoCell, start
	var buf, choices []space.Adjacency
	for !goal.Reached(cur) {
		if err = r.step(); err != nil {
			return nil, err
		}
		buf = exits(g, cur, buf[:0])
		choices = choices[:0]
		for _, adj := range buf {
			if adj.Cell != prev {
				choices = append(choices, adj)
			}
		}
		if len(choices) == 0 {
			choices = buf
		}
		prev, cur = cur, random.Pick(choices, rng).Cell
		t.push(cur)
	}
	return t.path, nil
}

// mouseBound returns the default step bound for a maze of n cells,
// saturating at math.MaxInt.
func mouseBound(n int) int {
	if n > 1<<29 {
		return math.MaxInt
	}
	return mouseStepFactor*n*n + 64
}
