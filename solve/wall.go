package solve

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/space"
)

// pledgeStepFactor scales Pledge's default step bound with the cell count.
const pledgeStepFactor = 16

// WallFollower keeps one hand on the wall (WithHand, left by default).
// On oriented spaces turns follow the clockwise headings, starting from
// WithHeading; elsewhere each cell's neighbour order is the rotation.
// On an acyclic region this walks an Euler tour, so it reaches every cell
// of the start's component; a loop there makes it fail with ErrInapplicable.
//
// Complexity: O(V) moves, O(V) memory.
type WallFollower struct{}

// Solve implements Solver.
func (WallFollower) Solve(g maze.Graph, start space.CellID, goal Goal, opts ...Option) (maze.Path, error) {
	r, err := setup(g, start, goal, opts)
	if err != nil {
		return nil, err
	}
	cells, passages := maze.Component(g, start)
	if passages != cells-1 {
		return nil, fmt.Errorf("%w: wall follower needs an acyclic region, start's has %d loops",
			ErrInapplicable, passages-cells+1)
	}
	w, err := newWalker(g, r.opts)
	if err != nil {
		return nil, err
	}
	if goal.Reached(start) {
		return maze.Path{start}, nil
	}
	if !r.reachable() {
		return nil, ErrNoPath
	}

	t := newTrail(start)
	cur := start
	for moves := 0; moves <= 2*cells; moves++ {
		if err = r.step(); err != nil {
			return nil, err
		}
		next, ok := w.follow(cur)
		if !ok {
			break
		}
		t.push(next)
		cur = next
		if goal.Reached(cur) {
			return t.path, nil
		}
	}
	return nil, ErrNoPath
}

// Pledge walks straight along a main heading (WithHeading) until blocked,
// then follows the wall with one hand while summing signed turns, and
// leaves the wall once the sum returns to zero. It escapes obstacles that
// trap a plain wall follower and works on braided mazes, but needs an
// oriented space (ErrInapplicable otherwise). The walk is bounded by
// WithMaxSteps, or 16·V moves by default.
//
// Complexity: O(steps), O(V) memory.
type Pledge struct{}

// Solve implements Solver.
func (Pledge) Solve(g maze.Graph, start space.CellID, goal Goal, opts ...Option) (maze.Path, error) {
	r, err := setup(g, start, goal, opts)
	if err != nil {
		return nil, err
	}
	w, err := newWalker(g, r.opts)
	if err != nil {
		return nil, err
	}
	if w.o == nil {
		return nil, fmt.Errorf("%w: pledge needs an oriented space", ErrInapplicable)
	}
	if goal.Reached(start) {
		return maze.Path{start}, nil
	}
	if !r.reachable() {
		return nil, ErrNoPath
	}
	if r.opts.MaxSteps == 0 {
		r.opts.MaxSteps = pledgeStepFactor*g.Len() + 64
	}

	// sign converts right turns to the hand's frame: a left-hand walker
	// turns right at obstacles and scans from the left when following.
	sign := 1
	if r.opts.Hand == RightHand {
		sign = -1
	}
	half := w.headings / 2
	main := r.opts.Heading
	counter := 0
	t := newTrail(start)
	cur := start
	for !goal.Reached(cur) {
		if err = r.step(); err != nil {
			return nil, err
		}
		turn, next, ok := 0, space.NoCell, false
		if counter == 0 {
			if next, ok = w.via(cur, main); !ok {
				// rotate one way only; the counter records the full turn
				for i := 1; i < w.headings && !ok; i++ {
					turn = sign * i
					next, ok = w.via(cur, main+turn)
				}
			}
		} else {
			heading := main + counter
			for i := -(half - 1); i <= half && !ok; i++ {
				turn = sign * i
				next, ok = w.via(cur, heading+turn)
			}
		}
		if !ok {
			return nil, ErrNoPath
		}
		counter += turn
		t.push(next)
		cur = next
	}
	return t.path, nil
}

// walker picks exits for hand-on-wall solvers.
type walker struct {
	g        maze.Graph
	o        space.Oriented
	headings int
	hand     Hand

	heading int          // oriented: direction of the last move
	prev    space.CellID // rotation: cell the walker came from
}

func newWalker(g maze.Graph, o Options) (*walker, error) {
	w := &walker{g: g, hand: o.Hand, heading: o.Heading, prev: space.NoCell}
	if or, ok := g.Topology().(space.Oriented); ok && or.Headings() > 0 {
		w.o, w.headings = or, or.Headings()
	}
	limit := max(w.headings, 1)
	if o.Heading >= limit {
		return nil, fmt.Errorf("%w: heading %d, space has %d", ErrOptionViolation, o.Heading, w.headings)
	}
	return w, nil
}

// via returns the open neighbour of cur in heading h (taken modulo the
// heading count).
func (w *walker) via(cur space.CellID, h int) (space.CellID, bool) {
	t := w.o.HeadingType(((h % w.headings) + w.headings) % w.headings)
	for _, adj := range w.g.Adjacent(cur) {
		if adj.Type == t {
			return adj.Cell, w.g.Open(cur, t)
		}
	}
	return space.NoCell, false
}

// follow makes one wall-following move from cur.
func (w *walker) follow(cur space.CellID) (space.CellID, bool) {
	if w.o != nil {
		back := w.headings / 2
		for i := 1; i <= w.headings; i++ {
			d := back + i
			if w.hand == RightHand {
				d = back - i
			}
			h := ((w.heading+d)%w.headings + w.headings) % w.headings
			if next, ok := w.via(cur, h); ok {
				w.heading = h
				return next, true
			}
		}
		return space.NoCell, false
	}

	adj := w.g.Adjacent(cur)
	d := len(adj)
	idx := -1
	if w.hand == RightHand {
		idx = 0
	}
	for i, a := range adj {
		if a.Cell == w.prev {
			idx = i
			break
		}
	}
	for k := 1; k <= d; k++ {
		j := ((idx+k)%d + d) % d
		if w.hand == RightHand {
			j = ((idx-k)%d + d) % d
		}
		if w.g.Open(cur, adj[j].Type) {
			w.prev = cur
			return adj[j].Cell, true
		}
	}
	return space.NoCell, false
}
