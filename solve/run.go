package solve

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/space"
)

// ctxCheckEvery is how many steps pass between cancellation checks.
const ctxCheckEvery = 256

// run holds the validated inputs and step accounting of one Solve call.
type run struct {
	g     maze.Graph
	start space.CellID
	goal  Goal
	opts  Options
	steps int
}

// setup applies opts and validates start and goal against g.
func setup(g maze.Graph, start space.CellID, goal Goal, opts []Option) (*run, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	n := space.CellID(g.Len())
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: start cell %d", space.ErrOutOfBounds, start)
	}
	if goal.where {
		if goal.pred == nil {
			return nil, fmt.Errorf("%w: nil predicate", ErrInvalidGoal)
		}
	} else if goal.cell < 0 || goal.cell >= n {
		return nil, fmt.Errorf("%w: goal cell %d", space.ErrOutOfBounds, goal.cell)
	}
	return &run{g: g, start: start, goal: goal, opts: o}, nil
}

// step counts one unit of work and enforces MaxSteps and cancellation.
func (r *run) step() error {
	r.steps++
	if r.opts.MaxSteps > 0 && r.steps > r.opts.MaxSteps {
		return fmt.Errorf("%w: %d steps", ErrStepLimit, r.opts.MaxSteps)
	}
	if r.steps%ctxCheckEvery == 1 {
		select {
		case <-r.opts.Ctx.Done():
			return r.opts.Ctx.Err()
		default:
		}
	}
	return nil
}

// reachable reports whether a goal cell lies in the start's component.
func (r *run) reachable() bool {
	seen := make([]bool, r.g.Len())
	seen[r.start] = true
	queue := []space.CellID{r.start}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if r.goal.Reached(id) {
			return true
		}
		for _, adj := range r.g.Adjacent(id) {
			if r.g.Open(id, adj.Type) && !seen[adj.Cell] {
				seen[adj.Cell] = true
				queue = append(queue, adj.Cell)
			}
		}
	}
	return false
}

// exits appends the open adjacencies of id to buf.
func exits(g maze.Graph, id space.CellID, buf []space.Adjacency) []space.Adjacency {
	for _, adj := range g.Adjacent(id) {
		if g.Open(id, adj.Type) {
			buf = append(buf, adj)
		}
	}
	return buf
}

// trail is a walk with its loops erased as it grows. Revisiting a cell
// cuts the trail back to that cell, so memory stays O(V) however long the
// walk runs.
type trail struct {
	path maze.Path
	at   map[space.CellID]int
}

func newTrail(start space.CellID) *trail {
	return &trail{path: maze.Path{start}, at: map[space.CellID]int{start: 0}}
}

// push extends the trail by id.
func (t *trail) push(id space.CellID) {
	if i, seen := t.at[id]; seen {
		for _, dropped := range t.path[i+1:] {
			delete(t.at, dropped)
		}
		t.path = t.path[:i+1]
		return
	}
	t.at[id] = len(t.path)
	t.path = append(t.path, id)
}

// trace rebuilds the path to end from a parent table.
func trace(parent []space.CellID, end space.CellID) maze.Path {
	var path maze.Path
	for cur := end; cur != space.NoCell; cur = parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
