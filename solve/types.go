package solve

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/space"
)

// Sentinel errors for solving.
var (
	// ErrNoPath indicates that start and goal lie in different components.
	ErrNoPath = errors.New("solve: no path")

	// ErrInapplicable indicates a solver that cannot run on the given maze,
	// such as a wall follower inside a loop.
	ErrInapplicable = errors.New("solve: solver inapplicable")

	// ErrStepLimit indicates that the step budget ran out.
	ErrStepLimit = errors.New("solve: step limit exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solve: invalid option supplied")

	// ErrInvalidGoal indicates a goal without a cell or predicate.
	ErrInvalidGoal = errors.New("solve: invalid goal")

	// ErrUnknownSolver indicates an unregistered solver name.
	ErrUnknownSolver = errors.New("solve: unknown solver")
)

// Solver finds a path from start to goal in g.
type Solver interface {
	Solve(g maze.Graph, start space.CellID, goal Goal, opts ...Option) (maze.Path, error)
}

// Goal is either one target cell or a predicate over cells.
type Goal struct {
	cell  space.CellID
	pred  func(space.CellID) bool
	where bool
}

// To targets a single cell.
func To(id space.CellID) Goal { return Goal{cell: id} }

// Where targets every cell for which fn returns true.
func Where(fn func(space.CellID) bool) Goal {
	return Goal{cell: space.NoCell, pred: fn, where: true}
}

// Cell returns the target cell of a To goal.
func (gl Goal) Cell() (space.CellID, bool) {
	return gl.cell, !gl.where
}

// Reached reports whether id satisfies the goal.
func (gl Goal) Reached(id space.CellID) bool {
	if gl.where {
		return gl.pred(id)
	}
	return id == gl.cell
}

// Hand selects the wall kept at hand by wall followers.
type Hand int

const (
	// LeftHand keeps the wall on the left, turning left first.
	LeftHand Hand = iota
	// RightHand keeps the wall on the right, turning right first.
	RightHand
)

// Option configures a single Solve call. Invalid values are recorded and
// surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the parameters of one Solve call.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxSteps bounds moves (walkers) or expansions (searches).
	// 0 means the solver's default: unlimited, except for Pledge and
	// RandomMouse, which scale a bound with the cell count.
	MaxSteps int

	// Hand is the wall kept at hand by WallFollower and Pledge.
	Hand Hand

	// Heading is the initial heading of WallFollower and the main
	// heading of Pledge, in the space's clockwise heading order.
	Heading int

	// Rand drives RandomMouse and Tremaux tie-breaking. nil means
	// random.New(0) for RandomMouse and neighbour order for Tremaux.
	Rand *rand.Rand

	err error
}

// DefaultOptions returns background context, no step limit, left hand,
// heading 0 and no random source.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxSteps bounds the work of a solve; n < 0 is invalid.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithHand selects the wall follower's hand.
func WithHand(h Hand) Option {
	return func(o *Options) {
		if h != LeftHand && h != RightHand {
			o.err = fmt.Errorf("%w: unknown hand %d", ErrOptionViolation, h)
			return
		}
		o.Hand = h
	}
}

// WithHeading sets the initial (or main) heading. It must be non-negative
// and below the space's heading count, which is checked at solve time.
func WithHeading(h int) Option {
	return func(o *Options) {
		if h < 0 {
			o.err = fmt.Errorf("%w: heading cannot be negative (%d)", ErrOptionViolation, h)
			return
		}
		o.Heading = h
	}
}

// WithRand sets the random source of RandomMouse and Tremaux.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) { o.Rand = rng }
}
