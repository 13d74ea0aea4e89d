package config

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/random"
	"github.com/katalvlaran/labyrinth/space"
	"github.com/katalvlaran/labyrinth/storage"
)

// Instance is an empty maze built from a Run, with resolved endpoints.
type Instance struct {
	Maze  maze.Graph
	Start space.CellID
	Goal  space.CellID

	// Point converts a cell back into display coordinates.
	Point func(space.CellID) ([]int, error)
}

// Build allocates the space and maze described by r. The maze is empty;
// run Carver against it with Rand.
func (r Run) Build() (*Instance, error) {
	f, err := r.Factory()
	if err != nil {
		return nil, err
	}
	switch r.Space.Kind {
	case KindBox:
		b, err := space.NewBox(r.Space.Dims...)
		if err != nil {
			return nil, err
		}
		return build(r, b, f, func(c []int) (space.Point, error) { return space.NewPoint(c...) },
			func(p space.Point) []int { return p.Coords() })
	case KindPolar:
		p, err := space.NewPolar(r.Space.Rings, r.Space.Base)
		if err != nil {
			return nil, err
		}
		return build(r, p, f, func(c []int) (space.PolarPoint, error) {
			return space.PolarPoint{Ring: c[0], Sector: c[1]}, nil
		}, func(p space.PolarPoint) []int { return []int{p.Ring, p.Sector} })
	case KindHex:
		h, err := space.NewHex(r.Space.Width, r.Space.Height)
		if err != nil {
			return nil, err
		}
		return build(r, h, f, func(c []int) (space.HexPoint, error) {
			return space.HexPoint{Q: c[0], R: c[1]}, nil
		}, func(p space.HexPoint) []int { return []int{p.Q, p.R} })
	}
	return nil, fmt.Errorf("%w: unknown space kind %q", ErrInvalidConfig, r.Space.Kind)
}

func build[P comparable](r Run, s space.Space[P], f storage.Factory,
	point func([]int) (P, error), coords func(P) []int) (*Instance, error) {
	m, err := maze.New[P](s, f)
	if err != nil {
		return nil, err
	}
	cell := func(c []int, fallback space.CellID) (space.CellID, error) {
		if c == nil {
			return fallback, nil
		}
		p, err := point(c)
		if err != nil {
			return 0, err
		}
		return s.CellID(p)
	}
	inst := &Instance{Maze: m, Point: func(id space.CellID) ([]int, error) {
		p, err := s.Point(id)
		if err != nil {
			return nil, err
		}
		return coords(p), nil
	}}
	if inst.Start, err = cell(r.Start, 0); err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	if inst.Goal, err = cell(r.Goal, space.CellID(m.Len()-1)); err != nil {
		return nil, fmt.Errorf("goal: %w", err)
	}
	return inst, nil
}

// Rand returns the generator's random source.
func (r Run) Rand() *rand.Rand {
	return random.New(r.Generator.Seed)
}

// randomFor derives the solver stream from its seed.
func randomFor(seed int64) *rand.Rand {
	return random.Derive(random.New(seed), 1)
}
