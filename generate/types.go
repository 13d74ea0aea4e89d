package generate

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/random"
	"github.com/katalvlaran/labyrinth/space"
	"github.com/katalvlaran/labyrinth/storage"
)

// Sentinel errors for generation.
var (
	// ErrEmptySpace indicates a maze with zero cells.
	ErrEmptySpace = errors.New("generate: empty space")

	// ErrUnsupportedTopology indicates a space lacking the geometry an
	// algorithm needs, such as rows for Sidewinder.
	ErrUnsupportedTopology = errors.New("generate: unsupported topology")

	// ErrInvalidOption indicates an out-of-range option or parameter.
	ErrInvalidOption = errors.New("generate: invalid option")

	// ErrUnknownGenerator indicates an unregistered algorithm name.
	ErrUnknownGenerator = errors.New("generate: unknown generator")
)

// Generator mutates g in place using rng as its only source of randomness.
type Generator interface {
	Generate(g maze.Graph, rng *rand.Rand) error
}

// Func adapts a function to the Generator interface.
type Func func(g maze.Graph, rng *rand.Rand) error

// Generate calls f.
func (f Func) Generate(g maze.Graph, rng *rand.Rand) error { return f(g, rng) }

// Chain runs generators in order, stopping at the first error.
func Chain(gens ...Generator) Generator {
	return Func(func(g maze.Graph, rng *rand.Rand) error {
		for _, gen := range gens {
			if err := gen.Generate(g, rng); err != nil {
				return err
			}
		}
		return nil
	})
}

const (
	visited = storage.AuxVisited
	marked  = storage.AuxMarked
)

// begin validates g, substitutes the default stream for a nil rng and
// clears aux tags. Callers defer g.ResetAux().
func begin(g maze.Graph, rng *rand.Rand) (*rand.Rand, error) {
	if g.Len() == 0 {
		return nil, ErrEmptySpace
	}
	if rng == nil {
		rng = random.New(0)
	}
	g.ResetAux()
	return rng, nil
}

func isVisited(g maze.Graph, id space.CellID) bool { return g.Aux(id)&visited != 0 }

// neighboursWhere appends to buf the neighbours of id whose visited state
// equals want.
func neighboursWhere(g maze.Graph, id space.CellID, want bool, buf []space.CellID) []space.CellID {
	for _, adj := range g.Adjacent(id) {
		if isVisited(g, adj.Cell) == want {
			buf = append(buf, adj.Cell)
		}
	}
	return buf
}

// cursor finds unvisited cells in ascending order. Visited cells never
// become unvisited during a run, so the scan position only moves forward.
type cursor struct {
	g   maze.Graph
	pos space.CellID
}

// next returns the lowest unvisited cell, or false when none is left.
func (c *cursor) next() (space.CellID, bool) {
	n := space.CellID(c.g.Len())
	for c.pos < n && isVisited(c.g, c.pos) {
		c.pos++
	}
	return c.pos, c.pos < n
}

// planar returns the width and height of g if it is a two-dimensional box.
func planar(g maze.Graph, algo string) (w, h int, err error) {
	topo := g.Topology()
	w, h, ok := space.Planar(topo)
	if !ok || topo.TypeCount() != 4 {
		return 0, 0, fmt.Errorf("%w: %s needs a planar box", ErrUnsupportedTopology, algo)
	}
	return w, h, nil
}

// components partitions the cells of g into connected regions of the
// underlying space, ignoring open or closed state.
func components(g maze.Graph) [][]space.CellID {
	n := g.Len()
	seen := make([]bool, n)
	var out [][]space.CellID
	for root := range g.Cells() {
		if seen[root] {
			continue
		}
		seen[root] = true
		comp := []space.CellID{root}
		for i := 0; i < len(comp); i++ {
			for _, adj := range g.Adjacent(comp[i]) {
				if !seen[adj.Cell] {
					seen[adj.Cell] = true
					comp = append(comp, adj.Cell)
				}
			}
		}
		out = append(out, comp)
	}
	return out
}
