package generate

import (
	"fmt"
	"iter"
	"math/rand"

	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/space"
)

// Row is one generated row of an Eller maze. East[x] opens the passage
// between columns x and x+1; South[x] opens the passage from column x of
// this row to the row below.
type Row struct {
	Y     int
	East  []bool
	South []bool
}

// Passages returns the open passages of r as CellID pairs of s, whose
// width must match the row.
func (r Row) Passages(s *space.Strip) ([][2]space.CellID, error) {
	if s.Width() != len(r.East) {
		return nil, fmt.Errorf("%w: row width %d, strip width %d", ErrInvalidOption, len(r.East), s.Width())
	}
	w := space.CellID(s.Width())
	base := space.CellID(r.Y) * w
	var out [][2]space.CellID
	for x := space.CellID(0); x < w; x++ {
		id := base + x
		if r.East[x] {
			out = append(out, [2]space.CellID{id, id + 1})
		}
		if r.South[x] {
			out = append(out, [2]space.CellID{id, id + w})
		}
	}
	return out, nil
}

// EllerStream generates an Eller maze one row at a time, keeping only the
// set membership of the current row. It can run for any number of rows, so
// it suits unbounded spaces such as space.Strip; the caller decides when to
// ask for the next row and when to Finish.
type EllerStream struct {
	rng     *rand.Rand
	sets    []int
	nextSet int
	y       int
	done    bool
}

// NewEllerStream starts a stream of rows of the given width.
func NewEllerStream(width int, rng *rand.Rand) (*EllerStream, error) {
	if width < 1 {
		return nil, fmt.Errorf("%w: eller width %d", ErrInvalidOption, width)
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: eller stream needs a random source", ErrInvalidOption)
	}
	return &EllerStream{rng: rng, sets: make([]int, width), nextSet: 1}, nil
}

// Y returns the index of the next row to be produced.
func (e *EllerStream) Y() int { return e.y }

// Done reports whether Finish has been called.
func (e *EllerStream) Done() bool { return e.done }

// Next produces an inner row: random eastward merges of distinct sets,
// then at least one southward passage per set.
// Complexity: O(w²) worst case per row for set relabelling.
func (e *EllerStream) Next() Row {
	w := len(e.sets)
	row := e.fill()
	for x := 0; x+1 < w; x++ {
		if e.sets[x] != e.sets[x+1] && e.rng.Intn(2) == 0 {
			row.East[x] = true
			e.merge(e.sets[x+1], e.sets[x])
		}
	}

	// group columns by set in first-seen order
	var order []int
	members := make(map[int][]int)
	for x, s := range e.sets {
		if _, ok := members[s]; !ok {
			order = append(order, s)
		}
		members[s] = append(members[s], x)
	}
	for _, s := range order {
		cols := members[s]
		forced := cols[e.rng.Intn(len(cols))]
		for _, x := range cols {
			if x == forced || e.rng.Intn(2) == 0 {
				row.South[x] = true
			}
		}
	}
	for x := range e.sets {
		if !row.South[x] {
			e.sets[x] = 0
		}
	}
	e.y++
	return row
}

// Finish produces the last row, joining every pair of neighbouring columns
// that still lie in different sets. The stream is spent afterwards.
func (e *EllerStream) Finish() Row {
	row := e.fill()
	for x := 0; x+1 < len(e.sets); x++ {
		if e.sets[x] != e.sets[x+1] {
			row.East[x] = true
			e.merge(e.sets[x+1], e.sets[x])
		}
	}
	e.y++
	e.done = true
	return row
}

// Rows yields inner rows until the consumer stops ranging. Finish is left
// to the caller.
func (e *EllerStream) Rows() iter.Seq[Row] {
	return func(yield func(Row) bool) {
		for !e.done {
			if !yield(e.Next()) {
				return
			}
		}
	}
}

// fill gives every column without a set a fresh one and returns an empty row.
func (e *EllerStream) fill() Row {
	w := len(e.sets)
	for x := range e.sets {
		if e.sets[x] == 0 {
			e.sets[x] = e.nextSet
			e.nextSet++
		}
	}
	return Row{Y: e.y, East: make([]bool, w), South: make([]bool, w)}
}

// merge relabels every column of set from into set to.
func (e *EllerStream) merge(from, to int) {
	for x, s := range e.sets {
		if s == from {
			e.sets[x] = to
		}
	}
}

// Eller carves a planar box with an EllerStream, one row at a time.
//
// Complexity: O(V · w) worst case, O(w) memory beyond the maze.
type Eller struct{}

// Generate implements Generator.
func (Eller) Generate(g maze.Graph, rng *rand.Rand) error {
	rng, err := begin(g, rng)
	if err != nil {
		return err
	}
	defer g.ResetAux()
	w, h, err := planar(g, "eller")
	if err != nil {
		return err
	}
	stream, err := NewEllerStream(w, rng)
	if err != nil {
		return err
	}
	for y := 0; y < h; y++ {
		row := stream.Next
		if y == h-1 {
			row = stream.Finish
		}
		if err = applyRow(g, row(), w); err != nil {
			return err
		}
	}
	return nil
}

func applyRow(g maze.Graph, r Row, w int) error {
	base := space.CellID(r.Y * w)
	for x := 0; x < w; x++ {
		id := base + space.CellID(x)
		if r.East[x] {
			if err := g.Connect(id, id+1); err != nil {
				return err
			}
		}
		if r.South[x] {
			if err := g.Connect(id, id+space.CellID(w)); err != nil {
				return err
			}
		}
	}
	return nil
}
