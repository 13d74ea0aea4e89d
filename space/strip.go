package space

import "fmt"

// Strip is a planar grid of fixed width and unbounded height: rows are
// numbered 0, 1, 2, ... without limit. It is the address space of chunked
// row-by-row generation, where the caller materializes one row at a time.
//
// The point (x, y) has id y·Width + x; connection types match a planar Box.
type Strip struct {
	width int
}

// NewStrip creates a strip of the given width.
func NewStrip(width int) (*Strip, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: strip width %d", ErrInvalidShape, width)
	}
	return &Strip{width: width}, nil
}

// Width returns the number of columns.
func (s *Strip) Width() int { return s.width }

// Len returns Unbounded.
func (s *Strip) Len() int { return Unbounded }

// Dimensions returns 2.
func (s *Strip) Dimensions() int { return 2 }

// TypeCount returns 4.
func (s *Strip) TypeCount() int { return 4 }

// Adjacent appends the planar neighbours of id. Row 0 has no northern
// neighbour; every row has a southern one.
func (s *Strip) Adjacent(id CellID, buf []Adjacency) []Adjacency {
	w := CellID(s.width)
	x := id % w
	if x > 0 {
		buf = append(buf, Adjacency{Cell: id - 1, Type: West})
	}
	if x < w-1 {
		buf = append(buf, Adjacency{Cell: id + 1, Type: East})
	}
	if id >= w {
		buf = append(buf, Adjacency{Cell: id - w, Type: North})
	}
	return append(buf, Adjacency{Cell: id + w, Type: South})
}

// Distance returns the Manhattan distance between a and b.
func (s *Strip) Distance(a, b CellID) int {
	w := CellID(s.width)
	return abs(int(a%w-b%w)) + abs(int(a/w-b/w))
}

// CellID maps (x, y) to y·Width + x.
func (s *Strip) CellID(p Point) (CellID, error) {
	if p.Dims() != 2 || p.c[0] < 0 || p.c[0] >= s.width || p.c[1] < 0 {
		return NoCell, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	return CellID(p.c[1]*s.width + p.c[0]), nil
}

// Point maps id back to (x, y).
func (s *Strip) Point(id CellID) (Point, error) {
	if err := checkID(id, Unbounded); err != nil {
		return Point{}, err
	}
	w := CellID(s.width)
	return Pt(int(id%w), int(id/w)), nil
}

// Neighbours returns the neighbours of p.
func (s *Strip) Neighbours(p Point) ([]Neighbour[Point], error) {
	id, err := s.CellID(p)
	if err != nil {
		return nil, err
	}
	adj := s.Adjacent(id, make([]Adjacency, 0, 4))
	out := make([]Neighbour[Point], len(adj))
	for k, e := range adj {
		q, _ := s.Point(e.Cell)
		out[k] = Neighbour[Point]{Point: q, Type: e.Type}
	}
	return out, nil
}

// ConnectionTypes returns the four planar types.
func (s *Strip) ConnectionTypes() []ConnectionType { return Types(4) }

// TypeName returns the compass name of t.
func (s *Strip) TypeName(t ConnectionType) string { return planarTypeName(t) }

// Headings returns 4.
func (s *Strip) Headings() int { return len(planarHeadings) }

// HeadingType maps a clockwise heading (0 = north) to its connection type.
func (s *Strip) HeadingType(h int) ConnectionType { return planarHeadingType(h) }

// TypeHeading maps a planar connection type to its clockwise heading.
func (s *Strip) TypeHeading(t ConnectionType) int { return planarTypeHeading(t) }
