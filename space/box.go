package space

import (
	"fmt"
	"math"
)

// Planar connection types of a two-dimensional Box or Strip.
// Axis 0 runs west→east, axis 1 runs north→south.
const (
	West  ConnectionType = 0
	East  ConnectionType = 1
	North ConnectionType = 2
	South ConnectionType = 3
)

// planarHeadings lists the planar types in clockwise order starting at North.
var planarHeadings = [4]ConnectionType{North, East, South, West}

// Box is an N-dimensional rectangular grid. Each cell has up to 2·N
// axis-aligned neighbours; the connection type toward the negative side of
// axis a is 2a and toward the positive side is 2a+1.
//
// CellIDs are assigned in row-major order with axis 0 varying fastest, so
// in a W×H box the point (x, y) has id y·W + x.
type Box struct {
	shape   []int
	strides []int
	size    int
}

// NewBox creates a box with the given extent on each axis.
// Returns ErrInvalidShape for zero axes, more than MaxDims axes, a
// non-positive extent, or a cell count that overflows int64.
// Complexity: O(D).
func NewBox(shape ...int) (*Box, error) {
	if len(shape) == 0 || len(shape) > MaxDims {
		return nil, fmt.Errorf("%w: box needs 1..%d axes, got %d", ErrInvalidShape, MaxDims, len(shape))
	}
	b := &Box{
		shape:   make([]int, len(shape)),
		strides: make([]int, len(shape)),
		size:    1,
	}
	for a, d := range shape {
		if d <= 0 {
			return nil, fmt.Errorf("%w: axis %d has extent %d", ErrInvalidShape, a, d)
		}
		if b.size > math.MaxInt64/d {
			return nil, fmt.Errorf("%w: cell count overflows", ErrInvalidShape)
		}
		b.shape[a] = d
		b.strides[a] = b.size
		b.size *= d
	}
	return b, nil
}

// Len returns the number of cells in the box.
func (b *Box) Len() int { return b.size }

// Dimensions returns the number of axes.
func (b *Box) Dimensions() int { return len(b.shape) }

// TypeCount returns 2·D.
func (b *Box) TypeCount() int { return 2 * len(b.shape) }

// Shape returns a copy of the per-axis extents.
func (b *Box) Shape() []int {
	out := make([]int, len(b.shape))
	copy(out, b.shape)
	return out
}

// Adjacent appends the axis-aligned neighbours of id, clipped at the boundary,
// in axis order with the negative side first.
// Complexity: O(D).
func (b *Box) Adjacent(id CellID, buf []Adjacency) []Adjacency {
	i := int(id)
	for a, d := range b.shape {
		s := b.strides[a]
		c := (i / s) % d
		if c > 0 {
			buf = append(buf, Adjacency{Cell: id - CellID(s), Type: ConnectionType(2 * a)})
		}
		if c < d-1 {
			buf = append(buf, Adjacency{Cell: id + CellID(s), Type: ConnectionType(2*a + 1)})
		}
	}
	return buf
}

// Distance returns the Manhattan distance between a and b.
func (b *Box) Distance(x, y CellID) int {
	i, j := int(x), int(y)
	dist := 0
	for a, d := range b.shape {
		s := b.strides[a]
		dist += abs((i/s)%d - (j/s)%d)
	}
	return dist
}

// CellID maps p to its row-major address.
func (b *Box) CellID(p Point) (CellID, error) {
	if p.Dims() != len(b.shape) {
		return NoCell, fmt.Errorf("%w: %v has %d axes, box has %d", ErrOutOfBounds, p, p.Dims(), len(b.shape))
	}
	id := 0
	for a, d := range b.shape {
		c := p.c[a]
		if c < 0 || c >= d {
			return NoCell, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
		}
		id += c * b.strides[a]
	}
	return CellID(id), nil
}

// Point maps id back to its coordinates.
func (b *Box) Point(id CellID) (Point, error) {
	var p Point
	if err := checkID(id, b.size); err != nil {
		return p, err
	}
	i := int(id)
	for a, d := range b.shape {
		p.c[a] = (i / b.strides[a]) % d
	}
	p.n = uint8(len(b.shape))
	return p, nil
}

// Neighbours returns the neighbours of p.
func (b *Box) Neighbours(p Point) ([]Neighbour[Point], error) {
	id, err := b.CellID(p)
	if err != nil {
		return nil, err
	}
	adj := b.Adjacent(id, make([]Adjacency, 0, 2*len(b.shape)))
	out := make([]Neighbour[Point], len(adj))
	for k, e := range adj {
		q, _ := b.Point(e.Cell)
		out[k] = Neighbour[Point]{Point: q, Type: e.Type}
	}
	return out, nil
}

// ConnectionTypes returns 0..2·D-1.
func (b *Box) ConnectionTypes() []ConnectionType { return Types(b.TypeCount()) }

// TypeName names t: compass names for planar boxes, signed axis names otherwise.
func (b *Box) TypeName(t ConnectionType) string {
	if int(t) >= b.TypeCount() {
		return fmt.Sprintf("type(%d)", t)
	}
	if len(b.shape) == 2 {
		return planarTypeName(t)
	}
	sign := "-"
	if t%2 == 1 {
		sign = "+"
	}
	return sign + axisName(int(t)/2)
}

// Boundary reports whether id lies on the outer face of the box.
func (b *Box) Boundary(id CellID) bool {
	i := int(id)
	for a, d := range b.shape {
		c := (i / b.strides[a]) % d
		if c == 0 || c == d-1 {
			return true
		}
	}
	return false
}

// Headings returns 4 for planar boxes and 0 otherwise.
func (b *Box) Headings() int {
	if len(b.shape) != 2 {
		return 0
	}
	return len(planarHeadings)
}

// HeadingType maps a clockwise heading (0 = north) to its connection type.
func (b *Box) HeadingType(h int) ConnectionType { return planarHeadingType(h) }

// TypeHeading maps a planar connection type to its clockwise heading.
func (b *Box) TypeHeading(t ConnectionType) int { return planarTypeHeading(t) }

func planarTypeName(t ConnectionType) string {
	switch t {
	case West:
		return "west"
	case East:
		return "east"
	case North:
		return "north"
	case South:
		return "south"
	}
	return fmt.Sprintf("type(%d)", t)
}

func planarHeadingType(h int) ConnectionType {
	n := len(planarHeadings)
	return planarHeadings[((h%n)+n)%n]
}

func planarTypeHeading(t ConnectionType) int {
	for h, ht := range planarHeadings {
		if ht == t {
			return h
		}
	}
	return -1
}

func axisName(a int) string {
	names := [...]string{"x", "y", "z", "w"}
	if a < len(names) {
		return names[a]
	}
	return fmt.Sprintf("a%d", a)
}
