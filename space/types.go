package space

import (
	"errors"
	"fmt"
)

// Sentinel errors for coordinate spaces.
var (
	// ErrOutOfBounds indicates a point or CellID outside the space.
	ErrOutOfBounds = errors.New("space: point out of bounds")

	// ErrInvalidShape indicates constructor arguments that describe no valid space.
	ErrInvalidShape = errors.New("space: invalid shape")
)

// Unbounded is returned by Topology.Len for spaces with no finite point count.
const Unbounded = -1

// CellID is the dense integer address a space assigns to each of its points.
type CellID int64

// NoCell marks the absence of a cell (e.g. the parent of a search root).
const NoCell CellID = -1

// ConnectionType identifies which edge of a cell is referenced.
// Values are small, topology-specific and contiguous from 0 to TypeCount()-1.
type ConnectionType uint8

// Adjacency pairs a neighbouring cell with the connection type leading to it.
type Adjacency struct {
	Cell CellID
	Type ConnectionType
}

// Neighbour pairs a neighbouring point with the connection type leading to it.
type Neighbour[P comparable] struct {
	Point P
	Type  ConnectionType
}

// Topology is the CellID-level view of a space.
type Topology interface {
	// Len returns the number of points, or Unbounded.
	Len() int

	// TypeCount returns the number of distinct connection types a cell may carry.
	TypeCount() int

	// Adjacent appends the neighbours of id to buf and returns the extended slice.
	// The order is fixed per cell, which keeps every traversal deterministic.
	// Behaviour is undefined for ids outside the space.
	Adjacent(id CellID, buf []Adjacency) []Adjacency

	// Distance returns a lower bound on the number of moves between a and b.
	Distance(a, b CellID) int
}

// Space is the point-level view of a coordinate space.
type Space[P comparable] interface {
	Topology

	// Dimensions returns the number of coordinates per point (0 for graph-only spaces).
	Dimensions() int

	// CellID maps p to its dense address, or fails with ErrOutOfBounds.
	CellID(p P) (CellID, error)

	// Point maps id back to its point, or fails with ErrOutOfBounds.
	Point(id CellID) (P, error)

	// Neighbours returns the neighbours of p with their connection types.
	Neighbours(p P) ([]Neighbour[P], error)

	// ConnectionTypes returns every connection type valid in the space.
	ConnectionTypes() []ConnectionType

	// TypeName returns a human-readable name for t.
	TypeName(t ConnectionType) string
}

// Oriented is implemented by planar topologies whose connection types form a
// cyclic clockwise sequence of headings. Headings returns 0 when the space
// has no such orientation.
type Oriented interface {
	Headings() int
	HeadingType(h int) ConnectionType
	TypeHeading(t ConnectionType) int
}

// Shaped is implemented by box-like topologies addressed in row-major order
// with axis 0 varying fastest.
type Shaped interface {
	Shape() []int
}

// Headings reports the number of headings of t, or 0 if t is not oriented.
func Headings(t Topology) int {
	o, ok := t.(Oriented)
	if !ok {
		return 0
	}
	return o.Headings()
}

// Planar returns the width and height of t if it is a two-dimensional Shaped topology.
func Planar(t Topology) (w, h int, ok bool) {
	s, isShaped := t.(Shaped)
	if !isShaped {
		return 0, 0, false
	}
	shape := s.Shape()
	if len(shape) != 2 {
		return 0, 0, false
	}
	return shape[0], shape[1], true
}

// Types returns the slice 0..n-1 of connection types.
func Types(n int) []ConnectionType {
	out := make([]ConnectionType, n)
	for i := range out {
		out[i] = ConnectionType(i)
	}
	return out
}

// checkID validates id against a finite length n.
func checkID(id CellID, n int) error {
	if id < 0 || (n != Unbounded && id >= CellID(n)) {
		return fmt.Errorf("%w: cell %d", ErrOutOfBounds, id)
	}
	return nil
}

// abs returns |x|.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
