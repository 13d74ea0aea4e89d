package space

import (
	"strconv"
	"strings"
)

// MaxDims is the largest dimensionality a Point can carry.
const MaxDims = 8

// Point is an integer coordinate tuple of up to MaxDims axes.
// It is a comparable value: equality and map hashing are structural.
type Point struct {
	c [MaxDims]int
	n uint8
}

// Pt builds a Point from its coordinates. It panics if more than MaxDims
// coordinates are supplied, in the manner of regexp.MustCompile; use NewPoint
// for untrusted input.
func Pt(coords ...int) Point {
	p, err := NewPoint(coords...)
	if err != nil {
		panic(err)
	}
	return p
}

// NewPoint builds a Point from its coordinates, or fails with ErrInvalidShape.
func NewPoint(coords ...int) (Point, error) {
	var p Point
	if len(coords) > MaxDims {
		return p, ErrInvalidShape
	}
	copy(p.c[:], coords)
	p.n = uint8(len(coords))
	return p, nil
}

// Dims returns the number of coordinates in p.
func (p Point) Dims() int { return int(p.n) }

// At returns the coordinate on axis; axes past Dims read as 0.
func (p Point) At(axis int) int {
	if axis < 0 || axis >= int(p.n) {
		return 0
	}
	return p.c[axis]
}

// Coords returns a copy of the coordinates.
func (p Point) Coords() []int {
	out := make([]int, p.n)
	copy(out, p.c[:p.n])
	return out
}

// String renders p as "(x, y, ...)".
func (p Point) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i := 0; i < int(p.n); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(p.c[i]))
	}
	sb.WriteByte(')')
	return sb.String()
}
