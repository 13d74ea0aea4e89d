package space

import (
	"fmt"
	"math/bits"
	"sort"
)

// Polar connection types.
const (
	Inward           ConnectionType = 0
	Clockwise        ConnectionType = 1
	CounterClockwise ConnectionType = 2
	Outward          ConnectionType = 3
	// OutwardSplit is the second outward link of a cell whose outer ring
	// has twice as many sectors.
	OutwardSplit ConnectionType = 4
)

// PolarPoint addresses a cell by ring (0 = innermost) and sector within the ring.
type PolarPoint struct {
	Ring   int
	Sector int
}

// String renders p as "(ring ∠ sector)".
func (p PolarPoint) String() string { return fmt.Sprintf("(%d ∠ %d)", p.Ring, p.Sector) }

// Polar is a circular maze of concentric rings. Ring r holds
// base·2^⌊log2(r+1)⌋ sectors, so cells keep roughly the same arc length as
// the radius grows. When a ring doubles, each inner cell has two outer
// neighbours (Outward and OutwardSplit); otherwise it has one.
//
// CellIDs run ring by ring, sector by sector.
type Polar struct {
	rings   int
	base    int
	offsets []int // offsets[r] = id of (r, 0); offsets[rings] = Len()
}

// NewPolar creates a polar space with the given ring count and innermost
// sector count. base must be at least 3 so that clockwise and
// counter-clockwise neighbours are distinct cells.
// Complexity: O(rings).
func NewPolar(rings, base int) (*Polar, error) {
	if rings <= 0 {
		return nil, fmt.Errorf("%w: polar space needs at least one ring, got %d", ErrInvalidShape, rings)
	}
	if base < 3 {
		return nil, fmt.Errorf("%w: polar space needs at least 3 sectors, got %d", ErrInvalidShape, base)
	}
	p := &Polar{rings: rings, base: base, offsets: make([]int, rings+1)}
	for r := 0; r < rings; r++ {
		n := p.Sectors(r)
		if n <= 0 || p.offsets[r] > int(^uint(0)>>1)-n {
			return nil, fmt.Errorf("%w: cell count overflows", ErrInvalidShape)
		}
		p.offsets[r+1] = p.offsets[r] + n
	}
	return p, nil
}

// Rings returns the number of rings.
func (p *Polar) Rings() int { return p.rings }

// Sectors returns the number of sectors in ring r.
func (p *Polar) Sectors(r int) int {
	return p.base << (bits.Len(uint(r+1)) - 1)
}

// Len returns the total number of cells.
func (p *Polar) Len() int { return p.offsets[p.rings] }

// Dimensions returns 2.
func (p *Polar) Dimensions() int { return 2 }

// TypeCount returns 5.
func (p *Polar) TypeCount() int { return 5 }

// ring locates the ring holding id.
func (p *Polar) ring(id CellID) int {
	i := int(id)
	return sort.Search(p.rings, func(r int) bool { return p.offsets[r+1] > i })
}

// Adjacent appends inward, clockwise, counter-clockwise and outward neighbours.
// Complexity: O(log rings).
func (p *Polar) Adjacent(id CellID, buf []Adjacency) []Adjacency {
	r := p.ring(id)
	s := int(id) - p.offsets[r]
	n := p.Sectors(r)
	if r > 0 {
		inner := p.Sectors(r - 1)
		buf = append(buf, Adjacency{Cell: CellID(p.offsets[r-1] + s*inner/n), Type: Inward})
	}
	buf = append(buf,
		Adjacency{Cell: CellID(p.offsets[r] + (s+1)%n), Type: Clockwise},
		Adjacency{Cell: CellID(p.offsets[r] + (s+n-1)%n), Type: CounterClockwise},
	)
	if r+1 < p.rings {
		outer := p.Sectors(r + 1)
		if outer == n {
			buf = append(buf, Adjacency{Cell: CellID(p.offsets[r+1] + s), Type: Outward})
		} else {
			buf = append(buf,
				Adjacency{Cell: CellID(p.offsets[r+1] + 2*s), Type: Outward},
				Adjacency{Cell: CellID(p.offsets[r+1] + 2*s + 1), Type: OutwardSplit},
			)
		}
	}
	return buf
}

// Distance returns the ring difference; every move changes the ring by at most one.
func (p *Polar) Distance(a, b CellID) int {
	return abs(p.ring(a) - p.ring(b))
}

// CellID maps pt to its dense address.
func (p *Polar) CellID(pt PolarPoint) (CellID, error) {
	if pt.Ring < 0 || pt.Ring >= p.rings || pt.Sector < 0 || pt.Sector >= p.Sectors(pt.Ring) {
		return NoCell, fmt.Errorf("%w: %v", ErrOutOfBounds, pt)
	}
	return CellID(p.offsets[pt.Ring] + pt.Sector), nil
}

// Point maps id back to ring and sector.
func (p *Polar) Point(id CellID) (PolarPoint, error) {
	if err := checkID(id, p.Len()); err != nil {
		return PolarPoint{}, err
	}
	r := p.ring(id)
	return PolarPoint{Ring: r, Sector: int(id) - p.offsets[r]}, nil
}

// Neighbours returns the neighbours of pt.
func (p *Polar) Neighbours(pt PolarPoint) ([]Neighbour[PolarPoint], error) {
	id, err := p.CellID(pt)
	if err != nil {
		return nil, err
	}
	adj := p.Adjacent(id, make([]Adjacency, 0, 5))
	out := make([]Neighbour[PolarPoint], len(adj))
	for k, e := range adj {
		q, _ := p.Point(e.Cell)
		out[k] = Neighbour[PolarPoint]{Point: q, Type: e.Type}
	}
	return out, nil
}

// ConnectionTypes returns the five polar types.
func (p *Polar) ConnectionTypes() []ConnectionType { return Types(5) }

// TypeName names t.
func (p *Polar) TypeName(t ConnectionType) string {
	switch t {
	case Inward:
		return "inward"
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counter-clockwise"
	case Outward:
		return "outward"
	case OutwardSplit:
		return "outward-split"
	}
	return fmt.Sprintf("type(%d)", t)
}
