package space

import "fmt"

// Hex connection types in clockwise order starting east.
const (
	HexEast      ConnectionType = 0
	HexSouthEast ConnectionType = 1
	HexSouthWest ConnectionType = 2
	HexWest      ConnectionType = 3
	HexNorthWest ConnectionType = 4
	HexNorthEast ConnectionType = 5
)

// hexOffsets holds the axial (q, r) step of each hex connection type.
var hexOffsets = [6][2]int{{1, 0}, {0, 1}, {-1, 1}, {-1, 0}, {0, -1}, {1, -1}}

// HexPoint is an axial hexagon coordinate.
type HexPoint struct {
	Q, R int
}

// String renders p as "<q, r>".
func (p HexPoint) String() string { return fmt.Sprintf("<%d, %d>", p.Q, p.R) }

// Hex is a parallelogram of pointy-top hexagons in axial coordinates,
// 0 ≤ Q < width and 0 ≤ R < height. Each interior cell has six neighbours.
// The point (q, r) has id r·width + q.
type Hex struct {
	width, height int
}

// NewHex creates a hex space of the given width and height.
func NewHex(width, height int) (*Hex, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: hex space %dx%d", ErrInvalidShape, width, height)
	}
	if width > int(^uint(0)>>1)/height {
		return nil, fmt.Errorf("%w: cell count overflows", ErrInvalidShape)
	}
	return &Hex{width: width, height: height}, nil
}

// Size returns the width and height.
func (h *Hex) Size() (width, height int) { return h.width, h.height }

// Len returns width·height.
func (h *Hex) Len() int { return h.width * h.height }

// Dimensions returns 2.
func (h *Hex) Dimensions() int { return 2 }

// TypeCount returns 6.
func (h *Hex) TypeCount() int { return len(hexOffsets) }

// Adjacent appends the in-bounds neighbours of id in clockwise order from east.
func (h *Hex) Adjacent(id CellID, buf []Adjacency) []Adjacency {
	q, r := int(id)%h.width, int(id)/h.width
	for t, d := range hexOffsets {
		nq, nr := q+d[0], r+d[1]
		if nq < 0 || nq >= h.width || nr < 0 || nr >= h.height {
			continue
		}
		buf = append(buf, Adjacency{Cell: CellID(nr*h.width + nq), Type: ConnectionType(t)})
	}
	return buf
}

// Distance returns the hex-grid distance between a and b.
func (h *Hex) Distance(a, b CellID) int {
	dq := int(a)%h.width - int(b)%h.width
	dr := int(a)/h.width - int(b)/h.width
	return (abs(dq) + abs(dr) + abs(dq+dr)) / 2
}

// CellID maps p to its dense address.
func (h *Hex) CellID(p HexPoint) (CellID, error) {
	if p.Q < 0 || p.Q >= h.width || p.R < 0 || p.R >= h.height {
		return NoCell, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	return CellID(p.R*h.width + p.Q), nil
}

// Point maps id back to axial coordinates.
func (h *Hex) Point(id CellID) (HexPoint, error) {
	if err := checkID(id, h.Len()); err != nil {
		return HexPoint{}, err
	}
	return HexPoint{Q: int(id) % h.width, R: int(id) / h.width}, nil
}

// Neighbours returns the neighbours of p.
func (h *Hex) Neighbours(p HexPoint) ([]Neighbour[HexPoint], error) {
	id, err := h.CellID(p)
	if err != nil {
		return nil, err
	}
	adj := h.Adjacent(id, make([]Adjacency, 0, 6))
	out := make([]Neighbour[HexPoint], len(adj))
	for k, e := range adj {
		q, _ := h.Point(e.Cell)
		out[k] = Neighbour[HexPoint]{Point: q, Type: e.Type}
	}
	return out, nil
}

// ConnectionTypes returns the six hex types.
func (h *Hex) ConnectionTypes() []ConnectionType { return Types(len(hexOffsets)) }

// TypeName names t.
func (h *Hex) TypeName(t ConnectionType) string {
	names := [...]string{"east", "south-east", "south-west", "west", "north-west", "north-east"}
	if int(t) < len(names) {
		return names[t]
	}
	return fmt.Sprintf("type(%d)", t)
}

// Headings returns 6.
func (h *Hex) Headings() int { return len(hexOffsets) }

// HeadingType maps a clockwise heading (0 = east) to its connection type.
func (h *Hex) HeadingType(hd int) ConnectionType {
	n := len(hexOffsets)
	return ConnectionType(((hd % n) + n) % n)
}

// TypeHeading maps a hex connection type to its heading.
func (h *Hex) TypeHeading(t ConnectionType) int { return int(t) }
