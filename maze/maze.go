package maze

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/labyrinth/space"
	"github.com/katalvlaran/labyrinth/storage"
)

// Maze binds a coordinate space to a storage backend.
type Maze[P comparable] struct {
	space space.Space[P]
	store storage.Backend
	n     int
}

// New binds s to a backend allocated by factory (InlineFactory if nil).
// Unbounded spaces and spaces whose connection types do not fit the
// backend fail with storage.ErrCapacityExceeded.
// Complexity: O(backend allocation).
func New[P comparable](s space.Space[P], factory storage.Factory) (*Maze[P], error) {
	if s == nil {
		return nil, ErrNilSpace
	}
	if factory == nil {
		factory = storage.InlineFactory
	}
	n := s.Len()
	if n == space.Unbounded {
		return nil, fmt.Errorf("%w: unbounded space cannot be stored whole", storage.ErrCapacityExceeded)
	}
	store, err := factory(n, s.TypeCount())
	if err != nil {
		return nil, err
	}
	if store.Len() < n || store.Types() < s.TypeCount() {
		return nil, fmt.Errorf("%w: backend covers %d cells × %d types, space needs %d × %d",
			storage.ErrCapacityExceeded, store.Len(), store.Types(), n, s.TypeCount())
	}
	return &Maze[P]{space: s, store: store, n: n}, nil
}

// Space returns the bound coordinate space.
func (m *Maze[P]) Space() space.Space[P] { return m.space }

// Backend returns the bound storage backend.
func (m *Maze[P]) Backend() storage.Backend { return m.store }

// Topology returns the space as a Topology.
func (m *Maze[P]) Topology() space.Topology { return m.space }

// Len returns the number of cells.
func (m *Maze[P]) Len() int { return m.n }

// Cells yields 0..Len()-1.
func (m *Maze[P]) Cells() iter.Seq[space.CellID] {
	return func(yield func(space.CellID) bool) {
		for id := space.CellID(0); id < space.CellID(m.n); id++ {
			if !yield(id) {
				return
			}
		}
	}
}

// Adjacent returns the neighbours of id, open or not.
func (m *Maze[P]) Adjacent(id space.CellID) []space.Adjacency {
	return m.space.Adjacent(id, make([]space.Adjacency, 0, 8))
}

// Open reports whether connection t of id is open.
func (m *Maze[P]) Open(id space.CellID, t space.ConnectionType) bool {
	return m.store.Connection(id, t)
}

// check validates id against the space.
func (m *Maze[P]) check(id space.CellID) error {
	if id < 0 || id >= space.CellID(m.n) {
		return fmt.Errorf("%w: cell %d", space.ErrOutOfBounds, id)
	}
	return nil
}

// link returns the connection type leading from a to b.
func (m *Maze[P]) link(a, b space.CellID) (space.ConnectionType, error) {
	var buf [8]space.Adjacency
	for _, adj := range m.space.Adjacent(a, buf[:0]) {
		if adj.Cell == b {
			return adj.Type, nil
		}
	}
	return 0, fmt.Errorf("%w: %d and %d", ErrInvalidAdjacency, a, b)
}

// links validates a and b and returns the connection types of both sides.
func (m *Maze[P]) links(a, b space.CellID) (ab, ba space.ConnectionType, err error) {
	if err = m.check(a); err != nil {
		return 0, 0, err
	}
	if err = m.check(b); err != nil {
		return 0, 0, err
	}
	if ab, err = m.link(a, b); err != nil {
		return 0, 0, err
	}
	if ba, err = m.link(b, a); err != nil {
		return 0, 0, err
	}
	return ab, ba, nil
}

// IsConnected reports whether the edge between a and b is open.
// Fails with ErrInvalidAdjacency if a and b are not neighbours.
func (m *Maze[P]) IsConnected(a, b space.CellID) (bool, error) {
	if err := m.check(a); err != nil {
		return false, err
	}
	if err := m.check(b); err != nil {
		return false, err
	}
	t, err := m.link(a, b)
	if err != nil {
		return false, err
	}
	return m.store.Connection(a, t), nil
}

// Connect opens the edge between a and b on both sides.
func (m *Maze[P]) Connect(a, b space.CellID) error {
	return m.set(a, b, true)
}

// Disconnect closes the edge between a and b on both sides.
func (m *Maze[P]) Disconnect(a, b space.CellID) error {
	return m.set(a, b, false)
}

func (m *Maze[P]) set(a, b space.CellID, open bool) error {
	ab, ba, err := m.links(a, b)
	if err != nil {
		return err
	}
	m.store.SetConnection(a, ab, open)
	m.store.SetConnection(b, ba, open)
	return nil
}

// Degree returns the number of open connections of id.
func (m *Maze[P]) Degree(id space.CellID) int {
	var buf [8]space.Adjacency
	d := 0
	for _, adj := range m.space.Adjacent(id, buf[:0]) {
		if m.store.Connection(id, adj.Type) {
			d++
		}
	}
	return d
}

// OpenNeighbours returns the cells reachable from id in one step.
func (m *Maze[P]) OpenNeighbours(id space.CellID) []space.CellID {
	var out []space.CellID
	for _, adj := range m.Adjacent(id) {
		if m.store.Connection(id, adj.Type) {
			out = append(out, adj.Cell)
		}
	}
	return out
}

// Aux returns the backend tag of id.
func (m *Maze[P]) Aux(id space.CellID) uint8 { return m.store.Aux(id) }

// SetAux stores the backend tag of id.
func (m *Maze[P]) SetAux(id space.CellID, v uint8) { m.store.SetAux(id, v) }

// ResetAux clears every backend tag.
func (m *Maze[P]) ResetAux() { m.store.ResetAux() }

// Reset closes every connection, returning the maze to its empty state.
func (m *Maze[P]) Reset() { m.store.Clear() }

// CellOf maps a point to its CellID.
func (m *Maze[P]) CellOf(p P) (space.CellID, error) { return m.space.CellID(p) }

// PointOf maps a CellID to its point.
func (m *Maze[P]) PointOf(id space.CellID) (P, error) { return m.space.Point(id) }

// ConnectPoints opens the edge between two points.
func (m *Maze[P]) ConnectPoints(p, q P) error {
	a, b, err := m.pair(p, q)
	if err != nil {
		return err
	}
	return m.Connect(a, b)
}

// DisconnectPoints closes the edge between two points.
func (m *Maze[P]) DisconnectPoints(p, q P) error {
	a, b, err := m.pair(p, q)
	if err != nil {
		return err
	}
	return m.Disconnect(a, b)
}

// IsConnectedPoints reports whether the edge between two points is open.
func (m *Maze[P]) IsConnectedPoints(p, q P) (bool, error) {
	a, b, err := m.pair(p, q)
	if err != nil {
		return false, err
	}
	return m.IsConnected(a, b)
}

func (m *Maze[P]) pair(p, q P) (space.CellID, space.CellID, error) {
	a, err := m.space.CellID(p)
	if err != nil {
		return 0, 0, err
	}
	b, err := m.space.CellID(q)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

// PathPoints converts a path of CellIDs into points.
func (m *Maze[P]) PathPoints(path Path) ([]P, error) {
	out := make([]P, len(path))
	for i, id := range path {
		p, err := m.space.Point(id)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}
