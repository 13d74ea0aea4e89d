package maze

import (
	"errors"
	"iter"

	"github.com/katalvlaran/labyrinth/space"
)

// Sentinel errors for maze operations.
var (
	// ErrNilSpace indicates a nil coordinate space.
	ErrNilSpace = errors.New("maze: space is nil")

	// ErrInvalidAdjacency indicates two cells that are not neighbours in the space.
	ErrInvalidAdjacency = errors.New("maze: cells are not adjacent")

	// ErrInvalidPath indicates a path that is empty, leaves the space, or
	// steps across a closed or non-existent edge.
	ErrInvalidPath = errors.New("maze: invalid path")

	// ErrAsymmetric indicates an edge open on one side only.
	ErrAsymmetric = errors.New("maze: asymmetric connection")
)

// Graph is the query and mutation surface of a maze.
type Graph interface {
	// Topology returns the CellID-level view of the underlying space.
	Topology() space.Topology

	// Len returns the number of cells.
	Len() int

	// Cells yields every CellID in ascending order. The sequence is finite
	// and may be ranged over any number of times.
	Cells() iter.Seq[space.CellID]

	// Adjacent returns the neighbours of id in the space, open or not.
	Adjacent(id space.CellID) []space.Adjacency

	// Open reports whether connection t of id is open. id is not validated.
	Open(id space.CellID, t space.ConnectionType) bool

	// IsConnected reports whether the edge between a and b is open.
	IsConnected(a, b space.CellID) (bool, error)

	// Connect opens the edge between a and b on both sides.
	Connect(a, b space.CellID) error

	// Disconnect closes the edge between a and b on both sides.
	Disconnect(a, b space.CellID) error

	// Degree returns the number of open connections of id.
	Degree(id space.CellID) int

	// Aux, SetAux and ResetAux expose the backend's per-cell tag for the
	// duration of one generator run. ids are not validated.
	Aux(id space.CellID) uint8
	SetAux(id space.CellID, v uint8)
	ResetAux()
}
