package storage

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/labyrinth/space"
)

// Sentinel errors for storage backends.
var (
	// ErrCapacityExceeded indicates a space too large for the backend's per-cell encoding.
	ErrCapacityExceeded = errors.New("storage: capacity exceeded")

	// ErrUnknownBackend indicates an unrecognised backend name.
	ErrUnknownBackend = errors.New("storage: unknown backend")
)

// Aux flag bits guaranteed by every backend.
const (
	// AuxVisited marks a cell already absorbed by the structure being built.
	AuxVisited uint8 = 1 << 0
	// AuxMarked marks a cell queued for later work (e.g. a frontier cell).
	AuxMarked uint8 = 1 << 1
)

// Backend stores the connection bits and auxiliary tag of every cell.
type Backend interface {
	// Len returns the number of addressable cells.
	Len() int

	// Types returns the number of connection bits per cell.
	Types() int

	// Connection reports whether connection t of cell id is open.
	Connection(id space.CellID, t space.ConnectionType) bool

	// SetConnection opens or closes connection t of cell id.
	SetConnection(id space.CellID, t space.ConnectionType, open bool)

	// Aux returns the auxiliary tag of id, masked to AuxBits bits.
	Aux(id space.CellID) uint8

	// SetAux stores v (masked to AuxBits bits) as the tag of id.
	SetAux(id space.CellID, v uint8)

	// AuxBits returns the width of the auxiliary tag (at least 2).
	AuxBits() int

	// ResetAux clears every auxiliary tag, leaving connections intact.
	ResetAux()

	// Clear closes every connection and clears every tag.
	Clear()

	// Bytes returns the approximate memory footprint of the cell data.
	Bytes() int
}

// Factory allocates a backend for the given cell and connection-type counts.
type Factory func(cells, types int) (Backend, error)

// InlineFactory allocates bit-packed backends.
func InlineFactory(cells, types int) (Backend, error) {
	b, err := NewInline(cells, types)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// BlockFactory allocates struct-per-cell backends.
func BlockFactory(cells, types int) (Backend, error) {
	b, err := NewBlock(cells, types)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Backend names accepted by ByName.
const (
	NameInline = "inline"
	NameBlock  = "block"
)

// ByName resolves a backend factory by name.
func ByName(name string) (Factory, error) {
	switch name {
	case NameInline, "":
		return InlineFactory, nil
	case NameBlock:
		return BlockFactory, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}
