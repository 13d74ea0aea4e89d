package storage

import (
	"fmt"
	"unsafe"

	"github.com/katalvlaran/labyrinth/space"
)

// maxBlockTypes is the number of connection bits in a block cell.
const maxBlockTypes = 32

// blockCell is the per-cell record of a Block backend.
type blockCell struct {
	links uint32
	aux   uint8
	tag   uint16
}

// Block is a struct-per-cell backend. It spends more memory than Inline but
// offers a full aux byte and a 16-bit payload Tag for annotating cells (e.g.
// material or region ids). Export snapshots carry the tags.
type Block struct {
	cells []blockCell
	types int
}

// NewBlock allocates a block backend.
// Returns ErrCapacityExceeded if types exceeds 32.
// Complexity: O(cells).
func NewBlock(cells, types int) (*Block, error) {
	if cells < 0 || types < 0 {
		return nil, fmt.Errorf("%w: negative size (cells=%d, types=%d)", ErrCapacityExceeded, cells, types)
	}
	if types > maxBlockTypes {
		return nil, fmt.Errorf("%w: block cell holds %d connection types, need %d", ErrCapacityExceeded, maxBlockTypes, types)
	}
	return &Block{cells: make([]blockCell, cells), types: types}, nil
}

// Len returns the number of cells.
func (b *Block) Len() int { return len(b.cells) }

// Types returns the number of connection bits per cell.
func (b *Block) Types() int { return b.types }

// Connection reports whether connection t of id is open.
func (b *Block) Connection(id space.CellID, t space.ConnectionType) bool {
	return b.cells[id].links>>t&1 == 1
}

// SetConnection opens or closes connection t of id.
func (b *Block) SetConnection(id space.CellID, t space.ConnectionType, open bool) {
	if open {
		b.cells[id].links |= 1 << t
	} else {
		b.cells[id].links &^= 1 << t
	}
}

// Aux returns the tag byte of id.
func (b *Block) Aux(id space.CellID) uint8 { return b.cells[id].aux }

// SetAux stores v as the tag byte of id.
func (b *Block) SetAux(id space.CellID, v uint8) { b.cells[id].aux = v }

// AuxBits returns 8.
func (b *Block) AuxBits() int { return 8 }

// ResetAux clears every tag byte.
func (b *Block) ResetAux() {
	for i := range b.cells {
		b.cells[i].aux = 0
	}
}

// Clear zeroes all cells, payload tags included.
func (b *Block) Clear() { clear(b.cells) }

// Tag returns the payload of id. It is not touched by generators or ResetAux.
func (b *Block) Tag(id space.CellID) uint16 { return b.cells[id].tag }

// SetTag stores a payload for id.
func (b *Block) SetTag(id space.CellID, v uint16) { b.cells[id].tag = v }

// Bytes returns the size of the cell records.
func (b *Block) Bytes() int { return len(b.cells) * int(unsafe.Sizeof(blockCell{})) }
