package storage

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/katalvlaran/labyrinth/space"
)

// inlineAuxBits is the width of the aux tag packed after the connection bits.
const inlineAuxBits = 2

// Inline is a bit-packed backend. Cell id occupies bits
// [id·slot, (id+1)·slot) of a []uint64, where slot is the next power of two
// ≥ types+2. Because slot divides 64, no cell straddles a word.
//
// Layout of one slot, low bit first:
//
//	[ conn 0 | conn 1 | ... | conn types-1 | aux 0 | aux 1 | padding ]
type Inline struct {
	words   []uint64
	cells   int
	types   int
	slot    uint
	auxMask uint64 // aux bits of every slot in a word, for ResetAux
}

// NewInline allocates a bit-packed backend.
// Returns ErrCapacityExceeded if types+2 exceeds 64 bits or the total bit
// count overflows.
// Complexity: O(cells·slot/64) time and memory.
func NewInline(cells, types int) (*Inline, error) {
	if cells < 0 || types < 0 {
		return nil, fmt.Errorf("%w: negative size (cells=%d, types=%d)", ErrCapacityExceeded, cells, types)
	}
	need := types + inlineAuxBits
	if need > 64 {
		return nil, fmt.Errorf("%w: inline cell needs %d bits, word holds 64", ErrCapacityExceeded, need)
	}
	slot := uint(1) << bits.Len(uint(need-1))
	if cells > math.MaxInt/int(slot)-63 {
		return nil, fmt.Errorf("%w: %d cells of %d bits", ErrCapacityExceeded, cells, slot)
	}

	// Replicate the aux bits of one slot across the whole word.
	one := uint64((1<<inlineAuxBits)-1) << uint(types)
	var mask uint64
	for off := uint(0); off < 64; off += slot {
		mask |= one << off
	}

	return &Inline{
		words:   make([]uint64, (cells*int(slot)+63)/64),
		cells:   cells,
		types:   types,
		slot:    slot,
		auxMask: mask,
	}, nil
}

// locate returns the word index and bit offset of the slot of id.
func (b *Inline) locate(id space.CellID) (int, uint) {
	bit := uint64(id) * uint64(b.slot)
	return int(bit >> 6), uint(bit & 63)
}

// Len returns the number of cells.
func (b *Inline) Len() int { return b.cells }

// Types returns the number of connection bits per cell.
func (b *Inline) Types() int { return b.types }

// SlotBits returns the padded bit width of one cell.
func (b *Inline) SlotBits() int { return int(b.slot) }

// Connection reports whether connection t of id is open.
func (b *Inline) Connection(id space.CellID, t space.ConnectionType) bool {
	w, off := b.locate(id)
	return b.words[w]>>(off+uint(t))&1 == 1
}

// SetConnection opens or closes connection t of id.
func (b *Inline) SetConnection(id space.CellID, t space.ConnectionType, open bool) {
	w, off := b.locate(id)
	bit := uint64(1) << (off + uint(t))
	if open {
		b.words[w] |= bit
	} else {
		b.words[w] &^= bit
	}
}

// Aux returns the 2-bit tag of id.
func (b *Inline) Aux(id space.CellID) uint8 {
	w, off := b.locate(id)
	return uint8(b.words[w]>>(off+uint(b.types))) & (1<<inlineAuxBits - 1)
}

// SetAux stores the low 2 bits of v as the tag of id.
func (b *Inline) SetAux(id space.CellID, v uint8) {
	w, off := b.locate(id)
	shift := off + uint(b.types)
	b.words[w] = b.words[w]&^(uint64(1<<inlineAuxBits-1)<<shift) | uint64(v&(1<<inlineAuxBits-1))<<shift
}

// AuxBits returns 2.
func (b *Inline) AuxBits() int { return inlineAuxBits }

// ResetAux clears every tag with one mask per word.
func (b *Inline) ResetAux() {
	for i := range b.words {
		b.words[i] &^= b.auxMask
	}
}

// Clear zeroes all cells.
func (b *Inline) Clear() { clear(b.words) }

// Bytes returns the size of the packed words.
func (b *Inline) Bytes() int { return len(b.words) * 8 }
