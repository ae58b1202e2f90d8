// Package bitboard implements a fixed-capacity bit region, used to represent sets of
// intersections of a padded board.
//
// It is backed by github.com/bits-and-blooms/bitset, but unlike the backing set it never
// grows: the capacity is fixed at construction and out-of-range indices panic.
package bitboard

import (
	"fmt"
	"iter"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Bitboard is a fixed-capacity bit vector. The zero value is not usable, create it with New.
type Bitboard struct {
	bits     *bitset.BitSet
	capacity int
}

// New returns an all-zero Bitboard with the given capacity.
func New(capacity int) *Bitboard {
	if capacity < 1 {
		panic(fmt.Sprintf("bitboard.New(%d): capacity must be positive", capacity))
	}
	return &Bitboard{
		bits:     bitset.New(uint(capacity)),
		capacity: capacity,
	}
}

// Capacity is the number of addressable bits.
func (b *Bitboard) Capacity() int {
	return b.capacity
}

func (b *Bitboard) checkIndex(idx int) {
	if idx < 0 || idx >= b.capacity {
		panic(fmt.Sprintf("bitboard: index %d out of range [0, %d)", idx, b.capacity))
	}
}

func (b *Bitboard) checkSameCapacity(other *Bitboard) {
	if b.capacity != other.capacity {
		panic(fmt.Sprintf("bitboard: mismatched capacities %d and %d", b.capacity, other.capacity))
	}
}

// Set bit idx.
func (b *Bitboard) Set(idx int) {
	b.checkIndex(idx)
	b.bits.Set(uint(idx))
}

// Unset clears bit idx.
func (b *Bitboard) Unset(idx int) {
	b.checkIndex(idx)
	b.bits.Clear(uint(idx))
}

// Test returns whether bit idx is set.
func (b *Bitboard) Test(idx int) bool {
	b.checkIndex(idx)
	return b.bits.Test(uint(idx))
}

// SetWholeLine sets every bit of line number `line`, where each line holds `width` bits.
// That is, the bits in [line*width, line*width+width).
func (b *Bitboard) SetWholeLine(line, width int) {
	start := line * width
	b.checkIndex(start)
	b.checkIndex(start + width - 1)
	for idx := start; idx < start+width; idx++ {
		b.bits.Set(uint(idx))
	}
}

// Flip complements every bit, in place.
func (b *Bitboard) Flip() {
	b.bits = b.bits.Complement()
}

// Clone returns a deep copy.
func (b *Bitboard) Clone() *Bitboard {
	return &Bitboard{
		bits:     b.bits.Clone(),
		capacity: b.capacity,
	}
}

// Count returns the number of bits set.
func (b *Bitboard) Count() int {
	return int(b.bits.Count())
}

// IsEmpty returns whether no bit is set.
func (b *Bitboard) IsEmpty() bool {
	return b.bits.None()
}

// Equal returns whether both bitboards have the same capacity and the same bits set.
func (b *Bitboard) Equal(other *Bitboard) bool {
	return b.capacity == other.capacity && b.bits.Equal(other.bits)
}

// Intersects returns whether b and other have at least one bit in common.
func (b *Bitboard) Intersects(other *Bitboard) bool {
	b.checkSameCapacity(other)
	return b.bits.IntersectionCardinality(other.bits) > 0
}

// Union returns a new Bitboard with the bits set in either b or other.
func (b *Bitboard) Union(other *Bitboard) *Bitboard {
	b.checkSameCapacity(other)
	return &Bitboard{
		bits:     b.bits.Union(other.bits),
		capacity: b.capacity,
	}
}

// All iterates over the indices of the bits set, in increasing order.
func (b *Bitboard) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for idx, ok := b.bits.NextSet(0); ok; idx, ok = b.bits.NextSet(idx + 1) {
			if !yield(int(idx)) {
				return
			}
		}
	}
}

// String dumps the bits as '0' and '1', starting from index 0.
func (b *Bitboard) String() string {
	var sb strings.Builder
	sb.Grow(b.capacity)
	for idx := range b.capacity {
		if b.bits.Test(uint(idx)) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
