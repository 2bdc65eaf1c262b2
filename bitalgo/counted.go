// Copyright (c) 2025 The bbit Authors
// SPDX-License-Identifier: MIT

package bitalgo

import "github.com/cliquebit/bbit/bitset"

// Counted wraps a Dense bitset with a maintained population counter, so
// Size and IsEmpty answer in O(1) instead of walking every block. SetBit
// and ClearBit are idempotent with respect to the counter: setting an
// already-set bit or clearing an already-clear one leaves the count
// unchanged, so the counter can never drift out of sync with the
// underlying bitset.
type Counted struct {
	d  *bitset.Dense
	pc int
}

// NewCounted allocates an empty Counted bitset with the given
// block-capacity.
func NewCounted(nBlocks int) *Counted {
	return &Counted{d: bitset.NewDense(nBlocks)}
}

// Reset reallocates the wrapped bitset to nBlocks zero blocks and resets
// the counter.
func (c *Counted) Reset(nBlocks int) {
	c.d = bitset.NewDense(nBlocks)
	c.pc = 0
}

// Size returns the cached population count. O(1).
func (c *Counted) Size() int { return c.pc }

// IsEmpty reports whether the counter is zero. O(1).
func (c *Counted) IsEmpty() bool { return c.pc == 0 }

// IsBit reports whether bit b is set. Panics if b is out of range.
func (c *Counted) IsBit(b uint) bool { return c.d.IsBit(b) }

// SetBit sets bit b, incrementing the counter if it was not already set.
// Panics if b is out of range.
func (c *Counted) SetBit(b uint) {
	if !c.d.IsBit(b) {
		c.d.SetBit(b)
		c.pc++
	}
}

// ClearBit clears bit b, decrementing the counter if it was set. Panics
// if b is out of range.
func (c *Counted) ClearBit(b uint) {
	if c.d.IsBit(b) {
		c.d.ClearBit(b)
		c.pc--
	}
}

// ClearAll clears every bit and resets the counter.
func (c *Counted) ClearAll() {
	c.d.ClearAll()
	c.pc = 0
}

// LSB returns the offset of the first set bit, or bitset.NoBit, checking
// the counter before touching the underlying blocks.
func (c *Counted) LSB() int {
	if c.pc == 0 {
		return bitset.NoBit
	}
	return c.d.LSB()
}

// MSB returns the offset of the last set bit, or bitset.NoBit.
func (c *Counted) MSB() int {
	if c.pc == 0 {
		return bitset.NoBit
	}
	return c.d.MSB()
}

// PopMSB clears and returns the most significant set bit, or bitset.NoBit
// if the bitset is empty.
func (c *Counted) PopMSB() int {
	if c.pc == 0 {
		return bitset.NoBit
	}
	b := c.d.MSB()
	c.d.ClearBit(uint(b))
	c.pc--
	return b
}

// PopLSB clears and returns the least significant set bit, or
// bitset.NoBit if the bitset is empty.
func (c *Counted) PopLSB() int {
	if c.pc == 0 {
		return bitset.NoBit
	}
	b := c.d.LSB()
	c.d.ClearBit(uint(b))
	c.pc--
	return b
}

// SyncPopcount recomputes the counter from the underlying bitset and
// returns it. Only needed if the wrapped Dense was mutated through Dense
// itself (via the Dense accessor, for instance) rather than through
// Counted.
func (c *Counted) SyncPopcount() int {
	c.pc = c.d.Size()
	return c.pc
}

// Dense returns the wrapped bitset for callers that need the wider Dense
// surface (ranges, set algebra). Mutating it directly desynchronizes the
// counter until SyncPopcount is called.
func (c *Counted) Dense() *bitset.Dense { return c.d }
