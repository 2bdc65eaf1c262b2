// Copyright (c) 2025 The bbit Authors
// SPDX-License-Identifier: MIT

package scan

import (
	"errors"

	"github.com/cliquebit/bbit/bitset"
	"github.com/cliquebit/bbit/sparse"
)

// ErrDestructiveWithStart is returned by InitScanFrom when asked to seed a
// destructive scan at a starting bit. Destructive modes only ever consult
// the cached block index, so there is nowhere to stash an in-block
// starting offset.
var ErrDestructiveWithStart = errors.New("scan: destructive mode cannot start from a given bit")

// Bits is the capability a bitset must expose to be scanned: report its
// block count, hand back a block's raw bits, and (for destructive modes)
// clear a bit by its global index. bitset.Dense and sparse.Set both
// satisfy it as-is.
type Bits interface {
	Blocks() int
	Block(i int) uint64
	ClearBit(b uint)
}

// sentinelAware lets sentinel.Set narrow the destructive scan window as
// bits are consumed, instead of walking blocks it already knows are empty.
type sentinelAware interface {
	ShrinkLow(newLow int)
	ShrinkHigh(newHigh int)
}

// Scanner is a stateful cursor over a Bits value, implementing the four
// scan modes the engine supports. A Scanner is reusable across
// InitScan calls but is not safe for concurrent use.
type Scanner struct {
	b      Bits
	cursor Cursor
	mode   Mode
}

// NewScanner returns a Scanner over b, uninitialized until InitScan or
// InitScanFrom is called.
func NewScanner(b Bits) *Scanner {
	return &Scanner{b: b, cursor: newCursor()}
}

// InitScan (re)starts a scan in the given mode from one end of the
// bitset: block 0 for forward modes, the last block for reverse modes.
//
// Destructive modes on an empty sparse.Set return sparse.ErrScanOnEmpty:
// a sparse bitset with no records has nothing for a destructive cursor to
// index into, unlike a dense bitset whose empty blocks still exist.
func (sc *Scanner) InitScan(mode Mode) error {
	if err := sc.checkEmptyDestructive(mode); err != nil {
		return err
	}
	sc.mode = mode
	if mode.isReverse() {
		sc.cursor = Cursor{block: sc.b.Blocks() - 1, offset: MaskLim}
	} else {
		sc.cursor = Cursor{block: 0, offset: MaskLim}
	}
	return nil
}

// InitScanFrom seeds a non-destructive scan to resume strictly beyond
// firstBit: strictly after it for forward modes, strictly before it for
// reverse modes. Passing NoBit is equivalent to InitScan. Destructive
// modes reject a starting position with ErrDestructiveWithStart.
func (sc *Scanner) InitScanFrom(firstBit int, mode Mode) error {
	if mode.isDestructive() {
		return ErrDestructiveWithStart
	}
	if err := sc.checkEmptyDestructive(mode); err != nil {
		return err
	}
	sc.mode = mode
	if firstBit == NoBit {
		return sc.InitScan(mode)
	}
	sc.cursor = Cursor{block: firstBit >> 6, offset: firstBit & 63}
	return nil
}

func (sc *Scanner) checkEmptyDestructive(mode Mode) error {
	if !mode.isDestructive() {
		return nil
	}
	if s, ok := sc.b.(*sparse.Set); ok && s.IsEmpty() {
		return sparse.ErrScanOnEmpty
	}
	return nil
}

// NextBit advances the cursor and returns the next bit the current mode
// visits, or (NoBit, false) once the scan is exhausted. In destructive
// modes the returned bit has already been cleared from the underlying
// bitset.
func (sc *Scanner) NextBit() (int, bool) {
	switch sc.mode {
	case NonDestructive:
		return sc.nextForward(nil)
	case Destructive:
		return sc.nextForward(sc.b)
	case NonDestructiveReverse:
		return sc.nextReverse(nil)
	case DestructiveReverse:
		return sc.nextReverse(sc.b)
	default:
		return NoBit, false
	}
}

// NextBitDel behaves like NextBit but additionally clears the returned
// bit from other, at the same global index, regardless of whether the
// scanned bitset's own mode is destructive. This is the dual-bitset
// variant used to keep a companion bitset (e.g. a frontier) in sync as
// the scan consumes bits.
func (sc *Scanner) NextBitDel(other Bits) (int, bool) {
	bit, ok := sc.NextBit()
	if ok {
		other.ClearBit(uint(bit))
	}
	return bit, ok
}

// nextForward implements NonDestructive (clear == nil) and Destructive
// (clear == sc.b) forward scanning with one shared block-walking loop.
func (sc *Scanner) nextForward(clear Bits) (int, bool) {
	n := sc.b.Blocks()
	for b := sc.cursor.block; b < n; b++ {
		w := sc.b.Block(b)
		if b == sc.cursor.block && sc.cursor.offset != MaskLim {
			w &^= bitset.MaskLow(uint(sc.cursor.offset + 1))
		}
		if w == 0 {
			continue
		}
		off := bitset.LSB(w)
		global := b<<6 + off
		if clear != nil {
			clear.ClearBit(uint(global))
			sc.cursor = Cursor{block: b, offset: MaskLim}
		} else {
			sc.cursor = Cursor{block: b, offset: off}
		}
		if sa, ok := sc.b.(sentinelAware); ok && clear != nil {
			sa.ShrinkLow(b)
		}
		return global, true
	}
	sc.cursor = Cursor{block: n, offset: MaskLim}
	return NoBit, false
}

// nextReverse implements NonDestructiveReverse (clear == nil) and
// DestructiveReverse (clear == sc.b) scanning with one shared loop.
func (sc *Scanner) nextReverse(clear Bits) (int, bool) {
	for b := sc.cursor.block; b >= 0; b-- {
		w := sc.b.Block(b)
		if b == sc.cursor.block && sc.cursor.offset != MaskLim {
			w &= bitset.MaskLow(uint(sc.cursor.offset))
		}
		if w == 0 {
			continue
		}
		off := bitset.MSB(w)
		global := b<<6 + off
		if clear != nil {
			clear.ClearBit(uint(global))
			sc.cursor = Cursor{block: b, offset: MaskLim}
		} else {
			sc.cursor = Cursor{block: b, offset: off}
		}
		if sa, ok := sc.b.(sentinelAware); ok && clear != nil {
			sa.ShrinkHigh(b)
		}
		return global, true
	}
	sc.cursor = Cursor{block: NoBit, offset: MaskLim}
	return NoBit, false
}
