// Copyright (c) 2025 The bbit Authors
// SPDX-License-Identifier: MIT

package scan

import "github.com/cliquebit/bbit/bitset"

// NoBit re-exports bitset.NoBit, returned by NextBit/NextBitDel when a
// scan is exhausted.
const NoBit = bitset.NoBit

// MaskLim is the sentinel bit-offset denoting "no offset cached yet", a
// value outside the valid in-block offset range 0..63.
const MaskLim = 65

// Mode selects one of the four scan directions/destructiveness
// combinations the scanning layer supports.
type Mode int

const (
	// NonDestructive scans forward, preserving bits.
	NonDestructive Mode = iota
	// NonDestructiveReverse scans from high to low, preserving bits.
	NonDestructiveReverse
	// Destructive scans forward, clearing each returned bit.
	Destructive
	// DestructiveReverse scans from high to low, clearing each returned bit.
	DestructiveReverse
)

func (m Mode) isReverse() bool {
	return m == NonDestructiveReverse || m == DestructiveReverse
}

func (m Mode) isDestructive() bool {
	return m == Destructive || m == DestructiveReverse
}

// Cursor is the per-bitset mutable state (block index, bit offset) a
// Scanner reuses across scan steps. Non-destructive modes cache both
// fields; destructive modes only ever consult block, since a cleared bit
// need not be remembered — the next step starts from the current block's
// remaining bits.
type Cursor struct {
	block  int
	offset int
}

// newCursor returns a fresh, uninitialized cursor: (NoBit, MaskLim).
func newCursor() Cursor {
	return Cursor{block: NoBit, offset: MaskLim}
}
