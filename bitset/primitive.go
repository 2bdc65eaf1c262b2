// Copyright (c) 2025 The bbit Authors
// SPDX-License-Identifier: MIT

package bitset

import (
	"math/bits"

	"github.com/klauspost/cpuid/v2"
)

// NoBit is returned by LSB, MSB and any scan step when no set bit exists.
const NoBit = -1

const (
	wordSize     = 64
	log2WordSize = 6
)

// De Bruijn magic constants for the portable LSB/MSB fallback paths. Each
// indexes a word with exactly one bit set: the forward constant the least
// significant set bit isolated via w & -w, the reverse constant the most
// significant set bit isolated by folding the word and stripping the
// lower bits. The top 6 bits of the product select the table entry.
const (
	deBruijn64Forward uint64 = 0x03f79d71b4cb0a89
	deBruijn64Reverse uint64 = 0x07EDD5E59A4E28C2
)

var (
	deBruijnLSBTable [64]uint8
	deBruijnMSBTable [64]uint8
)

func init() {
	for i := range 64 {
		deBruijnLSBTable[(deBruijn64Forward<<uint(i))>>58] = uint8(i)
	}
	for i := range 64 {
		deBruijnMSBTable[(deBruijn64Reverse<<uint(i))>>58] = uint8(i)
	}
}

// HasHardwarePopcount reports whether the running CPU exposes a hardware
// population-count instruction (POPCNT on amd64, the equivalent on other
// architectures). math/bits.OnesCount64 already picks the fastest
// available path at compile time; this is exposed for callers that want
// to log or assert which path is active, not to change behavior.
func HasHardwarePopcount() bool {
	return cpuid.CPU.Supports(cpuid.POPCNT)
}

// HasHardwareBitScan reports whether the running CPU exposes hardware
// bit-scan support (BMI1's TZCNT/LZCNT lineage on amd64).
func HasHardwareBitScan() bool {
	return cpuid.CPU.Supports(cpuid.BMI1)
}

// PopcountAuto selects PopcountPortable when the running CPU lacks a
// hardware popcount instruction, and Popcount otherwise. Prefer Popcount
// in the common case; this exists for callers targeting a fixed binary
// that must avoid math/bits falling back to its own software emulation
// path on unfamiliar hardware.
func PopcountAuto(w uint64) int {
	if !HasHardwarePopcount() {
		return PopcountPortable(w)
	}
	return Popcount(w)
}

// LSBAuto is LSB's counterpart to PopcountAuto: it selects LSBPortable
// when the CPU lacks hardware bit-scan support.
func LSBAuto(w uint64) int {
	if !HasHardwareBitScan() {
		return LSBPortable(w)
	}
	return LSB(w)
}

// MSBAuto is MSB's counterpart to PopcountAuto: it selects MSBPortable
// when the CPU lacks hardware bit-scan support.
func MSBAuto(w uint64) int {
	if !HasHardwareBitScan() {
		return MSBPortable(w)
	}
	return MSB(w)
}

// Popcount returns the number of 1-bits in w, 0..64.
func Popcount(w uint64) int {
	return bits.OnesCount64(w)
}

// LSB returns the offset of the least-significant 1-bit in w, or NoBit if
// w is zero.
func LSB(w uint64) int {
	if w == 0 {
		return NoBit
	}
	return bits.TrailingZeros64(w)
}

// MSB returns the offset of the most-significant 1-bit in w, or NoBit if
// w is zero.
func MSB(w uint64) int {
	if w == 0 {
		return NoBit
	}
	return 63 - bits.LeadingZeros64(w)
}

// PopcountPortable is the De Bruijn / byte-table-free fallback for
// Popcount. It must agree with Popcount for every input; it exists so the
// portable fallback path is exercised and tested independently of
// whatever the host CPU happens to support.
func PopcountPortable(w uint64) int {
	// Kernighan's bit-clearing loop, the classic portable popcount.
	cnt := 0
	for w != 0 {
		w &= w - 1
		cnt++
	}
	return cnt
}

// LSBPortable is the De Bruijn fallback for LSB. It must agree with LSB
// for every nonzero input.
func LSBPortable(w uint64) int {
	if w == 0 {
		return NoBit
	}
	isolated := w & (-w)
	return int(deBruijnLSBTable[(isolated*deBruijn64Forward)>>58])
}

// MSBPortable is the De Bruijn fallback for MSB. It must agree with MSB
// for every nonzero input.
func MSBPortable(w uint64) int {
	if w == 0 {
		return NoBit
	}
	w |= w >> 1
	w |= w >> 2
	w |= w >> 4
	w |= w >> 8
	w |= w >> 16
	w |= w >> 32
	w ^= w >> 1 // keep only the most significant set bit
	return int(deBruijnMSBTable[(w*deBruijn64Reverse)>>58])
}

// IsBit reports whether bit b (0..63) is set in w.
func IsBit(w uint64, b uint) bool {
	return w&(uint64(1)<<b) != 0
}

// MaskBit returns a word with only bit b (0..63) set.
func MaskBit(b uint) uint64 {
	return uint64(1) << b
}

// MaskRange returns a word with bits [lo, hi] set, inclusive. Requires
// 0 <= lo <= hi <= 63.
func MaskRange(lo, hi uint) uint64 {
	if lo > hi || hi > 63 {
		panic("bitset: MaskRange out of range")
	}
	width := hi - lo + 1
	var full uint64
	if width == 64 {
		full = ^uint64(0)
	} else {
		full = (uint64(1) << width) - 1
	}
	return full << lo
}

// MaskLow returns a word with bits below k (exclusive of k) set.
// Requires 0 <= k <= 64.
func MaskLow(k uint) uint64 {
	if k > 64 {
		panic("bitset: MaskLow out of range")
	}
	if k == 0 {
		return 0
	}
	if k == 64 {
		return ^uint64(0)
	}
	return (uint64(1) << k) - 1
}

// MaskHigh returns a word with bits above k (exclusive of k) set.
// Requires 0 <= k <= 64.
func MaskHigh(k uint) uint64 {
	if k > 64 {
		panic("bitset: MaskHigh out of range")
	}
	if k >= 64 {
		return 0
	}
	return ^MaskLow(k + 1)
}

// TrimLow returns w with bits strictly below k cleared; bit k itself is
// preserved.
func TrimLow(w uint64, k uint) uint64 {
	if k >= 64 {
		return 0
	}
	return w &^ MaskLow(k)
}

// TrimHigh returns w with bits strictly above k cleared; bit k itself is
// preserved.
func TrimHigh(w uint64, k uint) uint64 {
	if k >= 63 {
		return w
	}
	return w &^ MaskHigh(k)
}

// CopyRange returns dst with bits [lo, hi] replaced by the corresponding
// bits of src.
func CopyRange(lo, hi uint, src, dst uint64) uint64 {
	m := MaskRange(lo, hi)
	return (dst &^ m) | (src & m)
}
