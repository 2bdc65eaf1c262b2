// Copyright (c) 2025 The bbit Authors
// SPDX-License-Identifier: MIT

package bitset

// The mask/table layer holds the process-wide precomputed lookup tables
// the engine's primitive layer is allowed to consult instead of
// recomputing a value on every call. All tables here are built exactly
// once, either as a compile-time literal (singleBitMask) or by a single
// init() loop (the low/high masks, the interval mask matrix, the
// byte-granularity popcount table, the 64Ki-entry popcount/LSB/MSB tables
// and the modulo-hash array).
// Once init() returns, every
// table is immutable for the remainder of the process, satisfying the
// "first access initializes" contract without a sync.Once guard: Go
// guarantees init() completes before any other package code runs.

// singleBitMask[b] == MaskBit(uint(b)), precomputed. Kept as a literal
// table (a language with computed const arrays would express this as one;
// Go can't declare a const array, so this is the closest equivalent, a
// package-level var never mutated after init).
var singleBitMask = [64]uint64{
	0x1, 0x2, 0x4, 0x8, 0x10, 0x20, 0x40, 0x80,
	0x100, 0x200, 0x400, 0x800, 0x1000, 0x2000, 0x4000, 0x8000,
	0x10000, 0x20000, 0x40000, 0x80000, 0x100000, 0x200000, 0x400000, 0x800000,
	0x1000000, 0x2000000, 0x4000000, 0x8000000, 0x10000000, 0x20000000, 0x40000000, 0x80000000,
	0x100000000, 0x200000000, 0x400000000, 0x800000000, 0x1000000000, 0x2000000000, 0x4000000000, 0x8000000000,
	0x10000000000, 0x20000000000, 0x40000000000, 0x80000000000, 0x100000000000, 0x200000000000, 0x400000000000, 0x800000000000,
	0x1000000000000, 0x2000000000000, 0x4000000000000, 0x8000000000000, 0x10000000000000, 0x20000000000000, 0x40000000000000, 0x80000000000000,
	0x100000000000000, 0x200000000000000, 0x400000000000000, 0x800000000000000, 0x1000000000000000, 0x2000000000000000, 0x4000000000000000, 0x8000000000000000,
}

// TableMaskBit is the lookup-table backed twin of MaskBit; the two must
// always agree.
func TableMaskBit(b uint) uint64 {
	return singleBitMask[b&63]
}

// lowMask[k] == MaskLow(k) for k in [0,64]; highMask[k] == MaskHigh(k).
// interval mask matrix intervalMask[lo][hi] == MaskRange(lo,hi) for
// lo<=hi, built once in init() rather than as a literal: at 64*64 entries
// hand-writing it would dwarf the file for no readability gain, unlike
// the 64-entry singleBitMask above.
var (
	lowMask      [65]uint64
	highMask     [65]uint64
	intervalMask [64][64]uint64

	// bytePopcount[w] is the population count of the 8-bit word w.
	bytePopcount [256]uint8

	// word16Popcount[w] is the population count of the 16-bit word w.
	word16Popcount [65536]uint16

	// word16LSB[w] / word16MSB[w] are the offset of the least/most
	// significant set bit within the 16-bit word w, or 64 if w == 0 (a
	// sentinel distinct from NoBit so table lookups can be summed with a
	// positional offset without a branch, then compared against 64 to
	// detect "no bit in this chunk").
	word16LSB [65536]uint8
	word16MSB [65536]uint8

	// chunkOffset holds the four positional offsets (0, 16, 32, 48) a
	// 16-bit chunk table result is shifted by to recover a 64-bit bit
	// index.
	chunkOffset = [4]int{0, 16, 32, 48}

	// modHashIndex is the 67-entry modulo-perfect-hash array: for an
	// isolated single bit v = w & -w, v % 67 is unique across all 64
	// possible isolated bit values, giving an alternate O(1) LSB lookup
	// that needs no multiplication.
	modHashIndex [67]uint8
)

func init() {
	for k := range 65 {
		if k == 0 {
			lowMask[k] = 0
		} else if k == 64 {
			lowMask[k] = ^uint64(0)
		} else {
			lowMask[k] = (uint64(1) << uint(k)) - 1
		}
	}
	for k := range 65 {
		highMask[k] = ^lowMask[min(k+1, 64)]
	}

	for lo := range 64 {
		for hi := lo; hi < 64; hi++ {
			width := uint(hi - lo + 1)
			var full uint64
			if width == 64 {
				full = ^uint64(0)
			} else {
				full = (uint64(1) << width) - 1
			}
			intervalMask[lo][hi] = full << uint(lo)
		}
	}

	for w := range 256 {
		bytePopcount[w] = uint8(popcountFallback(uint64(w)))
	}
	for w := range 65536 {
		word16Popcount[w] = uint16(popcountFallback(uint64(w)))
		word16LSB[w] = lsb16Fallback(uint16(w))
		word16MSB[w] = msb16Fallback(uint16(w))
	}

	for i := range 64 {
		v := uint64(1) << uint(i)
		modHashIndex[v%67] = uint8(i)
	}
}

func popcountFallback(w uint64) int {
	cnt := 0
	for w != 0 {
		w &= w - 1
		cnt++
	}
	return cnt
}

func lsb16Fallback(w uint16) uint8 {
	if w == 0 {
		return 64
	}
	pos := uint8(0)
	for w&1 == 0 {
		w >>= 1
		pos++
	}
	return pos
}

func msb16Fallback(w uint16) uint8 {
	if w == 0 {
		return 64
	}
	pos := uint8(0)
	for w != 0 {
		w >>= 1
		pos++
	}
	return pos - 1
}

// TableMaskLow is the table-backed twin of MaskLow.
func TableMaskLow(k uint) uint64 { return lowMask[k] }

// TableMaskHigh is the table-backed twin of MaskHigh.
func TableMaskHigh(k uint) uint64 { return highMask[k] }

// TableMaskRange is the table-backed twin of MaskRange.
func TableMaskRange(lo, hi uint) uint64 { return intervalMask[lo][hi] }

// TablePopcount computes popcount by summing four 16-bit table lookups.
// It must agree with Popcount for every input.
func TablePopcount(w uint64) int {
	return int(word16Popcount[uint16(w)]) +
		int(word16Popcount[uint16(w>>16)]) +
		int(word16Popcount[uint16(w>>32)]) +
		int(word16Popcount[uint16(w>>48)])
}

// TablePopcountBytes computes popcount by summing eight 8-bit table
// lookups, the byte-granularity twin of TablePopcount. It must agree with
// Popcount for every input.
func TablePopcountBytes(w uint64) int {
	cnt := 0
	for range 8 {
		cnt += int(bytePopcount[byte(w)])
		w >>= 8
	}
	return cnt
}

// TableLSB computes LSB by probing four 16-bit chunks low to high. It
// must agree with LSB for every input.
func TableLSB(w uint64) int {
	for _, off := range chunkOffset {
		chunk := uint16(w >> uint(off))
		if v := word16LSB[chunk]; v != 64 {
			return off + int(v)
		}
	}
	return NoBit
}

// TableMSB computes MSB by probing four 16-bit chunks high to low. It
// must agree with MSB for every input.
func TableMSB(w uint64) int {
	for i := 3; i >= 0; i-- {
		off := chunkOffset[i]
		chunk := uint16(w >> uint(off))
		if v := word16MSB[chunk]; v != 64 {
			return off + int(v)
		}
	}
	return NoBit
}

// ModuloHashLSB computes LSB via the 67-entry modulo-perfect-hash table
// instead of De Bruijn multiplication. It must agree with LSB for every
// nonzero input.
func ModuloHashLSB(w uint64) int {
	if w == 0 {
		return NoBit
	}
	isolated := w & (-w)
	return int(modHashIndex[isolated%67])
}
