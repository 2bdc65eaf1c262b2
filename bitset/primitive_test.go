// Copyright (c) 2025 The bbit Authors
// SPDX-License-Identifier: MIT

package bitset

import (
	"math/rand/v2"
	"testing"
)

func TestPopcountAgreesWithPortable(t *testing.T) {
	t.Parallel()
	prng := rand.New(rand.NewPCG(1, 1))
	for range 10_000 {
		w := prng.Uint64()
		if got, want := Popcount(w), PopcountPortable(w); got != want {
			t.Fatalf("Popcount(%#x) = %d, PopcountPortable = %d", w, got, want)
		}
	}
	if Popcount(0) != 0 || PopcountPortable(0) != 0 {
		t.Fatal("popcount of zero must be zero")
	}
	if got := Popcount(^uint64(0)); got != 64 {
		t.Fatalf("Popcount(all-ones) = %d, want 64", got)
	}
}

func TestLSBAgreesWithPortable(t *testing.T) {
	t.Parallel()
	prng := rand.New(rand.NewPCG(2, 2))
	for range 10_000 {
		w := prng.Uint64() | 1 // ensure nonzero for a meaningful comparison
		if got, want := LSB(w), LSBPortable(w); got != want {
			t.Fatalf("LSB(%#x) = %d, LSBPortable = %d", w, got, want)
		}
	}
	if LSB(0) != NoBit || LSBPortable(0) != NoBit {
		t.Fatal("LSB of zero must be NoBit")
	}
	for i := range 64 {
		w := MaskBit(uint(i))
		if got := LSB(w); got != i {
			t.Fatalf("LSB(bit %d) = %d", i, got)
		}
	}
}

func TestMSBAgreesWithPortable(t *testing.T) {
	t.Parallel()
	prng := rand.New(rand.NewPCG(3, 3))
	for range 10_000 {
		w := prng.Uint64() | 1
		if got, want := MSB(w), MSBPortable(w); got != want {
			t.Fatalf("MSB(%#x) = %d, MSBPortable = %d", w, got, want)
		}
	}
	if MSB(0) != NoBit || MSBPortable(0) != NoBit {
		t.Fatal("MSB of zero must be NoBit")
	}
	for i := range 64 {
		w := MaskBit(uint(i))
		if got := MSB(w); got != i {
			t.Fatalf("MSB(bit %d) = %d", i, got)
		}
	}
}

func TestIsBitAndMaskBit(t *testing.T) {
	t.Parallel()
	for b := range uint(64) {
		w := MaskBit(b)
		for i := range uint(64) {
			want := i == b
			if got := IsBit(w, i); got != want {
				t.Fatalf("IsBit(MaskBit(%d), %d) = %v, want %v", b, i, got, want)
			}
		}
	}
}

func TestMaskRange(t *testing.T) {
	t.Parallel()
	for lo := uint(0); lo < 64; lo++ {
		for hi := lo; hi < 64; hi++ {
			w := MaskRange(lo, hi)
			for b := uint(0); b < 64; b++ {
				want := b >= lo && b <= hi
				if got := IsBit(w, b); got != want {
					t.Fatalf("MaskRange(%d,%d) bit %d = %v, want %v", lo, hi, b, got, want)
				}
			}
		}
	}
}

func TestMaskRangePanicsOnInvalidInput(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatal("MaskRange(hi<lo) must panic")
		}
	}()
	MaskRange(5, 2)
}

func TestMaskLowMaskHigh(t *testing.T) {
	t.Parallel()
	if MaskLow(0) != 0 {
		t.Fatal("MaskLow(0) must be 0")
	}
	if MaskLow(64) != ^uint64(0) {
		t.Fatal("MaskLow(64) must be all-ones")
	}
	if MaskHigh(64) != 0 {
		t.Fatal("MaskHigh(64) must be 0")
	}
	for k := range uint(65) {
		if got := MaskLow(k) & MaskHigh(k); got != 0 {
			t.Fatalf("MaskLow(%d) and MaskHigh(%d) must be disjoint, got overlap %#x", k, k, got)
		}
	}
}

func TestTrimLowTrimHigh(t *testing.T) {
	t.Parallel()
	w := ^uint64(0)
	for k := range uint(64) {
		trimmed := TrimLow(w, k)
		if !IsBit(trimmed, k) {
			t.Fatalf("TrimLow(allones, %d) must preserve bit %d", k, k)
		}
		if trimmed&MaskLow(k) != 0 {
			t.Fatalf("TrimLow(allones, %d) must clear bits below %d", k, k)
		}
	}
	for k := range uint(63) {
		trimmed := TrimHigh(w, k)
		if !IsBit(trimmed, k) {
			t.Fatalf("TrimHigh(allones, %d) must preserve bit %d", k, k)
		}
		if trimmed&MaskHigh(k) != 0 {
			t.Fatalf("TrimHigh(allones, %d) must clear bits above %d", k, k)
		}
	}
}

func TestCopyRange(t *testing.T) {
	t.Parallel()
	src := ^uint64(0)
	dst := uint64(0)
	got := CopyRange(4, 10, src, dst)
	want := MaskRange(4, 10)
	if got != want {
		t.Fatalf("CopyRange = %#x, want %#x", got, want)
	}
}

func TestCPUCapabilityProbesDoNotPanic(t *testing.T) {
	t.Parallel()
	_ = HasHardwarePopcount()
	_ = HasHardwareBitScan()
}

func TestAutoVariantsAgreeWithTheirNonAutoCounterparts(t *testing.T) {
	t.Parallel()
	words := []uint64{0, 1, ^uint64(0), 0xAAAAAAAAAAAAAAAA, 0x8000000000000000, 0x123456789ABCDEF0}
	for _, w := range words {
		if got, want := PopcountAuto(w), Popcount(w); got != want {
			t.Fatalf("PopcountAuto(%#x) = %d, want %d", w, got, want)
		}
		if got, want := LSBAuto(w), LSB(w); got != want {
			t.Fatalf("LSBAuto(%#x) = %d, want %d", w, got, want)
		}
		if got, want := MSBAuto(w), MSB(w); got != want {
			t.Fatalf("MSBAuto(%#x) = %d, want %d", w, got, want)
		}
	}
}
