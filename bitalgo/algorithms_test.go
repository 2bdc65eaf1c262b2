// Copyright (c) 2025 The bbit Authors
// SPDX-License-Identifier: MIT

package bitalgo

import (
	"math/rand/v2"
	"testing"

	"github.com/cliquebit/bbit/bitset"
	"github.com/stretchr/testify/require"
)

func TestFirstKBitsKeepsOnlyLowestK(t *testing.T) {
	bb := bitset.MaskBit(1) | bitset.MaskBit(5) | bitset.MaskBit(9) | bitset.MaskBit(40)

	require.Equal(t, uint64(0), FirstKBits(0, bb))
	require.Equal(t, bitset.MaskBit(1), FirstKBits(1, bb))
	require.Equal(t, bitset.MaskBit(1)|bitset.MaskBit(5), FirstKBits(2, bb))
	require.Equal(t, bb, FirstKBits(4, bb))
	require.Equal(t, bb, FirstKBits(100, bb), "k beyond popcount leaves bb unchanged")
}

func TestFirstKBitsOnEmptyBlock(t *testing.T) {
	require.Equal(t, uint64(0), FirstKBits(3, 0))
}

func TestGenRandomBlockDensityZeroAndOne(t *testing.T) {
	prng := rand.New(rand.NewPCG(42, 42))
	require.Equal(t, uint64(0), GenRandomBlock(0, prng))
	require.Equal(t, ^uint64(0), GenRandomBlock(1, prng))
}

func TestGenRandomBlockApproximatesDensity(t *testing.T) {
	prng := rand.New(rand.NewPCG(42, 42))
	const trials = 500
	var total int
	for i := 0; i < trials; i++ {
		total += bitset.Popcount(GenRandomBlock(0.5, prng))
	}
	avg := float64(total) / trials
	require.InDelta(t, 32.0, avg, 4.0, "average popcount at density 0.5 should hover near 32")
}
