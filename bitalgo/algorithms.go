// Copyright (c) 2025 The bbit Authors
// SPDX-License-Identifier: MIT

package bitalgo

import (
	"math/rand/v2"

	"github.com/cliquebit/bbit/bitset"
)

// GenRandomBlock returns a 64-bit block with each bit independently set
// with probability density, in [0, 1]. Used to synthesize test fixtures
// and density-controlled benchmarking inputs for the engine.
func GenRandomBlock(density float64, rng *rand.Rand) uint64 {
	var w uint64
	for b := uint(0); b < 64; b++ {
		if rng.Float64() < density {
			w |= bitset.MaskBit(b)
		}
	}
	return w
}

// FirstKBits returns bb with every set bit past the k lowest-index ones
// cleared. If bb has k or fewer set bits, it is returned unchanged.
func FirstKBits(k uint, bb uint64) uint64 {
	var out uint64
	remaining := bb
	for i := uint(0); i < k && remaining != 0; i++ {
		off := bitset.LSB(remaining)
		out |= bitset.MaskBit(uint(off))
		remaining &= remaining - 1
	}
	return out
}
