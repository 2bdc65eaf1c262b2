// Copyright (c) 2025 The bbit Authors
// SPDX-License-Identifier: MIT

// Package sentinel implements a dense bitset that additionally tracks a
// contiguous window [low, high] of block indices guaranteed to bound
// every non-zero block. Operations that only need to consider set bits
// (Size, IsEmpty, And, AndNot, LSB, MSB, iteration) use the window to
// skip blocks known to be zero, at the cost of maintaining it as bits are
// cleared.
//
// This mirrors the low/high tracking pattern github.com/gaissmai/bart
// applies to its ART trie nodes (its fringe/prefix bitset pairs skip
// empty ranges the same way), adapted here to a single dense bitset
// instead of a pair of sibling arrays.
package sentinel
