// Copyright (c) 2025 The bbit Authors
// SPDX-License-Identifier: MIT

// Package sparse implements a compressed bitset that stores only its
// non-zero 64-bit blocks, as ascending-index (block index, block bits)
// records.
//
// The ordered-insert/ordered-merge techniques are adapted from
// github.com/gaissmai/bart's internal/sparse.Array, which keeps a
// popcount-compressed slice of arbitrary payloads addressed by rank
// against a side bitset. Here there is no side bitset: the block index
// itself is the search key, so lookups binary-search the record slice
// directly instead of ranking against a presence bitmap.
package sparse
