// Copyright (c) 2025 The bbit Authors
// SPDX-License-Identifier: MIT

// Package bitset implements the primitive 64-bit block operations, the
// process-wide mask/lookup-table singleton, and the fixed-capacity Dense
// bitset that the rest of the engine (sparse, sentinel, scan) is built on.
//
// Studied github.com/gaissmai/bart's internal/bitset package inside out and
// generalized it from a routing-table-sized building block into a
// general-purpose bitset engine for combinatorial search over graphs.
package bitset
