// Copyright (c) 2025 The bbit Authors
// SPDX-License-Identifier: MIT

// Package bitalgo collects small block-level helpers used across the
// engine and by its test suites: generating random blocks at a target
// density, and truncating a block to its first k set bits. Neither
// belongs on Dense or Set themselves since both operate on a bare
// uint64, not on any particular bitset's storage.
package bitalgo
