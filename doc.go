// Copyright (c) 2025 The bbit Authors
// SPDX-License-Identifier: MIT

// Package bbit is the root of a bitset engine for combinatorial
// optimization over graphs: fixed-capacity 64-bit-word bitsets, a
// compressed sparse variant, a shared cached-cursor scanning layer, and a
// dense-plus-window sentinel variant, all built on a common primitive and
// lookup-table layer.
//
//   - bitset:   primitive word operations, the mask/table singleton, and
//     the dense bitset
//   - sparse:   the compressed, non-zero-block-only bitset
//   - scan:     the four-mode scanning cursor shared by dense and sparse
//   - sentinel: dense bitset plus a maintained non-zero-block window
//   - bitalgo:  block-level helpers used by tests and callers building on
//     top of the engine
//
// Graph algorithms, file-format readers, CLIs, and benchmarking harnesses
// that consume this engine live outside this module.
package bbit
