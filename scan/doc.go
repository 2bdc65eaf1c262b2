// Copyright (c) 2025 The bbit Authors
// SPDX-License-Identifier: MIT

// Package scan implements the cached-cursor scanning layer shared by
// dense and sparse bitsets: four scan modes (forward/reverse ×
// destructive/non-destructive) exposed through one Scanner type so
// callers can enumerate set bits without knowing the underlying storage
// strategy.
//
// This is the Go expression of a single coherent scanning contract,
// where github.com/gaissmai/bart reaches for template-based compile-time
// polymorphism (its node/table variants all share one iteration protocol
// over different backing arrays); here the shared contract is the small
// Bits interface below plus the stateful Scanner wrapping it.
package scan
