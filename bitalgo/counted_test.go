// Copyright (c) 2025 The bbit Authors
// SPDX-License-Identifier: MIT

package bitalgo

import (
	"testing"

	"github.com/cliquebit/bbit/bitset"
	"github.com/stretchr/testify/require"
)

func TestCountedSizeTracksSetClear(t *testing.T) {
	c := NewCounted(4)
	require.True(t, c.IsEmpty())

	c.SetBit(5)
	c.SetBit(70)
	c.SetBit(70) // idempotent, must not double-count
	require.Equal(t, 2, c.Size())
	require.False(t, c.IsEmpty())

	c.ClearBit(5)
	c.ClearBit(5) // idempotent
	require.Equal(t, 1, c.Size())

	c.ClearAll()
	require.True(t, c.IsEmpty())
}

func TestCountedLSBMSBRespectEmptyCounter(t *testing.T) {
	c := NewCounted(2)
	require.Equal(t, bitset.NoBit, c.LSB())
	require.Equal(t, bitset.NoBit, c.MSB())

	c.SetBit(3)
	c.SetBit(100)
	require.Equal(t, 3, c.LSB())
	require.Equal(t, 100, c.MSB())
}

func TestCountedPopLSBPopMSBDrainToEmpty(t *testing.T) {
	c := NewCounted(2)
	for _, b := range []uint{3, 10, 100} {
		c.SetBit(b)
	}

	require.Equal(t, 100, c.PopMSB())
	require.Equal(t, 3, c.PopLSB())
	require.Equal(t, 1, c.Size())
	require.Equal(t, 10, c.PopLSB())
	require.True(t, c.IsEmpty())
	require.Equal(t, bitset.NoBit, c.PopLSB())
	require.Equal(t, bitset.NoBit, c.PopMSB())
}

func TestCountedSyncPopcountRecoversFromDirectMutation(t *testing.T) {
	c := NewCounted(1)
	c.SetBit(1)
	c.Dense().SetBit(2) // bypasses the counter
	require.Equal(t, 1, c.Size(), "counter is stale until synced")

	require.Equal(t, 2, c.SyncPopcount())
	require.Equal(t, 2, c.Size())
}
