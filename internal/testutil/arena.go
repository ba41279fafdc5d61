// Package testutil provides shared helpers for building arenas in known
// states and asserting the allocator's structural invariants.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/arenakit/arena"
	"github.com/joshuapare/arenakit/arena/fit"
	"github.com/joshuapare/arenakit/internal/slotpool"
)

// BuildHolePattern creates an arena whose free space is exactly the given
// hole sizes at increasing addresses, each preceded by a sep-byte occupied
// block so no two holes are adjacent. Returns the arena and the address of
// each hole in order. All sizes must be 4-byte multiples.
//
// The arena is carved by filling it front to back and then freeing every
// second block; with a single initial hole every policy allocates
// sequentially, so the layout is policy-independent.
func BuildHolePattern(
	t *testing.T,
	policy fit.Policy,
	holes []uint32,
	sep uint32,
	opts ...arena.Option,
) (*arena.Arena, []uint32) {
	t.Helper()

	var capacity uint32
	for _, h := range holes {
		capacity += sep + h
	}

	a, err := arena.New(capacity, policy, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Destroy() })

	holeAddrs := make([]uint32, 0, len(holes))
	for _, h := range holes {
		_, err := a.Alloc(sep)
		require.NoError(t, err)
		addr, err := a.Alloc(h)
		require.NoError(t, err)
		holeAddrs = append(holeAddrs, addr)
	}
	for _, addr := range holeAddrs {
		require.NoError(t, a.Free(addr))
	}
	return a, holeAddrs
}

// RequireConservation asserts that the block-list record lengths sum exactly
// to the arena capacity.
func RequireConservation(t *testing.T, a *arena.Arena) {
	t.Helper()
	blocks, err := a.Blocks()
	require.NoError(t, err)
	var total uint64
	for _, b := range blocks {
		total += uint64(b.Length)
	}
	require.Equal(t, uint64(a.Capacity()), total, "block lengths must sum to capacity")
}

// RequireNoAdjacentHoles asserts the eager-coalescing invariant: no two
// address-adjacent records are both holes.
func RequireNoAdjacentHoles(t *testing.T, a *arena.Arena) {
	t.Helper()
	blocks, err := a.Blocks()
	require.NoError(t, err)
	for i := 1; i < len(blocks); i++ {
		if blocks[i-1].Kind == slotpool.Hole && blocks[i].Kind == slotpool.Hole {
			t.Fatalf("adjacent holes at %d and %d", blocks[i-1].Addr, blocks[i].Addr)
		}
	}
}

// RequireContiguous asserts that blocks are address-ascending with no gaps,
// starting at address 0.
func RequireContiguous(t *testing.T, a *arena.Arena) {
	t.Helper()
	blocks, err := a.Blocks()
	require.NoError(t, err)
	var next uint32
	for i, b := range blocks {
		require.Equal(t, next, b.Addr, "block %d starts at the wrong address", i)
		next += b.Length
	}
	require.Equal(t, a.Capacity(), next)
}
