package arena_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/arenakit/arena"
	"github.com/joshuapare/arenakit/arena/fit"
	"github.com/joshuapare/arenakit/internal/testutil"
)

// Test_PoolExhausted_DistinctFromOutOfSpace drives a small-slot arena to the
// point where arena space exists but no metadata slot does, and checks the
// two failures are observably different.
func Test_PoolExhausted_DistinctFromOutOfSpace(t *testing.T) {
	// 6 slots: sentinel + initial hole up front, leaving 4 for blocks.
	a, err := arena.New(4096, fit.FirstFit, arena.WithSlotCapacity(6))
	require.NoError(t, err)
	defer a.Destroy() //nolint:errcheck

	// Four splitting allocations bring the list to 4 occupied blocks plus
	// the shrinking hole: 5 records, all 6 slots live (sentinel included).
	addrs := make([]uint32, 0, 4)
	for range 4 {
		addr, err := a.Alloc(100)
		require.NoError(t, err)
		addrs = append(addrs, addr)
	}
	size, err := a.Size()
	require.NoError(t, err)
	require.Equal(t, 5, size)

	// Plenty of arena bytes remain, but the next split has no slot.
	_, err = a.Alloc(100)
	require.ErrorIs(t, err, arena.ErrPoolExhausted)
	require.NotErrorIs(t, err, arena.ErrOutOfSpace)

	// Requesting more than any hole holds is the other failure.
	_, err = a.Alloc(1 << 20)
	require.ErrorIs(t, err, arena.ErrOutOfSpace)
	require.NotErrorIs(t, err, arena.ErrPoolExhausted)

	// The failed split left the arena intact.
	testutil.RequireConservation(t, a)

	// Freeing one isolated block returns no slot (its record just flips to a
	// hole), so the split still has nothing to acquire.
	require.NoError(t, a.Free(addrs[0]))
	_, err = a.Alloc(100)
	require.ErrorIs(t, err, arena.ErrPoolExhausted)

	// Freeing its neighbor coalesces the two holes, returning a slot; the
	// same allocation now succeeds.
	require.NoError(t, a.Free(addrs[1]))
	_, err = a.Alloc(100)
	require.NoError(t, err)
	testutil.RequireConservation(t, a)
}

// Test_ExactFit_NetsZeroSlots shows that consuming a hole exactly keeps slot
// usage flat: the occupied record takes the hole's place, so the arena can
// alternate exact-fit allocs and frees indefinitely on one spare slot.
func Test_ExactFit_NetsZeroSlots(t *testing.T) {
	// 4 slots: sentinel + one occupied + one hole live, one spare for the
	// transient record each split acquires before the hole is deleted.
	a, err := arena.New(400, fit.FirstFit, arena.WithSlotCapacity(4))
	require.NoError(t, err)
	defer a.Destroy() //nolint:errcheck

	first, err := a.Alloc(100)
	require.NoError(t, err)

	for range 8 {
		addr, err := a.Alloc(300)
		require.NoError(t, err)
		require.Equal(t, uint32(100), addr)

		st := a.Stats()
		require.Equal(t, st.AllocCalls-1, st.ExactFits, "all but the first alloc are exact fits")
		require.NoError(t, a.Free(addr))
	}

	require.NoError(t, a.Free(first))
	size, err := a.Size()
	require.NoError(t, err)
	require.Equal(t, 1, size)
	testutil.RequireConservation(t, a)
}
