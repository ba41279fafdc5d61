package arena_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/arenakit/arena"
	"github.com/joshuapare/arenakit/arena/fit"
	"github.com/joshuapare/arenakit/internal/testutil"
)

// Test_RandomWorkload_InvariantsHold drives each policy with a deterministic
// random alloc/free mix and asserts the structural invariants after every
// operation: conservation, contiguity, and no adjacent holes.
func Test_RandomWorkload_InvariantsHold(t *testing.T) {
	for _, p := range []fit.Policy{fit.FirstFit, fit.NextFit, fit.BestFit, fit.WorstFit} {
		t.Run(p.String(), func(t *testing.T) {
			rng := rand.New(rand.NewSource(0x5eed + int64(p)))

			a, err := arena.New(64*1024, p, arena.WithSlotCapacity(200))
			require.NoError(t, err)
			defer a.Destroy() //nolint:errcheck

			live := make([]uint32, 0, 128)
			for i := 0; i < 2000; i++ {
				if len(live) == 0 || rng.Intn(100) < 60 {
					size := uint32(rng.Intn(1024) + 1)
					addr, err := a.Alloc(size)
					if err != nil {
						// Exhaustion is legal under pressure; corruption is not.
						require.True(t,
							errors.Is(err, arena.ErrOutOfSpace) ||
								errors.Is(err, arena.ErrPoolExhausted),
							"op %d: unexpected alloc error: %v", i, err)
						// Relieve pressure so the workload keeps moving.
						if len(live) > 0 {
							victim := rng.Intn(len(live))
							require.NoError(t, a.Free(live[victim]))
							live = append(live[:victim], live[victim+1:]...)
						}
					} else {
						require.Less(t, addr, a.Capacity(), "op %d", i)
						live = append(live, addr)
					}
				} else {
					victim := rng.Intn(len(live))
					require.NoError(t, a.Free(live[victim]), "op %d", i)
					live = append(live[:victim], live[victim+1:]...)
				}

				testutil.RequireConservation(t, a)
				testutil.RequireContiguous(t, a)
				testutil.RequireNoAdjacentHoles(t, a)
			}

			// Draining everything must collapse the list to one hole.
			for _, addr := range live {
				require.NoError(t, a.Free(addr))
			}
			size, err := a.Size()
			require.NoError(t, err)
			require.Equal(t, 1, size)
			testutil.RequireConservation(t, a)
		})
	}
}

// Test_RandomWorkload_DataIntegrity verifies that bytes written to one block
// survive unrelated alloc/free traffic: blocks never overlap.
func Test_RandomWorkload_DataIntegrity(t *testing.T) {
	rng := rand.New(rand.NewSource(41))

	a, err := arena.New(32*1024, fit.BestFit)
	require.NoError(t, err)
	defer a.Destroy() //nolint:errcheck

	type block struct {
		addr uint32
		size uint32
		fill byte
	}
	live := make([]block, 0, 64)

	for i := 0; i < 1500; i++ {
		if len(live) == 0 || rng.Intn(100) < 55 {
			size := uint32(rng.Intn(512) + 1)
			addr, err := a.Alloc(size)
			if err != nil {
				continue
			}
			fill := byte(rng.Intn(255) + 1)
			buf := a.Bytes()[addr : addr+size]
			for j := range buf {
				buf[j] = fill
			}
			live = append(live, block{addr: addr, size: size, fill: fill})
		} else {
			victim := rng.Intn(len(live))
			b := live[victim]
			for j := uint32(0); j < b.size; j++ {
				require.Equal(t, b.fill, a.Bytes()[b.addr+j],
					"op %d: block at %d corrupted at byte %d", i, b.addr, j)
			}
			require.NoError(t, a.Free(b.addr))
			live = append(live[:victim], live[victim+1:]...)
		}
	}

	for _, b := range live {
		for j := uint32(0); j < b.size; j++ {
			require.Equal(t, b.fill, a.Bytes()[b.addr+j])
		}
		require.NoError(t, a.Free(b.addr))
	}
}
