package arena_test

import (
	"testing"

	"github.com/joshuapare/arenakit/arena"
	"github.com/joshuapare/arenakit/arena/fit"
)

// Benchmark_AllocFree_Churn measures a steady-state alloc/free pair per
// policy on a moderately fragmented arena.
func Benchmark_AllocFree_Churn(b *testing.B) {
	for _, p := range []fit.Policy{fit.FirstFit, fit.NextFit, fit.BestFit, fit.WorstFit} {
		b.Run(p.String(), func(b *testing.B) {
			a, err := arena.New(1<<20, p, arena.WithSlotCapacity(1024))
			if err != nil {
				b.Fatal(err)
			}
			defer a.Destroy() //nolint:errcheck

			// Pre-fragment: leave alternating holes across the arena.
			addrs := make([]uint32, 0, 256)
			for i := 0; i < 256; i++ {
				addr, err := a.Alloc(2048)
				if err != nil {
					b.Fatal(err)
				}
				addrs = append(addrs, addr)
			}
			for i := 0; i < len(addrs); i += 2 {
				if err := a.Free(addrs[i]); err != nil {
					b.Fatal(err)
				}
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				addr, err := a.Alloc(1024)
				if err != nil {
					b.Fatal(err)
				}
				if err := a.Free(addr); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// Benchmark_Alloc_SequentialFill measures front-to-back carving of a fresh
// arena, the pattern every policy degenerates to on a single hole.
func Benchmark_Alloc_SequentialFill(b *testing.B) {
	a, err := arena.New(1<<24, fit.FirstFit, arena.WithSlotCapacity(1<<16))
	if err != nil {
		b.Fatal(err)
	}
	defer a.Destroy() //nolint:errcheck

	addrs := make([]uint32, 0, 1<<14)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		addr, err := a.Alloc(64)
		if err != nil {
			// Arena full: reset and keep going.
			b.StopTimer()
			for _, ad := range addrs {
				_ = a.Free(ad)
			}
			addrs = addrs[:0]
			b.StartTimer()
			continue
		}
		addrs = append(addrs, addr)
	}
}
