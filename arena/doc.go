// Package arena implements a fixed-capacity memory arena allocator with
// pluggable hole-placement strategies.
//
// # Overview
//
// An Arena owns one pre-reserved byte buffer and services allocation and
// release requests against it. Free and occupied regions are tracked in an
// ordered block list backed by a fixed-capacity metadata slot pool, so the
// allocator's own bookkeeping is deterministic and boundable: no operation
// ever allocates metadata beyond the configured slot capacity.
//
// # Lifecycle
//
//	a, err := arena.New(4096, fit.BestFit)
//	if err != nil {
//	    return err
//	}
//	defer a.Destroy()
//
//	addr, err := a.Alloc(100)
//	if err != nil {
//	    return err
//	}
//
//	// ... use a.Bytes()[addr : addr+100] ...
//
//	err = a.Free(addr)
//
// Destroy releases the backing buffer and all metadata; it is idempotent, and
// every other operation on a destroyed (or zero-value) Arena fails with
// ErrNotInitialized.
//
// # Placement Strategies
//
// The placement policy is chosen at construction and fixed for the arena's
// lifetime:
//
//   - fit.FirstFit: first eligible hole from the lowest address
//   - fit.NextFit: first eligible hole from a cursor persisted across calls
//   - fit.BestFit: smallest eligible hole (ties to lowest address)
//   - fit.WorstFit: largest eligible hole (ties to lowest address)
//
// # Alignment
//
// Capacities and request sizes are rounded up to 4-byte multiples. Zero-size
// requests are rejected with ErrZeroAlloc rather than silently aligned up.
//
// # Failure Modes
//
// Alloc distinguishes two exhaustion conditions that demand different caller
// responses:
//
//   - ErrOutOfSpace: no hole is large enough; free something or give up.
//   - ErrPoolExhausted: a hole exists but no metadata slot is available to
//     record the split; free something (coalescing returns slots) or build
//     the arena with a larger WithSlotCapacity.
//
// # Invariants
//
// After every operation the block list's record lengths sum exactly to the
// arena capacity, and no two address-adjacent records are both free (holes
// are coalesced eagerly on Free).
//
// # Thread Safety
//
// Arena is not thread-safe. Callers must serialize all operations against a
// given instance.
//
// # Related Packages
//
//   - github.com/joshuapare/arenakit/arena/blocklist: block sequence, split and coalesce
//   - github.com/joshuapare/arenakit/arena/fit: placement strategies
//   - github.com/joshuapare/arenakit/arena/printer: diagnostic block-list dumps
//   - github.com/joshuapare/arenakit/pkg/global: package-level single-instance facade
package arena
