package arena

import (
	"errors"
	"fmt"
	"os"

	"github.com/joshuapare/arenakit/arena/blocklist"
	"github.com/joshuapare/arenakit/arena/fit"
	"github.com/joshuapare/arenakit/internal/membuf"
	"github.com/joshuapare/arenakit/internal/slotpool"
)

// Runtime debug flag for allocation logging - controlled by ARENA_LOG_ALLOC env var.
var logAlloc = os.Getenv("ARENA_LOG_ALLOC") != ""

const (
	// alignment is the granularity every capacity and request size is
	// rounded up to.
	alignment = 4

	// maxCapacity caps the arena at 2GB so addresses and lengths stay well
	// inside uint32 arithmetic.
	maxCapacity = 1 << 31
)

// Stats holds counters accumulated over an Arena's lifetime. Diagnostic only;
// none of the allocation algorithms read them.
type Stats struct {
	AllocCalls     int   // Total Alloc() calls
	AllocFailures  int   // Allocs that returned an error
	FreeCalls      int   // Total Free() calls
	FreeFailures   int   // Frees that returned an error
	ExactFits      int   // Allocations that consumed a hole exactly
	Coalesces      int   // Hole merges performed by frees
	BytesAllocated int64 // Total bytes handed out (after alignment)
	BytesFreed     int64 // Total bytes returned
}

// Arena is one fixed-capacity allocator instance. The zero value is
// uninitialized; build instances with New. Arena is not safe for concurrent
// use.
type Arena struct {
	buf     []byte
	release func() error
	pool    *slotpool.Pool
	list    *blocklist.List
	picker  fit.Picker
	policy  fit.Policy
	stats   Stats
}

// New creates an arena of the given capacity (rounded up to a 4-byte
// multiple) using the given placement policy.
//
// Fails with ErrBadCapacity for a zero or >2GB capacity, ErrBadPolicy for an
// unknown policy, ErrBadSlotCapacity for a WithSlotCapacity below 2, and a
// wrapped membuf error when the backing buffer cannot be reserved. A failed
// New leaves nothing behind: partial resources are released before return.
func New(capacity uint32, policy fit.Policy, opts ...Option) (*Arena, error) {
	if capacity == 0 || capacity > maxCapacity {
		return nil, fmt.Errorf("%w: %d", ErrBadCapacity, capacity)
	}
	if policy > fit.WorstFit {
		return nil, fmt.Errorf("%w: %d", ErrBadPolicy, uint8(policy))
	}

	cfg := config{slotCapacity: DefaultSlotCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.slotCapacity < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrBadSlotCapacity, cfg.slotCapacity)
	}

	aligned := alignUp(capacity)

	buf, release, err := membuf.Alloc(int(aligned))
	if err != nil {
		return nil, fmt.Errorf("arena: acquire backing buffer: %w", err)
	}

	pool := slotpool.New(cfg.slotCapacity)
	list, err := blocklist.New(pool, aligned)
	if err != nil {
		_ = release()
		return nil, err
	}

	return &Arena{
		buf:     buf,
		release: release,
		pool:    pool,
		list:    list,
		picker:  fit.New(policy),
		policy:  policy,
	}, nil
}

// Alloc reserves size bytes (rounded up to a 4-byte multiple) and returns the
// block's base address within the arena.
//
// Fails with ErrZeroAlloc for a zero size, ErrOutOfSpace when no hole is
// large enough, and ErrPoolExhausted when a hole exists but the metadata pool
// cannot record the split. The latter two are observably distinct.
func (a *Arena) Alloc(size uint32) (uint32, error) {
	if a.list == nil {
		return 0, ErrNotInitialized
	}
	a.stats.AllocCalls++
	if size == 0 {
		a.stats.AllocFailures++
		return 0, ErrZeroAlloc
	}
	need := alignUp(size)
	if need < size {
		// Aligning wrapped uint32; nothing can hold this.
		a.stats.AllocFailures++
		return 0, ErrOutOfSpace
	}

	pred, ok := a.picker.Pick(a.list, need)
	if !ok {
		a.stats.AllocFailures++
		return 0, fmt.Errorf("%w: %d bytes", ErrOutOfSpace, need)
	}

	before := a.list.Len()
	addr, err := a.list.Split(pred, need)
	if err != nil {
		a.stats.AllocFailures++
		return 0, err
	}
	if a.list.Len() == before {
		a.stats.ExactFits++
	}
	a.stats.BytesAllocated += int64(need)

	if logAlloc {
		fmt.Fprintf(os.Stderr, "[ARENA] alloc %d (aligned %d) -> %d [%s]\n",
			size, need, addr, a.policy)
	}
	return addr, nil
}

// Free releases the occupied block at addr, coalescing it with any adjacent
// holes. Fails with ErrBadAddress when addr names no block and ErrDoubleFree
// when the block there is already free; either failure leaves the arena
// unchanged.
func (a *Arena) Free(addr uint32) error {
	if a.list == nil {
		return ErrNotInitialized
	}
	a.stats.FreeCalls++

	before := a.list.Len()
	freed, err := a.list.Release(addr)
	switch {
	case err == nil:
	case errors.Is(err, blocklist.ErrNotOccupied):
		a.stats.FreeFailures++
		return fmt.Errorf("%w: %d", ErrDoubleFree, addr)
	default:
		a.stats.FreeFailures++
		return fmt.Errorf("%w: %d", ErrBadAddress, addr)
	}

	a.stats.Coalesces += before - a.list.Len()
	a.stats.BytesFreed += int64(freed)

	if logAlloc {
		fmt.Fprintf(os.Stderr, "[ARENA] free %d (%d bytes)\n", addr, freed)
	}
	return nil
}

// Size returns the current number of block records, excluding the structural
// sentinel. Diagnostic only.
func (a *Arena) Size() (int, error) {
	if a.list == nil {
		return 0, ErrNotInitialized
	}
	return a.list.Len(), nil
}

// Capacity returns the aligned arena capacity, or 0 when uninitialized.
func (a *Arena) Capacity() uint32 {
	if a.list == nil {
		return 0
	}
	return a.list.Capacity()
}

// Policy returns the placement policy the arena was built with.
func (a *Arena) Policy() fit.Policy { return a.policy }

// Stats returns a copy of the lifetime counters.
func (a *Arena) Stats() Stats { return a.stats }

// Bytes returns the live backing buffer; addresses returned by Alloc index
// into it. Nil when uninitialized.
func (a *Arena) Bytes() []byte { return a.buf }

// Blocks returns a faithful snapshot of the block list in address order, for
// diagnostics and test harnesses.
func (a *Arena) Blocks() ([]blocklist.BlockInfo, error) {
	if a.list == nil {
		return nil, ErrNotInitialized
	}
	return a.list.Snapshot(), nil
}

// Destroy releases the backing buffer and all metadata, returning the arena
// to the uninitialized state. Safe and idempotent on an already-destroyed
// arena.
func (a *Arena) Destroy() error {
	if a.list == nil {
		return nil
	}
	err := a.release()
	a.buf = nil
	a.release = nil
	a.pool = nil
	a.list = nil
	a.picker = nil
	return err
}

// alignUp rounds n up to the next multiple of the arena alignment.
func alignUp(n uint32) uint32 {
	return (n + alignment - 1) &^ (alignment - 1)
}
