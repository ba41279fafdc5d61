package arena

import (
	"errors"

	"github.com/joshuapare/arenakit/arena/blocklist"
)

var (
	// ErrNotInitialized indicates an operation on a destroyed or zero-value
	// Arena.
	ErrNotInitialized = errors.New("arena: not initialized")

	// ErrBadCapacity indicates an unusable arena capacity (zero, or beyond
	// the 2GB addressing limit).
	ErrBadCapacity = errors.New("arena: bad capacity")

	// ErrBadSlotCapacity indicates a metadata slot capacity too small to
	// hold the sentinel and the initial hole.
	ErrBadSlotCapacity = errors.New("arena: slot capacity must be at least 2")

	// ErrBadPolicy indicates an unknown placement policy.
	ErrBadPolicy = errors.New("arena: unknown placement policy")

	// ErrZeroAlloc indicates a zero-size allocation request, which is
	// rejected as an explicit policy.
	ErrZeroAlloc = errors.New("arena: zero-size allocation")

	// ErrOutOfSpace indicates no hole large enough exists under the active
	// placement strategy.
	ErrOutOfSpace = errors.New("arena: no hole large enough")

	// ErrBadAddress indicates a free of an address that names no block.
	ErrBadAddress = errors.New("arena: address is not an allocated block")

	// ErrDoubleFree indicates a free of an address whose block is already a
	// hole.
	ErrDoubleFree = errors.New("arena: block already free")

	// ErrPoolExhausted indicates the metadata slot pool ran out even though
	// arena space exists. Distinct from ErrOutOfSpace: the cure is freeing
	// blocks (coalescing returns slots) or a larger WithSlotCapacity, not
	// more arena bytes.
	ErrPoolExhausted = blocklist.ErrPoolExhausted
)
