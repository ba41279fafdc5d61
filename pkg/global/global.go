// Package global exposes one process-wide arena behind package-level
// functions, for callers that want the classic init/alloc/free/destroy
// surface without threading an instance through every call site.
//
// It is a thin wrapper over a single owned *arena.Arena; everything the
// facade documents (alignment, error taxonomy, caller-serialized access)
// applies unchanged. Programs that need multiple independent arenas should
// use the arena package directly.
package global

import (
	"errors"

	"github.com/joshuapare/arenakit/arena"
	"github.com/joshuapare/arenakit/arena/blocklist"
	"github.com/joshuapare/arenakit/arena/fit"
)

// ErrAlreadyInitialized indicates Init was called while an arena is live.
// Destroy the current arena first.
var ErrAlreadyInitialized = errors.New("global: arena already initialized")

// instance is the single live arena, nil when uninitialized.
var instance *arena.Arena

// Init creates the process-wide arena. Capacity, policy, and options follow
// arena.New exactly.
func Init(capacity uint32, policy fit.Policy, opts ...arena.Option) error {
	if instance != nil {
		return ErrAlreadyInitialized
	}
	a, err := arena.New(capacity, policy, opts...)
	if err != nil {
		return err
	}
	instance = a
	return nil
}

// Alloc reserves size bytes from the process-wide arena.
func Alloc(size uint32) (uint32, error) {
	if instance == nil {
		return 0, arena.ErrNotInitialized
	}
	return instance.Alloc(size)
}

// Free releases the block at addr.
func Free(addr uint32) error {
	if instance == nil {
		return arena.ErrNotInitialized
	}
	return instance.Free(addr)
}

// Size returns the current block-record count.
func Size() (int, error) {
	if instance == nil {
		return 0, arena.ErrNotInitialized
	}
	return instance.Size()
}

// Blocks returns a snapshot of the block list.
func Blocks() ([]blocklist.BlockInfo, error) {
	if instance == nil {
		return nil, arena.ErrNotInitialized
	}
	return instance.Blocks()
}

// Bytes returns the live backing buffer, nil when uninitialized.
func Bytes() []byte {
	if instance == nil {
		return nil
	}
	return instance.Bytes()
}

// Destroy tears down the process-wide arena. Safe and idempotent when
// nothing is initialized; a later Init starts fresh.
func Destroy() error {
	if instance == nil {
		return nil
	}
	err := instance.Destroy()
	instance = nil
	return err
}
