package blocklist

import "errors"

var (
	// ErrPoolExhausted indicates the node slot pool had no record available,
	// even though arena space may exist.
	ErrPoolExhausted = errors.New("blocklist: node slot pool exhausted")

	// ErrNotFound indicates no block record starts at the given address.
	ErrNotFound = errors.New("blocklist: no block at address")

	// ErrNotOccupied indicates the block at the given address is already a
	// hole (double free).
	ErrNotOccupied = errors.New("blocklist: block is not occupied")

	// ErrBadSplit indicates the split predecessor's successor is not a hole
	// large enough for the request.
	ErrBadSplit = errors.New("blocklist: split predecessor has no eligible hole")
)
