package blocklist

import (
	"github.com/joshuapare/arenakit/internal/slotpool"
)

// Split carves an occupied block of need bytes out of the hole following
// pred, returning the new block's arena address.
//
// The hole keeps its slot and shrinks in place after the new block; when the
// carve consumes it exactly, its record is spliced out and returned to the
// pool. need must already be aligned by the caller.
//
// Fails with ErrPoolExhausted when no record is available for the occupied
// block, and with ErrBadSplit when pred's successor is not an eligible hole
// (placement strategies guarantee eligibility, so ErrBadSplit signals a
// caller bug rather than an arena condition).
func (l *List) Split(pred slotpool.Handle, need uint32) (uint32, error) {
	hole := l.pool.Node(pred).Next
	if hole == slotpool.None {
		return 0, ErrBadSplit
	}
	hn := l.pool.Node(hole)
	if hn.Kind != slotpool.Hole || hn.Length < need {
		return 0, ErrBadSplit
	}

	// Acquire before mutating so exhaustion leaves the list untouched.
	occ, ok := l.pool.Acquire()
	if !ok {
		return 0, ErrPoolExhausted
	}
	l.count++

	on := l.pool.Node(occ)
	on.Kind = slotpool.Occupied
	on.Addr = hn.Addr
	on.Length = need

	addr := on.Addr
	l.pool.Node(pred).Next = occ

	if hn.Length == need {
		// Hole fully consumed: splice straight to whatever followed it.
		on.Next = hole
		l.unlink(occ, hole)
	} else {
		hn.Addr += need
		hn.Length -= need
		on.Next = hole
	}

	return addr, nil
}
