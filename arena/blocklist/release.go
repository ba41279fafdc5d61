package blocklist

import (
	"github.com/joshuapare/arenakit/internal/slotpool"
)

// Release frees the occupied block starting at addr and eagerly coalesces it
// with adjacent holes.
//
// The two merges are independent and symmetric: a following hole is absorbed
// into the freed block, then the freed block is absorbed into a preceding
// hole. A block freed between two holes merges on both sides, collapsing
// three records into one.
//
// Returns the freed block's length. Fails with ErrNotFound when no block
// starts at addr (a foreign address) and ErrNotOccupied when the block there
// is already a hole (double free). Either failure leaves the list unchanged.
func (l *List) Release(addr uint32) (uint32, error) {
	prev := l.head
	cur := l.pool.Node(l.head).Next
	for cur != slotpool.None {
		n := l.pool.Node(cur)
		if n.Addr == addr {
			break
		}
		if n.Addr > addr {
			// Addresses ascend; nothing later can match.
			return 0, ErrNotFound
		}
		prev = cur
		cur = n.Next
	}
	if cur == slotpool.None {
		return 0, ErrNotFound
	}

	n := l.pool.Node(cur)
	if n.Kind == slotpool.Hole {
		return 0, ErrNotOccupied
	}
	n.Kind = slotpool.Hole
	freed := n.Length

	// Merge a following hole into the freed block.
	if next := n.Next; next != slotpool.None {
		nn := l.pool.Node(next)
		if nn.Kind == slotpool.Hole {
			n.Length += nn.Length
			l.unlink(cur, next)
		}
	}

	// Merge the freed block into a preceding hole. The sentinel is a
	// structural anchor, never a merge target.
	if prev != l.head {
		pn := l.pool.Node(prev)
		if pn.Kind == slotpool.Hole {
			pn.Length += n.Length
			l.unlink(prev, cur)
		}
	}

	return freed, nil
}
