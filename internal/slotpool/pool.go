// Package slotpool provides a fixed-capacity store of block-metadata records
// with O(1) acquire/release via a LIFO free stack.
//
// All links between block records are Handles (indices into the pool's record
// table) rather than pointers, so a recycled slot can never dangle: a Handle
// either names a live record or sits on the free stack.
package slotpool

// Handle identifies one record slot in a Pool. The zero-capacity pool has no
// valid handles; None marks the absence of a record (end of list, empty cursor).
type Handle = int32

// None is the null Handle.
const None Handle = -1

// Kind classifies a block record.
type Kind uint8

const (
	// Hole marks a free region of the arena.
	Hole Kind = iota

	// Occupied marks a region handed out to a caller.
	Occupied
)

// String returns the kind's display name.
func (k Kind) String() string {
	switch k {
	case Hole:
		return "H"
	case Occupied:
		return "P"
	default:
		return "?"
	}
}

// Node is one block-metadata record. Nodes live only inside a Pool and are
// reached through Handles.
type Node struct {
	Kind   Kind
	Addr   uint32 // offset within the arena
	Length uint32 // bytes
	Next   Handle // following record in address order, or None
}

// Pool is a fixed-capacity slot table with a free stack of handles.
//
// Invariant: (slots linked into a block list) + (slots on the free stack)
// equals the pool's capacity at all times. Exhaustion is reported by Acquire
// returning false, never by growing the table.
type Pool struct {
	nodes []Node
	free  []Handle // LIFO stack of available slots
}

// New creates a pool of n record slots, all initially free.
func New(n int) *Pool {
	p := &Pool{
		nodes: make([]Node, n),
		free:  make([]Handle, 0, n),
	}
	// Push in reverse so slot 0 is acquired first; matches insertion order
	// expectations in tests and keeps early handles small.
	for i := n - 1; i >= 0; i-- {
		p.free = append(p.free, Handle(i))
	}
	return p
}

// Cap returns the pool's fixed slot capacity.
func (p *Pool) Cap() int { return len(p.nodes) }

// Free returns the number of slots currently on the free stack.
func (p *Pool) Free() int { return len(p.free) }

// Acquire pops a slot off the free stack. The second return is false when the
// pool is exhausted. The returned slot's record is zeroed with Next = None.
func (p *Pool) Acquire() (Handle, bool) {
	if len(p.free) == 0 {
		return None, false
	}
	h := p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]
	p.nodes[h] = Node{Next: None}
	return h, true
}

// Release pushes a slot back onto the free stack.
//
// Releasing a handle that is already free is undefined; the block list's own
// bookkeeping makes that unreachable, so no defense is mounted here.
func (p *Pool) Release(h Handle) {
	p.free = append(p.free, h)
}

// Node returns the record backing h. The pointer is valid for the lifetime of
// the pool; h must be a live handle.
func (p *Pool) Node(h Handle) *Node {
	return &p.nodes[h]
}
