// Package blocklist maintains the ordered, address-contiguous sequence of
// free and occupied blocks covering an arena.
//
// The list is singly linked through slot-pool handles and headed by a
// permanent sentinel record (address 0, length 0) that is never a semantic
// block. Every real block therefore has a predecessor, so deleting or
// replacing the first block needs no special case.
//
// Two invariants hold after every public operation:
//
//   - Conservation: the lengths of all records sum to the arena capacity.
//   - Eager coalescing: no two address-adjacent records are both holes.
package blocklist

import (
	"github.com/joshuapare/arenakit/internal/slotpool"
)

// BlockInfo is a read-only snapshot of one block record, in list order.
// It carries no contract beyond being a faithful read of current state.
type BlockInfo struct {
	Kind   slotpool.Kind `json:"kind"`
	Addr   uint32        `json:"address"`
	Length uint32        `json:"length"`
}

// List is the block sequence for one arena.
type List struct {
	pool     *slotpool.Pool
	head     slotpool.Handle // sentinel, never released while the list lives
	capacity uint32
	count    int // records excluding the sentinel

	// cursor is the next-fit predecessor locator. It always names a live
	// record (possibly the sentinel): any splice that deletes the record it
	// points at resets it to the sentinel.
	cursor slotpool.Handle
}

// New builds a list over pool covering [0, capacity): a sentinel followed by
// one hole spanning the whole arena. Fails with ErrPoolExhausted when the pool
// cannot supply the two records; nothing is left acquired on failure.
func New(pool *slotpool.Pool, capacity uint32) (*List, error) {
	head, ok := pool.Acquire()
	if !ok {
		return nil, ErrPoolExhausted
	}
	first, ok := pool.Acquire()
	if !ok {
		pool.Release(head)
		return nil, ErrPoolExhausted
	}

	hn := pool.Node(head)
	hn.Kind = slotpool.Hole
	hn.Addr = 0
	hn.Length = 0
	hn.Next = first

	fn := pool.Node(first)
	fn.Kind = slotpool.Hole
	fn.Addr = 0
	fn.Length = capacity
	fn.Next = slotpool.None

	return &List{
		pool:     pool,
		head:     head,
		capacity: capacity,
		count:    1,
		cursor:   head,
	}, nil
}

// Head returns the sentinel handle. All walks begin here.
func (l *List) Head() slotpool.Handle { return l.head }

// Node returns the record backing h.
func (l *List) Node(h slotpool.Handle) *slotpool.Node { return l.pool.Node(h) }

// Len returns the number of block records, excluding the sentinel.
func (l *List) Len() int { return l.count }

// Capacity returns the arena capacity the list covers.
func (l *List) Capacity() uint32 { return l.capacity }

// Cursor returns the persisted next-fit predecessor locator.
func (l *List) Cursor() slotpool.Handle { return l.cursor }

// SetCursor stores the next-fit predecessor locator. h must be a live record
// of this list (the sentinel included).
func (l *List) SetCursor(h slotpool.Handle) { l.cursor = h }

// Walk visits every real block in address order. The visit stops early when
// fn returns false.
func (l *List) Walk(fn func(h slotpool.Handle, n *slotpool.Node) bool) {
	for h := l.pool.Node(l.head).Next; h != slotpool.None; {
		n := l.pool.Node(h)
		next := n.Next
		if !fn(h, n) {
			return
		}
		h = next
	}
}

// Snapshot returns the current block sequence as read-only records.
func (l *List) Snapshot() []BlockInfo {
	out := make([]BlockInfo, 0, l.count)
	l.Walk(func(_ slotpool.Handle, n *slotpool.Node) bool {
		out = append(out, BlockInfo{Kind: n.Kind, Addr: n.Addr, Length: n.Length})
		return true
	})
	return out
}

// unlink splices out the successor of pred and returns its slot to the pool.
// The cursor is repaired if it pointed at the deleted record.
func (l *List) unlink(pred, victim slotpool.Handle) {
	l.pool.Node(pred).Next = l.pool.Node(victim).Next
	if l.cursor == victim {
		l.cursor = l.head
	}
	l.pool.Release(victim)
	l.count--
}
