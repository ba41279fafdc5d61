// Package fit implements the four hole-placement strategies: first-fit,
// next-fit, best-fit, and worst-fit.
//
// A strategy inspects the block list and returns the predecessor of the hole
// to carve from; the block list's Split does the carving. First, best, and
// worst fit are stateless full or prefix scans. Next-fit resumes from a
// cursor persisted on the list itself, trading fit quality for average search
// cost by not re-scanning the front of the arena on every request.
package fit

import (
	"fmt"
	"strings"

	"github.com/joshuapare/arenakit/arena/blocklist"
	"github.com/joshuapare/arenakit/internal/slotpool"
)

// Policy selects a placement strategy. It is fixed for the lifetime of one
// initialized arena.
type Policy uint8

const (
	FirstFit Policy = iota
	NextFit
	BestFit
	WorstFit
)

// String returns the policy's display name.
func (p Policy) String() string {
	switch p {
	case FirstFit:
		return "first"
	case NextFit:
		return "next"
	case BestFit:
		return "best"
	case WorstFit:
		return "worst"
	default:
		return fmt.Sprintf("policy(%d)", uint8(p))
	}
}

// ParsePolicy maps a name ("first", "next", "best", "worst") to its Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "first", "first-fit", "firstfit":
		return FirstFit, nil
	case "next", "next-fit", "nextfit":
		return NextFit, nil
	case "best", "best-fit", "bestfit":
		return BestFit, nil
	case "worst", "worst-fit", "worstfit":
		return WorstFit, nil
	default:
		return 0, fmt.Errorf("fit: unknown policy %q", s)
	}
}

// Picker locates the hole to satisfy an allocation. Pick returns the
// predecessor handle to hand to blocklist.Split, or ok=false when no hole of
// at least need bytes exists anywhere in the list. need is already aligned.
type Picker interface {
	Pick(l *blocklist.List, need uint32) (pred slotpool.Handle, ok bool)
}

// New returns the Picker for a policy.
func New(p Policy) Picker {
	switch p {
	case NextFit:
		return &nextFit{}
	case BestFit:
		return bestFit{}
	case WorstFit:
		return worstFit{}
	default:
		return firstFit{}
	}
}

// eligible reports whether pred's successor is a hole of at least need bytes.
func eligible(l *blocklist.List, pred slotpool.Handle, need uint32) bool {
	h := l.Node(pred).Next
	if h == slotpool.None {
		return false
	}
	n := l.Node(h)
	return n.Kind == slotpool.Hole && n.Length >= need
}

// firstFit scans from the sentinel and takes the first eligible hole, so ties
// break to the lowest address.
type firstFit struct{}

func (firstFit) Pick(l *blocklist.List, need uint32) (slotpool.Handle, bool) {
	for pred := l.Head(); pred != slotpool.None; pred = l.Node(pred).Next {
		if eligible(l, pred, need) {
			return pred, true
		}
	}
	return slotpool.None, false
}

// nextFit resumes scanning at the cursor persisted on the list, wrapping past
// the list end back to the sentinel, and gives up only once the scan returns
// to its starting position. The cursor moves only on success.
type nextFit struct{}

func (nextFit) Pick(l *blocklist.List, need uint32) (slotpool.Handle, bool) {
	start := l.Cursor()
	pred := start
	for {
		if eligible(l, pred, need) {
			l.SetCursor(pred)
			return pred, true
		}
		pred = l.Node(pred).Next
		if pred == slotpool.None {
			pred = l.Head()
		}
		if pred == start {
			return slotpool.None, false
		}
	}
}

// bestFit scans the whole list for the smallest eligible hole, ties to the
// first encountered.
type bestFit struct{}

func (bestFit) Pick(l *blocklist.List, need uint32) (slotpool.Handle, bool) {
	best := slotpool.None
	var bestLen uint32
	for pred := l.Head(); pred != slotpool.None; pred = l.Node(pred).Next {
		if !eligible(l, pred, need) {
			continue
		}
		length := l.Node(l.Node(pred).Next).Length
		if best == slotpool.None || length < bestLen {
			best = pred
			bestLen = length
		}
	}
	return best, best != slotpool.None
}

// worstFit scans the whole list for the largest eligible hole, ties to the
// first encountered.
type worstFit struct{}

func (worstFit) Pick(l *blocklist.List, need uint32) (slotpool.Handle, bool) {
	worst := slotpool.None
	var worstLen uint32
	for pred := l.Head(); pred != slotpool.None; pred = l.Node(pred).Next {
		if !eligible(l, pred, need) {
			continue
		}
		length := l.Node(l.Node(pred).Next).Length
		if worst == slotpool.None || length > worstLen {
			worst = pred
			worstLen = length
		}
	}
	return worst, worst != slotpool.None
}
