package printer

import (
	"fmt"
	"io"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joshuapare/arenakit/arena"
	"github.com/joshuapare/arenakit/arena/blocklist"
	"github.com/joshuapare/arenakit/internal/slotpool"
)

// mp renders byte counts with digit grouping ("1,048,576").
var mp = message.NewPrinter(language.English)

// printText writes the block list as an aligned table, one record per line
// in list (address) order.
func printText(w io.Writer, a *arena.Arena, blocks []blocklist.BlockInfo, opts Options) error {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "#\tKIND\tADDRESS\tLENGTH")
	var free, used uint64
	for i, b := range blocks {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\n", i, b.Kind, b.Addr, b.Length)
		if b.Kind == slotpool.Hole {
			free += uint64(b.Length)
		} else {
			used += uint64(b.Length)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if !opts.ShowSummary {
		return nil
	}

	st := a.Stats()
	mp.Fprintf(w, "\n%d records over %d bytes (%s policy): %d used, %d free\n",
		len(blocks), a.Capacity(), a.Policy(), used, free)
	mp.Fprintf(w, "lifetime: %d allocs (%d exact), %d frees, %d coalesces, %d bytes in / %d out\n",
		st.AllocCalls, st.ExactFits, st.FreeCalls, st.Coalesces,
		st.BytesAllocated, st.BytesFreed)
	return nil
}
