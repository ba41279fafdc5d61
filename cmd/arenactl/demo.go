package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/joshuapare/arenakit/arena"
	"github.com/joshuapare/arenakit/arena/fit"
	"github.com/joshuapare/arenakit/arena/printer"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Show how each placement policy picks among holes of 200/240/120/80 bytes",
	Long: `Demo fragments an arena into free holes of 200, 240, 120, and 80 bytes
(separated by occupied blocks), then asks each placement policy for an
80-byte allocation and shows which hole it carved from.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runDemo(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(w io.Writer) error {
	for _, p := range []fit.Policy{fit.FirstFit, fit.NextFit, fit.BestFit, fit.WorstFit} {
		a, holes, err := buildDemoArena(p)
		if err != nil {
			return err
		}

		addr, err := a.Alloc(80)
		if err != nil {
			a.Destroy() //nolint:errcheck
			return err
		}
		which := -1
		for i, h := range holes {
			if h == addr {
				which = i
			}
		}
		fmt.Fprintf(w, "%s-fit: alloc 80 -> address %d (hole %d)\n", p, addr, which)

		if err := printer.Print(w, a, printer.Options{Format: printer.FormatText, ShowSummary: false}); err != nil {
			a.Destroy() //nolint:errcheck
			return err
		}
		fmt.Fprintln(w)

		if err := a.Destroy(); err != nil {
			return err
		}
	}
	return nil
}

// buildDemoArena carves holes of 200/240/120/80 bytes separated by 8-byte
// occupied blocks, and returns the hole addresses in order.
func buildDemoArena(p fit.Policy) (*arena.Arena, []uint32, error) {
	sizes := []uint32{200, 240, 120, 80}
	var capacity uint32
	for _, s := range sizes {
		capacity += 8 + s
	}

	a, err := arena.New(capacity, p)
	if err != nil {
		return nil, nil, err
	}

	holes := make([]uint32, 0, len(sizes))
	for _, s := range sizes {
		if _, err := a.Alloc(8); err != nil {
			a.Destroy() //nolint:errcheck
			return nil, nil, err
		}
		addr, err := a.Alloc(s)
		if err != nil {
			a.Destroy() //nolint:errcheck
			return nil, nil, err
		}
		holes = append(holes, addr)
	}
	for _, addr := range holes {
		if err := a.Free(addr); err != nil {
			a.Destroy() //nolint:errcheck
			return nil, nil, err
		}
	}
	return a, holes, nil
}
