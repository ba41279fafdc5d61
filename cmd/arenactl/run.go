package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/arenakit/arena"
	"github.com/joshuapare/arenakit/arena/printer"
)

var runCmd = &cobra.Command{
	Use:   "run <trace-file>",
	Short: "Execute an alloc/free trace script against a fresh arena",
	Long: `Run reads a trace script and applies it to an arena built from the
global flags. One directive per line; blank lines and #-comments are skipped.

Directives:
  alloc <bytes>   allocate; the result is tagged #1, #2, ... in call order
  free #<tag>     free the block a previous alloc was tagged with
  dump            print the current block list
  stats           print record count and lifetime counters

Example:
  alloc 200
  alloc 100
  free #1
  dump`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		a, err := newArena()
		if err != nil {
			return err
		}
		defer a.Destroy() //nolint:errcheck

		return runTrace(cmd.OutOrStdout(), a, f)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// runTrace applies the script from r to a, writing directive results to w.
func runTrace(w io.Writer, a *arena.Arena, r io.Reader) error {
	format := printer.FormatText
	if jsonOut {
		format = printer.FormatJSON
	}

	// Tag -> address of still-live allocations.
	tags := make(map[int]uint32)
	nextTag := 1

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "alloc":
			if len(fields) != 2 {
				return fmt.Errorf("line %d: usage: alloc <bytes>", lineNo)
			}
			size, err := strconv.ParseUint(fields[1], 10, 32)
			if err != nil {
				return fmt.Errorf("line %d: bad size %q", lineNo, fields[1])
			}
			addr, err := a.Alloc(uint32(size))
			if err != nil {
				fmt.Fprintf(w, "#%d: alloc %d failed: %v\n", nextTag, size, err)
			} else {
				tags[nextTag] = addr
				fmt.Fprintf(w, "#%d: alloc %d -> %d\n", nextTag, size, addr)
			}
			nextTag++

		case "free":
			if len(fields) != 2 || !strings.HasPrefix(fields[1], "#") {
				return fmt.Errorf("line %d: usage: free #<tag>", lineNo)
			}
			tag, err := strconv.Atoi(fields[1][1:])
			if err != nil {
				return fmt.Errorf("line %d: bad tag %q", lineNo, fields[1])
			}
			addr, ok := tags[tag]
			if !ok {
				return fmt.Errorf("line %d: tag #%d names no live allocation", lineNo, tag)
			}
			if err := a.Free(addr); err != nil {
				fmt.Fprintf(w, "free #%d failed: %v\n", tag, err)
			} else {
				delete(tags, tag)
				fmt.Fprintf(w, "free #%d (addr %d)\n", tag, addr)
			}

		case "dump":
			if err := printer.Print(w, a, printer.Options{Format: format, ShowSummary: true}); err != nil {
				return err
			}

		case "stats":
			size, err := a.Size()
			if err != nil {
				return err
			}
			st := a.Stats()
			fmt.Fprintf(w, "records=%d allocs=%d frees=%d coalesces=%d\n",
				size, st.AllocCalls, st.FreeCalls, st.Coalesces)

		default:
			return fmt.Errorf("line %d: unknown directive %q", lineNo, fields[0])
		}
	}
	return sc.Err()
}
