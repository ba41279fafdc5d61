// Package printer renders block-list snapshots for diagnostics and test
// harnesses. The output is a faithful read of current arena state and
// carries no contract beyond that.
package printer

import (
	"io"

	"github.com/joshuapare/arenakit/arena"
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs a human-readable table.
	FormatText Format = "text"

	// FormatJSON outputs JSON.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// ShowSummary appends record counts, free/used totals, and lifetime
	// stats after the block table (text format only).
	// Default: true
	ShowSummary bool
}

// DefaultOptions returns the options Print uses when given the zero value.
func DefaultOptions() Options {
	return Options{
		Format:      FormatText,
		ShowSummary: true,
	}
}

// Print writes the arena's current block list to w in the requested format.
func Print(w io.Writer, a *arena.Arena, opts Options) error {
	if opts.Format == "" {
		opts = DefaultOptions()
	}

	blocks, err := a.Blocks()
	if err != nil {
		return err
	}

	switch opts.Format {
	case FormatJSON:
		return printJSON(w, a, blocks)
	default:
		return printText(w, a, blocks, opts)
	}
}
