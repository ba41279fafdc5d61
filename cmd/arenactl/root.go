package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/arenakit/arena"
	"github.com/joshuapare/arenakit/arena/fit"
)

var (
	// Global flags
	capacity uint32
	policy   string
	slots    int
	jsonOut  bool
)

var rootCmd = &cobra.Command{
	Use:   "arenactl",
	Short: "Exercise and inspect a fixed-capacity arena allocator",
	Long: `arenactl drives the arenakit allocator from the command line: it runs
alloc/free trace scripts against an arena with a chosen placement policy
(first, next, best, or worst fit) and dumps the resulting block list.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().
		Uint32Var(&capacity, "capacity", 4096, "Arena capacity in bytes (rounded up to 4)")
	rootCmd.PersistentFlags().
		StringVar(&policy, "policy", "first", "Placement policy: first, next, best, worst")
	rootCmd.PersistentFlags().
		IntVar(&slots, "slots", arena.DefaultSlotCapacity, "Block-metadata slot capacity")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newArena builds an arena from the global flags.
func newArena() (*arena.Arena, error) {
	p, err := fit.ParsePolicy(policy)
	if err != nil {
		return nil, err
	}
	return arena.New(capacity, p, arena.WithSlotCapacity(slots))
}
