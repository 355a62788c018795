package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joshuapare/heapkit/heap/arena"
)

var (
	dumpConfig   string
	dumpFreeOnly bool
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().StringVar(&dumpConfig, "config", "balanced", "Free-list configuration (compact, balanced, wide)")
	cmd.Flags().BoolVar(&dumpFreeOnly, "free", false, "Show only free blocks")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <trace>",
		Short: "Dump the final block map after replaying a trace",
		Long: `The dump command replays a trace and prints every block left in the
heap in address order, with its offset, total size, and state. Useful for
eyeballing fragmentation patterns a trace leaves behind.

Example:
  heapctl dump traces/coalescing.rep
  heapctl dump traces/coalescing.rep --free --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
}

func runDump(args []string) error {
	cfg, err := configByName(dumpConfig)
	if err != nil {
		return err
	}
	ops, err := readTrace(args[0])
	if err != nil {
		return err
	}

	p, err := newPlayer(cfg, arena.NewSlice(0, 0))
	if err != nil {
		return err
	}
	defer p.close()
	if err := p.run(ops, false); err != nil {
		return err
	}

	blocks := p.h.Blocks()
	if dumpFreeOnly {
		n := 0
		for _, blk := range blocks {
			if blk.Free {
				blocks[n] = blk
				n++
			}
		}
		blocks = blocks[:n]
	}

	if jsonOut {
		return printJSON(blocks)
	}
	if quiet {
		return nil
	}

	pr := message.NewPrinter(language.English)
	pr.Fprintf(os.Stdout, "%-12s %-12s %s\n", "OFFSET", "SIZE", "STATE")
	freeBytes := 0
	for _, blk := range blocks {
		state := "allocated"
		if blk.Free {
			state = "free"
			freeBytes += blk.Size
		}
		pr.Fprintf(os.Stdout, "%-12d %-12d %s\n", blk.Ref, blk.Size, state)
	}
	pr.Fprintf(os.Stdout, "\n%d blocks, %d bytes free\n", len(blocks), freeBytes)
	return nil
}
