package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joshuapare/heapkit/heap"
	"github.com/joshuapare/heapkit/heap/arena"
)

var statsConfig string

func init() {
	cmd := newStatsCmd()
	cmd.Flags().StringVar(&statsConfig, "config", "balanced", "Free-list configuration (compact, balanced, wide)")
	rootCmd.AddCommand(cmd)
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <trace>",
		Short: "Show allocator statistics for a trace",
		Long: `The stats command replays a trace and reports the allocator's internal
counters: operation mix, free-list reuse rate, arena growth, splits,
coalesces, and how reallocations were resolved.

Example:
  heapctl stats traces/binary.rep
  heapctl stats traces/binary.rep --config compact --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(args)
		},
	}
}

type traceStats struct {
	Trace  string
	Config string
	Ops    int
	Arena  int // final arena size in bytes
	Live   int // allocations still live at end of trace

	heap.Stats
}

func runStats(args []string) error {
	cfg, err := configByName(statsConfig)
	if err != nil {
		return err
	}
	ops, err := readTrace(args[0])
	if err != nil {
		return err
	}

	a := arena.NewSlice(0, 0)
	p, err := newPlayer(cfg, a)
	if err != nil {
		return err
	}
	defer p.close()
	if err := p.run(ops, false); err != nil {
		return err
	}

	st := traceStats{
		Trace:  args[0],
		Config: cfg.Name,
		Ops:    len(ops),
		Arena:  a.Size(),
		Live:   len(p.refs),
		Stats:  p.h.Stats(),
	}
	if jsonOut {
		return printJSON(st)
	}
	if quiet {
		return nil
	}

	pr := message.NewPrinter(language.English)
	pr.Fprintf(os.Stdout, "\nTrace Statistics: %s (config %s)\n\n", st.Trace, st.Config)

	pr.Fprintf(os.Stdout, "Operations:\n")
	pr.Fprintf(os.Stdout, "  Trace ops: %d\n", st.Ops)
	pr.Fprintf(os.Stdout, "  Alloc: %d  Free: %d  Realloc: %d\n", st.AllocCalls, st.FreeCalls, st.ReallocCalls)
	pr.Fprintf(os.Stdout, "  Live at end: %d\n\n", st.Live)

	pr.Fprintf(os.Stdout, "Memory:\n")
	pr.Fprintf(os.Stdout, "  Arena size: %d bytes\n", st.Arena)
	pr.Fprintf(os.Stdout, "  Grown: %d bytes over %d calls\n", st.GrowBytes, st.GrowCalls)
	pr.Fprintf(os.Stdout, "  Allocated: %d bytes  Freed: %d bytes\n\n", st.BytesAllocated, st.BytesFreed)

	pr.Fprintf(os.Stdout, "Free lists:\n")
	reuse := 0.0
	if st.AllocCalls > 0 {
		reuse = float64(st.ReuseHits) * 100 / float64(st.AllocCalls)
	}
	pr.Fprintf(os.Stdout, "  Reuse hits: %d (%.1f%% of allocs)\n", st.ReuseHits, reuse)
	pr.Fprintf(os.Stdout, "  Splits: %d\n", st.Splits)
	pr.Fprintf(os.Stdout, "  Coalesces: %d left, %d right\n\n", st.CoalesceLeft, st.CoalesceRight)

	pr.Fprintf(os.Stdout, "Reallocations:\n")
	pr.Fprintf(os.Stdout, "  In place: %d  Moved: %d\n", st.ReallocInPlace, st.ReallocMoved)
	return nil
}
