package main

import (
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joshuapare/heapkit/heap"
	"github.com/joshuapare/heapkit/heap/arena"
)

func init() {
	rootCmd.AddCommand(newBenchCmd())
}

func newBenchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bench <trace>...",
		Short: "Benchmark free-list configurations against traces",
		Long: `The bench command replays every trace once per free-list configuration
and compares throughput and memory efficiency. Each trace/config pair runs on
its own heap, in parallel across CPUs.

Example:
  heapctl bench traces/*.rep`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(args)
		},
	}
}

type benchResult struct {
	Trace     string
	Config    string
	Ops       int
	Duration  time.Duration
	OpsPerSec int64
	Arena     int // final arena size in bytes
}

func runBench(args []string) error {
	configs := []*heap.Config{&heap.ConfigCompact, &heap.ConfigBalanced, &heap.ConfigWide}

	type job struct {
		trace string
		ops   []traceOp
		cfg   *heap.Config
	}
	var jobs []job
	for _, path := range args {
		ops, err := readTrace(path)
		if err != nil {
			return err
		}
		for _, cfg := range configs {
			jobs = append(jobs, job{trace: path, ops: ops, cfg: cfg})
		}
	}

	results := make([]benchResult, len(jobs))
	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, j := range jobs {
		i, j := i, j
		g.Go(func() error {
			a := arena.NewSlice(0, 0)
			p, err := newPlayer(j.cfg, a)
			if err != nil {
				return err
			}
			defer p.close()

			start := time.Now()
			if err := p.run(j.ops, false); err != nil {
				return err
			}
			elapsed := time.Since(start)

			res := benchResult{
				Trace:    j.trace,
				Config:   j.cfg.Name,
				Ops:      len(j.ops),
				Duration: elapsed,
				Arena:    a.Size(),
			}
			if elapsed > 0 {
				res.OpsPerSec = int64(float64(len(j.ops)) / elapsed.Seconds())
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if jsonOut {
		return printJSON(results)
	}
	if quiet {
		return nil
	}

	pr := message.NewPrinter(language.English)
	pr.Fprintf(os.Stdout, "%-32s %-10s %-10s %-12s %-12s %s\n",
		"TRACE", "CONFIG", "OPS", "TIME", "OPS/SEC", "ARENA")
	for _, res := range results {
		pr.Fprintf(os.Stdout, "%-32s %-10s %-10d %-12s %-12d %d\n",
			res.Trace, res.Config, res.Ops, res.Duration.Round(time.Microsecond),
			res.OpsPerSec, res.Arena)
	}
	return nil
}
