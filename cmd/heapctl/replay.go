package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/heapkit/heap"
	"github.com/joshuapare/heapkit/heap/arena"
)

var (
	replayConfig   string
	replayParanoid bool
	replayMmap     bool
	replayReserve  int
)

func init() {
	cmd := newReplayCmd()
	cmd.Flags().StringVar(&replayConfig, "config", "balanced", "Free-list configuration (compact, balanced, wide)")
	cmd.Flags().BoolVar(&replayParanoid, "paranoid", false, "Verify heap invariants after every operation")
	cmd.Flags().BoolVar(&replayMmap, "mmap", false, "Back the heap with reserved virtual memory instead of a Go slice")
	cmd.Flags().IntVar(&replayReserve, "reserve", 1<<30, "Address space to reserve with --mmap, in bytes")
	rootCmd.AddCommand(cmd)
}

func newReplayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replay <trace>...",
		Short: "Replay allocation traces with payload verification",
		Long: `The replay command runs each trace against a fresh heap, filling every
allocation with a per-id byte pattern and verifying it before each free and
realloc. The heap's structural invariants are checked when the trace ends,
or after every operation with --paranoid.

Example:
  heapctl replay traces/binary.rep
  heapctl replay --paranoid --config wide traces/*.rep
  heapctl replay --mmap traces/coalescing.rep.gz`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(args)
		},
	}
}

type replayResult struct {
	Trace  string
	Ops    int
	Leaked int    // allocations still live at end of trace
	Err    string `json:",omitempty"`
}

func runReplay(args []string) error {
	cfg, err := configByName(replayConfig)
	if err != nil {
		return err
	}

	var results []replayResult
	failures := 0
	for _, path := range args {
		res := replayResult{Trace: path}
		ops, err := readTrace(path)
		if err != nil {
			return err
		}
		res.Ops = len(ops)
		printVerbose("Replaying %s: %d ops, config %s\n", path, len(ops), cfg.Name)

		if err := replayOne(cfg, ops, &res); err != nil {
			res.Err = err.Error()
			failures++
		}
		results = append(results, res)
	}

	if jsonOut {
		if err := printJSON(results); err != nil {
			return err
		}
	} else {
		for _, res := range results {
			if res.Err != "" {
				printInfo("FAIL %s: %s\n", res.Trace, res.Err)
				continue
			}
			printInfo("ok   %s: %d ops, %d live at end\n", res.Trace, res.Ops, res.Leaked)
		}
	}
	if failures > 0 {
		return fmt.Errorf("%d of %d traces failed", failures, len(args))
	}
	return nil
}

func replayOne(cfg *heap.Config, ops []traceOp, res *replayResult) error {
	a, err := newArena()
	if err != nil {
		return err
	}
	p, err := newPlayer(cfg, a)
	if err != nil {
		return err
	}
	defer p.close()

	if err := p.run(ops, replayParanoid); err != nil {
		return err
	}
	res.Leaked = len(p.refs)
	return nil
}

// newArena builds the backing store selected by the --mmap flag.
func newArena() (arena.Arena, error) {
	if replayMmap {
		return arena.NewMmap(replayReserve)
	}
	return arena.NewSlice(0, 0), nil
}
