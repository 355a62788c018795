package heap

// Config controls the shape of the segregated free-list directory.
// Different class counts trade directory walk length against how tightly a
// first-fit hit approximates best-fit.
type Config struct {
	// Name for this configuration (for benchmarking).
	Name string

	// Classes is the number of free lists. Lists 1..Classes-1 hold blocks of
	// total size in (2^(k-1), 2^k] bytes; list 0 is the unbounded catch-all
	// for anything beyond the largest bounded class.
	Classes int
}

// Predefined configurations.
var (
	// ConfigCompact: few lists, largest bounded class 256 bytes. Cheapest
	// directory, coarser fits for mid-sized blocks.
	ConfigCompact = Config{Name: "Compact", Classes: 9}

	// ConfigBalanced: largest bounded class 4 KiB. Good default for mixed
	// workloads.
	ConfigBalanced = Config{Name: "Balanced", Classes: 13}

	// ConfigWide: largest bounded class 1 MiB, for workloads dominated by
	// large allocations.
	ConfigWide = Config{Name: "Wide", Classes: 21}

	// DefaultConfig is used when New receives a nil config.
	DefaultConfig = ConfigBalanced
)
