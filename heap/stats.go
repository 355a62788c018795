package heap

// Stats holds cumulative operation counters for one Heap.
type Stats struct {
	AllocCalls   int
	FreeCalls    int
	ReallocCalls int

	// ReuseHits counts allocations served from a free list without growing
	// the arena.
	ReuseHits int

	GrowCalls int
	GrowBytes int64

	Splits        int
	CoalesceLeft  int
	CoalesceRight int

	// ReallocInPlace counts reallocations resolved at the same ref;
	// ReallocMoved counts those that relocated the payload.
	ReallocInPlace int
	ReallocMoved   int

	// BytesAllocated and BytesFreed are block sizes including tag overhead.
	BytesAllocated int64
	BytesFreed     int64
}

// Stats returns a snapshot of the allocator's counters.
func (h *Heap) Stats() Stats {
	return h.stats
}
