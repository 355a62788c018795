// Package heap implements a general-purpose dynamic memory allocator over a
// single growable byte arena.
//
// # Overview
//
// The allocator uses a segregated-fit explicit free-list design with boundary
// tags. Every block carries an identical (size, state) tag word at each end,
// which makes both neighbors reachable in O(1); free blocks additionally keep
// their free-list links inside their own payload bytes, as arena offsets
// rather than Go pointers. All bookkeeping therefore lives inside the arena
// itself, except for the per-class list heads and tails held by the Heap.
//
// # Structure
//
//	[prologue][block][block]...[block][epilogue]
//
// The prologue is a minimal always-allocated block and the epilogue an
// always-allocated zero-size header; together they remove every bounds check
// from neighbor probes. Between them, blocks tile the arena exactly, and no
// two free blocks are ever adjacent (freeing coalesces eagerly in both
// directions).
//
// # Operations
//
//	h, _ := heap.New(arena.NewSlice(0, 0), nil)
//	ref, _ := h.Alloc(100)
//	p, _ := h.Payload(ref)
//	copy(p, data)
//	ref, _ = h.Realloc(ref, 240)
//	_ = h.Free(ref)
//
// Alloc searches the free lists first-fit from the request's size class
// upward and grows the arena, by exactly the block size needed, only when no
// fit exists. Realloc prefers resizing in place: shrink by splitting, or
// absorb a free neighbor, before falling back to allocate-copy-free.
//
// # Size classes
//
// List k (k >= 1) holds free blocks whose total size falls in (2^(k-1), 2^k]
// bytes; list 0 is the unbounded catch-all for larger blocks. Within a list,
// search is pure first-fit in insertion order, which across size-bounded
// classes approximates best-fit without a full scan.
//
// # Thread safety
//
// A Heap is not safe for concurrent use. One logical caller drives a Heap at
// a time; wrap it in a mutex if needed. Independent Heap instances share
// nothing and may be used concurrently with each other.
//
// # Related packages
//
//   - github.com/joshuapare/heapkit/heap/arena: the growth primitive
//   - github.com/joshuapare/heapkit/internal/format: block layout rules
package heap
