package heap

import "github.com/joshuapare/heapkit/internal/format"

// classify maps a total block size to its free-list index. Lists 1..Classes-1
// cover (2^(k-1), 2^k]; everything larger lands in the class 0 catch-all.
func (h *Heap) classify(size int) int {
	limit := 2
	for k := 1; k < h.cfg.Classes; k++ {
		if size <= limit {
			return k
		}
		limit <<= 1
	}
	return 0
}

// listInsert appends a free block to the tail of its class list. Tail
// insertion keeps first-fit scanning in rough address-and-age order.
func (h *Heap) listInsert(ref Ref) {
	b := h.a.Bytes()
	k := h.classify(format.ReadSize(b, format.HeaderOff(ref)))

	tail := h.tails[k]
	format.SetPrevFree(b, ref, tail)
	format.SetNextFree(b, ref, 0)
	if tail == 0 {
		h.heads[k] = ref
	} else {
		format.SetNextFree(b, tail, ref)
	}
	h.tails[k] = ref
}

// listRemove unlinks a free block from its class list in O(1) using the
// links stored in its payload.
func (h *Heap) listRemove(ref Ref) {
	b := h.a.Bytes()
	k := h.classify(format.ReadSize(b, format.HeaderOff(ref)))

	prev := format.PrevFree(b, ref)
	next := format.NextFree(b, ref)
	if prev == 0 {
		h.heads[k] = next
	} else {
		format.SetNextFree(b, prev, next)
	}
	if next == 0 {
		h.tails[k] = prev
	} else {
		format.SetPrevFree(b, next, prev)
	}
}
