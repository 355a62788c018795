package heap

import "github.com/joshuapare/heapkit/internal/format"

// findBlock locates a free block of at least size bytes, scanning classes
// from the request's own class upward and checking the oversized catch-all
// last. Returns 0 when nothing fits.
func (h *Heap) findBlock(size int) Ref {
	start := h.classify(size)
	if start > 0 {
		for k := start; k < h.cfg.Classes; k++ {
			if ref := h.scanList(k, size); ref != 0 {
				return ref
			}
		}
	}
	return h.scanList(0, size)
}

// scanList walks one class list first-fit.
func (h *Heap) scanList(k, size int) Ref {
	b := h.a.Bytes()
	for ref := h.heads[k]; ref != 0; ref = format.NextFree(b, ref) {
		if format.ReadSize(b, format.HeaderOff(ref)) >= size {
			return ref
		}
	}
	return 0
}
