package heap

import "github.com/joshuapare/heapkit/internal/format"

// split trims an allocated block at ref down to size, returning the tail as
// a free block. It only splits when the remainder can stand alone as a
// minimum-size block; otherwise the whole block stays allocated and the
// caller keeps the slack. size must be aligned and at least MinBlockSize.
func (h *Heap) split(ref Ref, size int) {
	b := h.a.Bytes()
	old := format.ReadSize(b, format.HeaderOff(ref))
	rem := old - size
	if rem < format.MinBlockSize {
		return
	}

	format.WriteTag(b, format.HeaderOff(ref), size, true)
	format.WriteTag(b, format.FooterOff(ref, size), size, true)

	tail := ref + size
	format.WriteTag(b, format.HeaderOff(tail), rem, false)
	format.WriteTag(b, format.FooterOff(tail, rem), rem, false)
	h.coalesce(tail)
	h.stats.Splits++
}
