package heap

import "github.com/joshuapare/heapkit/internal/format"

// coalesce merges the free block at ref with free neighbors on either side,
// inserts the result into its class list, and returns its ref. The block
// must be tagged free and not yet linked. Left merge first, so a right merge
// then extends the already-widened block.
func (h *Heap) coalesce(ref Ref) Ref {
	b := h.a.Bytes()
	size := format.ReadSize(b, format.HeaderOff(ref))

	if !format.ReadAllocated(b, format.PrevFooterOff(ref)) {
		leftSize := format.ReadSize(b, format.PrevFooterOff(ref))
		left := ref - leftSize
		h.listRemove(left)
		size += leftSize
		ref = left
		format.RepackSize(b, format.HeaderOff(ref), size)
		format.RepackSize(b, format.FooterOff(ref, size), size)
		h.stats.CoalesceLeft++
	}

	if !format.ReadAllocated(b, format.NextHeaderOff(ref, size)) {
		right := ref + size
		h.listRemove(right)
		size += format.ReadSize(b, format.HeaderOff(right))
		format.RepackSize(b, format.HeaderOff(ref), size)
		format.RepackSize(b, format.FooterOff(ref, size), size)
		h.stats.CoalesceRight++
	}

	h.listInsert(ref)
	return ref
}
