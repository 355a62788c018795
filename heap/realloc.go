package heap

import "github.com/joshuapare/heapkit/internal/format"

// Realloc resizes the block at ref to hold at least n usable bytes,
// preserving payload contents up to the smaller of the two sizes. It
// resolves the cheapest case that applies, in order: a nil ref degenerates
// to Alloc, a zero size to Free; shrinking splits in place; growing absorbs
// a free right neighbor, then a free left neighbor (sliding the payload
// down), and only then moves the block. The returned ref replaces the old
// one. On error the original block is left intact, except when the final
// Free of a moved block fails.
func (h *Heap) Realloc(ref Ref, n int) (Ref, error) {
	if ref == NilRef {
		return h.Alloc(n)
	}
	if n < 0 {
		return NilRef, ErrBadSize
	}
	if n == 0 {
		if err := h.Free(ref); err != nil {
			return NilRef, err
		}
		return NilRef, nil
	}

	old, allocated, err := h.lookup(ref)
	if err != nil {
		return NilRef, err
	}
	if !allocated {
		return NilRef, ErrBadRef
	}
	newSize, ok := format.BlockSizeFor(n)
	if !ok {
		return NilRef, ErrNoSpace
	}
	h.stats.ReallocCalls++

	b := h.a.Bytes()

	// Shrink, or slack already covers the request: trim the tail if it can
	// stand alone, keep the block either way.
	if newSize <= old {
		h.split(ref, newSize)
		h.stats.ReallocInPlace++
		return ref, nil
	}

	// Absorb a free right neighbor.
	if !format.ReadAllocated(b, format.NextHeaderOff(ref, old)) {
		combined := old + format.ReadSize(b, format.NextHeaderOff(ref, old))
		if combined >= newSize {
			h.listRemove(ref + old)
			format.WriteTag(b, format.HeaderOff(ref), combined, true)
			format.WriteTag(b, format.FooterOff(ref, combined), combined, true)
			h.split(ref, newSize)
			h.stats.ReallocInPlace++
			return ref, nil
		}
	}

	// Absorb a free left neighbor. The regions overlap when the left block
	// is smaller than the payload, so the copy must run front to back,
	// which is what copy does for a forward move.
	if !format.ReadAllocated(b, format.PrevFooterOff(ref)) {
		leftSize := format.ReadSize(b, format.PrevFooterOff(ref))
		combined := leftSize + old
		if combined >= newSize {
			left := ref - leftSize
			h.listRemove(left)
			format.WriteTag(b, format.HeaderOff(left), combined, true)
			format.WriteTag(b, format.FooterOff(left, combined), combined, true)
			copy(b[left:left+old-format.Overhead], b[ref:ref+old-format.Overhead])
			h.split(left, newSize)
			h.stats.ReallocMoved++
			return left, nil
		}
	}

	// Move: allocate fresh, copy, release the original.
	newRef, err := h.Alloc(n)
	if err != nil {
		return NilRef, err
	}
	b = h.a.Bytes() // Alloc may have grown the arena
	copy(b[newRef:newRef+old-format.Overhead], b[ref:ref+old-format.Overhead])
	if err := h.Free(ref); err != nil {
		return NilRef, err
	}
	h.stats.ReallocMoved++
	return newRef, nil
}
