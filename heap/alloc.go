package heap

import "github.com/joshuapare/heapkit/internal/format"

// Alloc reserves a block with at least n usable bytes and returns its ref.
// A zero-size request succeeds with NilRef and reserves nothing. The free
// lists are searched first; the arena grows only when nothing fits.
func (h *Heap) Alloc(n int) (Ref, error) {
	if n < 0 {
		return NilRef, ErrBadSize
	}
	if n == 0 {
		return NilRef, nil
	}
	size, ok := format.BlockSizeFor(n)
	if !ok {
		return NilRef, ErrNoSpace
	}
	h.stats.AllocCalls++

	ref := h.findBlock(size)
	if ref != 0 {
		h.stats.ReuseHits++
	} else {
		var err error
		ref, err = h.grow(size)
		if err != nil {
			return NilRef, err
		}
	}

	h.listRemove(ref)
	b := h.a.Bytes()
	full := format.ReadSize(b, format.HeaderOff(ref))
	format.RepackState(b, format.HeaderOff(ref), true)
	format.RepackState(b, format.FooterOff(ref, full), true)
	h.split(ref, size)

	h.stats.BytesAllocated += int64(size)
	return ref, nil
}

// Free releases an allocated block, merging it with free neighbors.
// Freeing NilRef is a no-op. A ref that does not name a live allocated
// block yields ErrBadRef or ErrDoubleFree and changes nothing.
func (h *Heap) Free(ref Ref) error {
	if ref == NilRef {
		return nil
	}
	size, allocated, err := h.lookup(ref)
	if err != nil {
		return err
	}
	if !allocated {
		return ErrDoubleFree
	}
	h.stats.FreeCalls++
	h.stats.BytesFreed += int64(size)

	b := h.a.Bytes()
	format.RepackState(b, format.HeaderOff(ref), false)
	format.RepackState(b, format.FooterOff(ref, size), false)
	h.coalesce(ref)
	return nil
}
