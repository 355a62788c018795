package heap

import (
	"fmt"

	"github.com/joshuapare/heapkit/internal/format"
)

// grow extends the arena by exactly size bytes and forges a free block out
// of the new region. The old epilogue header becomes the new block's header,
// so the block starts one word before the extension; a fresh epilogue is
// written at the new end. The block is coalesced with a free left neighbor,
// which lets repeated small growths accumulate. size must be aligned and at
// least MinBlockSize.
func (h *Heap) grow(size int) (Ref, error) {
	off, err := h.a.Extend(size)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNoSpace, err)
	}

	b := h.a.Bytes()
	ref := off // payload starts where the old epilogue header sat, plus one word
	format.WriteTag(b, format.HeaderOff(ref), size, false)
	format.WriteTag(b, format.FooterOff(ref, size), size, false)
	format.WriteTag(b, format.NextHeaderOff(ref, size), 0, true)

	h.stats.GrowCalls++
	h.stats.GrowBytes += int64(size)
	return h.coalesce(ref), nil
}
