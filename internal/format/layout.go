package format

import "github.com/joshuapare/heapkit/internal/buf"

// Offset arithmetic relative to a payload ref. A ref is the arena offset of
// the first payload byte, immediately after the header word:
//
//	offset:  ref-16        ref-8     ref          ref+size-16   ref+size-8
//	         [prev footer] [header]  [payload...] [footer]      [next header]
//
// All offsets derive from the ref and the block's own size field, which is
// what allows O(1) neighbor lookups with no external bookkeeping.

// HeaderOff returns the offset of the header tag for the block at ref.
func HeaderOff(ref int) int {
	return ref - WordSize
}

// FooterOff returns the offset of the footer tag for a block at ref of the
// given total size.
func FooterOff(ref, size int) int {
	return ref + size - Overhead
}

// PrevFooterOff returns the offset of the left neighbor's footer tag.
func PrevFooterOff(ref int) int {
	return ref - Overhead
}

// NextHeaderOff returns the offset of the right neighbor's header tag.
func NextHeaderOff(ref, size int) int {
	return ref + size - WordSize
}

// PayloadRef returns the payload ref for a block whose header sits at off.
func PayloadRef(off int) int {
	return off + WordSize
}

// Free-list link words. When a block is free, its first two payload words are
// repurposed as the prev/next links of its free list, stored as payload refs.
// A zero link means "none"; ref 0 can never name a real block because the
// prologue occupies the front of the arena. The words are meaningless while
// the block is allocated.

// PrevFree reads the previous-block link of the free block at ref.
func PrevFree(b []byte, ref int) int {
	return int(buf.U64LE(b, ref))
}

// NextFree reads the next-block link of the free block at ref.
func NextFree(b []byte, ref int) int {
	return int(buf.U64LE(b, ref+WordSize))
}

// SetPrevFree writes the previous-block link of the free block at ref.
func SetPrevFree(b []byte, ref, target int) {
	buf.PutU64LE(b, ref, uint64(target))
}

// SetNextFree writes the next-block link of the free block at ref.
func SetNextFree(b []byte, ref, target int) {
	buf.PutU64LE(b, ref+WordSize, uint64(target))
}
