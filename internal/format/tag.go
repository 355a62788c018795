package format

import "github.com/joshuapare/heapkit/internal/buf"

// Boundary tag encoding. A tag packs a block's total size and its state into
// one word:
//
//	bits 3..63  total block size (always a multiple of Alignment)
//	bit  0      1 = allocated, 0 = free
//	bits 1..2   reserved, always zero
//
// The same word is written at both ends of every block (header and footer),
// and the two must stay bit-identical at all times.

// PackTag encodes size and state into a tag word.
func PackTag(size int, allocated bool) uint64 {
	w := uint64(size)
	if allocated {
		w |= allocatedBit
	}
	return w
}

// TagSize extracts the block size from a tag word.
func TagSize(w uint64) int {
	return int(w & ^uint64(stateMask))
}

// TagAllocated reports whether a tag word marks the block allocated.
func TagAllocated(w uint64) bool {
	return w&allocatedBit != 0
}

// WriteTag writes a freshly packed tag word to b at off.
func WriteTag(b []byte, off, size int, allocated bool) {
	buf.PutU64LE(b, off, PackTag(size, allocated))
}

// ReadSize reads the block size from the tag word at off.
func ReadSize(b []byte, off int) int {
	return TagSize(buf.U64LE(b, off))
}

// ReadAllocated reads the block state from the tag word at off.
func ReadAllocated(b []byte, off int) bool {
	return TagAllocated(buf.U64LE(b, off))
}

// RepackSize rewrites the tag at off with a new size, preserving its state.
func RepackSize(b []byte, off, size int) {
	buf.PutU64LE(b, off, PackTag(size, ReadAllocated(b, off)))
}

// RepackState rewrites the tag at off with a new state, preserving its size.
func RepackState(b []byte, off int, allocated bool) {
	buf.PutU64LE(b, off, PackTag(ReadSize(b, off), allocated))
}
