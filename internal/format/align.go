package format

import "github.com/joshuapare/heapkit/internal/buf"

// Align8 returns n aligned up to the next 8-byte boundary.
//
// Example:
//
//	Align8(1)  = 8
//	Align8(8)  = 8
//	Align8(9)  = 16
func Align8(n int) int {
	return (n + AlignmentMask) & ^AlignmentMask
}

// BlockSizeFor returns the total block size required to satisfy a payload
// request of n bytes: the request padded by Overhead, aligned up, and clamped
// to MinBlockSize. Returns ok = false when the computation would overflow.
func BlockSizeFor(n int) (int, bool) {
	padded, ok := buf.AddOverflowSafe(n, Overhead+AlignmentMask)
	if !ok {
		return 0, false
	}
	size := padded & ^AlignmentMask
	if size < MinBlockSize {
		size = MinBlockSize
	}
	return size, true
}
