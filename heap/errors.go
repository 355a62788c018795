package heap

import "errors"

var (
	// ErrNoSpace indicates that no free block was large enough and the arena
	// could not supply more memory.
	ErrNoSpace = errors.New("heap: no space")

	// ErrBadRef indicates a ref that cannot name a live block: out of bounds,
	// misaligned, or carrying an impossible size tag.
	ErrBadRef = errors.New("heap: bad block reference")

	// ErrDoubleFree indicates a free of a block that is already free.
	ErrDoubleFree = errors.New("heap: block already free")

	// ErrBadSize indicates a negative allocation size.
	ErrBadSize = errors.New("heap: negative size")
)
