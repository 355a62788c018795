package arena

import "errors"

var (
	// ErrExhausted indicates the arena cannot supply the requested bytes.
	ErrExhausted = errors.New("arena: exhausted")

	// ErrClosed indicates an operation on a closed arena.
	ErrClosed = errors.New("arena: closed")

	// ErrBadSize indicates a non-positive extension request.
	ErrBadSize = errors.New("arena: extension size must be positive")
)
