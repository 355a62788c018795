package heap

import (
	"errors"
	"fmt"

	"github.com/joshuapare/heapkit/heap/arena"
	"github.com/joshuapare/heapkit/internal/format"
)

// Ref identifies an allocated block by the arena offset of its payload.
// Refs stay valid across arena growth; byte slices returned by Payload do
// not.
type Ref = int

// NilRef is the zero ref. No real block can live at offset 0, which the
// prologue sentinel occupies.
const NilRef Ref = 0

// Heap is a segregated-fit allocator over an arena. It is not safe for
// concurrent use.
type Heap struct {
	a   arena.Arena
	cfg Config

	// heads[k] and tails[k] are the payload offsets of the first and last
	// free block in class k, or 0 when the list is empty.
	heads []int
	tails []int

	stats Stats
}

// New initializes an allocator over a fresh arena. The arena must be empty:
// New lays down the prologue and epilogue sentinels that bound the block
// chain. A nil cfg selects DefaultConfig.
func New(a arena.Arena, cfg *Config) (*Heap, error) {
	if a == nil {
		return nil, errors.New("heap: nil arena")
	}
	if cfg == nil {
		cfg = &DefaultConfig
	}
	if cfg.Classes < 2 {
		return nil, fmt.Errorf("heap: config %q needs at least 2 size classes", cfg.Name)
	}
	if a.Size() != 0 {
		return nil, errors.New("heap: arena already in use")
	}
	if _, err := a.Extend(format.BootstrapSize); err != nil {
		return nil, fmt.Errorf("heap: bootstrap: %w", err)
	}

	b := a.Bytes()
	format.WriteTag(b, 0, format.PrologueSize, true)
	format.WriteTag(b, format.WordSize, format.PrologueSize, true)
	format.WriteTag(b, format.PrologueSize, 0, true)

	return &Heap{
		a:     a,
		cfg:   *cfg,
		heads: make([]int, cfg.Classes),
		tails: make([]int, cfg.Classes),
	}, nil
}

// Payload returns the usable bytes of an allocated block. The slice aliases
// the arena and is invalidated by any operation that grows it; re-fetch
// after Alloc, Realloc, or replayed growth.
func (h *Heap) Payload(ref Ref) ([]byte, error) {
	size, allocated, err := h.lookup(ref)
	if err != nil {
		return nil, err
	}
	if !allocated {
		return nil, ErrBadRef
	}
	b := h.a.Bytes()
	return b[ref : ref+size-format.Overhead], nil
}

// Size returns the usable payload capacity of an allocated block, which may
// exceed the size originally requested.
func (h *Heap) Size(ref Ref) (int, error) {
	size, allocated, err := h.lookup(ref)
	if err != nil {
		return 0, err
	}
	if !allocated {
		return 0, ErrBadRef
	}
	return size - format.Overhead, nil
}

// Close releases the underlying arena. The Heap must not be used afterwards.
func (h *Heap) Close() error {
	return h.a.Close()
}

// lookup validates that ref can plausibly name a live block and returns its
// tagged size and state. It rejects refs outside the block region,
// misaligned refs, and refs whose header carries an impossible size.
func (h *Heap) lookup(ref Ref) (int, bool, error) {
	b := h.a.Bytes()
	if ref < format.BootstrapSize || ref%format.Alignment != 0 || ref >= len(b) {
		return 0, false, ErrBadRef
	}
	off := format.HeaderOff(ref)
	size := format.ReadSize(b, off)
	if size < format.MinBlockSize || size%format.Alignment != 0 || ref+size > len(b) {
		return 0, false, ErrBadRef
	}
	return size, format.ReadAllocated(b, off), nil
}
