// Package arena provides the growth primitive the allocator builds on: a
// single contiguous byte region that only ever grows, in place, at the end.
// Extend never moves previously handed-out memory, so arena offsets stay
// valid for the lifetime of the arena.
package arena

// Arena is a monotonically growable byte region.
//
// Implementations are not safe for concurrent use; the allocator drives an
// arena from a single logical caller at a time.
type Arena interface {
	// Bytes returns the current contents of the arena. The slice is only
	// valid until the next Extend call.
	Bytes() []byte

	// Extend makes n more bytes available at the end of the arena and
	// returns the offset of the first new byte. The new bytes follow all
	// previously extended memory contiguously. Returns ErrExhausted when the
	// arena cannot supply n more bytes.
	Extend(n int) (int, error)

	// Size returns the number of bytes extended so far.
	Size() int

	// Close releases the arena's resources. The arena must not be used
	// afterwards.
	Close() error
}
