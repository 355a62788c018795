//go:build !unix

package arena

// NewMmap falls back to a capacity-limited slice arena on platforms without
// the unix mmap surface. Offsets remain stable; only the backing array may
// move, which the Arena contract already allows for slice arenas.
func NewMmap(capacity int) (*Slice, error) {
	if capacity <= 0 {
		return nil, ErrBadSize
	}
	return NewSlice(capacity, capacity), nil
}
