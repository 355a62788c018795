package arena

// Slice is a slice-backed arena. It is the default backend: growth appends
// zeroed bytes to an ordinary Go slice. An optional limit caps the total size,
// which tests use to force exhaustion.
//
// Note that the backing array may be reallocated on growth; only offsets are
// stable across Extend, never slices obtained from Bytes.
type Slice struct {
	data   []byte
	limit  int
	closed bool
}

// NewSlice creates a slice arena with the given initial capacity hint.
// limit caps the total arena size in bytes; 0 means unlimited.
func NewSlice(capacity, limit int) *Slice {
	if capacity < 0 {
		capacity = 0
	}
	return &Slice{
		data:  make([]byte, 0, capacity),
		limit: limit,
	}
}

func (s *Slice) Bytes() []byte { return s.data }

func (s *Slice) Size() int { return len(s.data) }

func (s *Slice) Extend(n int) (int, error) {
	if s.closed {
		return 0, ErrClosed
	}
	if n <= 0 {
		return 0, ErrBadSize
	}
	if s.limit > 0 && len(s.data)+n > s.limit {
		return 0, ErrExhausted
	}
	off := len(s.data)
	s.data = append(s.data, make([]byte, n)...)
	return off, nil
}

func (s *Slice) Close() error {
	s.data = nil
	s.closed = true
	return nil
}
