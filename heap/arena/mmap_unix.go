//go:build unix

package arena

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Mmap is an arena backed by an anonymous memory mapping. The full capacity
// is reserved up front with PROT_NONE so the region never moves; Extend
// commits pages with mprotect as the watermark advances. Exceeding the
// reserved capacity reports ErrExhausted.
type Mmap struct {
	data      []byte // full reservation
	size      int    // bytes extended so far
	committed int    // bytes with read/write protection, page-aligned
	page      int
}

// NewMmap reserves capacity bytes of address space for the arena.
func NewMmap(capacity int) (*Mmap, error) {
	page := os.Getpagesize()
	capacity = alignUp(capacity, page)
	if capacity <= 0 {
		return nil, ErrBadSize
	}
	data, err := unix.Mmap(-1, 0, capacity, unix.PROT_NONE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, fmt.Errorf("arena: mmap reserve: %w", err)
	}
	return &Mmap{data: data, page: page}, nil
}

func (m *Mmap) Bytes() []byte {
	if m.data == nil {
		return nil
	}
	return m.data[:m.size]
}

func (m *Mmap) Size() int { return m.size }

func (m *Mmap) Extend(n int) (int, error) {
	if m.data == nil {
		return 0, ErrClosed
	}
	if n <= 0 {
		return 0, ErrBadSize
	}
	if m.size > len(m.data)-n {
		return 0, ErrExhausted
	}
	newEnd := m.size + n
	if newEnd > m.committed {
		commitEnd := alignUp(newEnd, m.page)
		if commitEnd > len(m.data) {
			commitEnd = len(m.data)
		}
		if err := unix.Mprotect(m.data[m.committed:commitEnd], unix.PROT_READ|unix.PROT_WRITE); err != nil {
			return 0, fmt.Errorf("arena: mprotect commit: %w", err)
		}
		m.committed = commitEnd
	}
	off := m.size
	m.size = newEnd
	return off, nil
}

func (m *Mmap) Close() error {
	if m.data == nil {
		return nil
	}
	err := unix.Munmap(m.data)
	m.data = nil
	m.size = 0
	m.committed = 0
	return err
}

func alignUp(n, unit int) int {
	rem := n % unit
	if rem == 0 {
		return n
	}
	return n + unit - rem
}
