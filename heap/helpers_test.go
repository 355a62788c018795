package heap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/heapkit/heap/arena"
)

func newTestHeap(t *testing.T, cfg *Config) *Heap {
	t.Helper()
	h, err := New(arena.NewSlice(0, 0), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })
	return h
}

func newLimitedHeap(t *testing.T, limit int) *Heap {
	t.Helper()
	h, err := New(arena.NewSlice(0, limit), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })
	return h
}

func mustCheck(t *testing.T, h *Heap) {
	t.Helper()
	require.NoError(t, h.Check())
}

// freeBlocks filters Blocks down to the free ones.
func freeBlocks(h *Heap) []BlockInfo {
	var out []BlockInfo
	for _, blk := range h.Blocks() {
		if blk.Free {
			out = append(out, blk)
		}
	}
	return out
}
