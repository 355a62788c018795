package heap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// lay out n same-size neighbors plus a trailing guard so the tail of the
// arena never participates in the merges under test.
func neighborRow(t *testing.T, h *Heap, n int) []Ref {
	t.Helper()
	refs := make([]Ref, n)
	for i := range refs {
		ref, err := h.Alloc(32) // 48-byte block
		require.NoError(t, err)
		refs[i] = ref
	}
	_, err := h.Alloc(16)
	require.NoError(t, err)
	return refs
}

func TestCoalesceRight(t *testing.T) {
	h := newTestHeap(t, nil)
	refs := neighborRow(t, h, 2)

	require.NoError(t, h.Free(refs[1]))
	require.NoError(t, h.Free(refs[0]))

	fb := freeBlocks(h)
	require.Len(t, fb, 1)
	require.Equal(t, refs[0], fb[0].Ref)
	require.Equal(t, 96, fb[0].Size)
	require.Equal(t, 1, h.Stats().CoalesceRight)
	require.Zero(t, h.Stats().CoalesceLeft)
	mustCheck(t, h)
}

func TestCoalesceLeft(t *testing.T) {
	h := newTestHeap(t, nil)
	refs := neighborRow(t, h, 2)

	require.NoError(t, h.Free(refs[0]))
	require.NoError(t, h.Free(refs[1]))

	fb := freeBlocks(h)
	require.Len(t, fb, 1)
	require.Equal(t, refs[0], fb[0].Ref, "merged block adopts the left ref")
	require.Equal(t, 96, fb[0].Size)
	require.Equal(t, 1, h.Stats().CoalesceLeft)
	require.Zero(t, h.Stats().CoalesceRight)
	mustCheck(t, h)
}

func TestCoalesceBothSides(t *testing.T) {
	h := newTestHeap(t, nil)
	refs := neighborRow(t, h, 3)

	require.NoError(t, h.Free(refs[0]))
	require.NoError(t, h.Free(refs[2]))
	mustCheck(t, h) // two islands, legal

	require.NoError(t, h.Free(refs[1]))
	fb := freeBlocks(h)
	require.Len(t, fb, 1)
	require.Equal(t, refs[0], fb[0].Ref)
	require.Equal(t, 144, fb[0].Size)
	require.Equal(t, 1, h.Stats().CoalesceLeft)
	require.Equal(t, 1, h.Stats().CoalesceRight)
	mustCheck(t, h)
}

func TestNoCoalesceAcrossAllocatedNeighbors(t *testing.T) {
	h := newTestHeap(t, nil)
	refs := neighborRow(t, h, 3)

	require.NoError(t, h.Free(refs[0]))
	require.NoError(t, h.Free(refs[2]))

	fb := freeBlocks(h)
	require.Len(t, fb, 2)
	require.Equal(t, 48, fb[0].Size)
	require.Equal(t, 48, fb[1].Size)
	mustCheck(t, h)
}
