package heap

import (
	"fmt"

	"github.com/joshuapare/heapkit/internal/buf"
	"github.com/joshuapare/heapkit/internal/format"
)

// ValidationError describes one structural violation found by Check.
type ValidationError struct {
	Type    string // violation category, e.g. "BlockChain", "FreeList"
	Message string
	Offset  int // arena offset where the violation was found
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("heap: %s at offset %d: %s", e.Type, e.Offset, e.Message)
}

// BlockInfo describes one block in arena order, sentinels excluded.
type BlockInfo struct {
	Ref  Ref
	Size int // total size including tag overhead
	Free bool
}

// Blocks returns every block between the sentinels in address order. It is a
// best-effort view for inspection and dumps; a corrupt chain truncates the
// result rather than erroring. Use Check for strict validation.
func (h *Heap) Blocks() []BlockInfo {
	b := h.a.Bytes()
	var out []BlockInfo
	pos := format.PrologueSize
	for pos+format.WordSize <= len(b) {
		size := format.ReadSize(b, pos)
		if size == 0 {
			break
		}
		if size < format.MinBlockSize || pos+size > len(b) {
			break
		}
		out = append(out, BlockInfo{
			Ref:  format.PayloadRef(pos),
			Size: size,
			Free: !format.ReadAllocated(b, pos),
		})
		pos += size
	}
	return out
}

// Check walks the entire heap and verifies its structural invariants: intact
// sentinels, blocks tiling the arena exactly with matching header and footer
// tags, no two adjacent free blocks, and a free-list directory whose
// membership matches the free blocks in the chain, with consistent back
// links, correct class placement, and accurate tails. Returns nil or the
// first violation found as a *ValidationError.
func (h *Heap) Check() error {
	b := h.a.Bytes()

	if len(b) < format.BootstrapSize {
		return &ValidationError{Type: "Arena", Offset: len(b),
			Message: fmt.Sprintf("arena smaller than bootstrap: %d bytes", len(b))}
	}
	if format.ReadSize(b, 0) != format.PrologueSize || !format.ReadAllocated(b, 0) {
		return &ValidationError{Type: "Sentinel", Offset: 0, Message: "prologue header damaged"}
	}
	if buf.U64LE(b, format.WordSize) != buf.U64LE(b, 0) {
		return &ValidationError{Type: "Sentinel", Offset: format.WordSize, Message: "prologue footer damaged"}
	}

	// Pass 1: the block chain. Collect free blocks for the directory pass;
	// the map value flips to true once a free list claims the block.
	free := make(map[int]bool)
	prevFree := false
	pos := format.PrologueSize
	for {
		if pos+format.WordSize > len(b) {
			return &ValidationError{Type: "BlockChain", Offset: pos, Message: "chain runs past arena end"}
		}
		word := buf.U64LE(b, pos)
		size := format.TagSize(word)
		allocated := format.TagAllocated(word)

		if size == 0 {
			if !allocated {
				return &ValidationError{Type: "Sentinel", Offset: pos, Message: "epilogue not marked allocated"}
			}
			if pos != len(b)-format.WordSize {
				return &ValidationError{Type: "Sentinel", Offset: pos,
					Message: fmt.Sprintf("epilogue not at arena end (%d)", len(b)-format.WordSize)}
			}
			break
		}
		if size%format.Alignment != 0 {
			return &ValidationError{Type: "BlockChain", Offset: pos,
				Message: fmt.Sprintf("misaligned block size %d", size)}
		}
		if size < format.MinBlockSize {
			return &ValidationError{Type: "BlockChain", Offset: pos,
				Message: fmt.Sprintf("undersized block: %d bytes", size)}
		}
		end := pos + size
		if end+format.WordSize > len(b) {
			return &ValidationError{Type: "BlockChain", Offset: pos,
				Message: fmt.Sprintf("block of %d bytes overruns arena", size)}
		}
		if buf.U64LE(b, end-format.WordSize) != word {
			return &ValidationError{Type: "BlockChain", Offset: pos, Message: "header and footer tags disagree"}
		}
		if !allocated {
			if prevFree {
				return &ValidationError{Type: "BlockChain", Offset: pos, Message: "adjacent free blocks not coalesced"}
			}
			free[format.PayloadRef(pos)] = false
		}
		prevFree = !allocated
		pos = end
	}

	// Pass 2: the free-list directory against the chain.
	for k := range h.heads {
		prev := 0
		for ref := h.heads[k]; ref != 0; ref = format.NextFree(b, ref) {
			claimed, isFree := free[ref]
			if !isFree {
				return &ValidationError{Type: "FreeList", Offset: ref,
					Message: fmt.Sprintf("class %d links a block that is not free", k)}
			}
			if claimed {
				return &ValidationError{Type: "FreeList", Offset: ref,
					Message: fmt.Sprintf("class %d links a block already claimed by a list", k)}
			}
			free[ref] = true
			if format.PrevFree(b, ref) != prev {
				return &ValidationError{Type: "FreeList", Offset: ref,
					Message: fmt.Sprintf("back link %d, expected %d", format.PrevFree(b, ref), prev)}
			}
			if want := h.classify(format.ReadSize(b, format.HeaderOff(ref))); want != k {
				return &ValidationError{Type: "FreeList", Offset: ref,
					Message: fmt.Sprintf("block in class %d belongs in class %d", k, want)}
			}
			prev = ref
		}
		if h.tails[k] != prev {
			return &ValidationError{Type: "FreeList", Offset: h.tails[k],
				Message: fmt.Sprintf("class %d tail is %d, list ends at %d", k, h.tails[k], prev)}
		}
	}
	for ref, claimed := range free {
		if !claimed {
			return &ValidationError{Type: "FreeList", Offset: ref, Message: "free block missing from every list"}
		}
	}
	return nil
}
