package main

import (
	"fmt"

	"github.com/joshuapare/heapkit/heap"
	"github.com/joshuapare/heapkit/heap/arena"
)

// player drives one Heap through a trace, shadowing every live allocation so
// payload contents can be verified before each free and realloc.
type player struct {
	h     *heap.Heap
	refs  map[int]heap.Ref
	sizes map[int]int
	fills map[int]byte
}

func newPlayer(cfg *heap.Config, a arena.Arena) (*player, error) {
	h, err := heap.New(a, cfg)
	if err != nil {
		return nil, err
	}
	return &player{
		h:     h,
		refs:  make(map[int]heap.Ref),
		sizes: make(map[int]int),
		fills: make(map[int]byte),
	}, nil
}

func (p *player) close() error {
	return p.h.Close()
}

// fillFor derives a per-id byte pattern, so neighboring blocks never share a
// fill and overwrites are caught.
func fillFor(id int) byte {
	return byte(id*151 + 3)
}

func (p *player) apply(op traceOp) error {
	switch op.Kind {
	case 'a':
		if _, ok := p.refs[op.ID]; ok {
			return fmt.Errorf("alloc of live id %d", op.ID)
		}
		ref, err := p.h.Alloc(op.Size)
		if err != nil {
			return fmt.Errorf("alloc %d bytes for id %d: %w", op.Size, op.ID, err)
		}
		p.refs[op.ID] = ref
		p.sizes[op.ID] = op.Size
		p.fills[op.ID] = fillFor(op.ID)
		return p.fill(op.ID)

	case 'r':
		if _, ok := p.refs[op.ID]; !ok {
			return fmt.Errorf("realloc of unknown id %d", op.ID)
		}
		if err := p.verify(op.ID); err != nil {
			return err
		}
		ref, err := p.h.Realloc(p.refs[op.ID], op.Size)
		if err != nil {
			return fmt.Errorf("realloc id %d to %d bytes: %w", op.ID, op.Size, err)
		}
		if op.Size == 0 {
			p.forget(op.ID)
			return nil
		}
		p.refs[op.ID] = ref
		p.sizes[op.ID] = op.Size
		return p.fill(op.ID)

	case 'f':
		if _, ok := p.refs[op.ID]; !ok {
			return fmt.Errorf("free of unknown id %d", op.ID)
		}
		if err := p.verify(op.ID); err != nil {
			return err
		}
		if err := p.h.Free(p.refs[op.ID]); err != nil {
			return fmt.Errorf("free id %d: %w", op.ID, err)
		}
		p.forget(op.ID)
		return nil
	}
	return fmt.Errorf("unknown op %q", op.Kind)
}

func (p *player) fill(id int) error {
	b, err := p.h.Payload(p.refs[id])
	if err != nil {
		return fmt.Errorf("payload of id %d: %w", id, err)
	}
	c := p.fills[id]
	for i := 0; i < p.sizes[id]; i++ {
		b[i] = c
	}
	return nil
}

func (p *player) verify(id int) error {
	b, err := p.h.Payload(p.refs[id])
	if err != nil {
		return fmt.Errorf("payload of id %d: %w", id, err)
	}
	c := p.fills[id]
	for i := 0; i < p.sizes[id]; i++ {
		if b[i] != c {
			return fmt.Errorf("id %d: payload byte %d is %#x, want %#x", id, i, b[i], c)
		}
	}
	return nil
}

func (p *player) forget(id int) {
	delete(p.refs, id)
	delete(p.sizes, id)
	delete(p.fills, id)
}

// run plays a whole trace. With paranoid set, the heap's structural
// invariants are re-verified after every operation rather than once at the
// end.
func (p *player) run(ops []traceOp, paranoid bool) error {
	for i, op := range ops {
		if err := p.apply(op); err != nil {
			return fmt.Errorf("op %d: %w", i+1, err)
		}
		if paranoid {
			if err := p.h.Check(); err != nil {
				return fmt.Errorf("op %d: %w", i+1, err)
			}
		}
	}
	for id := range p.refs {
		if err := p.verify(id); err != nil {
			return err
		}
	}
	return p.h.Check()
}
