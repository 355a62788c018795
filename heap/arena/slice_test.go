package arena

import (
	"errors"
	"testing"
)

func TestSliceExtend(t *testing.T) {
	a := NewSlice(64, 0)
	off, err := a.Extend(24)
	if err != nil || off != 0 {
		t.Fatalf("first Extend: off=%d err=%v", off, err)
	}
	off, err = a.Extend(40)
	if err != nil || off != 24 {
		t.Fatalf("second Extend: off=%d err=%v", off, err)
	}
	if a.Size() != 64 || len(a.Bytes()) != 64 {
		t.Fatalf("size mismatch: %d", a.Size())
	}
	// New bytes arrive zeroed.
	for i, c := range a.Bytes() {
		if c != 0 {
			t.Fatalf("byte %d not zeroed", i)
		}
	}
}

func TestSliceContentsSurviveGrowth(t *testing.T) {
	a := NewSlice(0, 0)
	if _, err := a.Extend(8); err != nil {
		t.Fatal(err)
	}
	copy(a.Bytes(), "deadbeef")
	if _, err := a.Extend(1 << 16); err != nil {
		t.Fatal(err)
	}
	if string(a.Bytes()[:8]) != "deadbeef" {
		t.Fatalf("contents lost across growth: %q", a.Bytes()[:8])
	}
}

func TestSliceLimit(t *testing.T) {
	a := NewSlice(0, 32)
	if _, err := a.Extend(24); err != nil {
		t.Fatal(err)
	}
	if _, err := a.Extend(16); !errors.Is(err, ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
	// A fitting request still succeeds after a refused one.
	if _, err := a.Extend(8); err != nil {
		t.Fatalf("fitting request refused: %v", err)
	}
}

func TestSliceBadSizeAndClose(t *testing.T) {
	a := NewSlice(0, 0)
	if _, err := a.Extend(0); !errors.Is(err, ErrBadSize) {
		t.Fatalf("expected ErrBadSize, got %v", err)
	}
	if _, err := a.Extend(-8); !errors.Is(err, ErrBadSize) {
		t.Fatalf("expected ErrBadSize, got %v", err)
	}
	if err := a.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := a.Extend(8); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
}
