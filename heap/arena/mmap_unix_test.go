//go:build unix

package arena

import (
	"errors"
	"os"
	"testing"
)

func TestMmapExtendAndWrite(t *testing.T) {
	a, err := NewMmap(1 << 20)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()

	off, err := a.Extend(24)
	if err != nil || off != 0 {
		t.Fatalf("Extend: off=%d err=%v", off, err)
	}
	copy(a.Bytes(), "sentinel")
	if string(a.Bytes()[:8]) != "sentinel" {
		t.Fatalf("write not visible")
	}

	// Cross a page boundary; earlier bytes must stay in place.
	page := os.Getpagesize()
	if _, err := a.Extend(page * 3); err != nil {
		t.Fatal(err)
	}
	if string(a.Bytes()[:8]) != "sentinel" {
		t.Fatalf("contents lost across page commit")
	}
	b := a.Bytes()
	b[len(b)-1] = 0xAB // last committed byte is writable
}

func TestMmapExhaustion(t *testing.T) {
	page := os.Getpagesize()
	a, err := NewMmap(page)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()

	if _, err := a.Extend(page); err != nil {
		t.Fatal(err)
	}
	if _, err := a.Extend(8); !errors.Is(err, ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
}

func TestMmapClose(t *testing.T) {
	a, err := NewMmap(1 << 16)
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := a.Extend(8); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
	if err := a.Close(); err != nil {
		t.Fatalf("double close should be a no-op: %v", err)
	}
}
