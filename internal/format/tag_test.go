package format

import "testing"

func TestPackTagRoundTrip(t *testing.T) {
	for _, size := range []int{0, 8, 32, 120, 1 << 20} {
		for _, allocated := range []bool{false, true} {
			w := PackTag(size, allocated)
			if TagSize(w) != size {
				t.Fatalf("TagSize(PackTag(%d, %v)) = %d", size, allocated, TagSize(w))
			}
			if TagAllocated(w) != allocated {
				t.Fatalf("TagAllocated(PackTag(%d, %v)) = %v", size, allocated, TagAllocated(w))
			}
		}
	}
}

func TestRepackPreservesOtherField(t *testing.T) {
	b := make([]byte, 16)
	WriteTag(b, 0, 64, true)

	RepackSize(b, 0, 128)
	if ReadSize(b, 0) != 128 || !ReadAllocated(b, 0) {
		t.Fatalf("RepackSize lost state: size=%d allocated=%v", ReadSize(b, 0), ReadAllocated(b, 0))
	}

	RepackState(b, 0, false)
	if ReadSize(b, 0) != 128 || ReadAllocated(b, 0) {
		t.Fatalf("RepackState lost size: size=%d allocated=%v", ReadSize(b, 0), ReadAllocated(b, 0))
	}
}

func TestHeaderFooterOffsets(t *testing.T) {
	// A 48-byte block whose payload starts at ref 40.
	ref, size := 40, 48
	if got := HeaderOff(ref); got != 32 {
		t.Fatalf("HeaderOff = %d", got)
	}
	if got := FooterOff(ref, size); got != 72 {
		t.Fatalf("FooterOff = %d", got)
	}
	if got := PrevFooterOff(ref); got != 24 {
		t.Fatalf("PrevFooterOff = %d", got)
	}
	if got := NextHeaderOff(ref, size); got != 80 {
		t.Fatalf("NextHeaderOff = %d", got)
	}
	if got := PayloadRef(HeaderOff(ref)); got != ref {
		t.Fatalf("PayloadRef is not the inverse of HeaderOff: %d", got)
	}
	// Footer word is directly before the next header word.
	if FooterOff(ref, size)+WordSize != NextHeaderOff(ref, size) {
		t.Fatalf("footer and next header are not adjacent")
	}
}

func TestFreeLinks(t *testing.T) {
	b := make([]byte, 64)
	ref := 16
	SetPrevFree(b, ref, 40)
	SetNextFree(b, ref, 56)
	if PrevFree(b, ref) != 40 || NextFree(b, ref) != 56 {
		t.Fatalf("links: prev=%d next=%d", PrevFree(b, ref), NextFree(b, ref))
	}
	// Links occupy the first two payload words and nothing else.
	if v := PrevFree(b, ref+2*WordSize); v != 0 {
		t.Fatalf("write escaped the link words: %d", v)
	}
}

func TestAlign8(t *testing.T) {
	cases := map[int]int{0: 0, 1: 8, 7: 8, 8: 8, 9: 16, 24: 24, 100: 104}
	for in, want := range cases {
		if got := Align8(in); got != want {
			t.Fatalf("Align8(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestBlockSizeFor(t *testing.T) {
	cases := []struct {
		n    int
		want int
	}{
		{1, MinBlockSize},   // align8(17) = 24, clamped to 32
		{16, MinBlockSize},  // align8(32) = 32
		{17, 40},            // align8(33) = 40
		{100, 120},          // align8(116) = 120
		{4080, 4096},        // exact power-of-two total
	}
	for _, c := range cases {
		got, ok := BlockSizeFor(c.n)
		if !ok || got != c.want {
			t.Fatalf("BlockSizeFor(%d) = (%d, %v), want %d", c.n, got, ok, c.want)
		}
		if got%Alignment != 0 {
			t.Fatalf("BlockSizeFor(%d) = %d not aligned", c.n, got)
		}
	}
}

func TestBlockSizeForOverflow(t *testing.T) {
	if _, ok := BlockSizeFor(int(^uint(0) >> 1)); ok {
		t.Fatalf("expected overflow for max int request")
	}
}
