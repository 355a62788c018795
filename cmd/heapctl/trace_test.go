package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
)

func TestParseTrace(t *testing.T) {
	input := `# comment line
20000
12
a 0 512

a 1 128
r 0 1024
f 1
f 0
`
	ops, err := parseTrace("test", strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	want := []traceOp{
		{Kind: 'a', ID: 0, Size: 512},
		{Kind: 'a', ID: 1, Size: 128},
		{Kind: 'r', ID: 0, Size: 1024},
		{Kind: 'f', ID: 1},
		{Kind: 'f', ID: 0},
	}
	if len(ops) != len(want) {
		t.Fatalf("got %d ops, want %d", len(ops), len(want))
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Errorf("op %d: got %+v, want %+v", i, ops[i], want[i])
		}
	}
}

func TestParseTraceRejectsMalformedLines(t *testing.T) {
	for _, input := range []string{
		"x 0 512\n",  // unknown op
		"a 0\n",      // alloc missing size
		"f 0 512\n",  // free with a size
		"a -1 512\n", // negative id
		"a 0 -8\n",   // negative size
		"a zero 8\n", // non-numeric id
	} {
		if _, err := parseTrace("test", strings.NewReader(input)); err == nil {
			t.Errorf("no error for %q", input)
		}
	}
}

func TestReadTraceGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.rep.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := gzip.NewWriter(f)
	if _, err := zw.Write([]byte("a 0 64\nf 0\n")); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	ops, err := readTrace(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(ops) != 2 || ops[0].Kind != 'a' || ops[1].Kind != 'f' {
		t.Fatalf("unexpected ops: %+v", ops)
	}
}
