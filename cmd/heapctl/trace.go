package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Trace file format, one operation per line:
//
//	a <id> <size>   allocate <size> bytes under <id>
//	r <id> <size>   reallocate <id> to <size> bytes
//	f <id>          free <id>
//
// Blank lines and lines starting with '#' are skipped, as are bare-integer
// header lines that some trace generators emit before the operations.
// Files ending in .gz are transparently decompressed.

type traceOp struct {
	Kind byte // 'a', 'r', or 'f'
	ID   int
	Size int
}

func readTrace(path string) ([]traceOp, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}
	return parseTrace(path, r)
}

func parseTrace(path string, r io.Reader) ([]traceOp, error) {
	var ops []traceOp
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if _, err := strconv.Atoi(fields[0]); err == nil {
			continue // header line
		}

		op := traceOp{Kind: fields[0][0]}
		var want int
		switch op.Kind {
		case 'a', 'r':
			want = 3
		case 'f':
			want = 2
		default:
			return nil, fmt.Errorf("%s:%d: unknown op %q", path, line, fields[0])
		}
		if len(fields) != want || len(fields[0]) != 1 {
			return nil, fmt.Errorf("%s:%d: malformed %q op: %q", path, line, op.Kind, text)
		}

		id, err := strconv.Atoi(fields[1])
		if err != nil || id < 0 {
			return nil, fmt.Errorf("%s:%d: bad id %q", path, line, fields[1])
		}
		op.ID = id
		if want == 3 {
			size, err := strconv.Atoi(fields[2])
			if err != nil || size < 0 {
				return nil, fmt.Errorf("%s:%d: bad size %q", path, line, fields[2])
			}
			op.Size = size
		}
		ops = append(ops, op)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ops, nil
}
