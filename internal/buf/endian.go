// Package buf contains helpers for endian-safe word access over raw byte
// buffers, plus overflow-safe arithmetic for size calculations.
package buf

import "encoding/binary"

// U64LE reads a little-endian uint64 from b at off. Returns 0 when b is too short.
func U64LE(b []byte, off int) uint64 {
	if off < 0 || off+8 > len(b) {
		return 0
	}
	return binary.LittleEndian.Uint64(b[off:])
}

// PutU64LE writes a little-endian uint64 to b at off. No-op when b is too short.
func PutU64LE(b []byte, off int, v uint64) {
	if off < 0 || off+8 > len(b) {
		return
	}
	binary.LittleEndian.PutUint64(b[off:], v)
}
