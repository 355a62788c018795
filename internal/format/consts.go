// Package format defines the on-arena block layout for the allocator. A block
// is a contiguous span of the arena bounded by a header and a footer tag word;
// both words always carry the identical (size, state) encoding so neighbors can
// be located in O(1) from either end. The goal is to keep every layout rule in
// one place, independent from the allocator itself, so higher-level packages
// only ever manipulate blocks through these accessors.
package format

const (
	// WordSize is the width of a tag or free-list link word in bytes.
	WordSize = 8

	// Alignment is the required alignment of payload refs and block sizes.
	Alignment = 8

	// AlignmentMask is the bitmask used for aligning to 8-byte boundaries (Alignment - 1).
	AlignmentMask = Alignment - 1

	// Overhead is the fixed per-block metadata cost: one header word at the
	// start of the block plus one footer word at the end.
	Overhead = 2 * WordSize

	// MinBlockSize is the smallest legal block. A free block stores its two
	// free-list link words in the first two payload words, so every block must
	// have room for header, two links, and footer.
	MinBlockSize = Overhead + 2*WordSize

	// PrologueSize is the size of the head sentinel block: header and footer
	// only, always allocated, never entered into a free list. It exists so the
	// leftmost real block can probe its previous footer without a bounds check.
	PrologueSize = Overhead

	// BootstrapSize is the initial arena footprint: the prologue block plus
	// the zero-size epilogue header that terminates rightward scans.
	BootstrapSize = PrologueSize + WordSize

	// stateMask covers the tag bits reserved for block state. Sizes are always
	// multiples of Alignment, so these bits never collide with size data.
	stateMask = 0x7

	// allocatedBit marks a block as allocated; a clear bit means free.
	allocatedBit = 0x1
)
