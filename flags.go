package graphhopper

const flagsWordBits = 32

// Flags is packed per-edge attribute storage. It carries every encoded field
// of a single directed edge as a sequence of 32-bit words. Flags does not know
// anything about fields meaning: it can only read and write raw bit ranges.
// Use EncodedValue accessors to interpret the content.
type Flags []uint32

// NewFlags returns zeroed flags storage of given number of 32-bit words
func NewFlags(words int) Flags {
	return make(Flags, words)
}

// Clone returns deep copy of flags
func (flags Flags) Clone() Flags {
	cloned := make(Flags, len(flags))
	copy(cloned, flags)
	return cloned
}

// getRange extracts `width` bits starting at bit `offset`.
// A range may cross single word boundary.
func (flags Flags) getRange(offset, width uint32) uint32 {
	word := offset / flagsWordBits
	shift := offset % flagsWordBits
	value := flags[word] >> shift
	read := flagsWordBits - shift
	if read < width {
		value |= flags[word+1] << read
	}
	return value & rangeMask(width)
}

// setRange overwrites `width` bits starting at bit `offset` with given value.
// Bits outside of the range are left untouched.
func (flags Flags) setRange(offset, width, value uint32) {
	mask := rangeMask(width)
	value &= mask
	word := offset / flagsWordBits
	shift := offset % flagsWordBits
	flags[word] = flags[word]&^(mask<<shift) | value<<shift
	written := flagsWordBits - shift
	if written < width {
		restMask := rangeMask(width - written)
		flags[word+1] = flags[word+1]&^restMask | value>>written
	}
}

func rangeMask(width uint32) uint32 {
	if width >= flagsWordBits {
		return ^uint32(0)
	}
	return 1<<width - 1
}
