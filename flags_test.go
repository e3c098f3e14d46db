package graphhopper

import (
	mbits "math/bits"
	"testing"
)

func TestFlagsRangeRoundTrip(t *testing.T) {
	totalBits := uint32(2 * flagsWordBits)
	for offset := uint32(0); offset < totalBits; offset++ {
		for width := uint32(1); width <= flagsWordBits; width++ {
			if offset+width > totalBits {
				continue
			}
			flags := NewFlags(2)
			value := uint32(0xDEADBEEF) & rangeMask(width)
			flags.setRange(offset, width, value)
			if got := flags.getRange(offset, width); got != value {
				t.Errorf("offset %d width %d: stored value must be %d, but got %d", offset, width, value, got)
			}
		}
	}
}

func TestFlagsRangeDoesNotTouchNeighbours(t *testing.T) {
	totalBits := uint32(2 * flagsWordBits)
	for offset := uint32(0); offset < totalBits; offset++ {
		for width := uint32(1); width <= flagsWordBits; width++ {
			if offset+width > totalBits {
				continue
			}
			flags := Flags{^uint32(0), ^uint32(0)}
			flags.setRange(offset, width, 0)
			zeroed := 2*flagsWordBits - mbits.OnesCount32(flags[0]) - mbits.OnesCount32(flags[1])
			if zeroed != int(width) {
				t.Errorf("offset %d width %d: must zero exactly %d bits, but zeroed %d", offset, width, width, zeroed)
			}
			flags.setRange(offset, width, rangeMask(width))
			if flags[0] != ^uint32(0) || flags[1] != ^uint32(0) {
				t.Errorf("offset %d width %d: restoring the range must give all ones back, but got %#v", offset, width, flags)
			}
		}
	}
}

func TestFlagsClone(t *testing.T) {
	flags := Flags{1, 2}
	cloned := flags.Clone()
	cloned.setRange(0, 32, 42)
	if flags[0] != 1 {
		t.Errorf("mutating the clone must not touch the original, but got %d", flags[0])
	}
}
