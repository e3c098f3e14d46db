package graphhopper

import (
	"math"
	mbits "math/bits"

	"github.com/pkg/errors"
)

// EncodedValue describes single named bit field inside edge Flags: its offset,
// width and whether separate forward/backward sub-ranges are stored. It is
// created once during encoder registration and must not be modified afterwards:
// single descriptor is shared (read-only) by every edge of the graph.
type EncodedValue struct {
	name               string
	offset             uint32
	bits               uint32
	storeTwoDirections bool
}

// Name returns unique field name
func (ev *EncodedValue) Name() string {
	return ev.name
}

// Bits returns width of single directional sub-range in bits
func (ev *EncodedValue) Bits() uint32 {
	return ev.bits
}

// MaxValue returns maximum storable raw value
func (ev *EncodedValue) MaxValue() uint32 {
	return rangeMask(ev.bits)
}

// StoreTwoDirections reports whether forward and backward values are kept separately
func (ev *EncodedValue) StoreTwoDirections() bool {
	return ev.storeTwoDirections
}

func (ev *EncodedValue) base() *EncodedValue {
	return ev
}

// totalBits returns number of bits occupied in flags storage
func (ev *EncodedValue) totalBits() uint32 {
	if ev.storeTwoDirections {
		return 2 * ev.bits
	}
	return ev.bits
}

// rangeOffset resolves directional sub-range. A field stored once returns the
// same range for both directions.
func (ev *EncodedValue) rangeOffset(reverse bool) uint32 {
	if reverse && ev.storeTwoDirections {
		return ev.offset + ev.bits
	}
	return ev.offset
}

func (ev *EncodedValue) getRaw(reverse bool, flags Flags) uint32 {
	return flags.getRange(ev.rangeOffset(reverse), ev.bits)
}

func (ev *EncodedValue) setRaw(reverse bool, flags Flags, value uint32) error {
	if value > ev.MaxValue() {
		return errors.Wrapf(ErrRange, "field '%s': raw value %d exceeds maximum %d", ev.name, value, ev.MaxValue())
	}
	flags.setRange(ev.rangeOffset(reverse), ev.bits, value)
	return nil
}

// BoolEncodedValue is single bit field
type BoolEncodedValue struct {
	EncodedValue
}

// NewBoolEncodedValue creates single bit field descriptor
func NewBoolEncodedValue(name string, storeTwoDirections bool) *BoolEncodedValue {
	return &BoolEncodedValue{EncodedValue{name: name, bits: 1, storeTwoDirections: storeTwoDirections}}
}

// GetBool extracts stored boolean for requested direction
func (ev *BoolEncodedValue) GetBool(reverse bool, flags Flags) bool {
	return ev.getRaw(reverse, flags) != 0
}

// SetBool stores boolean for requested direction. Single bit always fits, so no error can happen.
func (ev *BoolEncodedValue) SetBool(reverse bool, flags Flags, value bool) {
	raw := uint32(0)
	if value {
		raw = 1
	}
	flags.setRange(ev.rangeOffset(reverse), ev.bits, raw)
}

// IntEncodedValue is unsigned integer field
type IntEncodedValue struct {
	EncodedValue
}

// NewIntEncodedValue creates unsigned integer field descriptor of given width
func NewIntEncodedValue(name string, bits uint32, storeTwoDirections bool) *IntEncodedValue {
	return &IntEncodedValue{EncodedValue{name: name, bits: bits, storeTwoDirections: storeTwoDirections}}
}

// GetInt extracts stored integer for requested direction
func (ev *IntEncodedValue) GetInt(reverse bool, flags Flags) int {
	return int(ev.getRaw(reverse, flags))
}

// SetInt stores integer for requested direction. Out of range values are
// rejected with ErrRange, flags are left untouched then.
func (ev *IntEncodedValue) SetInt(reverse bool, flags Flags, value int) error {
	if value < 0 {
		return errors.Wrapf(ErrRange, "field '%s': negative value %d for unsigned field", ev.name, value)
	}
	return ev.setRaw(reverse, flags, uint32(value))
}

// DecimalEncodedValue is decimal field backed by scaled unsigned integer.
// Stored raw value decodes as raw*factor, so factor is the resolution quantum.
type DecimalEncodedValue struct {
	IntEncodedValue
	factor float64
}

// NewDecimalEncodedValue creates decimal field descriptor of given width and scale factor
func NewDecimalEncodedValue(name string, bits uint32, factor float64, storeTwoDirections bool) *DecimalEncodedValue {
	return &DecimalEncodedValue{
		IntEncodedValue: IntEncodedValue{EncodedValue{name: name, bits: bits, storeTwoDirections: storeTwoDirections}},
		factor:          factor,
	}
}

// Factor returns resolution quantum of the field
func (ev *DecimalEncodedValue) Factor() float64 {
	return ev.factor
}

// MaxDecimal returns maximum storable decimal value
func (ev *DecimalEncodedValue) MaxDecimal() float64 {
	return float64(ev.MaxValue()) * ev.factor
}

// GetDecimal extracts stored decimal for requested direction
func (ev *DecimalEncodedValue) GetDecimal(reverse bool, flags Flags) float64 {
	return float64(ev.getRaw(reverse, flags)) * ev.factor
}

// SetDecimal stores decimal for requested direction rounding it to field resolution
func (ev *DecimalEncodedValue) SetDecimal(reverse bool, flags Flags, value float64) error {
	if value < 0 {
		return errors.Wrapf(ErrRange, "field '%s': negative value %f for unsigned field", ev.name, value)
	}
	raw := math.Round(value / ev.factor)
	if raw > float64(ev.MaxValue()) {
		return errors.Wrapf(ErrRange, "field '%s': value %f exceeds maximum %f", ev.name, value, ev.MaxDecimal())
	}
	flags.setRange(ev.rangeOffset(reverse), ev.bits, uint32(raw))
	return nil
}

// StringEncodedValue is field over the fixed list of known string values.
// Raw zero is reserved for "value is not set".
type StringEncodedValue struct {
	EncodedValue
	values  []string
	indexes map[string]uint32
}

// NewStringEncodedValue creates field descriptor for the fixed list of known string values
func NewStringEncodedValue(name string, values []string, storeTwoDirections bool) *StringEncodedValue {
	indexes := make(map[string]uint32, len(values))
	for i, value := range values {
		indexes[value] = uint32(i + 1)
	}
	return &StringEncodedValue{
		EncodedValue: EncodedValue{name: name, bits: uint32(mbits.Len32(uint32(len(values)))), storeTwoDirections: storeTwoDirections},
		values:       values,
		indexes:      indexes,
	}
}

// GetString extracts stored string for requested direction. Empty string means the field was never set.
func (ev *StringEncodedValue) GetString(reverse bool, flags Flags) string {
	raw := ev.getRaw(reverse, flags)
	if raw == 0 || raw > uint32(len(ev.values)) {
		return ""
	}
	return ev.values[raw-1]
}

// SetString stores one of the known string values for requested direction
func (ev *StringEncodedValue) SetString(reverse bool, flags Flags, value string) error {
	raw, ok := ev.indexes[value]
	if !ok {
		return errors.Wrapf(ErrRange, "field '%s': unknown value '%s'", ev.name, value)
	}
	return ev.setRaw(reverse, flags, raw)
}
