package graphhopper

import (
	"github.com/pkg/errors"
)

// encodedField is any typed field descriptor built on top of EncodedValue
type encodedField interface {
	base() *EncodedValue
}

// EncodingRegistry is the single authority assigning bit ranges inside edge
// flags. Fields are placed sequentially in registration order, so registration
// must happen in one goroutine before any edge is encoded. The registry also
// keeps version of every registered encoder: readers have to verify stored
// version before interpreting flags produced by previous graph builds.
type EncodingRegistry struct {
	totalBits  uint32
	nextOffset uint32
	fields     []*EncodedValue
	byName     map[string]*EncodedValue
	versions   map[string]int
}

// NewEncodingRegistry creates registry for flags storage of given capacity in bits.
// Capacity is rounded up to whole 32-bit words.
func NewEncodingRegistry(totalBits uint32) *EncodingRegistry {
	words := (totalBits + flagsWordBits - 1) / flagsWordBits
	return &EncodingRegistry{
		totalBits: words * flagsWordBits,
		byName:    make(map[string]*EncodedValue),
		versions:  make(map[string]int),
	}
}

// Register assigns bit range to given field descriptor. Duplicate names,
// invalid widths and overflowing the storage capacity are reported as
// ErrLayoutConflict: those are profile configuration errors and the graph
// build has to be aborted.
func (registry *EncodingRegistry) Register(field encodedField) error {
	ev := field.base()
	if ev.bits < 1 || ev.bits > flagsWordBits {
		return errors.Wrapf(ErrLayoutConflict, "field '%s': invalid width %d", ev.name, ev.bits)
	}
	if _, ok := registry.byName[ev.name]; ok {
		return errors.Wrapf(ErrLayoutConflict, "field '%s' is already registered", ev.name)
	}
	if registry.nextOffset+ev.totalBits() > registry.totalBits {
		return errors.Wrapf(ErrLayoutConflict, "field '%s': no room for %d bits at offset %d (capacity %d bits)", ev.name, ev.totalBits(), registry.nextOffset, registry.totalBits)
	}
	ev.offset = registry.nextOffset
	if err := registry.checkOverlaps(ev); err != nil {
		return err
	}
	registry.nextOffset += ev.totalBits()
	registry.fields = append(registry.fields, ev)
	registry.byName[ev.name] = ev
	return nil
}

// checkOverlaps validates that bit range of the candidate does not intersect
// any registered one. Sequential assignment can not produce intersections on
// its own, still the invariant is checked explicitly instead of trusting call
// order.
func (registry *EncodingRegistry) checkOverlaps(candidate *EncodedValue) error {
	for _, ev := range registry.fields {
		if candidate.offset < ev.offset+ev.totalBits() && ev.offset < candidate.offset+candidate.totalBits() {
			return errors.Wrapf(ErrLayoutConflict, "field '%s' [%d;%d) overlaps field '%s' [%d;%d)",
				candidate.name, candidate.offset, candidate.offset+candidate.totalBits(),
				ev.name, ev.offset, ev.offset+ev.totalBits())
		}
	}
	return nil
}

// Field returns registered field descriptor by name
func (registry *EncodingRegistry) Field(name string) (*EncodedValue, bool) {
	ev, ok := registry.byName[name]
	return ev, ok
}

// UsedBits returns number of assigned bits
func (registry *EncodingRegistry) UsedBits() uint32 {
	return registry.nextOffset
}

// Words returns number of 32-bit words needed to keep every registered field.
// The value is fixed once registration is over: flags of every edge of a
// graph build share the same length.
func (registry *EncodingRegistry) Words() int {
	return int((registry.nextOffset + flagsWordBits - 1) / flagsWordBits)
}

// NewFlags creates zeroed flags storage sized for every registered field
func (registry *EncodingRegistry) NewFlags() Flags {
	return NewFlags(registry.Words())
}

// registerVersion remembers encoder version for later verification
func (registry *EncodingRegistry) registerVersion(encoderName string, version int) {
	registry.versions[encoderName] = version
}

// VerifyVersion checks that flags stored under given encoder name and version
// can be interpreted by the currently registered encoder. Mismatch means the
// bit layout or the encoding logic changed between graph builds: flags must
// not be reinterpreted then.
func (registry *EncodingRegistry) VerifyVersion(encoderName string, storedVersion int) error {
	version, ok := registry.versions[encoderName]
	if !ok {
		return errors.Wrapf(ErrVersionMismatch, "encoder '%s' is not registered", encoderName)
	}
	if version != storedVersion {
		return errors.Wrapf(ErrVersionMismatch, "encoder '%s': stored version %d, current version %d", encoderName, storedVersion, version)
	}
	return nil
}
