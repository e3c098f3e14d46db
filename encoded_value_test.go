package graphhopper

import (
	"math"
	"testing"

	"github.com/pkg/errors"
)

func TestDecimalRoundTrip(t *testing.T) {
	registry := NewEncodingRegistry(32)
	speed := NewDecimalEncodedValue("speed", 5, 5, false)
	if err := registry.Register(speed); err != nil {
		t.Fatalf("Registration must succeed, but got %v", err)
	}
	flags := registry.NewFlags()
	for raw := uint32(0); raw <= speed.MaxValue(); raw++ {
		value := float64(raw) * speed.Factor()
		if err := speed.SetDecimal(false, flags, value); err != nil {
			t.Fatalf("Encoding %f must succeed, but got %v", value, err)
		}
		if got := speed.GetDecimal(false, flags); math.Abs(got-value) > speed.Factor()/2 {
			t.Errorf("Decoded value must be %f, but got %f", value, got)
		}
	}
}

func TestEncodeRangeError(t *testing.T) {
	registry := NewEncodingRegistry(32)
	speed := NewDecimalEncodedValue("speed", 5, 5, false)
	count := NewIntEncodedValue("count", 3, false)
	if err := registry.Register(speed); err != nil {
		t.Fatalf("Registration must succeed, but got %v", err)
	}
	if err := registry.Register(count); err != nil {
		t.Fatalf("Registration must succeed, but got %v", err)
	}
	flags := registry.NewFlags()

	if err := speed.SetDecimal(false, flags, speed.MaxDecimal()); err != nil {
		t.Errorf("Encoding the exact maximum must succeed, but got %v", err)
	}
	stored := flags.Clone()
	if err := speed.SetDecimal(false, flags, speed.MaxDecimal()+speed.Factor()); errors.Cause(err) != ErrRange {
		t.Errorf("Encoding above the maximum must fail with ErrRange, but got %v", err)
	}
	if err := speed.SetDecimal(false, flags, -1); errors.Cause(err) != ErrRange {
		t.Errorf("Encoding negative value must fail with ErrRange, but got %v", err)
	}
	if err := count.SetInt(false, flags, -1); errors.Cause(err) != ErrRange {
		t.Errorf("Encoding negative integer must fail with ErrRange, but got %v", err)
	}
	if err := count.SetInt(false, flags, int(count.MaxValue())+1); errors.Cause(err) != ErrRange {
		t.Errorf("Encoding above the maximum must fail with ErrRange, but got %v", err)
	}
	for i := range flags {
		if flags[i] != stored[i] {
			t.Errorf("Failed encodings must not commit partial writes: word %d must be %d, but got %d", i, stored[i], flags[i])
		}
	}
}

func TestDirectionIndependence(t *testing.T) {
	registry := NewEncodingRegistry(32)
	priority := NewDecimalEncodedValue("priority", 3, 1.0/float64(PRIORITY_BEST), false)
	if err := registry.Register(priority); err != nil {
		t.Fatalf("Registration must succeed, but got %v", err)
	}
	flags := registry.NewFlags()
	if err := priority.SetInt(false, flags, int(PRIORITY_BEST)); err != nil {
		t.Fatalf("Encoding must succeed, but got %v", err)
	}
	if priority.GetInt(true, flags) != priority.GetInt(false, flags) {
		t.Errorf("Field stored once must decode the same for both directions, but got %d and %d",
			priority.GetInt(true, flags), priority.GetInt(false, flags))
	}
}

func TestTwoDirectionsIndependentStorage(t *testing.T) {
	registry := NewEncodingRegistry(32)
	speed := NewDecimalEncodedValue("speed", 5, 5, true)
	if err := registry.Register(speed); err != nil {
		t.Fatalf("Registration must succeed, but got %v", err)
	}
	flags := registry.NewFlags()
	if err := speed.SetDecimal(false, flags, 100); err != nil {
		t.Fatalf("Encoding must succeed, but got %v", err)
	}
	if err := speed.SetDecimal(true, flags, 30); err != nil {
		t.Fatalf("Encoding must succeed, but got %v", err)
	}
	if got := speed.GetDecimal(false, flags); got != 100 {
		t.Errorf("Forward speed must be %f, but got %f", 100.0, got)
	}
	if got := speed.GetDecimal(true, flags); got != 30 {
		t.Errorf("Backward speed must be %f, but got %f", 30.0, got)
	}
}

func TestStringEncodedValue(t *testing.T) {
	registry := NewEncodingRegistry(32)
	surface := NewStringEncodedValue("surface", []string{"paved", "gravel", "sand"}, false)
	if err := registry.Register(surface); err != nil {
		t.Fatalf("Registration must succeed, but got %v", err)
	}
	flags := registry.NewFlags()
	if got := surface.GetString(false, flags); got != "" {
		t.Errorf("Unset field must decode as empty string, but got '%s'", got)
	}
	if err := surface.SetString(false, flags, "gravel"); err != nil {
		t.Fatalf("Encoding known value must succeed, but got %v", err)
	}
	if got := surface.GetString(false, flags); got != "gravel" {
		t.Errorf("Decoded value must be 'gravel', but got '%s'", got)
	}
	if err := surface.SetString(false, flags, "lava"); errors.Cause(err) != ErrRange {
		t.Errorf("Encoding unknown value must fail with ErrRange, but got %v", err)
	}
}

func TestRegistryLayoutConflicts(t *testing.T) {
	registry := NewEncodingRegistry(8)
	if err := registry.Register(NewIntEncodedValue("first", 4, false)); err != nil {
		t.Fatalf("Registration must succeed, but got %v", err)
	}
	if err := registry.Register(NewIntEncodedValue("first", 2, false)); errors.Cause(err) != ErrLayoutConflict {
		t.Errorf("Duplicate name must fail with ErrLayoutConflict, but got %v", err)
	}
	// capacity of 8 bits was rounded up to a whole 32-bit word
	if err := registry.Register(NewIntEncodedValue("second", 28, false)); err != nil {
		t.Errorf("Registration within the word must succeed, but got %v", err)
	}
	if err := registry.Register(NewIntEncodedValue("third", 1, false)); errors.Cause(err) != ErrLayoutConflict {
		t.Errorf("Registration above the capacity must fail with ErrLayoutConflict, but got %v", err)
	}
	if err := registry.Register(NewIntEncodedValue("wide", 33, false)); errors.Cause(err) != ErrLayoutConflict {
		t.Errorf("Invalid width must fail with ErrLayoutConflict, but got %v", err)
	}
}

func TestRegistryOffsets(t *testing.T) {
	registry := NewEncodingRegistry(64)
	access := NewBoolEncodedValue("access", true)
	speed := NewDecimalEncodedValue("speed", 5, 5, true)
	if err := registry.Register(access); err != nil {
		t.Fatalf("Registration must succeed, but got %v", err)
	}
	if err := registry.Register(speed); err != nil {
		t.Fatalf("Registration must succeed, but got %v", err)
	}
	if access.rangeOffset(false) != 0 || access.rangeOffset(true) != 1 {
		t.Errorf("Access sub-ranges must be at bits 0 and 1, but got %d and %d", access.rangeOffset(false), access.rangeOffset(true))
	}
	if speed.rangeOffset(false) != 2 || speed.rangeOffset(true) != 7 {
		t.Errorf("Speed sub-ranges must be at bits 2 and 7, but got %d and %d", speed.rangeOffset(false), speed.rangeOffset(true))
	}
	if registry.UsedBits() != 12 {
		t.Errorf("Used bits must be %d, but got %d", 12, registry.UsedBits())
	}
	if registry.Words() != 1 {
		t.Errorf("Flags size must be %d word, but got %d", 1, registry.Words())
	}
}
