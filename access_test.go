package graphhopper

import (
	"testing"
)

func TestAcceptWayTruthTable(t *testing.T) {
	encoder, _ := newMotorcycleEncoder(t, Properties{})
	cases := []struct {
		tags     map[string]string
		accepted bool
		ferry    bool
	}{
		{map[string]string{"highway": "motorway", "motorcycle": "no"}, false, false},
		{map[string]string{"highway": "track", "tracktype": "grade3"}, false, false},
		{map[string]string{"highway": "track", "tracktype": "grade1"}, true, false},
		{map[string]string{"highway": "primary"}, true, false},
		{map[string]string{"route": "shuttle_train"}, true, true},
		{map[string]string{"route": "ferry"}, true, true},
		{map[string]string{"route": "ferry", "foot": "yes"}, false, false},
		{map[string]string{"route": "ferry", "bicycle": "yes"}, false, false},
		{map[string]string{"route": "ferry", "motorcycle": "yes", "foot": "yes"}, true, true},
		{map[string]string{"route": "ferry", "motorcycle": "no"}, false, false},
		{map[string]string{"highway": "ford"}, false, false},
		{map[string]string{"highway": "primary", "ford": "yes"}, false, false},
		{map[string]string{"highway": "footway"}, false, false},
		{map[string]string{"highway": "primary", "impassable": "yes"}, false, false},
		{map[string]string{"highway": "primary", "status": "impassable"}, false, false},
		{map[string]string{"highway": "motorway", "motorcycle": "yes"}, true, false},
		{map[string]string{"highway": "secondary", "motor_vehicle": "no"}, false, false},
		{map[string]string{"highway": "secondary", "access": "private"}, false, false},
		// the most specific restriction tag wins over the generic one
		{map[string]string{"highway": "secondary", "access": "no", "motorcycle": "yes"}, true, false},
	}
	for _, testCase := range cases {
		access := encoder.AcceptWay(makeWay(testCase.tags))
		if access.IsAccepted() != testCase.accepted {
			t.Errorf("Way %v acceptance must be %t, but got %t", testCase.tags, testCase.accepted, access.IsAccepted())
		}
		if access.IsFerry() != testCase.ferry {
			t.Errorf("Way %v ferry verdict must be %t, but got %t", testCase.tags, testCase.ferry, access.IsFerry())
		}
	}
}

// Explicit vehicle permission is checked before the ford policy, so a tagged
// motorcycle=yes way crosses a blocked ford.
func TestAcceptWayIntendedOverridesFordBlock(t *testing.T) {
	encoder, _ := newMotorcycleEncoder(t, Properties{})
	way := makeWay(map[string]string{"highway": "primary", "ford": "yes", "motorcycle": "yes"})
	if !encoder.AcceptWay(way).IsAccepted() {
		t.Errorf("Explicitly permitted way through a ford must be accepted")
	}
}

func TestAcceptWayFordsAllowed(t *testing.T) {
	encoder, _ := newMotorcycleEncoder(t, Properties{"block_fords": "false"})
	way := makeWay(map[string]string{"highway": "primary", "ford": "yes"})
	if !encoder.AcceptWay(way).IsAccepted() {
		t.Errorf("Ford way must be accepted when fords are not blocked")
	}
}

type denyingInspector struct{}

func (denyingInspector) IsRestrictedWayConditionallyPermitted(way *Way) bool {
	return false
}

func (denyingInspector) IsPermittedWayConditionallyRestricted(way *Way) bool {
	return true
}

type permittingInspector struct{}

func (permittingInspector) IsRestrictedWayConditionallyPermitted(way *Way) bool {
	return true
}

func (permittingInspector) IsPermittedWayConditionallyRestricted(way *Way) bool {
	return false
}

func TestAcceptWayConditionalAccess(t *testing.T) {
	registry := NewEncodingRegistry(32)
	denying, err := NewFlagEncoder(MotorcycleProfile(), Properties{}, registry, WithConditionalTagInspector(denyingInspector{}))
	if err != nil {
		t.Fatalf("Encoder construction must succeed, but got %v", err)
	}
	if denying.AcceptWay(makeWay(map[string]string{"highway": "primary"})).IsAccepted() {
		t.Errorf("Conditionally restricted way must be denied")
	}
	// explicit permission skips the conditional restriction check
	if !denying.AcceptWay(makeWay(map[string]string{"highway": "primary", "motorcycle": "yes"})).IsAccepted() {
		t.Errorf("Explicitly permitted way must be accepted despite conditional restrictions")
	}

	registry = NewEncodingRegistry(32)
	permitting, err := NewFlagEncoder(MotorcycleProfile(), Properties{}, registry, WithConditionalTagInspector(permittingInspector{}))
	if err != nil {
		t.Fatalf("Encoder construction must succeed, but got %v", err)
	}
	if !permitting.AcceptWay(makeWay(map[string]string{"highway": "primary", "motorcycle": "no"})).IsAccepted() {
		t.Errorf("Conditionally permitted way must be accepted despite the restriction tag")
	}
}
