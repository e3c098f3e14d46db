package graphhopper

// Access is three-way acceptance verdict for a way: denied, accepted or
// accepted as ferry. It is an opaque bitmask meant to be passed back into
// HandleWayTags.
type Access uint8

const (
	accessBit = Access(1 << iota)
	ferryBit
)

// AccessDenied means the way can not be traversed by the vehicle at all
const AccessDenied = Access(0)

// IsAccepted reports whether the way should become graph edges
func (access Access) IsAccepted() bool {
	return access&accessBit != 0
}

// IsFerry reports whether the way was accepted as a ferry route
func (access Access) IsFerry() bool {
	return access&ferryBit != 0
}

// AcceptWay classifies the way as denied, accepted or accepted as ferry.
// It is a pure function of way tags.
//
// The order of checks is load-bearing: value of the most specific restriction
// tag listed in intended values accepts the way immediately, overriding every
// later general policy check (fords, conditional restrictions). Explicit
// vehicle-specific permission wins over generic denial.
func (encoder *FlagEncoder) AcceptWay(way *Way) Access {
	highwayValue := way.Tag("highway")
	firstValue := way.FirstRestrictionValue(encoder.restrictions)
	if highwayValue == "" {
		if way.IsFerry() {
			if _, restricted := encoder.restrictedValues[firstValue]; restricted {
				return AccessDenied
			}
			if _, intended := encoder.intendedValues[firstValue]; intended {
				return accessBit | ferryBit
			}
			// implied default is allowed only if foot and bicycle is not specified
			if firstValue == "" && !way.HasTag("foot") && !way.HasTag("bicycle") {
				return accessBit | ferryBit
			}
		}
		return AccessDenied
	}

	if highwayValue == "track" && !encoder.allowAllTrackGrades {
		if trackType := way.Tag("tracktype"); trackType != "" && trackType != "grade1" {
			return AccessDenied
		}
	}

	if _, known := encoder.defaultSpeeds[highwayValue]; !known {
		return AccessDenied
	}

	if way.HasTagValue("impassable", "yes") || way.HasTagValue("status", "impassable") {
		return AccessDenied
	}

	if firstValue != "" {
		if _, restricted := encoder.restrictedValues[firstValue]; restricted && !encoder.conditional.IsRestrictedWayConditionallyPermitted(way) {
			return AccessDenied
		}
		if _, intended := encoder.intendedValues[firstValue]; intended {
			return accessBit
		}
	}

	// do not drive street vehicles into fords
	if encoder.blockFords && (highwayValue == "ford" || way.HasTag("ford")) {
		return AccessDenied
	}

	if encoder.conditional.IsPermittedWayConditionallyRestricted(way) {
		return AccessDenied
	}
	return accessBit
}
