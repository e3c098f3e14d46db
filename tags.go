package graphhopper

var (
	// Values of `oneway` tag meaning the way is single direction (including reversed one)
	onewayValues = map[string]struct{}{
		"yes":  {},
		"true": {},
		"1":    {},
		"-1":   {},
	}

	// See ref.: https://wiki.openstreetmap.org/wiki/Tag:oneway%3Dreversible
	onewayReversible = map[string]struct{}{
		"reversible":  {},
		"alternating": {},
	}

	// Values of `route` tag carried by ferry-like ways without `highway` tag
	ferryRouteValues = map[string]struct{}{
		"ferry":         {},
		"shuttle_train": {},
	}

	// Access tag values denying the way for a vehicle
	defaultRestrictedValues = map[string]struct{}{
		"no":           {},
		"restricted":   {},
		"private":      {},
		"agricultural": {},
		"forestry":     {},
		"delivery":     {},
		"military":     {},
		"emergency":    {},
	}

	// Access tag values explicitly permitting the way for a vehicle
	defaultIntendedValues = map[string]struct{}{
		"yes":        {},
		"designated": {},
		"official":   {},
		"permissive": {},
	}

	// Values of `surface` tag which cap motorized speed
	badSurfaceValues = map[string]struct{}{
		"cobblestone":   {},
		"grass_paver":   {},
		"gravel":        {},
		"sand":          {},
		"paving_stones": {},
		"dirt":          {},
		"ground":        {},
		"grass":         {},
		"unpaved":       {},
		"compacted":     {},
	}

	junctionRoundaboutValues = map[string]struct{}{
		"roundabout": {},
		"circular":   {},
	}
)
