package graphhopper

// Capability declares optional weighting features satisfied by encoded fields
// of a vehicle profile
type Capability uint16

const (
	CAPABILITY_PRIORITY = Capability(1 << iota)
	CAPABILITY_CURVATURE
)

// VehicleProfile describes one vehicle class as plain data: speed tables,
// access tag precedence and priority classification sets. Vehicle variants
// are values built by the constructors below, not types: the same FlagEncoder
// machinery serves any of them.
type VehicleProfile struct {
	Name    string
	Version int
	// Road class -> base speed (km/h). Keys of this map are exactly the
	// accepted highway classes.
	DefaultSpeeds map[string]int
	// Track grade -> speed (km/h) refining `highway` = track
	TrackTypeSpeeds map[string]int
	// Accept track of any grade, not only grade1
	AllowAllTrackGrades bool
	// Access tag keys ordered most specific first
	Restrictions     []string
	RestrictedValues map[string]struct{}
	IntendedValues   map[string]struct{}
	// Road classes lowering/raising priority. Must be disjoint.
	AvoidClasses  map[string]struct{}
	PreferClasses map[string]struct{}
	// Highest speed the profile may ever produce (km/h)
	MaxPossibleSpeed int
	// Store separate forward and backward speed values
	SpeedTwoDirections bool
	// Cap (km/h) applied when surface is degraded, 0 disables the cap
	BadSurfaceSpeed int
	// Vehicle specific speed limit tag (e.g. maxspeed:motorcycle) and its
	// cautious scale applied on top of the tag value
	VehicleMaxSpeedTag   string
	VehicleMaxSpeedScale float64
	// Cruise speed (km/h) assumed for ferries without duration info
	DefaultFerrySpeed int
	Capabilities      Capability
}

// Supports reports whether profile satisfies given weighting capability
func (profile *VehicleProfile) Supports(capability Capability) bool {
	return profile.Capabilities&capability != 0
}

// MotorcycleProfile returns profile tuned for motorbikes: highways are
// penalized, bendy secondary roads are preferred, curvature field is encoded
func MotorcycleProfile() VehicleProfile {
	return VehicleProfile{
		Name:    "motorcycle",
		Version: 3,
		DefaultSpeeds: map[string]int{
			// autobahn
			"motorway":      100,
			"motorway_link": 70,
			"motorroad":     90,
			// bundesstraße
			"trunk":      80,
			"trunk_link": 75,
			// linking bigger town
			"primary":      65,
			"primary_link": 60,
			// linking towns + villages
			"secondary":      60,
			"secondary_link": 50,
			// streets without middle line separation
			"tertiary":      50,
			"tertiary_link": 40,
			"unclassified":  30,
			"residential":   30,
			// spielstraße
			"living_street": 5,
			"service":       20,
			// unknown road
			"road": 20,
			// forestry stuff
			"track": 15,
		},
		TrackTypeSpeeds: map[string]int{
			"grade1": 20, // paved
			"grade2": 15, // now unpaved - gravel mixed with ...
			"grade3": 10, // ... hard and soft materials
			"grade4": 5,  // ... some hard or compressed materials
			"grade5": 5,  // ... no hard materials. soil/sand/grass
		},
		Restrictions:     []string{"motorcycle", "motor_vehicle", "vehicle", "access"},
		RestrictedValues: defaultRestrictedValues,
		IntendedValues:   defaultIntendedValues,
		AvoidClasses: map[string]struct{}{
			"motorway":    {},
			"trunk":       {},
			"motorroad":   {},
			"residential": {},
		},
		PreferClasses: map[string]struct{}{
			"primary":   {},
			"secondary": {},
			"tertiary":  {},
		},
		MaxPossibleSpeed:     120,
		SpeedTwoDirections:   true,
		BadSurfaceSpeed:      30,
		VehicleMaxSpeedTag:   "maxspeed:motorcycle",
		VehicleMaxSpeedScale: 0.9,
		DefaultFerrySpeed:    15,
		Capabilities:         CAPABILITY_PRIORITY | CAPABILITY_CURVATURE,
	}
}

// CarProfile returns profile for a regular car
func CarProfile() VehicleProfile {
	return VehicleProfile{
		Name:    "car",
		Version: 2,
		DefaultSpeeds: map[string]int{
			"motorway":       100,
			"motorway_link":  70,
			"motorroad":      90,
			"trunk":          70,
			"trunk_link":     65,
			"primary":        65,
			"primary_link":   60,
			"secondary":      60,
			"secondary_link": 50,
			"tertiary":       50,
			"tertiary_link":  40,
			"unclassified":   30,
			"residential":    30,
			"living_street":  5,
			"service":        20,
			"road":           20,
			"track":          15,
		},
		TrackTypeSpeeds: map[string]int{
			"grade1": 20,
			"grade2": 15,
			"grade3": 10,
			"grade4": 5,
			"grade5": 5,
		},
		Restrictions:     []string{"motorcar", "motor_vehicle", "vehicle", "access"},
		RestrictedValues: defaultRestrictedValues,
		IntendedValues:   defaultIntendedValues,
		AvoidClasses:     map[string]struct{}{},
		PreferClasses:    map[string]struct{}{},
		MaxPossibleSpeed: 140,
		BadSurfaceSpeed:  30,
		// there is no dedicated maxspeed:car tag in the wild
		VehicleMaxSpeedTag: "",
		DefaultFerrySpeed:  15,
	}
}
