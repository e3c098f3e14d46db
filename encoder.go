package graphhopper

import (
	"github.com/pkg/errors"
)

const (
	priorityBits  = 3
	curvatureBits = 4
)

// FlagEncoder converts tagged ways of a single vehicle class into packed edge
// flags and decodes them back. It is constructed once per routing profile
// before the import starts and is immutable afterwards, so any number of
// parallel route searches may share it.
type FlagEncoder struct {
	name                 string
	version              int
	speedBits            uint32
	speedFactor          float64
	maxPossibleSpeed     int
	maxTurnCosts         int
	blockFords           bool
	allowAllTrackGrades  bool
	speedTwoDirections   bool
	badSurfaceSpeed      int
	vehicleMaxSpeedTag   string
	vehicleMaxSpeedScale float64
	defaultFerrySpeed    int
	capabilities         Capability
	verbose              bool

	restrictions     []string
	restrictedValues map[string]struct{}
	intendedValues   map[string]struct{}
	avoidClasses     map[string]struct{}
	preferClasses    map[string]struct{}
	defaultSpeeds    map[string]int
	trackTypeSpeeds  map[string]int

	conditional ConditionalTagInspector

	accessEnc     *BoolEncodedValue
	speedEnc      *DecimalEncodedValue
	roundaboutEnc *BoolEncodedValue
	priorityEnc   *DecimalEncodedValue
	curvatureEnc  *IntEncodedValue
}

// WithConditionalTagInspector overrides conditional access tags handling
func WithConditionalTagInspector(inspector ConditionalTagInspector) func(*FlagEncoder) {
	return func(encoder *FlagEncoder) {
		encoder.conditional = inspector
	}
}

// WithVerbose enables warnings about malformed tag values
func WithVerbose(verbose bool) func(*FlagEncoder) {
	return func(encoder *FlagEncoder) {
		encoder.verbose = verbose
	}
}

// NewFlagEncoder builds encoder for given vehicle profile and registers its
// bit fields in the registry. Recognized properties (with defaults):
// speed_bits (5), speed_factor (5), turn_costs (false), block_fords (true).
// Registration assigns bit offsets, therefore encoders must be constructed
// sequentially and strictly before any way is encoded.
func NewFlagEncoder(profile VehicleProfile, properties Properties, registry *EncodingRegistry, options ...func(*FlagEncoder)) (*FlagEncoder, error) {
	speedBits := properties.GetInt("speed_bits", 5)
	if speedBits < 1 || speedBits > flagsWordBits {
		return nil, errors.Wrapf(ErrLayoutConflict, "encoder '%s': invalid speed_bits %d", profile.Name, speedBits)
	}
	maxTurnCosts := 0
	if properties.GetBool("turn_costs", false) {
		maxTurnCosts = 1
	}
	encoder := &FlagEncoder{
		name:                 profile.Name,
		version:              profile.Version,
		speedBits:            uint32(speedBits),
		speedFactor:          properties.GetFloat("speed_factor", 5),
		maxPossibleSpeed:     profile.MaxPossibleSpeed,
		maxTurnCosts:         maxTurnCosts,
		blockFords:           properties.GetBool("block_fords", true),
		allowAllTrackGrades:  profile.AllowAllTrackGrades,
		speedTwoDirections:   profile.SpeedTwoDirections,
		badSurfaceSpeed:      profile.BadSurfaceSpeed,
		vehicleMaxSpeedTag:   profile.VehicleMaxSpeedTag,
		vehicleMaxSpeedScale: profile.VehicleMaxSpeedScale,
		defaultFerrySpeed:    profile.DefaultFerrySpeed,
		capabilities:         profile.Capabilities,
		restrictions:         profile.Restrictions,
		restrictedValues:     profile.RestrictedValues,
		intendedValues:       profile.IntendedValues,
		avoidClasses:         profile.AvoidClasses,
		preferClasses:        profile.PreferClasses,
		defaultSpeeds:        profile.DefaultSpeeds,
		trackTypeSpeeds:      profile.TrackTypeSpeeds,
		conditional:          noConditionalInspector{},
	}
	for _, option := range options {
		option(encoder)
	}
	for class := range profile.AvoidClasses {
		if _, ok := profile.PreferClasses[class]; ok {
			return nil, errors.Errorf("encoder '%s': road class '%s' is listed as both avoided and preferred", profile.Name, class)
		}
	}
	if err := encoder.createEncodedValues(registry); err != nil {
		return nil, err
	}
	registry.registerVersion(encoder.name, encoder.version)
	return encoder, nil
}

// createEncodedValues defines the place of every field of the encoder inside
// edge flags
func (encoder *FlagEncoder) createEncodedValues(registry *EncodingRegistry) error {
	encoder.accessEnc = NewBoolEncodedValue(encoder.name+".access", true)
	if err := registry.Register(encoder.accessEnc); err != nil {
		return err
	}
	encoder.speedEnc = NewDecimalEncodedValue(encoder.name+".average_speed", encoder.speedBits, encoder.speedFactor, encoder.speedTwoDirections)
	if err := registry.Register(encoder.speedEnc); err != nil {
		return err
	}
	if float64(encoder.maxPossibleSpeed) > encoder.speedEnc.MaxDecimal() {
		return errors.Wrapf(ErrLayoutConflict, "encoder '%s': max possible speed %d does not fit into %d bits with factor %f",
			encoder.name, encoder.maxPossibleSpeed, encoder.speedBits, encoder.speedFactor)
	}
	encoder.roundaboutEnc = NewBoolEncodedValue(encoder.name+".roundabout", false)
	if err := registry.Register(encoder.roundaboutEnc); err != nil {
		return err
	}
	if encoder.Supports(CAPABILITY_PRIORITY) {
		encoder.priorityEnc = NewDecimalEncodedValue(encoder.name+".priority", priorityBits, 1.0/float64(PRIORITY_BEST), false)
		if err := registry.Register(encoder.priorityEnc); err != nil {
			return err
		}
	}
	if encoder.Supports(CAPABILITY_CURVATURE) {
		encoder.curvatureEnc = NewIntEncodedValue(encoder.name+".curvature", curvatureBits, false)
		if err := registry.Register(encoder.curvatureEnc); err != nil {
			return err
		}
	}
	return nil
}

// Name returns vehicle class name of the encoder
func (encoder *FlagEncoder) Name() string {
	return encoder.name
}

// Version returns layout/logic version of the encoder. It grows monotonically:
// any change of bit layout, fields semantics or acceptance logic bumps it.
func (encoder *FlagEncoder) Version() int {
	return encoder.version
}

// MaxTurnCosts returns number of turn cost values the profile may store
func (encoder *FlagEncoder) MaxTurnCosts() int {
	return encoder.maxTurnCosts
}

// Supports reports whether encoded fields satisfy given weighting capability
func (encoder *FlagEncoder) Supports(capability Capability) bool {
	return encoder.capabilities&capability != 0
}

// AccessField returns directional accessibility field descriptor
func (encoder *FlagEncoder) AccessField() *BoolEncodedValue {
	return encoder.accessEnc
}

// SpeedField returns average speed field descriptor
func (encoder *FlagEncoder) SpeedField() *DecimalEncodedValue {
	return encoder.speedEnc
}

// RoundaboutField returns roundabout membership field descriptor
func (encoder *FlagEncoder) RoundaboutField() *BoolEncodedValue {
	return encoder.roundaboutEnc
}

// PriorityField returns priority field descriptor, nil if the capability is not supported
func (encoder *FlagEncoder) PriorityField() *DecimalEncodedValue {
	return encoder.priorityEnc
}

// CurvatureField returns curvature field descriptor, nil if the capability is not supported
func (encoder *FlagEncoder) CurvatureField() *IntEncodedValue {
	return encoder.curvatureEnc
}

// HandleWayTags encodes the accepted way into given flags. For a regular way
// base speed comes from the road class table refined by speed limit tags and
// surface; directionality follows oneway/junction tags. A ferry way gets
// duration-derived speed in both directions. Curvature field is initialized
// with its maximum sentinel meaning "not computed yet": ApplyWayTags refines
// it once edge geometry is known.
func (encoder *FlagEncoder) HandleWayTags(flags Flags, way *Way, allowed Access, priorityFromRelation PriorityCode) (Flags, error) {
	if !allowed.IsAccepted() {
		return flags, nil
	}
	if !allowed.IsFerry() {
		speed := encoder.waySpeed(way)

		isRoundabout := way.HasTagInSet("junction", junctionRoundaboutValues)
		if isRoundabout {
			encoder.roundaboutEnc.SetBool(false, flags, true)
		}

		if way.HasTagInSet("oneway", onewayReversible) {
			// reversible ways serve single direction at a time depending on
			// schedule unknown here, keep the edge blocked entirely
		} else if way.HasTagInSet("oneway", onewayValues) || isRoundabout {
			if way.HasTagValue("oneway", "-1") {
				if err := encoder.setClampedSpeed(true, flags, speed); err != nil {
					return flags, err
				}
				encoder.accessEnc.SetBool(true, flags, true)
			} else {
				if err := encoder.setClampedSpeed(false, flags, speed); err != nil {
					return flags, err
				}
				encoder.accessEnc.SetBool(false, flags, true)
			}
		} else {
			if err := encoder.setClampedSpeed(false, flags, speed); err != nil {
				return flags, err
			}
			if err := encoder.setClampedSpeed(true, flags, speed); err != nil {
				return flags, err
			}
			encoder.accessEnc.SetBool(false, flags, true)
			encoder.accessEnc.SetBool(true, flags, true)
		}
	} else {
		ferrySpeed := encoder.ferrySpeed(way)
		if err := encoder.setClampedSpeed(false, flags, ferrySpeed); err != nil {
			return flags, err
		}
		if err := encoder.setClampedSpeed(true, flags, ferrySpeed); err != nil {
			return flags, err
		}
		encoder.accessEnc.SetBool(false, flags, true)
		encoder.accessEnc.SetBool(true, flags, true)
	}

	if encoder.priorityEnc != nil {
		priority := encoder.handlePriority(way, priorityFromRelation)
		if err := encoder.priorityEnc.SetInt(false, flags, int(priority)); err != nil {
			return flags, err
		}
	}
	if encoder.curvatureEnc != nil {
		if err := encoder.curvatureEnc.SetInt(false, flags, curvatureMax); err != nil {
			return flags, err
		}
	}
	return flags, nil
}

// waySpeed derives speed (km/h) of a non-ferry way from its tags:
//  1. base speed by road class (refined by track grade for tracks);
//  2. clamp by `maxspeed` tag when lower;
//  3. clamp by vehicle specific limit tag scaled cautiously when lower still;
//  4. cap on degraded surface.
func (encoder *FlagEncoder) waySpeed(way *Way) float64 {
	highwayValue := way.Tag("highway")
	speed := float64(encoder.defaultSpeeds[highwayValue])
	if highwayValue == "track" {
		if trackType := way.Tag("tracktype"); trackType != "" {
			if trackSpeed, ok := encoder.trackTypeSpeeds[trackType]; ok {
				speed = float64(trackSpeed)
			}
		}
	}

	if maxSpeed := parseSpeed(way.Tag("maxspeed"), encoder.verbose); maxSpeed > 0 && maxSpeed < speed {
		speed = maxSpeed
	}
	if encoder.vehicleMaxSpeedTag != "" {
		if vehicleMaxSpeed := parseSpeed(way.Tag(encoder.vehicleMaxSpeedTag), encoder.verbose); vehicleMaxSpeed > 0 && vehicleMaxSpeed < speed {
			speed = vehicleMaxSpeed * encoder.vehicleMaxSpeedScale
		}
	}

	if encoder.badSurfaceSpeed > 0 && speed > float64(encoder.badSurfaceSpeed) && way.HasTagInSet("surface", badSurfaceValues) {
		speed = float64(encoder.badSurfaceSpeed)
	}
	return speed
}

// setClampedSpeed stores directional speed clamping it by the profile maximum
func (encoder *FlagEncoder) setClampedSpeed(reverse bool, flags Flags, speed float64) error {
	if speed > float64(encoder.maxPossibleSpeed) {
		speed = float64(encoder.maxPossibleSpeed)
	}
	return encoder.speedEnc.SetDecimal(reverse, flags, speed)
}

// Speed decodes stored speed (km/h) for requested direction
func (encoder *FlagEncoder) Speed(reverse bool, flags Flags) float64 {
	return encoder.speedEnc.GetDecimal(reverse, flags)
}

// Accessible decodes stored accessibility for requested direction
func (encoder *FlagEncoder) Accessible(reverse bool, flags Flags) bool {
	return encoder.accessEnc.GetBool(reverse, flags)
}
