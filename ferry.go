package graphhopper

// Padding applied to trip speed computed from schedule duration: boarding and
// unboarding take a part of the declared duration
const ferryTripSpeedPadding = 1.4

// ferrySpeed estimates speed (km/h) of a ferry way. When both schedule
// duration and estimated route length are known the trip speed is derived
// from them, otherwise the profile cruise default is assumed. The result
// always stays within the storable speed range.
func (encoder *FlagEncoder) ferrySpeed(way *Way) float64 {
	speed := float64(encoder.defaultFerrySpeed)
	durationSeconds := parseNonNegativeFloat(way.Tag("duration:seconds"))
	distanceMeters := parseNonNegativeFloat(way.Tag("estimated_distance"))
	if durationSeconds > 0 && distanceMeters > 0 {
		speed = (distanceMeters / 1000) / (durationSeconds / 3600) / ferryTripSpeedPadding
	}
	if speed > float64(encoder.maxPossibleSpeed) {
		speed = float64(encoder.maxPossibleSpeed)
	}
	// never store zero speed for an accessible edge
	if speed < encoder.speedFactor {
		speed = encoder.speedFactor
	}
	return speed
}
