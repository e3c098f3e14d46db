package graphhopper

const (
	// Maximum storable curvature value. Doubles as "not computed yet"
	// sentinel written by HandleWayTags, since value 10 also means the road
	// is perfectly straight.
	curvatureMax = 10
	// Stored speed (km/h) below this limit marks an in-town street which
	// gets no curvature bonus
	slowStreetSpeed = 51.0
	minBendiness    = 0.01
)

// ApplyWayTags computes derived curvature of an already encoded edge and
// stores it back into the shared flags. Bendiness is the ratio of straight
// line distance to road distance: small value means genuinely curvy road.
// It must run strictly after HandleWayTags for the same edge because stored
// speed is read back; distinct edges can be processed in parallel.
func (encoder *FlagEncoder) ApplyWayTags(way *Way, edge *GraphEdge) error {
	if encoder.curvatureEnc == nil {
		return nil
	}
	flags := edge.Flags()
	speed := encoder.speedEnc.GetDecimal(false, flags)
	roadDistance := edge.Distance()
	beeline := encoder.beelineDistance(way, edge)

	// unknown geometry gives no evidence of bendiness, treat the road as straight
	bendiness := 1.0
	if beeline > 0 && roadDistance > 0 {
		bendiness = beeline / roadDistance
	}
	bendiness = discriminateSlowStreets(bendiness, speed)
	bendiness = increaseBendinessImpact(bendiness)
	bendiness = correctErrors(bendiness)
	return encoder.curvatureEnc.SetInt(false, flags, convertToInt(bendiness))
}

// beelineDistance returns straight line distance (meters) between endpoints
// of the way. Explicit `estimated_distance` tag wins; otherwise stored way
// geometry approximates it (pillar points only, so slightly underestimated).
// Zero means the distance is unknown.
func (encoder *FlagEncoder) beelineDistance(way *Way, edge *GraphEdge) float64 {
	if distance := parseNonNegativeFloat(way.Tag("estimated_distance")); distance > 0 {
		return distance
	}
	return StraightLineDistance(edge.WayGeometry())
}

// discriminateSlowStreets drops the bonus for slow streets: those are not fun
// and probably in a town
func discriminateSlowStreets(bendiness, speed float64) float64 {
	if speed < slowStreetSpeed {
		return 1
	}
	return bendiness
}

// increaseBendinessImpact squares bendiness so that really curvy roads gain
// noticeably more than almost straight ones
func increaseBendinessImpact(bendiness float64) float64 {
	return bendiness * bendiness
}

// correctErrors treats bendiness outside of (0.01; 1] as measurement error:
// beeline is only approximated and on a straight road it can come out longer
// than the road itself
func correctErrors(bendiness float64) float64 {
	if bendiness < minBendiness || bendiness > 1 {
		return 1
	}
	return bendiness
}

func convertToInt(bendiness float64) int {
	return int(bendiness * 10)
}
