package graphhopper

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// StraightLineDistance returns great circle distance (meters) between first
// and last points of the line ignoring everything in between
func StraightLineDistance(line orb.LineString) float64 {
	if len(line) < 2 {
		return 0
	}
	return geo.Distance(line[0], line[len(line)-1])
}

// RouteDistance returns length (meters) of the line along all of its points
func RouteDistance(line orb.LineString) float64 {
	var total float64
	for i := 1; i < len(line); i++ {
		total += geo.Distance(line[i-1], line[i])
	}
	return total
}
