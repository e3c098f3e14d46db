package graphhopper

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/paulmach/osm"
)

// Way is tagged road/path segment from source map data, before it becomes
// graph edges
type Way struct {
	ID     osm.WayID
	TagMap osm.Tags
}

// Tag returns value of given tag or empty string if the tag is not set
func (way *Way) Tag(key string) string {
	return way.TagMap.Find(key)
}

// HasTag reports whether given tag is set
func (way *Way) HasTag(key string) bool {
	return way.Tag(key) != ""
}

// HasTagValue reports whether given tag is set to given value
func (way *Way) HasTagValue(key, value string) bool {
	return way.Tag(key) == value
}

// HasTagInSet reports whether value of given tag belongs to given set of values
func (way *Way) HasTagInSet(key string, values map[string]struct{}) bool {
	_, ok := values[way.Tag(key)]
	return ok
}

// FirstRestrictionValue returns value of the most specific restriction tag.
// Restriction keys have to be ordered most specific first (e.g. "motorcycle"
// before "motor_vehicle" before "access").
func (way *Way) FirstRestrictionValue(restrictions []string) string {
	for _, restriction := range restrictions {
		if value := way.Tag(restriction); value != "" {
			return value
		}
	}
	return ""
}

// IsFerry reports whether the way is a part of ferry-like route
func (way *Way) IsFerry() bool {
	return way.HasTagInSet("route", ferryRouteValues)
}

var (
	mphRegExp = regexp.MustCompile(`^(\d+\.?\d*)\s*mph$`)
	kmhRegExp = regexp.MustCompile(`^(\d+\.?\d*)(?:\s*km/h)?$`)
)

const (
	mphMultiplier = 1.60934
	// Speed assumed for `maxspeed` = none (no legal limit)
	unlimitedSpeed = 140.0
	walkingSpeed   = 5.0
)

// parseSpeed extracts speed in km/h from raw tag value. Unparsable or missing
// value is reported as -1 and should be treated as "tag is absent" by the
// caller falling back to documented defaults.
func parseSpeed(tagValue string, verbose bool) float64 {
	if tagValue == "" {
		return -1
	}
	switch tagValue {
	case "none":
		return unlimitedSpeed
	case "walk":
		return walkingSpeed
	}
	if match := mphRegExp.FindStringSubmatch(tagValue); match != nil {
		value, err := strconv.ParseFloat(match[1], 64)
		if err == nil {
			return value * mphMultiplier
		}
	}
	if match := kmhRegExp.FindStringSubmatch(tagValue); match != nil {
		value, err := strconv.ParseFloat(match[1], 64)
		if err == nil {
			return value
		}
	}
	if verbose {
		fmt.Printf("[WARNING]: Provided speed tag value should be numeric (km/h or mph). Got '%s'\n", tagValue)
	}
	return -1
}

// parseNonNegativeFloat extracts plain non-negative number (e.g. meters or
// seconds) from raw tag value, -1 on missing or unparsable one
func parseNonNegativeFloat(tagValue string) float64 {
	if tagValue == "" {
		return -1
	}
	value, err := strconv.ParseFloat(tagValue, 64)
	if err != nil || value < 0 {
		return -1
	}
	return value
}
