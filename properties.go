package graphhopper

import (
	"strconv"
)

// Properties is raw key-value configuration of a routing profile. Malformed
// values fall back to provided defaults.
type Properties map[string]string

// GetString returns string value for given key or default one
func (properties Properties) GetString(key string, defaultValue string) string {
	if value, ok := properties[key]; ok {
		return value
	}
	return defaultValue
}

// GetInt returns integer value for given key or default one
func (properties Properties) GetInt(key string, defaultValue int) int {
	value, ok := properties[key]
	if !ok {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// GetFloat returns float value for given key or default one
func (properties Properties) GetFloat(key string, defaultValue float64) float64 {
	value, ok := properties[key]
	if !ok {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// GetBool returns boolean value for given key or default one
func (properties Properties) GetBool(key string, defaultValue bool) bool {
	value, ok := properties[key]
	if !ok {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
