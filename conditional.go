package graphhopper

// ConditionalTagInspector answers whether conditional access tags
// (e.g. motorcycle:conditional = no @ (Oct-Mar)) override plain access
// classification of a way. Real implementations belong to the import
// pipeline, the encoder only consumes the verdicts.
type ConditionalTagInspector interface {
	// IsRestrictedWayConditionallyPermitted reports whether a way denied by
	// plain restriction tags is still permitted by its conditional tags
	IsRestrictedWayConditionallyPermitted(way *Way) bool
	// IsPermittedWayConditionallyRestricted reports whether an otherwise
	// accepted way is denied by its conditional tags
	IsPermittedWayConditionallyRestricted(way *Way) bool
}

// noConditionalInspector ignores conditional tags completely
type noConditionalInspector struct{}

func (noConditionalInspector) IsRestrictedWayConditionallyPermitted(way *Way) bool {
	return false
}

func (noConditionalInspector) IsPermittedWayConditionallyRestricted(way *Way) bool {
	return false
}
