package graphhopper

// PriorityCode is ordinal route preference bias, independent of speed.
// Greater value means "nicer to ride". Stored into 3-bit priority field with
// decimal factor 1/PRIORITY_BEST, so the best code always decodes as 1.0.
type PriorityCode int

const (
	PRIORITY_WORST              = PriorityCode(0)
	PRIORITY_AVOID_AT_ALL_COSTS = PriorityCode(1)
	PRIORITY_REACH_DESTINATION  = PriorityCode(2)
	PRIORITY_AVOID_IF_POSSIBLE  = PriorityCode(3)
	PRIORITY_UNCHANGED          = PriorityCode(4)
	PRIORITY_PREFER             = PriorityCode(5)
	PRIORITY_VERY_NICE          = PriorityCode(6)
	PRIORITY_BEST               = PriorityCode(7)
)

func (iotaIdx PriorityCode) String() string {
	return [...]string{"worst", "avoid_at_all_costs", "reach_destination", "avoid_if_possible", "unchanged", "prefer", "very_nice", "best"}[iotaIdx]
}

// handlePriority classifies the way by its road class only: classes from the
// avoid set are worst, classes from the prefer set are best, anything else is
// left unchanged. Relation-derived bias is reserved for route relations
// support and does not influence the result yet.
func (encoder *FlagEncoder) handlePriority(way *Way, priorityFromRelation PriorityCode) PriorityCode {
	highwayValue := way.Tag("highway")
	if _, ok := encoder.avoidClasses[highwayValue]; ok {
		return PRIORITY_WORST
	}
	if _, ok := encoder.preferClasses[highwayValue]; ok {
		return PRIORITY_BEST
	}
	return PRIORITY_UNCHANGED
}
