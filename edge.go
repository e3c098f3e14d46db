package graphhopper

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

type EdgeID int64

// GraphEdge is one directed traversal of a stored edge. Forward and reverse
// views of the same edge share single flags storage: the view resolves
// direction-aware fields itself, callers never specify direction explicitly.
type GraphEdge struct {
	id       EdgeID
	baseNode osm.NodeID
	adjNode  osm.NodeID
	distance float64
	flags    Flags
	geom     orb.LineString
	name     string
	reverse  bool
}

// NewGraphEdge creates forward view of an edge over given flags storage
func NewGraphEdge(id EdgeID, baseNode, adjNode osm.NodeID, distance float64, flags Flags) *GraphEdge {
	return &GraphEdge{
		id:       id,
		baseNode: baseNode,
		adjNode:  adjNode,
		distance: distance,
		flags:    flags,
	}
}

// ID returns edge identifier shared by both directed views
func (edge *GraphEdge) ID() EdgeID {
	return edge.id
}

// BaseNode returns node the traversal starts from
func (edge *GraphEdge) BaseNode() osm.NodeID {
	return edge.baseNode
}

// AdjNode returns node the traversal ends at
func (edge *GraphEdge) AdjNode() osm.NodeID {
	return edge.adjNode
}

// Distance returns length of the edge in meters
func (edge *GraphEdge) Distance() float64 {
	return edge.distance
}

// SetDistance updates length of the edge in meters
func (edge *GraphEdge) SetDistance(distance float64) *GraphEdge {
	edge.distance = distance
	return edge
}

// Flags returns shared flags storage of the edge. Mutating it through field
// descriptors is visible to every view of the edge.
func (edge *GraphEdge) Flags() Flags {
	return edge.flags
}

// Name returns road name of the edge
func (edge *GraphEdge) Name() string {
	return edge.name
}

// SetName updates road name of the edge
func (edge *GraphEdge) SetName(name string) *GraphEdge {
	edge.name = name
	return edge
}

// WayGeometry returns copy of intermediate (pillar) points of the edge in
// traversal order of this view, endpoints excluded
func (edge *GraphEdge) WayGeometry() orb.LineString {
	geom := make(orb.LineString, len(edge.geom))
	copy(geom, edge.geom)
	return geom
}

// SetWayGeometry stores intermediate points of the edge given in traversal
// order of this view, without base and adjacent nodes
func (edge *GraphEdge) SetWayGeometry(geom orb.LineString) *GraphEdge {
	edge.geom = make(orb.LineString, len(geom))
	copy(edge.geom, geom)
	return edge
}

// GetBool reads boolean field resolved along view direction
func (edge *GraphEdge) GetBool(field *BoolEncodedValue) bool {
	return field.GetBool(edge.reverse, edge.flags)
}

// GetBoolReverse reads boolean field resolved against view direction
func (edge *GraphEdge) GetBoolReverse(field *BoolEncodedValue) bool {
	return field.GetBool(!edge.reverse, edge.flags)
}

// SetBool writes boolean field resolved along view direction
func (edge *GraphEdge) SetBool(field *BoolEncodedValue, value bool) *GraphEdge {
	field.SetBool(edge.reverse, edge.flags, value)
	return edge
}

// SetBoolReverse writes boolean field resolved against view direction
func (edge *GraphEdge) SetBoolReverse(field *BoolEncodedValue, value bool) *GraphEdge {
	field.SetBool(!edge.reverse, edge.flags, value)
	return edge
}

// GetInt reads integer field resolved along view direction
func (edge *GraphEdge) GetInt(field *IntEncodedValue) int {
	return field.GetInt(edge.reverse, edge.flags)
}

// GetIntReverse reads integer field resolved against view direction
func (edge *GraphEdge) GetIntReverse(field *IntEncodedValue) int {
	return field.GetInt(!edge.reverse, edge.flags)
}

// SetInt writes integer field resolved along view direction
func (edge *GraphEdge) SetInt(field *IntEncodedValue, value int) error {
	return field.SetInt(edge.reverse, edge.flags, value)
}

// SetIntReverse writes integer field resolved against view direction
func (edge *GraphEdge) SetIntReverse(field *IntEncodedValue, value int) error {
	return field.SetInt(!edge.reverse, edge.flags, value)
}

// GetDecimal reads decimal field resolved along view direction
func (edge *GraphEdge) GetDecimal(field *DecimalEncodedValue) float64 {
	return field.GetDecimal(edge.reverse, edge.flags)
}

// GetDecimalReverse reads decimal field resolved against view direction
func (edge *GraphEdge) GetDecimalReverse(field *DecimalEncodedValue) float64 {
	return field.GetDecimal(!edge.reverse, edge.flags)
}

// SetDecimal writes decimal field resolved along view direction
func (edge *GraphEdge) SetDecimal(field *DecimalEncodedValue, value float64) error {
	return field.SetDecimal(edge.reverse, edge.flags, value)
}

// SetDecimalReverse writes decimal field resolved against view direction
func (edge *GraphEdge) SetDecimalReverse(field *DecimalEncodedValue, value float64) error {
	return field.SetDecimal(!edge.reverse, edge.flags, value)
}

// GetString reads string field resolved along view direction
func (edge *GraphEdge) GetString(field *StringEncodedValue) string {
	return field.GetString(edge.reverse, edge.flags)
}

// SetString writes string field resolved along view direction
func (edge *GraphEdge) SetString(field *StringEncodedValue, value string) error {
	return field.SetString(edge.reverse, edge.flags, value)
}

// Detach clones the view. With reverse = true the clone traverses the edge in
// the opposite direction: base and adjacent nodes are swapped, geometry order
// is reversed and direction-aware fields resolve to the opposite sub-ranges.
// Underlying flags storage stays shared and is never mutated by detaching.
func (edge *GraphEdge) Detach(reverse bool) *GraphEdge {
	detached := *edge
	detached.geom = make(orb.LineString, len(edge.geom))
	if reverse {
		detached.baseNode, detached.adjNode = edge.adjNode, edge.baseNode
		for i, point := range edge.geom {
			detached.geom[len(edge.geom)-1-i] = point
		}
		detached.reverse = !edge.reverse
	} else {
		copy(detached.geom, edge.geom)
	}
	return &detached
}

// CopyPropertiesTo copies distance, flags storage reference, geometry and name
// into given edge. Node identity of the target is never changed.
func (edge *GraphEdge) CopyPropertiesTo(other *GraphEdge) *GraphEdge {
	other.distance = edge.distance
	other.flags = edge.flags
	other.geom = make(orb.LineString, len(edge.geom))
	copy(other.geom, edge.geom)
	other.name = edge.name
	return other
}
