package graphhopper

import (
	"strings"
	"testing"

	"github.com/paulmach/orb"
)

func TestPrepareGeoJSONLinestring(t *testing.T) {
	line := orb.LineString{{37.1, 55.1}, {37.2, 55.2}}
	geojsonStr := PrepareGeoJSONLinestring(line)
	if !strings.Contains(geojsonStr, "LineString") {
		t.Errorf("GeoJSON must contain LineString type, but got '%s'", geojsonStr)
	}
}

func TestEdgeFeature(t *testing.T) {
	encoder, registry := newMotorcycleEncoder(t, Properties{})
	flags := encodeWay(t, encoder, registry, map[string]string{"highway": "secondary", "maxspeed": "45"})
	edge := NewGraphEdge(7, 100, 200, 1500, flags)
	edge.SetName("Main street")
	edge.SetWayGeometry(orb.LineString{{37.1, 55.1}, {37.2, 55.2}})

	feature := encoder.EdgeFeature(edge)
	if feature.Properties["speed"] != 45.0 {
		t.Errorf("Feature speed must be %f, but got %v", 45.0, feature.Properties["speed"])
	}
	if feature.Properties["name"] != "Main street" {
		t.Errorf("Feature name must be 'Main street', but got %v", feature.Properties["name"])
	}
	if feature.Properties["priority"] == nil || feature.Properties["curvature"] == nil {
		t.Errorf("Feature must carry priority and curvature of the motorcycle encoder")
	}
}
