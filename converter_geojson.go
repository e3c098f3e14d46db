package graphhopper

import (
	"fmt"

	geojson "github.com/paulmach/go.geojson"
	"github.com/paulmach/orb"
)

// PrepareGeoJSONLinestring returns GeoJSON representation of LineString
func PrepareGeoJSONLinestring(line orb.LineString) string {
	b, err := geojson.NewLineStringGeometry(linestringCoordinates(line)).MarshalJSON()
	if err != nil {
		fmt.Printf("Warning. Can not convert geometry to geojson format: %s", err.Error())
		return ""
	}
	return string(b)
}

// EdgeFeature returns GeoJSON feature of the edge carrying its decoded
// attributes as properties. Intended for debugging and visual inspection of
// encoded graphs.
func (encoder *FlagEncoder) EdgeFeature(edge *GraphEdge) *geojson.Feature {
	feature := geojson.NewFeature(geojson.NewLineStringGeometry(linestringCoordinates(edge.WayGeometry())))
	flags := edge.Flags()
	feature.SetProperty("edge_id", int64(edge.ID()))
	feature.SetProperty("name", edge.Name())
	feature.SetProperty("distance", edge.Distance())
	feature.SetProperty("speed", encoder.Speed(false, flags))
	feature.SetProperty("reverse_speed", encoder.Speed(true, flags))
	feature.SetProperty("forward", encoder.Accessible(false, flags))
	feature.SetProperty("backward", encoder.Accessible(true, flags))
	feature.SetProperty("roundabout", encoder.roundaboutEnc.GetBool(false, flags))
	if encoder.priorityEnc != nil {
		feature.SetProperty("priority", encoder.priorityEnc.GetDecimal(false, flags))
	}
	if encoder.curvatureEnc != nil {
		feature.SetProperty("curvature", encoder.curvatureEnc.GetInt(false, flags))
	}
	return feature
}

func linestringCoordinates(line orb.LineString) [][]float64 {
	coordinates := make([][]float64, len(line))
	for i := range line {
		coordinates[i] = []float64{line[i].Lon(), line[i].Lat()}
	}
	return coordinates
}
