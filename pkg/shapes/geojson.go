package shapes

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

var (
	errHoles         = errors.New("polygons with holes are not supported")
	errNotPolygon    = errors.New("geometry is not a Polygon")
	errNotPlanarXY   = errors.New("only 2D (XY) coordinates are supported")
	errShortExterior = errors.New("polygon has no exterior ring")
)

func parseGeoJSON(data []byte) (*ShapeSet, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("parsing shapes GeoJSON: %w", err)
	}

	set := &ShapeSet{}
	switch head.Type {
	case "FeatureCollection":
		var fc geojson.FeatureCollection
		if err := json.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("parsing shapes GeoJSON: %w", err)
		}
		for i, f := range fc.Features {
			def, err := featureToShape(f, fmt.Sprintf("features[%d]", i))
			if err != nil {
				return nil, err
			}
			set.Polygons = append(set.Polygons, def)
		}
	case "Feature":
		var f geojson.Feature
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parsing shapes GeoJSON: %w", err)
		}
		def, err := featureToShape(&f, "feature")
		if err != nil {
			return nil, err
		}
		set.Polygons = append(set.Polygons, def)
	default:
		var g geom.T
		if err := geojson.Unmarshal(data, &g); err != nil {
			return nil, fmt.Errorf("parsing shapes GeoJSON: %w", err)
		}
		v, err := FromGeom(g)
		if err != nil {
			return nil, fmt.Errorf("geometry: %w", err)
		}
		set.Polygons = append(set.Polygons, ShapeDef{Name: "geometry", Vertices: v})
	}
	return set, nil
}

func featureToShape(f *geojson.Feature, fallback string) (ShapeDef, error) {
	v, err := FromGeom(f.Geometry)
	if err != nil {
		return ShapeDef{}, fmt.Errorf("%s: %w", fallback, err)
	}
	def := ShapeDef{Name: fallback, Vertices: v}
	if name, ok := f.Properties["name"].(string); ok && name != "" {
		def.Name = name
	}
	if area, ok := f.Properties["area"].(float64); ok {
		def.Area = &area
	}
	return def, nil
}

// FromGeom extracts the exterior ring of a go-geom Polygon as a flat
// vertex list, dropping the closing point GeoJSON repeats.
func FromGeom(g geom.T) ([]float64, error) {
	p, ok := g.(*geom.Polygon)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", errNotPolygon, g)
	}
	if p.Layout() != geom.XY {
		return nil, fmt.Errorf("%w: got %v", errNotPlanarXY, p.Layout())
	}
	switch {
	case p.NumLinearRings() == 0:
		return nil, errShortExterior
	case p.NumLinearRings() > 1:
		return nil, errHoles
	}

	flat := p.LinearRing(0).FlatCoords()
	n := len(flat)
	if n >= 4 && flat[0] == flat[n-2] && flat[1] == flat[n-1] {
		flat = flat[:n-2]
	}
	return append([]float64(nil), flat...), nil
}

// ToGeom builds a closed go-geom Polygon from a flat vertex list.
func ToGeom(v []float64) *geom.Polygon {
	flat := append([]float64(nil), v...)
	if len(v) >= 2 {
		flat = append(flat, v[0], v[1])
	}
	return geom.NewPolygonFlat(geom.XY, flat, []int{len(flat)})
}

// Feature wraps a flat vertex list as a GeoJSON feature.
func Feature(name string, v []float64, props map[string]any) *geojson.Feature {
	properties := map[string]any{"name": name}
	for k, val := range props {
		properties[k] = val
	}
	return &geojson.Feature{
		Geometry:   ToGeom(v),
		Properties: properties,
	}
}

// MarshalFeatures encodes features as a GeoJSON FeatureCollection.
func MarshalFeatures(features []*geojson.Feature) ([]byte, error) {
	fc := &geojson.FeatureCollection{Features: features}
	data, err := json.Marshal(fc)
	if err != nil {
		return nil, fmt.Errorf("encoding GeoJSON: %w", err)
	}
	return data, nil
}
