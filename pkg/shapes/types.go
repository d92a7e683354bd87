package shapes

// ShapeSet is the top-level document of a shapes file.
type ShapeSet struct {
	Version  string     `yaml:"version,omitempty" json:"version,omitempty"`
	Polygons []ShapeDef `yaml:"polygons" json:"polygons"`
}

// ShapeDef is one named polygon. Vertices are a flat [x1, y1, x2, y2, ...]
// list and are not validated on load.
type ShapeDef struct {
	Name     string    `yaml:"name" json:"name"`
	Vertices []float64 `yaml:"vertices" json:"vertices"`
	// Area, when set, is passed to the centroid computation instead of
	// recomputing it. It must describe the same vertices.
	Area *float64 `yaml:"area,omitempty" json:"area,omitempty"`
}

// Format identifies a shapes file encoding.
type Format string

const (
	FormatYAML    Format = "yaml"
	FormatGeoJSON Format = "geojson"
)
