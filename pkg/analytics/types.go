package analytics

import (
	"encoding/json"
	"math"
)

// Float is a float64 that encodes NaN and infinities as JSON null.
type Float float64

// IsFinite reports whether f is neither NaN nor infinite.
func (f Float) IsFinite() bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

func (f Float) MarshalJSON() ([]byte, error) {
	if !f.IsFinite() {
		return []byte("null"), nil
	}
	return json.Marshal(float64(f))
}

// Coord is a centroid position.
type Coord struct {
	X Float `json:"x"`
	Y Float `json:"y"`
}

// Bounds is an axis-aligned bounding box. NaN coordinates are ignored.
type Bounds struct {
	Min Coord `json:"min"`
	Max Coord `json:"max"`
}

// Orientation of the vertex traversal.
type Orientation string

const (
	OrientationCCW        Orientation = "counterclockwise"
	OrientationCW         Orientation = "clockwise"
	OrientationDegenerate Orientation = "degenerate"
)

// Properties holds the derived values for one polygon.
type Properties struct {
	Name        string      `json:"name"`
	Valid       bool        `json:"valid"`
	Kind        string      `json:"kind,omitempty"`
	Points      int         `json:"points"`
	Area        Float       `json:"area"`
	Centroid    Coord       `json:"centroid"`
	Bounds      *Bounds     `json:"bounds,omitempty"`
	Finite      bool        `json:"finite"`
	Orientation Orientation `json:"orientation,omitempty"`
}

// Summary aggregates a whole shape set.
type Summary struct {
	Count      int   `json:"count"`
	ValidCount int   `json:"valid_count"`
	TotalArea  Float `json:"total_area"`
	// Centroid is the area-weighted mean of the finite polygon centroids.
	Centroid Coord `json:"centroid"`
}
