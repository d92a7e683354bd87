package validation

import (
	"fmt"

	"github.com/k-lessa/polyprops/pkg/geo"
)

// CheckPolygon validates a flat vertex sequence found at path.
//
// Structural failures (odd length, fewer than three points) are errors.
// Values the geometry accepts but that give unusable results, such as
// NaN or infinite coordinates and zero area, are warnings.
func CheckPolygon(path string, v []float64) *Report {
	r := NewReport()

	if err := geo.ValidateVertices(v); err != nil {
		res := Result{
			Level:       LevelStructure,
			Kind:        geo.Kind(err),
			Message:     err.Error(),
			Path:        path,
			ActualValue: len(v),
		}
		switch geo.Kind(err) {
		case geo.KindInvalidShape:
			res.Expected = "even number of values"
			res.Suggestions = []string{"vertices are a flat list: [x1, y1, x2, y2, ...]"}
		case geo.KindInsufficientVertices:
			res.Expected = fmt.Sprintf(">= %d values", geo.MinCoords)
		}
		r.AddError(res)
		return r
	}

	if geo.HasNonFinite(v) {
		r.AddWarning(Result{
			Level:    LevelNumeric,
			Message:  "vertices contain NaN or infinite coordinates",
			Path:     path,
			Expected: "finite values",
		})
	}

	area := geo.Area(v)
	switch {
	case area == 0:
		r.AddWarning(Result{
			Level:       LevelGeometry,
			Message:     "polygon has zero area; centroid is undefined",
			Path:        path,
			ActualValue: area,
			Expected:    "> 0",
			Suggestions: []string{"check for collinear or repeated points"},
		})
	case geo.IsCounterClockwise(v):
		r.AddInfo(Result{Level: LevelGeometry, Message: "counterclockwise winding", Path: path})
	case geo.SignedArea(v) < 0:
		r.AddInfo(Result{Level: LevelGeometry, Message: "clockwise winding", Path: path})
	}

	return r
}
