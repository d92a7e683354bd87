package geo

import (
	"errors"
	"fmt"
	"math"
)

// MinCoords is the smallest flat vertex sequence that describes a polygon.
const MinCoords = 6

var (
	// ErrInvalidShape is returned when the flat sequence has an odd length.
	ErrInvalidShape = errors.New("vertices must be a flat list of x, y pairs")
	// ErrInsufficientVertices is returned for fewer than 3 points.
	ErrInsufficientVertices = errors.New("a polygon needs at least 3 vertices")
	// ErrNegativeVertex is reported by the centroid core when it is handed
	// coordinates outside the non-negative quadrant.
	ErrNegativeVertex = errors.New("centroid core received a negative coordinate")
)

// Error kinds, as reported by Kind.
const (
	KindInvalidShape         = "invalid_shape"
	KindInsufficientVertices = "insufficient_vertices"
	KindNegativeVertex       = "negative_vertex"
)

// ValidateVertices checks that v is a flat [x1, y1, x2, y2, ...] sequence
// of at least three points. Coordinate values are not inspected.
func ValidateVertices(v []float64) error {
	n := len(v)
	if n%2 != 0 {
		return fmt.Errorf("%w: got %d values", ErrInvalidShape, n)
	}
	if n < MinCoords {
		return fmt.Errorf("%w: got %d", ErrInsufficientVertices, n/2)
	}
	return nil
}

// Kind maps an error from this package to a short stable identifier.
// It returns "" for nil and for errors not produced here.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidShape):
		return KindInvalidShape
	case errors.Is(err, ErrInsufficientVertices):
		return KindInsufficientVertices
	case errors.Is(err, ErrNegativeVertex):
		return KindNegativeVertex
	}
	return ""
}

// Bounds returns the per-axis minimum and maximum over all points of v.
// NaN coordinates are ignored; an axis with no ordered values reports
// +Inf as its minimum and -Inf as its maximum.
func Bounds(v []float64) (Point2D, Point2D) {
	lo := Pt(math.Inf(1), math.Inf(1))
	hi := Pt(math.Inf(-1), math.Inf(-1))
	for i := 0; i+1 < len(v); i += 2 {
		x, y := v[i], v[i+1]
		if x < lo.X {
			lo.X = x
		}
		if y < lo.Y {
			lo.Y = y
		}
		if x > hi.X {
			hi.X = x
		}
		if y > hi.Y {
			hi.Y = y
		}
	}
	return lo, hi
}

// HasNonFinite reports whether any coordinate is NaN or infinite.
func HasNonFinite(v []float64) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return true
		}
	}
	return false
}
