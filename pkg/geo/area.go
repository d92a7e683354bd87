package geo

import "math"

// SignedArea returns the signed area using the shoelace formula.
// Positive for counterclockwise winding, negative for clockwise.
// v is expected to be validated; the edge after the last point closes
// back to the first.
func SignedArea(v []float64) float64 {
	n := len(v)
	sum := 0.0
	for i := 0; i+1 < n; i += 2 {
		x1, y1 := v[i], v[i+1]
		x2, y2 := v[(i+2)%n], v[(i+3)%n]
		sum += x1*y2 - x2*y1
	}
	return sum / 2
}

// Area returns the unsigned area of the polygon described by v.
// Collinear or coincident points give 0.
func Area(v []float64) float64 {
	return math.Abs(SignedArea(v))
}

// IsCounterClockwise returns true if the points of v are in CCW order.
func IsCounterClockwise(v []float64) bool {
	return SignedArea(v) > 0
}
