package geo

import (
	"fmt"
	"math"
)

// Centroid returns the centroid of the polygon interior described by the
// validated flat sequence v, using the Bourke & Nürnberg formula.
//
// If area is non-nil it is used instead of recomputing Area(v). Area is
// translation invariant, so the value stays valid on the shifted path, but
// it must belong to the same vertex set.
//
// Polygons reaching below either axis are translated into the
// non-negative quadrant on a private copy, and the result is translated
// back. v itself is never modified. A zero-area polygon yields NaN or
// infinite coordinates.
func Centroid(v []float64, area *float64) (float64, float64) {
	c := centroidPoint(v, area)
	return c.X, c.Y
}

func centroidPoint(v []float64, area *float64) Point2D {
	lo, _ := Bounds(v)
	if lo.X >= 0 && lo.Y >= 0 {
		return mustCentroidCore(v, area)
	}

	var shift Point2D
	shifted := append([]float64(nil), v...)
	if lo.X < 0 {
		shift.X = math.Abs(lo.X)
		shiftX(shifted, shift.X)
	}
	if lo.Y < 0 {
		shift.Y = math.Abs(lo.Y)
		shiftY(shifted, shift.Y)
	}
	return mustCentroidCore(shifted, area).Sub(shift)
}

// shiftX adds dx to every x coordinate of the owned sequence v.
func shiftX(v []float64, dx float64) {
	for i := 0; i < len(v); i += 2 {
		v[i] += dx
	}
}

// shiftY adds dy to every y coordinate of the owned sequence v.
func shiftY(v []float64, dy float64) {
	for i := 1; i < len(v); i += 2 {
		v[i] += dy
	}
}

// mustCentroidCore panics if the shift wrapper let a negative coordinate
// through. Bounds ignores NaN, so x+|min| >= 0 holds for every ordered x.
func mustCentroidCore(v []float64, area *float64) Point2D {
	c, err := centroidCore(v, area)
	if err != nil {
		panic(fmt.Sprintf("geo: %v", err))
	}
	return c
}

// centroidCore is only defined for the non-negative quadrant.
func centroidCore(v []float64, area *float64) (Point2D, error) {
	var a float64
	if area != nil {
		a = *area
	} else {
		a = Area(v)
	}

	var sx, sy float64
	n := len(v)
	for i := 0; i+1 < n; i += 2 {
		x1, y1 := v[i], v[i+1]
		x2, y2 := v[(i+2)%n], v[(i+3)%n]
		if x1 < 0 || y1 < 0 || x2 < 0 || y2 < 0 {
			return Point2D{}, fmt.Errorf("%w: edge %d", ErrNegativeVertex, i/2)
		}
		cross := x1*y2 - x2*y1
		sx += (x1 + x2) * cross
		sy += (y1 + y2) * cross
	}

	f := 6 * a
	return Pt(math.Abs(sx/f), math.Abs(sy/f)), nil
}
