package geo

import "slices"

// Polygon holds a validated flat vertex sequence [x1, y1, x2, y2, ...].
// The stored sequence is always even in length with at least three points.
//
// A Polygon is not safe for concurrent use when SetVertices may run;
// callers sharing one must synchronize access themselves.
type Polygon struct {
	vertices []float64
}

// NewPolygon creates a polygon from a flat list of coordinates.
// The slice is copied; later changes to it do not affect the polygon.
func NewPolygon(vertices []float64) (*Polygon, error) {
	if err := ValidateVertices(vertices); err != nil {
		return nil, err
	}
	return &Polygon{vertices: slices.Clone(vertices)}, nil
}

// SetVertices replaces the stored vertices. On a validation error the
// polygon keeps its previous vertices.
func (p *Polygon) SetVertices(vertices []float64) error {
	if err := ValidateVertices(vertices); err != nil {
		return err
	}
	p.vertices = slices.Clone(vertices)
	return nil
}

// Vertices returns a copy of the flat vertex sequence.
func (p *Polygon) Vertices() []float64 {
	return slices.Clone(p.vertices)
}

// Len returns the number of points.
func (p *Polygon) Len() int {
	return len(p.vertices) / 2
}

// Area returns the unsigned area. Recomputed on every call.
func (p *Polygon) Area() float64 {
	return Area(p.vertices)
}

// SignedArea returns the signed area; see SignedArea.
func (p *Polygon) SignedArea() float64 {
	return SignedArea(p.vertices)
}

// Centroid returns the interior centroid. Pass a previously computed
// Area() to skip recomputing it, or nil.
func (p *Polygon) Centroid(area *float64) (float64, float64) {
	return Centroid(p.vertices, area)
}

// CentroidPoint is Centroid returned as a Point2D.
func (p *Polygon) CentroidPoint(area *float64) Point2D {
	return centroidPoint(p.vertices, area)
}

// BoundingBox returns the axis-aligned bounding box as (min, max).
func (p *Polygon) BoundingBox() (Point2D, Point2D) {
	return Bounds(p.vertices)
}
