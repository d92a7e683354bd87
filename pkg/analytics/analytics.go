package analytics

import (
	"fmt"

	"github.com/k-lessa/polyprops/pkg/geo"
	"github.com/k-lessa/polyprops/pkg/shapes"
	"github.com/k-lessa/polyprops/pkg/validation"
)

// Compute validates v and returns its area and centroid. A non-nil area is
// handed to the centroid computation unchanged.
func Compute(name string, v []float64, area *float64) (Properties, error) {
	p, err := geo.NewPolygon(v)
	if err != nil {
		return Properties{Name: name, Kind: geo.Kind(err), Points: len(v) / 2}, err
	}

	a := p.Area()
	if area == nil {
		area = &a
	}
	c := p.CentroidPoint(area)
	lo, hi := p.BoundingBox()
	props := Properties{
		Name:     name,
		Valid:    true,
		Points:   p.Len(),
		Area:     Float(a),
		Centroid: Coord{X: Float(c.X), Y: Float(c.Y)},
		Bounds: &Bounds{
			Min: Coord{X: Float(lo.X), Y: Float(lo.Y)},
			Max: Coord{X: Float(hi.X), Y: Float(hi.Y)},
		},
		Finite:      c.IsFinite() && Float(a).IsFinite(),
		Orientation: orientation(p.SignedArea()),
	}
	return props, nil
}

func orientation(signed float64) Orientation {
	switch {
	case signed > 0:
		return OrientationCCW
	case signed < 0:
		return OrientationCW
	}
	return OrientationDegenerate
}

// Resolve computes properties for every polygon in the set.
// Invalid polygons are kept in the output with Valid=false; the returned
// report carries the reason along with warnings for degenerate input.
func Resolve(set *shapes.ShapeSet) ([]Properties, *Summary, *validation.Report) {
	report := validation.NewReport()
	props := make([]Properties, 0, len(set.Polygons))

	for _, def := range set.Polygons {
		report.Merge(validation.CheckPolygon(fmt.Sprintf("%s.vertices", def.Name), def.Vertices))
		// The report already carries the validation error.
		pr, _ := Compute(def.Name, def.Vertices, def.Area)
		props = append(props, pr)
	}

	return props, summarize(props), report
}

func summarize(props []Properties) *Summary {
	s := &Summary{Count: len(props)}
	var total, wx, wy float64
	for _, p := range props {
		if !p.Valid {
			continue
		}
		s.ValidCount++
		if !p.Finite {
			continue
		}
		a := float64(p.Area)
		total += a
		wx += a * float64(p.Centroid.X)
		wy += a * float64(p.Centroid.Y)
	}
	s.TotalArea = Float(total)
	s.Centroid = Coord{X: Float(wx / total), Y: Float(wy / total)}
	return s
}
