package validation

import (
	"math"
	"testing"

	"github.com/k-lessa/polyprops/pkg/geo"
)

func TestCheckPolygonValid(t *testing.T) {
	r := CheckPolygon("polygons[0].vertices", []float64{0, 0, 1, 0, 1, 1})
	if !r.Valid {
		t.Fatalf("expected valid report, got %+v", r.Errors)
	}
	if len(r.Warnings) != 0 {
		t.Errorf("expected no warnings, got %d", len(r.Warnings))
	}
	if len(r.Info) != 1 || r.Info[0].Message != "counterclockwise winding" {
		t.Errorf("expected winding info, got %+v", r.Info)
	}
}

func TestCheckPolygonClockwise(t *testing.T) {
	r := CheckPolygon("p", []float64{1, 1, 1, 0, 0, 0})
	if len(r.Info) != 1 || r.Info[0].Message != "clockwise winding" {
		t.Errorf("expected clockwise info, got %+v", r.Info)
	}
}

func TestCheckPolygonOddLength(t *testing.T) {
	r := CheckPolygon("p", []float64{0, 0, 1, 0, 1})
	if r.Valid {
		t.Fatal("expected invalid report")
	}
	if len(r.Errors) != 1 {
		t.Fatalf("expected 1 error, got %d", len(r.Errors))
	}
	e := r.Errors[0]
	if e.Kind != geo.KindInvalidShape {
		t.Errorf("expected kind %q, got %q", geo.KindInvalidShape, e.Kind)
	}
	if e.Level != LevelStructure || e.Severity != SeverityError {
		t.Errorf("unexpected level/severity %s/%s", e.Level, e.Severity)
	}
	if e.ActualValue != 5 {
		t.Errorf("expected actual value 5, got %v", e.ActualValue)
	}
	if e.Path != "p" {
		t.Errorf("expected path p, got %s", e.Path)
	}
}

func TestCheckPolygonTooFew(t *testing.T) {
	r := CheckPolygon("p", []float64{0, 0, 1, 0})
	if r.Valid || len(r.Errors) != 1 || r.Errors[0].Kind != geo.KindInsufficientVertices {
		t.Fatalf("expected insufficient vertices error, got %+v", r.Errors)
	}
	if r.Errors[0].Expected != ">= 6 values" {
		t.Errorf("unexpected expectation %q", r.Errors[0].Expected)
	}
}

func TestCheckPolygonDegenerateWarns(t *testing.T) {
	r := CheckPolygon("p", []float64{0, 0, 1, 0, 2, 0})
	if !r.Valid {
		t.Fatal("collinear input is structurally valid")
	}
	if len(r.Warnings) != 1 || r.Warnings[0].Level != LevelGeometry {
		t.Errorf("expected one geometry warning, got %+v", r.Warnings)
	}
}

func TestCheckPolygonNonFiniteWarns(t *testing.T) {
	r := CheckPolygon("p", []float64{0, 0, math.Inf(1), 0, 1, 1})
	if !r.Valid {
		t.Fatal("non-finite input is structurally valid")
	}
	found := false
	for _, w := range r.Warnings {
		if w.Level == LevelNumeric {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a numeric warning, got %+v", r.Warnings)
	}
}
