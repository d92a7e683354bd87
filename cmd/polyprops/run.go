package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/k-lessa/polyprops/internal/logger"
	"github.com/k-lessa/polyprops/pkg/analytics"
	"github.com/k-lessa/polyprops/pkg/geo"
	"github.com/k-lessa/polyprops/pkg/shapes"
	"github.com/k-lessa/polyprops/pkg/validation"
)

var errInvalidInput = errors.New("input has invalid polygons")

// loadInput reads the shapes file if one is given, otherwise treats the
// positional arguments as a single flat vertex list.
func loadInput(in inputFlags, args []string) (*shapes.ShapeSet, error) {
	switch {
	case in.file != "" && len(args) > 0:
		return nil, fmt.Errorf("pass either --file or vertex arguments, not both")
	case in.file != "":
		set, err := shapes.Load(in.file)
		if err != nil {
			return nil, fmt.Errorf("loading shapes: %w", err)
		}
		logger.L().WithField("polygons", len(set.Polygons)).Debug("shapes loaded")
		return set, nil
	case len(args) > 0:
		v, err := shapes.ParseVertexArgs(args)
		if err != nil {
			return nil, err
		}
		return &shapes.ShapeSet{Polygons: []shapes.ShapeDef{{Name: "args", Vertices: v}}}, nil
	}
	return nil, fmt.Errorf("no input: pass --file or vertex arguments")
}

func runArea(w io.Writer, in inputFlags, args []string) error {
	set, err := loadInput(in, args)
	if err != nil {
		return err
	}
	var failed error
	for _, def := range set.Polygons {
		if err := geo.ValidateVertices(def.Vertices); err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", def.Name, err)
			failed = errInvalidInput
			continue
		}
		fmt.Fprintf(w, "%s\t%s\n", def.Name, formatFloat(geo.Area(def.Vertices)))
	}
	return failed
}

func runCentroid(w io.Writer, in inputFlags, args []string, area *float64) error {
	set, err := loadInput(in, args)
	if err != nil {
		return err
	}
	var failed error
	for _, def := range set.Polygons {
		p, err := geo.NewPolygon(def.Vertices)
		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", def.Name, err)
			failed = errInvalidInput
			continue
		}
		a := def.Area
		if area != nil {
			a = area
		}
		x, y := p.Centroid(a)
		fmt.Fprintf(w, "%s\t%s\t%s\n", def.Name, formatFloat(x), formatFloat(y))
		if !geo.Pt(x, y).IsFinite() {
			logger.L().WithField("polygon", def.Name).Warn("centroid is not finite; polygon has zero area")
		}
	}
	return failed
}

func runValidate(w io.Writer, in inputFlags, args []string) error {
	set, err := loadInput(in, args)
	if err != nil {
		return err
	}
	report := validation.NewReport()
	for _, def := range set.Polygons {
		report.Merge(validation.CheckPolygon(def.Name+".vertices", def.Vertices))
	}
	printValidationReport(w, report)
	if !report.Valid {
		return errInvalidInput
	}
	return nil
}

func runReport(w io.Writer, in inputFlags, args []string, asJSON bool) error {
	set, err := loadInput(in, args)
	if err != nil {
		return err
	}
	props, summary, report := analytics.Resolve(set)

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"polygons":   props,
			"summary":    summary,
			"validation": report,
		})
	}

	printPropertiesTable(w, props, summary)
	if len(report.Errors) > 0 || len(report.Warnings) > 0 {
		fmt.Fprintln(w)
		printValidationReport(w, report)
	}
	if !report.Valid {
		return errInvalidInput
	}
	return nil
}

func runExport(w io.Writer, in inputFlags, args []string) error {
	set, err := loadInput(in, args)
	if err != nil {
		return err
	}
	props, _, report := analytics.Resolve(set)
	if !report.Valid {
		printValidationReport(w, report)
		return errInvalidInput
	}

	features := make([]*geojson.Feature, 0, len(props))
	for i, p := range props {
		features = append(features, shapes.Feature(p.Name, set.Polygons[i].Vertices, map[string]any{
			"area":        p.Area,
			"centroid":    p.Centroid,
			"orientation": p.Orientation,
			"bounds":      p.Bounds,
		}))
	}
	data, err := shapes.MarshalFeatures(features)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
