package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/k-lessa/polyprops/pkg/analytics"
	"github.com/k-lessa/polyprops/pkg/validation"
)

func printValidationReport(w io.Writer, r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Fprintf(w, "ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Fprintf(w, "  [%s] %s\n", e.Level, e.Message)
			if e.Path != "" {
				fmt.Fprintf(w, "    -> %s = %v\n", e.Path, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Fprintf(w, "    expected: %s\n", e.Expected)
			}
			for _, s := range e.Suggestions {
				fmt.Fprintf(w, "    * %s\n", s)
			}
		}
		fmt.Fprintln(w)
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintf(w, "WARNINGS (%d):\n", len(r.Warnings))
		for _, wr := range r.Warnings {
			fmt.Fprintf(w, "  [%s] %s\n", wr.Level, wr.Message)
			if wr.Path != "" {
				fmt.Fprintf(w, "    -> %s\n", wr.Path)
			}
			for _, s := range wr.Suggestions {
				fmt.Fprintf(w, "    * %s\n", s)
			}
		}
		fmt.Fprintln(w)
	}

	if len(r.Info) > 0 {
		fmt.Fprintf(w, "INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Fprintf(w, "  [%s] %s: %s\n", i.Level, i.Path, i.Message)
		}
		fmt.Fprintln(w)
	}

	if r.Valid {
		fmt.Fprintf(w, "Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Fprintf(w, "Result: INVALID (%s)\n", r.Summary)
	}
}

func printPropertiesTable(w io.Writer, props []analytics.Properties, s *analytics.Summary) {
	fmt.Fprintf(w, "%-20s %8s %14s %14s %14s  %s\n",
		"Polygon", "Points", "Area", "Centroid X", "Centroid Y", "Orientation")
	fmt.Fprintf(w, "%-20s %8s %14s %14s %14s  %s\n",
		"--------------------", "--------", "--------------", "--------------", "--------------", "-----------")

	for _, p := range props {
		if !p.Valid {
			fmt.Fprintf(w, "%-20s %8d %14s %14s %14s  %s\n", p.Name, p.Points, "-", "-", "-", "invalid: "+p.Kind)
			continue
		}
		fmt.Fprintf(w, "%-20s %8d %14s %14s %14s  %s\n", p.Name, p.Points,
			formatFloat(float64(p.Area)),
			formatFloat(float64(p.Centroid.X)),
			formatFloat(float64(p.Centroid.Y)),
			p.Orientation)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Summary")
	fmt.Fprintln(w, "-------")
	fmt.Fprintf(w, "  Polygons:          %d (%d valid)\n", s.Count, s.ValidCount)
	fmt.Fprintf(w, "  Total area:        %s\n", formatFloat(float64(s.TotalArea)))
	fmt.Fprintf(w, "  Weighted centroid: (%s, %s)\n",
		formatFloat(float64(s.Centroid.X)), formatFloat(float64(s.Centroid.Y)))
}

// formatFloat prints up to 10 significant digits. NaN and infinities
// come out as NaN, +Inf and -Inf.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 10, 64)
}
