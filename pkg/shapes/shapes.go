package shapes

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a shapes file, picking the decoder from the file extension.
func Load(path string) (*ShapeSet, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading shapes file: %w", err)
	}
	return Parse(data, format)
}

// FormatFromPath maps a file extension to a Format.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json", ".geojson":
		return FormatGeoJSON, nil
	}
	return "", fmt.Errorf("unsupported shapes file extension %q", filepath.Ext(path))
}

// Parse decodes data in the given format.
func Parse(data []byte, format Format) (*ShapeSet, error) {
	switch format {
	case FormatYAML:
		return parseYAML(data)
	case FormatGeoJSON:
		return parseGeoJSON(data)
	}
	return nil, fmt.Errorf("unsupported shapes format %q", format)
}

func parseYAML(data []byte) (*ShapeSet, error) {
	var set ShapeSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("parsing shapes YAML: %w", err)
	}
	for i := range set.Polygons {
		if set.Polygons[i].Name == "" {
			set.Polygons[i].Name = fmt.Sprintf("polygons[%d]", i)
		}
	}
	return &set, nil
}

// ParseVertexArgs turns command line arguments into a flat vertex list.
// Values may be given as separate arguments or comma separated.
func ParseVertexArgs(args []string) ([]float64, error) {
	var out []float64
	for _, arg := range args {
		fields := strings.FieldsFunc(arg, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("parsing vertex value %q: %w", f, err)
			}
			out = append(out, v)
		}
	}
	return out, nil
}
