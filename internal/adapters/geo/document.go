package geo

import (
	"encoding/json"
	"fmt"
	"strings"

	"kitchen_cali/internal/domain"
	"kitchen_cali/internal/slug"
)

// document covers both accepted shapes: a TopoJSON Topology with a "counties"
// object, or a plain GeoJSON FeatureCollection.
type document struct {
	Type     string                `json:"type"`
	Objects  map[string]collection `json:"objects"`
	Features []feature             `json:"features"`
}

type collection struct {
	Type       string    `json:"type"`
	Geometries []feature `json:"geometries"`
}

type feature struct {
	Properties map[string]any `json:"properties"`
}

// ParseBoundaries extracts region names from a boundary document.
func ParseBoundaries(b []byte) ([]domain.Boundary, error) {
	var doc document
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("decode boundary document: %w", err)
	}

	var features []feature
	switch doc.Type {
	case "Topology":
		counties, ok := doc.Objects["counties"]
		if !ok {
			return nil, fmt.Errorf("expected objects.counties in Topology")
		}
		features = counties.Geometries
	case "FeatureCollection":
		features = doc.Features
	default:
		return nil, fmt.Errorf("unsupported geo data type: %s", doc.Type)
	}

	out := make([]domain.Boundary, 0, len(features))
	seen := map[string]struct{}{}
	for _, f := range features {
		raw := propertyName(f.Properties)
		if raw == "" {
			continue
		}
		name := raw
		if !strings.HasSuffix(name, "County") {
			name += " County"
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		county := strings.TrimSpace(strings.TrimSuffix(name, "County"))
		out = append(out, domain.Boundary{Name: name, County: county, Slug: slug.Slugify(county)})
	}
	return out, nil
}

func propertyName(p map[string]any) string {
	for _, k := range []string{"NAME", "name"} {
		if s, ok := p[k].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}
