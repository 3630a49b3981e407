package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/areagrid/pkg/types"
)

// quantityComponents maps each quantity to the per-component field
// names its sub-mapping form may use. area_extent components are
// themselves 2-vectors and flatten in order.
var quantityComponents = map[string][]string{
	"shape":           {"height", "width"},
	"top_left_extent": {"x", "y"},
	"center":          {"center_x", "center_y"},
	"area_extent":     {"lower_left_xy", "upper_right_xy"},
	"resolution":      {"dx", "dy"},
	"radius":          {"dx", "dy"},
}

// ParseYAML parses hierarchical YAML catalog sources into one Params
// record per selected area. Sources merge key-by-key with later
// sources overriding earlier ones; non-mapping values replace
// outright. With no names every top-level area is selected, in sorted
// order. A source that does not decode as a YAML mapping at all
// reports ErrNotHierarchical so callers can fall back to the legacy
// format.
func ParseYAML(source any, names ...string) ([]types.Params, error) {
	texts, err := contents(source)
	if err != nil {
		return nil, err
	}

	// The deep merge is viper's: nested mappings merge key-by-key,
	// anything else replaces. Keys fold to lower case on the way in,
	// so selection below folds the same way. The delimiter override
	// keeps area names containing dots as single keys.
	v := viper.NewWithOptions(viper.KeyDelimiter("::"))
	for _, text := range texts {
		var doc map[string]any
		if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", types.ErrNotHierarchical, err)
		}
		if doc == nil {
			continue
		}
		if err := v.MergeConfigMap(doc); err != nil {
			return nil, fmt.Errorf("%w: %v", types.ErrNotHierarchical, err)
		}
	}
	merged := v.AllSettings()

	selected := names
	if len(selected) == 0 {
		selected = make([]string, 0, len(merged))
		for name := range merged {
			selected = append(selected, name)
		}
		sort.Strings(selected)
	}

	params := make([]types.Params, 0, len(selected))
	for _, name := range selected {
		raw, ok := merged[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("%w: area %q not found in catalog", types.ErrAreaNotFound, name)
		}
		entry, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: area %q is not a mapping", types.ErrNotHierarchical, name)
		}
		p, err := entryParams(name, entry)
		if err != nil {
			return nil, err
		}
		params = append(params, p)
	}
	return params, nil
}

// entryParams builds a Params record from one area entry. The area
// identifier defaults to the entry's own key.
func entryParams(name string, entry map[string]any) (types.Params, error) {
	p := types.Params{AreaID: name, Projection: entry["projection"]}
	if id, ok := entry["area_id"].(string); ok && id != "" {
		p.AreaID = id
	}
	if d, ok := entry["description"].(string); ok {
		p.Description = d
	}
	if pid, ok := entry["proj_id"].(string); ok {
		p.ProjID = pid
	}
	if u, ok := entry["units"].(string); ok {
		p.Units = u
	}
	if r, ok := floatValue(entry["rotation"]); ok {
		p.Rotation = r
	}
	if b, ok := entry["optimize_projection"].(bool); ok {
		p.OptimizeProjection = b
	}

	var err error
	if p.Shape, err = quantityValue(entry, "shape"); err != nil {
		return p, err
	}
	if p.TopLeftExtent, err = quantityValue(entry, "top_left_extent"); err != nil {
		return p, err
	}
	if p.Center, err = quantityValue(entry, "center"); err != nil {
		return p, err
	}
	if p.AreaExtent, err = quantityValue(entry, "area_extent"); err != nil {
		return p, err
	}
	if p.Resolution, err = quantityValue(entry, "resolution"); err != nil {
		return p, err
	}
	if p.Radius, err = quantityValue(entry, "radius"); err != nil {
		return p, err
	}
	return p, nil
}

// quantityValue extracts one quantity from an entry. A flat value
// passes through untouched. A sub-mapping is assembled from either the
// bare quantity key or its per-component fields (both at once is
// ErrAmbiguousDefinition) and, when a units field is present, wrapped
// in a unit-tagged Quantity.
func quantityValue(entry map[string]any, name string) (any, error) {
	raw, ok := entry[name]
	if !ok {
		return nil, nil
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return raw, nil
	}

	var value any
	if bare, ok := m[name]; ok {
		for _, key := range quantityComponents[name] {
			if _, clash := m[key]; clash {
				return nil, fmt.Errorf("%w: %s has both %s and %s", types.ErrAmbiguousDefinition, name, name, key)
			}
		}
		value = bare
	} else {
		var components []any
		for _, key := range quantityComponents[name] {
			cv, ok := m[key]
			if !ok {
				continue
			}
			if list, ok := cv.([]any); ok && (key == "lower_left_xy" || key == "upper_right_xy") {
				components = append(components, list...)
				continue
			}
			components = append(components, cv)
		}
		value = components
	}

	units, _ := m["units"].(string)
	if units == "" {
		return value, nil
	}
	return taggedQuantity(name, value, units)
}

// taggedQuantity converts an extracted value into a Quantity carrying
// its unit spelling.
func taggedQuantity(name string, value any, units string) (*types.Quantity, error) {
	var elems []any
	switch v := value.(type) {
	case []any:
		elems = v
	default:
		elems = []any{v}
	}
	vals := make([]float64, 0, len(elems))
	for _, e := range elems {
		f, ok := floatValue(e)
		if !ok {
			return nil, fmt.Errorf("%w: %s element %v", types.ErrNotNumeric, name, e)
		}
		vals = append(vals, f)
	}
	return &types.Quantity{Values: vals, Units: units}, nil
}

// floatValue reads a YAML-decoded number.
func floatValue(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}
