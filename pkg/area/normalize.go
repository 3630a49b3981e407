package area

import (
	"fmt"
	"strconv"

	"github.com/mesh-intelligence/areagrid/pkg/types"
)

// scalarQuantities are the quantities a single number may stand for,
// broadcast to both axes.
var scalarQuantities = map[string]bool{
	"radius":     true,
	"resolution": true,
}

// normalizeQuantity coerces a loosely typed quantity value to a
// Quantity of exactly length components. Nil passes through. Scalars
// broadcast only for radius and resolution; any other quantity given
// as a scalar is ErrNotListLike. Elements that cannot be read as
// numbers are ErrNotNumeric, and a final length mismatch is
// ErrWrongLength.
func normalizeQuantity(name string, value any, length int) (*types.Quantity, error) {
	if value == nil {
		return nil, nil
	}

	units := ""
	isQuantity := false
	if q, ok := value.(*types.Quantity); ok {
		if q == nil {
			return nil, nil
		}
		units = q.Units
		value = q.Values
		isQuantity = true
	} else if q, ok := value.(types.Quantity); ok {
		units = q.Units
		value = q.Values
		isQuantity = true
	}
	// Shape is a pixel count; a unit tag on it is meaningless and
	// dropped.
	if name == "shape" {
		units = ""
	}

	var vals []float64
	if f, ok := toFloat(value); ok {
		if !scalarQuantities[name] {
			return nil, fmt.Errorf("%w: %s: %v", types.ErrNotListLike, name, value)
		}
		vals = []float64{f, f}
	} else {
		elems, ok := toSlice(value)
		if !ok {
			return nil, fmt.Errorf("%w: %s: %v", types.ErrNotListLike, name, value)
		}
		vals = make([]float64, 0, len(elems))
		for _, e := range elems {
			f, ok := toFloat(e)
			if !ok {
				return nil, fmt.Errorf("%w: %s element %v", types.ErrNotNumeric, name, e)
			}
			vals = append(vals, f)
		}
		// A one-element Quantity is a tagged scalar (e.g. a bare
		// "resolution: 500" carrying a units field) and broadcasts the
		// same way a plain scalar does.
		if isQuantity && len(vals) == 1 && scalarQuantities[name] {
			vals = append(vals, vals[0])
		}
	}

	if len(vals) != length {
		return nil, fmt.Errorf("%w: %s should have length %d, got %d: %v",
			types.ErrWrongLength, name, length, len(vals), vals)
	}
	return &types.Quantity{Values: vals, Units: units}, nil
}

// toSlice flattens the slice shapes catalog sources produce.
func toSlice(value any) ([]any, bool) {
	switch v := value.(type) {
	case []any:
		return v, true
	case []float64:
		out := make([]any, len(v))
		for i, f := range v {
			out[i] = f
		}
		return out, true
	case []int:
		out := make([]any, len(v))
		for i, n := range v {
			out[i] = n
		}
		return out, true
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out, true
	}
	return nil, false
}

// toFloat reads a numeric value, including numeric strings, which the
// legacy catalog format produces.
func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	}
	return 0, false
}
