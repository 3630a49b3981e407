package proj

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Errors reported by projection plumbing.
var (
	// ErrInvalidProjection is returned when a projection argument is
	// neither a PROJ string nor a parameter map.
	ErrInvalidProjection = errors.New("projection must be a PROJ string or a parameter map")

	// ErrUnsupportedProjection is returned when a transform is requested
	// for a +proj value the wgs84 backend cannot express.
	ErrUnsupportedProjection = errors.New("unsupported projection")

	// ErrUnknownEllipsoid is returned for an unrecognized +ellps name.
	ErrUnknownEllipsoid = errors.New("unknown ellipsoid")
)

// Keys that are emitted as bare flags by MapToString regardless of
// their value.
var flagKeys = map[string]bool{
	"no_defs": true,
	"no_off":  true,
	"no_rot":  true,
}

// StringToMap converts a PROJ-string definition to a parameter map.
// Values parseable as numbers become float64, key-only parameters
// become true, everything else stays a string.
func StringToMap(s string) map[string]any {
	params := make(map[string]any)
	for _, tok := range strings.Fields(s) {
		tok = strings.TrimPrefix(tok, "+")
		if tok == "" {
			continue
		}
		key, val, ok := strings.Cut(tok, "=")
		if !ok || val == "" {
			params[key] = true
			continue
		}
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			params[key] = f
		} else {
			params[key] = val
		}
	}
	return params
}

// MapToString converts a parameter map back to a PROJ string. The
// result is semantically equivalent to the input of StringToMap: same
// key/value pairs modulo float formatting, key order, and the leading
// plus signs. With sorted true the keys are emitted alphabetically,
// which makes the output stable for storage and comparison.
func MapToString(params map[string]any, sorted bool) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	if sorted {
		sort.Strings(keys)
	}
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		key := k
		if !strings.HasPrefix(key, "+") {
			key = "+" + key
		}
		val := params[k]
		if flagKeys[k] || val == true {
			parts = append(parts, key)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s=%s", key, formatValue(val)))
	}
	return strings.Join(parts, " ")
}

// ToMap coerces a projection argument (PROJ string or parameter map)
// to a parameter map.
func ToMap(projection any) (map[string]any, error) {
	switch p := projection.(type) {
	case string:
		return StringToMap(p), nil
	case map[string]any:
		return p, nil
	default:
		return nil, fmt.Errorf("%w: got %T", ErrInvalidProjection, projection)
	}
}

func formatValue(val any) string {
	switch v := val.(type) {
	case float64:
		// 'f' keeps large radii out of exponent notation.
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
