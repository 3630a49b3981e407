package proj

import "fmt"

// ellipsoid holds the equatorial radius and inverse flattening of a
// named ellipsoid. rf zero means a sphere.
type ellipsoid struct {
	a  float64
	rf float64
}

// Standard PROJ ellipsoid constants.
var ellipsoids = map[string]ellipsoid{
	"WGS84":  {a: 6378137.0, rf: 298.257223563},
	"GRS80":  {a: 6378137.0, rf: 298.257222101},
	"WGS72":  {a: 6378135.0, rf: 298.26},
	"intl":   {a: 6378388.0, rf: 297.0},
	"krass":  {a: 6378245.0, rf: 298.3},
	"bessel": {a: 6377397.155, rf: 299.1528128},
	"clrk66": {a: 6378206.4, rf: 294.9786982},
	"sphere": {a: 6370997.0, rf: 0},
}

// EllipsoidRadii returns the equatorial (a) and polar (b) radius in
// meters for a projection given as a PROJ string or parameter map.
// A named +ellps wins; otherwise a/b, or one radius plus a flattening
// (+f or +rf), are combined; with nothing usable the WGS84 radii are
// returned.
func EllipsoidRadii(projection any) (a, b float64, err error) {
	params, err := ToMap(projection)
	if err != nil {
		return 0, 0, err
	}

	if name, ok := params["ellps"].(string); ok {
		e, ok := ellipsoids[name]
		if !ok {
			return 0, 0, fmt.Errorf("%w: %q", ErrUnknownEllipsoid, name)
		}
		return e.a, e.polar(), nil
	}

	av, aok := numParam(params, "a")
	bv, bok := numParam(params, "b")
	if aok && bok {
		return av, bv, nil
	}

	f, fok := numParam(params, "f")
	if !fok {
		if rf, ok := numParam(params, "rf"); ok && rf != 0 {
			f, fok = 1/rf, true
		}
	}
	switch {
	case aok && fok:
		return av, av * (1 - f), nil
	case bok && fok:
		return bv / (1 - f), bv, nil
	}

	wgs := ellipsoids["WGS84"]
	return wgs.a, wgs.polar(), nil
}

func (e ellipsoid) polar() float64 {
	if e.rf == 0 {
		return e.a
	}
	return e.a * (1 - 1/e.rf)
}

// numParam reads a numeric PROJ parameter that may have been parsed as
// a float or left as a string.
func numParam(params map[string]any, key string) (float64, bool) {
	switch v := params[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}
