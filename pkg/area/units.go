package area

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"

	"github.com/mesh-intelligence/areagrid/pkg/proj"
	"github.com/mesh-intelligence/areagrid/pkg/types"
)

// unitKind classifies a unit spelling.
type unitKind int

const (
	unitDegrees unitKind = iota
	unitRadians
	unitMeters
)

// recognizedUnits maps the accepted unit spellings to their kind.
var recognizedUnits = map[string]unitKind{
	"deg": unitDegrees, "degrees": unitDegrees, "°": unitDegrees,
	"rad": unitRadians, "radians": unitRadians,
	"m": unitMeters, "meters": unitMeters,
}

// poleTolerance is the center-to-pole snap tolerance in degrees. For a
// laea projection this allows an error of roughly 11 meters around the
// pole.
const poleTolerance = 1e-4

// convertUnits converts a 2-vector between angular and linear
// representations using the projection capability.
//
// With inverse false, angular vectors are converted to meters: center
// and corner points are forward-transformed directly, while radius and
// resolution are interpreted as per-axis angular offsets from center
// (which must therefore be known, in meters) and measured as planar
// distances. With inverse true, meter vectors are inverse-transformed
// to degrees. Radius and resolution results always come back with
// non-negative components.
func convertUnits(v orb.Point, name, units string, p proj.Projection, inverse bool, center *orb.Point) (orb.Point, error) {
	kind, ok := recognizedUnits[units]
	if !ok {
		return v, fmt.Errorf("%w: %s must be in degrees, radians, or meters, got %q", types.ErrInvalidUnits, name, units)
	}
	if p.IsGeographic() && kind == unitMeters {
		return v, fmt.Errorf("%w: lat/lon projection cannot take meters for %s", types.ErrInvalidUnits, name)
	}

	if name == "center" {
		var err error
		v, err = snapPoles(v, kind, p)
		if err != nil {
			return v, err
		}
	}

	switch {
	case kind != unitMeters && !inverse:
		deg := toDegrees(v, kind)
		if name == "radius" || name == "resolution" {
			var err error
			v, err = angularOffsetToMeters(deg, p, center)
			if err != nil {
				return v, err
			}
		} else {
			x, y, err := p.Forward(deg.X(), deg.Y())
			if err != nil {
				return v, err
			}
			v = orb.Point{x, y}
		}
	case kind == unitMeters && inverse:
		lon, lat, err := p.Inverse(v.X(), v.Y())
		if err != nil {
			return v, err
		}
		v = orb.Point{lon, lat}
	}

	if name == "radius" || name == "resolution" {
		v = orb.Point{math.Abs(v.X()), math.Abs(v.Y())}
	}
	return v, nil
}

// angularOffsetToMeters measures an angular per-axis offset as planar
// distances from center. When center sits on a pole, the latitude-axis
// estimate is used for both components; longitude offsets are
// degenerate there.
func angularOffsetToMeters(deg orb.Point, p proj.Projection, center *orb.Point) (orb.Point, error) {
	if center == nil {
		return deg, types.ErrMissingCenter
	}
	lonC, latC, err := p.Inverse(center.X(), center.Y())
	if err != nil {
		return deg, err
	}

	if math.Abs(math.Abs(latC)-90) < 1e-10 {
		var out orb.Point
		for i, d := range [2]float64{deg.X(), deg.Y()} {
			_, y, err := p.Forward(0, latC-sign(latC)*math.Abs(d))
			if err != nil {
				return deg, err
			}
			out[i] = math.Abs(y + center.Y())
		}
		return out, nil
	}

	// Measure westward along x and southward along y so positive
	// offsets land inside the projection area.
	x, _, err := p.Forward(lonC-deg.X(), latC)
	if err != nil {
		return deg, err
	}
	_, y, err := p.Forward(lonC, latC-deg.Y())
	if err != nil {
		return deg, err
	}
	return orb.Point{math.Abs(center.X() - x), math.Abs(center.Y() - y)}, nil
}

// snapPoles snaps a center that is within poleTolerance of a pole onto
// the exact pole, in the vector's own unit space, to avoid transform
// instability right at the singularity.
func snapPoles(v orb.Point, kind unitKind, p proj.Projection) (orb.Point, error) {
	switch kind {
	case unitMeters:
		lon, lat, err := p.Inverse(v.X(), v.Y())
		if err != nil {
			// The snap is a numerical-stability aid, not a conversion.
			// Without an inverse transform the center stays as given.
			if errors.Is(err, proj.ErrUnsupportedProjection) {
				return v, nil
			}
			return v, err
		}
		if math.Abs(math.Abs(lat)-90) < poleTolerance {
			x, y, err := p.Forward(lon, sign(lat)*90)
			if err != nil {
				return v, err
			}
			v = orb.Point{x, y}
		}
	case unitDegrees:
		if math.Abs(math.Abs(v.Y())-90) < poleTolerance {
			v = orb.Point{v.X(), sign(v.Y()) * 90}
		}
	case unitRadians:
		if math.Abs(math.Abs(v.Y())-math.Pi/2) < poleTolerance*math.Pi/180 {
			v = orb.Point{v.X(), sign(v.Y()) * math.Pi / 2}
		}
	}
	return v, nil
}

// toDegrees maps an angular vector to degrees.
func toDegrees(v orb.Point, kind unitKind) orb.Point {
	if kind == unitRadians {
		return orb.Point{v.X() * 180 / math.Pi, v.Y() * 180 / math.Pi}
	}
	return v
}

// sign returns -1 for negative numbers and 1 otherwise.
func sign(f float64) float64 {
	if f < 0 {
		return -1
	}
	return 1
}
