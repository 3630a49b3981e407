package proj

import (
	"fmt"
	"math"
	"sync"

	"github.com/wroge/wgs84"
)

// Projection is the capability the inference engine needs from a
// coordinate reference system: forward transform (geographic degrees to
// projected meters), inverse transform, and the geographic predicate.
// Implementations must be safe for concurrent use.
type Projection interface {
	Forward(lon, lat float64) (x, y float64, err error)
	Inverse(x, y float64) (lon, lat float64, err error)
	IsGeographic() bool
}

// geographicProjs are the +proj names of lat/lon pseudo-projections.
var geographicProjs = map[string]bool{
	"longlat": true,
	"latlong": true,
	"lonlat":  true,
	"latlon":  true,
}

// FromProjMap builds a Projection from a PROJ parameter map. The
// underlying wgs84 transform is constructed lazily on first use, so a
// definition whose parameters never need converting may carry any
// +proj value.
func FromProjMap(params map[string]any) Projection {
	if name, _ := params["proj"].(string); geographicProjs[name] {
		return latlonProjection{}
	}
	return &wgs84Projection{params: params}
}

// FromProj builds a Projection from a PROJ string or parameter map.
func FromProj(projection any) (Projection, error) {
	params, err := ToMap(projection)
	if err != nil {
		return nil, err
	}
	return FromProjMap(params), nil
}

// latlonProjection is the geographic identity: projected coordinates
// are already degrees.
type latlonProjection struct{}

func (latlonProjection) Forward(lon, lat float64) (float64, float64, error) { return lon, lat, nil }
func (latlonProjection) Inverse(x, y float64) (float64, float64, error)     { return x, y, nil }
func (latlonProjection) IsGeographic() bool                                 { return true }

// spheroid adapts ellipsoid radii to the wgs84 Spheroid interface.
type spheroid struct {
	a, fi float64
}

func (s spheroid) A() float64  { return s.a }
func (s spheroid) Fi() float64 { return s.fi }

// wgs84Projection delegates transforms to a wgs84 CRS built from the
// PROJ parameters on first use.
type wgs84Projection struct {
	params map[string]any

	once     sync.Once
	buildErr error
	fwd, inv func(a, b, c float64) (float64, float64, float64)
}

func (p *wgs84Projection) IsGeographic() bool { return false }

func (p *wgs84Projection) Forward(lon, lat float64) (float64, float64, error) {
	if err := p.build(); err != nil {
		return 0, 0, err
	}
	x, y, _ := p.fwd(lon, lat, 0)
	return x, y, nil
}

// Inverse iteration limits. The residual tolerance is in projected
// meters; 1e-7 m corresponds to well below 1e-11 degrees.
const (
	invMaxIter   = 8
	invTolerance = 1e-7
)

func (p *wgs84Projection) Inverse(x, y float64) (float64, float64, error) {
	if err := p.build(); err != nil {
		return 0, 0, err
	}
	lon, lat, _ := p.inv(x, y, 0)

	// The library inverse is approximate under some datum wirings (the
	// transverse mercator inverse lands hundreds of meters off). Newton
	// steps against the forward transform polish it to convergence; an
	// already exact inverse breaks out on the first residual check.
	for i := 0; i < invMaxIter; i++ {
		fx, fy, _ := p.fwd(lon, lat, 0)
		rx, ry := x-fx, y-fy
		if math.Abs(rx) < invTolerance && math.Abs(ry) < invTolerance {
			break
		}

		const h = 1e-7 // degrees, finite-difference step
		fxl, fyl, _ := p.fwd(lon+h, lat, 0)
		fxp, fyp, _ := p.fwd(lon, lat+h, 0)
		j11, j21 := (fxl-fx)/h, (fyl-fy)/h
		j12, j22 := (fxp-fx)/h, (fyp-fy)/h
		det := j11*j22 - j12*j21
		if det == 0 || math.IsNaN(det) {
			break
		}
		lon += (rx*j22 - ry*j12) / det
		lat += (ry*j11 - rx*j21) / det
	}
	return lon, lat, nil
}

func (p *wgs84Projection) build() error {
	p.once.Do(func() {
		a, b, err := EllipsoidRadii(p.params)
		if err != nil {
			p.buildErr = err
			return
		}
		fi := math.Inf(1)
		if f := (a - b) / a; f != 0 {
			fi = 1 / f
		}
		datum := wgs84.Datum{Spheroid: spheroid{a: a, fi: fi}}

		crs, err := projectedCRS(datum, p.params)
		if err != nil {
			p.buildErr = err
			return
		}
		p.fwd = wgs84.Transform(datum.LonLat(), crs)
		p.inv = wgs84.Transform(crs, datum.LonLat())
	})
	return p.buildErr
}

// projectedCRS maps PROJ parameters onto the CRS constructors the
// wgs84 library provides.
func projectedCRS(datum wgs84.Datum, params map[string]any) (wgs84.CoordinateReferenceSystem, error) {
	name, _ := params["proj"].(string)
	switch name {
	case "tmerc":
		k, ok := numParam(params, "k")
		if !ok {
			if k, ok = numParam(params, "k_0"); !ok {
				k = 1
			}
		}
		lon0, _ := numParam(params, "lon_0")
		lat0, _ := numParam(params, "lat_0")
		x0, _ := numParam(params, "x_0")
		y0, _ := numParam(params, "y_0")
		return datum.TransverseMercator(lon0, lat0, k, x0, y0), nil
	case "utm":
		zone, ok := numParam(params, "zone")
		if !ok {
			return nil, fmt.Errorf("%w: utm without +zone", ErrUnsupportedProjection)
		}
		y0 := 0.0
		if _, south := params["south"]; south {
			y0 = 10000000
		}
		return datum.TransverseMercator(zone*6-183, 0, 0.9996, 500000, y0), nil
	case "webmerc":
		return datum.WebMercator(), nil
	case "merc":
		// Plain +proj=merc is only expressible here in its spherical
		// web-mercator form.
		k, ok := numParam(params, "k")
		if !ok {
			k = 1
		}
		latTS, _ := numParam(params, "lat_ts")
		lon0, _ := numParam(params, "lon_0")
		if k == 1 && latTS == 0 && lon0 == 0 {
			return datum.WebMercator(), nil
		}
		return nil, fmt.Errorf("%w: merc with scaling or offsets", ErrUnsupportedProjection)
	case "":
		return nil, fmt.Errorf("%w: missing +proj", ErrUnsupportedProjection)
	default:
		return nil, fmt.Errorf("%w: +proj=%s", ErrUnsupportedProjection, name)
	}
}
