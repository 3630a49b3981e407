package area

import (
	"fmt"
	"strings"

	"github.com/paulmach/orb"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/mesh-intelligence/areagrid/pkg/proj"
	"github.com/mesh-intelligence/areagrid/pkg/types"
)

// Conflict tolerance between a supplied value and its independent
// derivation, per component: |given-derived| <= abs + rel*|derived|.
// These are the numpy allclose defaults the derivation rules were
// calibrated against; degree-magnitude and meter-magnitude quantities
// both sit comfortably inside the relative term.
const (
	conflictAbsTol = 1e-8
	conflictRelTol = 1e-5
)

// gridParams is the single-use record the inference engine fills in.
// Center, top-left extent, and area extent are held in meters once set.
// Radius and resolution start as unit-tagged quantities and are
// converted to meters at their derivation step, since an angular
// conversion may depend on a center that is itself derived.
type gridParams struct {
	proj        proj.Projection
	units       string // ambient unit spelling
	center      *orb.Point
	topLeft     *orb.Point
	radius      *orb.Point
	resolution  *orb.Point
	radiusQ     *types.Quantity
	resolutionQ *types.Quantity
	shape       *[2]float64 // (rows, cols)
	extent      *[4]float64 // (llx, lly, urx, ury)
}

// unitsFor resolves the unit spelling for one quantity: its own tag
// wins over the ambient units.
func (g *gridParams) unitsFor(q *types.Quantity) string {
	if q != nil && q.Units != "" {
		return q.Units
	}
	return g.units
}

// validateVariable cross-checks a caller-supplied value against an
// independently derived value for the same quantity. The derived value
// always wins when the two agree; disagreement beyond tolerance is
// ErrConflictingParameters naming the quantity and its sources.
func validateVariable(existing, derived []float64, name string, sources ...string) ([]float64, error) {
	if existing != nil {
		mismatch := len(existing) != len(derived)
		if !mismatch {
			for i := range derived {
				if !scalar.EqualWithinAbsOrRel(existing[i], derived[i], conflictAbsTol, conflictRelTol) {
					mismatch = true
					break
				}
			}
		}
		if mismatch {
			return nil, fmt.Errorf("%w: %s given does not match %s found from %s (given %v, found %v)",
				types.ErrConflictingParameters, name, name, strings.Join(sources, ", "), existing, derived)
		}
	}
	return derived, nil
}

func validatePoint(existing *orb.Point, derived orb.Point, name string, sources ...string) (*orb.Point, error) {
	var given []float64
	if existing != nil {
		given = []float64{existing.X(), existing.Y()}
	}
	if _, err := validateVariable(given, []float64{derived.X(), derived.Y()}, name, sources...); err != nil {
		return nil, err
	}
	return &derived, nil
}

// convertRadius resolves the pending radius quantity to meters. An
// angular radius needs the current center; when none is available the
// conversion reports ErrMissingCenter.
func (g *gridParams) convertRadius() error {
	return g.convertOffset(&g.radius, &g.radiusQ, "radius")
}

// convertResolution resolves the pending resolution quantity to meters.
func (g *gridParams) convertResolution() error {
	return g.convertOffset(&g.resolution, &g.resolutionQ, "resolution")
}

func (g *gridParams) convertOffset(dst **orb.Point, src **types.Quantity, name string) error {
	if *src == nil {
		return nil
	}
	q := *src
	pt, err := convertUnits(orb.Point{q.Values[0], q.Values[1]}, name, g.unitsFor(q), g.proj, false, g.center)
	if err != nil {
		return err
	}
	*dst, *src = &pt, nil
	return nil
}

// extrapolate fills in missing quantities from the ones at hand. The
// rule order is fixed: every step consumes only quantities resolved by
// earlier steps, and every derivation is cross-checked against any
// caller-supplied value before it replaces it.
func (g *gridParams) extrapolate() error {
	var err error
	switch {
	case g.extent != nil:
		e := g.extent
		g.center, err = validatePoint(g.center,
			orb.Point{(e[2] + e[0]) / 2, (e[3] + e[1]) / 2}, "center", "area_extent")
		if err != nil {
			return err
		}
		// An angular radius must reach meters before it can be compared.
		if err = g.convertRadius(); err != nil {
			return err
		}
		g.radius, err = validatePoint(g.radius,
			orb.Point{(e[2] - e[0]) / 2, (e[3] - e[1]) / 2}, "radius", "area_extent")
		if err != nil {
			return err
		}
		g.topLeft, err = validatePoint(g.topLeft,
			orb.Point{e[0], e[3]}, "top_left_extent", "area_extent")
		if err != nil {
			return err
		}
	case g.topLeft != nil && g.center != nil:
		if err = g.convertRadius(); err != nil {
			return err
		}
		g.radius, err = validatePoint(g.radius,
			orb.Point{g.center.X() - g.topLeft.X(), g.topLeft.Y() - g.center.Y()},
			"radius", "top_left_extent", "center")
		if err != nil {
			return err
		}
	default:
		if err = g.convertRadius(); err != nil {
			return err
		}
	}

	if err = g.convertResolution(); err != nil {
		return err
	}

	switch {
	case g.radius != nil && g.resolution != nil:
		// Shape is (rows, cols) = (height, width), hence the axis swap.
		newShape := []float64{
			2 * g.radius.Y() / g.resolution.Y(),
			2 * g.radius.X() / g.resolution.X(),
		}
		var given []float64
		if g.shape != nil {
			given = g.shape[:]
		}
		if _, err = validateVariable(given, newShape, "shape", "radius", "resolution"); err != nil {
			return err
		}
		g.shape = &[2]float64{newShape[0], newShape[1]}
	case g.resolution != nil && g.shape != nil:
		g.radius, err = validatePoint(g.radius,
			orb.Point{g.resolution.X() * g.shape[1] / 2, g.resolution.Y() * g.shape[0] / 2},
			"radius", "shape", "resolution")
		if err != nil {
			return err
		}
	}

	switch {
	case g.center != nil && g.radius != nil:
		newExtent := []float64{
			g.center.X() - g.radius.X(), g.center.Y() - g.radius.Y(),
			g.center.X() + g.radius.X(), g.center.Y() + g.radius.Y(),
		}
		var given []float64
		if g.extent != nil {
			given = g.extent[:]
		}
		if _, err = validateVariable(given, newExtent, "area_extent", "center", "radius"); err != nil {
			return err
		}
		g.extent = &[4]float64{newExtent[0], newExtent[1], newExtent[2], newExtent[3]}
	case g.topLeft != nil && g.radius != nil:
		newExtent := []float64{
			g.topLeft.X(), g.topLeft.Y() - 2*g.radius.Y(),
			g.topLeft.X() + 2*g.radius.X(), g.topLeft.Y(),
		}
		var given []float64
		if g.extent != nil {
			given = g.extent[:]
		}
		if _, err = validateVariable(given, newExtent, "area_extent", "top_left_extent", "radius"); err != nil {
			return err
		}
		g.extent = &[4]float64{newExtent[0], newExtent[1], newExtent[2], newExtent[3]}
	}
	return nil
}
