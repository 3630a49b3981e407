package area

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/paulmach/orb"

	"github.com/mesh-intelligence/areagrid/internal/catalog"
	"github.com/mesh-intelligence/areagrid/pkg/proj"
	"github.com/mesh-intelligence/areagrid/pkg/types"
)

// FromParams takes what the caller knows about an area and tries to
// make a grid definition from it. Missing quantities are derived from
// the supplied ones; redundant but consistent input is accepted and
// replaced by the canonical derivation, while inconsistent input is
// ErrConflictingParameters. If shape and extent both resolve the
// result is a *types.AreaDefinition; if exactly one resolves it is a
// *types.DynamicAreaDefinition; with neither the call fails with
// ErrInsufficientParameters.
func FromParams(p types.Params) (types.Definition, error) {
	projMap, err := proj.ToMap(p.Projection)
	if err != nil {
		return nil, err
	}

	// Unit precedence: per-quantity tag > caller units > projection
	// units > meters. The per-quantity tag is applied in unitsFor.
	ambient := p.Units
	if ambient == "" {
		if u, ok := projMap["units"].(string); ok {
			ambient = u
		} else {
			ambient = "meters"
		}
	}

	qCenter, err := normalizeQuantity("center", p.Center, 2)
	if err != nil {
		return nil, err
	}
	qRadius, err := normalizeQuantity("radius", p.Radius, 2)
	if err != nil {
		return nil, err
	}
	qTopLeft, err := normalizeQuantity("top_left_extent", p.TopLeftExtent, 2)
	if err != nil {
		return nil, err
	}
	qResolution, err := normalizeQuantity("resolution", p.Resolution, 2)
	if err != nil {
		return nil, err
	}
	qShape, err := normalizeQuantity("shape", p.Shape, 2)
	if err != nil {
		return nil, err
	}
	qExtent, err := normalizeQuantity("area_extent", p.AreaExtent, 4)
	if err != nil {
		return nil, err
	}

	g := &gridParams{
		proj:        proj.FromProjMap(projMap),
		units:       ambient,
		radiusQ:     qRadius,
		resolutionQ: qResolution,
	}

	if g.center, err = g.convertPoint(qCenter, "center"); err != nil {
		return nil, err
	}
	if g.topLeft, err = g.convertPoint(qTopLeft, "top_left_extent"); err != nil {
		return nil, err
	}
	if qExtent != nil {
		// The two extent corners convert independently so a unit tag
		// applies to both.
		ll, err := convertUnits(orb.Point{qExtent.Values[0], qExtent.Values[1]},
			"area_extent", g.unitsFor(qExtent), g.proj, false, nil)
		if err != nil {
			return nil, err
		}
		ur, err := convertUnits(orb.Point{qExtent.Values[2], qExtent.Values[3]},
			"area_extent", g.unitsFor(qExtent), g.proj, false, nil)
		if err != nil {
			return nil, err
		}
		g.extent = &[4]float64{ll.X(), ll.Y(), ur.X(), ur.Y()}
	}
	if qShape != nil {
		g.shape = &[2]float64{qShape.Values[0], qShape.Values[1]}
	}

	if g.extent == nil || g.shape == nil {
		if err := g.extrapolate(); err != nil {
			return nil, err
		}
	}
	return makeDefinition(p, projMap, g.shape, g.extent)
}

// convertPoint converts a normalized 2-vector quantity to meters.
func (g *gridParams) convertPoint(q *types.Quantity, name string) (*orb.Point, error) {
	if q == nil {
		return nil, nil
	}
	pt, err := convertUnits(orb.Point{q.Values[0], q.Values[1]}, name, g.unitsFor(q), g.proj, false, nil)
	if err != nil {
		return nil, err
	}
	return &pt, nil
}

// makeDefinition is the grid-definition factory boundary: it finalizes
// the shape to integers and picks the static or dynamic variant.
func makeDefinition(p types.Params, projMap map[string]any, shape *[2]float64, extent *[4]float64) (types.Definition, error) {
	description := p.Description
	if description == "" {
		description = p.AreaID
	}

	width, height := 0, 0
	if shape != nil {
		height = finalizeAxis(shape[0], "height")
		width = finalizeAxis(shape[1], "width")
	}

	var bound *orb.Bound
	if extent != nil {
		bound = &orb.Bound{
			Min: orb.Point{extent[0], extent[1]},
			Max: orb.Point{extent[2], extent[3]},
		}
	}

	switch {
	case shape != nil && extent != nil:
		return &types.AreaDefinition{
			AreaID:      p.AreaID,
			Description: description,
			ProjID:      p.ProjID,
			Projection:  projMap,
			Width:       width,
			Height:      height,
			Extent:      *bound,
			Rotation:    p.Rotation,
		}, nil
	case shape != nil || extent != nil:
		return &types.DynamicAreaDefinition{
			AreaID:             p.AreaID,
			Description:        description,
			Projection:         projMap,
			Width:              width,
			Height:             height,
			Extent:             bound,
			Rotation:           p.Rotation,
			OptimizeProjection: p.OptimizeProjection,
		}, nil
	}
	return nil, fmt.Errorf("%w: area %q", types.ErrInsufficientParameters, p.AreaID)
}

// finalizeAxis turns one shape axis into a pixel count. A value within
// 0.01 of an integer rounds to it; anything else rounds up with a
// warning diagnostic.
func finalizeAxis(v float64, axis string) int {
	if v-math.Floor(v) < 0.01 || math.Ceil(v)-v < 0.01 {
		return int(math.Round(v))
	}
	n := int(math.Ceil(v))
	slog.Warn("shape axis must be an integer, rounding up", "axis", axis, "value", v, "rounded", n)
	return n
}

// LoadArea loads the named areas from one or more catalog sources.
// A source may be a file path, raw catalog text, a []byte, an
// io.Reader, or a slice of those. With no names, every area in the
// sources is returned.
func LoadArea(source any, names ...string) ([]types.Definition, error) {
	return ParseAreaFile(source, names...)
}

// ParseAreaFile parses catalog sources into grid definitions. Sources
// are read as the hierarchical YAML format first; a source that is not
// that format at all falls back to the legacy block format.
func ParseAreaFile(source any, names ...string) ([]types.Definition, error) {
	defs, err := ParseYAMLAreaFile(source, names...)
	if errors.Is(err, types.ErrNotHierarchical) {
		return ParseLegacyAreaFile(source, names...)
	}
	return defs, err
}

// ParseYAMLAreaFile parses hierarchical YAML catalog sources. Multiple
// sources deep-merge, the first being the base and later ones
// overriding.
func ParseYAMLAreaFile(source any, names ...string) ([]types.Definition, error) {
	entries, err := catalog.ParseYAML(source, names...)
	if err != nil {
		return nil, err
	}
	defs := make([]types.Definition, 0, len(entries))
	for _, p := range entries {
		def, err := FromParams(p)
		if err != nil {
			return nil, fmt.Errorf("area %q: %w", p.AreaID, err)
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// ParseLegacyAreaFile parses legacy block-format catalog sources. A
// malformed block does not abort the scan: definitions that did
// resolve are returned alongside the joined per-block errors.
func ParseLegacyAreaFile(source any, names ...string) ([]types.Definition, error) {
	entries, parseErr := catalog.ParseLegacy(source, names...)
	defs := make([]types.Definition, 0, len(entries))
	var errs []error
	if parseErr != nil {
		errs = append(errs, parseErr)
	}
	for _, p := range entries {
		def, err := FromParams(p)
		if err != nil {
			errs = append(errs, fmt.Errorf("area %q: %w", p.AreaID, err))
			continue
		}
		defs = append(defs, def)
	}
	return defs, errors.Join(errs...)
}
