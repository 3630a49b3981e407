package area

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/areagrid/pkg/proj"
	"github.com/mesh-intelligence/areagrid/pkg/types"
)

// projMeters is a projected CRS description for tests whose parameters
// never need an actual coordinate transform.
var projMeters = map[string]any{
	"proj": "stere", "lat_0": 90.0, "a": 6371228.0, "units": "m",
}

func staticDef(t *testing.T, p types.Params) *types.AreaDefinition {
	t.Helper()
	def, err := FromParams(p)
	require.NoError(t, err)
	static, ok := def.(*types.AreaDefinition)
	require.True(t, ok, "expected a static definition, got %T", def)
	return static
}

func dynamicDef(t *testing.T, p types.Params) *types.DynamicAreaDefinition {
	t.Helper()
	def, err := FromParams(p)
	require.NoError(t, err)
	dynamic, ok := def.(*types.DynamicAreaDefinition)
	require.True(t, ok, "expected a dynamic definition, got %T", def)
	return dynamic
}

func TestFromParamsShapeAndExtent(t *testing.T) {
	def := staticDef(t, types.Params{
		AreaID:     "ease_sh",
		Projection: projMeters,
		Shape:      []float64{20, 10},
		AreaExtent: []float64{0, 0, 100, 200},
	})
	assert.Equal(t, "ease_sh", def.AreaID)
	assert.Equal(t, "ease_sh", def.Description, "description defaults to the area id")
	assert.Equal(t, 10, def.Width)
	assert.Equal(t, 20, def.Height)
	assert.Equal(t, orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{100, 200}}, def.Extent)

	dx, dy := def.PixelSize()
	assert.Equal(t, 10.0, dx)
	assert.Equal(t, 10.0, dy)
}

// Supplying the extent alone must derive the same grid as supplying the
// equivalent center, radius and resolution.
func TestFromParamsCrossDerivation(t *testing.T) {
	fromExtent := staticDef(t, types.Params{
		AreaID:     "grid",
		Projection: projMeters,
		AreaExtent: []float64{0, 0, 100, 200},
		Resolution: []float64{10, 10},
	})
	fromCenter := staticDef(t, types.Params{
		AreaID:     "grid",
		Projection: projMeters,
		Center:     []float64{50, 100},
		Radius:     []float64{50, 100},
		Resolution: []float64{10, 10},
	})

	assert.Equal(t, fromExtent.Width, fromCenter.Width)
	assert.Equal(t, fromExtent.Height, fromCenter.Height)
	assert.Equal(t, fromExtent.Extent, fromCenter.Extent)
	assert.Equal(t, 10, fromExtent.Width)
	assert.Equal(t, 20, fromExtent.Height)
}

func TestFromParamsConflicts(t *testing.T) {
	t.Run("center disagrees with extent midpoint", func(t *testing.T) {
		_, err := FromParams(types.Params{
			AreaID:     "grid",
			Projection: projMeters,
			Center:     []float64{0, 0},
			AreaExtent: []float64{0, 0, 100, 200},
			Resolution: []float64{10, 10},
		})
		assert.ErrorIs(t, err, types.ErrConflictingParameters)
	})

	t.Run("consistent redundancy is accepted", func(t *testing.T) {
		def := staticDef(t, types.Params{
			AreaID:     "grid",
			Projection: projMeters,
			Center:     []float64{50, 100},
			AreaExtent: []float64{0, 0, 100, 200},
			Resolution: []float64{10, 10},
		})
		assert.Equal(t, 10, def.Width)
		assert.Equal(t, 20, def.Height)
	})

	t.Run("shape disagrees with radius and resolution", func(t *testing.T) {
		_, err := FromParams(types.Params{
			AreaID:     "grid",
			Projection: projMeters,
			Center:     []float64{0, 0},
			Radius:     []float64{500, 500},
			Resolution: []float64{500, 500},
			Shape:      []float64{7, 7},
		})
		assert.ErrorIs(t, err, types.ErrConflictingParameters)
	})
}

func TestFromParamsScalarResolution(t *testing.T) {
	def := staticDef(t, types.Params{
		AreaID:     "tiny",
		Projection: projMeters,
		Center:     []float64{0, 0},
		Radius:     []float64{500, 500},
		Resolution: 500,
	})
	assert.Equal(t, 2, def.Width)
	assert.Equal(t, 2, def.Height)
	assert.Equal(t, orb.Bound{Min: orb.Point{-500, -500}, Max: orb.Point{500, 500}}, def.Extent)
}

func TestFromParamsDynamic(t *testing.T) {
	t.Run("shape only", func(t *testing.T) {
		def := dynamicDef(t, types.Params{
			AreaID:     "swath",
			Projection: projMeters,
			Shape:      []float64{20, 10},
		})
		assert.True(t, def.HasShape())
		assert.False(t, def.HasExtent())
		assert.Equal(t, 10, def.Width)
		assert.Equal(t, 20, def.Height)
	})

	t.Run("extent only", func(t *testing.T) {
		def := dynamicDef(t, types.Params{
			AreaID:             "swath",
			Projection:         projMeters,
			AreaExtent:         []float64{0, 0, 100, 200},
			OptimizeProjection: true,
		})
		assert.False(t, def.HasShape())
		assert.True(t, def.HasExtent())
		assert.True(t, def.OptimizeProjection)
	})

	t.Run("radius and resolution imply a shape", func(t *testing.T) {
		def := dynamicDef(t, types.Params{
			AreaID:     "swath",
			Projection: projMeters,
			Radius:     []float64{500, 500},
			Resolution: []float64{250, 500},
		})
		assert.Equal(t, 4, def.Width)
		assert.Equal(t, 2, def.Height)
		assert.False(t, def.HasExtent())
	})
}

func TestFromParamsErrors(t *testing.T) {
	tests := []struct {
		name    string
		params  types.Params
		wantErr error
	}{
		{
			name:    "insufficient parameters",
			params:  types.Params{AreaID: "x", Projection: projMeters, Center: []float64{0, 0}},
			wantErr: types.ErrInsufficientParameters,
		},
		{
			name:    "scalar center",
			params:  types.Params{AreaID: "x", Projection: projMeters, Center: 5},
			wantErr: types.ErrNotListLike,
		},
		{
			name:    "wrong length",
			params:  types.Params{AreaID: "x", Projection: projMeters, Center: []float64{1, 2, 3}},
			wantErr: types.ErrWrongLength,
		},
		{
			name:    "non-numeric",
			params:  types.Params{AreaID: "x", Projection: projMeters, Center: []any{"a", "b"}},
			wantErr: types.ErrNotNumeric,
		},
		{
			name: "unknown units",
			params: types.Params{
				AreaID: "x", Projection: projMeters, Units: "furlongs",
				Center: []float64{0, 0}, AreaExtent: []float64{0, 0, 1, 1},
			},
			wantErr: types.ErrInvalidUnits,
		},
		{
			name: "angular radius without center",
			params: types.Params{
				AreaID: "x", Projection: projMeters,
				Radius:     types.Pair(1, 2).WithUnits("degrees"),
				Resolution: []float64{500, 500},
			},
			wantErr: types.ErrMissingCenter,
		},
		{
			name:    "invalid projection argument",
			params:  types.Params{AreaID: "x", Projection: 42},
			wantErr: nil, // wrapped proj error, checked below
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromParams(tt.params)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

// Degrees resolve through the geographic identity: projected
// coordinates are degrees themselves.
func TestFromParamsGeographic(t *testing.T) {
	def := staticDef(t, types.Params{
		AreaID:     "lonlat_grid",
		Projection: "+proj=longlat +ellps=WGS84",
		Units:      "degrees",
		Center:     []float64{0, 0},
		Radius:     []float64{10, 20},
		Resolution: []float64{1, 1},
	})
	assert.Equal(t, 20, def.Width)
	assert.Equal(t, 40, def.Height)
	assert.Equal(t, orb.Bound{Min: orb.Point{-10, -20}, Max: orb.Point{10, 20}}, def.Extent)
}

// A meters-only parameter set never needs a coordinate transform, so
// it must resolve under any projection the catalogs name, laea and
// stere included.
func TestFromParamsNoTransformNeeded(t *testing.T) {
	def := staticDef(t, types.Params{
		AreaID:     "polar",
		Projection: "+proj=laea +lat_0=-90 +lon_0=0 +a=6371228.0 +units=m",
		Center:     []float64{0, 0},
		Radius:     []float64{1000, 1000},
		Resolution: []float64{500, 500},
	})
	assert.Equal(t, 4, def.Width)
	assert.Equal(t, 4, def.Height)
	assert.Equal(t, orb.Bound{Min: orb.Point{-1000, -1000}, Max: orb.Point{1000, 1000}}, def.Extent)
}

// End to end through a real transverse mercator CRS: an angular center
// and radius resolve to a grid whose extent is centered on the
// projected center and whose pixel size honors the metric resolution.
func TestFromParamsProjectedCRS(t *testing.T) {
	const crs = "+proj=utm +zone=33 +ellps=WGS84"

	def := staticDef(t, types.Params{
		AreaID:     "utm_grid",
		Projection: crs,
		Units:      "degrees",
		Center:     []float64{15, 45},
		Radius:     []float64{0.1, 0.1},
		Resolution: types.Pair(1000, 1000).WithUnits("m"),
	})

	p, err := proj.FromProj(crs)
	require.NoError(t, err)
	cx, cy, err := p.Forward(15, 45)
	require.NoError(t, err)

	midX := (def.Extent.Left() + def.Extent.Right()) / 2
	midY := (def.Extent.Bottom() + def.Extent.Top()) / 2
	assert.InDelta(t, cx, midX, 1e-6)
	assert.InDelta(t, cy, midY, 1e-6)

	// Shape rounding may pad at most one pixel per axis.
	dx := (def.Extent.Right() - def.Extent.Left()) / float64(def.Width)
	dy := (def.Extent.Top() - def.Extent.Bottom()) / float64(def.Height)
	assert.InDelta(t, 1000, dx, 60)
	assert.InDelta(t, 1000, dy, 60)
	assert.Positive(t, def.Width)
	assert.Positive(t, def.Height)
}

func TestFromParamsShapeRounding(t *testing.T) {
	// 100 / 9.5 columns is 10.53; the axis rounds up with a diagnostic.
	def := staticDef(t, types.Params{
		AreaID:     "ragged",
		Projection: projMeters,
		AreaExtent: []float64{0, 0, 100, 200},
		Resolution: []float64{9.5, 10},
	})
	assert.Equal(t, 11, def.Width)
	assert.Equal(t, 20, def.Height)
}
