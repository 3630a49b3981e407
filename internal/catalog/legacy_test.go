package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/areagrid/pkg/types"
)

const legacyCatalog = `REGION: ease_sh {
	NAME:           Antarctic EASE grid
	PCS_ID:         ease_sh
	PCS_DEF:        proj=laea, lat_0=-90, lon_0=0, a=6371228.0, units=m
	XSIZE:          425
	YSIZE:          425
	AREA_EXTENT:    (-5326849.0625, -5326849.0625, 5326849.0625, 5326849.0625)
};

REGION: ease_nh {
	NAME:           Arctic EASE grid
	PCS_ID:         ease_nh
	PCS_DEF:        proj=laea, lat_0=90, lon_0=0, a=6371228.0, units=m
	XSIZE:          425
	YSIZE:          425
	AREA_EXTENT:    (-5326849.0625, -5326849.0625, 5326849.0625, 5326849.0625)
};
`

func TestParseLegacy(t *testing.T) {
	params, err := ParseLegacy(legacyCatalog)
	require.NoError(t, err)
	require.Len(t, params, 2)

	sh := params[0]
	assert.Equal(t, "ease_sh", sh.AreaID)
	assert.Equal(t, "Antarctic EASE grid", sh.Description)
	assert.Equal(t, "ease_sh", sh.ProjID)
	assert.Equal(t, []float64{425, 425}, sh.Shape)
	assert.Equal(t,
		[]float64{-5326849.0625, -5326849.0625, 5326849.0625, 5326849.0625},
		sh.AreaExtent)

	projection, ok := sh.Projection.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "laea", projection["proj"])
	assert.Equal(t, -90.0, projection["lat_0"])
	assert.Equal(t, 6371228.0, projection["a"])
}

// Single-line records close on the REGION line itself, and shape comes
// back (rows, cols) even though the record orders XSIZE first.
func TestParseLegacySingleLine(t *testing.T) {
	src := `REGION "X" { XSIZE: 10 YSIZE: 20 AREA_EXTENT: (0.0 0.0 100.0 200.0) PCS_ID: p PCS_DEF: "+proj=stere" NAME: "x" };`

	params, err := ParseLegacy(src)
	require.NoError(t, err)
	require.Len(t, params, 1)

	p := params[0]
	assert.Equal(t, "X", p.AreaID)
	assert.Equal(t, "x", p.Description)
	assert.Equal(t, "p", p.ProjID)
	assert.Equal(t, []float64{20, 10}, p.Shape)
	assert.Equal(t, []float64{0, 0, 100, 200}, p.AreaExtent)

	projection, ok := p.Projection.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "stere", projection["proj"])
}

func TestParseLegacySelection(t *testing.T) {
	t.Run("only requested blocks parse", func(t *testing.T) {
		params, err := ParseLegacy(legacyCatalog, "ease_nh")
		require.NoError(t, err)
		require.Len(t, params, 1)
		assert.Equal(t, "ease_nh", params[0].AreaID)
	})

	t.Run("unmatched names", func(t *testing.T) {
		_, err := ParseLegacy(legacyCatalog, "ease_nh", "nope", "missing")
		assert.ErrorIs(t, err, types.ErrAreaNotFound)
		assert.Contains(t, err.Error(), `"nope"`)
		assert.Contains(t, err.Error(), `"missing"`)
	})
}

func TestParseLegacyMalformed(t *testing.T) {
	t.Run("bad block does not abort the scan", func(t *testing.T) {
		src := `REGION: broken {
	NAME: no sizes here
};
` + legacyCatalog

		params, err := ParseLegacy(src)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "broken")
		require.Len(t, params, 2, "healthy blocks still parse")
		assert.Equal(t, "ease_sh", params[0].AreaID)
	})

	t.Run("unterminated block produces nothing", func(t *testing.T) {
		src := `REGION: dangling {
	XSIZE: 10
	YSIZE: 20`

		params, err := ParseLegacy(src)
		require.NoError(t, err)
		assert.Empty(t, params)
	})

	t.Run("non-numeric size", func(t *testing.T) {
		src := `REGION: bad { XSIZE: wide YSIZE: 20 AREA_EXTENT: (0 0 1 1) };`
		_, err := ParseLegacy(src)
		assert.ErrorIs(t, err, types.ErrNotNumeric)
	})
}
