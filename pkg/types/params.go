package types

// Params collects what the caller knows about an area. The six
// quantity fields are loosely typed because catalog sources produce
// them that way: each accepts nil, a number, a []float64, a []any of
// numbers, or a Quantity/*Quantity carrying an explicit unit tag.
// Normalization coerces and validates them before inference runs.
//
// A Params value is a single-use computation record: the inference
// engine fills its gaps progressively and never shares it between
// concurrent resolutions.
type Params struct {
	AreaID      string
	Description string // defaults to AreaID when empty
	ProjID      string

	// Projection is a PROJ string ("+proj=tmerc +lat_0=38 ...") or a
	// map[string]any of PROJ parameters.
	Projection any

	// Units is the default unit spelling for the quantities below.
	// Resolution order per quantity: the Quantity's own Units, then
	// this field, then a "units" parameter inside Projection, then
	// meters.
	Units string

	Shape         any // (height, width), i.e. (rows, cols)
	TopLeftExtent any // (x, y) of the upper-left corner
	Center        any // (center_x, center_y)
	AreaExtent    any // (llx, lly, urx, ury)
	Resolution    any // (dx, dy), scalar allowed
	Radius        any // (dx, dy), scalar allowed

	Rotation           float64 // degrees, negative is clockwise
	OptimizeProjection bool    // carried onto dynamic definitions
}
