package types

import "github.com/paulmach/orb"

// Definition is the terminal output of grid resolution. It is a sealed
// sum type: the concrete type is always *AreaDefinition (shape and
// extent both resolved) or *DynamicAreaDefinition (exactly one of them
// resolved). Downstream handling should type-switch over the two.
type Definition interface {
	// ID returns the area identifier.
	ID() string

	definition()
}

// AreaDefinition is a fully resolved grid: identifier, projection,
// pixel shape, and spatial extent in projection units.
type AreaDefinition struct {
	AreaID      string
	Description string
	ProjID      string
	Projection  map[string]any // PROJ parameters

	Width  int // pixels in the x direction (columns)
	Height int // pixels in the y direction (rows)

	// Extent is the bounding box in projection units, Min the lower
	// left corner and Max the upper right.
	Extent orb.Bound

	Rotation float64
}

// ID returns the area identifier.
func (d *AreaDefinition) ID() string { return d.AreaID }

func (*AreaDefinition) definition() {}

// PixelSize returns the size of one pixel in projection units.
func (d *AreaDefinition) PixelSize() (dx, dy float64) {
	return (d.Extent.Right() - d.Extent.Left()) / float64(d.Width),
		(d.Extent.Top() - d.Extent.Bottom()) / float64(d.Height)
}

// DynamicAreaDefinition is a grid with shape or extent left unresolved
// until more data is available. Width and Height are zero when the
// shape is unresolved; Extent is nil when the extent is unresolved.
type DynamicAreaDefinition struct {
	AreaID      string
	Description string
	Projection  map[string]any

	Width  int
	Height int
	Extent *orb.Bound

	Rotation           float64
	OptimizeProjection bool
}

// ID returns the area identifier.
func (d *DynamicAreaDefinition) ID() string { return d.AreaID }

func (*DynamicAreaDefinition) definition() {}

// HasShape reports whether the pixel shape is resolved.
func (d *DynamicAreaDefinition) HasShape() bool { return d.Width > 0 && d.Height > 0 }

// HasExtent reports whether the spatial extent is resolved.
func (d *DynamicAreaDefinition) HasExtent() bool { return d.Extent != nil }
