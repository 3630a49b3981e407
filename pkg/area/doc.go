// Package area resolves grid definitions from partial parameter sets.
//
// The core is FromParams: given whichever subset of {center, radius,
// top_left_extent, resolution, shape, area_extent} the caller knows,
// in degrees, radians, or meters, it derives the missing quantities in
// a fixed dependency order, cross-checks every derivation against any
// caller-supplied value, and produces a static or dynamic grid
// definition. LoadArea and ParseAreaFile feed FromParams from the two
// on-disk catalog formats.
package area
