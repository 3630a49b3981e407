// Package proj handles projection plumbing for areagrid: the
// PROJ-string codec, ellipsoid radii lookup, and the Projection
// capability interface with its wgs84-backed implementation.
//
// The package does not implement geodesy. Forward and inverse
// transforms are delegated to github.com/wroge/wgs84; anything that
// library cannot express reports ErrUnsupportedProjection, and only
// when a transform is actually needed.
package proj
