package types

import "errors"

// Errors reported while resolving a grid definition. Callers match them
// with errors.Is; the wrapping message names the offending quantity and
// the inputs it was derived from.
var (
	// ErrAreaNotFound is returned when a requested area name is absent
	// from every parsed catalog source.
	ErrAreaNotFound = errors.New("area not found")

	// ErrNotListLike is returned when a quantity that requires a vector
	// is given as a scalar. Only radius and resolution may be scalar.
	ErrNotListLike = errors.New("value is not list-like")

	// ErrNotNumeric is returned when a vector component cannot be read
	// as a number.
	ErrNotNumeric = errors.New("value is not numeric")

	// ErrWrongLength is returned when a vector has the wrong number of
	// components for its quantity.
	ErrWrongLength = errors.New("value has wrong length")

	// ErrInvalidUnits is returned for an unrecognized unit spelling, or
	// for meters on a geographic (lat/lon) projection.
	ErrInvalidUnits = errors.New("invalid units")

	// ErrMissingCenter is returned when an angular radius or resolution
	// must be converted to meters but no center is available.
	ErrMissingCenter = errors.New("center required to convert angular radius or resolution")

	// ErrConflictingParameters is returned when a supplied value and an
	// independently derived value for the same quantity disagree beyond
	// tolerance.
	ErrConflictingParameters = errors.New("conflicting parameters")

	// ErrAmbiguousDefinition is returned when a catalog entry gives one
	// quantity both as a bare value and as per-component fields.
	ErrAmbiguousDefinition = errors.New("ambiguous definition")

	// ErrInsufficientParameters is returned when neither shape nor area
	// extent can be derived from the supplied parameters.
	ErrInsufficientParameters = errors.New("insufficient parameters to create an area definition")

	// ErrNotHierarchical is returned when a source cannot be read as the
	// hierarchical (YAML) catalog format at all, allowing callers to
	// fall back to the legacy parser.
	ErrNotHierarchical = errors.New("source is not a hierarchical area catalog")
)
