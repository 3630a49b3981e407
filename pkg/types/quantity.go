package types

// Quantity is a small numeric vector with an optional unit override.
// A Quantity's Units, when non-empty, takes precedence over the
// ambient units of the Params carrying it.
type Quantity struct {
	Values []float64
	Units  string // "", "deg", "degrees", "°", "rad", "radians", "m", "meters"
}

// Pair builds a two-component Quantity in the ambient units.
func Pair(x, y float64) *Quantity {
	return &Quantity{Values: []float64{x, y}}
}

// Scalar builds a one-component Quantity. Scalars are broadcast to a
// pair during normalization, which only radius and resolution permit.
func Scalar(v float64) *Quantity {
	return &Quantity{Values: []float64{v}}
}

// Extent builds a four-component extent Quantity
// (lower_left_x, lower_left_y, upper_right_x, upper_right_y).
func Extent(llx, lly, urx, ury float64) *Quantity {
	return &Quantity{Values: []float64{llx, lly, urx, ury}}
}

// WithUnits returns a copy of q tagged with an explicit unit spelling.
func (q *Quantity) WithUnits(units string) *Quantity {
	if q == nil {
		return nil
	}
	out := &Quantity{Values: append([]float64(nil), q.Values...), Units: units}
	return out
}
