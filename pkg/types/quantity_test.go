package types

import (
	"reflect"
	"testing"
)

func TestQuantityConstructors(t *testing.T) {
	tests := []struct {
		name string
		got  *Quantity
		want []float64
	}{
		{name: "pair", got: Pair(1, 2), want: []float64{1, 2}},
		{name: "scalar", got: Scalar(500), want: []float64{500}},
		{name: "extent", got: Extent(0, 0, 100, 200), want: []float64{0, 0, 100, 200}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got.Values, tt.want) {
				t.Errorf("Values = %v, want %v", tt.got.Values, tt.want)
			}
			if tt.got.Units != "" {
				t.Errorf("Units = %q, want ambient", tt.got.Units)
			}
		})
	}
}

func TestQuantityWithUnits(t *testing.T) {
	q := Pair(1, 2)
	tagged := q.WithUnits("deg")
	if tagged.Units != "deg" {
		t.Errorf("Units = %q, want %q", tagged.Units, "deg")
	}
	// The copy must not alias the original's values.
	tagged.Values[0] = 99
	if q.Values[0] != 1 {
		t.Error("WithUnits must copy the values")
	}

	var nilQ *Quantity
	if nilQ.WithUnits("deg") != nil {
		t.Error("nil receiver should stay nil")
	}
}
