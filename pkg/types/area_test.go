package types

import (
	"testing"

	"github.com/paulmach/orb"
)

func TestAreaDefinitionPixelSize(t *testing.T) {
	def := &AreaDefinition{
		AreaID: "grid",
		Width:  10,
		Height: 20,
		Extent: orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{100, 200}},
	}
	if def.ID() != "grid" {
		t.Errorf("ID() = %q, want %q", def.ID(), "grid")
	}
	dx, dy := def.PixelSize()
	if dx != 10 || dy != 10 {
		t.Errorf("PixelSize() = (%v, %v), want (10, 10)", dx, dy)
	}
}

func TestDynamicAreaDefinitionResolution(t *testing.T) {
	extent := orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{1, 1}}

	tests := []struct {
		name       string
		def        DynamicAreaDefinition
		wantShape  bool
		wantExtent bool
	}{
		{
			name:      "shape only",
			def:       DynamicAreaDefinition{Width: 5, Height: 5},
			wantShape: true,
		},
		{
			name:       "extent only",
			def:        DynamicAreaDefinition{Extent: &extent},
			wantExtent: true,
		},
		{
			name: "neither",
			def:  DynamicAreaDefinition{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.def.HasShape(); got != tt.wantShape {
				t.Errorf("HasShape() = %v, want %v", got, tt.wantShape)
			}
			if got := tt.def.HasExtent(); got != tt.wantExtent {
				t.Errorf("HasExtent() = %v, want %v", got, tt.wantExtent)
			}
		})
	}
}
