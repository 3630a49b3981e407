package proj

import (
	"errors"
	"math"
	"testing"
)

func TestLatlonProjection(t *testing.T) {
	for _, name := range []string{"longlat", "latlong", "lonlat", "latlon"} {
		t.Run(name, func(t *testing.T) {
			p := FromProjMap(map[string]any{"proj": name})
			if !p.IsGeographic() {
				t.Fatal("expected geographic projection")
			}
			x, y, err := p.Forward(12.5, -33.25)
			if err != nil {
				t.Fatalf("Forward: %v", err)
			}
			if x != 12.5 || y != -33.25 {
				t.Errorf("Forward = (%v, %v), want identity", x, y)
			}
			lon, lat, err := p.Inverse(12.5, -33.25)
			if err != nil {
				t.Fatalf("Inverse: %v", err)
			}
			if lon != 12.5 || lat != -33.25 {
				t.Errorf("Inverse = (%v, %v), want identity", lon, lat)
			}
		})
	}
}

func TestProjectedRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		def  string
	}{
		{name: "utm", def: "+proj=utm +zone=33 +ellps=WGS84"},
		{name: "tmerc", def: "+proj=tmerc +lon_0=15 +k=0.9996 +x_0=500000 +ellps=WGS84"},
		{name: "webmerc", def: "+proj=webmerc +ellps=WGS84"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := FromProj(tt.def)
			if err != nil {
				t.Fatalf("FromProj: %v", err)
			}
			if p.IsGeographic() {
				t.Fatal("expected projected CRS")
			}

			points := [][2]float64{{15.5, 45.25}, {17.9, -33.5}, {15.0, 0.0}}
			for _, pt := range points {
				lon, lat := pt[0], pt[1]
				x, y, err := p.Forward(lon, lat)
				if err != nil {
					t.Fatalf("Forward(%v, %v): %v", lon, lat, err)
				}
				gotLon, gotLat, err := p.Inverse(x, y)
				if err != nil {
					t.Fatalf("Inverse(%v, %v): %v", x, y, err)
				}
				if math.Abs(gotLon-lon) > 1e-6 || math.Abs(gotLat-lat) > 1e-6 {
					t.Errorf("round trip = (%v, %v), want (%v, %v)", gotLon, gotLat, lon, lat)
				}
			}
		})
	}
}

// A UTM zone is transverse mercator with derived parameters, so the two
// spellings must project identically.
func TestUTMMatchesTmerc(t *testing.T) {
	utm, err := FromProj("+proj=utm +zone=33 +ellps=WGS84")
	if err != nil {
		t.Fatalf("FromProj utm: %v", err)
	}
	tmerc, err := FromProj("+proj=tmerc +lon_0=15 +lat_0=0 +k=0.9996 +x_0=500000 +y_0=0 +ellps=WGS84")
	if err != nil {
		t.Fatalf("FromProj tmerc: %v", err)
	}

	x1, y1, err := utm.Forward(16.4, 48.2)
	if err != nil {
		t.Fatalf("utm Forward: %v", err)
	}
	x2, y2, err := tmerc.Forward(16.4, 48.2)
	if err != nil {
		t.Fatalf("tmerc Forward: %v", err)
	}
	if math.Abs(x1-x2) > 1e-6 || math.Abs(y1-y2) > 1e-6 {
		t.Errorf("utm (%v, %v) != tmerc (%v, %v)", x1, y1, x2, y2)
	}
}

func TestUnsupportedProjection(t *testing.T) {
	tests := []struct {
		name string
		def  string
	}{
		{name: "stere", def: "+proj=stere +lat_0=90"},
		{name: "utm without zone", def: "+proj=utm"},
		{name: "merc with lat_ts", def: "+proj=merc +lat_ts=60"},
		{name: "missing proj", def: "+ellps=WGS84"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := FromProj(tt.def)
			if err != nil {
				t.Fatalf("FromProj: %v", err)
			}
			// Construction is lazy; the error surfaces on first use.
			_, _, err = p.Forward(0, 45)
			if !errors.Is(err, ErrUnsupportedProjection) {
				t.Errorf("got %v, want ErrUnsupportedProjection", err)
			}
		})
	}
}
