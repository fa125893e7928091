package geo

import (
	"math"
	"testing"
)

func TestSubPointNormalization(t *testing.T) {
	cases := []struct {
		ra, dec, gmst float64
		wantLat       float64
		wantLon       float64
	}{
		{350, 10, 10, 10, -20}, // 340 wraps to -20
		{0, 0, 0, 0, 0},
		{10, -5, 350, -5, 20},  // -340 wraps to 20
		{180, 23.4, 0, 23.4, 180},
		{0, 0, 180, 0, 180},    // -180 wraps to +180
	}
	for _, c := range cases {
		p := SubPoint(c.ra, c.dec, c.gmst)
		if math.Abs(p.LatDeg-c.wantLat) > 1e-12 || math.Abs(p.LonDeg-c.wantLon) > 1e-12 {
			t.Errorf("SubPoint(%v,%v,%v) = %v, want {%v %v}",
				c.ra, c.dec, c.gmst, p, c.wantLat, c.wantLon)
		}
		if p.LonDeg <= -180 || p.LonDeg > 180 {
			t.Errorf("SubPoint longitude %v outside (-180,180]", p.LonDeg)
		}
	}
}

func TestNewPointClampsLatitude(t *testing.T) {
	if p := NewPoint(95, 0); p.LatDeg != 90 {
		t.Errorf("NewPoint(95,0).LatDeg = %v, want 90", p.LatDeg)
	}
	if p := NewPoint(-123, 0); p.LatDeg != -90 {
		t.Errorf("NewPoint(-123,0).LatDeg = %v, want -90", p.LatDeg)
	}
}

func TestTopocentricZenith(t *testing.T) {
	obs := NewPoint(51.5, -0.1)
	aa := Topocentric(obs, obs)
	if math.Abs(aa.AltitudeDeg-90) > 1e-9 {
		t.Errorf("body at observer's sub-point: altitude %v, want 90", aa.AltitudeDeg)
	}
	if math.IsNaN(aa.AzimuthDeg) {
		t.Error("zenith azimuth is NaN")
	}
}

func TestTopocentricQuadrants(t *testing.T) {
	obs := NewPoint(0, 0)
	cases := []struct {
		name    string
		sub     Point
		wantAlt float64
		wantAz  float64
	}{
		// Body on the celestial equator 20 deg west of the observer:
		// alt = 70, setting in the west.
		{"west", NewPoint(0, -20), 70, 270},
		// 20 deg east: rising in the east.
		{"east", NewPoint(0, 20), 70, 90},
		// Due north on the horizon-ish.
		{"north", NewPoint(60, 0), 30, 0},
		// Due south.
		{"south", NewPoint(-60, 0), 30, 180},
	}
	for _, c := range cases {
		aa := Topocentric(obs, c.sub)
		if math.Abs(aa.AltitudeDeg-c.wantAlt) > 1e-9 {
			t.Errorf("%s: altitude %v, want %v", c.name, aa.AltitudeDeg, c.wantAlt)
		}
		if math.Abs(aa.AzimuthDeg-c.wantAz) > 1e-9 {
			t.Errorf("%s: azimuth %v, want %v", c.name, aa.AzimuthDeg, c.wantAz)
		}
	}
}

func TestTopocentricAzimuthRange(t *testing.T) {
	for lon := -175.0; lon <= 180; lon += 5 {
		for lat := -85.0; lat <= 85; lat += 17 {
			aa := Topocentric(NewPoint(40, -105), NewPoint(lat, lon))
			if aa.AzimuthDeg < 0 || aa.AzimuthDeg >= 360 {
				t.Fatalf("azimuth %v outside [0,360) for sub-point (%v,%v)",
					aa.AzimuthDeg, lat, lon)
			}
			if math.IsNaN(aa.AltitudeDeg) || math.IsNaN(aa.AzimuthDeg) {
				t.Fatalf("NaN alt/az for sub-point (%v,%v)", lat, lon)
			}
		}
	}
}

func TestAltitudeMatchesTopocentric(t *testing.T) {
	obs := NewPoint(35, 139)
	sub := NewPoint(-10, 100)
	if a, b := Altitude(obs, sub), Topocentric(obs, sub).AltitudeDeg; math.Abs(a-b) > 1e-12 {
		t.Errorf("Altitude %v != Topocentric altitude %v", a, b)
	}
}
