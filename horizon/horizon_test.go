package horizon

import (
	"testing"

	"github.com/mitchell-currie/sky-calc/body"
)

func TestSunThresholdConstant(t *testing.T) {
	if got := Threshold(body.Sun, 0); got != -0.833 {
		t.Errorf("sun threshold = %v, want -0.833", got)
	}
	// Distance must not matter for the Sun.
	if Threshold(body.Sun, 147e6) != Threshold(body.Sun, 152e6) {
		t.Error("sun threshold varies with distance")
	}
}

func TestMoonSemiDiameterMonotonic(t *testing.T) {
	perigee := SemiDiameterDeg(356500)
	apogee := SemiDiameterDeg(406700)
	if perigee <= apogee {
		t.Errorf("semi-diameter at perigee %v should exceed apogee %v", perigee, apogee)
	}
	// Sanity: mean angular radius of the Moon is about a quarter degree.
	mean := SemiDiameterDeg(body.MeanMoonDistanceKm)
	if mean < 0.24 || mean > 0.27 {
		t.Errorf("mean semi-diameter %v deg implausible", mean)
	}
}

func TestMoonThresholdDependsOnDistance(t *testing.T) {
	near := Threshold(body.Moon, 356500)
	far := Threshold(body.Moon, 406700)
	if near == far {
		t.Fatal("moon threshold ignored distance")
	}
	// Parallax dominates semi-diameter (Earth is bigger than the Moon), so
	// the net threshold is positive and larger when the Moon is closer.
	if near <= far {
		t.Errorf("threshold at perigee %v, apogee %v; perigee should be larger", near, far)
	}
	for _, d := range []float64{356500.0, 384400.0, 406700.0} {
		thr := Threshold(body.Moon, d)
		if thr < 0 || thr > 0.3 {
			t.Errorf("threshold(%v km) = %v deg, outside plausible band", d, thr)
		}
	}
}

func TestMoonThresholdInvalidDistance(t *testing.T) {
	if got, want := Threshold(body.Moon, 0), Threshold(body.Moon, body.MeanMoonDistanceKm); got != want {
		t.Errorf("zero distance: got %v, want mean-distance threshold %v", got, want)
	}
}

func TestParallaxExceedsSemiDiameter(t *testing.T) {
	for _, d := range []float64{356500.0, 384400.0, 406700.0} {
		if ParallaxDeg(d) <= SemiDiameterDeg(d) {
			t.Errorf("parallax should exceed semi-diameter at %v km", d)
		}
	}
}
