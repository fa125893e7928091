// Package ephemeris abstracts the source of raw celestial positions.
//
// Two providers exist: a high-accuracy one backed by the Meeus algorithms,
// and a closed-form approximation used whenever the primary is not (yet)
// available. The Resolver routes every query to whichever is ready, so
// callers never block on provider initialization and never see an error.
// The worst case is reduced accuracy.
package ephemeris

import (
	"context"
	"time"
)

// Accuracy describes how trustworthy a provider's output is.
type Accuracy int

const (
	// AccuracyApprox marks closed-form fallback results: roughly
	// arcminute-level for the Sun, a few tenths of a degree for the Moon.
	AccuracyApprox Accuracy = iota
	// AccuracyHigh marks full ephemeris-grade results.
	AccuracyHigh
)

func (a Accuracy) String() string {
	if a == AccuracyHigh {
		return "high"
	}
	return "approx"
}

// Equatorial is a body's raw geocentric position at one instant:
// equatorial right ascension and declination in degrees, distance in km.
type Equatorial struct {
	RADeg      float64
	DecDeg     float64
	DistanceKm float64
}

// Provider supplies raw positions for the Sun and Moon at a Julian Day.
//
// Init is a one-time setup step and the only call allowed to fail. Until
// Ready reports true the Resolver will not route queries here.
type Provider interface {
	Name() string
	Init(ctx context.Context) error
	Ready() bool
	Accuracy() Accuracy

	// JulianDay converts a time to the provider's Julian Day convention.
	JulianDay(t time.Time) float64

	SunEquatorial(jd float64) Equatorial
	MoonEquatorial(jd float64) Equatorial

	// EclipticLongitudes returns the apparent ecliptic longitudes of the
	// Sun and Moon in degrees, used to derive the lunar phase.
	EclipticLongitudes(jd float64) (sunDeg, moonDeg float64)

	// SiderealTime returns Greenwich sidereal time in degrees [0,360).
	SiderealTime(jd float64) float64
}
