// Package body resolves where the Sun and Moon are over the Earth at any
// instant: geographic sub-point, distance, and (for the Moon) phase.
package body

import (
	"math"
	"time"

	"github.com/mitchell-currie/sky-calc/base"
	"github.com/mitchell-currie/sky-calc/ephemeris"
	"github.com/mitchell-currie/sky-calc/geo"
	"golang.org/x/sync/errgroup"
)

// Body identifies a celestial body.
type Body int

const (
	Sun Body = iota
	Moon
)

func (b Body) String() string {
	if b == Moon {
		return "Moon"
	}
	return "Sun"
}

// Physical constants, km.
const (
	SunRadiusKm        = 696000.0
	MoonRadiusKm       = 1737.4
	MeanMoonDistanceKm = 384400.0
	AstronomicalUnitKm = 149597870.7
)

// GeoPosition is a body's derived sub-point at one instant. Phase is defined
// only for the Moon, in [0,1) with 0 = new moon. Approx reports that the
// values came from the closed-form fallback rather than the full ephemeris.
type GeoPosition struct {
	Point      geo.Point
	DistanceKm float64
	Phase      float64
	Approx     bool
}

// Resolver turns raw ephemeris output into geographic positions. It holds no
// state beyond the ephemeris handle; every query is a pure function of its
// inputs.
type Resolver struct {
	eph *ephemeris.Resolver
}

func NewResolver(eph *ephemeris.Resolver) *Resolver {
	return &Resolver{eph: eph}
}

// Ephemeris exposes the underlying ephemeris resolver.
func (r *Resolver) Ephemeris() *ephemeris.Resolver { return r.eph }

// Position returns the body's sub-point, distance and (for the Moon) phase
// at instant t.
func (r *Resolver) Position(b Body, t time.Time) GeoPosition {
	jd := r.eph.JulianDay(t)
	gmst := r.eph.SiderealTime(jd)

	var eq ephemeris.Equatorial
	if b == Moon {
		eq = r.eph.MoonEquatorial(jd)
	} else {
		eq = r.eph.SunEquatorial(jd)
	}

	pos := GeoPosition{
		Point:      geo.SubPoint(eq.RADeg, eq.DecDeg, gmst),
		DistanceKm: eq.DistanceKm,
		Approx:     r.eph.Accuracy() == ephemeris.AccuracyApprox,
	}
	if b == Moon {
		pos.Phase = r.phaseAt(jd)
	}
	return pos
}

// Distance returns the body's geocentric distance in km at instant t.
func (r *Resolver) Distance(b Body, t time.Time) float64 {
	jd := r.eph.JulianDay(t)
	if b == Moon {
		return r.eph.MoonEquatorial(jd).DistanceKm
	}
	return r.eph.SunEquatorial(jd).DistanceKm
}

// Phase returns the lunar phase at t in [0,1), 0 = new, 0.5 = full.
func (r *Resolver) Phase(t time.Time) float64 {
	return r.phaseAt(r.eph.JulianDay(t))
}

func (r *Resolver) phaseAt(jd float64) float64 {
	sunLon, moonLon := r.eph.EclipticLongitudes(jd)
	phase := base.Normalize360(moonLon-sunLon) / 360.0
	if phase >= 1 {
		phase -= 1
	}
	return phase
}

// Both resolves the Sun and Moon concurrently. The two queries share no
// state, so running them in parallel is safe and roughly halves the latency
// of a full scene update.
func (r *Resolver) Both(t time.Time) (sun, moon GeoPosition) {
	var g errgroup.Group
	g.Go(func() error {
		sun = r.Position(Sun, t)
		return nil
	})
	g.Go(func() error {
		moon = r.Position(Moon, t)
		return nil
	})
	_ = g.Wait()
	return sun, moon
}

// Illumination converts a phase in [0,1) into the illuminated percentage of
// the lunar disk, 0..100.
func Illumination(phase float64) int {
	return int(math.Round((1 - math.Cos(2*math.Pi*phase)) / 2 * 100))
}

// PhaseName maps a phase in [0,1) to one of the eight conventional names.
func PhaseName(phase float64) string {
	switch {
	case phase < 0.03 || phase >= 0.97:
		return "New"
	case phase < 0.22:
		return "Waxing Crescent"
	case phase < 0.28:
		return "First Quarter"
	case phase < 0.47:
		return "Waxing Gibbous"
	case phase < 0.53:
		return "Full"
	case phase < 0.72:
		return "Waning Gibbous"
	case phase < 0.78:
		return "Last Quarter"
	default:
		return "Waning Crescent"
	}
}
