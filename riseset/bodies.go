package riseset

import (
	"time"

	"github.com/mitchell-currie/sky-calc/body"
	"github.com/mitchell-currie/sky-calc/ephemeris"
	"github.com/mitchell-currie/sky-calc/geo"
	"github.com/mitchell-currie/sky-calc/horizon"
	"golang.org/x/sync/errgroup"
)

// Step sizes for the daily scan. The lunar threshold moves with distance, so
// the Moon gets the finer step; the Sun's constant threshold tolerates the
// coarser one.
const (
	SunStep  = 10 * time.Minute
	MoonStep = 5 * time.Minute
)

// Twilight altitudes for the Sun's center, degrees.
const (
	CivilTwilightDeg        = -6.0
	NauticalTwilightDeg     = -12.0
	AstronomicalTwilightDeg = -18.0
)

// Search binds the generic crossing search to real body positions.
type Search struct {
	bodies *body.Resolver
}

func New(r *body.Resolver) *Search {
	return &Search{bodies: r}
}

// StepFor returns the daily-scan step used for the body.
func StepFor(b body.Body) time.Duration {
	if b == body.Moon {
		return MoonStep
	}
	return SunStep
}

// altitude returns the body's topocentric altitude function for an observer.
func (s *Search) altitude(b body.Body, obs geo.Point) AltitudeFunc {
	eph := s.bodies.Ephemeris()
	return func(t time.Time) float64 {
		alt, _ := s.sample(eph, b, obs, t)
		return alt
	}
}

// threshold returns the horizon threshold function for the body. The lunar
// threshold re-queries the distance at every sample; it must not be cached
// across samples.
func (s *Search) threshold(b body.Body) ThresholdFunc {
	if b == body.Sun {
		return Constant(horizon.SunThresholdDeg)
	}
	eph := s.bodies.Ephemeris()
	return func(t time.Time) float64 {
		d := eph.MoonEquatorial(eph.JulianDay(t)).DistanceKm
		return horizon.Threshold(body.Moon, d)
	}
}

func (s *Search) sample(eph *ephemeris.Resolver, b body.Body, obs geo.Point, t time.Time) (altDeg, distKm float64) {
	jd := eph.JulianDay(t)
	var eq ephemeris.Equatorial
	if b == body.Moon {
		eq = eph.MoonEquatorial(jd)
	} else {
		eq = eph.SunEquatorial(jd)
	}
	sub := geo.SubPoint(eq.RADeg, eq.DecDeg, eph.SiderealTime(jd))
	return geo.Altitude(obs, sub), eq.DistanceKm
}

// NoonUTC returns the instant of 12:00 local civil time on the given date
// for a fixed UTC offset in hours.
func NoonUTC(year int, month time.Month, day int, tzOffsetHours float64) time.Time {
	noon := time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
	return noon.Add(-time.Duration(tzOffsetHours * float64(time.Hour)))
}

// ForDay finds the body's rise and set within ±12 hours of local noon.
func (s *Search) ForDay(b body.Body, latDeg, lonDeg float64, noonUTC time.Time) Events {
	obs := geo.NewPoint(latDeg, lonDeg)
	return ForDay(s.altitude(b, obs), s.threshold(b), noonUTC, StepFor(b))
}

// Next finds the body's next rise or set after `from`, up to maxDays ahead.
func (s *Search) Next(b body.Body, latDeg, lonDeg float64, from time.Time, maxDays int) *Event {
	obs := geo.NewPoint(latDeg, lonDeg)
	return Next(s.altitude(b, obs), s.threshold(b), from, maxDays)
}

// State classifies the day around noonUTC: normal, polar day, or polar
// night. The altitude check that distinguishes the polar cases is evaluated
// at noonUTC.
func (s *Search) State(b body.Body, latDeg, lonDeg float64, noonUTC time.Time) DayState {
	obs := geo.NewPoint(latDeg, lonDeg)
	alt := s.altitude(b, obs)
	thr := s.threshold(b)
	ev := ForDay(alt, thr, noonUTC, StepFor(b))
	return Classify(alt, thr, noonUTC, ev)
}

// SunAtAltitude finds the Sun's crossings of an arbitrary altitude, e.g. the
// twilight thresholds. The same unified search, with the altitude as the
// threshold.
func (s *Search) SunAtAltitude(latDeg, lonDeg float64, noonUTC time.Time, altDeg float64) Events {
	obs := geo.NewPoint(latDeg, lonDeg)
	return ForDay(s.altitude(body.Sun, obs), Constant(altDeg), noonUTC, SunStep)
}

// BothForDay runs the daily search for the Sun and the Moon concurrently.
// The searches share no mutable state.
func (s *Search) BothForDay(latDeg, lonDeg float64, noonUTC time.Time) (sun, moon Events) {
	var g errgroup.Group
	g.Go(func() error {
		sun = s.ForDay(body.Sun, latDeg, lonDeg, noonUTC)
		return nil
	})
	g.Go(func() error {
		moon = s.ForDay(body.Moon, latDeg, lonDeg, noonUTC)
		return nil
	})
	_ = g.Wait()
	return sun, moon
}

// Daylight returns the time between rise and set, if both occurred.
func Daylight(ev Events) (time.Duration, bool) {
	if ev.Rise == nil || ev.Set == nil {
		return 0, false
	}
	return ev.Set.Time.Sub(ev.Rise.Time), true
}
