package ephemeris

import (
	"context"
	"sync/atomic"
	"time"

	mbase "github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/coord"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/moonposition"
	"github.com/soniakeys/meeus/v3/nutation"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/meeus/v3/solar"

	"github.com/mitchell-currie/sky-calc/base"
)

const auKm = 149597870.7

// Meeus is the primary provider, backed by the Meeus algorithm
// implementations in github.com/soniakeys/meeus.
type Meeus struct {
	ready atomic.Bool
}

// NewMeeus returns an uninitialized Meeus provider. Call Init (directly or
// via Resolver.Start) before use.
func NewMeeus() *Meeus {
	return &Meeus{}
}

func (m *Meeus) Name() string { return "meeus" }

// Init marks the provider ready. The Meeus tables are compiled in, so there
// is nothing to load; the lifecycle exists so the Resolver can treat every
// primary provider uniformly, including ones that read ephemeris files.
func (m *Meeus) Init(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.ready.Store(true)
	return nil
}

func (m *Meeus) Ready() bool        { return m.ready.Load() }
func (m *Meeus) Accuracy() Accuracy { return AccuracyHigh }

func (m *Meeus) JulianDay(t time.Time) float64 {
	return julian.TimeToJD(t.UTC())
}

func (m *Meeus) SunEquatorial(jd float64) Equatorial {
	ra, dec := solar.ApparentEquatorial(jd)
	T := mbase.J2000Century(jd)
	return Equatorial{
		RADeg:      base.Normalize360(ra.Deg()),
		DecDeg:     dec.Deg(),
		DistanceKm: solar.Radius(T) * auKm,
	}
}

func (m *Meeus) MoonEquatorial(jd float64) Equatorial {
	lam, bet, distKm := moonposition.Position(jd)
	eps := nutation.MeanObliquity(jd)
	ra, dec := coord.EclToEq(lam, bet, eps.Sin(), eps.Cos())
	return Equatorial{
		RADeg:      base.Normalize360(ra.Deg()),
		DecDeg:     dec.Deg(),
		DistanceKm: distKm,
	}
}

func (m *Meeus) EclipticLongitudes(jd float64) (sunDeg, moonDeg float64) {
	T := mbase.J2000Century(jd)
	sunDeg = base.Normalize360(solar.ApparentLongitude(T).Deg())
	lam, _, _ := moonposition.Position(jd)
	moonDeg = base.Normalize360(lam.Deg())
	return sunDeg, moonDeg
}

func (m *Meeus) SiderealTime(jd float64) float64 {
	return base.Normalize360(sidereal.Apparent(jd).Angle().Deg())
}
