package ephemeris

import (
	"context"
	"math"
	"time"

	"github.com/mitchell-currie/sky-calc/base"
)

// Approx is the closed-form fallback provider. It is always ready and needs
// no initialization; its results are lower accuracy than the Meeus provider
// and are flagged as such through Accuracy.
//
// The formulas are the standard low-precision models: the Unix-epoch Julian
// Day identity, the GMST polynomial, a solar equation-of-center model, and a
// truncated lunar series in the fundamental arguments L', M, Mm, D, F.
type Approx struct{}

func (Approx) Name() string                   { return "closed-form" }
func (Approx) Init(ctx context.Context) error { return nil }
func (Approx) Ready() bool                    { return true }
func (Approx) Accuracy() Accuracy             { return AccuracyApprox }

// JulianDay uses the exact identity JD = unixMillis/86400000 + 2440587.5.
func (Approx) JulianDay(t time.Time) float64 {
	return float64(t.UnixMilli())/86400000.0 + 2440587.5
}

// SiderealTime is the standard GMST polynomial
// 280.46061837 + 360.98564736629·D + 0.000387933·T², D days since J2000.
func (Approx) SiderealTime(jd float64) float64 {
	d := jd - 2451545.0
	T := d / 36525.0
	return base.Normalize360(280.46061837 + 360.98564736629*d + 0.000387933*T*T)
}

func (p Approx) SunEquatorial(jd float64) Equatorial {
	lam, g := sunEclipticLon(jd)
	eps := meanObliquity(jd)

	sl, cl := math.Sincos(lam)
	se, ce := math.Sincos(eps)

	ra := math.Atan2(ce*sl, cl)
	if ra < 0 {
		ra += 2 * math.Pi
	}
	dec := base.Asin(se * sl)

	// Radius vector from the same equation-of-center model, in AU.
	r := 1.00014 - 0.01671*math.Cos(g) - 0.00014*math.Cos(2*g)

	return Equatorial{
		RADeg:      base.Rad2Deg(ra),
		DecDeg:     base.Rad2Deg(dec),
		DistanceKm: r * auKm,
	}
}

func (p Approx) MoonEquatorial(jd float64) Equatorial {
	lam, bet, dist := moonEclipticApprox(jd)
	eps := meanObliquity(jd)

	sl, cl := math.Sincos(lam)
	sb, cb := math.Sincos(bet)
	se, ce := math.Sincos(eps)

	x := cb * cl
	y := cb*sl*ce - sb*se
	z := cb*sl*se + sb*ce

	ra := math.Atan2(y, x)
	if ra < 0 {
		ra += 2 * math.Pi
	}
	dec := base.Asin(z)

	return Equatorial{
		RADeg:      base.Rad2Deg(ra),
		DecDeg:     base.Rad2Deg(dec),
		DistanceKm: dist,
	}
}

func (p Approx) EclipticLongitudes(jd float64) (sunDeg, moonDeg float64) {
	sl, _ := sunEclipticLon(jd)
	ml, _, _ := moonEclipticApprox(jd)
	return base.Normalize360(base.Rad2Deg(sl)), base.Normalize360(base.Rad2Deg(ml))
}

// sunEclipticLon returns the Sun's ecliptic longitude and mean anomaly in
// radians, via the equation of center.
func sunEclipticLon(jd float64) (lam, g float64) {
	d := jd - 2451545.0

	// Mean anomaly and mean longitude of the Sun.
	g = base.Deg2Rad(base.Normalize360(357.529 + 0.98560028*d))
	q := base.Deg2Rad(base.Normalize360(280.459 + 0.98564736*d))

	lam = q +
		base.Deg2Rad(1.915)*math.Sin(g) +
		base.Deg2Rad(0.020)*math.Sin(2*g)
	return lam, g
}

// moonEclipticApprox returns the Moon's ecliptic longitude and latitude in
// radians and its distance in km, from a truncated periodic series.
func moonEclipticApprox(jd float64) (lam, bet, distKm float64) {
	d := jd - 2451545.0

	// Fundamental arguments, degrees.
	Lp := base.Normalize360(218.3164477 + 13.17639648*d) // mean longitude
	M := base.Normalize360(357.5291092 + 0.98560028*d)   // solar mean anomaly
	Mm := base.Normalize360(134.9633964 + 13.06499295*d) // lunar mean anomaly
	D := base.Normalize360(297.8501921 + 12.19074912*d)  // mean elongation
	F := base.Normalize360(93.2720950 + 13.22935024*d)   // argument of latitude

	Lr := base.Deg2Rad(Lp)
	Mr := base.Deg2Rad(M)
	Mmr := base.Deg2Rad(Mm)
	Dr := base.Deg2Rad(D)
	Fr := base.Deg2Rad(F)

	lam = Lr +
		base.Deg2Rad(6.289)*math.Sin(Mmr) +
		base.Deg2Rad(1.274)*math.Sin(2*Dr-Mmr) +
		base.Deg2Rad(0.658)*math.Sin(2*Dr) +
		base.Deg2Rad(0.214)*math.Sin(2*Mmr) -
		base.Deg2Rad(0.186)*math.Sin(Mr) -
		base.Deg2Rad(0.114)*math.Sin(2*Fr)

	bet = base.Deg2Rad(5.128)*math.Sin(Fr) +
		base.Deg2Rad(0.280)*math.Sin(Mmr+Fr) +
		base.Deg2Rad(0.277)*math.Sin(Mmr-Fr) +
		base.Deg2Rad(0.173)*math.Sin(2*Dr-Fr)

	distKm = 385000.56 -
		20905.0*math.Cos(Mmr) -
		3699.0*math.Cos(2*Dr-Mmr) -
		2956.0*math.Cos(2*Dr) -
		570.0*math.Cos(2*Mmr) -
		246.0*math.Cos(2*Dr+Mmr)

	return lam, bet, distKm
}

func meanObliquity(jd float64) float64 {
	d := jd - 2451545.0
	return base.Deg2Rad(23.439291 - 0.00000036*d)
}
