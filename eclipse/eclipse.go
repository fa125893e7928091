// Package eclipse derives solar-eclipse shadow geometry from instantaneous
// body distances: the umbra, penumbra, and antumbra cones, and the exact
// fraction of the solar disk covered as seen from a surface point.
package eclipse

import (
	"math"

	"github.com/mitchell-currie/sky-calc/base"
	"github.com/mitchell-currie/sky-calc/body"
)

// ConeGeometry describes the Moon's shadow cones for one pair of distances.
// Angles are in degrees, lengths and radii in km. Everything follows from
// similar triangles on the Sun and Moon disks; nothing is cached because the
// distances move continuously.
type ConeGeometry struct {
	UmbraHalfAngleDeg float64
	UmbraLengthKm     float64
	UmbraBaseRadiusKm float64

	PenumbraHalfAngleDeg    float64
	PenumbraApexDistanceKm  float64
	PenumbraLengthKm        float64
	PenumbraRadiusAtEarthKm float64

	// UmbraReachesEarth is true when the umbra cone is long enough to touch
	// the surface: a total eclipse is geometrically possible. When false the
	// antumbra diverges past the apex and any central eclipse is annular.
	UmbraReachesEarth    bool
	AntumbraHalfAngleDeg float64
}

// Cones computes the shadow geometry for the given Earth–Moon and Earth–Sun
// distances in km.
func Cones(moonDistanceKm, sunDistanceKm float64) ConeGeometry {
	moonSunDist := sunDistanceKm - moonDistanceKm

	umbraHalf := math.Atan((body.SunRadiusKm - body.MoonRadiusKm) / moonSunDist)
	umbraLength := body.MoonRadiusKm / math.Tan(umbraHalf)

	penumbraHalf := math.Atan((body.SunRadiusKm + body.MoonRadiusKm) / moonSunDist)
	penumbraApex := body.MoonRadiusKm / math.Tan(penumbraHalf)

	g := ConeGeometry{
		UmbraHalfAngleDeg: base.Rad2Deg(umbraHalf),
		UmbraLengthKm:     umbraLength,
		UmbraBaseRadiusKm: body.MoonRadiusKm,

		PenumbraHalfAngleDeg:    base.Rad2Deg(penumbraHalf),
		PenumbraApexDistanceKm:  penumbraApex,
		PenumbraLengthKm:        penumbraApex + moonDistanceKm,
		PenumbraRadiusAtEarthKm: body.MoonRadiusKm + moonDistanceKm*math.Tan(penumbraHalf),

		UmbraReachesEarth: umbraLength > moonDistanceKm,
	}
	if !g.UmbraReachesEarth {
		// The antumbra opens out from the umbra apex with the same
		// half-angle the umbra converged with.
		g.AntumbraHalfAngleDeg = g.UmbraHalfAngleDeg
	}
	return g
}

// Obscuration returns the fraction of the solar disk covered by the Moon,
// 0 = no overlap, 1 = the Sun fully hidden. Inputs are the angular
// separation of the two centers and each disk's angular radius, all in the
// same unit (degrees). This is the exact circle–circle lens area, with its
// three branches: disjoint, one disk inside the other, and partial overlap.
func Obscuration(separationDeg, sunRadiusDeg, moonRadiusDeg float64) float64 {
	s := math.Abs(separationDeg)
	rs := sunRadiusDeg
	rm := moonRadiusDeg
	if rs <= 0 || rm <= 0 {
		return 0
	}

	sunArea := math.Pi * rs * rs

	switch {
	case s >= rs+rm:
		// No overlap.
		return 0
	case s <= math.Abs(rs-rm):
		// One disk entirely inside the other.
		if rm >= rs {
			return 1
		}
		return (math.Pi * rm * rm) / sunArea
	}

	// Partial overlap: sum of the two circular segments bounded by the
	// chord through the intersection points.
	d1 := (s*s + rs*rs - rm*rm) / (2 * s)
	d2 := s - d1

	lens := rs*rs*base.Acos(d1/rs) - d1*math.Sqrt(math.Max(0, rs*rs-d1*d1)) +
		rm*rm*base.Acos(d2/rm) - d2*math.Sqrt(math.Max(0, rm*rm-d2*d2))

	return base.Clamp01(lens / sunArea)
}

// AngularRadiusDeg returns the apparent angular radius in degrees of a body
// with the given physical radius at the given distance, both in km.
func AngularRadiusDeg(radiusKm, distanceKm float64) float64 {
	if distanceKm <= 0 {
		return 0
	}
	return base.Rad2Deg(math.Atan(radiusKm / distanceKm))
}
