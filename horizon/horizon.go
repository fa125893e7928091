// Package horizon models the altitude at which a body's upper limb touches
// the horizon, accounting for refraction, apparent size, and (for the Moon)
// parallax.
package horizon

import (
	"math"

	"github.com/mitchell-currie/sky-calc/base"
	"github.com/mitchell-currie/sky-calc/body"
)

const (
	// SunThresholdDeg is the standard rise/set altitude for the Sun's
	// center: 34' refraction plus 16' semi-diameter below the geometric
	// horizon. Solar distance variation is negligible here.
	SunThresholdDeg = -0.833

	// moonRefractionDeg is the refraction part of the lunar threshold.
	moonRefractionDeg = -0.566

	// equatorialRadiusKm is the Earth radius used for lunar parallax.
	equatorialRadiusKm = 6378.137
)

// Threshold returns the altitude in degrees at which the body is considered
// rising or setting. For the Moon it depends on the instantaneous distance:
// the geocentric altitude must overcome parallax (which lowers the Moon for
// a surface observer) less the semi-diameter and refraction. Distance swings
// of ±3.5% per orbit shift rise/set times by minutes, so callers must pass
// the current distance on every sample rather than caching a threshold.
func Threshold(b body.Body, distanceKm float64) float64 {
	if b == body.Sun {
		return SunThresholdDeg
	}
	if distanceKm <= 0 {
		distanceKm = body.MeanMoonDistanceKm
	}
	return moonRefractionDeg - SemiDiameterDeg(distanceKm) + ParallaxDeg(distanceKm)
}

// SemiDiameterDeg returns the Moon's apparent angular radius in degrees at
// the given distance.
func SemiDiameterDeg(distanceKm float64) float64 {
	return base.Rad2Deg(math.Atan(body.MoonRadiusKm / distanceKm))
}

// ParallaxDeg returns the Moon's horizontal parallax in degrees at the given
// distance.
func ParallaxDeg(distanceKm float64) float64 {
	return base.Rad2Deg(math.Atan(equatorialRadiusKm / distanceKm))
}
