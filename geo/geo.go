// Package geo defines geographic points and the coordinate conversions
// between a body's sub-point and what an observer on the surface sees.
package geo

import (
	"fmt"

	"github.com/mitchell-currie/sky-calc/base"
)

// Point is a location on the Earth's surface. Latitude is in [-90,90]
// degrees, longitude in (-180,180] degrees; both invariants are enforced by
// NewPoint and preserved by every function in this module.
type Point struct {
	LatDeg float64
	LonDeg float64
}

// NewPoint builds a Point, clamping latitude into [-90,90] and wrapping
// longitude into (-180,180]. Out-of-range inputs are repaired rather than
// rejected.
func NewPoint(latDeg, lonDeg float64) Point {
	return Point{
		LatDeg: base.Clamp(latDeg, -90.0, 90.0),
		LonDeg: base.NormalizeLon(lonDeg),
	}
}

func (p Point) String() string {
	return fmt.Sprintf("%.4f°,%.4f°", p.LatDeg, p.LonDeg)
}

// SubPoint projects equatorial coordinates onto the rotating Earth: the
// returned point is where the body appears at the zenith. Longitude is the
// right ascension minus Greenwich sidereal time, wrapped into (-180,180];
// latitude equals the declination.
func SubPoint(raDeg, decDeg, gmstDeg float64) Point {
	return NewPoint(decDeg, raDeg-gmstDeg)
}
