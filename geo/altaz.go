package geo

import (
	"math"

	"github.com/mitchell-currie/sky-calc/base"
)

// AltAz is a topocentric direction: altitude above the horizon and azimuth
// measured clockwise from north, both in degrees. Azimuth is in [0,360).
type AltAz struct {
	AltitudeDeg float64
	AzimuthDeg  float64
}

// Topocentric converts a body's geographic sub-point into the altitude and
// azimuth seen from observer. The hour angle is the observer's longitude
// minus the sub-point longitude; the sub-point latitude plays the role of
// declination.
func Topocentric(observer, subPoint Point) AltAz {
	phi := base.Deg2Rad(base.Clamp(observer.LatDeg, -90.0, 90.0))
	dec := base.Deg2Rad(subPoint.LatDeg)
	ha := base.Deg2Rad(observer.LonDeg) - base.Deg2Rad(subPoint.LonDeg)

	sinPhi, cosPhi := math.Sincos(phi)
	sinDec, cosDec := math.Sincos(dec)

	sinAlt := sinPhi*sinDec + cosPhi*cosDec*math.Cos(ha)
	alt := base.Asin(sinAlt)

	cosAlt := math.Cos(alt)
	// At the zenith or nadir azimuth is undefined; report north rather
	// than dividing by zero.
	if math.Abs(cosAlt) < 1e-9 || math.Abs(cosPhi) < 1e-12 {
		az := 0.0
		if sinPhi < 0 {
			// From the south pole every direction is north; from the
			// north pole, south.
			az = 180.0
		}
		return AltAz{AltitudeDeg: base.Rad2Deg(alt), AzimuthDeg: az}
	}

	cosAz := (sinDec - sinAlt*sinPhi) / (cosAlt * cosPhi)
	az := base.Rad2Deg(base.Acos(cosAz))
	if math.Sin(ha) > 0 {
		az = 360.0 - az
	}
	if az >= 360.0 {
		az -= 360.0
	}

	return AltAz{
		AltitudeDeg: base.Rad2Deg(alt),
		AzimuthDeg:  az,
	}
}

// Altitude is Topocentric reduced to the altitude in degrees, for callers
// that sample it in a loop.
func Altitude(observer, subPoint Point) float64 {
	phi := base.Deg2Rad(base.Clamp(observer.LatDeg, -90.0, 90.0))
	dec := base.Deg2Rad(subPoint.LatDeg)
	ha := base.Deg2Rad(observer.LonDeg) - base.Deg2Rad(subPoint.LonDeg)

	sinAlt := math.Sin(phi)*math.Sin(dec) + math.Cos(phi)*math.Cos(dec)*math.Cos(ha)
	return base.Rad2Deg(base.Asin(sinAlt))
}
