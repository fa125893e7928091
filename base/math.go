// Package base holds small numeric helpers shared by the astronomy packages.
package base

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Clamp returns x limited to the inclusive range [lo, hi].
func Clamp[T constraints.Ordered](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Clamp01 clamps x into [0,1].
func Clamp01(x float64) float64 {
	return Clamp(x, 0.0, 1.0)
}

// Asin is math.Asin with its argument clamped into [-1,1], so floating-point
// noise just outside the domain can never produce NaN.
func Asin(x float64) float64 {
	return math.Asin(Clamp(x, -1.0, 1.0))
}

// Acos is math.Acos with its argument clamped into [-1,1].
func Acos(x float64) float64 {
	return math.Acos(Clamp(x, -1.0, 1.0))
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180.0
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(r float64) float64 {
	return r * 180.0 / math.Pi
}

// Normalize360 wraps an angle in degrees into [0, 360).
func Normalize360(d float64) float64 {
	d = math.Mod(d, 360.0)
	if d < 0 {
		d += 360.0
	}
	return d
}

// NormalizeLon wraps a longitude in degrees into (-180, 180].
func NormalizeLon(d float64) float64 {
	d = math.Mod(d, 360.0)
	if d <= -180.0 {
		d += 360.0
	} else if d > 180.0 {
		d -= 360.0
	}
	return d
}

// Lerp returns the linear interpolation a + t*(b-a).
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
