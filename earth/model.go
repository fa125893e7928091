// Package earth provides Earth-fixed direction vectors for the renderer:
// where the Sun and Moon are, as unit ECEF vectors, at any instant.
package earth

import (
	"math"
	"time"

	"github.com/mitchell-currie/sky-calc/body"
	"github.com/mitchell-currie/sky-calc/geo"
	"github.com/mitchell-currie/sky-calc/vectors"
)

const (
	Radius           = 6371.0   // mean radius, km (spherical approximation)
	EquatorialRadius = 6378.137 // km
)

// DirectionECEF returns the unit vector from the Earth's center toward the
// given surface point in the Earth-centered Earth-fixed frame.
func DirectionECEF(p geo.Point) vectors.Vec3 {
	return vectors.FromSpherical(p.LatDeg, p.LonDeg)
}

// SunDirectionECEF returns the unit ECEF vector toward the Sun at time t.
// Pointing at the sub-solar point is the same rotation as taking the
// apparent RA/Dec in ECI and rotating by GMST.
func SunDirectionECEF(r *body.Resolver, t time.Time) vectors.Vec3 {
	return DirectionECEF(r.Position(body.Sun, t).Point)
}

// MoonDirectionECEF returns the unit ECEF vector toward the Moon at time t.
func MoonDirectionECEF(r *body.Resolver, t time.Time) vectors.Vec3 {
	return DirectionECEF(r.Position(body.Moon, t).Point)
}

// SeparationDeg returns the geocentric angular separation between the Sun
// and Moon at time t, in degrees. Near zero during a solar eclipse.
func SeparationDeg(r *body.Resolver, t time.Time) float64 {
	sun, moon := r.Both(t)
	return DirectionECEF(sun.Point).AngleTo(DirectionECEF(moon.Point)) * 180 / math.Pi
}

// PositionECEF returns a body's ECEF position in km: the unit direction
// toward its sub-point scaled by its distance.
func PositionECEF(p body.GeoPosition) vectors.Vec3 {
	return DirectionECEF(p.Point).Scale(p.DistanceKm)
}

// TopocentricSeparationDeg returns the Sun-Moon angular separation as seen
// from the given surface point, in degrees. Unlike SeparationDeg this
// accounts for parallax, which shifts the Moon by up to a degree near the
// horizon and decides what an eclipse actually looks like from a place.
func TopocentricSeparationDeg(r *body.Resolver, obs geo.Point, t time.Time) float64 {
	sun, moon := r.Both(t)
	o := DirectionECEF(obs).Scale(Radius)
	s := PositionECEF(sun).Sub(o)
	m := PositionECEF(moon).Sub(o)
	return s.AngleTo(m) * 180 / math.Pi
}
