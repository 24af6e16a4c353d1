package geometry

import (
	"math"

	"github.com/ivanstepanovftw/go-raytrace/pkg/core"
	"github.com/ivanstepanovftw/go-raytrace/pkg/material"
)

// Sphere represents a sphere primitive with its surface material
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) Sphere {
	return Sphere{Center: center, Radius: radius, Material: mat}
}

// Intersect tests the ray from origin along dir against the sphere and
// returns the hit distance. The direction must be unit length. The entry
// distance is preferred; when the origin is inside the sphere the exit
// distance is returned instead. ok is false when the sphere is missed or
// lies entirely behind the origin.
func (s *Sphere) Intersect(origin, dir core.Vec3) (float64, bool) {
	l := s.Center.Subtract(origin)
	tca := l.Dot(dir)
	d2 := l.Dot(l) - tca*tca
	r2 := s.Radius * s.Radius
	if d2 > r2 {
		return 0, false
	}

	thc := math.Sqrt(r2 - d2)
	t := tca - thc
	if t < 0 {
		t = tca + thc
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}

// NormalAt returns the outward unit normal at a point on the surface
func (s *Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}
