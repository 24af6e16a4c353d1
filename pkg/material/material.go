package material

import (
	"math"

	"github.com/ivanstepanovftw/go-raytrace/pkg/core"
)

// Albedo channel indices. The four weights independently scale the
// diffuse, specular, reflected and refracted light contributions; they
// need not sum to one.
const (
	AlbedoDiffuse = iota
	AlbedoSpecular
	AlbedoReflect
	AlbedoRefract
)

// Material describes how a surface responds to light.
// It is a value type and is copied freely.
type Material struct {
	RefractiveIndex  float64    // 1.0 = no bending
	Albedo           [4]float64 // per-contribution weights, see channel indices above
	DiffuseColor     core.Vec3  // base color, linear RGB
	SpecularExponent float64    // Phong shininess
}

// Default returns the neutral material used before a real hit is found:
// purely diffuse weighting with a black diffuse color.
func Default() Material {
	return Material{
		RefractiveIndex: 1.0,
		Albedo:          [4]float64{1, 0, 0, 0},
	}
}

// Reflect calculates the mirror reflection of incident vector i off a
// surface with normal n: i - 2*(i·n)*n
func Reflect(i, n core.Vec3) core.Vec3 {
	return i.Subtract(n.Multiply(2 * i.Dot(n)))
}

// Refract bends incident vector i through a surface with normal n using
// Snell's law, where refractiveIndex is the index of the medium behind
// the surface. Whether the ray is entering or exiting the medium is
// detected from the sign of the incidence cosine; on exit the normal is
// flipped and the index ratio inverted. Returns false on total internal
// reflection: there is no transmitted ray and the caller must skip it.
func Refract(i, n core.Vec3, refractiveIndex float64) (core.Vec3, bool) {
	cosi := -max(-1, min(1, i.Dot(n)))
	if cosi < 0 {
		// Ray is inside the medium, looking out
		return Refract(i, n.Negate(), 1/refractiveIndex)
	}

	eta := 1 / refractiveIndex
	k := 1 - eta*eta*(1-cosi*cosi)
	if k < 0 {
		return core.Vec3{}, false
	}
	return i.Multiply(eta).Add(n.Multiply(eta*cosi - math.Sqrt(k))), true
}
