package renderer

import (
	"math"

	"github.com/ivanstepanovftw/go-raytrace/pkg/core"
	"github.com/ivanstepanovftw/go-raytrace/pkg/material"
	"github.com/ivanstepanovftw/go-raytrace/pkg/scene"
)

const (
	// maxDepth bounds the recursion; reflection and refraction double
	// the fan-out each level, so 4 means at most 32 leaf rays per pixel.
	maxDepth = 4
	// maxRayDist is the cutoff beyond which a hit counts as background.
	maxRayDist = 1000.0
	// surfaceBias displaces recursive ray origins off the surface so
	// floating-point rounding cannot make a ray re-hit the surface it
	// starts on.
	surfaceBias = 1e-3
)

// BackgroundColor is returned for every ray that leaves the scene.
var BackgroundColor = core.NewVec3(0.2, 0.7, 0.8)

// Raytracer evaluates colors for individual rays against a fixed scene.
// The scene is read-only, so a single Raytracer is safely shared by all
// render workers.
type Raytracer struct {
	scene *scene.Scene
}

// NewRaytracer creates a raytracer for the given scene
func NewRaytracer(s *scene.Scene) *Raytracer {
	return &Raytracer{scene: s}
}

// sceneIntersect finds the nearest surface along the ray: a linear scan
// over the spheres keeping the strictly nearest hit, then the floor
// plane. A nearer floor hit overrides the hit point, normal and diffuse
// color; the remaining material fields carry over from the sphere scan.
func (rt *Raytracer) sceneIntersect(origin, dir core.Vec3) (point, normal core.Vec3, mat material.Material, ok bool) {
	nearest := math.MaxFloat64
	mat = material.Default()

	for i := range rt.scene.Spheres {
		s := &rt.scene.Spheres[i]
		if t, hit := s.Intersect(origin, dir); hit && t < nearest {
			nearest = t
			point = origin.Add(dir.Multiply(t))
			normal = s.NormalAt(point)
			mat = s.Material
		}
	}

	if floor := rt.scene.Floor; floor != nil {
		if t, hit := floor.Intersect(origin, dir); hit && t < nearest {
			nearest = t
			point = origin.Add(dir.Multiply(t))
			normal = floor.Normal()
			mat.DiffuseColor = floor.ColorAt(point)
		}
	}

	return point, normal, mat, nearest < maxRayDist
}

// CastRay recursively traces a ray and returns its linear RGB color.
// Components may exceed 1; tone mapping happens later. The direction
// must be unit length.
func (rt *Raytracer) CastRay(origin, dir core.Vec3, depth int) core.Vec3 {
	if depth > maxDepth {
		return BackgroundColor
	}

	point, normal, mat, ok := rt.sceneIntersect(origin, dir)
	if !ok {
		return BackgroundColor
	}

	reflectDir := material.Reflect(dir, normal).Normalize()
	reflectOrig := offsetOrigin(point, normal, reflectDir)
	reflectColor := rt.CastRay(reflectOrig, reflectDir, depth+1)

	var refractColor core.Vec3
	if refractDir, transmits := material.Refract(dir, normal, mat.RefractiveIndex); transmits {
		refractDir = refractDir.Normalize()
		refractOrig := offsetOrigin(point, normal, refractDir)
		refractColor = rt.CastRay(refractOrig, refractDir, depth+1)
	}

	var diffuse, specular float64
	for _, light := range rt.scene.Lights {
		toLight := light.Position.Subtract(point)
		lightDist := toLight.Length()
		lightDir := toLight.Multiply(1 / lightDist)

		// Binary shadow test: any geometry strictly closer than the
		// light kills this light's contribution entirely.
		shadowOrig := offsetOrigin(point, normal, lightDir)
		if shadowPoint, _, _, inShadow := rt.sceneIntersect(shadowOrig, lightDir); inShadow &&
			shadowPoint.Subtract(shadowOrig).Length() < lightDist {
			continue
		}

		diffuse += light.Intensity * max(0, lightDir.Dot(normal))
		specular += light.Intensity * math.Pow(
			max(0, material.Reflect(lightDir.Negate(), normal).Negate().Dot(dir)),
			mat.SpecularExponent)
	}

	return mat.DiffuseColor.Multiply(diffuse * mat.Albedo[material.AlbedoDiffuse]).
		Add(core.NewVec3(1, 1, 1).Multiply(specular * mat.Albedo[material.AlbedoSpecular])).
		Add(reflectColor.Multiply(mat.Albedo[material.AlbedoReflect])).
		Add(refractColor.Multiply(mat.Albedo[material.AlbedoRefract]))
}

// offsetOrigin displaces a recursive ray origin off the surface along
// the normal, on the side the ray direction points toward.
func offsetOrigin(point, normal, dir core.Vec3) core.Vec3 {
	if dir.Dot(normal) < 0 {
		return point.Subtract(normal.Multiply(surfaceBias))
	}
	return point.Add(normal.Multiply(surfaceBias))
}
