package geometry

import (
	"math"

	"github.com/ivanstepanovftw/go-raytrace/pkg/core"
)

// CheckerPlane is an infinite horizontal ground plane with a procedural
// two-color checkerboard, restricted to a rectangular footprint so the
// board does not stretch to the horizon.
type CheckerPlane struct {
	Height    float64      // plane lies at y = Height
	HalfWidth float64      // footprint bound |x| < HalfWidth
	NearZ     float64      // footprint bound z < NearZ
	FarZ      float64      // footprint bound z > FarZ
	Colors    [2]core.Vec3 // checker cell colors, indexed by cell parity
	Darkening float64      // applied to both cell colors
}

// NewGroundPlane creates the reference checkerboard floor: a plane at
// y=-4 spanning x in (-10,10) and z in (-30,-10), alternating white and
// orange cells darkened to 30%.
func NewGroundPlane() *CheckerPlane {
	return &CheckerPlane{
		Height:    -4,
		HalfWidth: 10,
		NearZ:     -10,
		FarZ:      -30,
		Colors: [2]core.Vec3{
			core.NewVec3(1, 0.7, 0.3),
			core.NewVec3(1, 1, 1),
		},
		Darkening: 0.3,
	}
}

// parallelEpsilon rejects rays nearly parallel to the plane before the
// intersection distance blows up.
const parallelEpsilon = 1e-3

// Intersect tests the ray from origin along dir against the plane and
// returns the hit distance. ok is false for near-parallel rays, hits
// behind the origin, and points outside the footprint.
func (p *CheckerPlane) Intersect(origin, dir core.Vec3) (float64, bool) {
	if math.Abs(dir.Y) <= parallelEpsilon {
		return 0, false
	}

	t := -(origin.Y - p.Height) / dir.Y
	if t <= 0 {
		return 0, false
	}

	pt := origin.Add(dir.Multiply(t))
	if math.Abs(pt.X) >= p.HalfWidth || pt.Z >= p.NearZ || pt.Z <= p.FarZ {
		return 0, false
	}
	return t, true
}

// Normal returns the plane's fixed up-vector
func (p *CheckerPlane) Normal() core.Vec3 {
	return core.NewVec3(0, 1, 0)
}

// ColorAt returns the checker color for a point on the plane. Cells are
// two units wide; the parity of the truncated half-coordinates selects
// the color. The offset keeps the x term positive so truncation toward
// zero cannot flip parity across the origin.
func (p *CheckerPlane) ColorAt(point core.Vec3) core.Vec3 {
	cell := int(0.5*point.X+1000) + int(0.5*point.Z)
	return p.Colors[cell&1].Multiply(p.Darkening)
}
