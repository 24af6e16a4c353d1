package renderer

import (
	"math"

	"github.com/ivanstepanovftw/go-raytrace/pkg/core"
)

// Camera is a pinhole camera at the origin looking down the negative z
// axis
type Camera struct {
	width, height int
	tanHalfFOV    float64
	aspect        float64
}

// NewCamera creates a camera for the given image size and vertical field
// of view in radians
func NewCamera(width, height int, fov float64) *Camera {
	return &Camera{
		width:      width,
		height:     height,
		tanHalfFOV: math.Tan(fov / 2),
		aspect:     float64(width) / float64(height),
	}
}

// Ray returns the camera ray through the center of pixel (i, j)
func (c *Camera) Ray(i, j int) core.Ray {
	x := (2*(float64(i)+0.5)/float64(c.width) - 1) * c.tanHalfFOV * c.aspect
	y := -(2*(float64(j)+0.5)/float64(c.height) - 1) * c.tanHalfFOV
	return core.NewRay(core.Vec3{}, core.NewVec3(x, y, -1).Normalize())
}
