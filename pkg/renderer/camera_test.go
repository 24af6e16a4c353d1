package renderer

import (
	"math"
	"testing"

	"github.com/ivanstepanovftw/go-raytrace/pkg/core"
)

func TestCamera_Ray(t *testing.T) {
	// fov of 90 degrees and a square image make the expected directions
	// easy to state exactly
	camera := NewCamera(2, 2, math.Pi/2)

	tests := []struct {
		name        string
		i, j        int
		expectedDir core.Vec3
	}{
		{"top left", 0, 0, core.NewVec3(-0.5, 0.5, -1).Normalize()},
		{"top right", 1, 0, core.NewVec3(0.5, 0.5, -1).Normalize()},
		{"bottom left", 0, 1, core.NewVec3(-0.5, -0.5, -1).Normalize()},
		{"bottom right", 1, 1, core.NewVec3(0.5, -0.5, -1).Normalize()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.Ray(tt.i, tt.j)

			if ray.Origin != (core.Vec3{}) {
				t.Errorf("Expected ray from the origin, got %v", ray.Origin)
			}

			const tolerance = 1e-12
			if ray.Direction.Subtract(tt.expectedDir).Length() > tolerance {
				t.Errorf("Expected direction %v, got %v", tt.expectedDir, ray.Direction)
			}
		})
	}
}

func TestCamera_RayProperties(t *testing.T) {
	camera := NewCamera(1024, 768, math.Pi/3)

	const tolerance = 1e-12
	for _, px := range [][2]int{{0, 0}, {1023, 0}, {0, 767}, {511, 383}, {1023, 767}} {
		ray := camera.Ray(px[0], px[1])

		if math.Abs(ray.Direction.Length()-1) > tolerance {
			t.Errorf("Pixel %v: direction not unit length: %v", px, ray.Direction.Length())
		}
		if ray.Direction.Z >= 0 {
			t.Errorf("Pixel %v: camera must look down -z, got %v", px, ray.Direction)
		}
	}

	// Horizontal symmetry: mirrored pixels produce mirrored x components
	left := camera.Ray(0, 100)
	right := camera.Ray(1023, 100)
	if math.Abs(left.Direction.X+right.Direction.X) > 1e-12 {
		t.Errorf("Expected mirrored x components, got %v and %v",
			left.Direction.X, right.Direction.X)
	}
}
