package geometry

import (
	"math"
	"testing"

	"github.com/ivanstepanovftw/go-raytrace/pkg/core"
)

func TestCheckerPlane_Intersect(t *testing.T) {
	plane := NewGroundPlane()

	tests := []struct {
		name      string
		origin    core.Vec3
		dir       core.Vec3
		expectHit bool
		expectedT float64
	}{
		{
			name:      "straight down onto the board",
			origin:    core.NewVec3(0, 0, -15),
			dir:       core.NewVec3(0, -1, 0),
			expectHit: true,
			expectedT: 4.0,
		},
		{
			name:      "near parallel ray rejected",
			origin:    core.NewVec3(0, 0, -15),
			dir:       core.NewVec3(1, 1e-4, 0),
			expectHit: false,
		},
		{
			name:      "plane behind the origin",
			origin:    core.NewVec3(0, -8, -15),
			dir:       core.NewVec3(0, -1, 0),
			expectHit: false,
		},
		{
			name:      "outside depth footprint",
			origin:    core.NewVec3(0, 0, -5),
			dir:       core.NewVec3(0, -1, 0),
			expectHit: false,
		},
		{
			name:      "outside width footprint",
			origin:    core.NewVec3(11, 0, -15),
			dir:       core.NewVec3(0, -1, 0),
			expectHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dist, hit := plane.Intersect(tt.origin, tt.dir)

			if hit != tt.expectHit {
				t.Fatalf("Expected hit=%t, got hit=%t (t=%f)", tt.expectHit, hit, dist)
			}
			if !hit {
				return
			}

			const tolerance = 1e-9
			if math.Abs(dist-tt.expectedT) > tolerance {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, dist)
			}
		})
	}
}

func TestCheckerPlane_ColorAt(t *testing.T) {
	plane := NewGroundPlane()

	white := core.NewVec3(1, 1, 1).Multiply(0.3)
	orange := core.NewVec3(1, 0.7, 0.3).Multiply(0.3)

	tests := []struct {
		name     string
		point    core.Vec3
		expected core.Vec3
	}{
		{"odd cell", core.NewVec3(0, -4, -15), white},
		{"even cell along x", core.NewVec3(2, -4, -15), orange},
		{"even cell along z", core.NewVec3(0, -4, -13), orange},
		{"back to odd", core.NewVec3(2, -4, -13), white},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := plane.ColorAt(tt.point)

			const tolerance = 1e-12
			if got.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestCheckerPlane_Normal(t *testing.T) {
	plane := NewGroundPlane()

	if plane.Normal() != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected up-vector normal, got %v", plane.Normal())
	}
}
