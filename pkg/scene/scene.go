package scene

import (
	"github.com/ivanstepanovftw/go-raytrace/pkg/core"
	"github.com/ivanstepanovftw/go-raytrace/pkg/geometry"
	"github.com/ivanstepanovftw/go-raytrace/pkg/material"
)

// Light is a point light source
type Light struct {
	Position  core.Vec3
	Intensity float64
}

// NewLight creates a new point light
func NewLight(position core.Vec3, intensity float64) Light {
	return Light{Position: position, Intensity: intensity}
}

// Scene holds everything a render reads: spheres, point lights and an
// optional ground plane. It is built once before rendering and never
// mutated afterwards, which is what makes lock-free access from the
// render workers safe.
type Scene struct {
	Spheres []geometry.Sphere
	Lights  []Light
	Floor   *geometry.CheckerPlane // nil means no ground
}

// NewDefaultScene creates the reference scene: four spheres over a
// checkerboard floor, lit by three point lights.
func NewDefaultScene() *Scene {
	ivory := material.Material{
		RefractiveIndex:  1.0,
		Albedo:           [4]float64{0.6, 0.3, 0.1, 0.0},
		DiffuseColor:     core.NewVec3(0.4, 0.4, 0.3),
		SpecularExponent: 50,
	}
	glass := material.Material{
		RefractiveIndex:  1.5,
		Albedo:           [4]float64{0.0, 0.5, 0.1, 0.8},
		DiffuseColor:     core.NewVec3(0.6, 0.7, 0.8),
		SpecularExponent: 125,
	}
	redRubber := material.Material{
		RefractiveIndex:  1.0,
		Albedo:           [4]float64{0.9, 0.1, 0.0, 0.0},
		DiffuseColor:     core.NewVec3(0.3, 0.1, 0.1),
		SpecularExponent: 10,
	}
	mirror := material.Material{
		RefractiveIndex:  1.0,
		Albedo:           [4]float64{0.0, 10.0, 0.8, 0.0},
		DiffuseColor:     core.NewVec3(1, 1, 1),
		SpecularExponent: 1425,
	}

	return &Scene{
		Spheres: []geometry.Sphere{
			geometry.NewSphere(core.NewVec3(-3, 0, -16), 2, ivory),
			geometry.NewSphere(core.NewVec3(-1, -1.5, -12), 2, glass),
			geometry.NewSphere(core.NewVec3(1.5, -0.5, -18), 3, redRubber),
			geometry.NewSphere(core.NewVec3(7, 5, -18), 4, mirror),
		},
		Lights: []Light{
			NewLight(core.NewVec3(-20, 20, 20), 1.5),
			NewLight(core.NewVec3(30, 50, -25), 1.8),
			NewLight(core.NewVec3(30, 20, 30), 1.7),
		},
		Floor: geometry.NewGroundPlane(),
	}
}
