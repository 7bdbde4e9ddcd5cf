package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/texture"
)

// NewCheckeredSpheres creates two large checkered spheres facing each other
func NewCheckeredSpheres() *Scene {
	world := geometry.NewHittableList()

	checker := texture.NewCheckerTextureColors(0.32,
		core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))

	world.Add(geometry.NewSphere(core.NewVec3(0, -10, 0), 10, material.NewLambertian(checker)))
	world.Add(geometry.NewSphere(core.NewVec3(0, 10, 0), 10, material.NewLambertian(checker)))

	return &Scene{
		Camera: renderer.CameraConfig{
			AspectRatio:     16.0 / 9.0,
			ImageWidth:      400,
			SamplesPerPixel: 100,
			MaxDepth:        50,
			Background:      core.NewVec3(0.70, 0.80, 1.00),
			VFov:            20,
			LookFrom:        core.NewVec3(13, 2, 3),
			LookAt:          core.NewVec3(0, 0, 0),
			VUp:             core.NewVec3(0, 1, 0),
			FocusDist:       10.0,
		},
		World:  world,
		Lights: geometry.NewHittableList(),
	}
}
