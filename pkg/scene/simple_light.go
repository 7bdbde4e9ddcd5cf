package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/texture"
)

// NewSimpleLight creates marble spheres lit only by a rectangular area
// light and a glowing sphere against a black background
func NewSimpleLight(seed int64) *Scene {
	world := geometry.NewHittableList()
	lights := geometry.NewHittableList()

	marble := texture.NewNoiseTexture(4, seed)
	world.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(marble)))
	world.Add(geometry.NewSphere(core.NewVec3(0, 2, 0), 2, material.NewLambertian(marble)))

	lightMat := material.NewDiffuseLightColor(core.NewVec3(4, 4, 4))
	quadLight := geometry.NewQuad(core.NewVec3(3, 1, -2), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), lightMat)
	sphereLight := geometry.NewSphere(core.NewVec3(0, 7, 0), 2, lightMat)

	world.Add(quadLight)
	world.Add(sphereLight)
	lights.Add(quadLight)
	lights.Add(sphereLight)

	return &Scene{
		Camera: renderer.CameraConfig{
			AspectRatio:     16.0 / 9.0,
			ImageWidth:      400,
			SamplesPerPixel: 100,
			MaxDepth:        50,
			Background:      core.NewVec3(0, 0, 0),
			VFov:            20,
			LookFrom:        core.NewVec3(26, 3, 6),
			LookAt:          core.NewVec3(0, 2, 0),
			VUp:             core.NewVec3(0, 1, 0),
			FocusDist:       10.0,
		},
		World:  world,
		Lights: lights,
	}
}
