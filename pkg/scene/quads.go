package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewQuads creates five colored quads arranged like an open box facing
// the camera
func NewQuads() *Scene {
	world := geometry.NewHittableList()

	leftRed := material.NewLambertianColor(core.NewVec3(1.0, 0.2, 0.2))
	backGreen := material.NewLambertianColor(core.NewVec3(0.2, 1.0, 0.2))
	rightBlue := material.NewLambertianColor(core.NewVec3(0.2, 0.2, 1.0))
	upperOrange := material.NewLambertianColor(core.NewVec3(1.0, 0.5, 0.0))
	lowerTeal := material.NewLambertianColor(core.NewVec3(0.2, 0.8, 0.8))

	world.Add(geometry.NewQuad(core.NewVec3(-3, -2, 5), core.NewVec3(0, 0, -4), core.NewVec3(0, 4, 0), leftRed))
	world.Add(geometry.NewQuad(core.NewVec3(-2, -2, 0), core.NewVec3(4, 0, 0), core.NewVec3(0, 4, 0), backGreen))
	world.Add(geometry.NewQuad(core.NewVec3(3, -2, 1), core.NewVec3(0, 0, 4), core.NewVec3(0, 4, 0), rightBlue))
	world.Add(geometry.NewQuad(core.NewVec3(-2, 3, 1), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, 4), upperOrange))
	world.Add(geometry.NewQuad(core.NewVec3(-2, -3, 5), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, -4), lowerTeal))

	return &Scene{
		Camera: renderer.CameraConfig{
			AspectRatio:     1.0,
			ImageWidth:      400,
			SamplesPerPixel: 100,
			MaxDepth:        50,
			Background:      core.NewVec3(0.70, 0.80, 1.00),
			VFov:            80,
			LookFrom:        core.NewVec3(0, 0, 9),
			LookAt:          core.NewVec3(0, 0, 0),
			VUp:             core.NewVec3(0, 1, 0),
			FocusDist:       10.0,
		},
		World:  world,
		Lights: geometry.NewHittableList(),
	}
}
