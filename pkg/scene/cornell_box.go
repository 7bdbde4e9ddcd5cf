package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewCornellBox creates the classic Cornell box: red and green side
// walls, white floor/ceiling/back, a warm-white area light in the
// ceiling and two rotated boxes. The light is the only sampled light.
func NewCornellBox() *Scene {
	world := geometry.NewHittableList()
	lights := geometry.NewHittableList()

	red := material.NewLambertianColor(core.NewVec3(0.65, 0.05, 0.05))
	white := func() material.Material {
		return material.NewLambertianColor(core.NewVec3(0.73, 0.73, 0.73))
	}
	green := material.NewLambertianColor(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLightColor(core.NewVec3(15, 15, 15))

	// The camera looks down +z, so the x=555 wall lands on the left of
	// the image: red left, green right.
	world.Add(geometry.NewQuad(core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555), red))
	world.Add(geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555), green))
	world.Add(geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(555, 0, 0), core.NewVec3(0, 0, 555), white()))
	world.Add(geometry.NewQuad(core.NewVec3(555, 555, 555), core.NewVec3(-555, 0, 0), core.NewVec3(0, 0, -555), white()))
	world.Add(geometry.NewQuad(core.NewVec3(0, 0, 555), core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0), white()))

	lightQuad := geometry.NewQuad(core.NewVec3(343, 554, 332), core.NewVec3(-130, 0, 0), core.NewVec3(0, 0, -105), light)
	world.Add(lightQuad)
	lights.Add(lightQuad)

	box1 := geometry.NewTranslate(
		geometry.NewRotateY(
			geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white), 15),
		core.NewVec3(265, 0, 295))
	box2 := geometry.NewTranslate(
		geometry.NewRotateY(
			geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white), -18),
		core.NewVec3(130, 0, 65))
	world.Add(box1)
	world.Add(box2)

	return &Scene{
		Camera: renderer.CameraConfig{
			AspectRatio:     1.0,
			ImageWidth:      600,
			SamplesPerPixel: 200,
			MaxDepth:        50,
			Background:      core.NewVec3(0, 0, 0),
			VFov:            40,
			LookFrom:        core.NewVec3(278, 278, -800),
			LookAt:          core.NewVec3(278, 278, 0),
			VUp:             core.NewVec3(0, 1, 0),
			FocusDist:       10.0,
		},
		World:  world,
		Lights: lights,
	}
}
