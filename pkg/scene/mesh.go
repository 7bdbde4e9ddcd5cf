package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewMesh loads a wavefront OBJ file as a triangle mesh under its own
// BVH, lit by an area light over a ground quad
func NewMesh(objPath string, scale float64) (*Scene, error) {
	mesh, err := loaders.LoadOBJ(objPath)
	if err != nil {
		return nil, err
	}

	gray := material.NewLambertianColor(core.NewVec3(0.73, 0.73, 0.73))
	triangles := geometry.NewHittableList()
	for t := 0; t < mesh.TriangleCount(); t++ {
		v0 := mesh.Positions[mesh.Indices[3*t]].Multiply(scale)
		v1 := mesh.Positions[mesh.Indices[3*t+1]].Multiply(scale)
		v2 := mesh.Positions[mesh.Indices[3*t+2]].Multiply(scale)
		triangles.Add(geometry.NewTriangle(v0, v1, v2, gray))
	}

	meshBVH, err := geometry.NewBVH(triangles)
	if err != nil {
		return nil, err
	}

	world := geometry.NewHittableList()
	lights := geometry.NewHittableList()
	world.Add(meshBVH)

	groundMat := material.NewLambertianColor(core.NewVec3(0.5, 0.5, 0.5))
	world.Add(geometry.NewQuad(
		core.NewVec3(-1000, 0, -1000), core.NewVec3(2000, 0, 0), core.NewVec3(0, 0, 2000), groundMat))

	lightMat := material.NewDiffuseLightColor(core.NewVec3(10, 10, 10))
	lightQuad := geometry.NewQuad(
		core.NewVec3(-100, 400, -100), core.NewVec3(200, 0, 0), core.NewVec3(0, 0, 200), lightMat)
	world.Add(lightQuad)
	lights.Add(lightQuad)

	bbox := meshBVH.BoundingBox()
	center := bbox.Center()
	extent := bbox.Max().Subtract(bbox.Min()).Length()

	return &Scene{
		Camera: renderer.CameraConfig{
			AspectRatio:     16.0 / 9.0,
			ImageWidth:      400,
			SamplesPerPixel: 100,
			MaxDepth:        50,
			Background:      core.NewVec3(0.70, 0.80, 1.00),
			VFov:            40,
			LookFrom:        center.Add(core.NewVec3(0, extent*0.4, extent*1.2)),
			LookAt:          center,
			VUp:             core.NewVec3(0, 1, 0),
			FocusDist:       10.0,
		},
		World:  world,
		Lights: lights,
	}, nil
}
