package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/texture"
)

// NewEarth creates a single image-mapped globe. The texture file is
// decoded up front; a bad path fails scene construction.
func NewEarth(imagePath string) (*Scene, error) {
	img, err := loaders.LoadImage(imagePath)
	if err != nil {
		return nil, err
	}

	earthTexture := texture.NewImageTexture(img.Width, img.Height, img.Pixels)
	globe := geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewLambertian(earthTexture))

	world := geometry.NewHittableList()
	world.Add(globe)

	return &Scene{
		Camera: renderer.CameraConfig{
			AspectRatio:     16.0 / 9.0,
			ImageWidth:      400,
			SamplesPerPixel: 100,
			MaxDepth:        50,
			Background:      core.NewVec3(0.70, 0.80, 1.00),
			VFov:            20,
			LookFrom:        core.NewVec3(0, 0, 12),
			LookAt:          core.NewVec3(0, 0, 0),
			VUp:             core.NewVec3(0, 1, 0),
			FocusDist:       10.0,
		},
		World:  world,
		Lights: geometry.NewHittableList(),
	}, nil
}
