package scene

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/texture"
)

// NewFinalScene creates the showcase scene: a ground of random-height
// boxes, a ceiling light, a moving sphere, glass and metal spheres,
// two participating media, an image-mapped globe, a marble sphere and
// a rotated cube of a thousand small spheres. An empty earthPath
// substitutes a plain brown globe.
func NewFinalScene(seed int64, earthPath string) (*Scene, error) {
	random := rand.New(rand.NewSource(seed))
	world := geometry.NewHittableList()
	lights := geometry.NewHittableList()

	// Ground: 20x20 grid of boxes with random heights.
	ground := func() material.Material {
		return material.NewLambertianColor(core.NewVec3(0.48, 0.83, 0.53))
	}
	boxes1 := geometry.NewHittableList()
	const boxesPerSide = 20
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			w := 100.0
			x0 := -1000.0 + float64(i)*w
			z0 := -1000.0 + float64(j)*w
			y1 := 1 + 100*random.Float64()
			boxes1.Add(geometry.NewBox(
				core.NewVec3(x0, 0, z0),
				core.NewVec3(x0+w, y1, z0+w),
				ground,
			))
		}
	}
	groundBVH, err := geometry.NewBVH(boxes1)
	if err != nil {
		return nil, err
	}
	world.Add(groundBVH)

	light := material.NewDiffuseLightColor(core.NewVec3(7, 7, 7))
	lightQuad := geometry.NewQuad(core.NewVec3(123, 554, 147), core.NewVec3(300, 0, 0), core.NewVec3(0, 0, 265), light)
	world.Add(lightQuad)
	lights.Add(lightQuad)

	center1 := core.NewVec3(400, 400, 200)
	center2 := center1.Add(core.NewVec3(30, 0, 0))
	world.Add(geometry.NewMovingSphere(center1, center2, 50,
		material.NewLambertianColor(core.NewVec3(0.7, 0.3, 0.1))))

	world.Add(geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)))
	world.Add(geometry.NewSphere(core.NewVec3(0, 150, 145), 50,
		material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1.0)))

	// Subsurface-look sphere: glass boundary filled with a blue medium.
	boundary := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	world.Add(boundary)
	world.Add(geometry.NewConstantMediumColor(boundary, 0.2, core.NewVec3(0.2, 0.4, 0.9)))

	// Thin world-spanning mist.
	mistBoundary := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5))
	world.Add(geometry.NewConstantMediumColor(mistBoundary, 0.0001, core.NewVec3(1, 1, 1)))

	var globeMat material.Material
	if earthPath != "" {
		img, err := loaders.LoadImage(earthPath)
		if err != nil {
			return nil, err
		}
		globeMat = material.NewLambertian(texture.NewImageTexture(img.Width, img.Height, img.Pixels))
	} else {
		globeMat = material.NewLambertianColor(core.NewVec3(0.4, 0.25, 0.15))
	}
	world.Add(geometry.NewSphere(core.NewVec3(400, 200, 400), 100, globeMat))

	marble := texture.NewNoiseTexture(0.2, seed)
	world.Add(geometry.NewSphere(core.NewVec3(220, 280, 300), 80, material.NewLambertian(marble)))

	// Cube of small white spheres, rotated and shifted into place.
	boxes2 := geometry.NewHittableList()
	white := material.NewLambertianColor(core.NewVec3(0.73, 0.73, 0.73))
	for j := 0; j < 1000; j++ {
		boxes2.Add(geometry.NewSphere(core.RandomVec3Range(0, 165, random), 10, white))
	}
	spheresBVH, err := geometry.NewBVH(boxes2)
	if err != nil {
		return nil, err
	}
	world.Add(geometry.NewTranslate(
		geometry.NewRotateY(spheresBVH, 15),
		core.NewVec3(-100, 270, 395)))

	return &Scene{
		Camera: renderer.CameraConfig{
			AspectRatio:     1.0,
			ImageWidth:      800,
			SamplesPerPixel: 2500,
			MaxDepth:        40,
			Background:      core.NewVec3(0, 0, 0),
			VFov:            40,
			LookFrom:        core.NewVec3(478, 278, -600),
			LookAt:          core.NewVec3(278, 278, 0),
			VUp:             core.NewVec3(0, 1, 0),
			FocusDist:       10.0,
		},
		World:  world,
		Lights: lights,
	}, nil
}
