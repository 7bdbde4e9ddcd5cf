package scene

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Scene bundles a world, an optional set of sampled lights, and the
// camera configuration that renders it well
type Scene struct {
	Camera renderer.CameraConfig
	World  *geometry.HittableList
	Lights *geometry.HittableList // objects the integrator samples directly; may be empty
}

// Root wraps the world in a BVH and returns the traversal root
func (s *Scene) Root() (geometry.Hittable, error) {
	if len(s.World.Objects) == 0 {
		return s.World, nil
	}
	root, err := geometry.NewBVH(s.World)
	if err != nil {
		return nil, fmt.Errorf("building scene BVH: %w", err)
	}
	return root, nil
}

// LightSet returns the sampled-light aggregate, or nil when the scene
// defines none (the integrator then samples material PDFs alone)
func (s *Scene) LightSet() geometry.Light {
	if s.Lights == nil || len(s.Lights.Objects) == 0 {
		return nil
	}
	return s.Lights
}

// Names lists the built-in scenes selectable from the command line
func Names() []string {
	return []string{
		"bouncing-spheres",
		"checkered-spheres",
		"earth",
		"perlin-spheres",
		"quads",
		"simple-light",
		"cornell-box",
		"cornell-smoke",
		"final-scene",
		"mesh",
	}
}
