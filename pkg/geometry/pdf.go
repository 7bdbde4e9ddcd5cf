package geometry

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// HittablePdf adapts a sampleable object (typically the scene's light
// list) to the Pdf interface, anchored at a shading point.
type HittablePdf struct {
	objects Light
	origin  core.Vec3
	random  *rand.Rand
}

// NewHittablePdf creates a PDF over directions from origin toward the
// given object
func NewHittablePdf(objects Light, origin core.Vec3, random *rand.Rand) HittablePdf {
	return HittablePdf{objects: objects, origin: origin, random: random}
}

// Value evaluates the object's solid-angle density for a direction
func (h HittablePdf) Value(direction core.Vec3) float64 {
	return h.objects.PDF(h.origin, direction, h.random)
}

// Generate draws a direction toward the object
func (h HittablePdf) Generate(random *rand.Rand) core.Vec3 {
	return h.objects.Sample(h.origin, random)
}
