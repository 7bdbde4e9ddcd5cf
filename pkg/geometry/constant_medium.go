package geometry

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/texture"
)

// ConstantMedium models isotropic volumetric scattering with constant
// extinction inside a boundary hittable. A ray entering the boundary
// scatters after an exponentially distributed free-flight distance, or
// passes through if the sampled distance exceeds the in-boundary path.
type ConstantMedium struct {
	boundary      Hittable
	negInvDensity float64
	phaseFunction material.Material
}

// NewConstantMedium creates a medium with the given density and a
// textured phase function
func NewConstantMedium(boundary Hittable, density float64, tex texture.Texture) *ConstantMedium {
	return &ConstantMedium{
		boundary:      boundary,
		negInvDensity: -1.0 / density,
		phaseFunction: material.NewIsotropic(tex),
	}
}

// NewConstantMediumColor creates a medium with a solid-color phase function
func NewConstantMediumColor(boundary Hittable, density float64, albedo core.Vec3) *ConstantMedium {
	return &ConstantMedium{
		boundary:      boundary,
		negInvDensity: -1.0 / density,
		phaseFunction: material.NewIsotropicColor(albedo),
	}
}

// Hit samples a scattering event along the ray's path through the
// boundary. The two boundary intersections are found in sequence so
// rays starting inside the volume still work.
func (cm *ConstantMedium) Hit(ray core.Ray, tRange core.Interval, random *rand.Rand) (*material.HitRecord, bool) {
	rec1, ok := cm.boundary.Hit(ray, core.UniverseInterval, random)
	if !ok {
		return nil, false
	}

	rec2, ok := cm.boundary.Hit(ray, core.NewInterval(rec1.T+0.0001, math.Inf(1)), random)
	if !ok {
		return nil, false
	}

	t1 := math.Max(rec1.T, tRange.Min)
	t2 := math.Min(rec2.T, tRange.Max)
	if t1 >= t2 {
		return nil, false
	}
	if t1 < 0 {
		t1 = 0
	}

	// Distances are measured in world units, so scale the parametric
	// span by the direction length.
	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (t2 - t1) * rayLength
	hitDistance := cm.negInvDensity * math.Log(random.Float64())

	if hitDistance > distanceInsideBoundary {
		return nil, false
	}

	t := t1 + hitDistance/rayLength
	return &material.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0), // arbitrary
		FrontFace: true,                  // arbitrary
		Material:  cm.phaseFunction,
	}, true
}

// BoundingBox returns the boundary's box
func (cm *ConstantMedium) BoundingBox() core.AABB {
	return cm.boundary.BoundingBox()
}
