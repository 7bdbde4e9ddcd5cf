package material

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo core.Vec3 // Metal color
	Fuzz   float64   // 0 = perfect mirror, 1 = very fuzzy
}

// NewMetal creates a new metal material, clamping fuzz to [0, 1]
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	if fuzz > 1 {
		fuzz = 1
	}
	if fuzz < 0 {
		fuzz = 0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter reflects the ray and perturbs it by the fuzz radius. Rays
// perturbed below the surface are absorbed.
func (m *Metal) Scatter(rayIn core.Ray, rec HitRecord, random *rand.Rand) (ScatterRecord, bool) {
	reflected := rayIn.Direction.Reflect(rec.Normal).Normalize()
	if m.Fuzz > 0 {
		reflected = reflected.Add(core.RandomUnitVector(random).Multiply(m.Fuzz))
	}

	if reflected.Dot(rec.Normal) <= 0 {
		return ScatterRecord{}, false
	}

	return ScatterRecord{
		Attenuation: m.Albedo,
		Specular:    core.NewRayAt(rec.Point, reflected, rayIn.Time),
	}, true
}

// Emitted returns no radiance
func (m *Metal) Emitted(rayIn core.Ray, rec HitRecord) core.Vec3 {
	return core.Vec3{}
}

// ScatteringPDF is zero: specular reflection is a delta distribution
func (m *Metal) ScatteringPDF(rayIn core.Ray, rec HitRecord, scattered core.Ray) float64 {
	return 0
}
