package material

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal, always opposing the incoming ray
	T         float64   // Parameter t along the ray
	U, V      float64   // Surface parameterization at the hit
	FrontFace bool      // Whether the ray hit the front face
	Material  Material  // Material of the hit object
}

// SetFaceNormal stores the normal oriented against the incoming ray and
// records which face was hit
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Multiply(-1)
	}
}

// ScatterRecord describes how a material continues a light path. Delta
// materials (mirrors, glass) produce an explicit ray and a nil Pdf; all
// others produce a Pdf for the integrator to importance-sample.
type ScatterRecord struct {
	Attenuation core.Vec3
	Pdf         core.Pdf // nil for specular scattering
	Specular    core.Ray // next ray, valid only when Pdf is nil
}

// IsSpecular reports whether the scatter is a delta event with an
// explicit next ray
func (s ScatterRecord) IsSpecular() bool {
	return s.Pdf == nil
}

// Material describes how a surface or medium interacts with light
type Material interface {
	// Scatter produces the continuation of the path at a hit, or false
	// if the ray is absorbed
	Scatter(rayIn core.Ray, rec HitRecord, random *rand.Rand) (ScatterRecord, bool)

	// Emitted returns the radiance the material emits at the hit
	Emitted(rayIn core.Ray, rec HitRecord) core.Vec3

	// ScatteringPDF evaluates the physical scattering density for a
	// chosen outgoing ray
	ScatteringPDF(rayIn core.Ray, rec HitRecord, scattered core.Ray) float64
}
