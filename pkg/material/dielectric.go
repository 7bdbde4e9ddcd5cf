package material

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Dielectric represents a transparent material like glass that both
// reflects and refracts
type Dielectric struct {
	RefractionIndex float64
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractionIndex float64) *Dielectric {
	return &Dielectric{RefractionIndex: refractionIndex}
}

// Scatter refracts or reflects depending on total internal reflection
// and a stochastic Schlick reflectance test
func (d *Dielectric) Scatter(rayIn core.Ray, rec HitRecord, random *rand.Rand) (ScatterRecord, bool) {
	ri := d.RefractionIndex
	if rec.FrontFace {
		ri = 1.0 / d.RefractionIndex
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(unitDirection.Negate().Dot(rec.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := ri*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || reflectance(cosTheta, ri) > random.Float64() {
		direction = unitDirection.Reflect(rec.Normal)
	} else {
		direction = unitDirection.Refract(rec.Normal, ri)
	}

	return ScatterRecord{
		Attenuation: core.NewVec3(1, 1, 1),
		Specular:    core.NewRayAt(rec.Point, direction, rayIn.Time),
	}, true
}

// Emitted returns no radiance
func (d *Dielectric) Emitted(rayIn core.Ray, rec HitRecord) core.Vec3 {
	return core.Vec3{}
}

// ScatteringPDF is zero: refraction is a delta distribution
func (d *Dielectric) ScatteringPDF(rayIn core.Ray, rec HitRecord, scattered core.Ray) float64 {
	return 0
}

// reflectance is Schlick's approximation of the Fresnel reflectance
func reflectance(cosine, refractionIndex float64) float64 {
	r0 := (1 - refractionIndex) / (1 + refractionIndex)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
