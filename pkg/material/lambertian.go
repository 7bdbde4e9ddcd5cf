package material

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/texture"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Tex texture.Texture
}

// NewLambertian creates a lambertian material over a texture
func NewLambertian(tex texture.Texture) *Lambertian {
	return &Lambertian{Tex: tex}
}

// NewLambertianColor creates a lambertian material with a solid albedo
func NewLambertianColor(albedo core.Vec3) *Lambertian {
	return &Lambertian{Tex: texture.NewSolidColor(albedo)}
}

// Scatter produces a cosine-weighted PDF oriented by the surface normal
func (l *Lambertian) Scatter(rayIn core.Ray, rec HitRecord, random *rand.Rand) (ScatterRecord, bool) {
	return ScatterRecord{
		Attenuation: l.Tex.Value(rec.U, rec.V, rec.Point),
		Pdf:         core.NewCosinePdf(rec.Normal),
	}, true
}

// Emitted returns no radiance
func (l *Lambertian) Emitted(rayIn core.Ray, rec HitRecord) core.Vec3 {
	return core.Vec3{}
}

// ScatteringPDF is cos(θ)/π for directions above the surface, zero below
func (l *Lambertian) ScatteringPDF(rayIn core.Ray, rec HitRecord, scattered core.Ray) float64 {
	cosTheta := rec.Normal.Dot(scattered.Direction.Normalize())
	if cosTheta < 0 {
		return 0
	}
	return cosTheta / math.Pi
}
