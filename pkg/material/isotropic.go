package material

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/texture"
)

// Isotropic is the phase function of a constant medium: scattering is
// uniform over the whole sphere of directions
type Isotropic struct {
	Tex texture.Texture
}

// NewIsotropic creates an isotropic phase function over a texture
func NewIsotropic(tex texture.Texture) *Isotropic {
	return &Isotropic{Tex: tex}
}

// NewIsotropicColor creates an isotropic phase function with a solid albedo
func NewIsotropicColor(albedo core.Vec3) *Isotropic {
	return &Isotropic{Tex: texture.NewSolidColor(albedo)}
}

// Scatter produces a uniform-sphere PDF
func (i *Isotropic) Scatter(rayIn core.Ray, rec HitRecord, random *rand.Rand) (ScatterRecord, bool) {
	return ScatterRecord{
		Attenuation: i.Tex.Value(rec.U, rec.V, rec.Point),
		Pdf:         core.NewSpherePdf(),
	}, true
}

// Emitted returns no radiance
func (i *Isotropic) Emitted(rayIn core.Ray, rec HitRecord) core.Vec3 {
	return core.Vec3{}
}

// ScatteringPDF is the uniform density 1/(4π)
func (i *Isotropic) ScatteringPDF(rayIn core.Ray, rec HitRecord, scattered core.Ray) float64 {
	return 1.0 / (4.0 * math.Pi)
}
