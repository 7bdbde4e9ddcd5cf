package material

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/texture"
)

// DiffuseLight is an area-light material: it emits from its front face
// and never scatters
type DiffuseLight struct {
	Tex texture.Texture
}

// NewDiffuseLight creates an emissive material over a texture
func NewDiffuseLight(tex texture.Texture) *DiffuseLight {
	return &DiffuseLight{Tex: tex}
}

// NewDiffuseLightColor creates an emissive material with constant radiance
func NewDiffuseLightColor(emit core.Vec3) *DiffuseLight {
	return &DiffuseLight{Tex: texture.NewSolidColor(emit)}
}

// Scatter absorbs the ray
func (d *DiffuseLight) Scatter(rayIn core.Ray, rec HitRecord, random *rand.Rand) (ScatterRecord, bool) {
	return ScatterRecord{}, false
}

// Emitted returns the texture radiance for front-face hits only, so the
// back of an area light stays dark
func (d *DiffuseLight) Emitted(rayIn core.Ray, rec HitRecord) core.Vec3 {
	if !rec.FrontFace {
		return core.Vec3{}
	}
	return d.Tex.Value(rec.U, rec.V, rec.Point)
}

// ScatteringPDF is zero: the material does not scatter
func (d *DiffuseLight) ScatteringPDF(rayIn core.Ray, rec HitRecord, scattered core.Ray) float64 {
	return 0
}
