package texture

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Texture provides a color for a surface point, addressed both by UV
// coordinates and by the 3D hit point (procedural textures use the
// latter).
type Texture interface {
	Value(u, v float64, p core.Vec3) core.Vec3
}

// SolidColor is a texture with the same color everywhere
type SolidColor struct {
	Albedo core.Vec3
}

// NewSolidColor creates a constant-color texture
func NewSolidColor(albedo core.Vec3) *SolidColor {
	return &SolidColor{Albedo: albedo}
}

// NewSolidColorRGB creates a constant-color texture from components
func NewSolidColorRGB(red, green, blue float64) *SolidColor {
	return &SolidColor{Albedo: core.NewVec3(red, green, blue)}
}

// Value returns the constant albedo
func (s *SolidColor) Value(u, v float64, p core.Vec3) core.Vec3 {
	return s.Albedo
}
