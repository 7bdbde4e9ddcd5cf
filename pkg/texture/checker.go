package texture

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// CheckerTexture is a solid 3D checker pattern: the cell parity of the
// scaled hit point picks between two component textures.
type CheckerTexture struct {
	invScale float64
	even     Texture
	odd      Texture
}

// NewCheckerTexture creates a checker with the given cell scale
func NewCheckerTexture(scale float64, even, odd Texture) *CheckerTexture {
	return &CheckerTexture{invScale: 1.0 / scale, even: even, odd: odd}
}

// NewCheckerTextureColors creates a checker over two solid colors
func NewCheckerTextureColors(scale float64, c1, c2 core.Vec3) *CheckerTexture {
	return NewCheckerTexture(scale, NewSolidColor(c1), NewSolidColor(c2))
}

// Value picks the even or odd texture by integer-cell parity
func (c *CheckerTexture) Value(u, v float64, p core.Vec3) core.Vec3 {
	xInt := int(math.Floor(c.invScale * p.X))
	yInt := int(math.Floor(c.invScale * p.Y))
	zInt := int(math.Floor(c.invScale * p.Z))

	if (xInt+yInt+zInt)%2 == 0 {
		return c.even.Value(u, v, p)
	}
	return c.odd.Value(u, v, p)
}
