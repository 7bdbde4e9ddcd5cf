package texture

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// ImageTexture samples a decoded raster image by UV coordinates.
// Pixels are stored row-major, top row first, in linear [0,1] RGB.
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewImageTexture creates an image texture over a pixel grid
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{Width: width, Height: height, Pixels: pixels}
}

// Value samples the image at (u, v) with nearest-neighbor lookup.
// With no image data it returns solid cyan as a diagnostic.
func (t *ImageTexture) Value(u, v float64, p core.Vec3) core.Vec3 {
	if t.Height <= 0 {
		return core.NewVec3(0, 1, 1)
	}

	// Clamp to [0,1] and flip v: image rows run top to bottom.
	u = core.NewInterval(0, 1).Clamp(u)
	v = 1.0 - core.NewInterval(0, 1).Clamp(v)

	i := int(u * float64(t.Width))
	j := int(v * float64(t.Height))
	if i > t.Width-1 {
		i = t.Width - 1
	}
	if j > t.Height-1 {
		j = t.Height - 1
	}

	return t.Pixels[j*t.Width+i]
}
