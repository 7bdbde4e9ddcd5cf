package renderer

import (
	"fmt"
	"io"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// linearToGamma applies gamma 2 (square root), clamping negatives to zero
func linearToGamma(linearComponent float64) float64 {
	if linearComponent > 0 {
		return math.Sqrt(linearComponent)
	}
	return 0
}

// ToRGB8 quantizes a linear color to 8-bit components: gamma-corrected,
// clamped to [0, 0.999], scaled by 256 and floored
func ToRGB8(pixelColor core.Vec3) (r, g, b uint8) {
	intensity := core.NewInterval(0.000, 0.999)
	r = uint8(256 * intensity.Clamp(linearToGamma(pixelColor.X)))
	g = uint8(256 * intensity.Clamp(linearToGamma(pixelColor.Y)))
	b = uint8(256 * intensity.Clamp(linearToGamma(pixelColor.Z)))
	return r, g, b
}

// WriteColor emits one pixel as "R G B\n" with 8-bit components
func WriteColor(out io.Writer, pixelColor core.Vec3) error {
	r, g, b := ToRGB8(pixelColor)
	_, err := fmt.Fprintf(out, "%d %d %d\n", r, g, b)
	return err
}
