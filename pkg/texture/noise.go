package texture

import (
	"math"

	perlin "github.com/aquilax/go-perlin"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Perlin noise shape parameters. Alpha is the weight falloff between
// octaves, beta the frequency step; three octaves inside the lattice
// keep single noise() calls cheap since turbulence stacks its own.
const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 3
)

// NoiseTexture is a marble-like procedural texture: gradient lattice
// noise, accumulated as turbulence, phase-shifting a sine along z.
type NoiseTexture struct {
	noise *perlin.Perlin
	scale float64
}

// NewNoiseTexture creates a noise texture with the given frequency scale
func NewNoiseTexture(scale float64, seed int64) *NoiseTexture {
	return &NoiseTexture{
		noise: perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed),
		scale: scale,
	}
}

// Noise evaluates the raw gradient noise at a point, in [-1, 1]
func (n *NoiseTexture) Noise(p core.Vec3) float64 {
	return n.noise.Noise3D(p.X, p.Y, p.Z)
}

// Turbulence sums depth octaves of signed noise, halving the weight
// and doubling the frequency each step, and returns the absolute value
// of the sum
func (n *NoiseTexture) Turbulence(p core.Vec3, depth int) float64 {
	accum := 0.0
	weight := 1.0
	for i := 0; i < depth; i++ {
		accum += weight * n.Noise(p)
		weight *= 0.5
		p = p.Multiply(2)
	}
	return math.Abs(accum)
}

// Value returns the marble pattern at the hit point
func (n *NoiseTexture) Value(u, v float64, p core.Vec3) core.Vec3 {
	gray := 0.5 * (1.0 + math.Sin(n.scale*p.Z+10.0*n.Turbulence(p, 7)))
	return core.NewVec3(1, 1, 1).Multiply(gray)
}
