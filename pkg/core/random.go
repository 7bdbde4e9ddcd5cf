package core

import (
	"math"
	"math/rand"
)

// RandomVec3 returns a vector with components uniform in [0, 1)
func RandomVec3(random *rand.Rand) Vec3 {
	return Vec3{X: random.Float64(), Y: random.Float64(), Z: random.Float64()}
}

// RandomVec3Range returns a vector with components uniform in [min, max)
func RandomVec3Range(min, max float64, random *rand.Rand) Vec3 {
	span := max - min
	return Vec3{
		X: min + span*random.Float64(),
		Y: min + span*random.Float64(),
		Z: min + span*random.Float64(),
	}
}

// RandomUnitVector returns a uniformly distributed point on the unit
// sphere, by rejection sampling the unit cube. The lower bound on the
// squared length guards the normalizing divide against denormals.
func RandomUnitVector(random *rand.Rand) Vec3 {
	for {
		p := RandomVec3Range(-1, 1, random)
		lensq := p.LengthSquared()
		if 1e-160 < lensq && lensq <= 1.0 {
			return p.Divide(math.Sqrt(lensq))
		}
	}
}

// RandomInUnitDisk returns a point inside the unit disk in the z=0 plane
func RandomInUnitDisk(random *rand.Rand) Vec3 {
	for {
		p := Vec3{X: 2*random.Float64() - 1, Y: 2*random.Float64() - 1}
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomCosineDirection returns a cosine-weighted direction around +Z
func RandomCosineDirection(random *rand.Rand) Vec3 {
	r1 := random.Float64()
	r2 := random.Float64()

	phi := 2 * math.Pi * r1
	x := math.Cos(phi) * math.Sqrt(r2)
	y := math.Sin(phi) * math.Sqrt(r2)
	z := math.Sqrt(1 - r2)

	return Vec3{X: x, Y: y, Z: z}
}
