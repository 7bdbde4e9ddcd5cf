package geometry

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Hittable is anything a ray can intersect. Hit reports the closest
// intersection with t strictly inside tRange; the RNG serves hittables
// with stochastic intersections (participating media).
type Hittable interface {
	Hit(ray core.Ray, tRange core.Interval, random *rand.Rand) (*material.HitRecord, bool)
	BoundingBox() core.AABB
}

// Light is a hittable that can be importance-sampled from a point:
// PDF evaluates the solid-angle density of sampling a direction toward
// the object, Sample draws such a direction.
type Light interface {
	Hittable
	PDF(origin, direction core.Vec3, random *rand.Rand) float64
	Sample(origin core.Vec3, random *rand.Rand) core.Vec3
}
