package geometry

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Sphere represents a sphere, possibly moving over the shutter
// interval. The center is stored as a ray so a moving sphere's
// position at shutter time t is Center.At(t).
type Sphere struct {
	Center   core.Ray
	Radius   float64
	Material material.Material
	bbox     core.AABB
}

// NewSphere creates a stationary sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	radius = math.Max(0, radius)
	rvec := core.NewVec3(radius, radius, radius)
	return &Sphere{
		Center:   core.NewRay(center, core.Vec3{}),
		Radius:   radius,
		Material: mat,
		bbox:     core.NewAABBFromPoints(center.Subtract(rvec), center.Add(rvec)),
	}
}

// NewMovingSphere creates a sphere moving linearly from center1 at
// shutter time 0 to center2 at shutter time 1
func NewMovingSphere(center1, center2 core.Vec3, radius float64, mat material.Material) *Sphere {
	radius = math.Max(0, radius)
	rvec := core.NewVec3(radius, radius, radius)
	box1 := core.NewAABBFromPoints(center1.Subtract(rvec), center1.Add(rvec))
	box2 := core.NewAABBFromPoints(center2.Subtract(rvec), center2.Add(rvec))
	return &Sphere{
		Center:   core.NewRay(center1, center2.Subtract(center1)),
		Radius:   radius,
		Material: mat,
		bbox:     core.NewAABBUnion(box1, box2),
	}
}

// Hit tests if a ray intersects the sphere at the ray's shutter time
func (s *Sphere) Hit(ray core.Ray, tRange core.Interval, random *rand.Rand) (*material.HitRecord, bool) {
	currentCenter := s.Center.At(ray.Time)
	oc := currentCenter.Subtract(ray.Origin)

	a := ray.Direction.LengthSquared()
	h := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtd := math.Sqrt(discriminant)

	root := (h - sqrtd) / a
	if !tRange.Surrounds(root) {
		root = (h + sqrtd) / a
		if !tRange.Surrounds(root) {
			return nil, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(currentCenter).Divide(s.Radius)
	u, v := sphereUV(outwardNormal)

	rec := &material.HitRecord{
		T:        root,
		Point:    point,
		U:        u,
		V:        v,
		Material: s.Material,
	}
	rec.SetFaceNormal(ray, outwardNormal)

	return rec, true
}

// BoundingBox returns a box covering the sphere over the whole shutter
// interval
func (s *Sphere) BoundingBox() core.AABB {
	return s.bbox
}

// PDF returns the solid-angle density of sampling the sphere from
// origin: the uniform density over the cone the sphere subtends.
func (s *Sphere) PDF(origin, direction core.Vec3, random *rand.Rand) float64 {
	if _, ok := s.Hit(core.NewRay(origin, direction), core.NewInterval(0.001, math.Inf(1)), random); !ok {
		return 0
	}

	toCenter := s.Center.At(0).Subtract(origin)
	distSquared := toCenter.LengthSquared()
	if distSquared <= s.Radius*s.Radius {
		// Origin inside the sphere: every direction hits it.
		return 1.0 / (4.0 * math.Pi)
	}

	cosThetaMax := math.Sqrt(1 - s.Radius*s.Radius/distSquared)
	solidAngle := 2 * math.Pi * (1 - cosThetaMax)
	return 1.0 / solidAngle
}

// Sample draws a direction from origin toward the sphere, uniform over
// the subtended cone
func (s *Sphere) Sample(origin core.Vec3, random *rand.Rand) core.Vec3 {
	toCenter := s.Center.At(0).Subtract(origin)
	distSquared := toCenter.LengthSquared()
	if distSquared <= s.Radius*s.Radius {
		return core.RandomUnitVector(random)
	}

	uvw := core.NewONB(toCenter)
	return uvw.Transform(randomToSphere(s.Radius, distSquared, random))
}

// randomToSphere draws a direction in the cone toward a sphere of the
// given radius at squared distance d², in basis coordinates
func randomToSphere(radius, distSquared float64, random *rand.Rand) core.Vec3 {
	r1 := random.Float64()
	r2 := random.Float64()
	z := 1 + r2*(math.Sqrt(1-radius*radius/distSquared)-1)

	phi := 2 * math.Pi * r1
	x := math.Cos(phi) * math.Sqrt(1-z*z)
	y := math.Sin(phi) * math.Sqrt(1-z*z)

	return core.NewVec3(x, y, z)
}

// sphereUV maps a point on the unit sphere to spherical coordinates:
// u from the angle around the Y axis, v from the angle from the south pole
func sphereUV(p core.Vec3) (u, v float64) {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return phi / (2 * math.Pi), theta / math.Pi
}
