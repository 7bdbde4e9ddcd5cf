package geometry

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Translate shifts a hittable by an offset, by intersecting against the
// inversely-shifted ray and moving the hit point back
type Translate struct {
	object Hittable
	offset core.Vec3
	bbox   core.AABB
}

// NewTranslate wraps a hittable with a translation
func NewTranslate(object Hittable, offset core.Vec3) *Translate {
	return &Translate{
		object: object,
		offset: offset,
		bbox:   object.BoundingBox().Translate(offset),
	}
}

// Hit intersects the shifted object
func (t *Translate) Hit(ray core.Ray, tRange core.Interval, random *rand.Rand) (*material.HitRecord, bool) {
	offsetRay := core.NewRayAt(ray.Origin.Subtract(t.offset), ray.Direction, ray.Time)

	rec, ok := t.object.Hit(offsetRay, tRange, random)
	if !ok {
		return nil, false
	}

	rec.Point = rec.Point.Add(t.offset)
	return rec, true
}

// BoundingBox returns the shifted box
func (t *Translate) BoundingBox() core.AABB {
	return t.bbox
}

// RotateY rotates a hittable by an angle around the world Y axis
// through the origin
type RotateY struct {
	object   Hittable
	sinTheta float64
	cosTheta float64
	bbox     core.AABB
}

// NewRotateY wraps a hittable with a rotation of angle degrees around Y
func NewRotateY(object Hittable, angle float64) *RotateY {
	radians := angle * math.Pi / 180
	sinTheta := math.Sin(radians)
	cosTheta := math.Cos(radians)

	// The rotated bbox is the box over the 8 rotated corners.
	box := object.BoundingBox()
	min := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	max := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				x := float64(i)*box.X.Max + float64(1-i)*box.X.Min
				y := float64(j)*box.Y.Max + float64(1-j)*box.Y.Min
				z := float64(k)*box.Z.Max + float64(1-k)*box.Z.Min

				newX := cosTheta*x + sinTheta*z
				newZ := -sinTheta*x + cosTheta*z

				min.X = math.Min(min.X, newX)
				max.X = math.Max(max.X, newX)
				min.Y = math.Min(min.Y, y)
				max.Y = math.Max(max.Y, y)
				min.Z = math.Min(min.Z, newZ)
				max.Z = math.Max(max.Z, newZ)
			}
		}
	}

	return &RotateY{
		object:   object,
		sinTheta: sinTheta,
		cosTheta: cosTheta,
		bbox:     core.NewAABBFromPoints(min, max),
	}
}

// Hit rotates the ray into object space, intersects, and rotates the
// hit back into world space
func (r *RotateY) Hit(ray core.Ray, tRange core.Interval, random *rand.Rand) (*material.HitRecord, bool) {
	origin := r.toObject(ray.Origin)
	direction := r.toObject(ray.Direction)
	rotatedRay := core.NewRayAt(origin, direction, ray.Time)

	rec, ok := r.object.Hit(rotatedRay, tRange, random)
	if !ok {
		return nil, false
	}

	rec.Point = r.toWorld(rec.Point)
	rec.Normal = r.toWorld(rec.Normal)
	return rec, true
}

// toObject applies the inverse rotation (-θ)
func (r *RotateY) toObject(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X-r.sinTheta*v.Z,
		v.Y,
		r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// toWorld applies the forward rotation (+θ)
func (r *RotateY) toWorld(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X+r.sinTheta*v.Z,
		v.Y,
		-r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// BoundingBox returns the box over the rotated corners
func (r *RotateY) BoundingBox() core.AABB {
	return r.bbox
}
