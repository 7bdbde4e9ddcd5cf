package geometry

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Triangle represents a triangle with vertices v0, v1, v2. The plane
// algebra matches Quad; only the interior test differs.
type Triangle struct {
	V0, V1, V2 core.Vec3
	Material   material.Material

	u      core.Vec3 // edge v0→v1
	v      core.Vec3 // edge v0→v2
	w      core.Vec3
	normal core.Vec3
	d      float64
	bbox   core.AABB
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, mat material.Material) *Triangle {
	u := v1.Subtract(v0)
	v := v2.Subtract(v0)
	n := u.Cross(v)
	normal := n.Normalize()

	min := core.NewVec3(
		math.Min(v0.X, math.Min(v1.X, v2.X)),
		math.Min(v0.Y, math.Min(v1.Y, v2.Y)),
		math.Min(v0.Z, math.Min(v1.Z, v2.Z)),
	)
	max := core.NewVec3(
		math.Max(v0.X, math.Max(v1.X, v2.X)),
		math.Max(v0.Y, math.Max(v1.Y, v2.Y)),
		math.Max(v0.Z, math.Max(v1.Z, v2.Z)),
	)

	return &Triangle{
		V0: v0, V1: v1, V2: v2,
		Material: mat,
		u:        u,
		v:        v,
		w:        n.Divide(n.Dot(n)),
		normal:   normal,
		d:        normal.Dot(v0),
		bbox:     core.NewAABBFromPoints(min, max),
	}
}

// Hit tests if a ray intersects the triangle
func (tr *Triangle) Hit(ray core.Ray, tRange core.Interval, random *rand.Rand) (*material.HitRecord, bool) {
	denom := tr.normal.Dot(ray.Direction)
	if math.Abs(denom) < 1e-8 {
		return nil, false
	}

	t := (tr.d - tr.normal.Dot(ray.Origin)) / denom
	if !tRange.Surrounds(t) {
		return nil, false
	}

	intersection := ray.At(t)
	planarHit := intersection.Subtract(tr.V0)
	alpha := tr.w.Dot(planarHit.Cross(tr.v))
	beta := tr.w.Dot(tr.u.Cross(planarHit))

	if alpha < 0 || beta < 0 || alpha+beta > 1 {
		return nil, false
	}

	rec := &material.HitRecord{
		T:        t,
		Point:    intersection,
		U:        alpha,
		V:        beta,
		Material: tr.Material,
	}
	rec.SetFaceNormal(ray, tr.normal)

	return rec, true
}

// BoundingBox returns the box over the three vertices
func (tr *Triangle) BoundingBox() core.AABB {
	return tr.bbox
}
