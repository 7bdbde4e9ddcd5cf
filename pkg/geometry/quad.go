package geometry

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Quad represents a parallelogram defined by a corner point Q and two
// edge vectors u and v
type Quad struct {
	Q        core.Vec3
	U        core.Vec3
	V        core.Vec3
	Material material.Material

	w      core.Vec3 // (u×v)/|u×v|², for barycentric decomposition
	normal core.Vec3
	d      float64 // plane equation constant: normal·p = d
	area   float64
	bbox   core.AABB
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(q, u, v core.Vec3, mat material.Material) *Quad {
	n := u.Cross(v)
	normal := n.Normalize()

	diagonal1 := core.NewAABBFromPoints(q, q.Add(u).Add(v))
	diagonal2 := core.NewAABBFromPoints(q.Add(u), q.Add(v))

	return &Quad{
		Q:        q,
		U:        u,
		V:        v,
		Material: mat,
		w:        n.Divide(n.Dot(n)),
		normal:   normal,
		d:        normal.Dot(q),
		area:     n.Length(),
		bbox:     core.NewAABBUnion(diagonal1, diagonal2),
	}
}

// Hit tests if a ray intersects the quad
func (q *Quad) Hit(ray core.Ray, tRange core.Interval, random *rand.Rand) (*material.HitRecord, bool) {
	denom := q.normal.Dot(ray.Direction)

	// Parallel to the plane
	if math.Abs(denom) < 1e-8 {
		return nil, false
	}

	t := (q.d - q.normal.Dot(ray.Origin)) / denom
	if !tRange.Surrounds(t) {
		return nil, false
	}

	intersection := ray.At(t)
	planarHit := intersection.Subtract(q.Q)
	alpha := q.w.Dot(planarHit.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(planarHit))

	if !q.isInterior(alpha, beta) {
		return nil, false
	}

	rec := &material.HitRecord{
		T:        t,
		Point:    intersection,
		U:        alpha,
		V:        beta,
		Material: q.Material,
	}
	rec.SetFaceNormal(ray, q.normal)

	return rec, true
}

func (q *Quad) isInterior(alpha, beta float64) bool {
	unit := core.NewInterval(0, 1)
	return unit.Contains(alpha) && unit.Contains(beta)
}

// BoundingBox returns the box over the quad's four corners
func (q *Quad) BoundingBox() core.AABB {
	return q.bbox
}

// PDF returns the solid-angle density of sampling the quad uniformly by
// area from origin
func (q *Quad) PDF(origin, direction core.Vec3, random *rand.Rand) float64 {
	rec, ok := q.Hit(core.NewRay(origin, direction), core.NewInterval(0.001, math.Inf(1)), random)
	if !ok {
		return 0
	}

	distanceSquared := rec.T * rec.T * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(rec.Normal) / direction.Length())
	if cosine == 0 {
		return 0
	}

	return distanceSquared / (cosine * q.area)
}

// Sample draws a direction from origin toward a uniformly-random point
// on the quad
func (q *Quad) Sample(origin core.Vec3, random *rand.Rand) core.Vec3 {
	p := q.Q.
		Add(q.U.Multiply(random.Float64())).
		Add(q.V.Multiply(random.Float64()))
	return p.Subtract(origin)
}

// NewBox builds the six quads of an axis-aligned box with a and b as
// opposite corners. Each face takes its material from the factory, and
// every face normal points out of the box.
func NewBox(a, b core.Vec3, makeMat func() material.Material) *HittableList {
	sides := NewHittableList()

	min := core.NewVec3(math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z))
	max := core.NewVec3(math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z))

	dx := core.NewVec3(max.X-min.X, 0, 0)
	dy := core.NewVec3(0, max.Y-min.Y, 0)
	dz := core.NewVec3(0, 0, max.Z-min.Z)

	sides.Add(NewQuad(core.NewVec3(min.X, min.Y, max.Z), dx, dy, makeMat()))           // front
	sides.Add(NewQuad(core.NewVec3(max.X, min.Y, max.Z), dz.Negate(), dy, makeMat()))  // right
	sides.Add(NewQuad(core.NewVec3(max.X, min.Y, min.Z), dx.Negate(), dy, makeMat()))  // back
	sides.Add(NewQuad(core.NewVec3(min.X, min.Y, min.Z), dz, dy, makeMat()))           // left
	sides.Add(NewQuad(core.NewVec3(min.X, max.Y, max.Z), dx, dz.Negate(), makeMat()))  // top
	sides.Add(NewQuad(core.NewVec3(min.X, min.Y, min.Z), dx, dz, makeMat()))           // bottom

	return sides
}
