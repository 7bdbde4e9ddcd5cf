package geometry

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// HittableList is an unordered aggregate of hittables. A list of area
// lights doubles as a sampling target for the integrator.
type HittableList struct {
	Objects []Hittable
	bbox    core.AABB
}

// NewHittableList creates an empty list
func NewHittableList() *HittableList {
	return &HittableList{bbox: core.EmptyAABB}
}

// Add appends an object and grows the aggregate bounding box
func (hl *HittableList) Add(object Hittable) {
	hl.Objects = append(hl.Objects, object)
	hl.bbox = core.NewAABBUnion(hl.bbox, object.BoundingBox())
}

// Clear removes all objects
func (hl *HittableList) Clear() {
	hl.Objects = nil
	hl.bbox = core.EmptyAABB
}

// Hit scans every child, tightening the window to the closest hit so far
func (hl *HittableList) Hit(ray core.Ray, tRange core.Interval, random *rand.Rand) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	closestSoFar := tRange.Max

	for _, object := range hl.Objects {
		if rec, ok := object.Hit(ray, core.NewInterval(tRange.Min, closestSoFar), random); ok {
			closestSoFar = rec.T
			closest = rec
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the running union maintained on insert
func (hl *HittableList) BoundingBox() core.AABB {
	return hl.bbox
}

// PDF averages the children's densities with uniform 1/N weights.
// Children that cannot be sampled contribute zero. The uniform weights
// are biased when light areas differ substantially; that matches the
// sampling in Sample and keeps the estimator consistent.
func (hl *HittableList) PDF(origin, direction core.Vec3, random *rand.Rand) float64 {
	if len(hl.Objects) == 0 {
		return 0
	}

	weight := 1.0 / float64(len(hl.Objects))
	sum := 0.0
	for _, object := range hl.Objects {
		if light, ok := object.(Light); ok {
			sum += weight * light.PDF(origin, direction, random)
		}
	}
	return sum
}

// Sample picks a uniformly-random child and delegates
func (hl *HittableList) Sample(origin core.Vec3, random *rand.Rand) core.Vec3 {
	if len(hl.Objects) == 0 {
		return core.NewVec3(1, 0, 0)
	}

	object := hl.Objects[random.Intn(len(hl.Objects))]
	if light, ok := object.(Light); ok {
		return light.Sample(origin, random)
	}
	return core.NewVec3(1, 0, 0)
}
