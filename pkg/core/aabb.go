package core

import "math"

// AABB represents an axis-aligned bounding box as one interval per axis
type AABB struct {
	X, Y, Z Interval
}

// EmptyAABB bounds nothing; unioning with it is the identity.
var EmptyAABB = AABB{X: EmptyInterval, Y: EmptyInterval, Z: EmptyInterval}

// NewAABB creates an AABB from three axis intervals
func NewAABB(x, y, z Interval) AABB {
	return AABB{X: x, Y: y, Z: z}.padToMinimums()
}

// NewAABBFromPoints creates the AABB with a and b as opposite corners,
// in either order
func NewAABBFromPoints(a, b Vec3) AABB {
	box := AABB{
		X: Interval{Min: math.Min(a.X, b.X), Max: math.Max(a.X, b.X)},
		Y: Interval{Min: math.Min(a.Y, b.Y), Max: math.Max(a.Y, b.Y)},
		Z: Interval{Min: math.Min(a.Z, b.Z), Max: math.Max(a.Z, b.Z)},
	}
	return box.padToMinimums()
}

// NewAABBUnion creates the tightest AABB containing both boxes
func NewAABBUnion(a, b AABB) AABB {
	return AABB{
		X: NewIntervalUnion(a.X, b.X),
		Y: NewIntervalUnion(a.Y, b.Y),
		Z: NewIntervalUnion(a.Z, b.Z),
	}
}

// padToMinimums widens any degenerate axis so planar primitives keep a
// non-zero slab for the hit test.
func (aabb AABB) padToMinimums() AABB {
	const delta = 0.0001
	if aabb.X.Size() < delta {
		aabb.X = aabb.X.Expand(delta)
	}
	if aabb.Y.Size() < delta {
		aabb.Y = aabb.Y.Expand(delta)
	}
	if aabb.Z.Size() < delta {
		aabb.Z = aabb.Z.Expand(delta)
	}
	return aabb
}

// AxisInterval returns the interval for axis index 0/1/2
func (aabb AABB) AxisInterval(axis int) Interval {
	switch axis {
	case 0:
		return aabb.X
	case 1:
		return aabb.Y
	default:
		return aabb.Z
	}
}

// Hit tests the ray against the box with the slab method, clipping the
// parametric window axis by axis. Zero direction components produce
// IEEE-754 infinities whose slabs are trivially accepted or rejected.
func (aabb AABB) Hit(ray Ray, tRange Interval) bool {
	for axis := 0; axis < 3; axis++ {
		ax := aabb.AxisInterval(axis)
		invD := 1.0 / ray.Direction.Axis(axis)
		origin := ray.Origin.Axis(axis)

		t0 := (ax.Min - origin) * invD
		t1 := (ax.Max - origin) * invD
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		if t0 > tRange.Min {
			tRange.Min = t0
		}
		if t1 < tRange.Max {
			tRange.Max = t1
		}
		if tRange.Max <= tRange.Min {
			return false
		}
	}
	return true
}

// LongestAxis returns the index (0=X, 1=Y, 2=Z) of the longest axis
func (aabb AABB) LongestAxis() int {
	if aabb.X.Size() > aabb.Y.Size() {
		if aabb.X.Size() > aabb.Z.Size() {
			return 0
		}
		return 2
	}
	if aabb.Y.Size() > aabb.Z.Size() {
		return 1
	}
	return 2
}

// Translate returns the box shifted by an offset vector
func (aabb AABB) Translate(offset Vec3) AABB {
	return AABB{
		X: aabb.X.Add(offset.X),
		Y: aabb.Y.Add(offset.Y),
		Z: aabb.Z.Add(offset.Z),
	}
}

// Min returns the minimum corner of the box
func (aabb AABB) Min() Vec3 {
	return Vec3{X: aabb.X.Min, Y: aabb.Y.Min, Z: aabb.Z.Min}
}

// Max returns the maximum corner of the box
func (aabb AABB) Max() Vec3 {
	return Vec3{X: aabb.X.Max, Y: aabb.Y.Max, Z: aabb.Z.Max}
}

// Center returns the center point of the box
func (aabb AABB) Center() Vec3 {
	return aabb.Min().Add(aabb.Max()).Multiply(0.5)
}
