package geometry

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// BVHNode is a node of a bounding-volume hierarchy over hittables.
// Leaves hold a single primitive; internal nodes hold two children.
// Every node's box is the union of its descendants' boxes.
type BVHNode struct {
	left  Hittable
	right Hittable
	bbox  core.AABB
}

// NewBVH builds a BVH over the objects of a list. The list must not be
// empty.
func NewBVH(list *HittableList) (*BVHNode, error) {
	if len(list.Objects) == 0 {
		return nil, fmt.Errorf("cannot build BVH over an empty list")
	}

	// Copy so the recursive sort never reorders the caller's slice.
	objects := make([]Hittable, len(list.Objects))
	copy(objects, list.Objects)

	return buildBVH(objects), nil
}

// buildBVH recursively splits the slice at the median of the longest
// axis of its aggregate box
func buildBVH(objects []Hittable) *BVHNode {
	bbox := core.EmptyAABB
	for _, object := range objects {
		bbox = core.NewAABBUnion(bbox, object.BoundingBox())
	}
	axis := bbox.LongestAxis()

	switch len(objects) {
	case 1:
		return &BVHNode{left: objects[0], right: objects[0], bbox: objects[0].BoundingBox()}
	case 2:
		return &BVHNode{left: objects[0], right: objects[1], bbox: bbox}
	}

	// Sorting needs a total order: ties on the interval min fall back
	// to the max, then to the original slice position.
	indices := make(map[Hittable]int, len(objects))
	for i, object := range objects {
		indices[object] = i
	}
	sort.SliceStable(objects, func(i, j int) bool {
		a := objects[i].BoundingBox().AxisInterval(axis)
		b := objects[j].BoundingBox().AxisInterval(axis)
		if a.Min != b.Min {
			return a.Min < b.Min
		}
		if a.Max != b.Max {
			return a.Max < b.Max
		}
		return indices[objects[i]] < indices[objects[j]]
	})

	mid := len(objects) / 2
	left := buildBVH(objects[:mid])
	right := buildBVH(objects[mid:])

	return &BVHNode{
		left:  left,
		right: right,
		bbox:  core.NewAABBUnion(left.bbox, right.bbox),
	}
}

// Hit descends the hierarchy, clipping the right subtree's window to
// the closest hit found on the left. No front-to-back ordering is
// assumed; the shrinking window prunes occluded subtrees.
func (n *BVHNode) Hit(ray core.Ray, tRange core.Interval, random *rand.Rand) (*material.HitRecord, bool) {
	if !n.bbox.Hit(ray, tRange) {
		return nil, false
	}

	if n.left == n.right {
		return n.left.Hit(ray, tRange, random)
	}

	closest, hitLeft := n.left.Hit(ray, tRange, random)
	if hitLeft {
		tRange = core.NewInterval(tRange.Min, closest.T)
	}
	if rec, ok := n.right.Hit(ray, tRange, random); ok {
		return rec, true
	}
	return closest, hitLeft
}

// BoundingBox returns the node's box
func (n *BVHNode) BoundingBox() core.AABB {
	return n.bbox
}
