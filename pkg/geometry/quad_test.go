package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

func grayMat() material.Material {
	return material.NewLambertianColor(core.NewVec3(0.5, 0.5, 0.5))
}

func TestQuadHitInterior(t *testing.T) {
	quad := NewQuad(core.NewVec3(-1, -1, 0), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), grayMat())
	random := testRand()

	ray := core.NewRay(core.NewVec3(0, 0, -3), core.NewVec3(0, 0, 1))
	rec, ok := quad.Hit(ray, fullRange(), random)
	if !ok {
		t.Fatal("ray through quad center should hit")
	}
	if math.Abs(rec.T-3) > 1e-12 {
		t.Errorf("t = %v, want 3", rec.T)
	}
	// Center of the parallelogram maps to (alpha, beta) = (0.5, 0.5).
	if math.Abs(rec.U-0.5) > 1e-12 || math.Abs(rec.V-0.5) > 1e-12 {
		t.Errorf("UV = (%v, %v), want (0.5, 0.5)", rec.U, rec.V)
	}
	if ray.Direction.Dot(rec.Normal) >= 0 {
		t.Errorf("normal %v does not oppose the ray", rec.Normal)
	}
}

func TestQuadMissOutsideBounds(t *testing.T) {
	quad := NewQuad(core.NewVec3(-1, -1, 0), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), grayMat())
	random := testRand()

	misses := []core.Vec3{
		{X: 1.5, Y: 0, Z: -3},  // right of the quad
		{X: -1.5, Y: 0, Z: -3}, // left
		{X: 0, Y: 1.5, Z: -3},  // above
		{X: 0, Y: -1.5, Z: -3}, // below
	}
	for _, origin := range misses {
		ray := core.NewRay(origin, core.NewVec3(0, 0, 1))
		if _, ok := quad.Hit(ray, fullRange(), random); ok {
			t.Errorf("ray from %v should miss the quad", origin)
		}
	}
}

func TestQuadRejectsParallelRays(t *testing.T) {
	quad := NewQuad(core.NewVec3(-1, -1, 0), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), grayMat())
	random := testRand()

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))
	if _, ok := quad.Hit(ray, fullRange(), random); ok {
		t.Error("in-plane ray should be rejected")
	}
}

func TestQuadEdgeUV(t *testing.T) {
	// Non-axis-aligned parallelogram: corners still map to the unit square.
	quad := NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(2, 0, 1), core.NewVec3(0, 2, 1), grayMat())
	random := testRand()

	target := core.NewVec3(2, 0, 1) // Q + u: (alpha, beta) = (1, 0)
	origin := core.NewVec3(1, -1, -5)
	ray := core.NewRay(origin, target.Subtract(origin))
	rec, ok := quad.Hit(ray, fullRange(), random)
	if !ok {
		t.Fatal("ray toward corner should hit")
	}
	if math.Abs(rec.U-1) > 1e-9 || math.Abs(rec.V-0) > 1e-9 {
		t.Errorf("corner UV = (%v, %v), want (1, 0)", rec.U, rec.V)
	}
}

func TestQuadSampledDirectionsHavePositivePDF(t *testing.T) {
	quad := NewQuad(core.NewVec3(-1, -1, 5), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), grayMat())
	random := testRand()
	origin := core.NewVec3(0, 0, 0)

	for i := 0; i < 10000; i++ {
		dir := quad.Sample(origin, random)
		if pdf := quad.PDF(origin, dir, random); pdf <= 0 {
			t.Fatalf("sampled direction %v has pdf %g", dir, pdf)
		}
	}
}

func TestQuadPDFMatchesGeometry(t *testing.T) {
	// Unit quad at distance 5, viewed head on: pdf = d²/(cos·A).
	quad := NewQuad(core.NewVec3(-0.5, -0.5, 5), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), grayMat())
	random := testRand()

	got := quad.PDF(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), random)
	want := 25.0 / (1.0 * 1.0)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("PDF = %g, want %g", got, want)
	}
}

func TestNewBoxHasSixOutwardFaces(t *testing.T) {
	box := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(1, 2, 3), grayMat)
	random := testRand()

	if len(box.Objects) != 6 {
		t.Fatalf("box has %d faces, want 6", len(box.Objects))
	}

	// From outside along each axis, the visible face's normal points
	// back toward the ray (front face).
	center := core.NewVec3(0.5, 1, 1.5)
	for _, dir := range []core.Vec3{
		{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1},
	} {
		origin := center.Add(dir.Multiply(10))
		ray := core.NewRay(origin, dir.Negate())
		rec, ok := box.Hit(ray, fullRange(), random)
		if !ok {
			t.Fatalf("ray along %v should hit the box", dir)
		}
		if !rec.FrontFace {
			t.Errorf("face seen along %v is not a front face: normals point inward", dir)
		}
		if rec.Normal.Subtract(dir).Length() > 1e-12 {
			t.Errorf("face normal %v, want %v", rec.Normal, dir)
		}
	}
}

func TestNewBoxCornerOrderIndependent(t *testing.T) {
	a := core.NewVec3(1, 2, 3)
	b := core.NewVec3(-1, 0, -3)
	box1 := NewBox(a, b, grayMat)
	box2 := NewBox(b, a, grayMat)
	if box1.BoundingBox() != box2.BoundingBox() {
		t.Error("box bounds depend on corner order")
	}
}
