package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func fullRange() core.Interval {
	return core.NewInterval(0.001, math.Inf(1))
}

func TestSphereHitBasic(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1, material.NewLambertianColor(core.NewVec3(0.5, 0.5, 0.5)))
	random := testRand()

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	rec, ok := sphere.Hit(ray, fullRange(), random)
	if !ok {
		t.Fatal("ray toward sphere center should hit")
	}
	if math.Abs(rec.T-4) > 1e-12 {
		t.Errorf("hit t = %v, want 4", rec.T)
	}
	if !rec.FrontFace {
		t.Error("outside hit should be front face")
	}
	if rec.Normal.Subtract(core.NewVec3(0, 0, 1)).Length() > 1e-12 {
		t.Errorf("normal = %v, want {0, 0, 1}", rec.Normal)
	}
}

func TestSphereHitPointOnSurface(t *testing.T) {
	center := core.NewVec3(1, 2, 3)
	const radius = 2.5
	sphere := NewSphere(center, radius, material.NewLambertianColor(core.NewVec3(0.5, 0.5, 0.5)))
	random := testRand()

	for i := 0; i < 1000; i++ {
		origin := center.Add(core.RandomUnitVector(random).Multiply(10))
		ray := core.NewRay(origin, center.Subtract(origin).Add(core.RandomUnitVector(random)))
		rec, ok := sphere.Hit(ray, fullRange(), random)
		if !ok {
			continue
		}
		dist := rec.Point.Subtract(center).Length()
		if math.Abs(dist-radius) > 1e-6*radius {
			t.Fatalf("hit point at distance %v from center, want %v", dist, radius)
		}
		if ray.Direction.Dot(rec.Normal) > 0 {
			t.Fatalf("normal %v does not oppose ray %v", rec.Normal, ray.Direction)
		}
		if !fullRange().Surrounds(rec.T) {
			t.Fatalf("t = %v outside the requested window", rec.T)
		}
	}
}

func TestSphereHitInsideIsBackFace(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 2, material.NewDielectric(1.5))
	random := testRand()

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))
	rec, ok := sphere.Hit(ray, fullRange(), random)
	if !ok {
		t.Fatal("ray from center should hit the shell")
	}
	if rec.FrontFace {
		t.Error("hit from inside should be a back face")
	}
	if rec.Normal.Subtract(core.NewVec3(-1, 0, 0)).Length() > 1e-12 {
		t.Errorf("inside normal = %v, want {-1, 0, 0}", rec.Normal)
	}
}

func TestSphereHitRespectsWindow(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1, material.NewLambertianColor(core.NewVec3(0.5, 0.5, 0.5)))
	random := testRand()
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	// Near root at t=4 is excluded, far root at t=6 should be found.
	rec, ok := sphere.Hit(ray, core.NewInterval(4.5, 10), random)
	if !ok {
		t.Fatal("far root should be inside window")
	}
	if math.Abs(rec.T-6) > 1e-12 {
		t.Errorf("hit t = %v, want 6", rec.T)
	}

	// Window boundaries are exclusive.
	if _, ok := sphere.Hit(ray, core.NewInterval(4, 4), random); ok {
		t.Error("degenerate window should not hit")
	}
	if _, ok := sphere.Hit(ray, core.NewInterval(6.5, 10), random); ok {
		t.Error("window past both roots should not hit")
	}
}

func TestSphereUV(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, material.NewLambertianColor(core.NewVec3(0.5, 0.5, 0.5)))
	random := testRand()

	tests := []struct {
		name   string
		origin core.Vec3
		dir    core.Vec3
		u, v   float64
	}{
		{"+x point", core.NewVec3(5, 0, 0), core.NewVec3(-1, 0, 0), 0.5, 0.5},
		{"north pole", core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0), -1, 1.0}, // u arbitrary at poles
		{"south pole", core.NewVec3(0, -5, 0), core.NewVec3(0, 1, 0), -1, 0.0},
		{"-x point", core.NewVec3(-5, 0, 0), core.NewVec3(1, 0, 0), 0.0, 0.5},
	}
	for _, tc := range tests {
		rec, ok := sphere.Hit(core.NewRay(tc.origin, tc.dir), fullRange(), random)
		if !ok {
			t.Fatalf("%s: expected hit", tc.name)
		}
		if tc.u >= 0 && math.Abs(rec.U-tc.u) > 1e-9 {
			t.Errorf("%s: u = %v, want %v", tc.name, rec.U, tc.u)
		}
		if math.Abs(rec.V-tc.v) > 1e-6 {
			t.Errorf("%s: v = %v, want %v", tc.name, rec.V, tc.v)
		}
	}
}

func TestMovingSphereFollowsCenter(t *testing.T) {
	sphere := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(10, 0, 0), 1,
		material.NewLambertianColor(core.NewVec3(0.5, 0.5, 0.5)))
	random := testRand()

	// At shutter time 0 the sphere is at the origin.
	ray := core.NewRayAt(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0), 0)
	if _, ok := sphere.Hit(ray, fullRange(), random); !ok {
		t.Error("time-0 ray should hit the start position")
	}

	// At shutter time 1 it has moved away.
	ray = core.NewRayAt(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0), 1)
	if _, ok := sphere.Hit(ray, fullRange(), random); ok {
		t.Error("time-1 ray should miss the start position")
	}
	ray = core.NewRayAt(core.NewVec3(10, 5, 0), core.NewVec3(0, -1, 0), 1)
	if _, ok := sphere.Hit(ray, fullRange(), random); !ok {
		t.Error("time-1 ray should hit the end position")
	}
}

func TestMovingSphereBoundingBoxCoversPath(t *testing.T) {
	sphere := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(10, 0, 0), 1,
		material.NewLambertianColor(core.NewVec3(0.5, 0.5, 0.5)))
	box := sphere.BoundingBox()
	if box.X.Min > -1 || box.X.Max < 11 {
		t.Errorf("bbox X = %v does not cover the motion", box.X)
	}
}

func TestSphereZeroRadiusClamped(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), -3, material.NewLambertianColor(core.NewVec3(0.5, 0.5, 0.5)))
	if sphere.Radius != 0 {
		t.Errorf("negative radius should clamp to 0, got %v", sphere.Radius)
	}
}

func TestSphereLightSampling(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 5, 0), 1, material.NewDiffuseLightColor(core.NewVec3(4, 4, 4)))
	random := testRand()
	origin := core.NewVec3(0, 0, 0)

	for i := 0; i < 10000; i++ {
		dir := sphere.Sample(origin, random)
		pdf := sphere.PDF(origin, dir, random)
		if pdf <= 0 {
			t.Fatalf("sampled direction %v has pdf %g", dir, pdf)
		}
	}

	// The PDF of the subtended cone: 1 / (2π(1-cosThetaMax)).
	dir := core.NewVec3(0, 1, 0)
	cosThetaMax := math.Sqrt(1 - 1.0/25.0)
	want := 1.0 / (2 * math.Pi * (1 - cosThetaMax))
	if got := sphere.PDF(origin, dir, random); math.Abs(got-want) > 1e-9 {
		t.Errorf("PDF toward center = %g, want %g", got, want)
	}

	// Directions that miss the sphere have zero density.
	if got := sphere.PDF(origin, core.NewVec3(0, -1, 0), random); got != 0 {
		t.Errorf("PDF away from sphere = %g, want 0", got)
	}
}
