package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func testHit(mat Material) HitRecord {
	return HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		T:         1,
		FrontFace: true,
		Material:  mat,
	}
}

func TestLambertianScatterProducesPdf(t *testing.T) {
	mat := NewLambertianColor(core.NewVec3(0.8, 0.4, 0.2))
	random := testRand()
	rec := testHit(mat)

	scatter, ok := mat.Scatter(core.NewRay(core.NewVec3(0, 1, -1), core.NewVec3(0, -1, 1)), rec, random)
	if !ok {
		t.Fatal("lambertian always scatters")
	}
	if scatter.IsSpecular() {
		t.Fatal("lambertian scatter is PDF-described, not specular")
	}
	if !scatter.Attenuation.Equals(core.NewVec3(0.8, 0.4, 0.2)) {
		t.Errorf("attenuation = %v", scatter.Attenuation)
	}

	// Every direction the PDF generates must have positive sampling
	// density.
	for i := 0; i < 10000; i++ {
		dir := scatter.Pdf.Generate(random)
		if scatter.Pdf.Value(dir) <= 0 {
			t.Fatalf("generated direction %v has zero sampling density", dir)
		}
	}
}

func TestLambertianScatteringPDFIsCosineOverPi(t *testing.T) {
	mat := NewLambertianColor(core.NewVec3(0.5, 0.5, 0.5))
	rec := testHit(mat)
	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	tests := []struct {
		dir  core.Vec3
		want float64
	}{
		{core.NewVec3(0, 1, 0), 1 / math.Pi},                      // along the normal
		{core.NewVec3(1, 1, 0).Normalize(), math.Sqrt2 / (2 * math.Pi)}, // 45 degrees
		{core.NewVec3(1, 0, 0), 0},                                // grazing
		{core.NewVec3(0, -1, 0), 0},                               // below the surface
	}
	for _, tc := range tests {
		got := mat.ScatteringPDF(rayIn, rec, core.NewRay(rec.Point, tc.dir))
		if math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("ScatteringPDF(%v) = %g, want %g", tc.dir, got, tc.want)
		}
	}
}

func TestLambertianUsesTextureUV(t *testing.T) {
	// A texture that encodes UV in the color verifies the record's UV
	// reaches the texture lookup.
	mat := NewLambertian(uvProbe{})
	random := testRand()
	rec := testHit(mat)
	rec.U, rec.V = 0.25, 0.75

	scatter, _ := mat.Scatter(core.NewRay(core.Vec3{}, core.NewVec3(0, -1, 0)), rec, random)
	if !scatter.Attenuation.Equals(core.NewVec3(0.25, 0.75, 0)) {
		t.Errorf("attenuation = %v, want UV encoding", scatter.Attenuation)
	}
}

type uvProbe struct{}

func (uvProbe) Value(u, v float64, p core.Vec3) core.Vec3 {
	return core.NewVec3(u, v, 0)
}
