package material

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestDiffuseLightEmitsFromFrontFaceOnly(t *testing.T) {
	mat := NewDiffuseLightColor(core.NewVec3(4, 3, 2))
	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	rec := testHit(mat)
	rec.FrontFace = true
	if got := mat.Emitted(rayIn, rec); !got.Equals(core.NewVec3(4, 3, 2)) {
		t.Errorf("front-face emission = %v", got)
	}

	rec.FrontFace = false
	if got := mat.Emitted(rayIn, rec); !got.Equals(core.Vec3{}) {
		t.Errorf("back-face emission = %v, want black", got)
	}
}

func TestDiffuseLightDoesNotScatter(t *testing.T) {
	mat := NewDiffuseLightColor(core.NewVec3(4, 4, 4))
	random := testRand()
	rec := testHit(mat)

	if _, ok := mat.Scatter(core.NewRay(core.Vec3{}, core.NewVec3(0, -1, 0)), rec, random); ok {
		t.Error("lights absorb incoming rays")
	}
}
