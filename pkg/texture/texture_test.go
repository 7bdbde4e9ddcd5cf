package texture

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestSolidColorIgnoresCoordinates(t *testing.T) {
	tex := NewSolidColorRGB(0.1, 0.2, 0.3)
	want := core.NewVec3(0.1, 0.2, 0.3)

	if got := tex.Value(0, 0, core.Vec3{}); !got.Equals(want) {
		t.Errorf("Value = %v", got)
	}
	if got := tex.Value(0.9, 0.1, core.NewVec3(100, -5, 3)); !got.Equals(want) {
		t.Errorf("Value = %v", got)
	}
}

func TestCheckerAlternatesCells(t *testing.T) {
	even := core.NewVec3(1, 1, 1)
	odd := core.NewVec3(0, 0, 0)
	tex := NewCheckerTextureColors(1.0, even, odd)

	// Neighbor cells along each axis flip parity.
	if got := tex.Value(0, 0, core.NewVec3(0.5, 0.5, 0.5)); !got.Equals(even) {
		t.Errorf("cell (0,0,0) = %v, want even", got)
	}
	if got := tex.Value(0, 0, core.NewVec3(1.5, 0.5, 0.5)); !got.Equals(odd) {
		t.Errorf("cell (1,0,0) = %v, want odd", got)
	}
	if got := tex.Value(0, 0, core.NewVec3(1.5, 1.5, 0.5)); !got.Equals(even) {
		t.Errorf("cell (1,1,0) = %v, want even", got)
	}
	// Negative coordinates keep alternating.
	if got := tex.Value(0, 0, core.NewVec3(-0.5, 0.5, 0.5)); !got.Equals(odd) {
		t.Errorf("cell (-1,0,0) = %v, want odd", got)
	}
}

func TestCheckerScale(t *testing.T) {
	even := core.NewVec3(1, 1, 1)
	odd := core.NewVec3(0, 0, 0)
	tex := NewCheckerTextureColors(10.0, even, odd)

	// Both points fall in the same 10-unit cell.
	a := tex.Value(0, 0, core.NewVec3(1, 1, 1))
	b := tex.Value(0, 0, core.NewVec3(9, 9, 9))
	if !a.Equals(b) {
		t.Error("points within one scaled cell should match")
	}
}

func TestImageTextureLookup(t *testing.T) {
	// 2x2 image: top row red, green; bottom row blue, white.
	pixels := []core.Vec3{
		{X: 1}, {Y: 1},
		{Z: 1}, {X: 1, Y: 1, Z: 1},
	}
	tex := NewImageTexture(2, 2, pixels)

	// v=1 is the top row, v=0 the bottom row.
	if got := tex.Value(0.1, 0.9, core.Vec3{}); !got.Equals(core.NewVec3(1, 0, 0)) {
		t.Errorf("top-left = %v, want red", got)
	}
	if got := tex.Value(0.9, 0.9, core.Vec3{}); !got.Equals(core.NewVec3(0, 1, 0)) {
		t.Errorf("top-right = %v, want green", got)
	}
	if got := tex.Value(0.1, 0.1, core.Vec3{}); !got.Equals(core.NewVec3(0, 0, 1)) {
		t.Errorf("bottom-left = %v, want blue", got)
	}
}

func TestImageTextureClampsUV(t *testing.T) {
	pixels := []core.Vec3{{X: 1}, {Y: 1}, {Z: 1}, {X: 1, Y: 1, Z: 1}}
	tex := NewImageTexture(2, 2, pixels)

	// Out-of-range UV clamps to the border instead of wrapping or
	// indexing out of bounds. u=1, v=1 must stay within width-1 and
	// height-1.
	if got := tex.Value(1.0, 1.0, core.Vec3{}); !got.Equals(core.NewVec3(0, 1, 0)) {
		t.Errorf("UV (1,1) = %v, want top-right", got)
	}
	if got := tex.Value(5.0, -3.0, core.Vec3{}); !got.Equals(core.NewVec3(1, 1, 1)) {
		t.Errorf("UV (5,-3) = %v, want bottom-right", got)
	}
}

func TestImageTextureEmptyImageIsCyan(t *testing.T) {
	tex := NewImageTexture(0, 0, nil)
	if got := tex.Value(0.5, 0.5, core.Vec3{}); !got.Equals(core.NewVec3(0, 1, 1)) {
		t.Errorf("empty image sample = %v, want cyan diagnostic", got)
	}
}

func TestNoiseTextureRangeAndDeterminism(t *testing.T) {
	tex := NewNoiseTexture(4, 7)

	for i := 0; i < 1000; i++ {
		p := core.NewVec3(float64(i)*0.173, float64(i)*-0.071, float64(i)*0.031)
		v := tex.Value(0, 0, p)
		if v.X < 0 || v.X > 1 {
			t.Fatalf("marble value %v outside [0, 1] at %v", v.X, p)
		}
		if v.X != v.Y || v.Y != v.Z {
			t.Fatalf("marble should be grayscale, got %v", v)
		}
	}

	// Same seed, same pattern.
	tex2 := NewNoiseTexture(4, 7)
	p := core.NewVec3(1.5, 2.5, 3.5)
	if !tex.Value(0, 0, p).Equals(tex2.Value(0, 0, p)) {
		t.Error("same seed should reproduce the same noise")
	}
}

func TestNoiseTurbulenceIsNonNegative(t *testing.T) {
	tex := NewNoiseTexture(1, 3)
	for i := 0; i < 1000; i++ {
		p := core.NewVec3(float64(i)*0.37, float64(i)*0.11, float64(i)*-0.23)
		if tex.Turbulence(p, 7) < 0 {
			t.Fatalf("turbulence negative at %v", p)
		}
	}
}
