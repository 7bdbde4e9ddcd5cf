package loaders

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(1, 0, color.RGBA{G: 255, A: 255})

	path := filepath.Join(t.TempDir(), "tiny.png")
	file, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	if err := png.Encode(file, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadImagePNG(t *testing.T) {
	path := writeTestPNG(t)

	img, err := LoadImage(path)
	if err != nil {
		t.Fatal(err)
	}
	if img.Width != 2 || img.Height != 1 {
		t.Fatalf("dimensions = %dx%d, want 2x1", img.Width, img.Height)
	}
	if math.Abs(img.Pixels[0].X-1.0) > 1e-3 || img.Pixels[0].Y > 1e-3 {
		t.Errorf("pixel 0 = %v, want red", img.Pixels[0])
	}
	if math.Abs(img.Pixels[1].Y-1.0) > 1e-3 || img.Pixels[1].X > 1e-3 {
		t.Errorf("pixel 1 = %v, want green", img.Pixels[1])
	}
}

func TestLoadImageMissingFile(t *testing.T) {
	if _, err := LoadImage("no/such/texture.png"); err == nil {
		t.Error("missing file should error")
	}
}

func TestLoadImageNotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadImage(path); err == nil {
		t.Error("undecodable file should error")
	}
}
