package config

import "testing"

func TestParseRenderSettings(t *testing.T) {
	data := []byte(`
scene: cornell-box
width: 600
samples: 200
depth: 50
workers: 8
seed: 1234
output: cornell.ppm
`)
	settings, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	if settings.Scene != "cornell-box" || settings.ImageWidth != 600 ||
		settings.SamplesPerPixel != 200 || settings.MaxDepth != 50 ||
		settings.NumWorkers != 8 || settings.Seed != 1234 || settings.Output != "cornell.ppm" {
		t.Errorf("parsed settings = %+v", settings)
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("width: [not a number")); err == nil {
		t.Error("malformed YAML should error")
	}
}

func TestMergeKeepsUnsetFields(t *testing.T) {
	base := &RenderSettings{Scene: "quads", ImageWidth: 400, Seed: 42}
	base.Merge(&RenderSettings{ImageWidth: 800})

	if base.Scene != "quads" {
		t.Errorf("scene = %q, want unchanged", base.Scene)
	}
	if base.ImageWidth != 800 {
		t.Errorf("width = %d, want overridden to 800", base.ImageWidth)
	}
	if base.Seed != 42 {
		t.Errorf("seed = %d, want unchanged", base.Seed)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("no/such/config.yaml"); err == nil {
		t.Error("missing config file should error")
	}
}
