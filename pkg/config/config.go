// Package config loads optional render-settings overrides from a YAML
// file. Settings here sit between scene defaults and CLI flags: the
// scene supplies defaults, the file overrides the scene, flags override
// the file. Scene content itself is never described here.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RenderSettings are the overridable knobs of a render. Zero values
// mean "keep the current setting".
type RenderSettings struct {
	Scene           string `yaml:"scene"`
	ImageWidth      int    `yaml:"width"`
	SamplesPerPixel int    `yaml:"samples"`
	MaxDepth        int    `yaml:"depth"`
	NumWorkers      int    `yaml:"workers"`
	Seed            int64  `yaml:"seed"`
	Output          string `yaml:"output"`
}

// Load reads render settings from a YAML file
func Load(filename string) (*RenderSettings, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes render settings from YAML bytes
func Parse(data []byte) (*RenderSettings, error) {
	settings := &RenderSettings{}
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("config: yaml %w", err)
	}
	return settings, nil
}

// Merge overlays the non-zero fields of other onto s
func (s *RenderSettings) Merge(other *RenderSettings) {
	if other.Scene != "" {
		s.Scene = other.Scene
	}
	if other.ImageWidth != 0 {
		s.ImageWidth = other.ImageWidth
	}
	if other.SamplesPerPixel != 0 {
		s.SamplesPerPixel = other.SamplesPerPixel
	}
	if other.MaxDepth != 0 {
		s.MaxDepth = other.MaxDepth
	}
	if other.NumWorkers != 0 {
		s.NumWorkers = other.NumWorkers
	}
	if other.Seed != 0 {
		s.Seed = other.Seed
	}
	if other.Output != "" {
		s.Output = other.Output
	}
}
