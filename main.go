package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/df07/go-pathtracer/internal/logger"
	"github.com/df07/go-pathtracer/pkg/config"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// defaultSeed keeps renders reproducible unless the user asks otherwise.
const defaultSeed = 42

func main() {
	settings, flags := parseFlags()
	if flags.Help {
		showHelp()
		return
	}
	if flags.List {
		for _, name := range scene.Names() {
			fmt.Println(name)
		}
		return
	}

	logger.Init()
	defer logger.Log.Sync() //nolint:errcheck

	sc, err := createScene(settings.Scene, settings.Seed, flags.EarthPath, flags.MeshPath, flags.MeshScale)
	if err != nil {
		logger.Log.Fatal("scene construction failed", zap.String("scene", settings.Scene), zap.Error(err))
	}

	// Flag/config overrides on top of the scene's baked-in defaults.
	if settings.ImageWidth > 0 {
		sc.Camera.ImageWidth = settings.ImageWidth
	}
	if settings.SamplesPerPixel > 0 {
		sc.Camera.SamplesPerPixel = settings.SamplesPerPixel
	}
	if settings.MaxDepth > 0 {
		sc.Camera.MaxDepth = settings.MaxDepth
	}

	world, err := sc.Root()
	if err != nil {
		logger.Log.Fatal("scene construction failed", zap.Error(err))
	}

	var out io.Writer = os.Stdout
	if settings.Output != "" {
		file, err := os.Create(settings.Output)
		if err != nil {
			logger.Log.Fatal("cannot create output file", zap.String("path", settings.Output), zap.Error(err))
		}
		defer file.Close()
		out = file
	}

	camera := renderer.NewCamera(sc.Camera)
	r := renderer.NewRenderer(camera, world, sc.LightSet(), renderer.Options{
		NumWorkers: settings.NumWorkers,
		Seed:       settings.Seed,
	})
	if err := r.Render(out); err != nil {
		logger.Log.Fatal("render failed", zap.Error(err))
	}
}

// extraFlags are options that never come from the YAML config
type extraFlags struct {
	Help      bool
	List      bool
	EarthPath string
	MeshPath  string
	MeshScale float64
}

// parseFlags merges the built-in defaults, the optional YAML config
// file, and command-line flags, in increasing priority. Scene defaults
// are applied later, for every setting still left at zero.
func parseFlags() (*config.RenderSettings, extraFlags) {
	var fromFlags config.RenderSettings
	var extra extraFlags
	var configPath string

	flag.StringVar(&fromFlags.Scene, "scene", "", "Scene to render (see --list)")
	flag.IntVar(&fromFlags.ImageWidth, "width", 0, "Image width in pixels (0 = scene default)")
	flag.IntVar(&fromFlags.SamplesPerPixel, "spp", 0, "Samples per pixel (0 = scene default)")
	flag.IntVar(&fromFlags.MaxDepth, "depth", 0, "Maximum ray bounces (0 = scene default)")
	flag.IntVar(&fromFlags.NumWorkers, "workers", 0, "Parallel workers (0 = CPU count)")
	flag.Int64Var(&fromFlags.Seed, "seed", 0, "Base RNG seed (0 = default)")
	flag.StringVar(&fromFlags.Output, "out", "", "Output PPM path (default stdout)")
	flag.StringVar(&configPath, "config", "", "Optional YAML render-settings file")
	flag.StringVar(&extra.EarthPath, "earth-image", "", "Image file for the earth/final scenes")
	flag.StringVar(&extra.MeshPath, "mesh-obj", "", "OBJ file for the mesh scene")
	flag.Float64Var(&extra.MeshScale, "mesh-scale", 100.0, "Scale factor for the mesh scene")
	flag.BoolVar(&extra.Help, "help", false, "Show help information")
	flag.BoolVar(&extra.List, "list", false, "List built-in scenes")
	flag.Parse()

	settings := &config.RenderSettings{Scene: "bouncing-spheres", Seed: defaultSeed}
	if configPath != "" {
		fromFile, err := config.Load(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		settings.Merge(fromFile)
	}
	settings.Merge(&fromFlags)

	return settings, extra
}

// createScene builds the selected built-in scene
func createScene(name string, seed int64, earthPath, meshPath string, meshScale float64) (*scene.Scene, error) {
	switch name {
	case "bouncing-spheres":
		return scene.NewBouncingSpheres(seed), nil
	case "checkered-spheres":
		return scene.NewCheckeredSpheres(), nil
	case "earth":
		return scene.NewEarth(earthPath)
	case "perlin-spheres":
		return scene.NewPerlinSpheres(seed), nil
	case "quads":
		return scene.NewQuads(), nil
	case "simple-light":
		return scene.NewSimpleLight(seed), nil
	case "cornell-box":
		return scene.NewCornellBox(), nil
	case "cornell-smoke":
		return scene.NewCornellSmoke(), nil
	case "final-scene":
		return scene.NewFinalScene(seed, earthPath)
	case "mesh":
		return scene.NewMesh(meshPath, meshScale)
	default:
		return nil, fmt.Errorf("unknown scene %q", name)
	}
}

// showHelp displays help information
func showHelp() {
	fmt.Println("go-pathtracer")
	fmt.Println("Usage: pathtracer [options] > image.ppm")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("The PPM image is written to stdout (or --out); progress goes to stderr.")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  pathtracer --scene=cornell-box --spp=200 > cornell.ppm")
	fmt.Println("  pathtracer --scene=earth --earth-image=assets/earthmap.jpg > earth.ppm")
	fmt.Println("  pathtracer --config=render.yaml --out=render.ppm")
}
