package renderer

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/df07/go-pathtracer/internal/logger"
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"

	"go.uber.org/zap"
)

// Options controls the render driver
type Options struct {
	NumWorkers int   // 0 = one per CPU
	Seed       int64 // base seed for the per-row RNGs
}

// Renderer drives a camera and an integrator over a scene and emits
// the image as ASCII PPM in row-major order.
type Renderer struct {
	camera     *Camera
	integrator *Integrator
	options    Options
}

// NewRenderer creates a renderer for a world and an optional light
// aggregate
func NewRenderer(camera *Camera, world geometry.Hittable, lights geometry.Light, options Options) *Renderer {
	return &Renderer{
		camera:     camera,
		integrator: NewIntegrator(world, lights),
		options:    options,
	}
}

// RenderFrame renders every scanline in parallel and returns the
// framebuffer in row-major order
func (r *Renderer) RenderFrame(onProgress func(rowsDone int)) [][]core.Vec3 {
	height := r.camera.ImageHeight()

	framebuffer := make([][]core.Vec3, height)
	for j := range framebuffer {
		framebuffer[j] = make([]core.Vec3, r.camera.ImageWidth())
	}

	pool := NewWorkerPool(r.camera, r.integrator, r.options.NumWorkers, r.options.Seed, onProgress)
	pool.Start()
	for j := 0; j < height; j++ {
		pool.Submit(ScanlineTask{Row: j, Framebuffer: framebuffer})
	}
	pool.Wait()

	return framebuffer
}

// Render renders the scene and writes the PPM stream. Progress is
// reported to the shared logger, best-effort.
func (r *Renderer) Render(out io.Writer) error {
	width := r.camera.ImageWidth()
	height := r.camera.ImageHeight()
	start := time.Now()

	if logger.Log != nil {
		logger.Log.Info("render started",
			zap.Int("width", width),
			zap.Int("height", height),
			zap.Int("spp", r.camera.SqrtSpp()*r.camera.SqrtSpp()),
			zap.Int("maxDepth", r.camera.Config.MaxDepth),
		)
	}

	reportEvery := height / 10
	if reportEvery < 1 {
		reportEvery = 1
	}
	framebuffer := r.RenderFrame(func(rowsDone int) {
		if logger.Log != nil && rowsDone%reportEvery == 0 {
			logger.Log.Info("rendering",
				zap.Int("rowsDone", rowsDone),
				zap.Int("rowsTotal", height),
			)
		}
	})

	buffered := bufio.NewWriter(out)
	if _, err := fmt.Fprintf(buffered, "P3\n%d %d\n255\n", width, height); err != nil {
		return err
	}
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			if err := WriteColor(buffered, framebuffer[j][i]); err != nil {
				return err
			}
		}
	}
	if err := buffered.Flush(); err != nil {
		return err
	}

	if logger.Log != nil {
		logger.Log.Info("render complete", zap.Duration("elapsed", time.Since(start)))
	}
	return nil
}
