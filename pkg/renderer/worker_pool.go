package renderer

import (
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ScanlineTask asks a worker to render one image row into the shared
// framebuffer. Rows never overlap, so workers write without locking.
type ScanlineTask struct {
	Row         int
	Framebuffer [][]core.Vec3
}

// WorkerPool renders independent scanlines on parallel workers. The
// scene graph is shared read-only state; each worker owns an RNG.
type WorkerPool struct {
	taskQueue  chan ScanlineTask
	numWorkers int
	wg         sync.WaitGroup

	camera     *Camera
	integrator *Integrator
	seed       int64
	completed  atomic.Int64
	onProgress func(rowsDone int)
}

// NewWorkerPool creates a pool with the given number of workers
// (0 = one per CPU)
func NewWorkerPool(camera *Camera, integrator *Integrator, numWorkers int, seed int64, onProgress func(rowsDone int)) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{
		taskQueue:  make(chan ScanlineTask, camera.ImageHeight()),
		numWorkers: numWorkers,
		camera:     camera,
		integrator: integrator,
		seed:       seed,
		onProgress: onProgress,
	}
}

// Start launches the workers
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run()
	}
}

// Submit queues a scanline task
func (wp *WorkerPool) Submit(task ScanlineTask) {
	wp.taskQueue <- task
}

// Wait closes the queue and blocks until all queued rows are rendered
func (wp *WorkerPool) Wait() {
	close(wp.taskQueue)
	wp.wg.Wait()
}

// run is the worker loop: one deterministically-seeded RNG per row, so
// a fixed seed renders identically at any worker count.
func (wp *WorkerPool) run() {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		random := rand.New(rand.NewSource(wp.seed*1_000_003 + int64(task.Row)))
		wp.renderRow(task.Row, task.Framebuffer[task.Row], random)

		done := wp.completed.Add(1)
		if wp.onProgress != nil {
			wp.onProgress(int(done))
		}
	}
}

// renderRow accumulates the stratified sample grid for every pixel of
// one row
func (wp *WorkerPool) renderRow(j int, row []core.Vec3, random *rand.Rand) {
	cam := wp.camera
	background := cam.Config.Background

	for i := 0; i < cam.ImageWidth(); i++ {
		pixelColor := core.Vec3{}
		for sj := 0; sj < cam.SqrtSpp(); sj++ {
			for si := 0; si < cam.SqrtSpp(); si++ {
				ray := cam.GetRay(i, j, si, sj, random)
				pixelColor = pixelColor.Add(
					wp.integrator.RayColor(ray, cam.Config.MaxDepth, background, random))
			}
		}
		row[i] = pixelColor.Multiply(cam.PixelSamplesScale())
	}
}
