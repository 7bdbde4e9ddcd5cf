package renderer

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// CameraConfig holds the user-facing camera parameters
type CameraConfig struct {
	AspectRatio     float64   // Width over height
	ImageWidth      int       // Rendered image width in pixels
	SamplesPerPixel int       // Requested samples per pixel (rounded down to a square)
	MaxDepth        int       // Maximum bounces per path
	Background      core.Vec3 // Radiance for rays that escape the scene

	VFov     float64   // Vertical field of view in degrees
	LookFrom core.Vec3 // Camera position
	LookAt   core.Vec3 // Point the camera looks at
	VUp      core.Vec3 // Camera-relative up direction

	DefocusAngle float64 // Apex angle of the defocus cone, degrees; <= 0 disables
	FocusDist    float64 // Distance to the plane of perfect focus
}

// Camera generates primary rays. All derived fields are precomputed at
// construction and immutable during rendering.
type Camera struct {
	Config CameraConfig

	imageHeight       int
	sqrtSpp           int
	recipSqrtSpp      float64
	pixelSamplesScale float64

	center        core.Vec3
	pixel00Loc    core.Vec3
	pixelDeltaU   core.Vec3
	pixelDeltaV   core.Vec3
	u, v, w       core.Vec3 // camera basis
	defocusDiskU  core.Vec3
	defocusDiskV  core.Vec3
}

// NewCamera creates a camera, precomputing the viewport geometry
func NewCamera(config CameraConfig) *Camera {
	c := &Camera{Config: config}

	c.imageHeight = int(math.Round(float64(config.ImageWidth) / config.AspectRatio))
	if c.imageHeight < 1 {
		c.imageHeight = 1
	}

	c.sqrtSpp = int(math.Sqrt(float64(config.SamplesPerPixel)))
	if c.sqrtSpp < 1 {
		c.sqrtSpp = 1
	}
	c.recipSqrtSpp = 1.0 / float64(c.sqrtSpp)
	c.pixelSamplesScale = 1.0 / float64(c.sqrtSpp*c.sqrtSpp)

	c.center = config.LookFrom

	// Viewport dimensions from the vertical field of view at the focus
	// distance.
	theta := config.VFov * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * config.FocusDist
	viewportWidth := viewportHeight * float64(config.ImageWidth) / float64(c.imageHeight)

	c.w = config.LookFrom.Subtract(config.LookAt).Normalize()
	c.u = config.VUp.Cross(c.w).Normalize()
	c.v = c.w.Cross(c.u)

	viewportU := c.u.Multiply(viewportWidth)
	viewportV := c.v.Negate().Multiply(viewportHeight)

	c.pixelDeltaU = viewportU.Divide(float64(config.ImageWidth))
	c.pixelDeltaV = viewportV.Divide(float64(c.imageHeight))

	viewportUpperLeft := c.center.
		Subtract(c.w.Multiply(config.FocusDist)).
		Subtract(viewportU.Divide(2)).
		Subtract(viewportV.Divide(2))
	c.pixel00Loc = viewportUpperLeft.Add(c.pixelDeltaU.Add(c.pixelDeltaV).Multiply(0.5))

	defocusRadius := config.FocusDist * math.Tan(config.DefocusAngle/2*math.Pi/180)
	c.defocusDiskU = c.u.Multiply(defocusRadius)
	c.defocusDiskV = c.v.Multiply(defocusRadius)

	return c
}

// ImageWidth returns the image width in pixels
func (c *Camera) ImageWidth() int {
	return c.Config.ImageWidth
}

// ImageHeight returns the derived image height in pixels
func (c *Camera) ImageHeight() int {
	return c.imageHeight
}

// SqrtSpp returns the stratification grid size; the effective sample
// count per pixel is its square
func (c *Camera) SqrtSpp() int {
	return c.sqrtSpp
}

// PixelSamplesScale returns 1 over the effective sample count
func (c *Camera) PixelSamplesScale() float64 {
	return c.pixelSamplesScale
}

// GetRay builds a ray for pixel (i, j), jittered within stratum
// (si, sj) of the pixel's sub-grid, with a defocus-disk origin and a
// random shutter time in [0, 1)
func (c *Camera) GetRay(i, j, si, sj int, random *rand.Rand) core.Ray {
	offset := c.sampleSquareStratified(si, sj, random)
	pixelSample := c.pixel00Loc.
		Add(c.pixelDeltaU.Multiply(float64(i) + offset.X)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offset.Y))

	origin := c.center
	if c.Config.DefocusAngle > 0 {
		origin = c.defocusDiskSample(random)
	}

	return core.NewRayAt(origin, pixelSample.Subtract(origin), random.Float64())
}

// sampleSquareStratified returns a jittered offset inside stratum
// (si, sj), mapped to the [-0.5, 0.5] pixel square
func (c *Camera) sampleSquareStratified(si, sj int, random *rand.Rand) core.Vec3 {
	px := (float64(si)+random.Float64())*c.recipSqrtSpp - 0.5
	py := (float64(sj)+random.Float64())*c.recipSqrtSpp - 0.5
	return core.NewVec3(px, py, 0)
}

// defocusDiskSample returns a random origin on the thin-lens disk
func (c *Camera) defocusDiskSample(random *rand.Rand) core.Vec3 {
	p := core.RandomInUnitDisk(random)
	return c.center.
		Add(c.defocusDiskU.Multiply(p.X)).
		Add(c.defocusDiskV.Multiply(p.Y))
}
