package renderer

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// Ray t floor: suppresses self-intersection at the launch point.
const shadowAcne = 0.001

// Integrator estimates radiance along camera rays by recursive path
// tracing, importance-sampling scatter directions. When a light
// aggregate is supplied, diffuse bounces sample a 50/50 mixture of the
// light directions and the material's own density.
type Integrator struct {
	world  geometry.Hittable
	lights geometry.Light // may be nil
}

// NewIntegrator creates an integrator over a world and an optional
// light aggregate
func NewIntegrator(world geometry.Hittable, lights geometry.Light) *Integrator {
	return &Integrator{world: world, lights: lights}
}

// RayColor returns the radiance arriving along a ray
func (in *Integrator) RayColor(ray core.Ray, depth int, background core.Vec3, random *rand.Rand) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	rec, ok := in.world.Hit(ray, core.NewInterval(shadowAcne, math.Inf(1)), random)
	if !ok {
		return background
	}

	emitted := rec.Material.Emitted(ray, *rec)

	scatter, ok := rec.Material.Scatter(ray, *rec, random)
	if !ok {
		return emitted
	}

	// Delta materials carry an explicit next ray; no density to weight.
	if scatter.IsSpecular() {
		return emitted.Add(scatter.Attenuation.MultiplyVec(
			in.RayColor(scatter.Specular, depth-1, background, random)))
	}

	pdf := scatter.Pdf
	if in.lights != nil {
		lightPdf := geometry.NewHittablePdf(in.lights, rec.Point, random)
		pdf = core.NewMixturePdf(lightPdf, scatter.Pdf)
	}

	direction := pdf.Generate(random)
	scattered := core.NewRayAt(rec.Point, direction, ray.Time)

	pdfValue := pdf.Value(direction)
	if pdfValue <= 0 {
		return emitted
	}

	scatteringPdf := rec.Material.ScatteringPDF(ray, *rec, scattered)

	sampleColor := in.RayColor(scattered, depth-1, background, random)
	scatteredColor := scatter.Attenuation.
		MultiplyVec(sampleColor).
		Multiply(scatteringPdf / pdfValue)

	return emitted.Add(scatteredColor)
}
