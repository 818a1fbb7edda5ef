package integrator

import (
	"math"

	"github.com/abinashpanda/ray-tracing/pkg/core"
)

// ShadowAcneEpsilon is the minimum hit distance for every bounce. It keeps a
// scattered ray from re-hitting the surface it just left.
const ShadowAcneEpsilon = 0.001

// PathTracingIntegrator implements unidirectional path tracing against a sky-lit world
type PathTracingIntegrator struct {
	maxDepth int
	sky      Sky
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(maxDepth int, sky Sky) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		maxDepth: maxDepth,
		sky:      sky,
	}
}

// RayColor computes the color for a single ray using the configured bounce limit
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world World, sampler core.Sampler) core.Vec3 {
	return pt.RayColorDepth(ray, world, sampler, pt.maxDepth)
}

// RayColorDepth computes the color for a ray allowed at most depth bounces.
//
// A path still bouncing when depth runs out contributes black. This truncation
// biases long paths darker and stands in for Russian roulette termination.
func (pt *PathTracingIntegrator) RayColorDepth(ray core.Ray, world World, sampler core.Sampler, depth int) core.Vec3 {
	throughput := core.Identity()

	for ; depth > 0; depth-- {
		hit, isHit := world.Hit(ray, ShadowAcneEpsilon, math.Inf(1))
		if !isHit {
			return throughput.MultiplyVec(pt.sky.Color(ray))
		}

		scatter, didScatter := hit.Material.Scatter(ray, hit, sampler)
		if !didScatter {
			// Material absorbed the ray
			return core.Vec3{}
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}

	// If we've exceeded the ray bounce limit, no more light is gathered
	return core.Vec3{}
}
