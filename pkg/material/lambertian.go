package material

import (
	"github.com/abinashpanda/ray-tracing/pkg/core"
)

// scatterLambert bounces the ray toward normal + random unit vector, which
// approximates a cosine-weighted hemisphere distribution
func (m Material) scatterLambert(hit HitRecord, sampler core.Sampler) ScatterResult {
	scatterDirection := hit.Normal.Add(core.RandomUnitVector(sampler))

	// The random vector can cancel the normal almost exactly
	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, scatterDirection),
		Attenuation: m.Color,
	}
}
