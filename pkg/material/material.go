// Package material implements the surface scattering models attached to geometry.
package material

import (
	"errors"
	"fmt"
	"math"

	"github.com/abinashpanda/ray-tracing/pkg/core"
)

// ErrInvalidMaterial is returned by Validate for out-of-range material parameters
var ErrInvalidMaterial = errors.New("invalid material")

// Kind identifies which scattering model a Material uses
type Kind uint8

const (
	Lambert    Kind = iota // Diffuse reflectance
	Metal                  // Specular reflectance with roughness
	Dielectric             // Transparent refractive surface
)

func (k Kind) String() string {
	switch k {
	case Lambert:
		return "lambert"
	case Metal:
		return "metal"
	case Dielectric:
		return "dielectric"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Material is a closed set of scattering models. Only the fields
// relevant to Kind are read.
type Material struct {
	Kind            Kind
	Color           core.Vec3 // Albedo for every kind, tint for dielectrics
	Fuzz            float64   // Metal only: 0.0 = perfect mirror, 1.0 = very fuzzy
	RefractionIndex float64   // Dielectric only: e.g. 1.5 for glass
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// NewLambert creates a perfectly diffuse material
func NewLambert(color core.Vec3) Material {
	return Material{Kind: Lambert, Color: color}
}

// NewMetal creates a metal material, clamping fuzz to [0, 1].
// A NaN fuzz is kept as is and rejected by Validate.
func NewMetal(color core.Vec3, fuzz float64) Material {
	return Material{Kind: Metal, Color: color, Fuzz: max(0, min(1, fuzz))}
}

// NewDielectric creates a clear dielectric that does not tint transmitted light
func NewDielectric(refractionIndex float64) Material {
	return NewTintedDielectric(core.Identity(), refractionIndex)
}

// NewTintedDielectric creates a dielectric that attenuates by color on every interaction
func NewTintedDielectric(color core.Vec3, refractionIndex float64) Material {
	return Material{Kind: Dielectric, Color: color, RefractionIndex: refractionIndex}
}

// Validate reports parameters that would make scattering produce non-physical results
func (m Material) Validate() error {
	if !m.Color.IsFinite() {
		return fmt.Errorf("%w: %s color %v is not finite", ErrInvalidMaterial, m.Kind, m.Color)
	}

	switch m.Kind {
	case Lambert:
		return nil
	case Metal:
		if !(m.Fuzz >= 0) || math.IsInf(m.Fuzz, 0) {
			return fmt.Errorf("%w: metal fuzz %g must be finite and not negative", ErrInvalidMaterial, m.Fuzz)
		}
		return nil
	case Dielectric:
		if !(m.RefractionIndex > 1) || math.IsInf(m.RefractionIndex, 0) {
			return fmt.Errorf("%w: refraction index %g must be finite and greater than 1", ErrInvalidMaterial, m.RefractionIndex)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown %s", ErrInvalidMaterial, m.Kind)
	}
}

// Scatter proposes an outgoing ray and attenuation for a ray hitting this material.
// It returns false when the ray is absorbed.
func (m Material) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	switch m.Kind {
	case Lambert:
		return m.scatterLambert(hit, sampler), true
	case Metal:
		return m.scatterMetal(rayIn, hit, sampler)
	case Dielectric:
		return m.scatterDielectric(rayIn, hit, sampler), true
	default:
		return ScatterResult{}, false
	}
}
