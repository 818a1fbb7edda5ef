// Package geometry holds the intersectable primitives of a scene.
package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/abinashpanda/ray-tracing/pkg/core"
	"github.com/abinashpanda/ray-tracing/pkg/material"
)

// ErrInvalidRadius is returned for spheres with a zero, negative or non-finite radius
var ErrInvalidRadius = errors.New("sphere radius must be positive and finite")

// Kind identifies the primitive stored in a Geometry
type Kind uint8

const (
	SphereKind Kind = iota
)

func (k Kind) String() string {
	switch k {
	case SphereKind:
		return "sphere"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Geometry is a closed set of primitives, each owning exactly one material.
// New primitives extend Kind and the switches below.
type Geometry struct {
	Kind     Kind
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) Geometry {
	return Geometry{
		Kind:     SphereKind,
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Validate rejects degenerate primitives before they can produce NaNs during rendering
func (g Geometry) Validate() error {
	switch g.Kind {
	case SphereKind:
		if !(g.Radius > 0) || math.IsInf(g.Radius, 0) {
			return fmt.Errorf("%w: got %g", ErrInvalidRadius, g.Radius)
		}
		if !g.Center.IsFinite() {
			return fmt.Errorf("sphere center %v is not finite", g.Center)
		}
	default:
		return fmt.Errorf("unknown geometry %s", g.Kind)
	}

	if err := g.Material.Validate(); err != nil {
		return fmt.Errorf("%s material: %w", g.Kind, err)
	}
	return nil
}

// Hit reports the nearest intersection with t in [tMin, tMax]
func (g Geometry) Hit(ray core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	switch g.Kind {
	case SphereKind:
		return g.hitSphere(ray, tMin, tMax)
	default:
		return material.HitRecord{}, false
	}
}

// BoundingBox returns the axis-aligned bounding box for this primitive
func (g Geometry) BoundingBox() core.AABB {
	switch g.Kind {
	case SphereKind:
		return g.sphereBoundingBox()
	default:
		return core.AABB{}
	}
}
