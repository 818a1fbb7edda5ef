package scene

import (
	"github.com/abinashpanda/ray-tracing/pkg/core"
	"github.com/abinashpanda/ray-tracing/pkg/geometry"
	"github.com/abinashpanda/ray-tracing/pkg/material"
)

// NewDefaultScene creates a demo scene: a large ground sphere with a diffuse,
// a glass and a metal sphere resting on it around (0, 0, -1)
func NewDefaultScene() *Scene {
	// Create materials
	ground := material.NewLambert(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambert(core.NewVec3(0.1, 0.2, 0.5))
	glass := material.NewDielectric(1.5)
	gold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)
	silver := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0)
	tintedGlass := material.NewTintedDielectric(core.NewVec3(0.9, 0.95, 1.0), 1.33)

	s := New()
	s.MustAdd(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, center),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, gold),
		geometry.NewSphere(core.NewVec3(-0.35, -0.35, -0.35), 0.15, silver),
		geometry.NewSphere(core.NewVec3(0.4, -0.3, -0.3), 0.2, tintedGlass),
	)

	return s
}
