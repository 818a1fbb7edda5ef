// Package integrator estimates the radiance carried back along camera rays.
package integrator

import (
	"github.com/abinashpanda/ray-tracing/pkg/core"
	"github.com/abinashpanda/ray-tracing/pkg/material"
)

// World is anything rays can be intersected against. *scene.Scene satisfies it.
type World interface {
	Hit(ray core.Ray, tMin, tMax float64) (material.HitRecord, bool)
}

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the radiance arriving along ray
	RayColor(ray core.Ray, world World, sampler core.Sampler) core.Vec3
}

// Sky is the vertical gradient returned for rays that escape the scene
type Sky struct {
	Zenith  core.Vec3 // Color straight up
	Horizon core.Vec3 // Color at the horizon and below
}

// DefaultSky returns a light blue to white gradient
func DefaultSky() Sky {
	return Sky{
		Zenith:  core.NewVec3(0.5, 0.7, 1.0),
		Horizon: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// Color returns the sky radiance in the ray's direction
func (s Sky) Color(ray core.Ray) core.Vec3 {
	// Map the unit direction's y from [-1, 1] to [0, 1]
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return core.Lerp(s.Horizon, s.Zenith, t)
}
