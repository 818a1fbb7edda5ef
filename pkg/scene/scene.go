// Package scene holds the collection of geometry a render intersects against.
package scene

import (
	"fmt"

	"github.com/abinashpanda/ray-tracing/pkg/core"
	"github.com/abinashpanda/ray-tracing/pkg/geometry"
	"github.com/abinashpanda/ray-tracing/pkg/material"
)

// Scene is an ordered collection of geometry. It is mutated only through
// Add and Clear, and is safe for concurrent Hit queries once built.
type Scene struct {
	objects []geometry.Geometry
}

// New creates an empty scene
func New() *Scene {
	return &Scene{objects: make([]geometry.Geometry, 0)}
}

// Add validates an object and appends it to the scene
func (s *Scene) Add(object geometry.Geometry) error {
	if err := object.Validate(); err != nil {
		return fmt.Errorf("add object %d: %w", len(s.objects), err)
	}
	s.objects = append(s.objects, object)
	return nil
}

// MustAdd is like Add but panics on invalid geometry. Intended for hard-coded scenes.
func (s *Scene) MustAdd(objects ...geometry.Geometry) {
	for _, object := range objects {
		if err := s.Add(object); err != nil {
			panic(err)
		}
	}
}

// Clear removes every object
func (s *Scene) Clear() {
	s.objects = s.objects[:0]
}

// Len returns the number of objects in the scene
func (s *Scene) Len() int {
	return len(s.objects)
}

// Objects returns the scene's objects in insertion order. The slice must not be modified.
func (s *Scene) Objects() []geometry.Geometry {
	return s.objects
}

// Hit returns the closest intersection along the ray with t in [tMin, tMax].
// Each accepted hit narrows the search so later objects only win when strictly closer.
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	var closestHit material.HitRecord
	closestSoFar := tMax
	hitAnything := false

	for _, object := range s.objects {
		if hit, isHit := object.Hit(ray, tMin, closestSoFar); isHit && (!hitAnything || hit.T < closestSoFar) {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}

// BoundingBox returns the box enclosing every object, or false for an empty scene
func (s *Scene) BoundingBox() (core.AABB, bool) {
	if len(s.objects) == 0 {
		return core.AABB{}, false
	}

	box := s.objects[0].BoundingBox()
	for _, object := range s.objects[1:] {
		box = box.Union(object.BoundingBox())
	}
	return box, true
}
