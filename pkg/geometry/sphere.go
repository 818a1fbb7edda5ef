package geometry

import (
	"math"

	"github.com/abinashpanda/ray-tracing/pkg/core"
	"github.com/abinashpanda/ray-tracing/pkg/material"
)

// hitSphere tests if a ray intersects with the sphere
func (g Geometry) hitSphere(ray core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(g.Center)

	// Quadratic equation coefficients: at² + 2*halfB*t + c = 0
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - g.Radius*g.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return material.HitRecord{}, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return material.HitRecord{}, false
		}
	}

	hit := material.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: g.Material,
	}

	// Calculate outward normal (from center to hit point)
	outwardNormal := hit.Point.Subtract(g.Center).Divide(g.Radius)
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}

func (g Geometry) sphereBoundingBox() core.AABB {
	radius := core.NewVec3(g.Radius, g.Radius, g.Radius)
	return core.NewAABB(
		g.Center.Subtract(radius),
		g.Center.Add(radius),
	)
}
