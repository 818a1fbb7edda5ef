package material

import (
	"math"
	"testing"

	"github.com/abinashpanda/ray-tracing/pkg/core"
)

func TestDielectric_NormalIncidence(t *testing.T) {
	glass := NewDielectric(1.5)
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))
	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 0, 1),
		T:         1.0,
		FrontFace: true,
	}

	tests := []struct {
		name     string
		draw     float64
		expected core.Vec3
	}{
		// Reflectance at normal incidence is 0.04 for glass
		{"refracts above reflectance", 0.99, core.NewVec3(0, 0, -1)},
		{"reflects below reflectance", 0.01, core.NewVec3(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, scattered := glass.Scatter(ray, hit, &fixedSampler{values: []float64{tt.draw}})
			if !scattered {
				t.Fatal("Dielectric should always scatter")
			}
			if result.Scattered.Direction.Subtract(tt.expected).Length() > 1e-12 {
				t.Errorf("Expected direction %v, got %v", tt.expected, result.Scattered.Direction)
			}
			if !result.Attenuation.Equals(core.Identity()) {
				t.Errorf("Clear glass should not attenuate, got %v", result.Attenuation)
			}
		})
	}
}

func TestDielectric_SnellsLaw(t *testing.T) {
	glass := NewDielectric(1.5)
	incoming := core.NewVec3(1, -1, 0).Normalize() // 45 degrees
	ray := core.NewRay(core.NewVec3(-1, 1, 0), incoming)
	hit := HitRecord{Normal: core.NewVec3(0, 1, 0), FrontFace: true}

	result, _ := glass.Scatter(ray, hit, &fixedSampler{values: []float64{0.999}})
	out := result.Scattered.Direction.Normalize()

	// sin(theta_t) = sin(45°) / 1.5
	expectedSin := math.Sin(math.Pi/4) / 1.5
	if math.Abs(out.X-expectedSin) > 1e-9 {
		t.Errorf("Expected refracted sin %f, got %f", expectedSin, out.X)
	}
	if out.Y >= 0 {
		t.Errorf("Refracted ray should continue into the surface, got %v", out)
	}
}

func TestDielectric_TotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)

	// Shallow ray exiting glass into air
	rayDirection := core.NewVec3(1, -0.1, 0).Normalize()
	ray := core.NewRay(core.NewVec3(0, 0, 0), rayDirection)
	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		T:         1.0,
		FrontFace: false,
	}

	cosTheta := -rayDirection.Dot(hit.Normal)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)
	if 1.5*sinTheta <= 1.0 {
		t.Fatalf("Test setup error: this angle should cause total internal reflection")
	}

	// Even a draw that would normally refract must reflect
	for _, draw := range []float64{0.0, 0.5, 0.999} {
		result, scattered := glass.Scatter(ray, hit, &fixedSampler{values: []float64{draw}})
		if !scattered {
			t.Fatal("Dielectric should always scatter")
		}
		if result.Scattered.Direction.Y <= 0 {
			t.Errorf("Expected total internal reflection (ray going up), got %v", result.Scattered.Direction)
		}
		if math.Abs(result.Scattered.Direction.X-rayDirection.X) > 1e-10 {
			t.Errorf("Expected X component %.6f preserved, got %.6f", rayDirection.X, result.Scattered.Direction.X)
		}
	}
}

func TestDielectric_TintedAttenuation(t *testing.T) {
	tint := core.NewVec3(0.9, 0.5, 0.5)
	glass := NewTintedDielectric(tint, 1.5)
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))
	hit := HitRecord{Normal: core.NewVec3(0, 0, 1), FrontFace: true}

	result, scattered := glass.Scatter(ray, hit, core.NewSeededSampler(42))
	if !scattered {
		t.Fatal("Dielectric should always scatter")
	}
	if !result.Attenuation.Equals(tint) {
		t.Errorf("Expected attenuation %v, got %v", tint, result.Attenuation)
	}
}

func TestReflectance(t *testing.T) {
	for _, ratio := range []float64{1.0 / 1.5, 1.5, 1.0 / 2.4} {
		r0 := (1 - ratio) / (1 + ratio)
		r0 = r0 * r0

		// Normal incidence is exactly r0
		if got := Reflectance(1.0, ratio); got != r0 {
			t.Errorf("Reflectance(1, %f) = %f, expected r0 = %f", ratio, got, r0)
		}

		// Non-decreasing toward grazing angles
		prev := Reflectance(1.0, ratio)
		for cos := 0.99; cos >= 0; cos -= 0.01 {
			r := Reflectance(cos, ratio)
			if r < prev {
				t.Fatalf("Reflectance decreased at cos=%f: %f < %f", cos, r, prev)
			}
			prev = r
		}

		if r90 := Reflectance(0.0, ratio); math.Abs(r90-1.0) > 1e-12 {
			t.Errorf("Grazing reflectance = %f, expected 1", r90)
		}
	}
}
