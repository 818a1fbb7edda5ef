package material

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/abinashpanda/ray-tracing/pkg/core"
)

// fixedSampler replays a fixed sequence of draws, cycling when exhausted
type fixedSampler struct {
	values []float64
	next   int
}

func (f *fixedSampler) Get1D() float64 {
	v := f.values[f.next%len(f.values)]
	f.next++
	return v
}

func (f *fixedSampler) Get2D() core.Vec2 {
	return core.NewVec2(f.Get1D(), f.Get1D())
}

func (f *fixedSampler) Get3D() core.Vec3 {
	return core.NewVec3(f.Get1D(), f.Get1D(), f.Get1D())
}

func TestMaterial_Validate(t *testing.T) {
	tests := []struct {
		name      string
		material  Material
		expectErr bool
	}{
		{"lambert", NewLambert(core.NewVec3(0.5, 0.5, 0.5)), false},
		{"metal", NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.3), false},
		{"glass", NewDielectric(1.5), false},
		{"negative fuzz literal", Material{Kind: Metal, Fuzz: -0.1}, true},
		{"infinite fuzz literal", Material{Kind: Metal, Fuzz: math.Inf(1)}, true},
		{"NaN fuzz literal", Material{Kind: Metal, Fuzz: math.NaN()}, true},
		{"NaN fuzz through constructor", NewMetal(core.NewVec3(0.8, 0.8, 0.8), math.NaN()), true},
		{"infinite fuzz through constructor is clamped", NewMetal(core.NewVec3(0.8, 0.8, 0.8), math.Inf(1)), false},
		{"infinite index", NewDielectric(math.Inf(1)), true},
		{"NaN index", NewDielectric(math.NaN()), true},
		{"index of one", NewDielectric(1.0), true},
		{"index below one", NewDielectric(0.5), true},
		{"NaN color", NewLambert(core.NewVec3(math.NaN(), 0, 0)), true},
		{"unknown kind", Material{Kind: Kind(42)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.material.Validate()
			if tt.expectErr {
				if !errors.Is(err, ErrInvalidMaterial) {
					t.Errorf("Expected ErrInvalidMaterial, got %v", err)
				}
			} else if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestNewMetal_FuzzClamp(t *testing.T) {
	tests := []struct {
		name         string
		inputFuzz    float64
		expectedFuzz float64
	}{
		{"Valid fuzz 0.0", 0.0, 0.0},
		{"Valid fuzz 0.5", 0.5, 0.5},
		{"Clamp above 1.0", 1.5, 1.0},
		{"Clamp below 0.0", -0.5, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), tt.inputFuzz)
			if metal.Fuzz != tt.expectedFuzz {
				t.Errorf("Expected fuzz %f, got %f", tt.expectedFuzz, metal.Fuzz)
			}
		})
	}
}

func TestMaterial_UnknownKindAbsorbs(t *testing.T) {
	m := Material{Kind: Kind(9)}
	hit := HitRecord{Normal: core.NewVec3(0, 0, 1)}
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	if _, ok := m.Scatter(ray, hit, core.NewSeededSampler(1)); ok {
		t.Error("Unknown material kinds should absorb")
	}
}

func TestHitRecord_SetFaceNormal(t *testing.T) {
	outward := core.NewVec3(0, 0, 1)

	var front HitRecord
	front.SetFaceNormal(core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1)), outward)
	if !front.FrontFace || !front.Normal.Equals(outward) {
		t.Errorf("Expected front face with outward normal, got %+v", front)
	}

	var back HitRecord
	back.SetFaceNormal(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)), outward)
	if back.FrontFace || !back.Normal.Equals(outward.Negate()) {
		t.Errorf("Expected back face with negated normal, got %+v", back)
	}
}

func TestLambert_AlwaysScatters(t *testing.T) {
	albedo := core.NewVec3(0.5, 0.7, 0.9)
	lambert := NewLambert(albedo)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	normal := core.NewVec3(0, 0, 1)
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: normal, FrontFace: true}
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	for i := 0; i < 1000; i++ {
		scatter, didScatter := lambert.Scatter(ray, hit, sampler)
		if !didScatter {
			t.Fatal("Lambert should always scatter")
		}
		if !scatter.Attenuation.Equals(albedo) {
			t.Fatalf("Attenuation should equal albedo: expected %v, got %v", albedo, scatter.Attenuation)
		}
		if !scatter.Scattered.Origin.Equals(hit.Point) {
			t.Fatalf("Scattered ray should start at hit point, got %v", scatter.Scattered.Origin)
		}
		// normal + unit vector never points below the surface
		if scatter.Scattered.Direction.Dot(normal) < -1e-12 {
			t.Fatalf("Scattered direction %v points below the surface", scatter.Scattered.Direction)
		}
	}
}

func TestLambert_DegenerateDirectionFallsBackToNormal(t *testing.T) {
	lambert := NewLambert(core.NewVec3(0.5, 0.5, 0.5))
	normal := core.NewVec3(0, 0, 1)
	hit := HitRecord{Normal: normal, FrontFace: true}
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	// Draws map to the point (0, 0, -0.5), whose unit vector cancels the normal
	sampler := &fixedSampler{values: []float64{0.5, 0.5, 0.25}}
	scatter, didScatter := lambert.Scatter(ray, hit, sampler)
	if !didScatter {
		t.Fatal("Lambert should always scatter")
	}
	if !scatter.Scattered.Direction.Equals(normal) {
		t.Errorf("Expected fallback to normal %v, got %v", normal, scatter.Scattered.Direction)
	}
}
