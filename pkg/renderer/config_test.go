package renderer

import (
	"errors"
	"testing"
)

func TestSamplingConfig_Height(t *testing.T) {
	tests := []struct {
		width    int
		aspect   float64
		expected int
	}{
		{400, 16.0 / 9.0, 225},
		{200, 1.0, 200},
		{100, 3.0, 33},
	}

	for _, tt := range tests {
		config := SamplingConfig{Width: tt.width, AspectRatio: tt.aspect}
		if got := config.Height(); got != tt.expected {
			t.Errorf("Height(%d, %f) = %d, want %d", tt.width, tt.aspect, got, tt.expected)
		}
	}
}

func TestSamplingConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *SamplingConfig)
		valid  bool
	}{
		{"default", func(c *SamplingConfig) {}, true},
		{"auto workers", func(c *SamplingConfig) { c.NumWorkers = 0 }, true},
		{"width too small", func(c *SamplingConfig) { c.Width = 1 }, false},
		{"height too small", func(c *SamplingConfig) { c.Width = 10; c.AspectRatio = 10 }, false},
		{"zero aspect", func(c *SamplingConfig) { c.AspectRatio = 0 }, false},
		{"zero samples", func(c *SamplingConfig) { c.SamplesPerPixel = 0 }, false},
		{"zero depth", func(c *SamplingConfig) { c.MaxDepth = 0 }, false},
		{"zero tiles", func(c *SamplingConfig) { c.TileCount = 0 }, false},
		{"negative workers", func(c *SamplingConfig) { c.NumWorkers = -1 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultSamplingConfig()
			tt.modify(&config)

			err := config.Validate()
			if tt.valid && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}
