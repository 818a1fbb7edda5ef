package renderer

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is returned when a render is configured with unusable parameters
var ErrInvalidConfig = errors.New("invalid render config")

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int     // Image width in pixels
	AspectRatio     float64 // Width / height; height is derived
	SamplesPerPixel int     // Number of rays per pixel
	MaxDepth        int     // Maximum ray bounce depth
	TileCount       int     // Tiles per image axis
	NumWorkers      int     // Number of parallel workers (0 = use CPU count)
	Seed            int64   // Base seed; each tile draws from TileSeed(Seed, id)
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           400,
		AspectRatio:     16.0 / 9.0,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		TileCount:       8,
		NumWorkers:      0,
		Seed:            42,
	}
}

// Height returns the image height implied by Width and AspectRatio
func (c SamplingConfig) Height() int {
	return int(float64(c.Width) / c.AspectRatio)
}

// Validate checks the config before any rendering starts
func (c SamplingConfig) Validate() error {
	if !(c.AspectRatio > 0) || math.IsInf(c.AspectRatio, 0) {
		return fmt.Errorf("%w: aspect ratio %g must be positive", ErrInvalidConfig, c.AspectRatio)
	}
	// Jitter divides by width-1 and height-1
	if c.Width < 2 || c.Height() < 2 {
		return fmt.Errorf("%w: image %dx%d must be at least 2x2", ErrInvalidConfig, c.Width, c.Height())
	}
	if c.SamplesPerPixel < 1 {
		return fmt.Errorf("%w: samples per pixel %d must be at least 1", ErrInvalidConfig, c.SamplesPerPixel)
	}
	if c.MaxDepth < 1 {
		return fmt.Errorf("%w: max depth %d must be at least 1", ErrInvalidConfig, c.MaxDepth)
	}
	if c.TileCount < 1 {
		return fmt.Errorf("%w: tile count %d must be at least 1", ErrInvalidConfig, c.TileCount)
	}
	if c.NumWorkers < 0 {
		return fmt.Errorf("%w: worker count %d must not be negative", ErrInvalidConfig, c.NumWorkers)
	}
	return nil
}
