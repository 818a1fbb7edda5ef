// Package renderer turns a world and a camera into an image using tiled,
// parallel path tracing.
package renderer

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"github.com/abinashpanda/ray-tracing/pkg/core"
	"github.com/abinashpanda/ray-tracing/pkg/integrator"
)

// Raytracer handles the rendering process
type Raytracer struct {
	world      integrator.World
	camera     *Camera
	config     SamplingConfig
	integrator integrator.Integrator
	logger     core.Logger
}

// NewRaytracer validates the configuration and creates a raytracer using a
// path tracing integrator lit by the default sky
func NewRaytracer(world integrator.World, camera *Camera, config SamplingConfig, logger core.Logger) (*Raytracer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if world == nil {
		return nil, fmt.Errorf("%w: world is nil", ErrInvalidConfig)
	}
	if camera == nil {
		return nil, fmt.Errorf("%w: camera is nil", ErrInvalidCamera)
	}
	if logger == nil {
		logger = NopLogger{}
	}

	return &Raytracer{
		world:      world,
		camera:     camera,
		config:     config,
		integrator: integrator.NewPathTracingIntegrator(config.MaxDepth, integrator.DefaultSky()),
		logger:     logger,
	}, nil
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(integratorInst integrator.Integrator) {
	rt.integrator = integratorInst
}

// Config returns the validated sampling configuration
func (rt *Raytracer) Config() SamplingConfig {
	return rt.config
}

// Render renders the full image, blocking until every tile is complete
func (rt *Raytracer) Render() (*image.RGBA, RenderStats, error) {
	startTime := time.Now()
	width, height := rt.config.Width, rt.config.Height()

	tiles := NewTileGrid(width, height, rt.config.TileCount, rt.config.Seed)
	tileRenderer := NewTileRenderer(rt.world, rt.camera, rt.integrator, width, height, rt.config.SamplesPerPixel)
	workerPool := NewWorkerPool(tileRenderer, rt.config.NumWorkers, len(tiles))

	rt.logger.Printf("Rendering %dx%d with %d samples/pixel, max depth %d (%d tiles, %d workers)...\n",
		width, height, rt.config.SamplesPerPixel, rt.config.MaxDepth, len(tiles), workerPool.GetNumWorkers())

	workerPool.Start()

	// Submit all tiles as tasks
	for taskID, tile := range tiles {
		workerPool.SubmitTask(TileTask{Tile: tile, TaskID: taskID})
	}

	// Wait for all tiles to complete
	stats := RenderStats{Workers: workerPool.GetNumWorkers()}
	var renderErr error
	for done := 1; done <= len(tiles); done++ {
		result, ok := workerPool.GetResult()
		if !ok {
			renderErr = fmt.Errorf("worker pool closed unexpectedly")
			break
		}
		if result.Error != nil {
			if renderErr == nil {
				renderErr = result.Error
			}
			rt.logger.Printf("Tile %d/%d failed (worker %d): %v\n", done, len(tiles), result.WorkerID, result.Error)
			continue
		}
		stats.merge(result.Stats)
		rt.logger.Printf("Tile %d/%d done (worker %d, %.0f%%)\n",
			done, len(tiles), result.WorkerID, 100*float64(done)/float64(len(tiles)))
	}
	workerPool.Stop()

	if renderErr != nil {
		return nil, RenderStats{}, renderErr
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for _, tile := range tiles {
		for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
			for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
				SetPixel(img, x, y, tile.ColorSum(x, y), rt.config.SamplesPerPixel)
			}
		}
	}

	stats.finalize()
	stats.Duration = time.Since(startTime)

	rt.logger.Printf("Render completed in %v (%d samples, %.1f samples/pixel)\n",
		stats.Duration, stats.TotalSamples, stats.AverageSamples)

	return img, stats, nil
}

// ToRGBA converts an accumulated color sum to an 8-bit pixel: average over
// samples, gamma 2 correction, NaN to black, clamp to [0, 0.999]
func ToRGBA(colorSum core.Vec3, samples int) color.RGBA {
	scale := 1.0 / float64(samples)
	return color.RGBA{
		R: toByte(colorSum.X * scale),
		G: toByte(colorSum.Y * scale),
		B: toByte(colorSum.Z * scale),
		A: 255,
	}
}

// SetPixel writes the tone mapped color sum to img at (x, y)
func SetPixel(img *image.RGBA, x, y int, colorSum core.Vec3, samples int) {
	img.SetRGBA(x, y, ToRGBA(colorSum, samples))
}

func toByte(c float64) uint8 {
	c = math.Sqrt(c)
	if math.IsNaN(c) {
		c = 0
	}
	c = math.Max(0, math.Min(0.999, c))
	return uint8(255.99 * c)
}
