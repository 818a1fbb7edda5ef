package renderer

import (
	"github.com/abinashpanda/ray-tracing/pkg/integrator"
)

// TileRenderer handles the actual rendering of individual tiles using an integrator.
// It holds no mutable state and is shared by every worker.
type TileRenderer struct {
	world      integrator.World
	camera     *Camera
	integrator integrator.Integrator
	width      int
	height     int
	samples    int
}

// NewTileRenderer creates a new tile renderer for an image of the given size
func NewTileRenderer(world integrator.World, camera *Camera, integratorInst integrator.Integrator, width, height, samplesPerPixel int) *TileRenderer {
	return &TileRenderer{
		world:      world,
		camera:     camera,
		integrator: integratorInst,
		width:      width,
		height:     height,
		samples:    samplesPerPixel,
	}
}

// RenderTile takes every sample for every pixel in the tile, storing the color sums in tile.Pixels
func (tr *TileRenderer) RenderTile(tile *Tile) RenderStats {
	stats := RenderStats{TotalPixels: tile.Bounds.Dx() * tile.Bounds.Dy()}

	for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
		// Image rows run top-down, camera t runs bottom-up
		j := tr.height - 1 - y
		for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
			tr.samplePixel(tile, x, y, j)
			stats.TotalSamples += tr.samples
		}
	}

	stats.finalize()
	return stats
}

// samplePixel accumulates jittered samples for image pixel (x, y) whose flipped row is j
func (tr *TileRenderer) samplePixel(tile *Tile, x, y, j int) {
	for sample := 0; sample < tr.samples; sample++ {
		jitter := tile.Sampler.Get2D()
		s := (float64(x) + jitter.X) / float64(tr.width-1)
		t := (float64(j) + jitter.Y) / float64(tr.height-1)

		ray := tr.camera.GetRay(s, t, tile.Sampler)
		tile.AddSample(x, y, tr.integrator.RayColor(ray, tr.world, tile.Sampler))
	}
}
