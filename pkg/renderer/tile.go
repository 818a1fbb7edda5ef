package renderer

import (
	"image"

	"github.com/abinashpanda/ray-tracing/pkg/core"
)

// Tile represents a rectangular region of the image to be rendered.
// A tile is written by exactly one worker, so its pixels need no locking.
type Tile struct {
	ID      int             // Unique tile identifier
	Bounds  image.Rectangle // Pixel bounds (x0,y0,x1,y1)
	Pixels  []core.Vec3     // Per-pixel color sums, row-major within Bounds
	Sampler core.Sampler    // Tile-specific sampler for deterministic results
}

// NewTile creates a new tile with the specified bounds and its own random stream
func NewTile(id int, bounds image.Rectangle, seed int64) *Tile {
	return &Tile{
		ID:      id,
		Bounds:  bounds,
		Pixels:  make([]core.Vec3, bounds.Dx()*bounds.Dy()),
		Sampler: core.NewSeededSampler(TileSeed(seed, id)),
	}
}

// TileSeed derives the random seed for tile id from the render's base seed.
// Nearby base seeds and tile IDs map to unrelated streams.
func TileSeed(seed int64, id int) int64 {
	// splitmix64 finalizer over the combined key
	x := uint64(seed)*0x9E3779B97F4A7C15 + uint64(id)
	x ^= x >> 30
	x *= 0xBF58476D1CE4E5B9
	x ^= x >> 27
	x *= 0x94D049BB133111EB
	x ^= x >> 31
	return int64(x)
}

// NewTileGrid splits the image into a tilesPerAxis x tilesPerAxis grid.
// The count is clamped per axis so no tile is empty.
func NewTileGrid(width, height, tilesPerAxis int, seed int64) []*Tile {
	tilesX := max(1, min(tilesPerAxis, width))
	tilesY := max(1, min(tilesPerAxis, height))

	tiles := make([]*Tile, 0, tilesX*tilesY)
	tileID := 0

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			// Even split; consecutive tiles share an edge, never a pixel
			x0 := tileX * width / tilesX
			y0 := tileY * height / tilesY
			x1 := (tileX + 1) * width / tilesX
			y1 := (tileY + 1) * height / tilesY

			tiles = append(tiles, NewTile(tileID, image.Rect(x0, y0, x1, y1), seed))
			tileID++
		}
	}

	return tiles
}

// index maps image coordinates inside the tile to a Pixels offset
func (t *Tile) index(x, y int) int {
	return (y-t.Bounds.Min.Y)*t.Bounds.Dx() + (x - t.Bounds.Min.X)
}

// AddSample accumulates a color sample for the pixel at image coordinates (x, y)
func (t *Tile) AddSample(x, y int, color core.Vec3) {
	i := t.index(x, y)
	t.Pixels[i] = t.Pixels[i].Add(color)
}

// ColorSum returns the accumulated color for the pixel at image coordinates (x, y)
func (t *Tile) ColorSum(x, y int) core.Vec3 {
	return t.Pixels[t.index(x, y)]
}
