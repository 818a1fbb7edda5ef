package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/bmp"
	"golang.org/x/image/colornames"
	"golang.org/x/image/tiff"

	"github.com/abinashpanda/ray-tracing/pkg/core"
	"github.com/abinashpanda/ray-tracing/pkg/integrator"
	"github.com/abinashpanda/ray-tracing/pkg/renderer"
	"github.com/abinashpanda/ray-tracing/pkg/scene"
)

func main() {
	defaults := renderer.DefaultSamplingConfig()
	cameraDefaults := renderer.DefaultCameraConfig()

	// Parse command line flags
	width := flag.Int("width", defaults.Width, "Image width in pixels")
	aspect := flag.Float64("aspect", defaults.AspectRatio, "Aspect ratio (width/height)")
	samples := flag.Int("spp", defaults.SamplesPerPixel, "Samples per pixel")
	depth := flag.Int("depth", defaults.MaxDepth, "Maximum ray bounce depth")
	tiles := flag.Int("tiles", defaults.TileCount, "Tiles per image axis")
	workers := flag.Int("workers", defaults.NumWorkers, "Number of parallel workers (0 = CPU count)")
	seed := flag.Int64("seed", defaults.Seed, "Random seed")
	aperture := flag.Float64("aperture", cameraDefaults.Aperture, "Lens aperture diameter (0 = pinhole)")
	vfov := flag.Float64("vfov", cameraDefaults.VFov, "Vertical field of view in degrees")
	zenith := flag.String("zenith", "", "Sky color straight up, as a CSS color name (default light blue)")
	horizon := flag.String("horizon", "", "Sky color at the horizon, as a CSS color name (default white)")
	format := flag.String("format", "png", "Output format: 'png', 'bmp' or 'tiff'")
	out := flag.String("out", "", "Output file (default output/render_<timestamp>.<format>)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Ray Tracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Renders the default sphere scene.")
		fmt.Println("Output will be saved to output/render_<timestamp>.<format> unless -out is given")
		return
	}

	encode, err := encoderFor(*format)
	if err != nil {
		log.Fatal(err)
	}
	sky, err := parseSky(*zenith, *horizon)
	if err != nil {
		log.Fatal(err)
	}

	config := renderer.SamplingConfig{
		Width:           *width,
		AspectRatio:     *aspect,
		SamplesPerPixel: *samples,
		MaxDepth:        *depth,
		TileCount:       *tiles,
		NumWorkers:      *workers,
		Seed:            *seed,
	}

	cameraConfig := cameraDefaults
	cameraConfig.AspectRatio = *aspect
	cameraConfig.Aperture = *aperture
	cameraConfig.VFov = *vfov

	fmt.Println("Starting Ray Tracer...")

	camera, err := renderer.NewCamera(cameraConfig)
	if err != nil {
		log.Fatalf("Error creating camera: %v", err)
	}

	logger := renderer.NewDefaultLogger()
	world := scene.NewDefaultScene()
	logSceneBounds(logger, world, camera)

	raytracer, err := renderer.NewRaytracer(world, camera, config, logger)
	if err != nil {
		log.Fatalf("Error creating raytracer: %v", err)
	}
	raytracer.SetIntegrator(integrator.NewPathTracingIntegrator(config.MaxDepth, sky))

	img, stats, err := raytracer.Render()
	if err != nil {
		log.Fatalf("Error rendering: %v", err)
	}

	rendered := raytracer.Config()
	fmt.Printf("Image %dx%d, samples per pixel: %.1f across %d tiles on %d workers\n",
		rendered.Width, rendered.Height(), stats.AverageSamples, stats.Tiles, stats.Workers)
	fmt.Printf("Average luminance: %.3f\n", renderer.CalculateAverageLuminance(img))

	filename := *out
	if filename == "" {
		filename = defaultOutputPath(*format, time.Now())
	}

	if err := saveImage(filename, img, encode); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Render saved as %s\n", filename)
}

// logSceneBounds reports the scene's extent and warns when the camera looks away from it
func logSceneBounds(logger core.Logger, world *scene.Scene, camera *renderer.Camera) {
	box, ok := world.BoundingBox()
	if !ok {
		logger.Printf("Scene is empty; the image will show only the sky\n")
		return
	}

	logger.Printf("Scene: %d objects, bounds %v..%v (center %v, size %v)\n",
		world.Len(), box.Min, box.Max, box.Center(), box.Size())

	view := core.NewRay(camera.Origin(), camera.Forward())
	if !box.Hit(view, 0, math.Inf(1)) {
		logger.Printf("Warning: the camera's view direction misses the scene bounds\n")
	}
}

// encodeFunc writes an image in a specific file format
type encodeFunc func(w io.Writer, img image.Image) error

// encoderFor returns the image encoder for an output format name
func encoderFor(format string) (encodeFunc, error) {
	switch strings.ToLower(format) {
	case "png":
		return png.Encode, nil
	case "bmp":
		return bmp.Encode, nil
	case "tiff", "tif":
		return func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
		}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q: want png, bmp or tiff", format)
	}
}

// parseSky builds the sky gradient from CSS color names. Empty names keep the default colors.
func parseSky(zenith, horizon string) (integrator.Sky, error) {
	sky := integrator.DefaultSky()

	if zenith != "" {
		c, err := parseColorName(zenith)
		if err != nil {
			return integrator.Sky{}, fmt.Errorf("zenith: %w", err)
		}
		sky.Zenith = c
	}
	if horizon != "" {
		c, err := parseColorName(horizon)
		if err != nil {
			return integrator.Sky{}, fmt.Errorf("horizon: %w", err)
		}
		sky.Horizon = c
	}

	return sky, nil
}

// parseColorName looks up an SVG 1.1 / CSS color name such as "skyblue"
func parseColorName(name string) (core.Vec3, error) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return core.Vec3{}, fmt.Errorf("unknown color name %q", name)
	}
	return core.FromColor(c), nil
}

// defaultOutputPath returns output/render_<timestamp>.<ext>
func defaultOutputPath(format string, now time.Time) string {
	ext := strings.ToLower(format)
	if ext == "tif" {
		ext = "tiff"
	}
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", fmt.Sprintf("render_%s.%s", timestamp, ext))
}

// saveImage creates any missing directories and writes img to filename
func saveImage(filename string, img image.Image, encode encodeFunc) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}

	if err := encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("encoding %s: %w", filename, err)
	}
	return file.Close()
}
