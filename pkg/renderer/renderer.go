package renderer

import (
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/ivanstepanovftw/go-raytrace/pkg/core"
	"github.com/ivanstepanovftw/go-raytrace/pkg/scene"
)

// Config contains rendering configuration
type Config struct {
	Width   int
	Height  int
	FOV     float64 // vertical field of view in radians
	Workers int     // number of render workers, 0 = one per CPU
}

// DefaultConfig returns the reference render settings: 1024x768 at a 60
// degree field of view
func DefaultConfig() Config {
	return Config{
		Width:  1024,
		Height: 768,
		FOV:    math.Pi / 3,
	}
}

// Renderer renders a scene into a flat, row-major, interleaved RGB byte
// buffer
type Renderer struct {
	raytracer *Raytracer
	camera    *Camera
	config    Config
}

// NewRenderer creates a renderer for the given scene and configuration
func NewRenderer(s *scene.Scene, config Config) *Renderer {
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	return &Renderer{
		raytracer: NewRaytracer(s),
		camera:    NewCamera(config.Width, config.Height, config.FOV),
		config:    config,
	}
}

// Render traces every pixel and returns the finished framebuffer of
// width*height*3 bytes. Image rows are partitioned into contiguous
// bands, one goroutine per band; bands are disjoint, so the workers
// share the buffer without synchronization and only join at the end.
func (r *Renderer) Render() ([]byte, RenderStats) {
	start := time.Now()
	width, height := r.config.Width, r.config.Height
	pixels := make([]byte, width*height*3)

	bands := rowBands(height, r.config.Workers)

	var wg sync.WaitGroup
	for _, b := range bands {
		wg.Add(1)
		go func(b band) {
			defer wg.Done()
			r.renderBand(pixels, b)
		}(b)
	}
	wg.Wait()

	return pixels, RenderStats{
		Width:   width,
		Height:  height,
		Pixels:  width * height,
		Workers: len(bands),
		Elapsed: time.Since(start),
	}
}

// renderBand renders rows [b.start, b.end) into the shared buffer
func (r *Renderer) renderBand(pixels []byte, b band) {
	for j := b.start; j < b.end; j++ {
		for i := 0; i < r.config.Width; i++ {
			ray := r.camera.Ray(i, j)
			color := r.raytracer.CastRay(ray.Origin, ray.Direction, 0)
			writePixel(pixels[(j*r.config.Width+i)*3:], color)
		}
	}
}

// band is a contiguous range of image rows owned by one worker
type band struct {
	start, end int
}

// rowBands splits height rows into one contiguous band per worker. The
// last band absorbs the integer-division remainder so no trailing rows
// are dropped.
func rowBands(height, workers int) []band {
	if workers > height {
		workers = height
	}
	size := height / workers

	bands := make([]band, workers)
	for w := range bands {
		bands[w] = band{start: w * size, end: (w + 1) * size}
	}
	bands[workers-1].end = height
	return bands
}

// writePixel tone-maps a linear color and stores it as three bytes.
// Colors brighter than displayable white are scaled down uniformly so
// the hue survives instead of clipping channel by channel.
func writePixel(dst []byte, color core.Vec3) {
	if m := color.MaxComponent(); m > 1 {
		color = color.Multiply(1 / m)
	}
	color = color.Clamp(0, 1)
	dst[0] = byte(math.Round(255 * color.X))
	dst[1] = byte(math.Round(255 * color.Y))
	dst[2] = byte(math.Round(255 * color.Z))
}
