package main

import (
	"flag"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/ivanstepanovftw/go-raytrace/pkg/renderer"
	"github.com/ivanstepanovftw/go-raytrace/pkg/scene"
)

func main() {
	width := flag.Int("width", 1024, "image width in pixels")
	height := flag.Int("height", 768, "image height in pixels")
	fov := flag.Float64("fov", 60, "vertical field of view in degrees")
	workers := flag.Int("workers", 0, "number of render workers (0 = one per CPU)")
	quality := flag.Int("quality", 90, "JPEG quality, ignored for PNG output")
	out := flag.String("out", "out.jpg", "output file (.jpg or .png)")
	flag.Parse()

	cfg := renderer.Config{
		Width:   *width,
		Height:  *height,
		FOV:     *fov * math.Pi / 180,
		Workers: *workers,
	}

	r := renderer.NewRenderer(scene.NewDefaultScene(), cfg)
	pixels, stats := r.Render()
	fmt.Printf("Rendered %dx%d with %d workers in %v\n",
		stats.Width, stats.Height, stats.Workers, stats.Elapsed)

	if err := encodeImage(*out, cfg.Width, cfg.Height, pixels, *quality); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Saved %s\n", *out)
}

// encodeImage writes an interleaved RGB buffer to a compressed image
// file, choosing the codec from the file extension.
func encodeImage(path string, width, height int, pixels []byte, quality int) error {
	if len(pixels) != width*height*3 {
		return fmt.Errorf("pixel buffer is %d bytes, want %d", len(pixels), width*height*3)
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < width*height; i++ {
		img.Pix[i*4+0] = pixels[i*3+0]
		img.Pix[i*4+1] = pixels[i*3+1]
		img.Pix[i*4+2] = pixels[i*3+2]
		img.Pix[i*4+3] = 255
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	switch filepath.Ext(path) {
	case ".png":
		err = png.Encode(file, img)
	default:
		err = jpeg.Encode(file, img, &jpeg.Options{Quality: quality})
	}
	if err != nil {
		file.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
