package renderer

import "time"

// RenderStats describes a completed render
type RenderStats struct {
	Width   int           // image width in pixels
	Height  int           // image height in pixels
	Pixels  int           // total pixels traced
	Workers int           // row bands rendered in parallel
	Elapsed time.Duration // wall-clock render time
}
