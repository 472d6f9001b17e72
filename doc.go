// Package mandel renders escape-time fractals of the complex plane into
// raster images.
//
// # Overview
//
// A render pass walks the pixel space of a viewport, expands each pixel
// into one or more jittered sub-pixel samples, evaluates the Mandelbrot
// recurrence on fixed-width lane groups, and averages the colorized samples
// into gamma-correct pixels. Passes run chunk-parallel over a worker pool
// with no synchronization beyond the final barrier: every pixel is owned by
// exactly one chunk.
//
// # Quick Start
//
//	import "github.com/gogpu/mandel"
//
//	r := mandel.NewRenderer()
//	defer r.Close()
//
//	img, stats, err := r.Render(
//		mandel.DefaultViewport(),
//		mandel.SamplingConfig{SamplesPerAxis: 2, SmoothColoring: true},
//		mandel.Classic(),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	_ = img.SavePNG("mandelbrot.png")
//	log.Printf("rendered in %s", stats.Elapsed)
//
// # Architecture
//
// The library is organized into:
//   - Public API: Renderer, Viewport, SamplingConfig, ColorScheme, Pixmap
//   - internal/coords: sample-index to complex-coordinate generation
//   - internal/escape: vectorized and scalar escape-time evaluators
//   - internal/aggregate: batch-to-pixel reassembly and color averaging
//   - internal/parallel: worker pool and pixel-range partitioning
//   - internal/wide: fixed-width lane arithmetic
//
// # Coordinate System
//
// Screen coordinates have the origin at the top-left with Y increasing
// downward; the imaginary axis increases upward, so the view is mirrored
// vertically between the two.
package mandel
