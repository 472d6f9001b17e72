package mandel

import (
	"fmt"
	"time"

	"github.com/gogpu/mandel/internal/aggregate"
	"github.com/gogpu/mandel/internal/coords"
	"github.com/gogpu/mandel/internal/escape"
	"github.com/gogpu/mandel/internal/parallel"
	"github.com/gogpu/mandel/internal/wide"
)

// chunksPerWorker oversubscribes the pool so work stealing can rebalance
// chunks that land on the slow set boundary.
const chunksPerWorker = 4

// RenderStats describes one completed render pass.
type RenderStats struct {
	// Elapsed is the wall time of the pass, dispatch to barrier.
	Elapsed time.Duration

	// Pixels and Samples are the totals the pass evaluated.
	Pixels  int
	Samples int

	// Chunks is how many parallel tasks the pass was split into.
	Chunks int
}

// Renderer runs escape-time render passes over a long-lived worker pool.
// A Renderer is safe to reuse across passes; concurrent passes on one
// Renderer are allowed because all per-pass state lives on the stack of
// each chunk task.
type Renderer struct {
	pool *parallel.WorkerPool
	eval escape.Evaluator
}

// NewRenderer creates a renderer. With no options it evaluates with the
// vector backend at the default iteration cap and uses one worker per CPU.
func NewRenderer(opts ...Option) *Renderer {
	o := defaultRendererOptions()
	for _, opt := range opts {
		opt(&o)
	}

	eval := o.evaluator
	if eval == nil {
		if o.scalar {
			eval = escape.NewScalar(o.maxIter)
		} else {
			eval = escape.NewVector(o.maxIter, o.checkInterval)
		}
	}

	return &Renderer{
		pool: parallel.NewWorkerPool(o.workers),
		eval: eval,
	}
}

// MaxIter returns the iteration cap of the renderer's evaluator.
func (r *Renderer) MaxIter() uint64 {
	return r.eval.MaxIter()
}

// Close releases the worker pool. The renderer must not be used afterwards.
func (r *Renderer) Close() {
	r.pool.Close()
}

// Render allocates a pixmap for the viewport and fills it.
func (r *Renderer) Render(vp Viewport, cfg SamplingConfig, scheme ColorScheme) (*Pixmap, RenderStats, error) {
	if err := vp.Validate(); err != nil {
		return nil, RenderStats{}, err
	}
	img := NewPixmap(vp.Width, vp.Height)
	stats, err := r.RenderInto(img, vp, cfg, scheme)
	if err != nil {
		return nil, RenderStats{}, err
	}
	return img, stats, nil
}

// RenderInto fills a caller-supplied pixmap, blocking until every chunk has
// completed. The viewport and sampling snapshots are captured by value at
// dispatch; mutating the caller's copies during the pass has no effect.
func (r *Renderer) RenderInto(img *Pixmap, vp Viewport, cfg SamplingConfig, scheme ColorScheme) (RenderStats, error) {
	if err := vp.Validate(); err != nil {
		return RenderStats{}, err
	}
	if err := cfg.Validate(); err != nil {
		return RenderStats{}, err
	}
	if scheme == nil {
		return RenderStats{}, fmt.Errorf("render: nil color scheme")
	}
	if img.Width() != vp.Width || img.Height() != vp.Height {
		return RenderStats{}, fmt.Errorf("render: pixmap %dx%d does not match viewport %dx%d",
			img.Width(), img.Height(), vp.Width, vp.Height)
	}

	start := time.Now()

	totalPixels := vp.Pixels()
	spp := cfg.SamplesPerPixel()
	chunks := parallel.PartitionPixels(totalPixels, r.pool.Workers()*chunksPerWorker)

	Logger().Debug("render pass dispatch",
		"pixels", totalPixels,
		"samples_per_pixel", spp,
		"chunks", len(chunks),
		"lane_width", wide.Width)

	work := make([]func(), len(chunks))
	for i, chunk := range chunks {
		c := chunk
		work[i] = func() {
			r.renderChunk(img, vp, cfg, scheme, c)
		}
	}
	r.pool.ExecuteAll(work)

	stats := RenderStats{
		Elapsed: time.Since(start),
		Pixels:  totalPixels,
		Samples: totalPixels * spp,
		Chunks:  len(chunks),
	}
	Logger().Info("render pass complete",
		"elapsed", stats.Elapsed,
		"pixels", stats.Pixels,
		"samples", stats.Samples)
	return stats, nil
}

// renderChunk runs one generator -> evaluator -> aggregator pipeline over a
// contiguous pixel range, writing only into that range.
func (r *Renderer) renderChunk(img *Pixmap, vp Viewport, cfg SamplingConfig, scheme ColorScheme, chunk parallel.Chunk) {
	gen := coords.NewGenerator(vp.Width, vp.Height, vp.CenterX, vp.CenterY, vp.Zoom, cfg.SamplesPerAxis)

	agg := aggregate.New(aggregate.Config{
		SamplesPerPixel: gen.SamplesPerPixel(),
		Smooth:          cfg.SmoothColoring,
		MaxIter:         r.eval.MaxIter(),
		PixelBase:       chunk.Start,
		PixelCount:      chunk.Pixels(),
		PixelLimit:      vp.Pixels(),
	}, img, scheme)

	sampleBase := uint64(chunk.Start) * uint64(gen.SamplesPerPixel())
	batches := gen.NumBatches(chunk.Pixels())
	for i := 0; i < batches; i++ {
		re, im := gen.Batch(sampleBase + uint64(i)*wide.Width)
		iters, mags := r.eval.EvaluateBatch(re, im)
		agg.Push(iters, mags)
	}
}
