// Package aggregate reassembles lane-width evaluation batches into finished
// pixels.
//
// Batches arrive in fixed groups of wide.Width samples that do not in
// general align with the per-pixel sample count, so results are staged in a
// small ring of lane-group slots and re-segmented on the way out: whenever a
// full pixel's worth of samples is buffered, the aggregator colorizes,
// gamma-corrects and averages them and writes one pixel.
package aggregate

import (
	"math"

	icolor "github.com/gogpu/mandel/internal/color"
	"github.com/gogpu/mandel/internal/escape"
	"github.com/gogpu/mandel/internal/wide"
)

// log2(log2(escape radius squared)), the constant term of the smooth
// iteration correction.
const smoothBias = 1.0

// Colorizer maps a normalized escape value t in [0,1] to linear RGB
// components in [0,1].
type Colorizer interface {
	Colorize(t float64) (r, g, b float64)
}

// Surface receives finished pixels by flat row-major index. Implementations
// own bounds handling for their backing store; the aggregator never writes
// an index at or beyond the configured pixel limit.
type Surface interface {
	SetIndexRGB(idx int, r, g, b uint8)
}

// Config is the immutable per-pass snapshot an Aggregator works from.
type Config struct {
	// SamplesPerPixel is the number of sub-pixel samples per output pixel.
	SamplesPerPixel int

	// Smooth enables the continuous escape-value correction for escaped
	// samples.
	Smooth bool

	// MaxIter is the evaluator's iteration cap, used for normalization.
	MaxIter uint64

	// PixelBase is the first pixel index owned by this aggregator's chunk.
	PixelBase int

	// PixelCount is how many pixels the chunk owns. Samples past the last
	// owned pixel arrive in the trailing batch but are never consumed;
	// finalizing them would write into a neighboring chunk's pixels.
	PixelCount int

	// PixelLimit is the total pixel count of the image; a finalized pixel
	// whose index lands past it is silently dropped.
	PixelLimit int
}

// slot holds one evaluated lane group.
type slot struct {
	iters wide.U64x4
	mags  wide.F64x4
}

// Aggregator collects batches for one chunk and emits pixels in order.
// It allocates its ring once at construction and nothing per pixel.
type Aggregator struct {
	cfg      Config
	surface  Surface
	colorize Colorizer

	invLogMax float64

	// ring holds staged lane groups; capacity is one full pixel's worth
	// of samples plus one in-flight batch.
	ring []slot
	next int

	// write and read are monotonically increasing sample cursors relative
	// to the chunk's first sample. read never passes write.
	write uint64
	read  uint64

	// emitted counts finalized pixels, capped at cfg.PixelCount.
	emitted int
}

// New creates an aggregator writing into surface through colorize.
func New(cfg Config, surface Surface, colorize Colorizer) *Aggregator {
	if cfg.MaxIter == 0 {
		cfg.MaxIter = escape.DefaultMaxIter
	}
	capacity := cfg.SamplesPerPixel + 1
	return &Aggregator{
		cfg:       cfg,
		surface:   surface,
		colorize:  colorize,
		invLogMax: 1 / math.Log(float64(cfg.MaxIter)+1),
		ring:      make([]slot, capacity),
	}
}

// Push stages one evaluated batch and finalizes every pixel that is now
// complete. Batches must arrive in the order the generator emitted them.
func (a *Aggregator) Push(iters wide.U64x4, mags wide.F64x4) {
	a.ring[a.next] = slot{iters: iters, mags: mags}
	a.next++
	if a.next == len(a.ring) {
		a.next = 0
	}
	a.write += wide.Width

	spp := uint64(a.cfg.SamplesPerPixel)
	for a.write-a.read >= spp && a.emitted < a.cfg.PixelCount {
		a.finalizePixel()
	}
}

// Pending returns how many staged samples have not been consumed yet.
// Always non-negative: the read cursor trails the write cursor.
func (a *Aggregator) Pending() int {
	return int(a.write - a.read)
}

// finalizePixel consumes exactly one pixel's worth of staged samples. The
// sample window may start mid-slot and span a slot boundary; indexing each
// sample through the ring masks out lanes that belong to adjacent pixels.
func (a *Aggregator) finalizePixel() {
	spp := uint64(a.cfg.SamplesPerPixel)
	capacity := uint64(len(a.ring))

	var rSum, gSum, bSum float64
	for s := a.read; s < a.read+spp; s++ {
		idx := (s / wide.Width) % capacity
		lane := s % wide.Width
		iter := a.ring[idx].iters[lane]
		mag := a.ring[idx].mags[lane]

		finalIter := float64(iter)
		if a.cfg.Smooth && mag > escape.EscapeRadiusSq {
			finalIter = finalIter - math.Log2(math.Log2(mag)) + smoothBias
		}
		t := icolor.Clamp01(math.Log(finalIter+1) * a.invLogMax)

		r, g, b := a.colorize.Colorize(t)

		// Accumulate in display space: averaging linear light and
		// converting afterwards darkens anti-aliased edges.
		rSum += icolor.LinearToSRGB(r)
		gSum += icolor.LinearToSRGB(g)
		bSum += icolor.LinearToSRGB(b)
	}

	inv := 1 / float64(spp)
	pixel := a.cfg.PixelBase + int(a.read/spp)
	if pixel < a.cfg.PixelLimit {
		a.surface.SetIndexRGB(pixel,
			clamp255(255*rSum*inv),
			clamp255(255*gSum*inv),
			clamp255(255*bSum*inv))
	}

	a.read += spp
	a.emitted++
}

func clamp255(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
