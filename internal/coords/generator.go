// Package coords expands pixel-index ranges into batches of jittered
// sub-pixel sample coordinates on the complex plane.
//
// Every coordinate is a pure function of its global sample index, so a
// generator can be restarted from any batch and two generators with the same
// parameters always agree.
package coords

import (
	"github.com/gogpu/mandel/internal/wide"
)

// ViewportScale is the complex-plane extent covered by the shorter canvas
// axis at zoom 1.
const ViewportScale = 3.0

// Generator maps sample indices to complex coordinates for one immutable
// viewport and sampling snapshot.
type Generator struct {
	width   uint64
	height  uint64
	axis    uint64 // samples per pixel axis
	spp     uint64 // samples per pixel, axis*axis
	subStep float64

	centerX float64
	centerY float64
	scale   float64
	halfW   float64
	halfH   float64
}

// NewGenerator creates a generator for the given canvas and sampling
// parameters. Callers validate dimensions, zoom and axis before a pass
// starts; the generator itself assumes a well-formed snapshot.
func NewGenerator(width, height int, centerX, centerY, zoom float64, samplesPerAxis int) *Generator {
	shorter := width
	if height < width {
		shorter = height
	}
	axis := uint64(samplesPerAxis)
	return &Generator{
		width:   uint64(width),
		height:  uint64(height),
		axis:    axis,
		spp:     axis * axis,
		subStep: 1.0 / float64(axis+1),
		centerX: centerX,
		centerY: centerY,
		scale:   ViewportScale / (zoom * float64(shorter)),
		halfW:   float64(width) / 2,
		halfH:   float64(height) / 2,
	}
}

// SamplesPerPixel returns the number of sub-pixel samples per output pixel.
func (g *Generator) SamplesPerPixel() int { return int(g.spp) }

// NumBatches returns how many width-W batches cover pixelCount pixels worth
// of samples. The final batch may run past the last pixel; those trailing
// lanes are dropped downstream.
func (g *Generator) NumBatches(pixelCount int) int {
	samples := uint64(pixelCount) * g.spp
	return int((samples + wide.Width - 1) / wide.Width)
}

// Batch produces the coordinate batch starting at the given global sample
// index. Sample enumeration is row-major by pixel and sub-row major within
// a pixel; sub-pixel offsets are 1-indexed so samples sit strictly inside
// pixel bounds. Screen Y grows downward, the imaginary axis upward.
func (g *Generator) Batch(sampleBase uint64) (re, im wide.F64x4) {
	for l := uint64(0); l < wide.Width; l++ {
		s := sampleBase + l
		pixel := s / g.spp
		sub := s % g.spp

		px := float64(pixel % g.width)
		py := float64(pixel / g.width)
		sx := float64(sub%g.axis + 1)
		sy := float64(sub/g.axis + 1)

		x := px + g.subStep*sx
		y := py + g.subStep*sy

		re[l] = g.centerX + (x-g.halfW)*g.scale
		im[l] = g.centerY - (y-g.halfH)*g.scale
	}
	return re, im
}
