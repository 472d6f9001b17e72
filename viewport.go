package mandel

import (
	"fmt"
	"math"
)

// Default view parameters, framing the full set slightly left of center.
const (
	DefaultCenterX = -0.7
	DefaultCenterY = 0.0
	DefaultZoom    = 0.8
	DefaultWidth   = 800
	DefaultHeight  = 600
)

// Viewport describes the region of the complex plane mapped onto the
// canvas. A render pass captures a Viewport by value; callers must not rely
// on mutations being observed mid-pass.
type Viewport struct {
	// CenterX, CenterY is the complex coordinate at the canvas center.
	CenterX float64
	CenterY float64

	// Zoom scales the view; larger values zoom in. Must be positive.
	Zoom float64

	// Width, Height are the canvas dimensions in pixels.
	Width  int
	Height int
}

// DefaultViewport returns the standard full-set view.
func DefaultViewport() Viewport {
	return Viewport{
		CenterX: DefaultCenterX,
		CenterY: DefaultCenterY,
		Zoom:    DefaultZoom,
		Width:   DefaultWidth,
		Height:  DefaultHeight,
	}
}

// Validate reports whether the viewport satisfies the caller contract.
// Violations fail here, before a pass starts, never mid-render.
func (v Viewport) Validate() error {
	if v.Width <= 0 || v.Height <= 0 {
		return fmt.Errorf("viewport: dimensions %dx%d must be positive", v.Width, v.Height)
	}
	if !(v.Zoom > 0) || math.IsInf(v.Zoom, 0) {
		return fmt.Errorf("viewport: zoom %v must be positive and finite", v.Zoom)
	}
	if math.IsNaN(v.CenterX) || math.IsNaN(v.CenterY) {
		return fmt.Errorf("viewport: center (%v, %v) must be a number", v.CenterX, v.CenterY)
	}
	return nil
}

// Pixels returns the total pixel count of the canvas.
func (v Viewport) Pixels() int {
	return v.Width * v.Height
}
