package mandel

import (
	"image/color"

	icolor "github.com/gogpu/mandel/internal/color"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// LinearToSRGB converts a linear-light component in [0,1] to display sRGB.
func LinearToSRGB(l float64) float64 {
	return icolor.LinearToSRGB(l)
}

// SRGBToLinear converts a display sRGB component in [0,1] to linear light.
func SRGBToLinear(s float64) float64 {
	return icolor.SRGBToLinear(s)
}

// clamp255 clamps a value to [0, 255].
func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
