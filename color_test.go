package mandel

import (
	"image/color"
	"math"
	"testing"
)

func TestRGB(t *testing.T) {
	c := RGB(0.2, 0.4, 0.6)
	if c.A != 1 {
		t.Errorf("A = %v, want 1", c.A)
	}
	if c.R != 0.2 || c.G != 0.4 || c.B != 0.6 {
		t.Errorf("RGB = %+v", c)
	}
}

func TestRGBA_Color(t *testing.T) {
	tests := []struct {
		name string
		in   RGBA
		want color.NRGBA
	}{
		{"white", RGBA{1, 1, 1, 1}, color.NRGBA{255, 255, 255, 255}},
		{"black opaque", RGBA{0, 0, 0, 1}, color.NRGBA{0, 0, 0, 255}},
		{"clamped high", RGBA{2, 0.5, -1, 1}, color.NRGBA{255, 127, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Color(); got != tt.want {
				t.Errorf("Color() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSRGBRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 0.001, 0.04, 0.2, 0.5, 0.99, 1} {
		got := SRGBToLinear(LinearToSRGB(v))
		if math.Abs(got-v) > 1e-9 {
			t.Errorf("round trip of %v = %v", v, got)
		}
	}
}
