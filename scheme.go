package mandel

import (
	"math"
	"sort"

	icolor "github.com/gogpu/mandel/internal/color"
	"github.com/gogpu/mandel/internal/escape"
)

// ColorScheme maps a normalized escape value to a color. Colorize receives
// t in [0,1] and returns linear RGB components in [0,1]; gamma correction
// happens downstream in the sample aggregator. A scheme is selected once
// per render pass and must be safe for concurrent use.
type ColorScheme interface {
	Name() string
	Colorize(t float64) (r, g, b float64)
}

// ColorStop is a color at a specific position in a palette.
type ColorStop struct {
	Offset  float64 // Position in palette, 0.0 to 1.0
	R, G, B float64
}

// Palette is a ColorScheme built from a table of color stops with linear
// interpolation between adjacent stops.
type Palette struct {
	name  string
	stops []ColorStop
}

// NewPalette creates a palette scheme. Stops are sorted by offset; out of
// range t is clamped to the edge stops.
func NewPalette(name string, stops []ColorStop) *Palette {
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return &Palette{name: name, stops: sorted}
}

// Name returns the palette's registry name.
func (p *Palette) Name() string { return p.name }

// Colorize interpolates the stop table at t.
func (p *Palette) Colorize(t float64) (float64, float64, float64) {
	if len(p.stops) == 0 {
		return 0, 0, 0
	}
	t = icolor.Clamp01(t)

	idx := sort.Search(len(p.stops), func(i int) bool {
		return p.stops[i].Offset >= t
	})
	if idx == 0 {
		s := p.stops[0]
		return s.R, s.G, s.B
	}
	if idx >= len(p.stops) {
		s := p.stops[len(p.stops)-1]
		return s.R, s.G, s.B
	}

	s1 := p.stops[idx-1]
	s2 := p.stops[idx]
	if s2.Offset == s1.Offset {
		return s1.R, s1.G, s1.B
	}

	f := (t - s1.Offset) / (s2.Offset - s1.Offset)
	return lerp(s1.R, s2.R, f), lerp(s1.G, s2.G, f), lerp(s1.B, s2.B, f)
}

func lerp(a, b, f float64) float64 {
	return a + f*(b-a)
}

// grayscale maps t straight to gray.
type grayscale struct{}

func (grayscale) Name() string { return "grayscale" }

func (grayscale) Colorize(t float64) (float64, float64, float64) {
	t = icolor.Clamp01(t)
	return t, t, t
}

// Classic returns the Ultra Fractal classic palette.
func Classic() ColorScheme {
	return NewPalette("classic", []ColorStop{
		{0.0, 0, 7.0 / 255, 100.0 / 255},
		{0.16, 32.0 / 255, 107.0 / 255, 203.0 / 255},
		{0.42, 237.0 / 255, 1, 1},
		{0.6425, 1, 170.0 / 255, 0},
		{0.8575, 0, 2.0 / 255, 0},
		{1.0, 0, 7.0 / 255, 100.0 / 255},
	})
}

// HotIron returns a black-red-orange-white heat palette.
func HotIron() ColorScheme {
	return NewPalette("hot-iron", []ColorStop{
		{0.0, 0, 0, 0},
		{0.25, 0.5, 0, 0},
		{0.5, 1, 0, 0},
		{0.75, 1, 165.0 / 255, 0},
		{1.0, 1, 1, 1},
	})
}

// ElectricBlue returns a deep-blue to cyan palette.
func ElectricBlue() ColorScheme {
	return NewPalette("electric-blue", []ColorStop{
		{0.0, 0, 0, 50.0 / 255},
		{0.5, 0, 100.0 / 255, 1},
		{1.0, 0, 1, 1},
	})
}

// Sunset returns a purple-pink-orange-yellow palette.
func Sunset() ColorScheme {
	return NewPalette("sunset", []ColorStop{
		{0.0, 25.0 / 255, 0, 51.0 / 255},
		{0.33, 1, 0, 127.0 / 255},
		{0.66, 1, 127.0 / 255, 0},
		{1.0, 1, 1, 0},
	})
}

// Grayscale returns the identity gray ramp.
func Grayscale() ColorScheme { return grayscale{} }

// BlueWhite returns a two-stop blue to white ramp.
func BlueWhite() ColorScheme {
	return NewPalette("blue-white", []ColorStop{
		{0.0, 0, 50.0 / 255, 150.0 / 255},
		{1.0, 1, 1, 1},
	})
}

// OceanDepths returns a deep-blue to white-foam palette.
func OceanDepths() ColorScheme {
	return NewPalette("ocean-depths", []ColorStop{
		{0.0, 0, 0.1, 0.3},
		{0.3, 0, 0.4, 0.7},
		{0.6, 0, 0.8, 0.9},
		{0.85, 0.7, 1, 1},
		{1.0, 1, 1, 1},
	})
}

// LavaFlow returns a near-black to white-hot volcanic palette.
func LavaFlow() ColorScheme {
	return NewPalette("lava-flow", []ColorStop{
		{0.0, 0.05, 0, 0},
		{0.2, 0.4, 0, 0},
		{0.4, 0.8, 0.2, 0},
		{0.7, 1, 0.6, 0},
		{0.9, 1, 1, 0.4},
		{1.0, 1, 1, 1},
	})
}

// exponentialLCH cycles hue through LCH space with exponential spacing.
// Points inside the set render black.
type exponentialLCH struct {
	maxIter    float64
	logMaxIter float64
}

// NewExponentialLCH creates the LCH scheme for a given iteration cap; the
// cap is needed to undo the logarithmic normalization of t. A zero cap
// falls back to the default.
func NewExponentialLCH(maxIter uint64) ColorScheme {
	if maxIter == 0 {
		maxIter = escape.DefaultMaxIter
	}
	m := float64(maxIter)
	return &exponentialLCH{maxIter: m, logMaxIter: math.Log(m + 1)}
}

func (e *exponentialLCH) Name() string { return "exponential-lch" }

func (e *exponentialLCH) Colorize(t float64) (float64, float64, float64) {
	// Recover the smoothed iteration count from its normalized form.
	iter := math.Expm1(icolor.Clamp01(t) * e.logMaxIter)
	if iter >= e.maxIter {
		return 0, 0, 0
	}
	s := iter / e.maxIter

	cosPiS := math.Cos(math.Pi * s)
	v := 1 - cosPiS*cosPiS

	l := 75 - 75*v
	c := 28 + (75 - 75*v)
	h := math.Mod(math.Pow(360*s, 1.5), 360)

	hRad := h * math.Pi / 180
	labA := c * math.Cos(hRad)
	labB := c * math.Sin(hRad)

	fy := (l + 16) / 116
	fx := labA/500 + fy
	fz := fy - labB/200

	x := 0.95047 * labToXYZ(fx)
	y := 1.00000 * labToXYZ(fy)
	z := 1.08883 * labToXYZ(fz)

	r := 3.2406*x - 1.5372*y - 0.4986*z
	g := -0.9689*x + 1.8758*y + 0.0415*z
	b := 0.0557*x - 0.2040*y + 1.0570*z

	return icolor.Clamp01(r), icolor.Clamp01(g), icolor.Clamp01(b)
}

// labToXYZ is the inverse of the Lab transfer function.
func labToXYZ(t float64) float64 {
	const delta = 6.0 / 29.0
	if t > delta {
		return t * t * t
	}
	return 3 * delta * delta * (t - 4.0/29.0)
}

// Schemes returns all built-in color schemes, LCH normalized against the
// default iteration cap.
func Schemes() []ColorScheme {
	return []ColorScheme{
		Classic(),
		HotIron(),
		ElectricBlue(),
		Sunset(),
		Grayscale(),
		BlueWhite(),
		OceanDepths(),
		LavaFlow(),
		NewExponentialLCH(0),
	}
}

// SchemeByName looks up a built-in scheme by its registry name.
func SchemeByName(name string) (ColorScheme, bool) {
	for _, s := range Schemes() {
		if s.Name() == name {
			return s, true
		}
	}
	return nil, false
}
