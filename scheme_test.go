package mandel

import "testing"

func TestSchemes_ComponentsInRange(t *testing.T) {
	points := []float64{0, 0.001, 0.25, 0.5, 0.75, 0.999, 1}
	for _, s := range Schemes() {
		for _, tp := range points {
			r, g, b := s.Colorize(tp)
			for i, v := range []float64{r, g, b} {
				if v < 0 || v > 1 {
					t.Errorf("%s: Colorize(%v) component %d = %v out of [0,1]",
						s.Name(), tp, i, v)
				}
			}
		}
	}
}

func TestSchemes_UniqueNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, s := range Schemes() {
		if s.Name() == "" {
			t.Error("scheme with empty name")
		}
		if seen[s.Name()] {
			t.Errorf("duplicate scheme name %q", s.Name())
		}
		seen[s.Name()] = true
	}
}

func TestSchemes_ClampOutOfRange(t *testing.T) {
	for _, s := range Schemes() {
		rl, gl, bl := s.Colorize(-0.5)
		r0, g0, b0 := s.Colorize(0)
		if rl != r0 || gl != g0 || bl != b0 {
			t.Errorf("%s: t < 0 not clamped to edge stop", s.Name())
		}
		rh, gh, bh := s.Colorize(1.5)
		r1, g1, b1 := s.Colorize(1)
		if rh != r1 || gh != g1 || bh != b1 {
			t.Errorf("%s: t > 1 not clamped to edge stop", s.Name())
		}
	}
}

func TestSchemeByName(t *testing.T) {
	s, ok := SchemeByName("classic")
	if !ok || s.Name() != "classic" {
		t.Errorf("SchemeByName(classic) = %v, %v", s, ok)
	}
	if _, ok := SchemeByName("no-such-scheme"); ok {
		t.Error("SchemeByName accepted an unknown name")
	}
}

func TestPalette_Interpolation(t *testing.T) {
	p := NewPalette("test", []ColorStop{
		{1.0, 1, 1, 1}, // out of order on purpose, NewPalette sorts
		{0.0, 0, 0, 0},
	})

	r, g, b := p.Colorize(0.5)
	for _, v := range []float64{r, g, b} {
		if v != 0.5 {
			t.Fatalf("midpoint of black-white ramp = (%v, %v, %v), want 0.5", r, g, b)
		}
	}
}

func TestExponentialLCH_InteriorIsBlack(t *testing.T) {
	s := NewExponentialLCH(1000)
	// t = 1 corresponds to the iteration cap: never escaped.
	r, g, b := s.Colorize(1)
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("interior color = (%v, %v, %v), want black", r, g, b)
	}
}

func TestGrayscale_Identity(t *testing.T) {
	g := Grayscale()
	for _, tp := range []float64{0, 0.3, 1} {
		r, gr, b := g.Colorize(tp)
		if r != tp || gr != tp || b != tp {
			t.Errorf("Colorize(%v) = (%v, %v, %v)", tp, r, gr, b)
		}
	}
}
