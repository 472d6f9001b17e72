package mandel

import (
	"bytes"
	"testing"
)

func testViewport() Viewport {
	return Viewport{
		Width:   64,
		Height:  48,
		CenterX: -0.7,
		CenterY: 0,
		Zoom:    0.8,
	}
}

func renderBytes(t *testing.T, opts []Option, cfg SamplingConfig) []byte {
	t.Helper()
	r := NewRenderer(opts...)
	defer r.Close()

	img, _, err := r.Render(testViewport(), cfg, Classic())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	return img.Data()
}

// TestRenderer_PartitionInvariance renders the same frame with different
// worker counts; chunk boundaries move but every pixel is owned by exactly
// one chunk and sampled identically, so the output must be byte-identical.
func TestRenderer_PartitionInvariance(t *testing.T) {
	cfg := SamplingConfig{SamplesPerAxis: 3, SmoothColoring: true}

	serial := renderBytes(t, []Option{WithWorkers(1), WithMaxIter(200)}, cfg)
	parallel := renderBytes(t, []Option{WithWorkers(7), WithMaxIter(200)}, cfg)

	if !bytes.Equal(serial, parallel) {
		t.Error("1-worker and 7-worker renders differ")
	}
}

// TestRenderer_ScalarMatchesVector checks the two evaluator backends agree
// bit for bit at the image level.
func TestRenderer_ScalarMatchesVector(t *testing.T) {
	cfg := SamplingConfig{SamplesPerAxis: 2, SmoothColoring: true}

	vector := renderBytes(t, []Option{WithMaxIter(200)}, cfg)
	scalar := renderBytes(t, []Option{WithMaxIter(200), WithScalarEvaluator()}, cfg)

	if !bytes.Equal(vector, scalar) {
		t.Error("scalar and vector renders differ")
	}
}

func TestRenderer_SmoothColoringChangesOutput(t *testing.T) {
	stepped := renderBytes(t, []Option{WithMaxIter(200)},
		SamplingConfig{SamplesPerAxis: 1, SmoothColoring: false})
	smooth := renderBytes(t, []Option{WithMaxIter(200)},
		SamplingConfig{SamplesPerAxis: 1, SmoothColoring: true})

	if bytes.Equal(stepped, smooth) {
		t.Error("smooth coloring produced an identical image")
	}
}

func TestRenderer_Stats(t *testing.T) {
	r := NewRenderer(WithWorkers(2), WithMaxIter(100))
	defer r.Close()

	vp := testViewport()
	cfg := SamplingConfig{SamplesPerAxis: 2}
	_, stats, err := r.Render(vp, cfg, Grayscale())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if stats.Pixels != vp.Pixels() {
		t.Errorf("stats.Pixels = %d, want %d", stats.Pixels, vp.Pixels())
	}
	if want := vp.Pixels() * cfg.SamplesPerPixel(); stats.Samples != want {
		t.Errorf("stats.Samples = %d, want %d", stats.Samples, want)
	}
	if stats.Chunks <= 0 {
		t.Errorf("stats.Chunks = %d, want > 0", stats.Chunks)
	}
	if stats.Elapsed <= 0 {
		t.Errorf("stats.Elapsed = %v, want > 0", stats.Elapsed)
	}
}

func TestRenderer_Reusable(t *testing.T) {
	r := NewRenderer(WithWorkers(2), WithMaxIter(100))
	defer r.Close()

	cfg := SamplingConfig{SamplesPerAxis: 1}
	first, _, err := r.Render(testViewport(), cfg, Classic())
	if err != nil {
		t.Fatalf("first Render: %v", err)
	}
	second, _, err := r.Render(testViewport(), cfg, Classic())
	if err != nil {
		t.Fatalf("second Render: %v", err)
	}
	if !bytes.Equal(first.Data(), second.Data()) {
		t.Error("same renderer produced different frames for the same input")
	}
}

func TestRenderer_ValidationErrors(t *testing.T) {
	r := NewRenderer(WithWorkers(1), WithMaxIter(100))
	defer r.Close()

	good := testViewport()
	goodCfg := SamplingConfig{SamplesPerAxis: 1}

	tests := []struct {
		name   string
		vp     Viewport
		cfg    SamplingConfig
		scheme ColorScheme
	}{
		{"zero width", Viewport{Width: 0, Height: 10, Zoom: 1}, goodCfg, Classic()},
		{"negative height", Viewport{Width: 10, Height: -1, Zoom: 1}, goodCfg, Classic()},
		{"zero zoom", Viewport{Width: 10, Height: 10, Zoom: 0}, goodCfg, Classic()},
		{"samples too low", good, SamplingConfig{SamplesPerAxis: 0}, Classic()},
		{"samples too high", good, SamplingConfig{SamplesPerAxis: MaxSamplesPerAxis + 1}, Classic()},
		{"nil scheme", good, goodCfg, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := r.Render(tt.vp, tt.cfg, tt.scheme); err == nil {
				t.Error("Render accepted invalid input")
			}
		})
	}
}

func TestRenderInto_MismatchedPixmap(t *testing.T) {
	r := NewRenderer(WithWorkers(1), WithMaxIter(100))
	defer r.Close()

	img := NewPixmap(10, 10)
	if _, err := r.RenderInto(img, testViewport(), SamplingConfig{SamplesPerAxis: 1}, Classic()); err == nil {
		t.Error("RenderInto accepted a pixmap that does not match the viewport")
	}
}

func BenchmarkRender_Vector(b *testing.B) {
	r := NewRenderer(WithMaxIter(200))
	defer r.Close()

	vp := testViewport()
	cfg := SamplingConfig{SamplesPerAxis: 2, SmoothColoring: true}
	img := NewPixmap(vp.Width, vp.Height)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := r.RenderInto(img, vp, cfg, Classic()); err != nil {
			b.Fatal(err)
		}
	}
}
