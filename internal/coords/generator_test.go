package coords

import (
	"math"
	"testing"

	"github.com/gogpu/mandel/internal/wide"
)

func TestGenerator_Restartable(t *testing.T) {
	g1 := NewGenerator(80, 60, -0.7, 0, 0.8, 3)
	g2 := NewGenerator(80, 60, -0.7, 0, 0.8, 3)

	for _, base := range []uint64{0, 4, 36, 1000} {
		r1, i1 := g1.Batch(base)
		r2, i2 := g2.Batch(base)
		if r1 != r2 || i1 != i2 {
			t.Errorf("base %d: generators disagree", base)
		}

		// Re-reading the same batch must give the same coordinates.
		r3, i3 := g1.Batch(base)
		if r1 != r3 || i1 != i3 {
			t.Errorf("base %d: re-read differs", base)
		}
	}
}

func TestGenerator_SamplesInsidePixel(t *testing.T) {
	for axis := 1; axis <= 4; axis++ {
		g := NewGenerator(10, 10, 0, 0, 1, axis)
		spp := g.SamplesPerPixel()
		if spp != axis*axis {
			t.Fatalf("axis %d: spp = %d, want %d", axis, spp, axis*axis)
		}

		// The first pixel's samples must all land strictly inside its
		// complex-plane extent: offsets are 1-indexed, never 0 or 1.
		scale := ViewportScale / 10.0
		minRe := g.centerX + (0.0-g.halfW)*scale
		maxRe := g.centerX + (1.0-g.halfW)*scale

		for s := 0; s < spp; s += wide.Width {
			re, _ := g.Batch(uint64(s))
			for l := 0; l < wide.Width && s+l < spp; l++ {
				if re[l] <= minRe || re[l] >= maxRe {
					t.Errorf("axis %d sample %d: re %v on or outside pixel bounds (%v, %v)",
						axis, s+l, re[l], minRe, maxRe)
				}
			}
		}
	}
}

func TestGenerator_CenterMapsToCenter(t *testing.T) {
	// A single sample per pixel sits at the pixel midpoint; the canvas
	// center pixel's sample must land near the viewport center.
	g := NewGenerator(101, 101, -0.5, 0.25, 2, 1)
	centerPixel := uint64(50*101 + 50)
	re, im := g.Batch(centerPixel)

	scale := ViewportScale / (2 * 101.0)
	if math.Abs(re[0]-(-0.5)) > scale {
		t.Errorf("center sample re = %v, want within %v of -0.5", re[0], scale)
	}
	if math.Abs(im[0]-0.25) > scale {
		t.Errorf("center sample im = %v, want within %v of 0.25", im[0], scale)
	}
}

func TestGenerator_YAxisInverted(t *testing.T) {
	g := NewGenerator(100, 100, 0, 0, 1, 1)

	_, imTop := g.Batch(0)
	_, imBottom := g.Batch(uint64(99 * 100))

	if imTop[0] <= imBottom[0] {
		t.Errorf("top row im %v should exceed bottom row im %v", imTop[0], imBottom[0])
	}
}

func TestGenerator_BatchSpansPixelBoundary(t *testing.T) {
	// axis=3 gives 9 samples per pixel; with lane width 4 the third batch
	// holds samples 8..11: one from pixel 0 and three from pixel 1.
	g := NewGenerator(100, 100, 0, 0, 1, 3)
	re, _ := g.Batch(8)

	// Lane 0 belongs to pixel 0, lane 1 to pixel 1; pixel 1 sits one
	// pixel to the right, so its samples have strictly larger re.
	if re[1] <= re[0] {
		t.Errorf("sample 9 re %v should exceed sample 8 re %v", re[1], re[0])
	}
}

func TestGenerator_NumBatches(t *testing.T) {
	tests := []struct {
		axis   int
		pixels int
		want   int
	}{
		{1, 8, 2},   // 8 samples -> 2 batches
		{1, 9, 3},   // 9 samples -> 3 batches, last partial
		{2, 3, 3},   // 12 samples -> 3 batches
		{3, 1, 3},   // 9 samples -> 3 batches
		{4, 2, 8},   // 32 samples -> 8 batches
	}
	for _, tt := range tests {
		g := NewGenerator(100, 100, 0, 0, 1, tt.axis)
		if got := g.NumBatches(tt.pixels); got != tt.want {
			t.Errorf("axis %d pixels %d: NumBatches = %d, want %d",
				tt.axis, tt.pixels, got, tt.want)
		}
	}
}

func TestGenerator_ZoomNarrowsExtent(t *testing.T) {
	wideView := NewGenerator(100, 100, 0, 0, 1, 1)
	narrow := NewGenerator(100, 100, 0, 0, 10, 1)

	wr, _ := wideView.Batch(0)
	nr, _ := narrow.Batch(0)

	// Corner sample of the zoomed view must be closer to the center.
	if math.Abs(nr[0]) >= math.Abs(wr[0]) {
		t.Errorf("zoomed corner %v not closer to center than %v", nr[0], wr[0])
	}
}
