package mandel

import "fmt"

// Sampling axis bounds: 1x1 (no anti-aliasing) through 4x4 = 16 samples.
const (
	MinSamplesPerAxis = 1
	MaxSamplesPerAxis = 4
)

// SamplingConfig controls super-sampling for one render pass. Like the
// Viewport it is captured by value at dispatch.
type SamplingConfig struct {
	// SamplesPerAxis is the sub-pixel grid side length; the pass takes
	// SamplesPerAxis^2 jittered samples per pixel.
	SamplesPerAxis int

	// SmoothColoring enables the continuous escape-value correction that
	// removes banding between discrete iteration counts.
	SmoothColoring bool
}

// DefaultSampling returns single-sample rendering with smooth coloring off.
func DefaultSampling() SamplingConfig {
	return SamplingConfig{SamplesPerAxis: 1}
}

// SamplesPerPixel returns the total sample count per pixel.
func (c SamplingConfig) SamplesPerPixel() int {
	return c.SamplesPerAxis * c.SamplesPerAxis
}

// Validate reports whether the configuration is within the documented
// ranges. Violations fail fast at configuration time.
func (c SamplingConfig) Validate() error {
	if c.SamplesPerAxis < MinSamplesPerAxis || c.SamplesPerAxis > MaxSamplesPerAxis {
		return fmt.Errorf("sampling: samples per axis %d outside %d..%d",
			c.SamplesPerAxis, MinSamplesPerAxis, MaxSamplesPerAxis)
	}
	return nil
}
