// Package cliconfig holds the mandelrender command's configuration:
// defaults, TOML file loading with flag precedence, validation, and a
// config-file watcher for re-render-on-save.
package cliconfig

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/gogpu/mandel"
)

// Output formats accepted by the --output extension.
var outputFormats = map[string]bool{
	".png":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
}

// Config is the fully resolved command configuration: defaults, then config
// file, then explicit flags, highest last.
type Config struct {
	Width  int
	Height int

	CenterX float64
	CenterY float64
	Zoom    float64

	Samples int
	Smooth  bool
	Scheme  string

	MaxIter       uint64
	CheckInterval uint64
	Workers       int

	Output string
	Watch  bool
}

// DefaultConfig returns the configuration used when neither the config file
// nor flags override a value.
func DefaultConfig() Config {
	return Config{
		Width:         mandel.DefaultWidth,
		Height:        mandel.DefaultHeight,
		CenterX:       mandel.DefaultCenterX,
		CenterY:       mandel.DefaultCenterY,
		Zoom:          mandel.DefaultZoom,
		Samples:       1,
		Smooth:        true,
		Scheme:        "classic",
		MaxIter:       0, // evaluator default
		CheckInterval: 0, // evaluator default
		Workers:       0, // one per CPU
		Output:        "mandelbrot.png",
	}
}

// Validate checks the resolved configuration before any rendering starts.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: dimensions %dx%d must be positive", c.Width, c.Height)
	}
	if !(c.Zoom > 0) || math.IsInf(c.Zoom, 0) {
		return fmt.Errorf("config: zoom %v must be positive and finite", c.Zoom)
	}
	if c.Samples < mandel.MinSamplesPerAxis || c.Samples > mandel.MaxSamplesPerAxis {
		return fmt.Errorf("config: samples %d outside %d..%d",
			c.Samples, mandel.MinSamplesPerAxis, mandel.MaxSamplesPerAxis)
	}
	if _, ok := mandel.SchemeByName(c.Scheme); !ok {
		return fmt.Errorf("config: unknown color scheme %q", c.Scheme)
	}
	if c.Output == "" {
		return fmt.Errorf("config: output path is empty")
	}
	if !outputFormats[c.Format()] {
		return fmt.Errorf("config: unsupported output format %q (png, bmp, tif, tiff)", c.Format())
	}
	return nil
}

// Format returns the lower-cased output file extension, dot included.
func (c Config) Format() string {
	return strings.ToLower(filepath.Ext(c.Output))
}

// Viewport builds the render viewport from the configuration.
func (c Config) Viewport() mandel.Viewport {
	return mandel.Viewport{
		Width:   c.Width,
		Height:  c.Height,
		CenterX: c.CenterX,
		CenterY: c.CenterY,
		Zoom:    c.Zoom,
	}
}

// Sampling builds the sampling configuration.
func (c Config) Sampling() mandel.SamplingConfig {
	return mandel.SamplingConfig{
		SamplesPerAxis: c.Samples,
		SmoothColoring: c.Smooth,
	}
}

// configSetter helps apply configuration values while respecting flag
// precedence: a value is applied only when its flag was not explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

func (s *configSetter) setUint64(flag string, value uint64, dst *uint64) {
	if value == 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setFloat applies any non-nil value; zero and negative are meaningful for
// plane coordinates, so the file field is a pointer rather than sentinel.
func (s *configSetter) setFloat(flag string, value *float64, dst *float64) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}
