package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// fileConfig mirrors Config for TOML decoding. Fields whose zero value is a
// legal setting use pointers so an absent key is distinguishable from an
// explicit zero.
type fileConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`

	CenterX *float64 `toml:"center_x"`
	CenterY *float64 `toml:"center_y"`
	Zoom    *float64 `toml:"zoom"`

	Samples int    `toml:"samples"`
	Smooth  *bool  `toml:"smooth"`
	Scheme  string `toml:"scheme"`

	MaxIter       uint64 `toml:"max_iter"`
	CheckInterval uint64 `toml:"check_interval"`
	Workers       int    `toml:"workers"`

	Output string `toml:"output"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (fileConfig, error) {
	var fc fileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.mandelrender/config.toml if the user home
// directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".mandelrender", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies file values onto cfg, skipping any field whose
// flag appears in the changed map: flags beat file, file beats defaults.
func ApplyFileConfig(cfg *Config, fc fileConfig, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setInt("width", fc.Width, &cfg.Width)
	s.setInt("height", fc.Height, &cfg.Height)

	s.setFloat("center-x", fc.CenterX, &cfg.CenterX)
	s.setFloat("center-y", fc.CenterY, &cfg.CenterY)
	s.setFloat("zoom", fc.Zoom, &cfg.Zoom)

	s.setInt("samples", fc.Samples, &cfg.Samples)
	s.setBool("smooth", fc.Smooth, &cfg.Smooth)
	s.setString("scheme", fc.Scheme, &cfg.Scheme)

	s.setUint64("max-iter", fc.MaxIter, &cfg.MaxIter)
	s.setUint64("check-interval", fc.CheckInterval, &cfg.CheckInterval)
	s.setInt("workers", fc.Workers, &cfg.Workers)

	s.setString("output", fc.Output, &cfg.Output)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
