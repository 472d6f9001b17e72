// Command mandelrender renders an escape-time view of the Mandelbrot set to
// an image file. Configuration comes from flags layered over an optional
// TOML config file; with --watch the command stays resident and re-renders
// every time the config file is saved.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/gogpu/mandel"
	"github.com/gogpu/mandel/internal/cliconfig"
)

var exampleUsage = strings.TrimSpace(`
  mandelrender --output set.png
  mandelrender --center-x -0.743643 --center-y 0.131825 --zoom 4000 --samples 3 --output deep.png
  mandelrender --config render.toml --watch
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string
	var verbose bool

	root := &cobra.Command{
		Use:     "mandelrender",
		Short:   "Render the Mandelbrot set to an image file",
		Example: exampleUsage,
		Version: getVersion(),
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			mandel.SetLogger(log)

			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			load := func() (cliconfig.Config, error) {
				c := cfg
				if cfgFile != "" && cliconfig.FileExists(cfgFile) {
					fc, err := cliconfig.LoadFileConfig(cfgFile)
					if err != nil {
						return c, fmt.Errorf("load config: %w", err)
					}
					cliconfig.ApplyFileConfig(&c, fc, changed)
				}
				if err := c.Validate(); err != nil {
					return c, err
				}
				return c, nil
			}

			resolved, err := load()
			if err != nil {
				return err
			}

			r := mandel.NewRenderer(
				mandel.WithWorkers(resolved.Workers),
				mandel.WithMaxIter(resolved.MaxIter),
				mandel.WithEscapeCheckInterval(resolved.CheckInterval),
			)
			defer r.Close()

			if err := renderOnce(r, resolved, log); err != nil {
				return err
			}
			if !resolved.Watch {
				return nil
			}
			if cfgFile == "" || !cliconfig.FileExists(cfgFile) {
				return fmt.Errorf("watch mode needs a config file, none found at %q", cfgFile)
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			w := cliconfig.NewWatcher(cfgFile, log, func() {
				c, err := load()
				if err != nil {
					log.Error("config reload failed", "err", err)
					return
				}
				if err := renderOnce(r, c, log); err != nil {
					log.Error("render failed", "err", err)
				}
			})
			if err := w.Run(ctx); err != nil && err != context.Canceled {
				return err
			}
			log.Info("stopping")
			return nil
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: ~/.mandelrender/config.toml)")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.Flags().IntVar(&cfg.Width, "width", cfg.Width, "image width in pixels")
	root.Flags().IntVar(&cfg.Height, "height", cfg.Height, "image height in pixels")

	root.Flags().Float64Var(&cfg.CenterX, "center-x", cfg.CenterX, "real coordinate at the image center")
	root.Flags().Float64Var(&cfg.CenterY, "center-y", cfg.CenterY, "imaginary coordinate at the image center")
	root.Flags().Float64Var(&cfg.Zoom, "zoom", cfg.Zoom, "magnification; larger zooms in")

	root.Flags().IntVar(&cfg.Samples, "samples", cfg.Samples, "super-sampling grid side (1..4)")
	root.Flags().BoolVar(&cfg.Smooth, "smooth", cfg.Smooth, "smooth coloring")
	root.Flags().StringVar(&cfg.Scheme, "scheme", cfg.Scheme, "color scheme name")

	root.Flags().Uint64Var(&cfg.MaxIter, "max-iter", cfg.MaxIter, "iteration cap (0 = default)")
	root.Flags().Uint64Var(&cfg.CheckInterval, "check-interval", cfg.CheckInterval, "escape check interval (0 = default)")
	root.Flags().IntVar(&cfg.Workers, "workers", cfg.Workers, "render workers (0 = one per CPU)")

	root.Flags().StringVar(&cfg.Output, "output", cfg.Output, "output path; format from extension (png, bmp, tiff)")
	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "re-render whenever the config file is saved")

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "mandelrender: %v\n", err)
		os.Exit(1)
	}
}

// renderOnce runs one full pass and writes the result to the configured
// output path.
func renderOnce(r *mandel.Renderer, cfg cliconfig.Config, log *slog.Logger) error {
	scheme, err := schemeFor(cfg, r.MaxIter())
	if err != nil {
		return err
	}

	img, stats, err := r.Render(cfg.Viewport(), cfg.Sampling(), scheme)
	if err != nil {
		return err
	}

	if err := writeImage(img, cfg); err != nil {
		return fmt.Errorf("write %s: %w", cfg.Output, err)
	}
	log.Info("image written",
		"path", cfg.Output,
		"size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"elapsed", stats.Elapsed)
	return nil
}

// schemeFor resolves the named scheme. The LCH scheme normalizes against
// the iteration cap, so it is rebuilt for the renderer's actual cap.
func schemeFor(cfg cliconfig.Config, maxIter uint64) (mandel.ColorScheme, error) {
	s, ok := mandel.SchemeByName(cfg.Scheme)
	if !ok {
		return nil, fmt.Errorf("unknown color scheme %q", cfg.Scheme)
	}
	if s.Name() == "exponential-lch" {
		s = mandel.NewExponentialLCH(maxIter)
	}
	return s, nil
}

func writeImage(img *mandel.Pixmap, cfg cliconfig.Config) error {
	f, err := os.Create(cfg.Output)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := encodeImage(f, img, cfg.Format()); err != nil {
		return err
	}
	return f.Close()
}

func encodeImage(w io.Writer, img *mandel.Pixmap, format string) error {
	switch format {
	case ".png":
		return img.EncodePNG(w)
	case ".bmp":
		return bmp.Encode(w, img.ToImage())
	case ".tif", ".tiff":
		return tiff.Encode(w, img.ToImage(), nil)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
