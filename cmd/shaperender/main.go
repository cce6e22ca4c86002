// Command shaperender replays a gesture script without a window and exports
// the result.
//
// Usage:
//
//	shaperender -script strokes.yaml -out strokes.png
//	shaperender -script strokes.yaml -out strokes.pdf
//
// Config flags (-config, -tolerance, -width, ...) apply as for shaper.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/shaper/internal/app"
	"github.com/Faultbox/shaper/internal/config"
	"github.com/Faultbox/shaper/internal/logger"
	"github.com/Faultbox/shaper/internal/render"
	"github.com/Faultbox/shaper/internal/script"
)

var (
	flagScript = flag.String("script", "", "Gesture script to replay (required)")
	flagOut    = flag.String("out", "out.png", "Output file; .png or .pdf")
	flagMargin = flag.Float64("margin", render.DefaultPDFOptions().Margin, "PDF page margin in points")
)

func main() {
	config.ParseFlags()

	if *flagScript == "" {
		fmt.Fprintln(os.Stderr, "Usage: shaperender -script <file.yaml> [-out <file.png|file.pdf>]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Error("render failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	s, err := script.Load(*flagScript)
	if err != nil {
		return err
	}

	a, err := app.New(cfg)
	if err != nil {
		return err
	}
	frames, err := s.Run(a, cfg.Tools.DeadZone)
	if err != nil {
		return fmt.Errorf("replay: %w", err)
	}
	logger.Info("script replayed",
		zap.String("script", *flagScript),
		zap.Int("frames", frames),
		zap.Int("shapes", a.Canvas().Doc.Len()),
	)

	switch ext := strings.ToLower(filepath.Ext(*flagOut)); ext {
	case ".png":
		opts := render.Options{Hover: a.Hover()}
		if r, ok := a.Marquee(); ok {
			opts.Marquee = &r
		}
		sc := render.Build(a.Canvas(), opts)
		err = render.SavePNG(*flagOut, sc, cfg.Window.Width, cfg.Window.Height, config.Color(cfg.Window.Background))
	case ".pdf":
		opts := render.DefaultPDFOptions()
		opts.Margin = *flagMargin
		err = render.SavePDF(*flagOut, a.Canvas().Doc, opts)
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}
	if err != nil {
		return err
	}

	logger.Info("exported", zap.String("path", *flagOut))
	return nil
}
