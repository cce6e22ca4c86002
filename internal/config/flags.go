package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagTool      = flag.String("tool", "", "Initial tool")
	flagTolerance = flag.Float64("tolerance", 0, "Curve fitting tolerance")
	flagThickness = flag.Float64("thickness", 0, "Stroke thickness of new shapes")
	flagHandles   = flag.Bool("handles", false, "Show control points and handle arms")
	flagWidth     = flag.Int("width", 0, "Window width")
	flagHeight    = flag.Int("height", 0, "Window height")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagTool != "" {
		cfg.Tools.Default = *flagTool
	}
	if *flagTolerance > 0 {
		cfg.Canvas.Tolerance = *flagTolerance
	}
	if *flagThickness > 0 {
		cfg.Canvas.Thickness = *flagThickness
	}
	if *flagHandles {
		cfg.Canvas.ShowHandles = true
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
}
