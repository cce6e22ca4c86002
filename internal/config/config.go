// Package config handles configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Config holds all canvas settings.
type Config struct {
	Canvas  CanvasConfig  `yaml:"canvas"`
	View    ViewConfig    `yaml:"view"`
	Handles HandlesConfig `yaml:"handles"`
	HitTest HitTestConfig `yaml:"hit_test"`
	Tools   ToolsConfig   `yaml:"tools"`
	Window  WindowConfig  `yaml:"window"`
	Logging LoggingConfig `yaml:"logging"`
}

// CanvasConfig holds drawing settings.
type CanvasConfig struct {
	Tolerance          float64 `yaml:"tolerance"`       // curve fitting error, world units
	Thickness          float64 `yaml:"thickness"`       // stroke width of new shapes
	StrokeColor        string  `yaml:"stroke_color"`    // hex
	SampleDistance     float64 `yaml:"sample_distance"` // screen pixels between samples
	ShowHandles        bool    `yaml:"show_handles"`
	ShowOriginalStroke bool    `yaml:"show_original_stroke"`
}

// ViewConfig holds zoom limits.
type ViewConfig struct {
	MinZoom         float64 `yaml:"min_zoom"`
	MaxZoom         float64 `yaml:"max_zoom"`
	ZoomSensitivity float64 `yaml:"zoom_sensitivity"`
}

// HandlesConfig holds the look of control points and handle arms.
type HandlesConfig struct {
	Radius           float64 `yaml:"radius"`
	ArmThickness     float64 `yaml:"arm_thickness"`
	OverlayThickness float64 `yaml:"overlay_thickness"`
	PointColor       string  `yaml:"point_color"`
	ControlColor     string  `yaml:"control_color"`
	BorderColor      string  `yaml:"border_color"`
	SelectedColor    string  `yaml:"selected_color"`
	ArmColor         string  `yaml:"arm_color"`
}

// HitTestConfig holds hit radii in screen pixels.
type HitTestConfig struct {
	PointRadius float64 `yaml:"point_radius"`
	CurveMargin float64 `yaml:"curve_margin"`
}

// ToolsConfig holds tool behaviour.
type ToolsConfig struct {
	Default       string  `yaml:"default"`
	DragThreshold float64 `yaml:"drag_threshold"` // screen pixels
	DeadZone      float64 `yaml:"dead_zone"`      // screen pixels before a press becomes a drag
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	VSync      bool   `yaml:"vsync"`
	Background string `yaml:"background"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Canvas: CanvasConfig{
			Tolerance:      10,
			Thickness:      10,
			StrokeColor:    "#000000",
			SampleDistance: 2,
		},
		View: ViewConfig{
			MinZoom:         0.1,
			MaxZoom:         16,
			ZoomSensitivity: 0.009,
		},
		Handles: HandlesConfig{
			Radius:           4,
			ArmThickness:     1.5,
			OverlayThickness: 1,
			PointColor:       "#FFFFFF",
			ControlColor:     "#FFFFFF",
			BorderColor:      "#0A76F1",
			SelectedColor:    "#0A76F1",
			ArmColor:         "#0A76F1",
		},
		HitTest: HitTestConfig{
			PointRadius: 6,
			CurveMargin: 3,
		},
		Tools: ToolsConfig{
			Default:       "drawing",
			DragThreshold: 5,
			DeadZone:      3,
		},
		Window: WindowConfig{
			Width:      1280,
			Height:     720,
			VSync:      true,
			Background: "#FFFFFF",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate reports settings that would break the canvas invariants.
func (c *Config) Validate() error {
	var errs []error
	if c.View.MinZoom <= 0 {
		errs = append(errs, fmt.Errorf("view.min_zoom must be positive, got %v", c.View.MinZoom))
	}
	if c.View.MinZoom > c.View.MaxZoom {
		errs = append(errs, fmt.Errorf("view.min_zoom %v exceeds view.max_zoom %v", c.View.MinZoom, c.View.MaxZoom))
	}
	if c.View.ZoomSensitivity <= 0 {
		errs = append(errs, fmt.Errorf("view.zoom_sensitivity must be positive, got %v", c.View.ZoomSensitivity))
	}
	if c.Canvas.Tolerance <= 0 {
		errs = append(errs, fmt.Errorf("canvas.tolerance must be positive, got %v", c.Canvas.Tolerance))
	}
	if c.Canvas.Thickness <= 0 {
		errs = append(errs, fmt.Errorf("canvas.thickness must be positive, got %v", c.Canvas.Thickness))
	}
	if c.Canvas.SampleDistance < 0 {
		errs = append(errs, fmt.Errorf("canvas.sample_distance must not be negative, got %v", c.Canvas.SampleDistance))
	}
	if c.Tools.DragThreshold < 0 {
		errs = append(errs, fmt.Errorf("tools.drag_threshold must not be negative, got %v", c.Tools.DragThreshold))
	}
	colors := map[string]string{
		"canvas.stroke_color":    c.Canvas.StrokeColor,
		"handles.point_color":    c.Handles.PointColor,
		"handles.control_color":  c.Handles.ControlColor,
		"handles.border_color":   c.Handles.BorderColor,
		"handles.selected_color": c.Handles.SelectedColor,
		"handles.arm_color":      c.Handles.ArmColor,
		"window.background":      c.Window.Background,
	}
	for _, key := range sortedKeys(colors) {
		if !IsHexColor(colors[key]) {
			errs = append(errs, fmt.Errorf("%s: invalid hex color %q", key, colors[key]))
		}
	}
	return errors.Join(errs...)
}
