package canvas

import (
	"github.com/gogpu/gg"

	"github.com/Faultbox/shaper/internal/config"
)

// HandleStyle is how control points and handle arms are drawn.
type HandleStyle struct {
	Radius           float64
	ArmThickness     float64
	OverlayThickness float64
	PointColor       gg.RGBA
	ControlColor     gg.RGBA
	BorderColor      gg.RGBA
	SelectedColor    gg.RGBA
	ArmColor         gg.RGBA
}

// Settings are the user-adjustable parameters the tools and renderers read.
// Lengths marked px are screen pixels and are divided by zoom before use.
type Settings struct {
	Tolerance          float64
	Thickness          float64
	StrokeColor        gg.RGBA
	SampleDistance     float64 // px
	ShowHandles        bool
	ShowOriginalStroke bool

	PointRadius   float64 // px
	CurveMargin   float64 // px
	DragThreshold float64 // px

	Handles HandleStyle
}

// SettingsFromConfig converts validated configuration into settings.
func SettingsFromConfig(cfg *config.Config) Settings {
	return Settings{
		Tolerance:          cfg.Canvas.Tolerance,
		Thickness:          cfg.Canvas.Thickness,
		StrokeColor:        config.Color(cfg.Canvas.StrokeColor),
		SampleDistance:     cfg.Canvas.SampleDistance,
		ShowHandles:        cfg.Canvas.ShowHandles,
		ShowOriginalStroke: cfg.Canvas.ShowOriginalStroke,
		PointRadius:        cfg.HitTest.PointRadius,
		CurveMargin:        cfg.HitTest.CurveMargin,
		DragThreshold:      cfg.Tools.DragThreshold,
		Handles: HandleStyle{
			Radius:           cfg.Handles.Radius,
			ArmThickness:     cfg.Handles.ArmThickness,
			OverlayThickness: cfg.Handles.OverlayThickness,
			PointColor:       config.Color(cfg.Handles.PointColor),
			ControlColor:     config.Color(cfg.Handles.ControlColor),
			BorderColor:      config.Color(cfg.Handles.BorderColor),
			SelectedColor:    config.Color(cfg.Handles.SelectedColor),
			ArmColor:         config.Color(cfg.Handles.ArmColor),
		},
	}
}

// DefaultSettings returns the settings of the default configuration.
func DefaultSettings() Settings {
	return SettingsFromConfig(config.Default())
}
