// Package app is the top-level application object: it owns the canvas and
// the tool slots, and exposes the settings surface to hosts.
package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/shaper/internal/canvas"
	"github.com/Faultbox/shaper/internal/config"
	"github.com/Faultbox/shaper/internal/input"
	"github.com/Faultbox/shaper/internal/logger"
	"github.com/Faultbox/shaper/internal/tools"
	"github.com/gogpu/gg"
)

// toolKeys maps the number row to tools. When several are pressed in one
// frame the last one wins.
var toolKeys = []struct {
	key  input.Key
	kind tools.Kind
}{
	{input.Key1, tools.KindDrawing},
	{input.Key2, tools.KindPanning},
	{input.Key3, tools.KindEditing},
	{input.Key4, tools.KindSelection},
	{input.Key5, tools.KindDirectSelection},
	{input.Key6, tools.KindCurvature},
}

// App is the canvas plus its tools.
type App struct {
	canvas *canvas.Canvas
	tools  *tools.Manager
	frames uint64
	log    *zap.Logger

	// pointer is the hover state of the latest frame.
	pointer input.Frame
}

// New creates an application from validated configuration.
func New(cfg *config.Config) (*App, error) {
	initial, err := tools.ParseKind(cfg.Tools.Default)
	if err != nil {
		return nil, fmt.Errorf("tools.default: %w", err)
	}

	a := &App{
		canvas: canvas.NewFromConfig(cfg),
		tools:  tools.NewDefaultManager(initial),
		log:    logger.Named("app"),
	}
	a.log.Info("app initialized",
		zap.Stringer("tool", initial),
		zap.Float64("tolerance", cfg.Canvas.Tolerance),
		zap.Float64("thickness", cfg.Canvas.Thickness),
	)
	return a, nil
}

// Update runs one frame: hotkeys first, then the active tool.
func (a *App) Update(f *input.Frame) {
	a.frames++
	a.pointer = input.Frame{Pointer: f.Pointer, Hovered: f.Hovered, Shift: f.Shift}
	for _, tk := range toolKeys {
		if f.KeyPressed(tk.key) {
			a.SelectTool(tk.kind)
		}
	}
	if f.KeyPressed(input.KeyHome) {
		a.ResetView()
	}
	if f.KeyPressed(input.KeyEscape) {
		a.canvas.Selection.Clear()
	}
	a.tools.Update(f, a.canvas)
}

// Canvas returns the canvas for read-only use by renderers.
func (a *App) Canvas() *canvas.Canvas { return a.canvas }

// Frames returns how many frames have been processed.
func (a *App) Frames() uint64 { return a.frames }

// ActiveTool returns the active tool.
func (a *App) ActiveTool() tools.Tool { return a.tools.Active() }

// SelectTool switches tools at the start of the next frame.
func (a *App) SelectTool(k tools.Kind) {
	a.tools.Change(k)
}

// Marquee returns the active tool's marquee rectangle in world space.
func (a *App) Marquee() (gg.Rect, bool) {
	if m, ok := a.tools.Active().(tools.Marquee); ok {
		return m.Marquee()
	}
	return gg.Rect{}, false
}

// Hover returns the active tool's pointer feedback for the latest frame.
func (a *App) Hover() tools.Hover {
	if h, ok := a.tools.Active().(tools.Hoverer); ok {
		return h.Hover(&a.pointer, a.canvas)
	}
	return tools.Hover{}
}

// Stroking reports whether the Drawing tool has a stroke in progress.
func (a *App) Stroking() bool {
	d, ok := a.tools.Active().(*tools.Drawing)
	return ok && d.Stroking()
}

func (a *App) SetTolerance(t float64)     { a.canvas.SetTolerance(t) }
func (a *App) SetThickness(t float64)     { a.canvas.SetThickness(t) }
func (a *App) SetStrokeColor(c gg.RGBA)   { a.canvas.SetStrokeColor(c) }
func (a *App) ApplyThicknessToAll()       { a.canvas.ApplyThicknessToAll() }
func (a *App) ApplyThicknessToSelection() { a.canvas.ApplyThicknessToSelection() }

func (a *App) SetShowHandles(v bool)        { a.canvas.Settings.ShowHandles = v }
func (a *App) SetShowOriginalStroke(v bool) { a.canvas.Settings.ShowOriginalStroke = v }

// ResetView restores zoom 1 and no pan.
func (a *App) ResetView() {
	a.canvas.Camera.Reset()
}

// ZoomPercent returns the zoom position within its range, 0 to 100.
func (a *App) ZoomPercent() float64 {
	return a.canvas.Camera.ZoomPercent()
}
