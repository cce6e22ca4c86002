// Package host runs the interactive loop: SDL input in, canvas frames out.
package host

import (
	"fmt"
	"image"
	"time"

	"github.com/gogpu/gg"
	"go.uber.org/zap"

	"github.com/Faultbox/shaper/internal/app"
	"github.com/Faultbox/shaper/internal/config"
	"github.com/Faultbox/shaper/internal/input"
	"github.com/Faultbox/shaper/internal/input/sdlinput"
	"github.com/Faultbox/shaper/internal/logger"
	"github.com/Faultbox/shaper/internal/render"
	"github.com/Faultbox/shaper/internal/window"
)

const windowTitle = "Shaper"

// Host owns the window and drives an App once per frame.
type Host struct {
	app       *app.App
	window    *window.Window
	presenter *window.Presenter
	tracker   *input.Tracker
	pump      *sdlinput.Pump

	background gg.RGBA
	running    bool
	log        *zap.Logger
}

// New opens the window for a.
func New(cfg *config.Config, a *app.App) (*Host, error) {
	h := &Host{
		app:        a,
		tracker:    input.NewTracker(cfg.Tools.DeadZone),
		background: config.Color(cfg.Window.Background),
		log:        logger.Named("host"),
	}
	h.pump = sdlinput.New(h.tracker)

	var err error
	h.window, err = window.New(window.Config{
		Title:  windowTitle,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		VSync:  cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The presenter needs the GL context the window just created.
	h.presenter, err = window.NewPresenter()
	if err != nil {
		h.window.Close()
		return nil, fmt.Errorf("failed to create presenter: %w", err)
	}
	h.presenter.Viewport(h.window.DrawableSize())

	h.log.Info("host initialized")
	return h, nil
}

// Run loops until the window is closed.
func (h *Host) Run() error {
	h.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()
	title := ""
	dirty := true
	var lastPointer gg.Point
	lastHovered := false

	h.log.Info("starting main loop")

	for h.running {
		now := time.Now()
		dt := now.Sub(lastTime)
		lastTime = now

		// 1. Input
		if h.pump.Update() {
			h.running = false
			break
		}
		_, _, resized := h.pump.Resized()
		if resized {
			h.presenter.Viewport(h.window.DrawableSize())
		}

		// 2. Update
		f := h.tracker.Frame()
		h.app.Update(&f)

		// 3. Render; an idle frame with a still pointer reuses the last image.
		if dirty || resized || !f.Idle() || f.Pointer != lastPointer || f.Hovered != lastHovered {
			if err := h.render(); err != nil {
				return fmt.Errorf("render error: %w", err)
			}
			dirty = false
		} else {
			h.presenter.Draw()
		}
		lastPointer, lastHovered = f.Pointer, f.Hovered

		// 4. Present
		h.window.SwapBuffers()

		if t := h.title(); t != title {
			h.window.SetTitle(t)
			title = t
		}

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			h.log.Debug("fps", zap.Int("count", frameCount), zap.Duration("dt", dt))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}
	return nil
}

// Close releases the window and GPU resources.
func (h *Host) Close() {
	h.log.Info("closing host")

	if h.presenter != nil {
		h.presenter.Close()
	}
	if h.window != nil {
		h.window.Close()
	}
}

func (h *Host) render() error {
	opts := render.Options{Hover: h.app.Hover()}
	if r, ok := h.app.Marquee(); ok {
		opts.Marquee = &r
	}
	sc := render.Build(h.app.Canvas(), opts)

	w, hgt := h.window.Size()
	dc, err := render.Rasterize(sc, w, hgt, h.background)
	if err != nil {
		return err
	}
	img, ok := dc.Image().(*image.RGBA)
	if !ok {
		return fmt.Errorf("unexpected image type %T", dc.Image())
	}
	h.presenter.Present(img)
	return nil
}

func (h *Host) title() string {
	return fmt.Sprintf("%s | %s | %.0f%%", windowTitle, h.app.ActiveTool().Kind(), h.app.Canvas().Camera.Zoom*100)
}
