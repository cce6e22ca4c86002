// Package canvas ties the document, view transform and selection together
// with the settings the tools operate under.
package canvas

import (
	"github.com/gogpu/gg"
	"go.uber.org/zap"

	"github.com/Faultbox/shaper/internal/camera"
	"github.com/Faultbox/shaper/internal/config"
	"github.com/Faultbox/shaper/internal/logger"
	"github.com/Faultbox/shaper/internal/picking"
	"github.com/Faultbox/shaper/internal/selection"
	"github.com/Faultbox/shaper/internal/shape"
)

// Canvas is the mutable state one tool works on per frame.
type Canvas struct {
	Doc       *shape.Document
	Camera    *camera.Camera
	Selection *selection.Selection

	// Current receives samples while the Drawing tool is stroking.
	Current *shape.Shape

	Settings Settings

	log *zap.Logger
}

// New creates an empty canvas.
func New(settings Settings, cam *camera.Camera) *Canvas {
	return &Canvas{
		Doc:       shape.NewDocument(),
		Camera:    cam,
		Selection: selection.New(),
		Current:   shape.New(settings.Thickness, settings.StrokeColor),
		Settings:  settings,
		log:       logger.Named("canvas"),
	}
}

// NewFromConfig creates an empty canvas from validated configuration.
func NewFromConfig(cfg *config.Config) *Canvas {
	cam := camera.New(cfg.View.MinZoom, cfg.View.MaxZoom, cfg.View.ZoomSensitivity)
	return New(SettingsFromConfig(cfg), cam)
}

func (c *Canvas) ScreenToWorld(p gg.Point) gg.Point { return c.Camera.ScreenToWorld(p) }
func (c *Canvas) WorldToScreen(p gg.Point) gg.Point { return c.Camera.WorldToScreen(p) }

// ZoomAt zooms by a scroll delta around a screen position.
func (c *Canvas) ZoomAt(screen gg.Point, scroll float64) {
	c.Camera.ZoomAt(screen, scroll)
}

// Tolerance returns the hit radii at the current zoom.
func (c *Canvas) Tolerance() picking.Tolerance {
	return picking.NewTolerance(c.Settings.PointRadius, c.Settings.CurveMargin, c.Camera.Zoom)
}

// HitTest hit-tests a world position against the document.
func (c *Canvas) HitTest(world gg.Point) picking.Hit {
	return picking.HitTest(c.Doc, world, c.Tolerance())
}

// HitTestPoints hit-tests control points only.
func (c *Canvas) HitTestPoints(world gg.Point) *picking.ControlPoint {
	return picking.HitTestPoints(c.Doc, world, c.Tolerance())
}

// SampleDistance is the minimum world distance between stroke samples.
func (c *Canvas) SampleDistance() float64 {
	return c.Camera.ToWorldLength(c.Settings.SampleDistance)
}

// DragThreshold is the world distance a gesture must cover before it
// commits to a marquee or a move.
func (c *Canvas) DragThreshold() float64 {
	return c.Camera.ToWorldLength(c.Settings.DragThreshold)
}

// CommitCurrent fits the in-progress stroke and adds it as a new shape on
// top. It returns the new index, or false if there were no samples.
func (c *Canvas) CommitCurrent() (int, bool) {
	s := c.Current
	if len(s.CurrentStroke) == 0 {
		return -1, false
	}
	samples := len(s.CurrentStroke)
	s.FinalizeStroke(c.Settings.Tolerance)
	idx := c.Doc.Append(s)
	c.Current = shape.New(c.Settings.Thickness, c.Settings.StrokeColor)

	c.log.Debug("shape added",
		zap.Int("index", idx),
		zap.Stringer("id", s.ID),
		zap.Int("samples", samples),
		zap.Int("segments", len(s.Beziers)))
	return idx, true
}

// DiscardCurrent drops the in-progress stroke.
func (c *Canvas) DiscardCurrent() {
	c.Current.CurrentStroke = c.Current.CurrentStroke[:0]
}

// DeleteLastShape removes the topmost shape. Indices held by the selection
// may now be stale, so both selection sets are cleared.
func (c *Canvas) DeleteLastShape() bool {
	s := c.Doc.PopLast()
	if s == nil {
		return false
	}
	c.Selection.Clear()
	c.log.Debug("shape removed", zap.Stringer("id", s.ID), zap.Int("remaining", c.Doc.Len()))
	return true
}

// SetTolerance changes the fitting tolerance and refits every shape.
// Segment counts may change, so point selections that no longer resolve
// are dropped.
func (c *Canvas) SetTolerance(t float64) {
	if t <= 0 || t == c.Settings.Tolerance {
		return
	}
	c.Settings.Tolerance = t
	c.Doc.RefitAll(t)
	dropped := c.Selection.Prune(c.Doc)
	c.log.Debug("refit", zap.Float64("tolerance", t), zap.Int("shapes", c.Doc.Len()), zap.Int("dropped", dropped))
}

// SetThickness sets the thickness of shapes drawn from now on.
func (c *Canvas) SetThickness(t float64) {
	if t <= 0 {
		return
	}
	c.Settings.Thickness = t
	c.Current.Thickness = t
}

// SetStrokeColor sets the color of shapes drawn from now on.
func (c *Canvas) SetStrokeColor(col gg.RGBA) {
	c.Settings.StrokeColor = col
	c.Current.StrokeColor = col
}

// ApplyThicknessToSelection applies the current thickness to the selected
// shapes.
func (c *Canvas) ApplyThicknessToSelection() {
	for _, i := range c.Selection.Shapes() {
		c.Doc.At(i).Thickness = c.Settings.Thickness
	}
}

// ApplyThicknessToAll applies the current thickness to every shape.
func (c *Canvas) ApplyThicknessToAll() {
	for _, s := range c.Doc.Shapes() {
		s.Thickness = c.Settings.Thickness
	}
}
