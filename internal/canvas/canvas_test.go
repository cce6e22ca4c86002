package canvas

import (
	"math"
	"testing"

	"github.com/gogpu/gg"

	"github.com/Faultbox/shaper/internal/config"
	"github.com/Faultbox/shaper/internal/picking"
	"github.com/Faultbox/shaper/internal/shape"
)

func newCanvas() *Canvas {
	return NewFromConfig(config.Default())
}

func stroke(c *Canvas, pts ...gg.Point) {
	for _, p := range pts {
		c.Current.RecordSample(p, 0)
	}
}

func TestSettingsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Canvas.StrokeColor = "#00FF00"
	cfg.Tools.DragThreshold = 8

	s := SettingsFromConfig(cfg)
	if s.StrokeColor != gg.RGB(0, 1, 0) {
		t.Errorf("expected green, got %+v", s.StrokeColor)
	}
	if s.DragThreshold != 8 {
		t.Errorf("expected drag threshold 8, got %v", s.DragThreshold)
	}
	if s.Handles.BorderColor != gg.Hex("#0A76F1") {
		t.Errorf("unexpected border color %+v", s.Handles.BorderColor)
	}
}

func TestCommitCurrent(t *testing.T) {
	c := newCanvas()
	if _, ok := c.CommitCurrent(); ok {
		t.Error("expected empty stroke not to commit")
	}

	first := c.Current
	stroke(c, gg.Pt(0, 0), gg.Pt(10, 0), gg.Pt(20, 0), gg.Pt(30, 0))
	idx, ok := c.CommitCurrent()
	if !ok || idx != 0 {
		t.Fatalf("expected shape 0, got %d (ok=%v)", idx, ok)
	}
	if c.Doc.At(0) != first {
		t.Error("expected committed shape to be the previous current shape")
	}
	if len(first.Beziers) != 1 {
		t.Errorf("expected 1 segment, got %d", len(first.Beziers))
	}
	if c.Current == first || len(c.Current.CurrentStroke) != 0 {
		t.Error("expected a fresh current shape")
	}
	if c.Current.ID == first.ID {
		t.Error("expected a new shape ID")
	}
}

func TestDeleteLastShapeClearsSelection(t *testing.T) {
	c := newCanvas()
	stroke(c, gg.Pt(0, 0), gg.Pt(30, 0))
	c.CommitCurrent()
	stroke(c, gg.Pt(0, 10), gg.Pt(30, 10))
	c.CommitCurrent()

	c.Selection.SelectPointAndShape(shape.PointID{Shape: 1, Segment: 0, Ctrl: 0})
	c.Selection.ToggleShape(0)

	if !c.DeleteLastShape() {
		t.Fatal("expected a shape to be removed")
	}
	if c.Doc.Len() != 1 {
		t.Errorf("expected 1 shape, got %d", c.Doc.Len())
	}
	if c.Selection.ShapeCount() != 0 || c.Selection.PointCount() != 0 {
		t.Error("expected selection cleared")
	}

	c.DeleteLastShape()
	if c.DeleteLastShape() {
		t.Error("expected delete on empty document to report false")
	}
}

func TestSetToleranceRefits(t *testing.T) {
	c := newCanvas()
	// A sine wave needs more segments at a tight tolerance.
	var pts []gg.Point
	for i := 0; i <= 120; i++ {
		x := float64(i) * 2.5
		pts = append(pts, gg.Pt(x, 40*math.Sin(x/25)))
	}
	stroke(c, pts...)
	c.CommitCurrent()
	loose := len(c.Doc.At(0).Beziers)

	c.Selection.AddPoint(shape.PointID{Shape: 0, Segment: 500, Ctrl: 0})
	c.SetTolerance(0.5)
	tight := len(c.Doc.At(0).Beziers)

	if tight <= loose {
		t.Errorf("expected more segments at tolerance 0.5 (%d) than at 10 (%d)", tight, loose)
	}
	if c.Settings.Tolerance != 0.5 {
		t.Errorf("expected tolerance 0.5, got %v", c.Settings.Tolerance)
	}
	if c.Selection.PointCount() != 0 {
		t.Error("expected stale point to be pruned")
	}

	c.SetTolerance(-1)
	if c.Settings.Tolerance != 0.5 {
		t.Error("expected non-positive tolerance to be ignored")
	}
}

func TestThickness(t *testing.T) {
	c := newCanvas()
	stroke(c, gg.Pt(0, 0), gg.Pt(30, 0))
	c.CommitCurrent()
	stroke(c, gg.Pt(0, 10), gg.Pt(30, 10))
	c.CommitCurrent()

	c.SetThickness(3)
	if c.Current.Thickness != 3 {
		t.Errorf("expected current thickness 3, got %v", c.Current.Thickness)
	}
	if c.Doc.At(0).Thickness != 10 {
		t.Error("expected existing shapes untouched")
	}

	c.Selection.ToggleShape(1)
	c.ApplyThicknessToSelection()
	if c.Doc.At(0).Thickness != 10 || c.Doc.At(1).Thickness != 3 {
		t.Errorf("expected only shape 1 updated, got %v and %v", c.Doc.At(0).Thickness, c.Doc.At(1).Thickness)
	}

	c.ApplyThicknessToAll()
	if c.Doc.At(0).Thickness != 3 {
		t.Errorf("expected all shapes updated, got %v", c.Doc.At(0).Thickness)
	}
}

func TestZoomScaledDistances(t *testing.T) {
	c := newCanvas()
	c.Camera.SetZoom(2)

	if got := c.SampleDistance(); got != 1 {
		t.Errorf("expected sample distance 1, got %v", got)
	}
	if got := c.DragThreshold(); got != 2.5 {
		t.Errorf("expected drag threshold 2.5, got %v", got)
	}
	if got := c.Tolerance(); got != (picking.Tolerance{Point: 3, CurveMargin: 1.5}) {
		t.Errorf("unexpected tolerance %+v", got)
	}
}

func TestHitTestUsesWorldTolerance(t *testing.T) {
	c := newCanvas()
	stroke(c, gg.Pt(0, 0), gg.Pt(10, 0), gg.Pt(20, 0), gg.Pt(30, 0))
	c.CommitCurrent()

	// 5 world units from the start anchor: inside 6px at zoom 1,
	// outside at zoom 4 where the radius is 1.5 world units.
	p := gg.Pt(0, -5)
	if _, ok := c.HitTest(p).(*picking.ControlPoint); !ok {
		t.Error("expected control point hit at zoom 1")
	}
	c.Camera.SetZoom(4)
	if c.HitTestPoints(p) != nil {
		t.Error("expected no point hit at zoom 4")
	}
}
