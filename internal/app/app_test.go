package app

import (
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/shaper/internal/config"
	"github.com/Faultbox/shaper/internal/input"
	"github.com/Faultbox/shaper/internal/shape"
	"github.com/Faultbox/shaper/internal/tools"
)

func newApp(t *testing.T) *App {
	t.Helper()
	a, err := New(config.Default())
	require.NoError(t, err)
	return a
}

func keyFrame(k input.Key) *input.Frame {
	return &input.Frame{Keys: []input.KeyEvent{{Key: k, Pressed: true}}}
}

func stroke(a *App, pts ...gg.Point) {
	a.Update(&input.Frame{Pointer: pts[0], Origin: pts[0], Hovered: true, DragStarted: true, Dragging: true})
	for _, p := range pts[1:] {
		a.Update(&input.Frame{Pointer: p, Hovered: true, Dragging: true})
	}
	a.Update(&input.Frame{Pointer: pts[len(pts)-1], Hovered: true, DragStopped: true})
}

func TestNewUsesDefaultTool(t *testing.T) {
	a := newApp(t)
	assert.Equal(t, tools.KindDrawing, a.ActiveTool().Kind())

	cfg := config.Default()
	cfg.Tools.Default = "curvature"
	a, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, tools.KindCurvature, a.ActiveTool().Kind())
}

func TestNewRejectsUnknownTool(t *testing.T) {
	cfg := config.Default()
	cfg.Tools.Default = "lasso"
	_, err := New(cfg)
	assert.Error(t, err)
}

func TestHotkeysSelectTools(t *testing.T) {
	a := newApp(t)
	tests := []struct {
		key  input.Key
		want tools.Kind
	}{
		{input.Key2, tools.KindPanning},
		{input.Key3, tools.KindEditing},
		{input.Key4, tools.KindSelection},
		{input.Key5, tools.KindDirectSelection},
		{input.Key6, tools.KindCurvature},
		{input.Key1, tools.KindDrawing},
	}
	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			a.Update(keyFrame(tt.key))
			assert.Equal(t, tt.want, a.ActiveTool().Kind())
		})
	}
}

func TestRepeatedKeyDoesNotSwitch(t *testing.T) {
	a := newApp(t)
	a.Update(&input.Frame{Keys: []input.KeyEvent{{Key: input.Key4, Pressed: true, Repeat: true}}})
	assert.Equal(t, tools.KindDrawing, a.ActiveTool().Kind())
}

func TestDrawThenSelect(t *testing.T) {
	a := newApp(t)
	stroke(a, gg.Pt(0, 0), gg.Pt(20, 0), gg.Pt(40, 0), gg.Pt(60, 0))
	require.Equal(t, 1, a.Canvas().Doc.Len())
	assert.False(t, a.Stroking())

	s := shape.New(2, gg.Black)
	s.Beziers = []gg.CubicBez{{P0: gg.Pt(0, 100), P1: gg.Pt(30, 100), P2: gg.Pt(60, 100), P3: gg.Pt(90, 100)}}
	idx := a.Canvas().Doc.Append(s)

	a.Update(keyFrame(input.Key4))
	a.Update(&input.Frame{Pointer: gg.Pt(15, 101), Hovered: true, Clicked: true})
	assert.True(t, a.Canvas().Selection.HasShape(idx))

	a.Update(keyFrame(input.KeyEscape))
	assert.Equal(t, 0, a.Canvas().Selection.ShapeCount())
}

func TestSwitchMidStrokeCommits(t *testing.T) {
	a := newApp(t)
	a.Update(&input.Frame{Pointer: gg.Pt(0, 0), Origin: gg.Pt(0, 0), Hovered: true, DragStarted: true, Dragging: true})
	a.Update(&input.Frame{Pointer: gg.Pt(10, 0), Hovered: true, Dragging: true})
	a.Update(&input.Frame{Pointer: gg.Pt(20, 0), Hovered: true, Dragging: true})
	assert.True(t, a.Stroking())

	a.SelectTool(tools.KindPanning)
	a.Update(&input.Frame{Pointer: gg.Pt(30, 0), Hovered: true, Dragging: true})
	assert.Equal(t, 1, a.Canvas().Doc.Len())
	assert.False(t, a.Stroking())
}

func TestResetViewHotkey(t *testing.T) {
	a := newApp(t)
	a.Update(&input.Frame{Pointer: gg.Pt(100, 100), Hovered: true, Scroll: 120})
	require.Greater(t, a.Canvas().Camera.Zoom, 1.0)

	a.Update(keyFrame(input.KeyHome))
	assert.Equal(t, 1.0, a.Canvas().Camera.Zoom)
	assert.Equal(t, gg.Point{}, a.Canvas().Camera.Pan)
}

func TestSettingsSurface(t *testing.T) {
	a := newApp(t)
	a.SetShowHandles(false)
	a.SetShowOriginalStroke(true)
	assert.False(t, a.Canvas().Settings.ShowHandles)
	assert.True(t, a.Canvas().Settings.ShowOriginalStroke)

	stroke(a, gg.Pt(0, 0), gg.Pt(20, 0), gg.Pt(40, 0))
	a.SetThickness(4)
	a.ApplyThicknessToAll()
	assert.Equal(t, 4.0, a.Canvas().Doc.At(0).Thickness)
}

func TestMarqueeFollowsActiveTool(t *testing.T) {
	a := newApp(t)
	_, ok := a.Marquee()
	assert.False(t, ok)

	a.SelectTool(tools.KindSelection)
	a.Update(&input.Frame{Pointer: gg.Pt(200, 200), Origin: gg.Pt(200, 200), Hovered: true, DragStarted: true, Dragging: true})
	a.Update(&input.Frame{Pointer: gg.Pt(260, 240), Hovered: true, Dragging: true})
	r, ok := a.Marquee()
	require.True(t, ok)
	assert.Equal(t, gg.Pt(200, 200), r.Min)
	assert.Equal(t, gg.Pt(260, 240), r.Max)
}

func TestHoverFollowsActiveTool(t *testing.T) {
	a := newApp(t)
	a.Update(&input.Frame{Pointer: gg.Pt(10, 10), Hovered: true})
	assert.Equal(t, tools.Hover{Pen: true, Pointer: gg.Pt(10, 10)}, a.Hover())

	a.Update(keyFrame(input.Key2))
	assert.Equal(t, tools.Hover{}, a.Hover(), "panning has no hover feedback")

	s := shape.New(2, gg.Black)
	s.Beziers = []gg.CubicBez{{P0: gg.Pt(0, 100), P1: gg.Pt(20, 100), P2: gg.Pt(40, 100), P3: gg.Pt(60, 100)}}
	a.Canvas().Doc.Append(s)

	a.Update(keyFrame(input.Key5))
	a.Update(&input.Frame{Pointer: gg.Pt(21, 101), Hovered: true})
	h := a.Hover()
	require.True(t, h.OnPoint)
	assert.Equal(t, shape.PointID{Shape: 0, Segment: 0, Ctrl: 1}, h.Point)
}
