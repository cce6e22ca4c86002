package tools

import (
	"github.com/gogpu/gg"

	"github.com/Faultbox/shaper/internal/canvas"
	"github.com/Faultbox/shaper/internal/config"
	"github.com/Faultbox/shaper/internal/input"
	"github.com/Faultbox/shaper/internal/shape"
)

func pointID(s, seg, ctrl int) shape.PointID {
	return shape.PointID{Shape: s, Segment: seg, Ctrl: ctrl}
}

// newCanvas returns a canvas at zoom 1 and no pan, so screen and world
// coordinates coincide.
func newCanvas() *canvas.Canvas {
	return canvas.NewFromConfig(config.Default())
}

func addShape(c *canvas.Canvas, segs ...gg.CubicBez) int {
	s := shape.New(2, gg.Black)
	s.Beziers = segs
	return c.Doc.Append(s)
}

func line(a, b gg.Point) gg.CubicBez {
	d := b.Sub(a)
	return gg.CubicBez{P0: a, P1: a.Add(d.Mul(1.0 / 3)), P2: a.Add(d.Mul(2.0 / 3)), P3: b}
}

func start(p gg.Point) *input.Frame {
	return &input.Frame{Pointer: p, Hovered: true, Origin: p, DragStarted: true, Dragging: true}
}

func move(p gg.Point) *input.Frame {
	return &input.Frame{Pointer: p, Hovered: true, Dragging: true}
}

func stop(p gg.Point) *input.Frame {
	return &input.Frame{Pointer: p, Hovered: true, DragStopped: true}
}

func click(p gg.Point) *input.Frame {
	return &input.Frame{Pointer: p, Hovered: true, Clicked: true}
}

func shifted(f *input.Frame) *input.Frame {
	f.Shift = true
	return f
}

// drag feeds a full drag through pts to t.
func drag(t Tool, c *canvas.Canvas, pts ...gg.Point) {
	t.HandleInput(start(pts[0]), c)
	for _, p := range pts[1:] {
		t.HandleInput(move(p), c)
	}
	t.HandleInput(stop(pts[len(pts)-1]), c)
}
