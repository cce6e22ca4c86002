package tools

import (
	"github.com/gogpu/gg"

	"github.com/Faultbox/shaper/internal/canvas"
	"github.com/Faultbox/shaper/internal/edit"
	"github.com/Faultbox/shaper/internal/input"
	"github.com/Faultbox/shaper/internal/picking"
)

// Selection selects and moves whole shapes.
//
// A drag that starts on a curve moves that shape. Any other drag stays
// inert until it covers the drag threshold and then becomes a marquee.
// Holding shift forces a marquee.
type Selection struct {
	active  bool
	start   gg.Point // world
	current gg.Point // world
	body    *picking.ShapeBody
	pin     pin
	marquee bool
	moving  bool
	dragged bool
}

func NewSelection() *Selection { return &Selection{} }

func (*Selection) Kind() Kind { return KindSelection }

func (s *Selection) HandleInput(f *input.Frame, c *canvas.Canvas) {
	zoomOnScroll(f, c)

	if f.DragStarted {
		s.begin(f, c)
	}
	if f.Dragging && s.active {
		s.drag(c.ScreenToWorld(f.Pointer), c)
	}
	if f.DragStopped && s.active {
		if !s.dragged && s.body == nil {
			c.Selection.ClearShapes()
		}
		s.reset()
	}
	if f.Clicked {
		if cs, ok := c.HitTest(c.ScreenToWorld(f.Pointer)).(*picking.CurveSegment); ok {
			c.Selection.SelectSingleShape(cs.Shape)
		} else {
			c.Selection.ClearShapes()
		}
	}
}

func (s *Selection) begin(f *input.Frame, c *canvas.Canvas) {
	world := c.ScreenToWorld(f.Origin)
	s.reset()
	s.active = true
	s.start, s.current = world, world

	if f.Shift {
		s.marquee = true
		return
	}
	if cs, ok := c.HitTest(world).(*picking.CurveSegment); ok {
		s.body = picking.BodyOf(c.Doc, cs.Shape)
		s.pin = pinShape(c, cs.Shape)
		s.moving = true
		c.Selection.SelectSingleShape(cs.Shape)
	}
}

func (s *Selection) drag(world gg.Point, c *canvas.Canvas) {
	s.current = world
	if !s.dragged && world.Distance(s.start) > c.DragThreshold() {
		s.dragged = true
	}
	if !s.dragged {
		return
	}
	if s.moving {
		if s.pin.held(c) {
			edit.ApplyDrag(c.Doc, s.body, world.Sub(s.start))
		} else {
			s.moving = false
			s.body = nil
		}
		return
	}
	s.marquee = true
	c.Selection.SelectShapesInRect(c.Doc, gg.NewRect(s.start, world))
}

func (s *Selection) reset() {
	*s = Selection{}
}

func (s *Selection) Cancel(*canvas.Canvas) {
	s.reset()
}

func (s *Selection) Marquee() (gg.Rect, bool) {
	if !s.active || !s.marquee {
		return gg.Rect{}, false
	}
	return gg.NewRect(s.start, s.current), true
}

// Hover outlines the shape under the pointer while nothing is selected.
func (s *Selection) Hover(f *input.Frame, c *canvas.Canvas) Hover {
	if s.active || !f.Hovered || c.Selection.ShapeCount() > 0 {
		return Hover{}
	}
	switch h := c.HitTest(c.ScreenToWorld(f.Pointer)).(type) {
	case *picking.CurveSegment:
		return Hover{Shape: h.Shape, OnShape: true}
	case *picking.ShapeBody:
		return Hover{Shape: h.Shape, OnShape: true}
	}
	return Hover{}
}
