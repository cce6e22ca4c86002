package tools

import (
	"github.com/gogpu/gg"

	"github.com/Faultbox/shaper/internal/canvas"
	"github.com/Faultbox/shaper/internal/edit"
	"github.com/Faultbox/shaper/internal/input"
	"github.com/Faultbox/shaper/internal/picking"
)

// Editing drags a single control point or curve segment. Shape bodies are
// not draggable with this tool.
type Editing struct {
	hit   picking.Hit
	pin   pin
	start gg.Point
}

func NewEditing() *Editing { return &Editing{} }

func (*Editing) Kind() Kind { return KindEditing }

func (e *Editing) HandleInput(f *input.Frame, c *canvas.Canvas) {
	zoomOnScroll(f, c)

	if f.DragStarted {
		world := c.ScreenToWorld(f.Origin)
		e.start = world
		switch h := c.HitTest(world).(type) {
		case *picking.ControlPoint, *picking.CurveSegment:
			e.hit = h
			e.pin = pinShape(c, h.ShapeIndex())
		default:
			e.hit = nil
		}
	}
	if f.Dragging && e.hit != nil {
		if e.pin.held(c) {
			edit.ApplyDrag(c.Doc, e.hit, c.ScreenToWorld(f.Pointer).Sub(e.start))
		} else {
			e.hit = nil
		}
	}
	if f.DragStopped {
		e.hit = nil
	}
}

func (e *Editing) Cancel(*canvas.Canvas) {
	e.hit = nil
}
