package tools

import (
	"github.com/gogpu/gg"

	"github.com/Faultbox/shaper/internal/canvas"
	"github.com/Faultbox/shaper/internal/edit"
	"github.com/Faultbox/shaper/internal/input"
	"github.com/Faultbox/shaper/internal/picking"
)

// Curvature drags interior handles only, so it reshapes a segment without
// moving its anchors.
type Curvature struct {
	hit   *picking.ControlPoint
	pin   pin
	start gg.Point
}

func NewCurvature() *Curvature { return &Curvature{} }

func (*Curvature) Kind() Kind { return KindCurvature }

func (cv *Curvature) HandleInput(f *input.Frame, c *canvas.Canvas) {
	if f.DragStarted {
		world := c.ScreenToWorld(f.Origin)
		cv.hit = nil
		if h, ok := c.HitTest(world).(*picking.ControlPoint); ok && h.IsHandle() {
			cv.hit = h
			cv.pin = pinShape(c, h.Shape)
			cv.start = world
		}
	}
	if f.Dragging && cv.hit != nil {
		if cv.pin.held(c) {
			edit.ApplyDrag(c.Doc, cv.hit, c.ScreenToWorld(f.Pointer).Sub(cv.start))
		} else {
			cv.hit = nil
		}
	}
	if f.DragStopped {
		cv.hit = nil
	}
}

func (cv *Curvature) Cancel(*canvas.Canvas) {
	cv.hit = nil
}

// Hovered returns the handle under the pointer, if any.
func (cv *Curvature) Hovered(f *input.Frame, c *canvas.Canvas) (*picking.ControlPoint, bool) {
	if !f.Hovered {
		return nil, false
	}
	h, ok := c.HitTest(c.ScreenToWorld(f.Pointer)).(*picking.ControlPoint)
	if !ok || !h.IsHandle() {
		return nil, false
	}
	return h, true
}

// Hover highlights the handle under the pointer.
func (cv *Curvature) Hover(f *input.Frame, c *canvas.Canvas) Hover {
	h, ok := cv.Hovered(f, c)
	if !ok {
		return Hover{}
	}
	return Hover{Point: h.PointID(), OnPoint: true}
}
