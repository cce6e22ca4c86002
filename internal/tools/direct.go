package tools

import (
	"github.com/gogpu/gg"

	"github.com/Faultbox/shaper/internal/canvas"
	"github.com/Faultbox/shaper/internal/edit"
	"github.com/Faultbox/shaper/internal/input"
	"github.com/Faultbox/shaper/internal/picking"
	"github.com/Faultbox/shaper/internal/shape"
)

type pointOrigin struct {
	id  shape.PointID
	pos gg.Point
}

// DirectSelection selects and moves individual control points.
//
// Dragging a point moves every selected point by the same offset from
// where it was when the drag began. Shift toggles points in and out of the
// selection; shift-dragging an already selected point deselects it and
// turns the gesture into a marquee.
type DirectSelection struct {
	active  bool
	start   gg.Point // world
	current gg.Point // world
	marquee bool
	dragged bool
	origins []pointOrigin
}

func NewDirectSelection() *DirectSelection { return &DirectSelection{} }

func (*DirectSelection) Kind() Kind { return KindDirectSelection }

func (d *DirectSelection) HandleInput(f *input.Frame, c *canvas.Canvas) {
	if f.DragStarted {
		d.begin(f, c)
	}
	if f.Dragging && d.active {
		d.drag(c.ScreenToWorld(f.Pointer), c)
	}
	if f.DragStopped {
		d.reset()
	}
	if f.Clicked {
		d.click(f, c)
	}
}

func (d *DirectSelection) begin(f *input.Frame, c *canvas.Canvas) {
	world := c.ScreenToWorld(f.Origin)
	d.reset()
	d.active = true
	d.start, d.current = world, world

	cp, ok := c.HitTest(world).(*picking.ControlPoint)
	if !ok {
		if !f.Shift {
			c.Selection.ClearPoints()
		}
		d.marquee = true
		return
	}

	id := cp.PointID()
	switch {
	case f.Shift && c.Selection.HasPoint(id):
		c.Selection.RemovePoint(id)
		d.marquee = true
		return
	case f.Shift:
		c.Selection.AddPoint(id)
	case c.Selection.PointCount() != 1 || !c.Selection.HasPoint(id):
		c.Selection.SelectPointAndShape(id)
	}
	for _, sel := range c.Selection.Points() {
		d.origins = append(d.origins, pointOrigin{id: sel, pos: edit.PointPosition(c.Doc, sel)})
	}
}

func (d *DirectSelection) drag(world gg.Point, c *canvas.Canvas) {
	d.current = world
	if !d.dragged && world.Distance(d.start) > c.DragThreshold() {
		d.dragged = true
	}
	if !d.dragged {
		return
	}
	if d.marquee {
		c.Selection.SelectPointsInRect(c.Doc, gg.NewRect(d.start, world))
		return
	}
	for _, o := range d.origins {
		if !c.Doc.ValidPoint(o.id) {
			d.origins = d.origins[:0]
			return
		}
	}
	delta := world.Sub(d.start)
	for _, o := range d.origins {
		edit.MovePointTo(c.Doc, o.id, o.pos.Add(delta))
	}
}

func (d *DirectSelection) click(f *input.Frame, c *canvas.Canvas) {
	cp, ok := c.HitTest(c.ScreenToWorld(f.Pointer)).(*picking.ControlPoint)
	switch {
	case ok && f.Shift:
		c.Selection.TogglePoint(cp.PointID())
	case ok:
		c.Selection.SelectPointAndShape(cp.PointID())
	case !f.Shift:
		c.Selection.ClearPoints()
	}
}

// Hover highlights the control point under the pointer.
func (d *DirectSelection) Hover(f *input.Frame, c *canvas.Canvas) Hover {
	if !f.Hovered {
		return Hover{}
	}
	cp := c.HitTestPoints(c.ScreenToWorld(f.Pointer))
	if cp == nil {
		return Hover{}
	}
	return Hover{Point: cp.PointID(), OnPoint: true}
}

func (d *DirectSelection) reset() {
	d.active, d.marquee, d.dragged = false, false, false
	d.origins = d.origins[:0]
}

func (d *DirectSelection) Cancel(*canvas.Canvas) {
	d.reset()
}

func (d *DirectSelection) Marquee() (gg.Rect, bool) {
	if !d.active || !d.marquee {
		return gg.Rect{}, false
	}
	return gg.NewRect(d.start, d.current), true
}
