package tools

import (
	"github.com/Faultbox/shaper/internal/canvas"
	"github.com/Faultbox/shaper/internal/input"
)

// Drawing records freehand strokes into the canvas's current shape and
// commits each finished stroke as a new shape.
type Drawing struct {
	drawing bool
}

func NewDrawing() *Drawing { return &Drawing{} }

func (*Drawing) Kind() Kind { return KindDrawing }

// Stroking reports whether a stroke is in progress.
func (d *Drawing) Stroking() bool { return d.drawing }

func (d *Drawing) HandleInput(f *input.Frame, c *canvas.Canvas) {
	zoomOnScroll(f, c)

	if f.DragStarted {
		c.DiscardCurrent()
		c.Current.RecordSample(c.ScreenToWorld(f.Origin), 0)
		d.drawing = true
	}
	if f.Dragging && d.drawing {
		c.Current.RecordSample(c.ScreenToWorld(f.Pointer), c.SampleDistance())
	}
	if f.DragStopped && d.drawing {
		c.CommitCurrent()
		d.drawing = false
	}

	if f.KeyPressed(input.KeyDelete) || f.KeyPressed(input.KeyBackspace) {
		c.DeleteLastShape()
	}
}

// Hover shows the pen size under the pointer while no stroke is in progress.
func (d *Drawing) Hover(f *input.Frame, _ *canvas.Canvas) Hover {
	if d.drawing || !f.Hovered {
		return Hover{}
	}
	return Hover{Pen: true, Pointer: f.Pointer}
}

// Cancel keeps the partial stroke as a finished shape.
func (d *Drawing) Cancel(c *canvas.Canvas) {
	if d.drawing {
		c.CommitCurrent()
		d.drawing = false
	}
}
