package tools

import (
	"github.com/gogpu/gg"

	"github.com/Faultbox/shaper/internal/canvas"
	"github.com/Faultbox/shaper/internal/input"
)

// Panning moves the view in screen space.
type Panning struct {
	active       bool
	startPointer gg.Point
	startPan     gg.Point
}

func NewPanning() *Panning { return &Panning{} }

func (*Panning) Kind() Kind { return KindPanning }

func (p *Panning) HandleInput(f *input.Frame, c *canvas.Canvas) {
	if !p.active {
		zoomOnScroll(f, c)
	}

	if f.DragStarted {
		p.active = true
		p.startPointer = f.Origin
		p.startPan = c.Camera.Pan
	}
	if f.Dragging && p.active {
		c.Camera.Pan = p.startPan.Add(f.Pointer.Sub(p.startPointer))
	}
	if f.DragStopped {
		p.active = false
	}
}

func (p *Panning) Cancel(*canvas.Canvas) {
	p.active = false
}
