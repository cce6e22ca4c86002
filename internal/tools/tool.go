// Package tools implements the pointer tools as per-frame state machines.
//
// Exactly one tool is active per frame. It receives the frame's input and
// the canvas, and may mutate the canvas freely.
package tools

import (
	"fmt"
	"strings"

	"github.com/gogpu/gg"
	"github.com/google/uuid"

	"github.com/Faultbox/shaper/internal/canvas"
	"github.com/Faultbox/shaper/internal/input"
	"github.com/Faultbox/shaper/internal/shape"
)

// Kind identifies a tool slot.
type Kind int

const (
	KindDrawing Kind = iota
	KindPanning
	KindEditing
	KindSelection
	KindDirectSelection
	KindCurvature
)

var kindNames = [...]string{
	KindDrawing:         "drawing",
	KindPanning:         "panning",
	KindEditing:         "editing",
	KindSelection:       "selection",
	KindDirectSelection: "direct-selection",
	KindCurvature:       "curvature",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Kinds returns every tool kind in hotkey order.
func Kinds() []Kind {
	return []Kind{KindDrawing, KindPanning, KindEditing, KindSelection, KindDirectSelection, KindCurvature}
}

// ParseKind returns the kind with the given name. Matching ignores case
// and accepts "direct" for direct-selection.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "direct" {
		return KindDirectSelection, nil
	}
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown tool %q", name)
}

// Tool is a pointer tool.
type Tool interface {
	Kind() Kind

	// HandleInput advances the tool by one frame.
	HandleInput(f *input.Frame, c *canvas.Canvas)

	// Cancel ends any gesture in progress. It is called on the outgoing
	// tool when the active tool changes.
	Cancel(c *canvas.Canvas)
}

// Marquee is implemented by tools that draw a rubber-band rectangle.
type Marquee interface {
	// Marquee returns the rectangle in world space while it is visible.
	Marquee() (gg.Rect, bool)
}

// Hover is the pointer feedback a tool asks renderers to draw.
type Hover struct {
	// Pen shows the pen-size indicator at Pointer (screen space).
	Pen     bool
	Pointer gg.Point

	// Shape is outlined when OnShape is set.
	Shape   int
	OnShape bool

	// Point is highlighted when OnPoint is set.
	Point   shape.PointID
	OnPoint bool
}

// Hoverer is implemented by tools that highlight what is under the pointer.
type Hoverer interface {
	Hover(f *input.Frame, c *canvas.Canvas) Hover
}

// pin identifies the shape a gesture started on. A refit or deletion
// between frames can leave indices captured at drag start pointing at
// something else.
type pin struct {
	id   uuid.UUID
	idx  int
	segs int
}

func pinShape(c *canvas.Canvas, idx int) pin {
	s := c.Doc.At(idx)
	return pin{id: s.ID, idx: idx, segs: len(s.Beziers)}
}

// held reports whether the pinned shape is still at its index with the
// same number of segments.
func (p pin) held(c *canvas.Canvas) bool {
	i, ok := c.Doc.IndexOf(p.id)
	return ok && i == p.idx && len(c.Doc.At(i).Beziers) == p.segs
}

// zoomOnScroll applies scroll-to-zoom around the hovered pointer.
func zoomOnScroll(f *input.Frame, c *canvas.Canvas) {
	if f.Hovered && f.Scroll != 0 {
		c.ZoomAt(f.Pointer, f.Scroll)
	}
}

// New returns a fresh tool of the given kind.
func New(k Kind) Tool {
	switch k {
	case KindDrawing:
		return NewDrawing()
	case KindPanning:
		return NewPanning()
	case KindEditing:
		return NewEditing()
	case KindSelection:
		return NewSelection()
	case KindDirectSelection:
		return NewDirectSelection()
	case KindCurvature:
		return NewCurvature()
	}
	panic(fmt.Sprintf("tools: no tool of kind %v", k))
}
