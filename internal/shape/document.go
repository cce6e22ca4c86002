package shape

import (
	"fmt"

	"github.com/google/uuid"
)

// PointID addresses one control point by position. It is only valid until
// the document's shape list changes structurally.
type PointID struct {
	Shape   int
	Segment int
	Ctrl    int // 0..3
}

func (id PointID) String() string {
	return fmt.Sprintf("%d/%d/%d", id.Shape, id.Segment, id.Ctrl)
}

// IsAnchor reports whether the point is a segment endpoint.
func (id PointID) IsAnchor() bool {
	return id.Ctrl == 0 || id.Ctrl == 3
}

// Document is the ordered shape list. Order is draw order: later shapes
// are on top.
type Document struct {
	shapes []*Shape
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{}
}

// Len returns the number of shapes.
func (d *Document) Len() int {
	return len(d.shapes)
}

// Shapes returns the shape list in draw order. Callers must not modify it.
func (d *Document) Shapes() []*Shape {
	return d.shapes
}

// At returns shape i. An out-of-range index is a broken invariant and panics.
func (d *Document) At(i int) *Shape {
	if i < 0 || i >= len(d.shapes) {
		panic(fmt.Sprintf("document: shape index %d out of range [0,%d)", i, len(d.shapes)))
	}
	return d.shapes[i]
}

// Append adds s on top and returns its index.
func (d *Document) Append(s *Shape) int {
	d.shapes = append(d.shapes, s)
	return len(d.shapes) - 1
}

// PopLast removes and returns the topmost shape, or nil if the document is empty.
func (d *Document) PopLast() *Shape {
	n := len(d.shapes)
	if n == 0 {
		return nil
	}
	s := d.shapes[n-1]
	d.shapes[n-1] = nil
	d.shapes = d.shapes[:n-1]
	return s
}

// IndexOf returns the current index of the shape with the given ID.
func (d *Document) IndexOf(id uuid.UUID) (int, bool) {
	for i, s := range d.shapes {
		if s.ID == id {
			return i, true
		}
	}
	return -1, false
}

// ValidPoint reports whether id addresses an existing control point.
func (d *Document) ValidPoint(id PointID) bool {
	if id.Shape < 0 || id.Shape >= len(d.shapes) {
		return false
	}
	s := d.shapes[id.Shape]
	return id.Segment >= 0 && id.Segment < len(s.Beziers) && id.Ctrl >= 0 && id.Ctrl <= 3
}

// RefitAll refits every shape with a new tolerance.
func (d *Document) RefitAll(tolerance float64) {
	for _, s := range d.shapes {
		s.Refit(tolerance)
	}
}
