// Package selection tracks which shapes and control points are selected.
//
// Shape and point selections are independent sets. Every operation replaces
// the state it documents and leaves the other set alone unless noted.
package selection

import (
	"cmp"
	"slices"

	"github.com/gogpu/gg"

	"github.com/Faultbox/shaper/internal/shape"
	"github.com/Faultbox/shaper/pkg/geom"
)

// Selection holds the selected shape indices and control points.
type Selection struct {
	shapes map[int]struct{}
	points map[shape.PointID]struct{}
}

// New creates an empty selection.
func New() *Selection {
	return &Selection{
		shapes: make(map[int]struct{}),
		points: make(map[shape.PointID]struct{}),
	}
}

// SelectSingleShape selects only idx and clears the point selection.
func (s *Selection) SelectSingleShape(idx int) {
	clear(s.shapes)
	clear(s.points)
	s.shapes[idx] = struct{}{}
}

// ToggleShape adds idx if absent and removes it otherwise.
func (s *Selection) ToggleShape(idx int) {
	if _, ok := s.shapes[idx]; ok {
		delete(s.shapes, idx)
		return
	}
	s.shapes[idx] = struct{}{}
}

// SelectShapesInRect replaces the shape selection with every shape whose
// bounding box intersects r. Points are untouched.
func (s *Selection) SelectShapesInRect(doc *shape.Document, r gg.Rect) {
	clear(s.shapes)
	for i, sh := range doc.Shapes() {
		if box, ok := sh.BoundingBox(); ok && geom.Intersects(box, r) {
			s.shapes[i] = struct{}{}
		}
	}
}

// SelectPointsInRect replaces the point selection with every control point
// inside r and clears the shape selection.
func (s *Selection) SelectPointsInRect(doc *shape.Document, r gg.Rect) {
	clear(s.points)
	clear(s.shapes)
	for si, sh := range doc.Shapes() {
		for bi, bez := range sh.Beziers {
			for ci, p := range geom.ControlPoints(bez) {
				if r.Contains(p) {
					s.points[shape.PointID{Shape: si, Segment: bi, Ctrl: ci}] = struct{}{}
				}
			}
		}
	}
}

// SelectPointAndShape selects only id among points and adds its shape to
// the shape selection.
func (s *Selection) SelectPointAndShape(id shape.PointID) {
	clear(s.points)
	s.points[id] = struct{}{}
	s.shapes[id.Shape] = struct{}{}
}

// TogglePoint adds id if absent and removes it otherwise. It reports
// whether id is selected afterwards.
func (s *Selection) TogglePoint(id shape.PointID) bool {
	if _, ok := s.points[id]; ok {
		delete(s.points, id)
		return false
	}
	s.points[id] = struct{}{}
	return true
}

func (s *Selection) AddPoint(id shape.PointID)    { s.points[id] = struct{}{} }
func (s *Selection) RemovePoint(id shape.PointID) { delete(s.points, id) }

func (s *Selection) HasPoint(id shape.PointID) bool {
	_, ok := s.points[id]
	return ok
}

func (s *Selection) HasShape(idx int) bool {
	_, ok := s.shapes[idx]
	return ok
}

func (s *Selection) ShapeCount() int { return len(s.shapes) }
func (s *Selection) PointCount() int { return len(s.points) }

func (s *Selection) ClearShapes() { clear(s.shapes) }
func (s *Selection) ClearPoints() { clear(s.points) }

// Clear empties both sets.
func (s *Selection) Clear() {
	clear(s.shapes)
	clear(s.points)
}

// Shapes returns the selected shape indices in ascending order.
func (s *Selection) Shapes() []int {
	out := make([]int, 0, len(s.shapes))
	for i := range s.shapes {
		out = append(out, i)
	}
	slices.Sort(out)
	return out
}

// Points returns the selected points ordered by shape, segment and ctrl.
func (s *Selection) Points() []shape.PointID {
	out := make([]shape.PointID, 0, len(s.points))
	for id := range s.points {
		out = append(out, id)
	}
	slices.SortFunc(out, comparePoints)
	return out
}

func comparePoints(a, b shape.PointID) int {
	if c := cmp.Compare(a.Shape, b.Shape); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Segment, b.Segment); c != 0 {
		return c
	}
	return cmp.Compare(a.Ctrl, b.Ctrl)
}

// UnionBounds returns the union of the selected shapes' bounding boxes, or
// false when no selected shape has segments.
func (s *Selection) UnionBounds(doc *shape.Document) (gg.Rect, bool) {
	var (
		out   gg.Rect
		found bool
	)
	for _, i := range s.Shapes() {
		box, ok := doc.At(i).BoundingBox()
		if !ok {
			continue
		}
		if !found {
			out, found = box, true
			continue
		}
		out = out.Union(box)
	}
	return out, found
}

// Prune drops entries that no longer address anything in doc and returns
// how many were removed.
func (s *Selection) Prune(doc *shape.Document) int {
	n := 0
	for i := range s.shapes {
		if i < 0 || i >= doc.Len() {
			delete(s.shapes, i)
			n++
		}
	}
	for id := range s.points {
		if !doc.ValidPoint(id) {
			delete(s.points, id)
			n++
		}
	}
	return n
}
