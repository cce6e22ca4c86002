// Package edit applies drags and point moves to the fitted chains of a
// document while keeping the joints between adjacent segments attached.
//
// Drag deltas are always measured from the baseline captured in the hit,
// never accumulated frame to frame.
package edit

import (
	"github.com/gogpu/gg"

	"github.com/Faultbox/shaper/internal/picking"
	"github.com/Faultbox/shaper/internal/shape"
	"github.com/Faultbox/shaper/pkg/geom"
)

// ApplyDrag moves the geometry addressed by hit to its baseline plus delta.
// A nil hit is a no-op. Indices that no longer exist panic.
func ApplyDrag(doc *shape.Document, hit picking.Hit, delta gg.Point) {
	switch h := hit.(type) {
	case nil:
	case *picking.ControlPoint:
		dragControlPoint(doc.At(h.Shape), h, delta)
	case *picking.CurveSegment:
		dragSegment(doc.At(h.Shape), h, delta)
	case *picking.ShapeBody:
		s := doc.At(h.Shape)
		for i, orig := range h.Orig {
			*s.SegmentRef(i) = geom.Translate(orig, delta)
		}
	}
}

func dragControlPoint(s *shape.Shape, h *picking.ControlPoint, delta gg.Point) {
	seg := s.SegmentRef(h.Segment)
	next := h.Orig.Add(delta)

	switch h.Ctrl {
	case 0:
		// Handles follow the anchor by how far it actually moved this call.
		shift := next.Sub(seg.P0)
		seg.P0 = next
		seg.P1 = seg.P1.Add(shift)
		if h.Segment > 0 {
			prev := s.SegmentRef(h.Segment - 1)
			prev.P3 = next
			prev.P2 = prev.P2.Add(shift)
		}
	case 3:
		shift := next.Sub(seg.P3)
		seg.P3 = next
		seg.P2 = seg.P2.Add(shift)
		if h.Segment+1 < len(s.Beziers) {
			nb := s.SegmentRef(h.Segment + 1)
			nb.P0 = next
			nb.P1 = nb.P1.Add(shift)
		}
	default:
		geom.SetControlPoint(seg, h.Ctrl, next)
	}
}

func dragSegment(s *shape.Shape, h *picking.CurveSegment, delta gg.Point) {
	moved := geom.Translate(h.Orig, delta)
	*s.SegmentRef(h.Segment) = moved
	if h.Segment > 0 {
		s.SegmentRef(h.Segment - 1).P3 = moved.P0
	}
	if h.Segment+1 < len(s.Beziers) {
		s.SegmentRef(h.Segment + 1).P0 = moved.P3
	}
}

// PointPosition returns the current position of a control point.
func PointPosition(doc *shape.Document, id shape.PointID) gg.Point {
	return doc.At(id.Shape).ControlPoint(id.Segment, id.Ctrl)
}

// MovePointTo places a single control point at p. Anchors also move the
// neighbouring segment's end of the joint; handles of either segment stay
// where they are.
func MovePointTo(doc *shape.Document, id shape.PointID, p gg.Point) {
	s := doc.At(id.Shape)
	s.SetControlPoint(id.Segment, id.Ctrl, p)
	switch {
	case id.Ctrl == 0 && id.Segment > 0:
		s.SegmentRef(id.Segment - 1).P3 = p
	case id.Ctrl == 3 && id.Segment+1 < len(s.Beziers):
		s.SegmentRef(id.Segment + 1).P0 = p
	}
}
