package picking

import (
	"github.com/gogpu/gg"

	"github.com/Faultbox/shaper/internal/shape"
)

// Hit is the result of a hit test: *ControlPoint, *CurveSegment or
// *ShapeBody. A nil Hit means nothing was hit.
//
// Each variant carries a snapshot of the geometry at the time of the test so
// drags can be applied relative to a fixed baseline.
type Hit interface {
	// ShapeIndex returns the index of the shape that was hit.
	ShapeIndex() int
	isHit()
}

// ControlPoint is a hit on one of a segment's four control points.
type ControlPoint struct {
	Shape   int
	Segment int
	Ctrl    int // 0..3
	Orig    gg.Point
}

// CurveSegment is a hit on the curve of one segment.
type CurveSegment struct {
	Shape   int
	Segment int
	Orig    gg.CubicBez
}

// ShapeBody is a hit inside a shape's bounding box.
type ShapeBody struct {
	Shape int
	Orig  []gg.CubicBez
}

func (h *ControlPoint) ShapeIndex() int { return h.Shape }
func (h *CurveSegment) ShapeIndex() int { return h.Shape }
func (h *ShapeBody) ShapeIndex() int    { return h.Shape }

func (*ControlPoint) isHit() {}
func (*CurveSegment) isHit() {}
func (*ShapeBody) isHit()    {}

// PointID returns the control point addressed by the hit.
func (h *ControlPoint) PointID() shape.PointID {
	return shape.PointID{Shape: h.Shape, Segment: h.Segment, Ctrl: h.Ctrl}
}

// IsHandle reports whether the hit is an interior handle (p1 or p2).
func (h *ControlPoint) IsHandle() bool {
	return h.Ctrl == 1 || h.Ctrl == 2
}

// BodyOf snapshots shape idx as a whole-shape drag baseline.
func BodyOf(doc *shape.Document, idx int) *ShapeBody {
	return &ShapeBody{Shape: idx, Orig: doc.At(idx).SnapshotBeziers()}
}
