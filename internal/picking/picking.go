// Package picking resolves world-space positions to shapes, curve segments
// and control points.
package picking

import (
	"github.com/gogpu/gg"

	"github.com/Faultbox/shaper/internal/shape"
	"github.com/Faultbox/shaper/pkg/geom"
)

// NearestAccuracy is the subdivision accuracy of the curve proximity test.
const NearestAccuracy = 1e-6

// Tolerance holds hit radii in world units.
type Tolerance struct {
	// Point is the control point radius.
	Point float64

	// CurveMargin is added to half the stroke thickness for curve hits.
	CurveMargin float64
}

// NewTolerance converts screen-pixel radii to world units at the given zoom,
// so hit targets keep a constant on-screen size.
func NewTolerance(pointPx, curveMarginPx, zoom float64) Tolerance {
	return Tolerance{
		Point:       pointPx / zoom,
		CurveMargin: curveMarginPx / zoom,
	}
}

// curve returns the curve hit radius for a shape.
func (t Tolerance) curve(s *shape.Shape) float64 {
	return t.CurveMargin + s.Thickness/2
}

// HitTest returns the topmost control point, curve segment or shape body at
// p. Control points win over curves, curves over bodies, and within each
// pass later shapes win over earlier ones.
func HitTest(doc *shape.Document, p gg.Point, tol Tolerance) Hit {
	if h := hitPointOrCurve(doc, p, tol, true); h != nil {
		return h
	}
	return hitBody(doc, p)
}

// HitTestPoints only considers control points.
func HitTestPoints(doc *shape.Document, p gg.Point, tol Tolerance) *ControlPoint {
	if h, ok := hitPointOrCurve(doc, p, tol, false).(*ControlPoint); ok {
		return h
	}
	return nil
}

func hitPointOrCurve(doc *shape.Document, p gg.Point, tol Tolerance, curves bool) Hit {
	pointSq := tol.Point * tol.Point
	shapes := doc.Shapes()
	for si := len(shapes) - 1; si >= 0; si-- {
		s := shapes[si]
		curveTol := tol.curve(s)
		curveSq := curveTol * curveTol
		for bi, bez := range s.Beziers {
			for ci, cp := range geom.ControlPoints(bez) {
				if p.Sub(cp).LengthSquared() <= pointSq {
					return &ControlPoint{Shape: si, Segment: bi, Ctrl: ci, Orig: cp}
				}
			}
			if !curves {
				continue
			}
			// Cheap reject before the subdivision search.
			if geom.DistSqToRect(p, geom.ControlBounds(bez)) > curveSq {
				continue
			}
			if d, _ := geom.NearestOnCubic(bez, p, NearestAccuracy); d <= curveSq {
				return &CurveSegment{Shape: si, Segment: bi, Orig: bez}
			}
		}
	}
	return nil
}

func hitBody(doc *shape.Document, p gg.Point) Hit {
	shapes := doc.Shapes()
	for si := len(shapes) - 1; si >= 0; si-- {
		if box, ok := shapes[si].BoundingBox(); ok && box.Contains(p) {
			return BodyOf(doc, si)
		}
	}
	return nil
}
