// Package geom provides 2D geometry helpers for editing cubic Bézier chains.
//
// Points, rectangles and curves are the gg types; this package only adds
// the operations the editor needs that gg does not provide.
package geom

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// ControlPoints returns the four control points of c in order.
func ControlPoints(c gg.CubicBez) [4]gg.Point {
	return [4]gg.Point{c.P0, c.P1, c.P2, c.P3}
}

// ControlPoint returns control point i (0..3) of c.
func ControlPoint(c gg.CubicBez, i int) gg.Point {
	switch i {
	case 0:
		return c.P0
	case 1:
		return c.P1
	case 2:
		return c.P2
	case 3:
		return c.P3
	}
	panic(fmt.Sprintf("geom: control index %d out of range [0,4)", i))
}

// SetControlPoint sets control point i (0..3) of c to p.
func SetControlPoint(c *gg.CubicBez, i int, p gg.Point) {
	switch i {
	case 0:
		c.P0 = p
	case 1:
		c.P1 = p
	case 2:
		c.P2 = p
	case 3:
		c.P3 = p
	default:
		panic(fmt.Sprintf("geom: control index %d out of range [0,4)", i))
	}
}

// Translate returns c moved by d.
func Translate(c gg.CubicBez, d gg.Point) gg.CubicBez {
	return gg.CubicBez{
		P0: c.P0.Add(d),
		P1: c.P1.Add(d),
		P2: c.P2.Add(d),
		P3: c.P3.Add(d),
	}
}

// ControlBounds returns the rectangle enclosing all four control points.
// It always contains the curve, but is looser than gg.CubicBez.BoundingBox.
func ControlBounds(c gg.CubicBez) gg.Rect {
	return gg.Rect{
		Min: gg.Pt(min(c.P0.X, c.P1.X, c.P2.X, c.P3.X), min(c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y)),
		Max: gg.Pt(max(c.P0.X, c.P1.X, c.P2.X, c.P3.X), max(c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y)),
	}
}

// ChainBounds returns the control bounds of a whole chain, or false when
// the chain is empty.
func ChainBounds(segs []gg.CubicBez) (gg.Rect, bool) {
	if len(segs) == 0 {
		return gg.Rect{}, false
	}
	r := ControlBounds(segs[0])
	for _, c := range segs[1:] {
		r = r.Union(ControlBounds(c))
	}
	return r, true
}

// Intersects reports whether a and b overlap. Touching edges count.
func Intersects(a, b gg.Rect) bool {
	return a.Min.X <= b.Max.X && b.Min.X <= a.Max.X &&
		a.Min.Y <= b.Max.Y && b.Min.Y <= a.Max.Y
}

// DistSqToRect returns the squared distance from p to r (0 inside).
func DistSqToRect(p gg.Point, r gg.Rect) float64 {
	dx := math.Max(0, math.Max(r.Min.X-p.X, p.X-r.Max.X))
	dy := math.Max(0, math.Max(r.Min.Y-p.Y, p.Y-r.Max.Y))
	return dx*dx + dy*dy
}

// NearestOnSegment returns the squared distance from p to the line segment
// a-b and the parameter of the closest point.
func NearestOnSegment(a, b, p gg.Point) (distSq, t float64) {
	ab := b.Sub(a)
	l2 := ab.LengthSquared()
	if l2 == 0 {
		return p.Sub(a).LengthSquared(), 0
	}
	t = p.Sub(a).Dot(ab) / l2
	t = math.Max(0, math.Min(1, t))
	return p.Sub(a.Add(ab.Mul(t))).LengthSquared(), t
}
