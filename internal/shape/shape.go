// Package shape holds drawn strokes and the document they live in.
package shape

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/google/uuid"

	"github.com/Faultbox/shaper/pkg/fit"
	"github.com/Faultbox/shaper/pkg/geom"
)

// Shape is one drawn stroke: its raw samples and the fitted Bézier chain.
type Shape struct {
	// ID identifies the shape independently of its position in the document.
	ID uuid.UUID

	// CurrentStroke collects samples while a drag is in progress.
	CurrentStroke []gg.Point

	// RawStrokes keeps every finished stroke so curves can be refit.
	RawStrokes [][]gg.Point

	// Beziers is the fitted chain; derived from RawStrokes.
	Beziers []gg.CubicBez

	Thickness   float64
	StrokeColor gg.RGBA
}

// New creates an empty shape.
func New(thickness float64, color gg.RGBA) *Shape {
	return &Shape{
		ID:          uuid.New(),
		Thickness:   thickness,
		StrokeColor: color,
	}
}

// RecordSample appends p to the current stroke if it is the first sample
// or lies more than minDist away from the last one. Callers pass a distance
// already divided by zoom so sampling density is constant on screen.
func (s *Shape) RecordSample(p gg.Point, minDist float64) bool {
	if n := len(s.CurrentStroke); n > 0 && s.CurrentStroke[n-1].Distance(p) <= minDist {
		return false
	}
	s.CurrentStroke = append(s.CurrentStroke, p)
	return true
}

// FinalizeStroke archives the current stroke, fits it and appends the new
// segments. A stroke too short to fit is still archived.
func (s *Shape) FinalizeStroke(tolerance float64) {
	raw := make([]gg.Point, len(s.CurrentStroke))
	copy(raw, s.CurrentStroke)
	s.RawStrokes = append(s.RawStrokes, raw)
	s.Beziers = append(s.Beziers, fit.Fit(raw, tolerance)...)
	s.CurrentStroke = s.CurrentStroke[:0]
}

// Refit rebuilds Beziers from every raw stroke with a new tolerance.
// Edits made to the previous chain are discarded.
func (s *Shape) Refit(tolerance float64) {
	s.Beziers = s.Beziers[:0]
	for _, raw := range s.RawStrokes {
		s.Beziers = append(s.Beziers, fit.Fit(raw, tolerance)...)
	}
}

// BoundingBox returns the rectangle enclosing every control point,
// handles included, or false when the shape has no segments.
func (s *Shape) BoundingBox() (gg.Rect, bool) {
	return geom.ChainBounds(s.Beziers)
}

// Segment returns segment i, panicking if it does not exist.
func (s *Shape) Segment(i int) gg.CubicBez {
	return s.Beziers[s.checkSegment(i)]
}

// SegmentRef returns a pointer to segment i for in-place edits.
func (s *Shape) SegmentRef(i int) *gg.CubicBez {
	return &s.Beziers[s.checkSegment(i)]
}

// ControlPoint returns control point ctrl of segment seg.
func (s *Shape) ControlPoint(seg, ctrl int) gg.Point {
	return geom.ControlPoint(s.Segment(seg), ctrl)
}

// SetControlPoint sets control point ctrl of segment seg to p.
func (s *Shape) SetControlPoint(seg, ctrl int, p gg.Point) {
	geom.SetControlPoint(s.SegmentRef(seg), ctrl, p)
}

// SnapshotBeziers returns a copy of the fitted chain.
func (s *Shape) SnapshotBeziers() []gg.CubicBez {
	out := make([]gg.CubicBez, len(s.Beziers))
	copy(out, s.Beziers)
	return out
}

func (s *Shape) checkSegment(i int) int {
	if i < 0 || i >= len(s.Beziers) {
		panic(fmt.Sprintf("shape %s: segment index %d out of range [0,%d)", s.ID, i, len(s.Beziers)))
	}
	return i
}
