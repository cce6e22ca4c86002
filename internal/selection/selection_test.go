package selection

import (
	"testing"

	"github.com/gogpu/gg"
	"github.com/google/go-cmp/cmp"

	"github.com/Faultbox/shaper/internal/shape"
)

func seg(x0, y0, x1, y1 float64) gg.CubicBez {
	a, b := gg.Pt(x0, y0), gg.Pt(x1, y1)
	d := b.Sub(a)
	return gg.CubicBez{P0: a, P1: a.Add(d.Mul(0.25)), P2: a.Add(d.Mul(0.75)), P3: b}
}

// sampleDoc has three single-segment shapes laid out left to right.
func sampleDoc() *shape.Document {
	doc := shape.NewDocument()
	for _, b := range []gg.CubicBez{
		seg(0, 0, 10, 10),
		seg(20, 0, 30, 10),
		seg(40, 0, 50, 10),
	} {
		s := shape.New(1, gg.Black)
		s.Beziers = []gg.CubicBez{b}
		doc.Append(s)
	}
	return doc
}

func TestSelectSingleShape(t *testing.T) {
	s := New()
	s.AddPoint(shape.PointID{Shape: 1})
	s.ToggleShape(0)
	s.SelectSingleShape(2)

	if diff := cmp.Diff([]int{2}, s.Shapes()); diff != "" {
		t.Errorf("unexpected shapes (-want +got):\n%s", diff)
	}
	if s.PointCount() != 0 {
		t.Errorf("expected points cleared, got %d", s.PointCount())
	}
}

func TestToggleShape(t *testing.T) {
	s := New()
	p := shape.PointID{Shape: 0, Segment: 0, Ctrl: 2}
	s.AddPoint(p)

	s.ToggleShape(3)
	if !s.HasShape(3) {
		t.Error("expected shape 3 selected")
	}
	s.ToggleShape(3)
	if s.HasShape(3) {
		t.Error("expected shape 3 deselected")
	}
	if !s.HasPoint(p) {
		t.Error("expected point selection untouched")
	}
}

func TestSelectShapesInRect(t *testing.T) {
	doc := sampleDoc()
	s := New()
	p := shape.PointID{Shape: 0, Segment: 0, Ctrl: 0}
	s.AddPoint(p)
	s.SelectSingleShape(0)
	s.AddPoint(p)

	// Touches the boxes of shapes 1 and 2 only.
	s.SelectShapesInRect(doc, gg.NewRect(gg.Pt(25, 5), gg.Pt(40, 20)))

	if diff := cmp.Diff([]int{1, 2}, s.Shapes()); diff != "" {
		t.Errorf("unexpected shapes (-want +got):\n%s", diff)
	}
	if !s.HasPoint(p) {
		t.Error("expected previous point selection to remain")
	}

	// Recomputed from scratch, so the previous result does not matter.
	s.SelectShapesInRect(doc, gg.NewRect(gg.Pt(25, 5), gg.Pt(40, 20)))
	if diff := cmp.Diff([]int{1, 2}, s.Shapes()); diff != "" {
		t.Errorf("expected idempotent result (-want +got):\n%s", diff)
	}
}

func TestSelectShapesInRectSkipsEmptyShapes(t *testing.T) {
	doc := sampleDoc()
	doc.Append(shape.New(1, gg.Black))
	s := New()
	s.SelectShapesInRect(doc, gg.NewRect(gg.Pt(-100, -100), gg.Pt(100, 100)))
	if diff := cmp.Diff([]int{0, 1, 2}, s.Shapes()); diff != "" {
		t.Errorf("unexpected shapes (-want +got):\n%s", diff)
	}
}

func TestSelectPointsInRectClearsShapes(t *testing.T) {
	doc := sampleDoc()
	s := New()
	s.SelectSingleShape(1)

	// Covers p2 (7.5,7.5) and p3 (10,10) of shape 0, and p0 (20,0) of shape 1 is outside.
	s.SelectPointsInRect(doc, gg.NewRect(gg.Pt(6, 6), gg.Pt(12, 12)))

	want := []shape.PointID{
		{Shape: 0, Segment: 0, Ctrl: 2},
		{Shape: 0, Segment: 0, Ctrl: 3},
	}
	if diff := cmp.Diff(want, s.Points()); diff != "" {
		t.Errorf("unexpected points (-want +got):\n%s", diff)
	}
	if s.ShapeCount() != 0 {
		t.Errorf("expected shapes cleared, got %v", s.Shapes())
	}
}

func TestSelectPointAndShapeIsAdditiveForShapes(t *testing.T) {
	s := New()
	s.ToggleShape(0)
	s.AddPoint(shape.PointID{Shape: 0, Segment: 0, Ctrl: 0})

	id := shape.PointID{Shape: 2, Segment: 1, Ctrl: 3}
	s.SelectPointAndShape(id)

	if diff := cmp.Diff([]shape.PointID{id}, s.Points()); diff != "" {
		t.Errorf("unexpected points (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 2}, s.Shapes()); diff != "" {
		t.Errorf("unexpected shapes (-want +got):\n%s", diff)
	}
}

func TestTogglePoint(t *testing.T) {
	s := New()
	id := shape.PointID{Shape: 0, Segment: 0, Ctrl: 1}
	if !s.TogglePoint(id) {
		t.Error("expected point to be selected after first toggle")
	}
	if s.TogglePoint(id) {
		t.Error("expected point to be deselected after second toggle")
	}
	if s.HasPoint(id) {
		t.Error("expected point absent")
	}
}

func TestPointsAreSorted(t *testing.T) {
	s := New()
	ids := []shape.PointID{
		{Shape: 1, Segment: 0, Ctrl: 0},
		{Shape: 0, Segment: 2, Ctrl: 1},
		{Shape: 0, Segment: 2, Ctrl: 0},
		{Shape: 0, Segment: 1, Ctrl: 3},
	}
	for _, id := range ids {
		s.AddPoint(id)
	}
	want := []shape.PointID{ids[3], ids[2], ids[1], ids[0]}
	if diff := cmp.Diff(want, s.Points()); diff != "" {
		t.Errorf("unexpected order (-want +got):\n%s", diff)
	}
}

func TestUnionBounds(t *testing.T) {
	doc := sampleDoc()
	s := New()
	if _, ok := s.UnionBounds(doc); ok {
		t.Error("expected no bounds for empty selection")
	}
	s.ToggleShape(0)
	s.ToggleShape(2)
	got, ok := s.UnionBounds(doc)
	if !ok {
		t.Fatal("expected bounds")
	}
	want := gg.NewRect(gg.Pt(0, 0), gg.Pt(50, 10))
	if got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestPrune(t *testing.T) {
	doc := sampleDoc()
	s := New()
	s.ToggleShape(1)
	s.ToggleShape(2)
	s.AddPoint(shape.PointID{Shape: 2, Segment: 0, Ctrl: 3})
	s.AddPoint(shape.PointID{Shape: 0, Segment: 0, Ctrl: 3})
	s.AddPoint(shape.PointID{Shape: 0, Segment: 4, Ctrl: 0})

	doc.PopLast()

	if n := s.Prune(doc); n != 3 {
		t.Errorf("expected 3 removed, got %d", n)
	}
	if diff := cmp.Diff([]int{1}, s.Shapes()); diff != "" {
		t.Errorf("unexpected shapes (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]shape.PointID{{Shape: 0, Segment: 0, Ctrl: 3}}, s.Points()); diff != "" {
		t.Errorf("unexpected points (-want +got):\n%s", diff)
	}
}

func TestClear(t *testing.T) {
	s := New()
	s.ToggleShape(1)
	s.AddPoint(shape.PointID{})
	s.Clear()
	if s.ShapeCount() != 0 || s.PointCount() != 0 {
		t.Error("expected empty selection")
	}
}
