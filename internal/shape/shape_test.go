package shape

import (
	"testing"

	"github.com/gogpu/gg"
)

func TestRecordSampleDistanceGate(t *testing.T) {
	s := New(10, gg.Black)
	if !s.RecordSample(gg.Pt(0, 0), 2) {
		t.Fatal("expected first sample to be recorded")
	}
	if s.RecordSample(gg.Pt(1, 1), 2) {
		t.Error("expected sample within 2 units to be skipped")
	}
	if !s.RecordSample(gg.Pt(3, 0), 2) {
		t.Error("expected sample beyond 2 units to be recorded")
	}
	if len(s.CurrentStroke) != 2 {
		t.Errorf("expected 2 samples, got %d", len(s.CurrentStroke))
	}
}

func TestRecordSampleZoomScaledDistance(t *testing.T) {
	// At zoom 4 a 2px gate is half a world unit.
	s := New(10, gg.Black)
	s.RecordSample(gg.Pt(0, 0), 2.0/4)
	if !s.RecordSample(gg.Pt(0.6, 0), 2.0/4) {
		t.Error("expected 0.6 world units to pass a 0.5 gate")
	}
}

func TestFinalizeStroke(t *testing.T) {
	s := New(10, gg.Black)
	for _, p := range []gg.Point{gg.Pt(0, 0), gg.Pt(10, 0), gg.Pt(20, 0), gg.Pt(30, 0)} {
		s.RecordSample(p, 0)
	}
	s.FinalizeStroke(10)

	if len(s.RawStrokes) != 1 || len(s.RawStrokes[0]) != 4 {
		t.Fatalf("expected one archived stroke of 4 points, got %v", s.RawStrokes)
	}
	if len(s.CurrentStroke) != 0 {
		t.Errorf("expected current stroke cleared, got %d points", len(s.CurrentStroke))
	}
	if len(s.Beziers) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(s.Beziers))
	}
	if s.Beziers[0].P0 != gg.Pt(0, 0) || s.Beziers[0].P3 != gg.Pt(30, 0) {
		t.Errorf("unexpected segment %v", s.Beziers[0])
	}
}

func TestFinalizeShortStrokeIsArchived(t *testing.T) {
	s := New(10, gg.Black)
	s.RecordSample(gg.Pt(5, 5), 0)
	s.FinalizeStroke(10)
	if len(s.RawStrokes) != 1 {
		t.Errorf("expected stroke archived, got %d", len(s.RawStrokes))
	}
	if len(s.Beziers) != 0 {
		t.Errorf("expected no segments, got %d", len(s.Beziers))
	}
}

func TestFinalizeDoesNotAliasArchive(t *testing.T) {
	s := New(10, gg.Black)
	s.RecordSample(gg.Pt(0, 0), 0)
	s.RecordSample(gg.Pt(5, 0), 0)
	s.FinalizeStroke(1)
	s.RecordSample(gg.Pt(99, 99), 0)
	if s.RawStrokes[0][0] != gg.Pt(0, 0) {
		t.Errorf("archived stroke was overwritten: %v", s.RawStrokes[0])
	}
}

func TestRefitPreservesStyleAndOrder(t *testing.T) {
	color := gg.RGB(1, 0, 0)
	s := New(7, color)
	strokes := [][]gg.Point{
		{gg.Pt(0, 0), gg.Pt(10, 5), gg.Pt(20, 0), gg.Pt(30, 5)},
		{gg.Pt(100, 0), gg.Pt(110, 0)},
	}
	for _, raw := range strokes {
		for _, p := range raw {
			s.RecordSample(p, 0)
		}
		s.FinalizeStroke(50)
	}
	s.Beziers[0].P1 = gg.Pt(-500, -500)

	s.Refit(50)

	if s.Thickness != 7 || s.StrokeColor != color {
		t.Errorf("style changed by refit: %v %v", s.Thickness, s.StrokeColor)
	}
	if s.Beziers[0].P1 == gg.Pt(-500, -500) {
		t.Error("expected refit to rebuild the edited segment")
	}
	last := s.Beziers[len(s.Beziers)-1]
	if last.P3 != gg.Pt(110, 0) {
		t.Errorf("expected strokes refit in order, last anchor %v", last.P3)
	}
}

func TestBoundingBoxIncludesHandles(t *testing.T) {
	s := New(1, gg.Black)
	if _, ok := s.BoundingBox(); ok {
		t.Error("expected no bounding box without segments")
	}
	s.Beziers = []gg.CubicBez{gg.NewCubicBez(gg.Pt(0, 0), gg.Pt(5, 50), gg.Pt(10, -20), gg.Pt(15, 0))}
	r, ok := s.BoundingBox()
	if !ok {
		t.Fatal("expected bounding box")
	}
	if r.Min != gg.Pt(0, -20) || r.Max != gg.Pt(15, 50) {
		t.Errorf("unexpected bounding box %v", r)
	}
}

func TestSegmentOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	New(1, gg.Black).Segment(0)
}
