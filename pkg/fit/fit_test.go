package fit

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/Faultbox/shaper/pkg/geom"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func TestFitStraightLine(t *testing.T) {
	raw := []gg.Point{gg.Pt(0, 0), gg.Pt(10, 0), gg.Pt(20, 0), gg.Pt(30, 0)}
	segs := Fit(raw, 10)
	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segs))
	}
	if segs[0].P0 != gg.Pt(0, 0) {
		t.Errorf("expected p0 (0,0), got %v", segs[0].P0)
	}
	if segs[0].P3 != gg.Pt(30, 0) {
		t.Errorf("expected p3 (30,0), got %v", segs[0].P3)
	}
	want := gg.NewCubicBez(gg.Pt(0, 0), gg.Pt(10, 0), gg.Pt(20, 0), gg.Pt(30, 0))
	diff(t, want, segs[0], cmpopts.EquateApprox(0, 1e-9))
}

func TestFitTooFewPoints(t *testing.T) {
	tests := []struct {
		name string
		raw  []gg.Point
	}{
		{"nil", nil},
		{"single", []gg.Point{gg.Pt(1, 2)}},
		{"repeated", []gg.Point{gg.Pt(1, 2), gg.Pt(1, 2), gg.Pt(1, 2)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if segs := Fit(tt.raw, 5); len(segs) != 0 {
				t.Errorf("expected no segments, got %d", len(segs))
			}
		})
	}
}

func TestFitTwoPoints(t *testing.T) {
	segs := Fit([]gg.Point{gg.Pt(0, 0), gg.Pt(9, 0)}, 1)
	want := []gg.CubicBez{gg.NewCubicBez(gg.Pt(0, 0), gg.Pt(3, 0), gg.Pt(6, 0), gg.Pt(9, 0))}
	diff(t, want, segs, cmpopts.EquateApprox(0, 1e-9))
}

func TestSimplifyMultipleOfFour(t *testing.T) {
	flat := Simplify(circle(64, 100), 0.5)
	if len(flat)%4 != 0 {
		t.Errorf("expected multiple of 4 control points, got %d", len(flat))
	}
}

func TestFitIdempotent(t *testing.T) {
	raw := wave(200)
	first := Fit(raw, 2)
	second := Fit(raw, 2)
	diff(t, first, second)
}

func TestFitJointsShared(t *testing.T) {
	segs := Fit(circle(80, 50), 0.25)
	if len(segs) < 2 {
		t.Fatalf("expected several segments for a tight tolerance, got %d", len(segs))
	}
	for i := 0; i+1 < len(segs); i++ {
		if segs[i].P3 != segs[i+1].P0 {
			t.Errorf("joint %d: %v != %v", i, segs[i].P3, segs[i+1].P0)
		}
	}
}

func TestFitEndpointsPreserved(t *testing.T) {
	raw := wave(120)
	segs := Fit(raw, 1)
	if segs[0].P0 != raw[0] {
		t.Errorf("expected first anchor %v, got %v", raw[0], segs[0].P0)
	}
	if segs[len(segs)-1].P3 != raw[len(raw)-1] {
		t.Errorf("expected last anchor %v, got %v", raw[len(raw)-1], segs[len(segs)-1].P3)
	}
}

func TestFitToleranceControlsSegmentCount(t *testing.T) {
	raw := wave(300)
	fine := Fit(raw, 0.1)
	coarse := Fit(raw, 20)
	if len(coarse) > len(fine) {
		t.Errorf("expected coarse fit (%d segments) to use no more segments than fine fit (%d)",
			len(coarse), len(fine))
	}
}

func TestFitStaysWithinTolerance(t *testing.T) {
	const tol = 1.0
	raw := wave(200)
	segs := Fit(raw, tol)
	for _, p := range raw {
		best := math.Inf(1)
		for _, s := range segs {
			d, _ := geom.NearestOnCubic(s, p, 1e-6)
			best = math.Min(best, d)
		}
		// The fitter bounds parametric error, which is never smaller than
		// the geometric distance.
		if math.Sqrt(best) > tol+1e-6 {
			t.Errorf("sample %v is %v away from the fitted chain", p, math.Sqrt(best))
		}
	}
}

func wave(n int) []gg.Point {
	pts := make([]gg.Point, n)
	for i := range pts {
		x := float64(i) * 2
		pts[i] = gg.Pt(x, 40*math.Sin(x/25))
	}
	return pts
}

func circle(n int, r float64) []gg.Point {
	pts := make([]gg.Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = gg.Pt(r*math.Cos(a), r*math.Sin(a))
	}
	return pts
}
