// Package fit converts sampled polylines into chains of cubic Bézier curves.
//
// The fitter is Schneider's least-squares algorithm ("An Algorithm for
// Automatically Fitting Digitized Curves", Graphics Gems 1990) in the
// formulation popularised by Paper.js: chord-length parameterisation,
// handle lengths solved along fixed end tangents, Newton-Raphson
// reparameterisation and recursive splitting at the worst sample.
package fit

import (
	"math"

	"github.com/gogpu/gg"
)

const (
	// maxIterations is the number of reparameterisation passes tried before
	// a span is split.
	maxIterations = 4

	epsilon = 1e-12
)

// Fit fits raw to a chain of cubic segments whose deviation from the samples
// stays within tolerance (same units as raw). Fewer than two distinct
// samples produce no segments. The result is a pure function of its inputs.
func Fit(raw []gg.Point, tolerance float64) []gg.CubicBez {
	flat := Simplify(raw, tolerance)
	segs := make([]gg.CubicBez, 0, len(flat)/4)
	// A trailing partial group is dropped.
	for i := 0; i+4 <= len(flat); i += 4 {
		segs = append(segs, gg.CubicBez{P0: flat[i], P1: flat[i+1], P2: flat[i+2], P3: flat[i+3]})
	}
	return segs
}

// Simplify runs the fitter and returns the control points of every fitted
// curve back to back, four per curve. Joints appear twice, once as the end
// of one curve and once as the start of the next.
func Simplify(raw []gg.Point, tolerance float64) []gg.Point {
	f := fitter{points: dedupe(raw), errSq: tolerance * tolerance}
	n := len(f.points)
	if n < 2 {
		return nil
	}
	tan1 := f.points[1].Sub(f.points[0]).Normalize()
	tan2 := f.points[n-2].Sub(f.points[n-1]).Normalize()
	f.fitCubic(0, n-1, tan1, tan2)
	return f.out
}

// dedupe drops consecutive identical samples; they carry no shape
// information and break chord-length parameterisation.
func dedupe(raw []gg.Point) []gg.Point {
	pts := make([]gg.Point, 0, len(raw))
	for i, p := range raw {
		if i == 0 || p != raw[i-1] {
			pts = append(pts, p)
		}
	}
	return pts
}

type fitter struct {
	points []gg.Point
	errSq  float64
	out    []gg.Point
}

func (f *fitter) add(curve [4]gg.Point) {
	f.out = append(f.out, curve[:]...)
}

func (f *fitter) fitCubic(first, last int, tan1, tan2 gg.Point) {
	if last-first == 1 {
		pt1, pt2 := f.points[first], f.points[last]
		dist := pt1.Distance(pt2) / 3
		f.add([4]gg.Point{pt1, pt1.Add(withLength(tan1, dist)), pt2.Add(withLength(tan2, dist)), pt2})
		return
	}

	u := f.chordLengthParameterize(first, last)
	maxErr := math.Max(f.errSq, f.errSq*f.errSq)
	split := -1
	inOrder := true

	for i := 0; i <= maxIterations; i++ {
		curve := f.generateBezier(first, last, u, tan1, tan2)
		e, idx := f.findMaxError(first, last, curve, u)
		if e < f.errSq && inOrder {
			f.add(curve)
			return
		}
		split = idx
		if e >= maxErr {
			break
		}
		inOrder = f.reparameterize(first, last, u, curve)
		maxErr = e
	}

	center := f.points[split-1].Sub(f.points[split+1])
	if center.LengthSquared() == 0 {
		center = f.points[split-1].Sub(f.points[split])
	}
	center = center.Normalize()
	f.fitCubic(first, split, tan1, center)
	f.fitCubic(split, last, center.Mul(-1), tan2)
}

func (f *fitter) generateBezier(first, last int, u []float64, tan1, tan2 gg.Point) [4]gg.Point {
	pt1, pt2 := f.points[first], f.points[last]
	var c [2][2]float64
	var x [2]float64

	for i := 0; i <= last-first; i++ {
		ui := u[i]
		t := 1 - ui
		b := 3 * ui * t
		b0 := t * t * t
		b1 := b * t
		b2 := b * ui
		b3 := ui * ui * ui
		a1 := withLength(tan1, b1)
		a2 := withLength(tan2, b2)
		tmp := f.points[first+i].Sub(pt1.Mul(b0 + b1)).Sub(pt2.Mul(b2 + b3))
		c[0][0] += a1.Dot(a1)
		c[0][1] += a1.Dot(a2)
		c[1][0] = c[0][1]
		c[1][1] += a2.Dot(a2)
		x[0] += a1.Dot(tmp)
		x[1] += a2.Dot(tmp)
	}

	var alpha1, alpha2 float64
	det := c[0][0]*c[1][1] - c[1][0]*c[0][1]
	if math.Abs(det) > epsilon {
		detC0X := c[0][0]*x[1] - c[1][0]*x[0]
		detXC1 := x[0]*c[1][1] - x[1]*c[0][1]
		alpha1 = detXC1 / det
		alpha2 = detC0X / det
	} else {
		// Singular system: fall back to a shared handle length.
		c0 := c[0][0] + c[0][1]
		c1 := c[1][0] + c[1][1]
		switch {
		case math.Abs(c0) > epsilon:
			alpha1 = x[0] / c0
		case math.Abs(c1) > epsilon:
			alpha1 = x[1] / c1
		}
		alpha2 = alpha1
	}

	segLength := pt2.Distance(pt1)
	eps := epsilon * segLength
	var h1, h2 gg.Point
	useHandles := false
	if alpha1 < eps || alpha2 < eps {
		// Non-positive or tiny handles: use the Wu/Barsky heuristic.
		alpha1 = segLength / 3
		alpha2 = alpha1
	} else {
		line := pt2.Sub(pt1)
		h1 = withLength(tan1, alpha1)
		h2 = withLength(tan2, alpha2)
		useHandles = true
		// Handles overshooting past each other produce loops.
		if h1.Dot(line)-h2.Dot(line) > segLength*segLength {
			alpha1 = segLength / 3
			alpha2 = alpha1
			useHandles = false
		}
	}
	if !useHandles {
		h1 = withLength(tan1, alpha1)
		h2 = withLength(tan2, alpha2)
	}
	return [4]gg.Point{pt1, pt1.Add(h1), pt2.Add(h2), pt2}
}

// reparameterize improves u with one Newton-Raphson step per sample and
// reports whether the parameters are still strictly increasing.
func (f *fitter) reparameterize(first, last int, u []float64, curve [4]gg.Point) bool {
	for i := first; i <= last; i++ {
		u[i-first] = findRoot(curve, f.points[i], u[i-first])
	}
	for i := 1; i < len(u); i++ {
		if u[i] <= u[i-1] {
			return false
		}
	}
	return true
}

func findRoot(curve [4]gg.Point, p gg.Point, u float64) float64 {
	var d1 [3]gg.Point
	for i := range d1 {
		d1[i] = curve[i+1].Sub(curve[i]).Mul(3)
	}
	var d2 [2]gg.Point
	for i := range d2 {
		d2[i] = d1[i+1].Sub(d1[i]).Mul(2)
	}
	pt := evaluate(curve[:], u)
	pt1 := evaluate(d1[:], u)
	pt2 := evaluate(d2[:], u)
	diff := pt.Sub(p)
	df := pt1.Dot(pt1) + diff.Dot(pt2)
	if math.Abs(df) < epsilon {
		return u
	}
	return u - diff.Dot(pt1)/df
}

// evaluate runs de Casteljau on a Bézier of any degree.
func evaluate(ctrl []gg.Point, t float64) gg.Point {
	tmp := make([]gg.Point, len(ctrl))
	copy(tmp, ctrl)
	for i := 1; i < len(tmp); i++ {
		for j := 0; j < len(tmp)-i; j++ {
			tmp[j] = tmp[j].Lerp(tmp[j+1], t)
		}
	}
	return tmp[0]
}

func (f *fitter) chordLengthParameterize(first, last int) []float64 {
	n := last - first
	u := make([]float64, n+1)
	for i := first + 1; i <= last; i++ {
		u[i-first] = u[i-first-1] + f.points[i].Distance(f.points[i-1])
	}
	for i := 1; i <= n; i++ {
		u[i] /= u[n]
	}
	return u
}

// findMaxError returns the largest squared distance between a sample and
// its parametric point on curve, and the index of that sample.
func (f *fitter) findMaxError(first, last int, curve [4]gg.Point, u []float64) (float64, int) {
	index := first + (last-first+1)/2
	maxDist := 0.0
	for i := first + 1; i < last; i++ {
		d := evaluate(curve[:], u[i-first]).Sub(f.points[i]).LengthSquared()
		if d >= maxDist {
			maxDist = d
			index = i
		}
	}
	return maxDist, index
}

// withLength scales the unit vector v to length l.
func withLength(v gg.Point, l float64) gg.Point {
	n := v.Length()
	if n == 0 {
		return gg.Point{}
	}
	return v.Mul(l / n)
}
