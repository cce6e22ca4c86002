package geom

import (
	"math"

	"github.com/gogpu/gg"
)

// maxNearestDepth bounds subdivision for degenerate input (NaN, huge spans).
const maxNearestDepth = 32

// NearestOnCubic finds the point of c closest to p using recursive
// subdivision. Sub-curves whose control bounds are farther than the best
// distance found so far are pruned; a sub-curve whose handles lie within
// accuracy of its chord is treated as that chord.
func NearestOnCubic(c gg.CubicBez, p gg.Point, accuracy float64) (distSq, t float64) {
	best := math.Inf(1)
	bestT := 0.0

	// Endpoints seed the search so pruning starts early.
	if d := p.Sub(c.P0).LengthSquared(); d < best {
		best, bestT = d, 0
	}
	if d := p.Sub(c.P3).LengthSquared(); d < best {
		best, bestT = d, 1
	}

	var walk func(c gg.CubicBez, t0, t1 float64, depth int)
	walk = func(c gg.CubicBez, t0, t1 float64, depth int) {
		if DistSqToRect(p, ControlBounds(c)) > best {
			return
		}
		if depth >= maxNearestDepth || flatness(c) <= accuracy {
			d, u := NearestOnSegment(c.P0, c.P3, p)
			if d < best {
				best = d
				bestT = t0 + u*(t1-t0)
			}
			return
		}
		left, right := c.Subdivide()
		mid := (t0 + t1) / 2
		// Visit the closer half first to tighten the bound sooner.
		if DistSqToRect(p, ControlBounds(left)) <= DistSqToRect(p, ControlBounds(right)) {
			walk(left, t0, mid, depth+1)
			walk(right, mid, t1, depth+1)
		} else {
			walk(right, mid, t1, depth+1)
			walk(left, t0, mid, depth+1)
		}
	}
	walk(c, 0, 1, 0)

	return best, bestT
}

// flatness is the largest distance of the handles from the chord.
func flatness(c gg.CubicBez) float64 {
	d1, _ := NearestOnSegment(c.P0, c.P3, c.P1)
	d2, _ := NearestOnSegment(c.P0, c.P3, c.P2)
	return math.Sqrt(math.Max(d1, d2))
}
