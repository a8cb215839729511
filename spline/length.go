package spline

import (
	"math"

	"github.com/gogpu/vg"
)

// DefaultDelta is the relative change between successive polyline
// refinements below which an arc length is considered converged.
const DefaultDelta = 0.001

const (
	// initialSamples is the number of sub-intervals of the first polyline.
	initialSamples = 4

	// maxRefinements caps the number of doublings (4 << 16 sub-intervals).
	maxRefinements = 16
)

// lengthLinear returns the exact length of a straight segment.
func lengthLinear(p0, p1 vg.Point) float64 {
	return p0.Distance(p1)
}

// lengthQuadratic estimates the arc length of a quadratic Bezier.
func lengthQuadratic(p0, p1, p2 vg.Point, delta float64) float64 {
	return refineLength(quadBez{P0: p0, P1: p1, P2: p2}.Eval, delta)
}

// lengthCubic estimates the arc length of a cubic Bezier.
func lengthCubic(p0, p1, p2, p3 vg.Point, delta float64) float64 {
	return refineLength(cubicBez{P0: p0, P1: p1, P2: p2, P3: p3}.Eval, delta)
}

// polylineLength measures the polyline through n+1 evenly spaced parameter
// values of eval.
func polylineLength(eval func(float64) vg.Point, n int) float64 {
	var length float64
	prev := eval(0)
	for i := 1; i <= n; i++ {
		p := eval(float64(i) / float64(n))
		length += prev.Distance(p)
		prev = p
	}
	return length
}

// refineLength doubles the sample count until the relative change in
// polyline length drops below delta.
func refineLength(eval func(float64) vg.Point, delta float64) float64 {
	if !(delta > 0) || math.IsInf(delta, 0) {
		delta = DefaultDelta
	}

	n := initialSamples
	prev := polylineLength(eval, n)
	for i := 0; i < maxRefinements; i++ {
		n *= 2
		cur := polylineLength(eval, n)
		if cur == 0 {
			return 0
		}
		if math.Abs(cur-prev)/cur < delta {
			return cur
		}
		prev = cur
	}
	vg.Logger().Warn("spline: arc length did not converge",
		"samples", n, "length", prev, "delta", delta)
	return prev
}
