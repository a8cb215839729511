package spline

import (
	"math"

	"github.com/gogpu/vg"
)

// quadBez is a quadratic Bezier curve with control points P0, P1, P2.
type quadBez struct {
	P0, P1, P2 vg.Point
}

// Eval evaluates the curve at parameter t (0 to 1).
func (q quadBez) Eval(t float64) vg.Point {
	mt := 1.0 - t
	// (1-t)^2 * P0 + 2(1-t)t * P1 + t^2 * P2
	return vg.Point{
		X: mt*mt*q.P0.X + 2*mt*t*q.P1.X + t*t*q.P2.X,
		Y: mt*mt*q.P0.Y + 2*mt*t*q.P1.Y + t*t*q.P2.Y,
	}
}

// Deriv returns the first derivative at t.
func (q quadBez) Deriv(t float64) vg.Point {
	d0 := q.P1.Sub(q.P0)
	d1 := q.P2.Sub(q.P1)
	return d0.Lerp(d1, t).Mul(2)
}

// Extrema returns parameter values in (0, 1) where the derivative of either
// coordinate is zero.
func (q quadBez) Extrema() []float64 {
	var result []float64

	// B'(t) = 2[(P1-P0) + t(P2-2P1+P0)]
	d0 := q.P1.Sub(q.P0)
	d1 := q.P2.Sub(q.P1)
	dd := d1.Sub(d0)

	if dd.X != 0 {
		if t := -d0.X / dd.X; t > 0 && t < 1 {
			result = append(result, t)
		}
	}
	if dd.Y != 0 {
		if t := -d0.Y / dd.Y; t > 0 && t < 1 {
			result = append(result, t)
		}
	}
	return result
}

// cubicBez is a cubic Bezier curve with control points P0..P3.
type cubicBez struct {
	P0, P1, P2, P3 vg.Point
}

// Eval evaluates the curve at parameter t (0 to 1).
func (c cubicBez) Eval(t float64) vg.Point {
	mt := 1.0 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	t2 := t * t
	t3 := t2 * t

	// (1-t)^3 * P0 + 3(1-t)^2*t * P1 + 3(1-t)*t^2 * P2 + t^3 * P3
	return vg.Point{
		X: mt3*c.P0.X + 3*mt2*t*c.P1.X + 3*mt*t2*c.P2.X + t3*c.P3.X,
		Y: mt3*c.P0.Y + 3*mt2*t*c.P1.Y + 3*mt*t2*c.P2.Y + t3*c.P3.Y,
	}
}

// Deriv returns the first derivative at t.
func (c cubicBez) Deriv(t float64) vg.Point {
	d := quadBez{
		P0: c.P1.Sub(c.P0),
		P1: c.P2.Sub(c.P1),
		P2: c.P3.Sub(c.P2),
	}
	return d.Eval(t).Mul(3)
}

// Extrema returns parameter values in [0, 1] where the derivative of either
// coordinate is zero.
func (c cubicBez) Extrema() []float64 {
	result := make([]float64, 0, 4)

	// The derivative is a quadratic in the Bernstein differences.
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)

	result = append(result, solveQuadraticInUnitInterval(d0.X-2*d1.X+d2.X, 2*(d1.X-d0.X), d0.X)...)
	result = append(result, solveQuadraticInUnitInterval(d0.Y-2*d1.Y+d2.Y, 2*(d1.Y-d0.Y), d0.Y)...)
	return result
}

// solveQuadraticInUnitInterval returns the real roots of a*x^2 + b*x + c = 0
// that lie in [0, 1].
func solveQuadraticInUnitInterval(a, b, c float64) []float64 {
	var roots []float64

	sc0 := c / a
	sc1 := b / a
	if !isFinite(sc0) || !isFinite(sc1) {
		// Effectively linear.
		if root := -c / b; isFinite(root) {
			roots = append(roots, root)
		}
	} else {
		arg := sc1*sc1 - 4.0*sc0
		switch {
		case !isFinite(arg) || arg < 0:
		case arg == 0:
			roots = append(roots, -0.5*sc1)
		default:
			// Numerically stable form, avoids cancellation.
			root1 := -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
			roots = append(roots, root1)
			if root2 := sc0 / root1; isFinite(root2) {
				roots = append(roots, root2)
			}
		}
	}

	const eps = 1e-12
	result := roots[:0]
	for _, r := range roots {
		if r >= -eps && r <= 1.0+eps {
			result = append(result, math.Min(math.Max(r, 0), 1))
		}
	}
	return result
}

// isFinite returns true if x is neither infinite nor NaN.
func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
