package vg

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// PointFromFixed converts a 26.6 fixed-point point, as produced by font
// outlines, to a Point.
func PointFromFixed(p fixed.Point26_6) Point {
	return Point{X: float64(p.X) / 64, Y: float64(p.Y) / 64}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Div returns the point divided by a scalar.
func (p Point) Div(s float64) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}

// Neg returns the negation of the vector.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (scalar).
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// LengthSquared returns the squared length of the vector.
func (p Point) LengthSquared() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to the zero vector.
func (p Point) Normalize() Point {
	length := p.Length()
	if length == 0 {
		return Point{}
	}
	return Point{X: p.X / length, Y: p.Y / length}
}

// Perp returns the vector rotated 90 degrees counter-clockwise.
func (p Point) Perp() Point {
	return Point{X: -p.Y, Y: p.X}
}

// Rotate returns the point rotated by angle radians around the origin.
func (p Point) Rotate(angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// ReflectAbout returns p mirrored through center (2*center - p).
// SVG smooth curve commands derive their implicit control point this way.
func (p Point) ReflectAbout(center Point) Point {
	return Point{X: 2*center.X - p.X, Y: 2*center.Y - p.Y}
}

// ReflectAcross returns p mirrored across the infinite line through a and b.
// If a and b coincide the line is undefined and p is reflected about a.
func (p Point) ReflectAcross(a, b Point) Point {
	d := b.Sub(a)
	l2 := d.LengthSquared()
	if l2 == 0 {
		return p.ReflectAbout(a)
	}
	t := p.Sub(a).Dot(d) / l2
	foot := a.Add(d.Mul(t))
	return p.ReflectAbout(foot)
}

// SideOfLine reports on which side of the directed line a->b the point lies:
// +1 for the left (counter-clockwise) side, -1 for the right side and 0 when
// the point is on the line.
func (p Point) SideOfLine(a, b Point) int {
	c := b.Sub(a).Cross(p.Sub(a))
	switch {
	case c > 0:
		return 1
	case c < 0:
		return -1
	}
	return 0
}

// ApproxEqual reports whether both coordinates differ by at most eps.
func (p Point) ApproxEqual(q Point, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}

// IsZero reports whether p is the zero vector.
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// Fixed converts the point to 26.6 fixed point, rounding to the nearest
// representable value.
func (p Point) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(p.X * 64)),
		Y: fixed.Int26_6(math.Round(p.Y * 64)),
	}
}

// Size holds a width and a height.
type Size struct {
	Width, Height float64
}

// Sz is a convenience function to create a Size.
func Sz(w, h float64) Size {
	return Size{Width: w, Height: h}
}

// IsEmpty reports whether either dimension is not positive.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Add returns the component-wise sum of two sizes.
func (s Size) Add(o Size) Size {
	return Size{Width: s.Width + o.Width, Height: s.Height + o.Height}
}
