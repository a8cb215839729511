package vg

import "math"

// Rect represents an axis-aligned rectangle by its origin and size.
// A normalized Rect has non-negative Width and Height.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect creates a normalized rectangle. Negative dimensions move the
// origin so that the rectangle covers the same area.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}.Normalize()
}

// RectFromPoints creates the rectangle spanned by two corner points.
func RectFromPoints(p1, p2 Point) Rect {
	return NewRect(p1.X, p1.Y, p2.X-p1.X, p2.Y-p1.Y)
}

// BoundsOf returns the smallest rectangle containing all points.
// An empty slice yields the zero Rect.
func BoundsOf(points []Point) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Normalize folds negative dimensions into an origin shift.
func (r Rect) Normalize() Rect {
	if r.Width < 0 {
		r.X += r.Width
		r.Width = -r.Width
	}
	if r.Height < 0 {
		r.Y += r.Height
		r.Height = -r.Height
	}
	return r
}

// Left returns the minimum x coordinate.
func (r Rect) Left() float64 { return r.X }

// Top returns the minimum y coordinate.
func (r Rect) Top() float64 { return r.Y }

// Right returns the maximum x coordinate.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the maximum y coordinate.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Min returns the top-left corner.
func (r Rect) Min() Point { return Point{X: r.X, Y: r.Y} }

// Max returns the bottom-right corner.
func (r Rect) Max() Point { return Point{X: r.Right(), Y: r.Bottom()} }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// IsEmpty reports whether the rectangle encloses no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains returns true if the point is inside the rectangle (edges inclusive).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// ContainsRect reports whether other lies entirely inside r.
func (r Rect) ContainsRect(other Rect) bool {
	return other.X >= r.X && other.Right() <= r.Right() &&
		other.Y >= r.Y && other.Bottom() <= r.Bottom()
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	minX := math.Min(r.X, other.X)
	minY := math.Min(r.Y, other.Y)
	maxX := math.Max(r.Right(), other.Right())
	maxY := math.Max(r.Bottom(), other.Bottom())
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Intersect returns the overlapping area of r and other. The boolean is
// false, and the Rect zero, when the rectangles do not overlap.
func (r Rect) Intersect(other Rect) (Rect, bool) {
	minX := math.Max(r.X, other.X)
	minY := math.Max(r.Y, other.Y)
	maxX := math.Min(r.Right(), other.Right())
	maxY := math.Min(r.Bottom(), other.Bottom())
	if maxX < minX || maxY < minY {
		return Rect{}, false
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}, true
}

// Inflate grows the rectangle by dx on the left and right and dy on the top
// and bottom. Negative values shrink it; the result is normalized.
func (r Rect) Inflate(dx, dy float64) Rect {
	return NewRect(r.X-dx, r.Y-dy, r.Width+2*dx, r.Height+2*dy)
}

// Offset returns the rectangle translated by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Corners returns the four corners clockwise from the top-left.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{X: r.X, Y: r.Y},
		{X: r.Right(), Y: r.Y},
		{X: r.Right(), Y: r.Bottom()},
		{X: r.X, Y: r.Bottom()},
	}
}
