// Package shape pairs geometry with the attribute record a renderer needs
// to draw it.
package shape

import (
	"github.com/gogpu/vg"
	"github.com/gogpu/vg/style"
)

// Geometry is a path that can be measured, transformed in place and
// streamed to a rasterizer. *Polygon and *spline.Spline implement it.
type Geometry interface {
	Bounds() vg.Rect
	Transform(m vg.Matrix)
	Emit(sink vg.PathSink, m vg.Matrix)
}

// Shape is a piece of geometry with its style.
type Shape struct {
	Geometry Geometry
	Style    style.Attributes
}

// New creates a shape.
func New(g Geometry, st style.Attributes) *Shape {
	return &Shape{Geometry: g, Style: st}
}

// Bounds returns the device-space bounding box: the geometry bounds mapped
// through the style transform and widened by half the effective stroke
// width when the shape is stroked.
func (s *Shape) Bounds() vg.Rect {
	r := s.Style.Transform.TransformRect(s.Geometry.Bounds())
	if _, ok := s.Style.ResolvedStroke(); ok {
		half := s.Style.EffectiveStrokeWidth() / 2
		r = r.Inflate(half, half)
	}
	return r
}

// FillColor returns the fill colour after the style's colour matrix.
func (s *Shape) FillColor() (vg.Color, bool) {
	return s.Style.ResolvedFill()
}

// StrokeColor returns the stroke colour after the style's colour matrix.
func (s *Shape) StrokeColor() (vg.Color, bool) {
	return s.Style.ResolvedStroke()
}

// Emit writes the geometry to sink in device space.
func (s *Shape) Emit(sink vg.PathSink) {
	s.Geometry.Emit(sink, s.Style.Transform)
}

// Bake applies the style transform to the geometry, folds its scale into
// the stroke width and resets the transform to identity.
func (s *Shape) Bake() {
	s.Geometry.Transform(s.Style.Transform)
	s.Style.StrokeWidth = s.Style.EffectiveStrokeWidth()
	s.Style.Transform.Reset()
}
