package shape

import (
	"github.com/gogpu/vg"
	"github.com/gogpu/vg/style"
)

// Polygon is an open or closed polyline. Points are stored in user space
// and transformed in place by Transform.
type Polygon struct {
	Points []vg.Point
	Closed bool
}

// NewPolygon creates a polygon from pts. The slice is copied.
func NewPolygon(closed bool, pts ...vg.Point) *Polygon {
	return &Polygon{Points: append([]vg.Point(nil), pts...), Closed: closed}
}

// Rectangle returns a closed polygon tracing r clockwise from its top-left
// corner.
func Rectangle(r vg.Rect) *Polygon {
	c := r.Normalize().Corners()
	return NewPolygon(true, c[:]...)
}

// Len returns the number of vertices.
func (p *Polygon) Len() int { return len(p.Points) }

// Add appends vertices.
func (p *Polygon) Add(pts ...vg.Point) {
	p.Points = append(p.Points, pts...)
}

// Transform applies m to every vertex.
func (p *Polygon) Transform(m vg.Matrix) {
	m.TransformPoints(p.Points)
}

// Bounds returns the bounding box of the vertices.
func (p *Polygon) Bounds() vg.Rect {
	return vg.BoundsOf(p.Points)
}

// Emit writes the polygon to sink, transformed by m. A closed polygon ends
// with ClosePath.
func (p *Polygon) Emit(sink vg.PathSink, m vg.Matrix) {
	if len(p.Points) == 0 {
		return
	}
	w := vg.SinkWriter{Sink: sink, Matrix: m}
	w.MoveTo(p.Points[0])
	for _, pt := range p.Points[1:] {
		w.LineTo(pt)
	}
	if p.Closed {
		w.ClosePath()
	}
}

// edges calls fn for every edge, including the closing edge of a closed
// polygon.
func (p *Polygon) edges(fn func(a, b vg.Point)) {
	n := len(p.Points)
	for i := 1; i < n; i++ {
		fn(p.Points[i-1], p.Points[i])
	}
	if p.Closed && n > 2 {
		fn(p.Points[n-1], p.Points[0])
	}
}

// Perimeter returns the total edge length.
func (p *Polygon) Perimeter() float64 {
	var length float64
	p.edges(func(a, b vg.Point) { length += a.Distance(b) })
	return length
}

// Area returns the signed area of a closed polygon: positive when the
// vertices run clockwise in a y-down coordinate system. Open polygons have
// no area.
func (p *Polygon) Area() float64 {
	if !p.Closed {
		return 0
	}
	var area float64
	p.edges(func(a, b vg.Point) { area += 0.5 * a.Cross(b) })
	return area
}

// Winding returns the winding number of pt relative to the closed polygon,
// using a horizontal ray to the right.
func (p *Polygon) Winding(pt vg.Point) int {
	if !p.Closed {
		return 0
	}
	var winding int
	p.edges(func(a, b vg.Point) {
		side := b.Sub(a).Cross(pt.Sub(a))
		switch {
		case a.Y <= pt.Y && b.Y > pt.Y && side > 0:
			winding++
		case a.Y > pt.Y && b.Y <= pt.Y && side < 0:
			winding--
		}
	})
	return winding
}

// Contains reports whether pt is inside the closed polygon under rule.
func (p *Polygon) Contains(pt vg.Point, rule style.FillRule) bool {
	w := p.Winding(pt)
	if rule == style.FillRuleEvenOdd {
		return w%2 != 0
	}
	return w != 0
}
