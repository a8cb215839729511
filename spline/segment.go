package spline

import (
	"fmt"
	"math"

	"github.com/gogpu/vg"
)

// SegmentType selects the curve used between two knots.
type SegmentType int

const (
	// Linear segments are straight lines; knot vectors are ignored.
	Linear SegmentType = iota

	// Quadratic segments use the start knot's out point as control point.
	Quadratic

	// Cubic segments use the start knot's out point and the end knot's in
	// point as control points.
	Cubic
)

// String returns the lower-case type name.
func (t SegmentType) String() string {
	switch t {
	case Linear:
		return "linear"
	case Quadratic:
		return "quadratic"
	case Cubic:
		return "cubic"
	default:
		return fmt.Sprintf("SegmentType(%d)", int(t))
	}
}

func (t SegmentType) valid() bool {
	return t >= Linear && t <= Cubic
}

// Segment is the piece of curve between two knots of a Spline. It holds no
// point data of its own: it refers to the knots by index and reads them from
// the owning Spline, which must outlive it. Segments removed from their
// spline (by MergeSegments or Clear) are detached and report ErrWrongState.
type Segment struct {
	spline *Spline
	start  int
	end    int
	typ    SegmentType
	length float64
}

// Spline returns the owning spline, or nil for a detached segment.
func (s *Segment) Spline() *Spline { return s.spline }

// Start returns the index of the start knot.
func (s *Segment) Start() int { return s.start }

// End returns the index of the end knot.
func (s *Segment) End() int { return s.end }

// Type returns the segment type.
func (s *Segment) Type() SegmentType { return s.typ }

// Length returns the memoized arc length.
func (s *Segment) Length() float64 { return s.length }

// Detached reports whether the segment no longer belongs to a spline.
func (s *Segment) Detached() bool { return s.spline == nil }

// SetType changes the curve type and recomputes the length.
func (s *Segment) SetType(t SegmentType) error {
	if s.spline == nil {
		return fmt.Errorf("spline: detached segment: %w", vg.ErrWrongState)
	}
	if !t.valid() {
		return fmt.Errorf("spline: segment type %d: %w", int(t), vg.ErrInvalidParameter)
	}
	s.typ = t
	s.spline.recompute()
	return nil
}

// Points returns the Bezier control polygon: two points for a linear
// segment, three for a quadratic one and four for a cubic one. A detached
// segment has no points.
func (s *Segment) Points() []vg.Point {
	if s.spline == nil {
		return nil
	}
	k0, k1 := s.spline.knots[s.start], s.spline.knots[s.end]
	switch s.typ {
	case Quadratic:
		return []vg.Point{k0.pos, k0.OutPoint(), k1.pos}
	case Cubic:
		return []vg.Point{k0.pos, k0.OutPoint(), k1.InPoint(), k1.pos}
	default:
		return []vg.Point{k0.pos, k1.pos}
	}
}

// Position evaluates the segment at parameter t in [0, 1]; t is clamped.
// A detached segment evaluates to the origin.
func (s *Segment) Position(t float64) vg.Point {
	pts := s.Points()
	t = clampUnit(t)
	switch len(pts) {
	case 2:
		return pts[0].Lerp(pts[1], t)
	case 3:
		return quadBez{P0: pts[0], P1: pts[1], P2: pts[2]}.Eval(t)
	case 4:
		return cubicBez{P0: pts[0], P1: pts[1], P2: pts[2], P3: pts[3]}.Eval(t)
	}
	return vg.Point{}
}

// Tangent returns the derivative of the segment at parameter t.
func (s *Segment) Tangent(t float64) vg.Point {
	pts := s.Points()
	t = clampUnit(t)
	switch len(pts) {
	case 2:
		return pts[1].Sub(pts[0])
	case 3:
		return quadBez{P0: pts[0], P1: pts[1], P2: pts[2]}.Deriv(t)
	case 4:
		return cubicBez{P0: pts[0], P1: pts[1], P2: pts[2], P3: pts[3]}.Deriv(t)
	}
	return vg.Point{}
}

// Bounds returns the tight bounding box of the segment.
func (s *Segment) Bounds() vg.Rect {
	pts := s.Points()
	if len(pts) == 0 {
		return vg.Rect{}
	}
	bbox := vg.BoundsOf([]vg.Point{pts[0], pts[len(pts)-1]})

	var extrema []float64
	switch len(pts) {
	case 3:
		extrema = quadBez{P0: pts[0], P1: pts[1], P2: pts[2]}.Extrema()
	case 4:
		extrema = cubicBez{P0: pts[0], P1: pts[1], P2: pts[2], P3: pts[3]}.Extrema()
	}
	for _, t := range extrema {
		p := s.Position(t)
		bbox = bbox.Union(vg.Rect{X: p.X, Y: p.Y})
	}
	return bbox
}

// Merge fuses s with next, the segment that follows it in the same spline.
// The shared knot is removed; see Spline.MergeSegments.
func (s *Segment) Merge(next *Segment) error {
	if s.spline == nil {
		return fmt.Errorf("spline: detached segment: %w", vg.ErrWrongState)
	}
	if next == nil || next.spline != s.spline {
		return fmt.Errorf("spline: merge with segment of another spline: %w", vg.ErrInvalidParameter)
	}
	i := s.spline.indexOf(s)
	if i < 0 || i+1 >= len(s.spline.segs) || s.spline.segs[i+1].seg != next {
		return fmt.Errorf("spline: merge of non-adjacent segments: %w", vg.ErrInvalidParameter)
	}
	return s.spline.MergeSegments(i)
}

// computeLength measures the segment with the given refinement delta.
func (s *Segment) computeLength(delta float64) float64 {
	pts := s.Points()
	switch len(pts) {
	case 2:
		return lengthLinear(pts[0], pts[1])
	case 3:
		return lengthQuadratic(pts[0], pts[1], pts[2], delta)
	case 4:
		return lengthCubic(pts[0], pts[1], pts[2], pts[3], delta)
	}
	return 0
}

func clampUnit(t float64) float64 {
	if math.IsNaN(t) || t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
