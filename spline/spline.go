package spline

import (
	"fmt"
	"math"
	"sort"

	"github.com/gogpu/vg"
)

// closeEpsilon is the distance under which the first and last knots of a
// spline are considered coincident when closing it.
const closeEpsilon = 1e-9

// segEntry pairs a segment with the cumulative length up to its end.
type segEntry struct {
	seg *Segment
	cum float64
}

// Spline is an ordered chain of knots joined by segments.
//
// An open spline with n knots has n-1 segments; a closed one has n, the last
// running from knot n-1 back to knot 0. The zero value is an empty open
// spline using DefaultDelta.
//
// A Spline is not safe for concurrent mutation.
type Spline struct {
	knots  []Knot
	segs   []segEntry
	closed bool
	delta  float64
}

// New creates an empty spline.
func New() *Spline {
	return &Spline{delta: DefaultDelta}
}

// Delta returns the arc-length convergence threshold.
func (s *Spline) Delta() float64 {
	if s.delta > 0 {
		return s.delta
	}
	return DefaultDelta
}

// SetDelta changes the arc-length convergence threshold and re-measures
// every segment. Delta must be finite and positive.
func (s *Spline) SetDelta(delta float64) error {
	if !(delta > 0) || math.IsInf(delta, 0) {
		return fmt.Errorf("spline: delta %v: %w", delta, vg.ErrInvalidParameter)
	}
	s.delta = delta
	s.recompute()
	return nil
}

// KnotCount returns the number of knots.
func (s *Spline) KnotCount() int { return len(s.knots) }

// SegmentCount returns the number of segments.
func (s *Spline) SegmentCount() int { return len(s.segs) }

// Closed reports whether the spline has been closed.
func (s *Spline) Closed() bool { return s.closed }

// Knot returns a copy of knot i.
func (s *Spline) Knot(i int) (Knot, error) {
	if i < 0 || i >= len(s.knots) {
		return Knot{}, fmt.Errorf("spline: knot index %d of %d: %w", i, len(s.knots), vg.ErrInvalidParameter)
	}
	return s.knots[i], nil
}

// Knots returns a copy of all knots.
func (s *Spline) Knots() []Knot {
	return append([]Knot(nil), s.knots...)
}

// SetKnot replaces knot i and re-measures the spline.
func (s *Spline) SetKnot(i int, k Knot) error {
	if i < 0 || i >= len(s.knots) {
		return fmt.Errorf("spline: knot index %d of %d: %w", i, len(s.knots), vg.ErrInvalidParameter)
	}
	if !k.typ.valid() {
		return fmt.Errorf("spline: knot type %d: %w", int(k.typ), vg.ErrInvalidParameter)
	}
	s.knots[i] = k
	s.recompute()
	return nil
}

// Segment returns segment i. The segment stays valid until it is merged
// away or the spline is cleared.
func (s *Spline) Segment(i int) (*Segment, error) {
	if i < 0 || i >= len(s.segs) {
		return nil, fmt.Errorf("spline: segment index %d of %d: %w", i, len(s.segs), vg.ErrInvalidParameter)
	}
	return s.segs[i].seg, nil
}

// Length returns the total arc length.
func (s *Spline) Length() float64 {
	if len(s.segs) == 0 {
		return 0
	}
	return s.segs[len(s.segs)-1].cum
}

// CurrentPoint returns the position of the last knot, or the origin for an
// empty spline.
func (s *Spline) CurrentPoint() vg.Point {
	if len(s.knots) == 0 {
		return vg.Point{}
	}
	return s.knots[len(s.knots)-1].pos
}

// Clear removes all knots and segments and reopens the spline. Existing
// segments are detached.
func (s *Spline) Clear() {
	for _, e := range s.segs {
		e.seg.spline = nil
	}
	s.knots = nil
	s.segs = nil
	s.closed = false
}

// MoveTo sets the start point of an empty spline. On a spline that already
// has knots it behaves like LineTo. With rel set, p is relative to the
// current point.
func (s *Spline) MoveTo(p vg.Point, rel bool) error {
	if s.closed {
		return errClosed("MoveTo")
	}
	if len(s.knots) > 0 {
		return s.LineTo(p, rel)
	}
	s.knots = append(s.knots, NewKnot(p, Corner))
	return nil
}

// LineTo adds a linear segment to p.
func (s *Spline) LineTo(p vg.Point, rel bool) error {
	if err := s.begin("LineTo"); err != nil {
		return err
	}
	from := s.CurrentPoint()
	to := s.resolve(p, rel)
	chord := to.Sub(from)
	s.appendSegment(Linear, chord.Div(3), chord.Div(-3), to)
	return nil
}

// HLineTo adds a horizontal linear segment ending at x.
func (s *Spline) HLineTo(x float64, rel bool) error {
	cur := s.CurrentPoint()
	if rel {
		x += cur.X
	}
	return s.LineTo(vg.Pt(x, cur.Y), false)
}

// VLineTo adds a vertical linear segment ending at y.
func (s *Spline) VLineTo(y float64, rel bool) error {
	cur := s.CurrentPoint()
	if rel {
		y += cur.Y
	}
	return s.LineTo(vg.Pt(cur.X, y), false)
}

// Curve3 adds a quadratic segment through ctrl to end. With rel set, both
// points are relative to the current point.
func (s *Spline) Curve3(ctrl, end vg.Point, rel bool) error {
	if err := s.begin("Curve3"); err != nil {
		return err
	}
	from := s.CurrentPoint()
	ctrl, end = s.resolve(ctrl, rel), s.resolve(end, rel)
	s.appendSegment(Quadratic, ctrl.Sub(from), ctrl.Sub(end), end)
	return nil
}

// Curve4 adds a cubic segment through c1 and c2 to end. With rel set, all
// points are relative to the current point.
func (s *Spline) Curve4(c1, c2, end vg.Point, rel bool) error {
	if err := s.begin("Curve4"); err != nil {
		return err
	}
	from := s.CurrentPoint()
	c1, c2, end = s.resolve(c1, rel), s.resolve(c2, rel), s.resolve(end, rel)
	s.appendSegment(Cubic, c1.Sub(from), c2.Sub(end), end)
	return nil
}

// SmoothCurve3 adds a quadratic segment to end whose control point is the
// previous quadratic control point reflected about the current point. When
// the previous segment is not quadratic the control point is the current
// point.
func (s *Spline) SmoothCurve3(end vg.Point, rel bool) error {
	if err := s.begin("SmoothCurve3"); err != nil {
		return err
	}
	from := s.CurrentPoint()
	ctrl := s.reflectedControl(Quadratic)
	end = s.resolve(end, rel)
	s.appendSegment(Quadratic, ctrl.Sub(from), ctrl.Sub(end), end)
	return nil
}

// SmoothCurve4 adds a cubic segment through c2 to end whose first control
// point is the previous cubic segment's second control point reflected
// about the current point. When the previous segment is not cubic the first
// control point is the current point.
func (s *Spline) SmoothCurve4(c2, end vg.Point, rel bool) error {
	if err := s.begin("SmoothCurve4"); err != nil {
		return err
	}
	from := s.CurrentPoint()
	c1 := s.reflectedControl(Cubic)
	c2, end = s.resolve(c2, rel), s.resolve(end, rel)
	s.appendSegment(Cubic, c1.Sub(from), c2.Sub(end), end)
	return nil
}

// Close joins the last knot back to the first.
//
// When the two coincide the last knot is dropped and the final segment is
// redirected to the first knot, which takes over the dropped knot's in
// vector (averaged with its own when it already had one). Otherwise a
// linear closing segment is added. A spline needs at least two knots to be
// closed.
func (s *Spline) Close() error {
	if s.closed {
		return errClosed("Close")
	}
	n := len(s.knots)
	if n < 2 {
		return fmt.Errorf("spline: Close with %d knots: %w", n, vg.ErrWrongState)
	}

	first, last := &s.knots[0], s.knots[n-1]
	if first.PositionEquals(last, closeEpsilon) {
		in := last.in
		if !first.in.IsZero() {
			in = first.in.Add(last.in).Div(2)
		}
		first.SetInVector(in)
		s.knots = s.knots[:n-1]
		s.segs[len(s.segs)-1].seg.end = 0
	} else {
		chord := first.pos.Sub(last.pos)
		s.knots[n-1].SetOutVector(chord.Div(3))
		first.SetInVector(chord.Div(-3))
		seg := &Segment{spline: s, start: n - 1, end: 0, typ: Linear}
		s.segs = append(s.segs, segEntry{seg: seg})
	}
	s.closed = true
	s.recompute()

	vg.Logger().Debug("spline: closed",
		"knots", len(s.knots), "segments", len(s.segs), "length", s.Length())
	return nil
}

// Position returns the point at the given fraction of the total arc length.
// The ratio is clamped to [0, 1]. A spline of zero length reports its first
// knot; an empty spline is an error.
func (s *Spline) Position(ratio float64) (vg.Point, error) {
	if len(s.knots) == 0 {
		return vg.Point{}, fmt.Errorf("spline: Position on empty spline: %w", vg.ErrWrongState)
	}
	if math.IsNaN(ratio) {
		return vg.Point{}, fmt.Errorf("spline: Position ratio NaN: %w", vg.ErrInvalidParameter)
	}
	total := s.Length()
	if len(s.segs) == 0 || total == 0 {
		return s.knots[0].pos, nil
	}

	ratio = clampUnit(ratio)
	target := ratio * total
	i := sort.Search(len(s.segs), func(i int) bool { return s.segs[i].cum >= target })
	if i == len(s.segs) {
		i = len(s.segs) - 1
	}
	var prior float64
	if i > 0 {
		prior = s.segs[i-1].cum
	}
	seg := s.segs[i].seg
	if seg.length == 0 {
		return seg.Position(0), nil
	}
	return seg.Position((target - prior) / seg.length), nil
}

// Sample returns n points evenly spaced by arc length, including both ends.
func (s *Spline) Sample(n int) ([]vg.Point, error) {
	if n < 2 {
		return nil, fmt.Errorf("spline: Sample(%d) needs at least 2 points: %w", n, vg.ErrInvalidParameter)
	}
	if len(s.knots) == 0 {
		return nil, fmt.Errorf("spline: Sample on empty spline: %w", vg.ErrWrongState)
	}
	pts := make([]vg.Point, n)
	for i := range pts {
		p, err := s.Position(float64(i) / float64(n-1))
		if err != nil {
			return nil, err
		}
		pts[i] = p
	}
	return pts, nil
}

// MergeSegments fuses segment i with segment i+1, removing the knot they
// share. The outer tangent arms are stretched by the ratio of the combined
// length to each part's length so the merged curve keeps the overall shape.
// Two linear segments merge into a linear one; anything else becomes cubic.
func (s *Spline) MergeSegments(i int) error {
	if i < 0 || i+1 >= len(s.segs) {
		return fmt.Errorf("spline: merge segment %d of %d: %w", i, len(s.segs), vg.ErrInvalidParameter)
	}
	a, b := s.segs[i].seg, s.segs[i+1].seg
	mid := a.end
	l1, l2 := a.length, b.length
	total := l1 + l2

	typ := Cubic
	if a.typ == Linear && b.typ == Linear {
		typ = Linear
	}

	if typ == Cubic {
		start, end := &s.knots[a.start], &s.knots[b.end]
		out := mergedArm(start.out, a, true)
		in := mergedArm(end.in, b, false)
		if l1 > 0 {
			out = out.Mul(total / l1)
		}
		if l2 > 0 {
			in = in.Mul(total / l2)
		}
		start.SetOutVector(out)
		end.SetInVector(in)
	}

	a.end = b.end
	a.typ = typ
	b.spline = nil
	s.segs = append(s.segs[:i+1], s.segs[i+2:]...)
	s.knots = append(s.knots[:mid], s.knots[mid+1:]...)
	for _, e := range s.segs {
		if e.seg.start > mid {
			e.seg.start--
		}
		if e.seg.end > mid {
			e.seg.end--
		}
	}
	s.recompute()

	vg.Logger().Debug("spline: merged segments",
		"index", i, "removed_knot", mid, "segments", len(s.segs))
	return nil
}

// mergedArm returns the tangent arm a segment contributes to a merge. A
// quadratic segment's arms are converted to their cubic equivalents; a
// linear segment uses its chord thirds.
func mergedArm(arm vg.Point, seg *Segment, outgoing bool) vg.Point {
	pts := seg.Points()
	switch seg.typ {
	case Linear:
		chord := pts[1].Sub(pts[0]).Div(3)
		if outgoing {
			return chord
		}
		return chord.Neg()
	case Quadratic:
		if outgoing {
			return pts[1].Sub(pts[0]).Mul(2.0 / 3)
		}
		return pts[1].Sub(pts[2]).Mul(2.0 / 3)
	}
	return arm
}

// Transform applies m to every knot and re-measures the spline.
func (s *Spline) Transform(m vg.Matrix) {
	for i := range s.knots {
		s.knots[i].Transform(m)
	}
	s.recompute()
}

// Bounds returns the tight bounding box of the curve. An empty spline has
// an empty box at the origin.
func (s *Spline) Bounds() vg.Rect {
	switch {
	case len(s.knots) == 0:
		return vg.Rect{}
	case len(s.segs) == 0:
		p := s.knots[0].pos
		return vg.Rect{X: p.X, Y: p.Y}
	}
	bbox := s.segs[0].seg.Bounds()
	for _, e := range s.segs[1:] {
		bbox = bbox.Union(e.seg.Bounds())
	}
	return bbox
}

// Emit writes the spline to sink, transformed by m.
func (s *Spline) Emit(sink vg.PathSink, m vg.Matrix) {
	if len(s.knots) == 0 {
		return
	}
	w := vg.SinkWriter{Sink: sink, Matrix: m}
	w.MoveTo(s.knots[0].pos)
	for _, e := range s.segs {
		pts := e.seg.Points()
		switch len(pts) {
		case 2:
			w.LineTo(pts[1])
		case 3:
			w.QuadTo(pts[1], pts[2])
		case 4:
			w.CubeTo(pts[1], pts[2], pts[3])
		}
	}
	if s.closed {
		w.ClosePath()
	}
}

// begin checks that drawing is allowed and supplies the implicit origin
// knot of an empty spline.
func (s *Spline) begin(op string) error {
	if s.closed {
		return errClosed(op)
	}
	if len(s.knots) == 0 {
		s.knots = append(s.knots, NewKnot(vg.Point{}, Corner))
	}
	return nil
}

func (s *Spline) resolve(p vg.Point, rel bool) vg.Point {
	if rel {
		return p.Add(s.CurrentPoint())
	}
	return p
}

// reflectedControl returns the control point a smooth curve command of the
// given type starts with.
func (s *Spline) reflectedControl(typ SegmentType) vg.Point {
	n := len(s.knots)
	cur := s.knots[n-1]
	if len(s.segs) == 0 || s.segs[len(s.segs)-1].seg.typ != typ {
		return cur.pos
	}
	prev := s.segs[len(s.segs)-1].seg.Points()
	return prev[len(prev)-2].ReflectAbout(cur.pos)
}

// appendSegment adds a knot at to and a segment reaching it from the
// current last knot.
func (s *Spline) appendSegment(typ SegmentType, out, in, to vg.Point) {
	last := len(s.knots) - 1
	prevIn := s.knots[last].in
	s.knots[last].SetOutVector(out)
	reshaped := s.knots[last].in != prevIn

	k := NewKnot(to, Corner)
	k.setVectors(in, vg.Point{})
	s.knots = append(s.knots, k)

	seg := &Segment{spline: s, start: last, end: last + 1, typ: typ}
	s.segs = append(s.segs, segEntry{seg: seg})

	if reshaped {
		// The type constraint moved the previous in vector, which reshapes
		// the segment before this one.
		s.recompute()
		return
	}
	s.measureFrom(len(s.segs) - 1)
}

// recompute re-measures every segment and rebuilds the cumulative table.
func (s *Spline) recompute() {
	s.measureFrom(0)
}

// measureFrom re-measures segments from index i onwards.
func (s *Spline) measureFrom(i int) {
	var cum float64
	if i > 0 {
		cum = s.segs[i-1].cum
	}
	delta := s.Delta()
	for ; i < len(s.segs); i++ {
		e := &s.segs[i]
		e.seg.length = e.seg.computeLength(delta)
		cum += e.seg.length
		e.cum = cum
	}
}

func (s *Spline) indexOf(seg *Segment) int {
	for i, e := range s.segs {
		if e.seg == seg {
			return i
		}
	}
	return -1
}

func errClosed(op string) error {
	return fmt.Errorf("spline: %s on closed spline: %w", op, vg.ErrWrongState)
}
