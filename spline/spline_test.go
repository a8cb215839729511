package spline

import (
	"errors"
	"fmt"
	"image"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/image/vector"

	"github.com/gogpu/vg"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

// polyline builds an open spline through pts.
func polyline(t *testing.T, pts ...vg.Point) *Spline {
	t.Helper()
	s := New()
	if err := s.MoveTo(pts[0], false); err != nil {
		t.Fatal(err)
	}
	for _, p := range pts[1:] {
		if err := s.LineTo(p, false); err != nil {
			t.Fatal(err)
		}
	}
	return s
}

func square(t *testing.T) *Spline {
	t.Helper()
	s := polyline(t, vg.Pt(0, 0), vg.Pt(10, 0), vg.Pt(10, 10), vg.Pt(0, 10))
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	return s
}

func mustPosition(t *testing.T, s *Spline, ratio float64) vg.Point {
	t.Helper()
	p, err := s.Position(ratio)
	if err != nil {
		t.Fatalf("Position(%v) error: %v", ratio, err)
	}
	return p
}

func mustSegment(t *testing.T, s *Spline, i int) *Segment {
	t.Helper()
	seg, err := s.Segment(i)
	if err != nil {
		t.Fatal(err)
	}
	return seg
}

func TestSpline_Polyline(t *testing.T) {
	s := polyline(t, vg.Pt(0, 0), vg.Pt(10, 0), vg.Pt(10, 10))

	if s.KnotCount() != 3 || s.SegmentCount() != 2 {
		t.Fatalf("counts = %d knots, %d segments, want 3, 2", s.KnotCount(), s.SegmentCount())
	}
	if s.Length() != 20 {
		t.Errorf("Length() = %v, want 20", s.Length())
	}
	if got := mustPosition(t, s, 0.5); got != vg.Pt(10, 0) {
		t.Errorf("Position(0.5) = %v, want (10, 0)", got)
	}
	if got := mustPosition(t, s, 0); got != vg.Pt(0, 0) {
		t.Errorf("Position(0) = %v, want start", got)
	}
	if got := mustPosition(t, s, 1); !ptEq(got, vg.Pt(10, 10)) {
		t.Errorf("Position(1) = %v, want end", got)
	}
	if got := mustPosition(t, s, 0.25); !ptEq(got, vg.Pt(5, 0)) {
		t.Errorf("Position(0.25) = %v, want (5, 0)", got)
	}
}

func TestSpline_PositionClamps(t *testing.T) {
	s := polyline(t, vg.Pt(0, 0), vg.Pt(10, 0))
	if got := mustPosition(t, s, -3); got != vg.Pt(0, 0) {
		t.Errorf("Position(-3) = %v, want start", got)
	}
	if got := mustPosition(t, s, 7); !ptEq(got, vg.Pt(10, 0)) {
		t.Errorf("Position(7) = %v, want end", got)
	}
	if _, err := s.Position(math.NaN()); !errors.Is(err, vg.ErrInvalidParameter) {
		t.Errorf("Position(NaN) error = %v", err)
	}
}

func TestSpline_PositionDegenerate(t *testing.T) {
	if _, err := New().Position(0.5); !errors.Is(err, vg.ErrWrongState) {
		t.Errorf("empty Position error = %v, want ErrWrongState", err)
	}

	single := New()
	if err := single.MoveTo(vg.Pt(5, 5), false); err != nil {
		t.Fatal(err)
	}
	if got := mustPosition(t, single, 0.7); got != vg.Pt(5, 5) {
		t.Errorf("single knot Position = %v, want (5, 5)", got)
	}

	// All knots coincide: zero length reports the first knot.
	flat := polyline(t, vg.Pt(2, 2), vg.Pt(2, 2), vg.Pt(2, 2))
	if flat.Length() != 0 {
		t.Errorf("Length() = %v, want 0", flat.Length())
	}
	if got := mustPosition(t, flat, 0.5); got != vg.Pt(2, 2) {
		t.Errorf("zero-length Position = %v, want (2, 2)", got)
	}
}

func TestSpline_ImplicitOrigin(t *testing.T) {
	s := New()
	if err := s.LineTo(vg.Pt(3, 4), false); err != nil {
		t.Fatal(err)
	}
	k, _ := s.Knot(0)
	if s.KnotCount() != 2 || k.Position() != (vg.Point{}) {
		t.Errorf("knots = %v", s.Knots())
	}
	if s.Length() != 5 {
		t.Errorf("Length() = %v, want 5", s.Length())
	}
}

func TestSpline_RelativeCommands(t *testing.T) {
	s := New()
	steps := []struct {
		name string
		do   func() error
		want vg.Point
	}{
		{"move", func() error { return s.MoveTo(vg.Pt(1, 1), false) }, vg.Pt(1, 1)},
		{"line rel", func() error { return s.LineTo(vg.Pt(2, 0), true) }, vg.Pt(3, 1)},
		{"hline rel", func() error { return s.HLineTo(2, true) }, vg.Pt(5, 1)},
		{"vline abs", func() error { return s.VLineTo(-1, false) }, vg.Pt(5, -1)},
		{"hline abs", func() error { return s.HLineTo(0, false) }, vg.Pt(0, -1)},
		{"vline rel", func() error { return s.VLineTo(4, true) }, vg.Pt(0, 3)},
		{"curve rel", func() error { return s.Curve4(vg.Pt(1, 0), vg.Pt(2, 1), vg.Pt(2, 2), true) }, vg.Pt(2, 5)},
	}
	for _, st := range steps {
		if err := st.do(); err != nil {
			t.Fatalf("%s: %v", st.name, err)
		}
		if got := s.CurrentPoint(); !ptEq(got, st.want) {
			t.Fatalf("%s: current point = %v, want %v", st.name, got, st.want)
		}
	}

	// The relative cubic's controls resolve against its start point.
	last := mustSegment(t, s, s.SegmentCount()-1)
	want := []vg.Point{vg.Pt(0, 3), vg.Pt(1, 3), vg.Pt(2, 4), vg.Pt(2, 5)}
	if diff := cmp.Diff(want, last.Points(), approx); diff != "" {
		t.Errorf("relative cubic (-want +got):\n%s", diff)
	}
}

func TestSpline_Curve4Knots(t *testing.T) {
	s := New()
	if err := s.Curve4(vg.Pt(0, 10), vg.Pt(10, 10), vg.Pt(10, 0), false); err != nil {
		t.Fatal(err)
	}
	k0, _ := s.Knot(0)
	k1, _ := s.Knot(1)
	if k0.OutVector() != vg.Pt(0, 10) {
		t.Errorf("start out = %v, want (0, 10)", k0.OutVector())
	}
	if k1.InVector() != vg.Pt(0, 10) {
		t.Errorf("end in = %v, want (0, 10)", k1.InVector())
	}

	seg := mustSegment(t, s, 0)
	if seg.Type() != Cubic {
		t.Errorf("Type() = %v, want cubic", seg.Type())
	}
	want := []vg.Point{vg.Pt(0, 0), vg.Pt(0, 10), vg.Pt(10, 10), vg.Pt(10, 0)}
	if diff := cmp.Diff(want, seg.Points()); diff != "" {
		t.Errorf("Points() (-want +got):\n%s", diff)
	}
	if got := seg.Position(0.5); !ptEq(got, vg.Pt(5, 7.5)) {
		t.Errorf("Position(0.5) = %v, want (5, 7.5)", got)
	}
}

func TestSpline_Curve3(t *testing.T) {
	s := New()
	if err := s.Curve3(vg.Pt(5, 10), vg.Pt(10, 0), false); err != nil {
		t.Fatal(err)
	}
	seg := mustSegment(t, s, 0)
	want := []vg.Point{vg.Pt(0, 0), vg.Pt(5, 10), vg.Pt(10, 0)}
	if diff := cmp.Diff(want, seg.Points()); diff != "" {
		t.Errorf("Points() (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(vg.NewRect(0, 0, 10, 5), s.Bounds(), approx); diff != "" {
		t.Errorf("Bounds() (-want +got):\n%s", diff)
	}
	if got := seg.Tangent(0.5); !ptEq(got, vg.Pt(10, 0)) {
		t.Errorf("Tangent(0.5) = %v, want (10, 0)", got)
	}
}

func TestSpline_SmoothCurves(t *testing.T) {
	t.Run("cubic reflects", func(t *testing.T) {
		s := New()
		_ = s.Curve4(vg.Pt(0, 5), vg.Pt(5, 10), vg.Pt(10, 10), false)
		if err := s.SmoothCurve4(vg.Pt(20, 5), vg.Pt(20, 0), false); err != nil {
			t.Fatal(err)
		}
		k1, _ := s.Knot(1)
		if k1.OutVector() != vg.Pt(5, 0) {
			t.Errorf("reflected out = %v, want (5, 0)", k1.OutVector())
		}
		if got := mustSegment(t, s, 1).Points()[1]; got != vg.Pt(15, 10) {
			t.Errorf("first control = %v, want (15, 10)", got)
		}
	})

	t.Run("cubic after line", func(t *testing.T) {
		s := polyline(t, vg.Pt(0, 0), vg.Pt(10, 0))
		if err := s.SmoothCurve4(vg.Pt(15, 5), vg.Pt(20, 0), false); err != nil {
			t.Fatal(err)
		}
		if got := mustSegment(t, s, 1).Points()[1]; got != vg.Pt(10, 0) {
			t.Errorf("first control = %v, want current point", got)
		}
	})

	t.Run("quadratic reflects", func(t *testing.T) {
		s := New()
		_ = s.Curve3(vg.Pt(5, 10), vg.Pt(10, 0), false)
		if err := s.SmoothCurve3(vg.Pt(20, 0), false); err != nil {
			t.Fatal(err)
		}
		if got := mustSegment(t, s, 1).Points()[1]; got != vg.Pt(15, -10) {
			t.Errorf("control = %v, want (15, -10)", got)
		}
	})
}

func TestSpline_CloseAddsSegment(t *testing.T) {
	s := square(t)

	if !s.Closed() {
		t.Fatal("Closed() = false")
	}
	if s.KnotCount() != 4 || s.SegmentCount() != 4 {
		t.Fatalf("counts = %d, %d, want 4, 4", s.KnotCount(), s.SegmentCount())
	}
	last := mustSegment(t, s, 3)
	if last.Start() != 3 || last.End() != 0 || last.Type() != Linear {
		t.Errorf("closing segment = %d->%d %v", last.Start(), last.End(), last.Type())
	}
	if s.Length() != 40 {
		t.Errorf("Length() = %v, want 40", s.Length())
	}
	if got := mustPosition(t, s, 0.875); !ptEq(got, vg.Pt(0, 5)) {
		t.Errorf("Position(0.875) = %v, want (0, 5)", got)
	}
	k0, _ := s.Knot(0)
	if !ptEq(k0.InVector(), vg.Pt(0, 10.0/3)) {
		t.Errorf("first in = %v, want (0, 10/3)", k0.InVector())
	}
}

func TestSpline_CloseCoincident(t *testing.T) {
	s := polyline(t, vg.Pt(0, 0), vg.Pt(10, 0), vg.Pt(10, 10), vg.Pt(0, 0))
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if s.KnotCount() != 3 || s.SegmentCount() != 3 {
		t.Fatalf("counts = %d, %d, want 3, 3", s.KnotCount(), s.SegmentCount())
	}
	if end := mustSegment(t, s, 2).End(); end != 0 {
		t.Errorf("last segment ends at %d, want 0", end)
	}
	want := 20 + math.Sqrt(200)
	if math.Abs(s.Length()-want) > eps {
		t.Errorf("Length() = %v, want %v", s.Length(), want)
	}
	// The first knot inherits the dropped knot's in vector.
	k0, _ := s.Knot(0)
	if !ptEq(k0.InVector(), vg.Pt(10.0/3, 10.0/3)) {
		t.Errorf("first in = %v, want (10/3, 10/3)", k0.InVector())
	}
}

func TestSpline_CloseCoincidentAveragesIn(t *testing.T) {
	s := polyline(t, vg.Pt(0, 0), vg.Pt(10, 0), vg.Pt(10, 10), vg.Pt(0, 0))
	k0, _ := s.Knot(0)
	k0.SetInVector(vg.Pt(-2, 0))
	if err := s.SetKnot(0, k0); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	k0, _ = s.Knot(0)
	if !ptEq(k0.InVector(), vg.Pt(2.0/3, 5.0/3)) {
		t.Errorf("first in = %v, want (2/3, 5/3)", k0.InVector())
	}
}

func TestSpline_CloseErrors(t *testing.T) {
	if err := New().Close(); !errors.Is(err, vg.ErrWrongState) {
		t.Errorf("Close on empty = %v", err)
	}
	one := New()
	_ = one.MoveTo(vg.Pt(1, 1), false)
	if err := one.Close(); !errors.Is(err, vg.ErrWrongState) {
		t.Errorf("Close on single knot = %v", err)
	}
	if one.Closed() {
		t.Error("failed Close marked spline closed")
	}

	s := square(t)
	length := s.Length()
	ops := map[string]func() error{
		"Close":        s.Close,
		"MoveTo":       func() error { return s.MoveTo(vg.Pt(1, 1), false) },
		"LineTo":       func() error { return s.LineTo(vg.Pt(1, 1), false) },
		"HLineTo":      func() error { return s.HLineTo(1, false) },
		"Curve3":       func() error { return s.Curve3(vg.Pt(1, 1), vg.Pt(2, 2), false) },
		"Curve4":       func() error { return s.Curve4(vg.Pt(1, 1), vg.Pt(2, 2), vg.Pt(3, 3), false) },
		"SmoothCurve4": func() error { return s.SmoothCurve4(vg.Pt(2, 2), vg.Pt(3, 3), false) },
	}
	for name, op := range ops {
		if err := op(); !errors.Is(err, vg.ErrWrongState) {
			t.Errorf("%s on closed spline = %v, want ErrWrongState", name, err)
		}
	}
	if s.KnotCount() != 4 || s.SegmentCount() != 4 || s.Length() != length {
		t.Error("rejected commands modified the spline")
	}
}

func TestSpline_Clear(t *testing.T) {
	s := square(t)
	seg := mustSegment(t, s, 0)
	s.Clear()

	if s.KnotCount() != 0 || s.SegmentCount() != 0 || s.Closed() || s.Length() != 0 {
		t.Errorf("Clear left state: %d knots, %d segs, closed=%v", s.KnotCount(), s.SegmentCount(), s.Closed())
	}
	if !seg.Detached() || seg.Points() != nil {
		t.Error("segment not detached by Clear")
	}
	if err := seg.SetType(Cubic); !errors.Is(err, vg.ErrWrongState) {
		t.Errorf("SetType on detached segment = %v", err)
	}
	if err := s.LineTo(vg.Pt(1, 0), false); err != nil {
		t.Errorf("LineTo after Clear: %v", err)
	}
}

func TestSpline_MergeLinear(t *testing.T) {
	s := polyline(t, vg.Pt(0, 0), vg.Pt(10, 0), vg.Pt(20, 0))
	if err := s.MergeSegments(0); err != nil {
		t.Fatal(err)
	}
	if s.KnotCount() != 2 || s.SegmentCount() != 1 {
		t.Fatalf("counts = %d, %d, want 2, 1", s.KnotCount(), s.SegmentCount())
	}
	seg := mustSegment(t, s, 0)
	if seg.Type() != Linear || seg.Start() != 0 || seg.End() != 1 {
		t.Errorf("merged = %d->%d %v", seg.Start(), seg.End(), seg.Type())
	}
	if s.Length() != 20 {
		t.Errorf("Length() = %v, want 20", s.Length())
	}
}

func TestSpline_MergeCurved(t *testing.T) {
	s := polyline(t, vg.Pt(0, 0), vg.Pt(10, 0))
	_ = s.Curve4(vg.Pt(15, 0), vg.Pt(20, 5), vg.Pt(20, 10), false)
	_ = s.LineTo(vg.Pt(20, 20), false)

	a := mustSegment(t, s, 0)
	b := mustSegment(t, s, 1)
	l1, l2 := a.Length(), b.Length()

	if err := a.Merge(b); err != nil {
		t.Fatal(err)
	}
	if !b.Detached() {
		t.Error("merged-away segment still attached")
	}
	if s.KnotCount() != 3 || s.SegmentCount() != 2 {
		t.Fatalf("counts = %d, %d, want 3, 2", s.KnotCount(), s.SegmentCount())
	}
	if a.Type() != Cubic || a.End() != 1 {
		t.Errorf("merged = %d->%d %v", a.Start(), a.End(), a.Type())
	}
	// The trailing segment was re-indexed onto the surviving knots.
	tail := mustSegment(t, s, 1)
	if tail.Start() != 1 || tail.End() != 2 {
		t.Errorf("tail = %d->%d, want 1->2", tail.Start(), tail.End())
	}

	k0, _ := s.Knot(0)
	wantOut := vg.Pt(10.0/3, 0).Mul((l1 + l2) / l1)
	if !ptEq(k0.OutVector(), wantOut) {
		t.Errorf("start out = %v, want %v", k0.OutVector(), wantOut)
	}
	if got := mustPosition(t, s, 0); got != vg.Pt(0, 0) {
		t.Errorf("start = %v", got)
	}
	if got := a.Position(1); !ptEq(got, vg.Pt(20, 10)) {
		t.Errorf("merged end = %v, want (20, 10)", got)
	}
}

func TestSpline_MergeErrors(t *testing.T) {
	s := polyline(t, vg.Pt(0, 0), vg.Pt(10, 0), vg.Pt(20, 0))
	for _, i := range []int{-1, 1, 5} {
		if err := s.MergeSegments(i); !errors.Is(err, vg.ErrInvalidParameter) {
			t.Errorf("MergeSegments(%d) = %v, want ErrInvalidParameter", i, err)
		}
	}
	if s.SegmentCount() != 2 {
		t.Errorf("rejected merge changed segment count to %d", s.SegmentCount())
	}

	a, b := mustSegment(t, s, 0), mustSegment(t, s, 1)
	if err := b.Merge(a); !errors.Is(err, vg.ErrInvalidParameter) {
		t.Errorf("reverse Merge = %v", err)
	}
	other := polyline(t, vg.Pt(0, 0), vg.Pt(1, 1))
	if err := a.Merge(mustSegment(t, other, 0)); !errors.Is(err, vg.ErrInvalidParameter) {
		t.Errorf("cross-spline Merge = %v", err)
	}
}

func TestSpline_MergeClosed(t *testing.T) {
	s := square(t)
	if err := s.MergeSegments(2); err != nil {
		t.Fatal(err)
	}
	if s.KnotCount() != 3 || s.SegmentCount() != 3 || !s.Closed() {
		t.Fatalf("counts = %d, %d closed=%v", s.KnotCount(), s.SegmentCount(), s.Closed())
	}
	last := mustSegment(t, s, 2)
	if last.Start() != 2 || last.End() != 0 {
		t.Errorf("last = %d->%d, want 2->0", last.Start(), last.End())
	}
	want := 20 + math.Sqrt(200)
	if math.Abs(s.Length()-want) > eps {
		t.Errorf("Length() = %v, want %v", s.Length(), want)
	}
}

func TestSpline_SetKnot(t *testing.T) {
	s := polyline(t, vg.Pt(0, 0), vg.Pt(10, 0), vg.Pt(10, 10))
	k, _ := s.Knot(1)
	k.SetPosition(vg.Pt(0, 10))
	if err := s.SetKnot(1, k); err != nil {
		t.Fatal(err)
	}
	if s.Length() != 20 {
		t.Errorf("Length() = %v, want 20", s.Length())
	}
	if err := s.SetKnot(3, k); !errors.Is(err, vg.ErrInvalidParameter) {
		t.Errorf("SetKnot(3) = %v", err)
	}
	if _, err := s.Knot(-1); !errors.Is(err, vg.ErrInvalidParameter) {
		t.Errorf("Knot(-1) = %v", err)
	}
	if _, err := s.Segment(2); !errors.Is(err, vg.ErrInvalidParameter) {
		t.Errorf("Segment(2) = %v", err)
	}
}

func TestSpline_SegmentSetType(t *testing.T) {
	s := New()
	_ = s.Curve4(vg.Pt(0, 10), vg.Pt(10, 10), vg.Pt(10, 0), false)
	seg := mustSegment(t, s, 0)
	curved := s.Length()

	if err := seg.SetType(Linear); err != nil {
		t.Fatal(err)
	}
	if s.Length() != 10 || curved <= 10 {
		t.Errorf("length %v -> %v, want curved > 10 then 10", curved, s.Length())
	}
	if err := seg.SetType(SegmentType(4)); !errors.Is(err, vg.ErrInvalidParameter) {
		t.Errorf("SetType(4) = %v", err)
	}
}

func TestSpline_Transform(t *testing.T) {
	s := polyline(t, vg.Pt(0, 0), vg.Pt(10, 0), vg.Pt(10, 10))
	s.Transform(vg.Scaling(2, 2))
	if s.Length() != 40 {
		t.Errorf("Length() = %v, want 40", s.Length())
	}
	k, _ := s.Knot(2)
	if k.Position() != vg.Pt(20, 20) {
		t.Errorf("knot 2 = %v, want (20, 20)", k.Position())
	}
}

func TestSpline_Sample(t *testing.T) {
	s := polyline(t, vg.Pt(0, 0), vg.Pt(10, 0), vg.Pt(10, 10))
	got, err := s.Sample(5)
	if err != nil {
		t.Fatal(err)
	}
	want := []vg.Point{vg.Pt(0, 0), vg.Pt(5, 0), vg.Pt(10, 0), vg.Pt(10, 5), vg.Pt(10, 10)}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("Sample(5) (-want +got):\n%s", diff)
	}
	if _, err := s.Sample(1); !errors.Is(err, vg.ErrInvalidParameter) {
		t.Errorf("Sample(1) = %v", err)
	}
}

func TestSpline_SetDelta(t *testing.T) {
	s := New()
	_ = s.Curve4(vg.Pt(0, 10), vg.Pt(10, 10), vg.Pt(10, 0), false)
	for _, d := range []float64{0, -1, math.Inf(1), math.NaN()} {
		if err := s.SetDelta(d); !errors.Is(err, vg.ErrInvalidParameter) {
			t.Errorf("SetDelta(%v) = %v", d, err)
		}
	}
	coarse := s.Length()
	if err := s.SetDelta(1e-8); err != nil {
		t.Fatal(err)
	}
	if math.Abs(s.Length()-coarse)/s.Length() > 1e-3 {
		t.Errorf("refined length %v too far from %v", s.Length(), coarse)
	}
	var zero Spline
	if zero.Delta() != DefaultDelta {
		t.Errorf("zero value Delta() = %v", zero.Delta())
	}
}

func TestSpline_Bounds(t *testing.T) {
	if got := New().Bounds(); got != (vg.Rect{}) {
		t.Errorf("empty Bounds() = %v", got)
	}
	s := New()
	_ = s.Curve4(vg.Pt(0, 10), vg.Pt(10, 10), vg.Pt(10, 0), false)
	_ = s.LineTo(vg.Pt(-5, 0), false)
	want := vg.NewRect(-5, 0, 15, 7.5)
	if diff := cmp.Diff(want, s.Bounds(), approx); diff != "" {
		t.Errorf("Bounds() (-want +got):\n%s", diff)
	}
}

type recordSink struct {
	ops []string
}

func (r *recordSink) MoveTo(x, y float32) { r.add("M", x, y) }
func (r *recordSink) LineTo(x, y float32) { r.add("L", x, y) }
func (r *recordSink) QuadTo(bx, by, cx, cy float32) {
	r.add("Q", bx, by, cx, cy)
}
func (r *recordSink) CubeTo(bx, by, cx, cy, dx, dy float32) {
	r.add("C", bx, by, cx, cy, dx, dy)
}
func (r *recordSink) ClosePath() { r.ops = append(r.ops, "Z") }

func (r *recordSink) add(op string, v ...float32) {
	parts := make([]string, len(v))
	for i, f := range v {
		parts[i] = fmt.Sprintf("%g", f)
	}
	r.ops = append(r.ops, op+strings.Join(parts, ","))
}

func TestSpline_Emit(t *testing.T) {
	s := New()
	_ = s.MoveTo(vg.Pt(0, 0), false)
	_ = s.Curve3(vg.Pt(5, 5), vg.Pt(10, 0), false)
	_ = s.Curve4(vg.Pt(10, 5), vg.Pt(5, 10), vg.Pt(0, 10), false)
	_ = s.Close()

	var rec recordSink
	s.Emit(&rec, vg.Translation(1, 1))
	want := []string{"M1,1", "Q6,6,11,1", "C11,6,6,11,1,11", "L1,1", "Z"}
	if diff := cmp.Diff(want, rec.ops); diff != "" {
		t.Errorf("Emit (-want +got):\n%s", diff)
	}

	var empty recordSink
	New().Emit(&empty, vg.Identity())
	if len(empty.ops) != 0 {
		t.Errorf("empty spline emitted %v", empty.ops)
	}
}

func TestSpline_EmitRasterizer(t *testing.T) {
	s := New()
	_ = s.MoveTo(vg.Pt(2, 2), false)
	_ = s.Curve4(vg.Pt(8, -2), vg.Pt(14, 2), vg.Pt(14, 8), false)
	_ = s.LineTo(vg.Pt(14, 14), false)
	_ = s.LineTo(vg.Pt(2, 14), false)
	_ = s.Close()

	r := vector.NewRasterizer(16, 16)
	s.Emit(r, vg.Identity())
	dst := image.NewAlpha(image.Rect(0, 0, 16, 16))
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

	if a := dst.AlphaAt(8, 8).A; a != 0xff {
		t.Errorf("interior alpha = %d, want 255", a)
	}
	if a := dst.AlphaAt(0, 15).A; a != 0 {
		t.Errorf("exterior alpha = %d, want 0", a)
	}
}

func BenchmarkSplinePosition(b *testing.B) {
	s := New()
	for i := 0; i < 64; i++ {
		x := float64(i * 10)
		_ = s.Curve4(vg.Pt(x+3, 5), vg.Pt(x+7, -5), vg.Pt(x+10, 0), false)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Position(0.37)
	}
}
