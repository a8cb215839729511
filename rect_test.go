package vg

import "testing"

func TestRect_NewRect(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		w, h float64
		want Rect
	}{
		{"positive", 0, 0, 10, 5, Rect{0, 0, 10, 5}},
		{"negative width", 10, 0, -10, 5, Rect{0, 0, 10, 5}},
		{"negative height", 0, 5, 10, -5, Rect{0, 0, 10, 5}},
		{"both negative", 10, 5, -10, -5, Rect{0, 0, 10, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewRect(tt.x, tt.y, tt.w, tt.h); got != tt.want {
				t.Errorf("NewRect() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRect_FromPointsAndBounds(t *testing.T) {
	r := RectFromPoints(Pt(10, 10), Pt(0, 5))
	if r != (Rect{0, 5, 10, 5}) {
		t.Errorf("RectFromPoints() = %+v", r)
	}

	b := BoundsOf([]Point{{3, 4}, {-1, 2}, {5, -3}})
	if b != (Rect{-1, -3, 6, 7}) {
		t.Errorf("BoundsOf() = %+v", b)
	}
	if BoundsOf(nil) != (Rect{}) {
		t.Error("BoundsOf(nil) should be the zero Rect")
	}
}

func TestRect_Edges(t *testing.T) {
	r := NewRect(1, 2, 3, 4)
	if r.Left() != 1 || r.Top() != 2 || r.Right() != 4 || r.Bottom() != 6 {
		t.Errorf("edges = %v %v %v %v", r.Left(), r.Top(), r.Right(), r.Bottom())
	}
	if r.Center() != Pt(2.5, 4) {
		t.Errorf("Center() = %v", r.Center())
	}
	if r.Size() != Sz(3, 4) {
		t.Errorf("Size() = %v", r.Size())
	}
	if r.Min() != Pt(1, 2) || r.Max() != Pt(4, 6) {
		t.Errorf("Min/Max = %v %v", r.Min(), r.Max())
	}
}

func TestRect_Contains(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	tests := []struct {
		p    Point
		want bool
	}{
		{Pt(5, 5), true},
		{Pt(0, 0), true},
		{Pt(10, 10), true},
		{Pt(-1, 5), false},
		{Pt(5, 11), false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
	if !r.ContainsRect(NewRect(2, 2, 3, 3)) {
		t.Error("ContainsRect inner = false")
	}
	if r.ContainsRect(NewRect(8, 8, 3, 3)) {
		t.Error("ContainsRect overlapping = true")
	}
}

func TestRect_UnionIntersect(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 5, 10, 10)

	if got := a.Union(b); got != (Rect{0, 0, 15, 15}) {
		t.Errorf("Union() = %+v", got)
	}

	got, ok := a.Intersect(b)
	if !ok || got != (Rect{5, 5, 5, 5}) {
		t.Errorf("Intersect() = %+v, %v", got, ok)
	}

	if _, ok := a.Intersect(NewRect(20, 20, 1, 1)); ok {
		t.Error("disjoint rectangles reported as intersecting")
	}
}

func TestRect_InflateOffset(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	if got := r.Inflate(1, 2); got != (Rect{-1, -2, 12, 14}) {
		t.Errorf("Inflate() = %+v", got)
	}
	if got := r.Offset(3, -3); got != (Rect{3, -3, 10, 10}) {
		t.Errorf("Offset() = %+v", got)
	}
	if !(Rect{0, 0, 0, 5}).IsEmpty() {
		t.Error("zero-width rect should be empty")
	}
}
