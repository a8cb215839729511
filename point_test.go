package vg

import (
	"math"
	"testing"

	"golang.org/x/image/math/fixed"
)

const epsilon = 1e-10

func pointsEqual(p1, p2 Point, eps float64) bool {
	return math.Abs(p1.X-p2.X) < eps && math.Abs(p1.Y-p2.Y) < eps
}

func TestPoint_Arithmetic(t *testing.T) {
	p := Pt(3, 4)
	q := Pt(1, -2)

	tests := []struct {
		name string
		got  Point
		want Point
	}{
		{"add", p.Add(q), Pt(4, 2)},
		{"sub", p.Sub(q), Pt(2, 6)},
		{"mul", p.Mul(2), Pt(6, 8)},
		{"div", p.Div(2), Pt(1.5, 2)},
		{"neg", p.Neg(), Pt(-3, -4)},
		{"perp", p.Perp(), Pt(-4, 3)},
		{"lerp mid", p.Lerp(q, 0.5), Pt(2, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !pointsEqual(tt.got, tt.want, epsilon) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestPoint_Products(t *testing.T) {
	p := Pt(3, 4)
	if got := p.Length(); got != 5 {
		t.Errorf("Length() = %v, want 5", got)
	}
	if got := p.LengthSquared(); got != 25 {
		t.Errorf("LengthSquared() = %v, want 25", got)
	}
	if got := p.Dot(Pt(2, 1)); got != 10 {
		t.Errorf("Dot() = %v, want 10", got)
	}
	if got := p.Cross(Pt(2, 1)); got != -5 {
		t.Errorf("Cross() = %v, want -5", got)
	}
	if got := Pt(0, 0).Distance(p); got != 5 {
		t.Errorf("Distance() = %v, want 5", got)
	}
}

func TestPoint_Normalize(t *testing.T) {
	n := Pt(3, 4).Normalize()
	if !pointsEqual(n, Pt(0.6, 0.8), epsilon) {
		t.Errorf("Normalize() = %v, want (0.6, 0.8)", n)
	}
	if z := (Point{}).Normalize(); z != (Point{}) {
		t.Errorf("zero.Normalize() = %v, want zero vector", z)
	}
}

func TestPoint_Rotate(t *testing.T) {
	got := Pt(1, 0).Rotate(math.Pi / 2)
	if !pointsEqual(got, Pt(0, 1), epsilon) {
		t.Errorf("Rotate(pi/2) = %v, want (0, 1)", got)
	}
}

func TestPoint_Reflection(t *testing.T) {
	tests := []struct {
		name string
		got  Point
		want Point
	}{
		{"about origin", Pt(2, 3).ReflectAbout(Pt(0, 0)), Pt(-2, -3)},
		{"about center", Pt(2, 3).ReflectAbout(Pt(5, 5)), Pt(8, 7)},
		{"across x axis", Pt(2, 3).ReflectAcross(Pt(0, 0), Pt(1, 0)), Pt(2, -3)},
		{"across diagonal", Pt(2, 0).ReflectAcross(Pt(0, 0), Pt(1, 1)), Pt(0, 2)},
		{"degenerate line", Pt(2, 3).ReflectAcross(Pt(1, 1), Pt(1, 1)), Pt(0, -1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !pointsEqual(tt.got, tt.want, epsilon) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestPoint_SideOfLine(t *testing.T) {
	a, b := Pt(0, 0), Pt(10, 0)
	tests := []struct {
		p    Point
		want int
	}{
		{Pt(5, 1), 1},
		{Pt(5, -1), -1},
		{Pt(20, 0), 0},
	}
	for _, tt := range tests {
		if got := tt.p.SideOfLine(a, b); got != tt.want {
			t.Errorf("%v.SideOfLine() = %d, want %d", tt.p, got, tt.want)
		}
	}
}

func TestPoint_Fixed(t *testing.T) {
	p := Pt(1.5, -2.25)
	f := p.Fixed()
	want := fixed.Point26_6{X: 96, Y: -144}
	if f != want {
		t.Errorf("Fixed() = %v, want %v", f, want)
	}
	if back := PointFromFixed(f); back != p {
		t.Errorf("PointFromFixed() = %v, want %v", back, p)
	}
}

func TestSize(t *testing.T) {
	if !Sz(0, 5).IsEmpty() {
		t.Error("zero-width size should be empty")
	}
	if got := Sz(1, 2).Add(Sz(3, 4)); got != Sz(4, 6) {
		t.Errorf("Add() = %v, want {4 6}", got)
	}
}
