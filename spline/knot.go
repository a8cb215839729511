package spline

import (
	"fmt"
	"strings"

	"github.com/gogpu/vg"
)

// KnotType governs how a knot's two tangent vectors relate to each other.
type KnotType int

const (
	// Corner knots have independent in and out vectors.
	Corner KnotType = iota

	// Curve knots keep the out vector pointing opposite the in vector;
	// the two magnitudes are independent.
	Curve

	// Symmetric knots keep the out vector equal to the negated in vector.
	Symmetric
)

// String returns the lower-case type name.
func (t KnotType) String() string {
	switch t {
	case Corner:
		return "corner"
	case Curve:
		return "curve"
	case Symmetric:
		return "symmetric"
	default:
		return fmt.Sprintf("KnotType(%d)", int(t))
	}
}

func (t KnotType) valid() bool {
	return t >= Corner && t <= Symmetric
}

// ParseKnotType parses a knot type name (case-insensitive).
func ParseKnotType(s string) (KnotType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "corner":
		return Corner, nil
	case "curve", "smooth":
		return Curve, nil
	case "symmetric":
		return Symmetric, nil
	}
	return Corner, fmt.Errorf("spline: unknown knot type %q: %w", s, vg.ErrInvalidParameter)
}

// Knot is a spline anchor: a position with an incoming and an outgoing
// tangent vector, both relative to the position. The in vector points back
// towards the previous segment's last control point, the out vector towards
// the next segment's first control point.
//
// The zero value is a Corner knot at the origin.
type Knot struct {
	typ KnotType
	pos vg.Point
	in  vg.Point
	out vg.Point
}

// NewKnot creates a knot with zero tangent vectors.
func NewKnot(pos vg.Point, typ KnotType) Knot {
	if !typ.valid() {
		typ = Corner
	}
	return Knot{typ: typ, pos: pos}
}

// Type returns the knot type.
func (k Knot) Type() KnotType { return k.typ }

// Position returns the anchor position.
func (k Knot) Position() vg.Point { return k.pos }

// InVector returns the incoming tangent vector.
func (k Knot) InVector() vg.Point { return k.in }

// OutVector returns the outgoing tangent vector.
func (k Knot) OutVector() vg.Point { return k.out }

// InPoint returns the absolute position of the incoming control point.
func (k Knot) InPoint() vg.Point { return k.pos.Add(k.in) }

// OutPoint returns the absolute position of the outgoing control point.
func (k Knot) OutPoint() vg.Point { return k.pos.Add(k.out) }

// SetPosition moves the anchor; tangent vectors move with it.
func (k *Knot) SetPosition(p vg.Point) {
	k.pos = p
}

// SetInVector sets the incoming vector and re-derives the outgoing one as
// the knot type requires.
func (k *Knot) SetInVector(v vg.Point) {
	k.in = v
	k.out = k.typ.opposite(v, k.out)
}

// SetOutVector sets the outgoing vector and re-derives the incoming one as
// the knot type requires.
func (k *Knot) SetOutVector(v vg.Point) {
	k.out = v
	k.in = k.typ.opposite(v, k.in)
}

// setVectors assigns both vectors without applying the type constraint.
// The spline uses it when the vectors come straight from path commands.
func (k *Knot) setVectors(in, out vg.Point) {
	k.in, k.out = in, out
}

// SetType changes the knot type. Moving to Curve or Symmetric re-derives
// both vectors from their average direction (out - in) / 2.
func (k *Knot) SetType(t KnotType) error {
	if !t.valid() {
		return fmt.Errorf("spline: knot type %d: %w", int(t), vg.ErrInvalidParameter)
	}
	*k = retype(*k, t)
	return nil
}

// opposite derives the vector across the knot from the one just set.
// cur is the current value of the vector being derived.
func (t KnotType) opposite(set, cur vg.Point) vg.Point {
	switch t {
	case Curve:
		if set.IsZero() {
			return cur
		}
		return set.Normalize().Mul(-cur.Length())
	case Symmetric:
		return set.Neg()
	default:
		return cur
	}
}

// retype is the knot state transition function.
func retype(k Knot, t KnotType) Knot {
	k.typ = t
	if t == Corner {
		return k
	}

	avg := k.out.Sub(k.in).Div(2)
	switch t {
	case Curve:
		dir := avg.Normalize()
		if dir.IsZero() {
			dir = k.out.Normalize()
		}
		if dir.IsZero() {
			dir = k.in.Neg().Normalize()
		}
		inLen, outLen := k.in.Length(), k.out.Length()
		k.out = dir.Mul(outLen)
		k.in = dir.Mul(-inLen)
	case Symmetric:
		k.out = avg
		k.in = avg.Neg()
	}
	return k
}

// Equals reports whether both knots have the same type, position and vectors.
func (k Knot) Equals(other Knot) bool {
	return k == other
}

// PositionEquals reports whether the anchors coincide within eps.
func (k Knot) PositionEquals(other Knot, eps float64) bool {
	return k.pos.ApproxEqual(other.pos, eps)
}

// Transform applies m to the position and its linear part to the vectors.
func (k *Knot) Transform(m vg.Matrix) {
	k.pos = m.TransformPoint(k.pos)
	k.in = m.TransformVector(k.in)
	k.out = m.TransformVector(k.out)
}
