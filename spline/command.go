package spline

import (
	"fmt"

	"github.com/gogpu/vg"
)

// Op identifies a path command.
type Op int

const (
	OpMoveTo Op = iota
	OpLineTo
	OpHLineTo
	OpVLineTo
	OpCurve3
	OpCurve4
	OpSmoothCurve3
	OpSmoothCurve4
	OpClose
)

var opNames = [...]string{
	OpMoveTo:       "MoveTo",
	OpLineTo:       "LineTo",
	OpHLineTo:      "HLineTo",
	OpVLineTo:      "VLineTo",
	OpCurve3:       "Curve3",
	OpCurve4:       "Curve4",
	OpSmoothCurve3: "SmoothCurve3",
	OpSmoothCurve4: "SmoothCurve4",
	OpClose:        "Close",
}

// opArity is the number of points each command takes.
var opArity = [...]int{
	OpMoveTo:       1,
	OpLineTo:       1,
	OpHLineTo:      1,
	OpVLineTo:      1,
	OpCurve3:       2,
	OpCurve4:       3,
	OpSmoothCurve3: 1,
	OpSmoothCurve4: 2,
	OpClose:        0,
}

func (op Op) String() string {
	if op < 0 || int(op) >= len(opNames) {
		return fmt.Sprintf("Op(%d)", int(op))
	}
	return opNames[op]
}

// Arity returns the number of points the command takes, or -1 for an
// unknown command.
func (op Op) Arity() int {
	if op < 0 || int(op) >= len(opArity) {
		return -1
	}
	return opArity[op]
}

// Command is one step of a path description. Pts holds the command's
// points in order with the end point last; HLineTo reads only Pts[0].X and
// VLineTo only Pts[0].Y. With Rel set, points are relative to the current
// point.
type Command struct {
	Op  Op
	Pts []vg.Point
	Rel bool
}

// svgOps maps SVG path letters (upper case) to commands.
var svgOps = map[byte]Op{
	'M': OpMoveTo,
	'L': OpLineTo,
	'H': OpHLineTo,
	'V': OpVLineTo,
	'Q': OpCurve3,
	'C': OpCurve4,
	'T': OpSmoothCurve3,
	'S': OpSmoothCurve4,
	'Z': OpClose,
}

// CommandFromSVG builds a command from an SVG path letter and its numeric
// arguments. Lower-case letters are relative. H and V take one number, the
// others two per point.
func CommandFromSVG(letter byte, args []float64) (Command, error) {
	rel := letter >= 'a' && letter <= 'z'
	upper := letter
	if rel {
		upper -= 'a' - 'A'
	}
	op, ok := svgOps[upper]
	if !ok {
		return Command{}, fmt.Errorf("spline: unknown path command %q: %w", letter, vg.ErrInvalidParameter)
	}

	switch op {
	case OpHLineTo, OpVLineTo:
		if len(args) != 1 {
			return Command{}, arityError(op, len(args), 1)
		}
		p := vg.Pt(args[0], 0)
		if op == OpVLineTo {
			p = vg.Pt(0, args[0])
		}
		return Command{Op: op, Pts: []vg.Point{p}, Rel: rel}, nil
	}

	want := 2 * op.Arity()
	if len(args) != want {
		return Command{}, arityError(op, len(args), want)
	}
	pts := make([]vg.Point, 0, op.Arity())
	for i := 0; i < len(args); i += 2 {
		pts = append(pts, vg.Pt(args[i], args[i+1]))
	}
	return Command{Op: op, Pts: pts, Rel: rel}, nil
}

func arityError(op Op, got, want int) error {
	return fmt.Errorf("spline: %v takes %d numbers, got %d: %w", op, want, got, vg.ErrInvalidParameter)
}

// Exec runs a single command against the spline.
func (s *Spline) Exec(c Command) error {
	n := c.Op.Arity()
	if n < 0 {
		return fmt.Errorf("spline: unknown command %v: %w", c.Op, vg.ErrInvalidParameter)
	}
	if len(c.Pts) != n {
		return fmt.Errorf("spline: %v takes %d points, got %d: %w", c.Op, n, len(c.Pts), vg.ErrInvalidParameter)
	}

	p := c.Pts
	switch c.Op {
	case OpMoveTo:
		return s.MoveTo(p[0], c.Rel)
	case OpLineTo:
		return s.LineTo(p[0], c.Rel)
	case OpHLineTo:
		return s.HLineTo(p[0].X, c.Rel)
	case OpVLineTo:
		return s.VLineTo(p[0].Y, c.Rel)
	case OpCurve3:
		return s.Curve3(p[0], p[1], c.Rel)
	case OpCurve4:
		return s.Curve4(p[0], p[1], p[2], c.Rel)
	case OpSmoothCurve3:
		return s.SmoothCurve3(p[0], c.Rel)
	case OpSmoothCurve4:
		return s.SmoothCurve4(p[0], p[1], c.Rel)
	default:
		return s.Close()
	}
}

// Apply runs the commands in order and stops at the first failure. The
// commands before it stay applied; the error names the failing index.
func (s *Spline) Apply(cmds []Command) error {
	for i, c := range cmds {
		if err := s.Exec(c); err != nil {
			return fmt.Errorf("spline: command %d: %w", i, err)
		}
	}
	return nil
}
