// Package spline models open and closed curves as chains of knots joined by
// linear, quadratic or cubic Bezier segments.
//
// # Building
//
// A Spline is built with SVG-style drawing commands:
//
//	s := spline.New()
//	s.MoveTo(vg.Pt(0, 0), false)
//	s.LineTo(vg.Pt(10, 0), false)
//	s.Curve4(vg.Pt(15, 0), vg.Pt(20, 5), vg.Pt(20, 10), false)
//	s.Close()
//
// or from a command list with Apply. Each command either succeeds or
// leaves the spline unchanged. Drawing on a closed spline fails with
// vg.ErrWrongState; Clear reopens it.
//
// # Knots
//
// Every knot stores an anchor position and two tangent vectors relative to
// it. The knot type constrains them: Corner leaves them independent, Curve
// keeps them opposite in direction and Symmetric keeps them exact negations.
//
// # Arc length
//
// Segment lengths are estimated by refining a polyline until successive
// estimates differ by less than the spline's delta (DefaultDelta unless set
// with SetDelta). They are memoized and refreshed on every mutation, so
// Length and Position are cheap.
//
// # Output
//
// Emit streams the curve to a vg.PathSink such as
// golang.org/x/image/vector.Rasterizer.
package spline
