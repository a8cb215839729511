// Package vg provides the geometric core of a 2D vector graphics pipeline.
//
// # Overview
//
// vg holds the value types shared by the spline, shape and style packages:
// points, sizes and rectangles, the affine Matrix, 8-bit ARGB colors and the
// 5x5 ColorMatrix. Rasterization is left to an external backend; geometry is
// handed over through the PathSink interface, which *vector.Rasterizer from
// golang.org/x/image/vector satisfies.
//
// # Quick Start
//
//	m := vg.Identity()
//	m.Translate(10, 20, vg.Append)
//	m.Rotate(90, vg.Append)
//	p := m.TransformPoint(vg.Pt(1, 0))
//
//	cm := vg.NewColorMatrix()
//	cm.SetSaturation(0.5, vg.Append)
//	cm.RotateHue(30)
//	c := cm.Apply(vg.RGB(200, 40, 40))
//
// # Composition Order
//
// Matrix and ColorMatrix act on row vectors. Every composing call takes a
// MatrixOrder: Prepend applies the new transform before the existing one,
// Append applies it after. Callers building a pipeline in reading order use
// Append throughout.
//
// # Errors
//
// Operations never panic on bad input. Failures are returned as errors that
// wrap one of the package sentinels (ErrInvalidParameter, ErrWrongState, ...);
// StatusOf recovers the matching Status code. A failed mutation leaves its
// receiver unchanged.
//
// # Coordinate System
//
// Rotation angles are in degrees and turn the x axis towards the y axis.
package vg
