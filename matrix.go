package vg

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f64"
)

// MatrixOrder selects on which side a new transform is composed.
type MatrixOrder int

const (
	// Prepend applies the new transform before the existing one:
	// this = other * this.
	Prepend MatrixOrder = iota

	// Append applies the new transform after the existing one:
	// this = this * other.
	Append
)

// String returns the order name.
func (o MatrixOrder) String() string {
	if o == Append {
		return "Append"
	}
	return "Prepend"
}

const (
	// affineEpsilon bounds the determinant below which a matrix is singular.
	affineEpsilon = 1e-14

	// identityTolerance is used by IsIdentity and ApproxEqual.
	identityTolerance = 1e-6
)

// Matrix represents a 2D affine transformation as the top two columns of a
// 3x3 homogeneous matrix acting on row vectors:
//
//	| M11  M12  0 |
//	| M21  M22  0 |
//	| DX   DY   1 |
//
// This represents the transformation:
//
//	x' = M11*x + M21*y + DX
//	y' = M12*x + M22*y + DY
//
// The zero value is not the identity; use Identity.
type Matrix struct {
	M11, M12 float64
	M21, M22 float64
	DX, DY   float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{M11: 1, M22: 1}
}

// NewMatrix creates a matrix from its six coefficients.
func NewMatrix(m11, m12, m21, m22, dx, dy float64) Matrix {
	return Matrix{M11: m11, M12: m12, M21: m21, M22: m22, DX: dx, DY: dy}
}

// MatrixFromAff3 converts an x/image affine matrix, which maps
// x' = a[0]*x + a[1]*y + a[2] and y' = a[3]*x + a[4]*y + a[5].
func MatrixFromAff3(a f64.Aff3) Matrix {
	return Matrix{M11: a[0], M21: a[1], DX: a[2], M12: a[3], M22: a[4], DY: a[5]}
}

// Translation creates a translation matrix.
func Translation(dx, dy float64) Matrix {
	return Matrix{M11: 1, M22: 1, DX: dx, DY: dy}
}

// Scaling creates a scaling matrix.
func Scaling(sx, sy float64) Matrix {
	return Matrix{M11: sx, M22: sy}
}

// Rotation creates a rotation matrix (angle in degrees, counter-clockwise
// in a y-up coordinate system).
func Rotation(degrees float64) Matrix {
	sin, cos := sinCosDegrees(degrees)
	return Matrix{M11: cos, M12: sin, M21: -sin, M22: cos}
}

// Shearing creates a shear matrix: x' = x + shx*y, y' = y + shy*x.
func Shearing(shx, shy float64) Matrix {
	return Matrix{M11: 1, M12: shy, M21: shx, M22: 1}
}

// sinCosDegrees returns exact values at multiples of 90 degrees so that
// quarter turns do not accumulate rounding noise.
func sinCosDegrees(degrees float64) (sin, cos float64) {
	d := math.Mod(degrees, 360)
	if d < 0 {
		d += 360
	}
	switch d {
	case 0:
		return 0, 1
	case 90:
		return 1, 0
	case 180:
		return 0, -1
	case 270:
		return -1, 0
	}
	return math.Sincos(d * math.Pi / 180)
}

// Mul returns the product m * other. With row vectors this applies m first
// and other second.
func (m Matrix) Mul(other Matrix) Matrix {
	return Matrix{
		M11: m.M11*other.M11 + m.M12*other.M21,
		M12: m.M11*other.M12 + m.M12*other.M22,
		M21: m.M21*other.M11 + m.M22*other.M21,
		M22: m.M21*other.M12 + m.M22*other.M22,
		DX:  m.DX*other.M11 + m.DY*other.M21 + other.DX,
		DY:  m.DX*other.M12 + m.DY*other.M22 + other.DY,
	}
}

// Multiply composes other into m according to order.
func (m *Matrix) Multiply(other Matrix, order MatrixOrder) {
	if order == Append {
		*m = m.Mul(other)
		return
	}
	*m = other.Mul(*m)
}

// Translate composes a translation into m.
func (m *Matrix) Translate(dx, dy float64, order MatrixOrder) {
	m.Multiply(Translation(dx, dy), order)
}

// Scale composes a scale into m.
func (m *Matrix) Scale(sx, sy float64, order MatrixOrder) {
	m.Multiply(Scaling(sx, sy), order)
}

// Rotate composes a rotation by degrees into m.
func (m *Matrix) Rotate(degrees float64, order MatrixOrder) {
	m.Multiply(Rotation(degrees), order)
}

// RotateAt composes a rotation by degrees about center into m.
func (m *Matrix) RotateAt(degrees float64, center Point, order MatrixOrder) {
	r := Translation(-center.X, -center.Y).Mul(Rotation(degrees)).Mul(Translation(center.X, center.Y))
	m.Multiply(r, order)
}

// Shear composes a shear into m.
func (m *Matrix) Shear(shx, shy float64, order MatrixOrder) {
	m.Multiply(Shearing(shx, shy), order)
}

// Reset sets m to the identity.
func (m *Matrix) Reset() {
	*m = Identity()
}

// Determinant returns the determinant of the linear part.
func (m Matrix) Determinant() float64 {
	return m.M11*m.M22 - m.M12*m.M21
}

// IsInvertible reports whether the matrix has an inverse.
func (m Matrix) IsInvertible() bool {
	det := m.Determinant()
	return !math.IsNaN(det) && !math.IsInf(det, 0) && math.Abs(det) > affineEpsilon
}

// Invert replaces m by its inverse. A singular matrix is left unchanged and
// an error wrapping ErrInvalidParameter is returned.
func (m *Matrix) Invert() error {
	if !m.IsInvertible() {
		Logger().Debug("vg: matrix not invertible", "det", m.Determinant())
		return fmt.Errorf("vg: singular matrix (det=%g): %w", m.Determinant(), ErrInvalidParameter)
	}
	invDet := 1.0 / m.Determinant()
	*m = Matrix{
		M11: m.M22 * invDet,
		M12: -m.M12 * invDet,
		M21: -m.M21 * invDet,
		M22: m.M11 * invDet,
		DX:  (m.M21*m.DY - m.M22*m.DX) * invDet,
		DY:  (m.M12*m.DX - m.M11*m.DY) * invDet,
	}
	return nil
}

// Inverse returns the inverse of m without modifying it.
func (m Matrix) Inverse() (Matrix, error) {
	inv := m
	if err := inv.Invert(); err != nil {
		return m, err
	}
	return inv, nil
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.M11*p.X + m.M21*p.Y + m.DX,
		Y: m.M12*p.X + m.M22*p.Y + m.DY,
	}
}

// TransformVector applies the linear part of the transformation to a vector.
// Translation does not affect directions.
func (m Matrix) TransformVector(p Point) Point {
	return Point{
		X: m.M11*p.X + m.M21*p.Y,
		Y: m.M12*p.X + m.M22*p.Y,
	}
}

// TransformPoints transforms points in place.
func (m Matrix) TransformPoints(points []Point) {
	for i, p := range points {
		points[i] = m.TransformPoint(p)
	}
}

// TransformVectors transforms direction vectors in place, ignoring translation.
func (m Matrix) TransformVectors(points []Point) {
	for i, p := range points {
		points[i] = m.TransformVector(p)
	}
}

// TransformRect returns the bounding box of the transformed rectangle.
func (m Matrix) TransformRect(r Rect) Rect {
	corners := r.Corners()
	m.TransformPoints(corners[:])
	return BoundsOf(corners[:])
}

// IsIdentity reports whether m is the identity within a small tolerance.
func (m Matrix) IsIdentity() bool {
	return m.ApproxEqual(Identity(), identityTolerance)
}

// IsTranslationOnly reports whether the linear part is exactly the identity.
func (m Matrix) IsTranslationOnly() bool {
	return m.M11 == 1 && m.M12 == 0 && m.M21 == 0 && m.M22 == 1
}

// MaxScaleFactor returns the largest factor by which m stretches any unit
// vector (the largest singular value of the linear part).
func (m Matrix) MaxScaleFactor() float64 {
	// Eigenvalues of M^T*M.
	a := m.M11*m.M11 + m.M12*m.M12
	b := m.M11*m.M21 + m.M12*m.M22
	c := m.M21*m.M21 + m.M22*m.M22
	tr := (a + c) / 2
	disc := math.Sqrt(((a-c)/2)*((a-c)/2) + b*b)
	return math.Sqrt(tr + disc)
}

// Offset returns the translation component.
func (m Matrix) Offset() Point {
	return Point{X: m.DX, Y: m.DY}
}

// Elements returns the coefficients in the order M11, M12, M21, M22, DX, DY.
func (m Matrix) Elements() [6]float64 {
	return [6]float64{m.M11, m.M12, m.M21, m.M22, m.DX, m.DY}
}

// Aff3 converts m to the x/image affine representation.
func (m Matrix) Aff3() f64.Aff3 {
	return f64.Aff3{m.M11, m.M21, m.DX, m.M12, m.M22, m.DY}
}

// Equals reports whether all coefficients are exactly equal.
func (m Matrix) Equals(other Matrix) bool {
	return m == other
}

// ApproxEqual reports whether all coefficients differ by at most eps.
func (m Matrix) ApproxEqual(other Matrix, eps float64) bool {
	a, b := m.Elements(), other.Elements()
	for i := range a {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}
