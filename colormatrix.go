package vg

import (
	"math"
	"sync"
)

// Luminance weights used for grayscale, saturation and hue rotation.
const (
	LumR = 0.3086
	LumG = 0.6094
	LumB = 0.0820
)

// ColorMatrix transforms colors as homogeneous row vectors:
//
//	[R' G' B' A' 1] = [R G B A 1] * M
//
// Channels are normalized to [0, 1] before multiplication, so the
// translation row (M[4]) is expressed in the same unit. Row i of M holds the
// contribution of input channel i to every output channel.
//
// Like Matrix, a ColorMatrix is a value type; composing operations mutate
// the receiver in place.
type ColorMatrix struct {
	M [5][5]float64
}

// Named color matrices.
var (
	// ColorMatrixIdentity leaves colors unchanged.
	ColorMatrixIdentity = ColorMatrix{M: [5][5]float64{
		{1, 0, 0, 0, 0},
		{0, 1, 0, 0, 0},
		{0, 0, 1, 0, 0},
		{0, 0, 0, 1, 0},
		{0, 0, 0, 0, 1},
	}}

	// ColorMatrixZero maps every color to transparent black.
	ColorMatrixZero = ColorMatrix{}

	// ColorMatrixGrayscale replaces R, G and B by the weighted luminance.
	ColorMatrixGrayscale = ColorMatrix{M: [5][5]float64{
		{LumR, LumR, LumR, 0, 0},
		{LumG, LumG, LumG, 0, 0},
		{LumB, LumB, LumB, 0, 0},
		{0, 0, 0, 1, 0},
		{0, 0, 0, 0, 1},
	}}

	// ColorMatrixWhite maps every color to white, keeping alpha.
	ColorMatrixWhite = ColorMatrix{M: [5][5]float64{
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 1, 0},
		{1, 1, 1, 0, 1},
	}}

	// ColorMatrixHalfWhite blends every color halfway towards white,
	// keeping alpha.
	ColorMatrixHalfWhite = ColorMatrix{M: [5][5]float64{
		{0.5, 0, 0, 0, 0},
		{0, 0.5, 0, 0, 0},
		{0, 0, 0.5, 0, 0},
		{0, 0, 0, 1, 0},
		{0.5, 0.5, 0.5, 0, 1},
	}}

	// ColorMatrixSepia applies a sepia tone.
	ColorMatrixSepia = ColorMatrix{M: [5][5]float64{
		{0.393, 0.349, 0.272, 0, 0},
		{0.769, 0.686, 0.534, 0, 0},
		{0.189, 0.168, 0.131, 0, 0},
		{0, 0, 0, 1, 0},
		{0, 0, 0, 0, 1},
	}}
)

// NewColorMatrix returns the identity color matrix.
func NewColorMatrix() ColorMatrix {
	return ColorMatrixIdentity
}

// Reset sets cm to the identity.
func (cm *ColorMatrix) Reset() {
	*cm = ColorMatrixIdentity
}

// mul returns a * b: with row vectors, a is applied first.
func mul(a, b *ColorMatrix) ColorMatrix {
	var r ColorMatrix
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			var sum float64
			for k := 0; k < 5; k++ {
				sum += a.M[row][k] * b.M[k][col]
			}
			r.M[row][col] = sum
		}
	}
	return r
}

// Multiply returns the composition of cm and other. With Prepend, other is
// applied first (other * cm); with Append, other is applied last (cm * other).
func (cm ColorMatrix) Multiply(other ColorMatrix, order MatrixOrder) ColorMatrix {
	if order == Append {
		return mul(&cm, &other)
	}
	return mul(&other, &cm)
}

// Merge composes other into cm in place.
func (cm *ColorMatrix) Merge(other ColorMatrix, order MatrixOrder) {
	*cm = cm.Multiply(other, order)
}

// ApplyFloat transforms normalized RGBA components without clamping.
func (cm ColorMatrix) ApplyFloat(c [4]float64) [4]float64 {
	in := [5]float64{c[0], c[1], c[2], c[3], 1}
	var out [4]float64
	for col := 0; col < 4; col++ {
		var sum float64
		for k := 0; k < 5; k++ {
			sum += in[k] * cm.M[k][col]
		}
		out[col] = sum
	}
	return out
}

// Apply transforms an 8-bit color. Each output channel is rounded and
// clamped to [0, 255] independently.
func (cm ColorMatrix) Apply(c Color) Color {
	out := cm.ApplyFloat([4]float64{
		float64(c.R) / 255,
		float64(c.G) / 255,
		float64(c.B) / 255,
		float64(c.A) / 255,
	})
	return Color{
		R: clampChannel(out[0]),
		G: clampChannel(out[1]),
		B: clampChannel(out[2]),
		A: clampChannel(out[3]),
	}
}

// clampChannel scales a normalized channel to [0, 255], saturating at the ends.
func clampChannel(v float64) uint8 {
	v = math.Round(v * 255)
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Scale composes a per-channel scale.
func (cm *ColorMatrix) Scale(r, g, b, a float64, order MatrixOrder) {
	s := ColorMatrixIdentity
	s.M[0][0], s.M[1][1], s.M[2][2], s.M[3][3] = r, g, b, a
	cm.Merge(s, order)
}

// ScaleColors scales R, G and B by the same factor, leaving alpha alone.
func (cm *ColorMatrix) ScaleColors(s float64, order MatrixOrder) {
	cm.Scale(s, s, s, 1, order)
}

// Translate composes a per-channel offset in normalized units.
func (cm *ColorMatrix) Translate(r, g, b, a float64, order MatrixOrder) {
	t := ColorMatrixIdentity
	t.M[4][0], t.M[4][1], t.M[4][2], t.M[4][3] = r, g, b, a
	cm.Merge(t, order)
}

// TranslateColors offsets R, G and B by the same amount.
func (cm *ColorMatrix) TranslateColors(t float64, order MatrixOrder) {
	cm.Translate(t, t, t, 0, order)
}

// rotateColor rotates the plane of channels x and y by degrees, turning x
// towards y.
func (cm *ColorMatrix) rotateColor(degrees float64, x, y int, order MatrixOrder) {
	sin, cos := sinCosDegrees(degrees)
	r := ColorMatrixIdentity
	r.M[x][x] = cos
	r.M[y][y] = cos
	r.M[x][y] = sin
	r.M[y][x] = -sin
	cm.Merge(r, order)
}

// RotateRed rotates the color space around the red axis (green towards blue).
func (cm *ColorMatrix) RotateRed(degrees float64, order MatrixOrder) {
	cm.rotateColor(degrees, 1, 2, order)
}

// RotateGreen rotates the color space around the green axis (blue towards red).
func (cm *ColorMatrix) RotateGreen(degrees float64, order MatrixOrder) {
	cm.rotateColor(degrees, 2, 0, order)
}

// RotateBlue rotates the color space around the blue axis (red towards green).
func (cm *ColorMatrix) RotateBlue(degrees float64, order MatrixOrder) {
	cm.rotateColor(degrees, 0, 1, order)
}

// shearColor adds d1 times channel y1 and d2 times channel y2 to channel x.
func (cm *ColorMatrix) shearColor(x, y1 int, d1 float64, y2 int, d2 float64, order MatrixOrder) {
	s := ColorMatrixIdentity
	s.M[y1][x] = d1
	s.M[y2][x] = d2
	cm.Merge(s, order)
}

// ShearRed adds green and blue proportions to the red channel.
func (cm *ColorMatrix) ShearRed(green, blue float64, order MatrixOrder) {
	cm.shearColor(0, 1, green, 2, blue, order)
}

// ShearGreen adds red and blue proportions to the green channel.
func (cm *ColorMatrix) ShearGreen(red, blue float64, order MatrixOrder) {
	cm.shearColor(1, 0, red, 2, blue, order)
}

// ShearBlue adds red and green proportions to the blue channel.
func (cm *ColorMatrix) ShearBlue(red, green float64, order MatrixOrder) {
	cm.shearColor(2, 0, red, 1, green, order)
}

// SetSaturation composes a saturation change. 0 yields the luminance gray,
// 1 leaves colors unchanged; values outside [0, 1] extrapolate.
func (cm *ColorMatrix) SetSaturation(sat float64, order MatrixOrder) {
	compl := 1 - sat
	r, g, b := LumR*compl, LumG*compl, LumB*compl
	s := ColorMatrix{M: [5][5]float64{
		{r + sat, r, r, 0, 0},
		{g, g + sat, g, 0, 0},
		{b, b, b + sat, 0, 0},
		{0, 0, 0, 1, 0},
		{0, 0, 0, 0, 1},
	}}
	cm.Merge(s, order)
}

// RotateHue rotates hues by degrees around the gray axis, keeping luminance
// constant. The rotation is applied after the existing transform.
func (cm *ColorMatrix) RotateHue(degrees float64) {
	pre, post := hueMatrices()
	cm.Merge(pre, Append)
	cm.RotateBlue(degrees, Append)
	cm.Merge(post, Append)
}

// SetTint pushes colors towards the hue at the given angle. amount 0 is a
// no-op; luminance is preserved. The tint is applied after the existing
// transform.
func (cm *ColorMatrix) SetTint(degrees, amount float64) {
	pre, post := hueMatrices()
	sin, cos := sinCosDegrees(degrees)
	t := pre
	t.ShearRed(0, amount*cos, Append)
	t.ShearGreen(0, amount*sin, Append)
	t.Merge(post, Append)
	cm.Merge(t, Append)
}

// Transpose returns the transposed matrix.
func (cm ColorMatrix) Transpose() ColorMatrix {
	var t ColorMatrix
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			t.M[j][i] = cm.M[i][j]
		}
	}
	return t
}

// Equals reports whether all coefficients are exactly equal.
func (cm ColorMatrix) Equals(other ColorMatrix) bool {
	return cm == other
}

// ApproxEqual reports whether all coefficients differ by at most eps.
func (cm ColorMatrix) ApproxEqual(other ColorMatrix, eps float64) bool {
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			if math.Abs(cm.M[i][j]-other.M[i][j]) > eps {
				return false
			}
		}
	}
	return true
}

// IsIdentity reports whether cm is the identity within a small tolerance.
func (cm ColorMatrix) IsIdentity() bool {
	return cm.ApproxEqual(ColorMatrixIdentity, identityTolerance)
}

// greenRotation is the angle in degrees that turns the gray vector, once
// rotated 45 degrees about red, onto the blue axis: atan(1/sqrt(2)).
const greenRotation = 35.264389682754654

var (
	hueOnce         sync.Once
	preHue, postHue ColorMatrix
)

// hueMatrices returns the matrices that align the gray axis with the blue
// axis (pre) and undo that alignment (post). They are built on first use.
func hueMatrices() (pre, post ColorMatrix) {
	hueOnce.Do(initHue)
	return preHue, postHue
}

func initHue() {
	pre := ColorMatrixIdentity
	pre.RotateRed(45, Append)
	pre.RotateGreen(-greenRotation, Append)

	// Shear the blue plane so that luminance depends on blue only; rotations
	// about blue then leave luminance unchanged.
	lum := pre.ApplyFloat([4]float64{LumR, LumG, LumB, 0})
	red := lum[0] / lum[2]
	green := lum[1] / lum[2]
	pre.ShearBlue(red, green, Append)

	post := ColorMatrixIdentity
	post.ShearBlue(-red, -green, Append)
	post.RotateGreen(greenRotation, Append)
	post.RotateRed(-45, Append)

	preHue, postHue = pre, post
	Logger().Debug("vg: hue alignment matrices initialized", "shearRed", red, "shearGreen", green)
}
