// Package style holds the per-shape attribute record a renderer needs:
// fill and stroke colours, stroke geometry, fill rule, an affine transform
// and a colour matrix.
package style

import (
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/vg"
)

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinMiterClipped specifies a miter cut off at the miter limit
	// instead of falling back to a bevel.
	LineJoinMiterClipped
)

// LineCap specifies the shape of line endpoints. The anchor variants
// decorate the endpoint with a marker wider than the stroke.
type LineCap int

const (
	// LineCapFlat ends the stroke exactly at the endpoint.
	LineCapFlat LineCap = iota
	// LineCapSquare extends the stroke by half its width.
	LineCapSquare
	// LineCapRound ends the stroke with a semicircle.
	LineCapRound
	// LineCapTriangle ends the stroke with a point.
	LineCapTriangle
	LineCapNoAnchor
	LineCapSquareAnchor
	LineCapRoundAnchor
	LineCapDiamondAnchor
	LineCapArrowAnchor
)

var (
	fillRuleNames = []string{"nonzero", "evenodd"}
	lineJoinNames = []string{"miter", "bevel", "round", "miter-clipped"}
	lineCapNames  = []string{
		"flat", "square", "round", "triangle",
		"no-anchor", "square-anchor", "round-anchor", "diamond-anchor", "arrow-anchor",
	}
)

func enumName(names []string, v int, kind string) string {
	if v < 0 || v >= len(names) {
		return fmt.Sprintf("%s(%d)", kind, v)
	}
	return names[v]
}

func parseEnum(names []string, s, kind string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range names {
		if s == n || s == strings.ReplaceAll(n, "-", "") {
			return i, nil
		}
	}
	return 0, fmt.Errorf("style: unknown %s %q: %w", kind, s, vg.ErrInvalidParameter)
}

func (r FillRule) String() string { return enumName(fillRuleNames, int(r), "FillRule") }
func (j LineJoin) String() string { return enumName(lineJoinNames, int(j), "LineJoin") }
func (c LineCap) String() string  { return enumName(lineCapNames, int(c), "LineCap") }

// ParseFillRule parses "nonzero" or "evenodd".
func ParseFillRule(s string) (FillRule, error) {
	v, err := parseEnum(fillRuleNames, s, "fill rule")
	return FillRule(v), err
}

// ParseLineJoin parses a join name such as "round" or "miter-clipped".
func ParseLineJoin(s string) (LineJoin, error) {
	v, err := parseEnum(lineJoinNames, s, "line join")
	return LineJoin(v), err
}

// ParseLineCap parses a cap name such as "flat" or "arrow-anchor".
func ParseLineCap(s string) (LineCap, error) {
	v, err := parseEnum(lineCapNames, s, "line cap")
	return LineCap(v), err
}

// IsAnchor reports whether the cap draws an endpoint marker.
func (c LineCap) IsAnchor() bool {
	return c >= LineCapNoAnchor && c <= LineCapArrowAnchor
}

// Attributes is the attribute bundle a renderer needs for one shape.
type Attributes struct {
	// Fill is the fill colour, used when FillEnabled is set.
	Fill vg.Color

	// Stroke is the stroke colour, used when StrokeEnabled is set.
	Stroke vg.Color

	// StrokeWidth is the line width in user space. Default: 1.0
	StrokeWidth float64

	FillEnabled   bool
	StrokeEnabled bool

	FillRule FillRule
	LineJoin LineJoin
	LineCap  LineCap

	// MiterLimit is the limit for miter joins before they become bevels.
	// Default: 4.0
	MiterLimit float64

	// Transform maps user space to device space.
	Transform vg.Matrix

	// ColorMatrix is applied to both colours before rendering.
	ColorMatrix vg.ColorMatrix
}

// Default returns attributes for an opaque black fill with no stroke.
func Default() Attributes {
	return Attributes{
		Fill:        vg.Black,
		Stroke:      vg.Black,
		StrokeWidth: 1.0,
		FillEnabled: true,
		FillRule:    FillRuleNonZero,
		LineJoin:    LineJoinMiter,
		LineCap:     LineCapFlat,
		MiterLimit:  4.0,
		Transform:   vg.Identity(),
		ColorMatrix: vg.ColorMatrixIdentity,
	}
}

// WithFill returns a copy with the given fill colour enabled.
func (a Attributes) WithFill(c vg.Color) Attributes {
	a.Fill = c
	a.FillEnabled = true
	return a
}

// WithStroke returns a copy with the given stroke colour and width enabled.
func (a Attributes) WithStroke(c vg.Color, width float64) Attributes {
	a.Stroke = c
	a.StrokeWidth = width
	a.StrokeEnabled = true
	return a
}

// WithTransform returns a copy whose transform is m applied after the
// current one.
func (a Attributes) WithTransform(m vg.Matrix) Attributes {
	a.Transform.Multiply(m, vg.Append)
	return a
}

// WithColorMatrix returns a copy whose colour matrix is cm applied after
// the current one.
func (a Attributes) WithColorMatrix(cm vg.ColorMatrix) Attributes {
	a.ColorMatrix.Merge(cm, vg.Append)
	return a
}

// ResolvedFill returns the fill colour after the colour matrix. The boolean
// is false when the shape is not filled.
func (a Attributes) ResolvedFill() (vg.Color, bool) {
	if !a.FillEnabled {
		return vg.Transparent, false
	}
	return a.ColorMatrix.Apply(a.Fill), true
}

// ResolvedStroke returns the stroke colour after the colour matrix. The
// boolean is false when the shape is not stroked or the stroke is empty.
func (a Attributes) ResolvedStroke() (vg.Color, bool) {
	if !a.StrokeEnabled || a.EffectiveStrokeWidth() <= 0 {
		return vg.Transparent, false
	}
	return a.ColorMatrix.Apply(a.Stroke), true
}

// EffectiveStrokeWidth returns the stroke width in device space: the user
// width scaled by the transform's mean scale factor sqrt(|det|).
func (a Attributes) EffectiveStrokeWidth() float64 {
	return a.StrokeWidth * math.Sqrt(math.Abs(a.Transform.Determinant()))
}

// Validate checks value ranges. Errors wrap vg.ErrInvalidParameter.
func (a Attributes) Validate() error {
	switch {
	case math.IsNaN(a.StrokeWidth) || math.IsInf(a.StrokeWidth, 0) || a.StrokeWidth < 0:
		return invalid("stroke width %v", a.StrokeWidth)
	case math.IsNaN(a.MiterLimit) || math.IsInf(a.MiterLimit, 0) || a.MiterLimit < 1:
		return invalid("miter limit %v must be at least 1", a.MiterLimit)
	case a.FillRule < FillRuleNonZero || a.FillRule > FillRuleEvenOdd:
		return invalid("fill rule %d", int(a.FillRule))
	case a.LineJoin < LineJoinMiter || a.LineJoin > LineJoinMiterClipped:
		return invalid("line join %d", int(a.LineJoin))
	case a.LineCap < LineCapFlat || a.LineCap > LineCapArrowAnchor:
		return invalid("line cap %d", int(a.LineCap))
	}
	for _, v := range a.Transform.Elements() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return invalid("transform %v", a.Transform.Elements())
		}
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("style: "+format+": %w", append(args, vg.ErrInvalidParameter)...)
}
