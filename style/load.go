package style

import (
	_ "embed"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/vg"
)

//go:embed schema.json
var schemaJSON []byte

var compiledSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
})

// document mirrors the YAML layout. Absent fields keep their Default value.
type document struct {
	Fill          *string       `yaml:"fill"`
	Stroke        *string       `yaml:"stroke"`
	StrokeWidth   *float64      `yaml:"stroke_width"`
	FillEnabled   *bool         `yaml:"fill_enabled"`
	StrokeEnabled *bool         `yaml:"stroke_enabled"`
	FillRule      *FillRule     `yaml:"fill_rule"`
	LineJoin      *LineJoin     `yaml:"line_join"`
	LineCap       *LineCap      `yaml:"line_cap"`
	MiterLimit    *float64      `yaml:"miter_limit"`
	Transform     []transformOp `yaml:"transform"`
	Color         []colorOp     `yaml:"color"`
}

type rotateAt struct {
	Angle  float64   `yaml:"angle"`
	Center []float64 `yaml:"center"`
}

// transformOp is one entry of the transform list; exactly one field is set.
type transformOp struct {
	Translate []float64 `yaml:"translate"`
	Scale     []float64 `yaml:"scale"`
	Shear     []float64 `yaml:"shear"`
	Rotate    *float64  `yaml:"rotate"`
	RotateAt  *rotateAt `yaml:"rotate_at"`
	Matrix    []float64 `yaml:"matrix"`
}

func (op transformOp) apply(m *vg.Matrix) {
	switch {
	case op.Translate != nil:
		m.Translate(op.Translate[0], op.Translate[1], vg.Append)
	case op.Scale != nil:
		m.Scale(op.Scale[0], op.Scale[1], vg.Append)
	case op.Shear != nil:
		m.Shear(op.Shear[0], op.Shear[1], vg.Append)
	case op.Rotate != nil:
		m.Rotate(*op.Rotate, vg.Append)
	case op.RotateAt != nil:
		m.RotateAt(op.RotateAt.Angle, vg.Pt(op.RotateAt.Center[0], op.RotateAt.Center[1]), vg.Append)
	case op.Matrix != nil:
		e := op.Matrix
		m.Multiply(vg.NewMatrix(e[0], e[1], e[2], e[3], e[4], e[5]), vg.Append)
	}
}

type tint struct {
	Angle  float64 `yaml:"angle"`
	Amount float64 `yaml:"amount"`
}

// colorOp is one entry of the colour list; exactly one field is set.
type colorOp struct {
	Preset     *string   `yaml:"preset"`
	Saturation *float64  `yaml:"saturation"`
	Hue        *float64  `yaml:"hue"`
	Tint       *tint     `yaml:"tint"`
	Scale      []float64 `yaml:"scale"`
	Translate  []float64 `yaml:"translate"`
}

var presets = map[string]vg.ColorMatrix{
	"identity":   vg.ColorMatrixIdentity,
	"zero":       vg.ColorMatrixZero,
	"grayscale":  vg.ColorMatrixGrayscale,
	"white":      vg.ColorMatrixWhite,
	"half-white": vg.ColorMatrixHalfWhite,
	"sepia":      vg.ColorMatrixSepia,
}

func (op colorOp) apply(cm *vg.ColorMatrix) {
	switch {
	case op.Preset != nil:
		cm.Merge(presets[*op.Preset], vg.Append)
	case op.Saturation != nil:
		cm.SetSaturation(*op.Saturation, vg.Append)
	case op.Hue != nil:
		cm.RotateHue(*op.Hue)
	case op.Tint != nil:
		cm.SetTint(op.Tint.Angle, op.Tint.Amount)
	case op.Scale != nil:
		s := op.Scale
		cm.Scale(s[0], s[1], s[2], s[3], vg.Append)
	case op.Translate != nil:
		t := op.Translate
		cm.Translate(t[0], t[1], t[2], t[3], vg.Append)
	}
}

// Load reads a YAML style document from r.
func Load(r io.Reader) (Attributes, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Attributes{}, fmt.Errorf("style: read: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML style document. Fields that are absent keep their
// Default value; setting a colour enables it unless the matching *_enabled
// flag says otherwise. Transform and colour operations are applied in list
// order. An empty document yields Default().
func Parse(data []byte) (Attributes, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return Attributes{}, fmt.Errorf("style: %w: %w", vg.ErrInvalidParameter, err)
	}
	if node.Kind == 0 {
		return Default(), nil
	}
	return FromNode(&node)
}

// FromNode decodes a style from an already parsed YAML node, such as one
// embedded in a larger document.
func FromNode(node *yaml.Node) (Attributes, error) {
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}

	var raw any
	if err := node.Decode(&raw); err != nil {
		return Attributes{}, fmt.Errorf("style: %w: %w", vg.ErrInvalidParameter, err)
	}
	if err := validate(raw); err != nil {
		return Attributes{}, err
	}

	var doc document
	if err := node.Decode(&doc); err != nil {
		return Attributes{}, fmt.Errorf("style: %w: %w", vg.ErrInvalidParameter, err)
	}
	a, err := doc.attributes()
	if err != nil {
		return Attributes{}, err
	}
	if err := a.Validate(); err != nil {
		return Attributes{}, err
	}

	vg.Logger().Debug("style: decoded",
		"fill", a.FillEnabled, "stroke", a.StrokeEnabled,
		"transforms", len(doc.Transform), "color_ops", len(doc.Color))
	return a, nil
}

// validate checks a decoded YAML value against the embedded JSON schema.
func validate(raw any) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("style: schema: %w", err)
	}
	result, err := schema.Validate(gojsonschema.NewGoLoader(raw))
	if err != nil {
		return fmt.Errorf("style: %w: %w", vg.ErrInvalidParameter, err)
	}
	if result.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("style: %s: %w", strings.Join(msgs, "; "), vg.ErrInvalidParameter)
}

func (d document) attributes() (Attributes, error) {
	a := Default()
	if d.Fill != nil {
		c, ok := vg.Hex(*d.Fill)
		if !ok {
			return Attributes{}, invalid("fill colour %q", *d.Fill)
		}
		a = a.WithFill(c)
	}
	if d.Stroke != nil {
		c, ok := vg.Hex(*d.Stroke)
		if !ok {
			return Attributes{}, invalid("stroke colour %q", *d.Stroke)
		}
		a.Stroke = c
		a.StrokeEnabled = true
	}
	if d.StrokeWidth != nil {
		a.StrokeWidth = *d.StrokeWidth
	}
	if d.FillEnabled != nil {
		a.FillEnabled = *d.FillEnabled
	}
	if d.StrokeEnabled != nil {
		a.StrokeEnabled = *d.StrokeEnabled
	}
	if d.FillRule != nil {
		a.FillRule = *d.FillRule
	}
	if d.LineJoin != nil {
		a.LineJoin = *d.LineJoin
	}
	if d.LineCap != nil {
		a.LineCap = *d.LineCap
	}
	if d.MiterLimit != nil {
		a.MiterLimit = *d.MiterLimit
	}
	for _, op := range d.Transform {
		op.apply(&a.Transform)
	}
	for _, op := range d.Color {
		op.apply(&a.ColorMatrix)
	}
	return a, nil
}

func unmarshalEnum(value *yaml.Node, parse func(string) (int, error)) (int, error) {
	var s string
	if err := value.Decode(&s); err != nil {
		return 0, err
	}
	return parse(s)
}

// UnmarshalYAML decodes a fill rule name.
func (r *FillRule) UnmarshalYAML(value *yaml.Node) error {
	v, err := unmarshalEnum(value, func(s string) (int, error) {
		return parseEnum(fillRuleNames, s, "fill rule")
	})
	if err == nil {
		*r = FillRule(v)
	}
	return err
}

// UnmarshalYAML decodes a line join name.
func (j *LineJoin) UnmarshalYAML(value *yaml.Node) error {
	v, err := unmarshalEnum(value, func(s string) (int, error) {
		return parseEnum(lineJoinNames, s, "line join")
	})
	if err == nil {
		*j = LineJoin(v)
	}
	return err
}

// UnmarshalYAML decodes a line cap name.
func (c *LineCap) UnmarshalYAML(value *yaml.Node) error {
	v, err := unmarshalEnum(value, func(s string) (int, error) {
		return parseEnum(lineCapNames, s, "line cap")
	})
	if err == nil {
		*c = LineCap(v)
	}
	return err
}

// MarshalYAML encodes the fill rule by name.
func (r FillRule) MarshalYAML() (any, error) { return r.String(), nil }

// MarshalYAML encodes the line join by name.
func (j LineJoin) MarshalYAML() (any, error) { return j.String(), nil }

// MarshalYAML encodes the line cap by name.
func (c LineCap) MarshalYAML() (any, error) { return c.String(), nil }
