package main

import (
	_ "embed"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/vg"
	"github.com/gogpu/vg/shape"
	"github.com/gogpu/vg/spline"
	"github.com/gogpu/vg/style"
)

//go:embed demo.yaml
var demoScene []byte

// scene is a background colour and an ordered list of shapes, painted back
// to front.
type scene struct {
	Background vg.Color
	Shapes     []*namedShape
}

type namedShape struct {
	Name string
	*shape.Shape
}

type sceneFile struct {
	Background string      `yaml:"background"`
	Shapes     []shapeFile `yaml:"shapes"`
}

type shapeFile struct {
	Name    string       `yaml:"name"`
	Path    []pathCmd    `yaml:"path"`
	Polygon [][2]float64 `yaml:"polygon"`
	Closed  bool         `yaml:"closed"`
	Repeat  int          `yaml:"repeat"`
	Style   yaml.Node    `yaml:"style"`
}

// pathCmd decodes an SVG-style command list entry such as [C, 1, 2, 3, 4, 5, 6].
type pathCmd spline.Command

func (c *pathCmd) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.SequenceNode || len(n.Content) == 0 {
		return fmt.Errorf("line %d: path command must be a non-empty list", n.Line)
	}
	letter := n.Content[0].Value
	if len(letter) != 1 {
		return fmt.Errorf("line %d: path command %q must be a single letter", n.Line, letter)
	}
	args := make([]float64, len(n.Content)-1)
	for i, a := range n.Content[1:] {
		if err := a.Decode(&args[i]); err != nil {
			return fmt.Errorf("line %d: %w", a.Line, err)
		}
	}
	cmd, err := spline.CommandFromSVG(letter[0], args)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	*c = pathCmd(cmd)
	return nil
}

func loadScene(r io.Reader) (*scene, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return parseScene(data)
}

func parseScene(data []byte) (*scene, error) {
	var f sceneFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	sc := &scene{Background: vg.White}
	if f.Background != "" {
		c, ok := vg.Hex(f.Background)
		if !ok {
			return nil, fmt.Errorf("scene: background %q: %w", f.Background, vg.ErrInvalidParameter)
		}
		sc.Background = c
	}

	for i, sf := range f.Shapes {
		shapes, err := sf.build()
		if err != nil {
			return nil, fmt.Errorf("scene: shape %d (%s): %w", i, sf.Name, err)
		}
		sc.Shapes = append(sc.Shapes, shapes...)
	}
	return sc, nil
}

func (sf shapeFile) build() ([]*namedShape, error) {
	st := style.Default()
	if !sf.Style.IsZero() {
		var err error
		if st, err = style.FromNode(&sf.Style); err != nil {
			return nil, err
		}
	}

	var geom shape.Geometry
	switch {
	case len(sf.Path) > 0 && len(sf.Polygon) > 0:
		return nil, fmt.Errorf("path and polygon are exclusive: %w", vg.ErrInvalidParameter)
	case len(sf.Path) > 0:
		sp := spline.New()
		cmds := make([]spline.Command, len(sf.Path))
		for i, c := range sf.Path {
			cmds[i] = spline.Command(c)
		}
		if err := sp.Apply(cmds); err != nil {
			return nil, err
		}
		geom = sp
	case len(sf.Polygon) > 0:
		poly := shape.NewPolygon(sf.Closed)
		for _, p := range sf.Polygon {
			poly.Add(vg.Pt(p[0], p[1]))
		}
		geom = poly
	default:
		return nil, fmt.Errorf("no geometry: %w", vg.ErrInvalidParameter)
	}

	base := shape.New(geom, st)
	if sf.Repeat <= 1 {
		return []*namedShape{{Name: sf.Name, Shape: base}}, nil
	}
	return repeat(sf.Name, base, sf.Repeat), nil
}

// repeat returns n copies of s, each rotated about the centre of s and hue
// shifted by a further 360/n degrees.
func repeat(name string, s *shape.Shape, n int) []*namedShape {
	center := s.Bounds().Center()
	step := 360 / float64(n)

	out := make([]*namedShape, n)
	for i := range out {
		st := s.Style
		angle := step * float64(i)
		st.Transform.RotateAt(angle, center, vg.Append)
		st.ColorMatrix.RotateHue(angle)
		out[i] = &namedShape{
			Name:  fmt.Sprintf("%s #%d", name, i+1),
			Shape: shape.New(s.Geometry, st),
		}
	}
	return out
}
