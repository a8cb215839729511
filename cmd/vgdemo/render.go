package main

import (
	"image"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/gogpu/vg"
	"github.com/gogpu/vg/style"
)

// render paints the scene into a new w x h image. Shapes are filled with
// their resolved fill colour; strokes are reported but not drawn, since the
// rasterizer only fills.
func render(sc *scene, w, h int) *image.RGBA {
	log := vg.Logger()

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(sc.Background), image.Point{}, draw.Src)

	r := vector.NewRasterizer(w, h)
	for _, s := range sc.Shapes {
		if _, ok := s.StrokeColor(); ok {
			log.Debug("vgdemo: stroke not rasterized", "shape", s.Name)
		}
		fill, ok := s.FillColor()
		if !ok {
			continue
		}
		if s.Style.FillRule == style.FillRuleEvenOdd {
			log.Warn("vgdemo: even-odd fill drawn with non-zero rule", "shape", s.Name)
		}

		r.Reset(w, h)
		s.Emit(r)
		r.Draw(dst, dst.Bounds(), image.NewUniform(fill), image.Point{})

		log.Debug("vgdemo: filled shape", "shape", s.Name, "bounds", s.Bounds(), "color", fill.Value())
	}
	return dst
}
