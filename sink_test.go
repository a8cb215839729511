package vg

import (
	"image"
	"strings"
	"testing"

	"golang.org/x/image/vector"
)

type recordingSink struct {
	ops []string
	pts [][2]float32
}

func (s *recordingSink) MoveTo(x, y float32) {
	s.ops = append(s.ops, "M")
	s.pts = append(s.pts, [2]float32{x, y})
}

func (s *recordingSink) LineTo(x, y float32) {
	s.ops = append(s.ops, "L")
	s.pts = append(s.pts, [2]float32{x, y})
}

func (s *recordingSink) QuadTo(bx, by, x, y float32) {
	s.ops = append(s.ops, "Q")
	s.pts = append(s.pts, [2]float32{bx, by}, [2]float32{x, y})
}

func (s *recordingSink) CubeTo(bx, by, cx, cy, x, y float32) {
	s.ops = append(s.ops, "C")
	s.pts = append(s.pts, [2]float32{bx, by}, [2]float32{cx, cy}, [2]float32{x, y})
}

func (s *recordingSink) ClosePath() { s.ops = append(s.ops, "Z") }

func TestSinkWriter_Transforms(t *testing.T) {
	rec := &recordingSink{}
	w := SinkWriter{Sink: rec, Matrix: Translation(10, 20)}
	w.MoveTo(Pt(0, 0))
	w.LineTo(Pt(1, 0))
	w.QuadTo(Pt(2, 0), Pt(2, 2))
	w.CubeTo(Pt(2, 3), Pt(1, 4), Pt(0, 4))
	w.ClosePath()

	if got := strings.Join(rec.ops, ""); got != "MLQCZ" {
		t.Errorf("ops = %q, want MLQCZ", got)
	}
	if rec.pts[0] != [2]float32{10, 20} || rec.pts[len(rec.pts)-1] != [2]float32{10, 24} {
		t.Errorf("points not transformed: %v", rec.pts)
	}
}

func TestSinkWriter_Rasterizer(t *testing.T) {
	var _ PathSink = (*vector.Rasterizer)(nil)

	z := vector.NewRasterizer(16, 16)
	w := SinkWriter{Sink: z, Matrix: Scaling(2, 2)}
	w.MoveTo(Pt(1, 1))
	w.LineTo(Pt(7, 1))
	w.LineTo(Pt(7, 7))
	w.LineTo(Pt(1, 7))
	w.ClosePath()

	dst := image.NewAlpha(image.Rect(0, 0, 16, 16))
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

	if a := dst.AlphaAt(8, 8).A; a != 0xff {
		t.Errorf("center alpha = %d, want 255", a)
	}
	if a := dst.AlphaAt(0, 0).A; a != 0 {
		t.Errorf("corner alpha = %d, want 0", a)
	}
}
