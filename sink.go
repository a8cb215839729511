package vg

// PathSink receives path geometry in device coordinates. It is the hand-off
// point to a rasterizer; *vector.Rasterizer from golang.org/x/image/vector
// satisfies it.
type PathSink interface {
	MoveTo(ax, ay float32)
	LineTo(bx, by float32)
	QuadTo(bx, by, cx, cy float32)
	CubeTo(bx, by, cx, cy, dx, dy float32)
	ClosePath()
}

// SinkWriter adapts a PathSink to float64 points transformed by a matrix.
type SinkWriter struct {
	Sink   PathSink
	Matrix Matrix
}

func (w SinkWriter) xy(p Point) (float32, float32) {
	p = w.Matrix.TransformPoint(p)
	return float32(p.X), float32(p.Y)
}

// MoveTo starts a new contour at p.
func (w SinkWriter) MoveTo(p Point) {
	w.Sink.MoveTo(w.xy(p))
}

// LineTo adds a line to p.
func (w SinkWriter) LineTo(p Point) {
	w.Sink.LineTo(w.xy(p))
}

// QuadTo adds a quadratic Bezier through control c to p.
func (w SinkWriter) QuadTo(c, p Point) {
	cx, cy := w.xy(c)
	px, py := w.xy(p)
	w.Sink.QuadTo(cx, cy, px, py)
}

// CubeTo adds a cubic Bezier through controls c1 and c2 to p.
func (w SinkWriter) CubeTo(c1, c2, p Point) {
	c1x, c1y := w.xy(c1)
	c2x, c2y := w.xy(c2)
	px, py := w.xy(p)
	w.Sink.CubeTo(c1x, c1y, c2x, c2y, px, py)
}

// ClosePath closes the current contour.
func (w SinkWriter) ClosePath() {
	w.Sink.ClosePath()
}
