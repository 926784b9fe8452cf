// Package shapetest provides a recording shape.Canvas for tests.
package shapetest

import (
	"image/color"

	"github.com/iburimskiy/window-line-ball/internal/shape"
)

// Op is one recorded canvas call.
type Op struct {
	Kind  string
	Args  []float64
	Paint shape.Paint
	Color color.Color
}

// Recorder records every call made on it. Paint is copied at call time.
type Recorder struct {
	W, H  float64
	Ops   []Op
	depth int
	// MaxDepth is the deepest Save nesting seen.
	MaxDepth int
}

func New(w, h float64) *Recorder {
	return &Recorder{W: w, H: h}
}

func (r *Recorder) Size() (float64, float64) { return r.W, r.H }

func (r *Recorder) Save() {
	r.depth++
	r.MaxDepth = max(r.MaxDepth, r.depth)
	r.Ops = append(r.Ops, Op{Kind: "save"})
}

func (r *Recorder) Restore() {
	r.depth--
	r.Ops = append(r.Ops, Op{Kind: "restore"})
}

// Depth is the current Save nesting; zero when calls are balanced.
func (r *Recorder) Depth() int { return r.depth }

func (r *Recorder) Translate(x, y float64) {
	r.Ops = append(r.Ops, Op{Kind: "translate", Args: []float64{x, y}})
}

func (r *Recorder) Scale(sx, sy float64) {
	r.Ops = append(r.Ops, Op{Kind: "scale", Args: []float64{sx, sy}})
}

func (r *Recorder) Rotate(deg float64) {
	r.Ops = append(r.Ops, Op{Kind: "rotate", Args: []float64{deg}})
}

func (r *Recorder) Clear(c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "clear", Color: c})
}

func (r *Recorder) DrawRect(x, y, w, h float64, p *shape.Paint) {
	r.Ops = append(r.Ops, Op{Kind: "rect", Args: []float64{x, y, w, h}, Paint: *p})
}

func (r *Recorder) DrawLine(x0, y0, x1, y1 float64, p *shape.Paint) {
	r.Ops = append(r.Ops, Op{Kind: "line", Args: []float64{x0, y0, x1, y1}, Paint: *p})
}

func (r *Recorder) DrawCircle(cx, cy, rad float64, p *shape.Paint) {
	r.Ops = append(r.Ops, Op{Kind: "circle", Args: []float64{cx, cy, rad}, Paint: *p})
}

// Count returns how many ops of kind were recorded.
func (r *Recorder) Count(kind string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Find returns every op of kind in order.
func (r *Recorder) Find(kind string) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

func (r *Recorder) Reset() {
	r.Ops = nil
	r.depth = 0
	r.MaxDepth = 0
}
