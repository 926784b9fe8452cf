package shape

import "image/color"

// Cap is the stroke end style.
type Cap int

const (
	CapButt Cap = iota
	CapRound
)

// Style chooses between outlining and filling a primitive.
type Style int

const (
	Stroke Style = iota
	Fill
)

// Paint carries the drawing attributes for the next primitives.
type Paint struct {
	Color       color.Color
	StrokeWidth float64
	Cap         Cap
	Style       Style
}

// Canvas is an immediate-mode 2D surface with a save/restore transform stack.
// Coordinates passed to the draw calls are in the current transform's space;
// stroke widths are in surface pixels.
type Canvas interface {
	Size() (w, h float64)
	Save()
	Restore()
	Translate(x, y float64)
	Scale(sx, sy float64)
	// Rotate turns the coordinate space by deg degrees.
	Rotate(deg float64)
	Clear(c color.Color)
	DrawRect(x, y, w, h float64, p *Paint)
	DrawLine(x0, y0, x1, y1 float64, p *Paint)
	DrawCircle(cx, cy, r float64, p *Paint)
}
