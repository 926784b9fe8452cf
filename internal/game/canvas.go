package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/window-line-ball/internal/shape"
)

// canvas implements shape.Canvas on top of an ebiten image. Points are mapped
// through the current GeoM before they reach the vector package.
type canvas struct {
	dst   *ebiten.Image
	geo   ebiten.GeoM
	stack []ebiten.GeoM
}

func newCanvas(dst *ebiten.Image) *canvas {
	return &canvas{dst: dst}
}

func (c *canvas) Size() (float64, float64) {
	b := c.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (c *canvas) Save() {
	c.stack = append(c.stack, c.geo)
}

func (c *canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.geo = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// local applies m before the current transform.
func (c *canvas) local(m ebiten.GeoM) {
	m.Concat(c.geo)
	c.geo = m
}

func (c *canvas) Translate(x, y float64) {
	var m ebiten.GeoM
	m.Translate(x, y)
	c.local(m)
}

func (c *canvas) Scale(sx, sy float64) {
	var m ebiten.GeoM
	m.Scale(sx, sy)
	c.local(m)
}

func (c *canvas) Rotate(deg float64) {
	var m ebiten.GeoM
	m.Rotate(deg * math.Pi / 180)
	c.local(m)
}

func (c *canvas) Clear(clr color.Color) {
	c.dst.Fill(clr)
}

func (c *canvas) point(x, y float64) (float32, float32) {
	tx, ty := c.geo.Apply(x, y)
	return float32(tx), float32(ty)
}

// length scales a distance by the transform's area factor. Only uniform
// scales and rotations are expected, so circles stay circles.
func (c *canvas) length(d float64) float32 {
	return float32(d * math.Sqrt(math.Abs(c.geo.Element(0, 0)*c.geo.Element(1, 1)-c.geo.Element(0, 1)*c.geo.Element(1, 0))))
}

func (c *canvas) DrawRect(x, y, w, h float64, p *shape.Paint) {
	x0, y0 := c.point(x, y)
	x1, y1 := c.point(x+w, y)
	x2, y2 := c.point(x+w, y+h)
	x3, y3 := c.point(x, y+h)

	if p.Style == shape.Fill {
		// Fills use the transformed bounding box; exact for axis-aligned transforms.
		minX := min(x0, x1, x2, x3)
		minY := min(y0, y1, y2, y3)
		maxX := max(x0, x1, x2, x3)
		maxY := max(y0, y1, y2, y3)
		vector.DrawFilledRect(c.dst, minX, minY, maxX-minX, maxY-minY, p.Color, true)
		return
	}
	c.strokeSegment(x0, y0, x1, y1, p)
	c.strokeSegment(x1, y1, x2, y2, p)
	c.strokeSegment(x2, y2, x3, y3, p)
	c.strokeSegment(x3, y3, x0, y0, p)
}

func (c *canvas) DrawLine(x0, y0, x1, y1 float64, p *shape.Paint) {
	ax, ay := c.point(x0, y0)
	bx, by := c.point(x1, y1)
	c.strokeSegment(ax, ay, bx, by, p)
}

func (c *canvas) DrawCircle(cx, cy, r float64, p *shape.Paint) {
	x, y := c.point(cx, cy)
	radius := c.length(r)
	if p.Style == shape.Fill {
		vector.DrawFilledCircle(c.dst, x, y, radius, p.Color, true)
		return
	}
	vector.StrokeCircle(c.dst, x, y, radius, float32(p.StrokeWidth), p.Color, true)
}

func (c *canvas) strokeSegment(x0, y0, x1, y1 float32, p *shape.Paint) {
	width := float32(p.StrokeWidth)
	vector.StrokeLine(c.dst, x0, y0, x1, y1, width, p.Color, true)
	if p.Cap == shape.CapRound {
		vector.DrawFilledCircle(c.dst, x0, y0, width/2, p.Color, true)
		vector.DrawFilledCircle(c.dst, x1, y1, width/2, p.Color, true)
	}
}
