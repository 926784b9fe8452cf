package shape

import (
	"math"

	"github.com/iburimskiy/window-line-ball/internal/anim"
	"github.com/iburimskiy/window-line-ball/internal/config"
)

// Stages is the number of reveal stages in one shape: window, line, bent
// line, ring, ball.
const Stages = 5

// DrawNode draws node index at the given scale, mirrored around the vertical
// centre line of the canvas. p is overwritten with the node's paint.
func DrawNode(cv Canvas, v config.Variant, index int, scale float64, p *Paint) {
	w, h := cv.Size()
	p.Color = v.Color(index)
	p.Cap = CapRound
	p.StrokeWidth = math.Min(w, h) / v.StrokeFactor

	size := math.Min(w, h) / v.SizeFactor
	r := size / v.RFactor
	eased := v.Ease(scale)
	var sc [Stages]float64
	for i := range sc {
		sc[i] = anim.DivideScale(eased, i, v.Parts)
	}

	gap := size / 8
	for j := 0; j < 2; j++ {
		cv.Save()
		cv.Translate(w/2, h/2)
		cv.Scale(float64(1-2*j), 1)
		drawHalf(cv, v, size, gap, r, sc, p)
		cv.Restore()
	}
}

func drawHalf(cv Canvas, v config.Variant, size, gap, r float64, sc [Stages]float64, p *Paint) {
	half := size / 2

	p.Style = Stroke
	cv.DrawRect(gap, -half/2, half*sc[0], half, p)

	x := gap + half
	cv.DrawLine(x, 0, x+half*sc[1], 0, p)

	cv.Save()
	cv.Translate(x+half, 0)
	cv.Rotate(-v.Deg)
	cv.DrawLine(0, 0, half*sc[2], 0, p)
	if sc[3] > 0 {
		cv.DrawCircle(half+r, 0, r*sc[3], p)
	}
	if sc[4] > 0 {
		p.Style = Fill
		cv.DrawCircle(half+r, 0, r*sc[4], p)
	}
	cv.Restore()
}
