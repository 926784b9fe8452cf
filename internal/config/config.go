package config

import (
	"image/color"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/window-line-ball/internal/anim"
)

const (
	// Desktop window size; the widget itself always fills whatever it gets.
	WindowWidth  = 720
	WindowHeight = 1280

	// Ticks per second of the host update loop.
	TPS = 60

	ChimeEnabled = true
)

// Variant holds every constant that shapes one flavour of the widget.
type Variant struct {
	Name         string
	Easing       anim.Easing
	Parts        int
	SizeFactor   float64
	StrokeFactor float64
	RFactor      float64
	Deg          float64
	Palette      []color.RGBA
	BackColor    color.RGBA
	Delay        time.Duration
}

// ScGap is the per-tick scale increment.
func (v Variant) ScGap() float64 {
	return 0.02 / float64(v.Parts)
}

func (v Variant) Ease(x float64) float64 {
	return v.Easing.Apply(x)
}

// Color returns the palette entry for node i.
func (v Variant) Color(i int) color.RGBA {
	return v.Palette[i%len(v.Palette)]
}

var palette = []color.RGBA{
	mustHex("#f44336"),
	mustHex("#311B92"),
	mustHex("#00C853"),
	mustHex("#00C853"),
	mustHex("#C51162"),
}

var (
	// Reciprocal eases with 1/x, which reveals every stage at once.
	Reciprocal = Variant{
		Name:         "reciprocal",
		Easing:       anim.EaseReciprocal,
		Parts:        4,
		SizeFactor:   3.9,
		StrokeFactor: 90,
		RFactor:      12.9,
		Deg:          45,
		Palette:      palette,
		BackColor:    mustHex("#BDBDBD"),
		Delay:        20 * time.Millisecond,
	}

	// Sinusoidal grows the shape in and back out over one animation.
	Sinusoidal = Variant{
		Name:         "sinusoidal",
		Easing:       anim.EaseSinusoidal,
		Parts:        5,
		SizeFactor:   3.9,
		StrokeFactor: 90,
		RFactor:      18.9,
		Deg:          45,
		Palette:      palette,
		BackColor:    mustHex("#BDBDBD"),
		Delay:        20 * time.Millisecond,
	}

	Active = Sinusoidal
)

func mustHex(s string) color.RGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
