package shape_test

import (
	"math"
	"testing"

	"github.com/iburimskiy/window-line-ball/internal/config"
	"github.com/iburimskiy/window-line-ball/internal/shape"
	"github.com/iburimskiy/window-line-ball/internal/shape/shapetest"
)

func TestDrawNodeFullyRevealed(t *testing.T) {
	rec := shapetest.New(400, 800)
	var p shape.Paint
	// sin(0.5*pi) == 1 reveals every stage.
	shape.DrawNode(rec, config.Sinusoidal, 2, 0.5, &p)

	if rec.Depth() != 0 {
		t.Fatalf("unbalanced save/restore, depth %d", rec.Depth())
	}
	if got := rec.Count("rect"); got != 2 {
		t.Errorf("Expected 2 rects, got %d", got)
	}
	if got := rec.Count("line"); got != 4 {
		t.Errorf("Expected 4 lines, got %d", got)
	}
	if got := rec.Count("circle"); got != 4 {
		t.Errorf("Expected 4 circles, got %d", got)
	}

	scales := rec.Find("scale")
	if len(scales) != 2 || scales[0].Args[0] != 1 || scales[1].Args[0] != -1 {
		t.Errorf("Expected a normal and a mirrored pass, got %+v", scales)
	}

	wantWidth := 400 / config.Sinusoidal.StrokeFactor
	for _, op := range rec.Find("line") {
		if op.Paint.Color != config.Sinusoidal.Palette[2] {
			t.Errorf("Expected palette color 2, got %v", op.Paint.Color)
		}
		if op.Paint.Cap != shape.CapRound {
			t.Error("Expected round caps")
		}
		if math.Abs(op.Paint.StrokeWidth-wantWidth) > 1e-9 {
			t.Errorf("Expected stroke width %v, got %v", wantWidth, op.Paint.StrokeWidth)
		}
	}

	circles := rec.Find("circle")
	if circles[0].Paint.Style != shape.Stroke || circles[1].Paint.Style != shape.Fill {
		t.Error("Expected a stroked ring followed by a filled ball")
	}
	size := 400 / config.Sinusoidal.SizeFactor
	wantR := size / config.Sinusoidal.RFactor
	if math.Abs(circles[1].Args[2]-wantR) > 1e-9 {
		t.Errorf("Expected radius %v, got %v", wantR, circles[1].Args[2])
	}
}

func TestDrawNodeHidden(t *testing.T) {
	rec := shapetest.New(400, 800)
	var p shape.Paint
	shape.DrawNode(rec, config.Sinusoidal, 0, 0, &p)

	if got := rec.Count("circle"); got != 0 {
		t.Errorf("Expected no circles at scale 0, got %d", got)
	}
	for _, op := range rec.Find("rect") {
		if op.Args[2] != 0 {
			t.Errorf("Expected zero-width window, got %v", op.Args[2])
		}
	}
}

func TestDrawNodeReciprocalAtRest(t *testing.T) {
	rec := shapetest.New(300, 300)
	var p shape.Paint
	// 1/0 is +Inf, so the reciprocal variant shows the full shape at rest.
	shape.DrawNode(rec, config.Reciprocal, 4, 0, &p)

	if got := rec.Count("circle"); got != 4 {
		t.Errorf("Expected 4 circles, got %d", got)
	}
	half := 300 / config.Reciprocal.SizeFactor / 2
	for _, op := range rec.Find("rect") {
		if math.Abs(op.Args[2]-half) > 1e-9 {
			t.Errorf("Expected window width %v, got %v", half, op.Args[2])
		}
	}
}

func TestChainDrawUsesCurrentNode(t *testing.T) {
	c := shape.NewChain(len(config.Sinusoidal.Palette))
	c.StartUpdating()
	for i := 0; i < 1000; i++ {
		c.Update(config.Sinusoidal.ScGap())
		if c.Current().Index == 1 {
			break
		}
	}

	rec := shapetest.New(200, 200)
	var p shape.Paint
	c.Draw(rec, config.Sinusoidal, &p)
	if p.Color != config.Sinusoidal.Palette[1] {
		t.Errorf("Expected color of node 1, got %v", p.Color)
	}
}
