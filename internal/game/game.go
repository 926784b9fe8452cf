package game

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/window-line-ball/internal/audio"
	"github.com/iburimskiy/window-line-ball/internal/config"
	"github.com/iburimskiy/window-line-ball/internal/view"
)

// Game hosts the window-line-ball widget in an ebiten loop. The screen is
// only repainted after the renderer asks for it.
type Game struct {
	renderer *view.Renderer
	chime    *audio.Chime

	dirty  bool
	width  int
	height int

	touchIDs []ebiten.TouchID
}

func New(v config.Variant) *Game {
	ebiten.SetTPS(config.TPS)
	ebiten.SetScreenClearedEveryFrame(false)

	g := &Game{dirty: true}
	g.renderer = view.NewRenderer(v, g)
	log.Printf("window-line-ball: %s variant, %d nodes", v.Name, len(v.Palette))

	if config.ChimeEnabled {
		c, err := audio.NewChime()
		if err != nil {
			log.Printf("window-line-ball: audio disabled: %v", err)
		} else {
			g.chime = c
		}
	}
	return g
}

// Invalidate requests a repaint on the next Draw.
func (g *Game) Invalidate() {
	g.dirty = true
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	for range g.touchIDs {
		g.renderer.HandleTouch(view.PointerDown)
	}
	g.touchIDs = inpututil.AppendJustReleasedTouchIDs(g.touchIDs[:0])
	for range g.touchIDs {
		g.renderer.HandleTouch(view.PointerUp)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.renderer.HandleTouch(view.PointerDown)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.renderer.HandleTouch(view.PointerUp)
	}

	dt := time.Second / time.Duration(ebiten.TPS())
	if idx, ok := g.renderer.Advance(dt); ok && g.chime != nil {
		g.chime.Play(idx)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if !g.dirty {
		return
	}
	g.renderer.Render(newCanvas(screen))
	g.dirty = false
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.dirty = true
	}
	return outsideWidth, outsideHeight
}
