package main

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/window-line-ball/internal/config"
	"github.com/iburimskiy/window-line-ball/internal/game"
)

func main() {
	ebiten.SetWindowSize(config.WindowWidth/2, config.WindowHeight/2)
	ebiten.SetWindowTitle("Window Line Ball - tap to animate, Esc/Q: Quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(true)

	g := game.New(config.Active)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
