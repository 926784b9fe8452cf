//go:build android || ios

// Package mobile is the entry point for ebitenmobile bind, which wraps the
// widget in a fullscreen Android activity or iOS view controller.
package mobile

import (
	ebitenmobile "github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/iburimskiy/window-line-ball/internal/config"
	"github.com/iburimskiy/window-line-ball/internal/game"
)

func init() {
	ebitenmobile.SetGame(game.New(config.Active))
}

// Dummy is a dummy exported function.
//
// gomobile doesn't compile a package that doesn't include any exported function.
// Dummy forces gomobile to compile this package.
func Dummy() {}
