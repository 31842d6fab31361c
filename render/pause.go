package render

import (
	cfg "github.com/automoto/glowswarm/config"
	"github.com/automoto/glowswarm/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawPause renders the pause overlay.
func DrawPause(screen *ebiten.Image) {
	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Pause.OverlayColor, false)

	drawCentered(screen, cfg.Pause.Title, fonts.Title.Get(), width/2, height/2-10, cfg.Pause.TextColor)
	drawCentered(screen, cfg.Pause.Hint, fonts.Small.Get(), width/2, height/2+30, cfg.Pause.TextColor)
}
