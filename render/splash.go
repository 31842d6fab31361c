package render

import (
	"github.com/automoto/glowswarm/components"
	cfg "github.com/automoto/glowswarm/config"
	"github.com/automoto/glowswarm/fonts"
	"github.com/automoto/glowswarm/session"
	"github.com/hajimehoshi/ebiten/v2"
)

// DrawSplash renders the fading title card.
func DrawSplash(s *session.Session, screen *ebiten.Image) {
	screen.Fill(cfg.Menu.BackgroundColor)

	entry, ok := components.Splash.First(s.World)
	if !ok {
		return
	}
	alpha := components.Fade.Get(entry).Alpha
	cx := screen.Bounds().Dx() / 2

	drawCentered(screen, cfg.Splash.Title, fonts.Title.Get(), cx, int(cfg.Splash.TitleY), withAlpha(cfg.Splash.Color, alpha))
	drawCentered(screen, cfg.Splash.Subtitle, fonts.Body.Get(), cx, int(cfg.Splash.TitleY)+40, withAlpha(cfg.TextGrey, alpha))
}
