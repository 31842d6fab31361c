package render

import (
	"fmt"

	"github.com/automoto/glowswarm/components"
	cfg "github.com/automoto/glowswarm/config"
	"github.com/automoto/glowswarm/fonts"
	"github.com/automoto/glowswarm/session"
	"github.com/automoto/glowswarm/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawMenu renders the main menu screen
func DrawMenu(s *session.Session, screen *ebiten.Image) {
	menu := systems.GetOrCreateMenu(s)

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()
	cx := width / 2

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Menu.BackgroundColor, false)

	drawCentered(screen, cfg.Menu.Title, fonts.Title.Get(), cx, int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	menuFont := fonts.Bold.Get()
	for i, option := range components.MainMenuOptions {
		y := cfg.Menu.MenuStartY + float64(i)*(cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap)

		textColor := cfg.Menu.TextColorNormal
		label := option.String()
		if i == menu.SelectedIndex {
			textColor = cfg.Menu.TextColorSelected
			label = "> " + label + " <"
		}
		drawCentered(screen, label, menuFont, cx, int(y+cfg.Menu.MenuItemHeight), textColor)
	}

	if menu.BestSeconds > 0 {
		best := fmt.Sprintf("Best: %.1fs", menu.BestSeconds)
		drawCentered(screen, best, fonts.Body.Get(), cx, height-48, cfg.TextGrey)
	}
	drawCentered(screen, "WASD/Arrows: Navigate   Enter: Select", fonts.Small.Get(), cx, height-12, cfg.Menu.TextColorNormal)
}
