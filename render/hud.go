package render

import (
	"fmt"

	"github.com/automoto/glowswarm/components"
	cfg "github.com/automoto/glowswarm/config"
	"github.com/automoto/glowswarm/fonts"
	"github.com/automoto/glowswarm/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawHUD renders the player's health bar, wave counter and survival time.
func DrawHUD(s *session.Session, screen *ebiten.Image) {
	entry, ok := s.Player()
	if !ok {
		return
	}
	hp := components.Health.Get(entry)
	margin := float32(cfg.HUD.Margin)

	vector.FillRect(screen, margin, margin,
		float32(cfg.HUD.HealthBarWidth), float32(cfg.HUD.HealthBarHeight),
		cfg.HUD.BarBgColor, false)
	vector.FillRect(screen, margin, margin,
		float32(cfg.HUD.HealthBarWidth*hp.Fraction()), float32(cfg.HUD.HealthBarHeight),
		cfg.HUD.BarFgColor, false)

	face := fonts.Small.Get()
	lineY := int(cfg.HUD.Margin+cfg.HUD.HealthBarHeight) + 16
	text.Draw(screen, fmt.Sprintf("HP %d/%d", hp.Current, hp.Max), face, int(cfg.HUD.Margin), lineY, cfg.HUD.TextColor)
	text.Draw(screen, fmt.Sprintf("Wave %d   %.1fs", s.Stats.Waves, s.Stats.Survived), face, int(cfg.HUD.Margin), lineY+16, cfg.HUD.TextColor)
}
