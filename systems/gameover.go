package systems

import (
	"github.com/automoto/glowswarm/archetypes"
	"github.com/automoto/glowswarm/components"
	cfg "github.com/automoto/glowswarm/config"
	"github.com/automoto/glowswarm/session"
	"github.com/automoto/glowswarm/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// CheckPlayerLoss requests the Lost state once the player's health is gone.
func CheckPlayerLoss(s *session.Session) {
	entry, ok := s.Player()
	if !ok {
		return
	}
	if !components.Health.Get(entry).Depleted() {
		return
	}
	if err := s.State.Set(cfg.StateLost); err == nil {
		s.PlaySound(cfg.SoundLose)
	}
}

// SpawnEndScreen creates the win/lose overlay: a coloured box with a wrapped
// label on top. It does nothing if an overlay already exists.
func SpawnEndScreen(s *session.Session, outcome cfg.GameState) {
	if !outcome.IsEndScreen() {
		return
	}
	if _, exists := tags.EndScreen.First(s.World); exists {
		return
	}

	boxColor, message := cfg.EndScreen.LostColor, cfg.EndScreen.LostText
	if outcome == cfg.StateWon {
		boxColor, message = cfg.EndScreen.WonColor, cfg.EndScreen.WonText
	}

	s.Commands.Spawn(func(s *session.Session) {
		box := archetypes.EndScreenBox.Spawn(s.World)
		components.Overlay.SetValue(box, components.OverlayData{
			Width:  cfg.EndScreen.BoxWidth,
			Height: cfg.EndScreen.BoxHeight,
			Color:  boxColor,
			Layer:  cfg.EndScreen.BoxLayer,
		})
		components.Fade.SetValue(box, newFadeIn(cfg.EndScreen.FadeSeconds))

		label := archetypes.EndScreenText.Spawn(s.World)
		components.Label.SetValue(label, components.LabelData{
			Text:      message,
			Color:     cfg.EndScreen.TextColor,
			FontSize:  cfg.EndScreen.FontSize,
			WrapWidth: cfg.EndScreen.BoxWidth,
			Layer:     cfg.EndScreen.TextLayer,
			Parent:    box.Entity(),
		})
		components.Fade.SetValue(label, newFadeIn(cfg.EndScreen.FadeSeconds))
	})
	s.Flush()
}

// ListenForRestart clears the overlay and heads back to the menu on any key.
func ListenForRestart(s *session.Session) {
	if !s.Input.AnyJustPressed {
		return
	}
	tags.EndScreen.Each(s.World, func(entry *donburi.Entry) {
		s.Commands.Despawn(entry.Entity())
	})
	_ = s.State.Set(cfg.StateMenu)
}

// UpdateFades advances every running fade tween.
func UpdateFades(s *session.Session) {
	components.Fade.Each(s.World, func(entry *donburi.Entry) {
		components.Fade.Get(entry).Step(float32(s.Delta))
	})
}

func newFadeIn(seconds float64) components.FadeData {
	if seconds <= 0 {
		return components.FadeData{Alpha: 1, Finished: true}
	}
	return components.FadeData{
		Tween: gween.New(0, 1, float32(seconds), ease.OutQuad),
	}
}
