package systems

import (
	"github.com/automoto/glowswarm/archetypes"
	"github.com/automoto/glowswarm/components"
	cfg "github.com/automoto/glowswarm/config"
	"github.com/automoto/glowswarm/session"
)

// MenuActions handles menu choices that leave the state machine alone.
type MenuActions interface {
	OpenSettings()
	Quit()
}

// GetOrCreateMenu returns the main menu state, creating it on first use.
func GetOrCreateMenu(s *session.Session) *components.MenuData {
	entry, ok := components.Menu.First(s.World)
	if !ok {
		entry = archetypes.Menu.Spawn(s.World)
	}
	return components.Menu.Get(entry)
}

// NewUpdateMenu creates the main menu system. New Game requests the Game
// state; the other options are forwarded to actions.
func NewUpdateMenu(actions MenuActions) System {
	return func(s *session.Session) {
		menu := GetOrCreateMenu(s)
		numOptions := len(components.MainMenuOptions)

		if s.Input.JustPressed(cfg.ActionMenuUp) {
			s.PlaySound(cfg.SoundMenuNavigate)
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if s.Input.JustPressed(cfg.ActionMenuDown) {
			s.PlaySound(cfg.SoundMenuNavigate)
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		if !s.Input.JustPressed(cfg.ActionMenuSelect) {
			return
		}
		s.PlaySound(cfg.SoundMenuSelect)
		switch components.MainMenuOptions[menu.SelectedIndex] {
		case components.MainMenuNewGame:
			_ = s.State.Set(cfg.StateGame)
		case components.MainMenuSettings:
			actions.OpenSettings()
		case components.MainMenuQuit:
			actions.Quit()
		}
	}
}
