package systems

import (
	cfg "github.com/automoto/glowswarm/config"
	"github.com/automoto/glowswarm/session"
)

// TogglePause flips between Game and Paused. While paused the back action
// abandons the run and returns to the menu.
func TogglePause(s *session.Session) {
	switch s.State.Current() {
	case cfg.StateGame:
		if s.Input.JustPressed(cfg.ActionPause) {
			_ = s.State.Set(cfg.StatePaused)
		}
	case cfg.StatePaused:
		if s.Input.JustPressed(cfg.ActionPause) {
			_ = s.State.Set(cfg.StateGame)
			return
		}
		if s.Input.JustPressed(cfg.ActionMenuBack) {
			_ = s.State.Set(cfg.StateMenu)
		}
	}
}
