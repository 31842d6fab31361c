package systems

import (
	cfg "github.com/automoto/glowswarm/config"
	"github.com/automoto/glowswarm/session"
	"github.com/automoto/glowswarm/state"
)

// InstallEndScreenHooks spawns the outcome overlay in whichever session is
// current when the machine enters Lost or Won.
func InstallEndScreenHooks(m *state.Machine, current func() *session.Session) {
	spawn := func(_, to cfg.GameState) {
		if s := current(); s != nil {
			SpawnEndScreen(s, to)
		}
	}
	m.OnEnter(cfg.StateLost, spawn)
	m.OnEnter(cfg.StateWon, spawn)
}
