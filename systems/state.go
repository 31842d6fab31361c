package systems

import (
	cfg "github.com/automoto/glowswarm/config"
	"github.com/automoto/glowswarm/session"
)

// System is a unit of per-tick work over a session.
type System func(s *session.Session)

type step struct {
	run    System
	states []cfg.GameState
}

// Schedule runs systems in insertion order, each only while the machine is in
// one of its states. Every system in a tick sees the same state.
type Schedule struct {
	steps []step
}

func NewSchedule() *Schedule {
	return &Schedule{}
}

// Add appends a system gated on the given states. No states means always.
func (sc *Schedule) Add(sys System, states ...cfg.GameState) *Schedule {
	sc.steps = append(sc.steps, step{run: sys, states: states})
	return sc
}

// Tick runs one frame: eligible systems in order, then queued commands, then
// any requested state change.
func (sc *Schedule) Tick(s *session.Session) {
	for _, st := range sc.steps {
		if len(st.states) > 0 && !s.State.In(st.states...) {
			continue
		}
		st.run(s)
	}
	s.Flush()
	s.State.Apply()
}

// NewArenaSchedule builds the gameplay schedule.
func NewArenaSchedule() *Schedule {
	return NewSchedule().
		Add(MovePlayer, cfg.StateGame).
		Add(MoveEnemies, cfg.StateGame).
		Add(SpawnWave, cfg.StateGame).
		Add(ResolveContacts, cfg.StateGame).
		Add(CheckPlayerLoss, cfg.StateGame).
		Add(TrackSurvival, cfg.StateGame).
		Add(ListenForRestart, cfg.StateLost, cfg.StateWon).
		Add(UpdateFades, cfg.StateLost, cfg.StateWon).
		Add(TogglePause, cfg.StateGame, cfg.StatePaused)
}

// TrackSurvival accumulates time spent in Game.
func TrackSurvival(s *session.Session) {
	s.Stats.Survived += s.Delta
}
