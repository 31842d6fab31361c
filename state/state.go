package state

import (
	"errors"
	"fmt"

	cfg "github.com/automoto/glowswarm/config"
)

var (
	// ErrInvalidTransition is returned when a change is not in cfg.Transitions.
	ErrInvalidTransition = errors.New("invalid state transition")
	// ErrTransitionPending is returned when a change was already requested this tick.
	ErrTransitionPending = errors.New("state transition already pending")
)

// Hook runs when the machine leaves or enters a state.
type Hook func(from, to cfg.GameState)

// Machine holds the current game state and at most one requested change.
// Requests are applied at the tick boundary so every system in a tick sees
// the same state.
type Machine struct {
	current cfg.GameState
	next    cfg.GameState
	pending bool

	onEnter map[cfg.GameState][]Hook
	onExit  map[cfg.GameState][]Hook
}

func New(initial cfg.GameState) *Machine {
	return &Machine{
		current: initial,
		onEnter: make(map[cfg.GameState][]Hook),
		onExit:  make(map[cfg.GameState][]Hook),
	}
}

func (m *Machine) Current() cfg.GameState {
	return m.current
}

// In reports whether the current state is one of states.
func (m *Machine) In(states ...cfg.GameState) bool {
	for _, s := range states {
		if m.current == s {
			return true
		}
	}
	return false
}

// Pending returns the requested state, if any.
func (m *Machine) Pending() (cfg.GameState, bool) {
	return m.next, m.pending
}

// Set requests a change to the given state. The first valid request in a
// tick wins.
func (m *Machine) Set(to cfg.GameState) error {
	if m.pending {
		return fmt.Errorf("%w: %v -> %v requested, %v already queued", ErrTransitionPending, m.current, to, m.next)
	}
	if !cfg.CanTransition(m.current, to) {
		return fmt.Errorf("%w: %v -> %v", ErrInvalidTransition, m.current, to)
	}
	m.next = to
	m.pending = true
	return nil
}

// Apply performs the pending change, running exit hooks of the old state and
// then enter hooks of the new one. Hooks may request the next change.
func (m *Machine) Apply() bool {
	if !m.pending {
		return false
	}
	from, to := m.current, m.next
	m.pending = false

	for _, h := range m.onExit[from] {
		h(from, to)
	}
	m.current = to
	for _, h := range m.onEnter[to] {
		h(from, to)
	}
	return true
}

func (m *Machine) OnEnter(s cfg.GameState, h Hook) {
	m.onEnter[s] = append(m.onEnter[s], h)
}

func (m *Machine) OnExit(s cfg.GameState, h Hook) {
	m.onExit[s] = append(m.onExit[s], h)
}
