package config

// GameState is the process-wide phase that decides which systems run.
type GameState int

const (
	StateSplash GameState = iota
	StateMenu
	StateGame
	StatePaused
	StateLost
	StateWon
)

var stateNames = map[GameState]string{
	StateSplash: "Splash",
	StateMenu:   "Menu",
	StateGame:   "Game",
	StatePaused: "Paused",
	StateLost:   "Lost",
	StateWon:    "Won",
}

func (s GameState) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "Unknown"
}

// IsEndScreen reports whether the state shows the win/lose overlay.
func (s GameState) IsEndScreen() bool {
	return s == StateLost || s == StateWon
}

// Transitions lists every allowed state change. StateWon is reachable by the
// machine but no gameplay rule requests it yet.
var Transitions = map[GameState][]GameState{
	StateSplash: {StateMenu},
	StateMenu:   {StateGame},
	StateGame:   {StatePaused, StateLost, StateWon},
	StatePaused: {StateGame, StateMenu},
	StateLost:   {StateMenu},
	StateWon:    {StateMenu},
}

// CanTransition reports whether from -> to is an allowed change.
func CanTransition(from, to GameState) bool {
	for _, s := range Transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
