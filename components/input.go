package components

import (
	cfg "github.com/automoto/glowswarm/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed is computed on demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	// AnyJustPressed is set when any key or button went down this frame,
	// bound or not.
	AnyJustPressed bool
}

// Held reports whether the action is down this frame.
func (d *InputData) Held(action cfg.ActionID) bool {
	return d.Current[action]
}

// JustPressed reports whether the action went down this frame.
func (d *InputData) JustPressed(action cfg.ActionID) bool {
	return d.Current[action] && !d.Previous[action]
}

// Advance rolls the current frame into the previous one and clears the current.
func (d *InputData) Advance() {
	d.Previous = d.Current
	d.Current = [cfg.ActionCount]bool{}
	d.AnyJustPressed = false
}

var Input = donburi.NewComponentType[InputData]()
