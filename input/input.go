package input

import (
	"github.com/automoto/glowswarm/components"
	cfg "github.com/automoto/glowswarm/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Binding maps an action to physical inputs
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Bindings holds the default key and button map.
var Bindings map[cfg.ActionID]Binding

func init() {
	Bindings = map[cfg.ActionID]Binding{
		cfg.ActionMoveUp:    {Keys: []ebiten.Key{ebiten.KeyW}},
		cfg.ActionMoveDown:  {Keys: []ebiten.Key{ebiten.KeyS}},
		cfg.ActionMoveLeft:  {Keys: []ebiten.Key{ebiten.KeyA}},
		cfg.ActionMoveRight: {Keys: []ebiten.Key{ebiten.KeyD}},
		cfg.ActionPause: {
			Keys:                   []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
		},
		cfg.ActionMenuUp: {
			Keys:                   []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
		},
		cfg.ActionMenuDown: {
			Keys:                   []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
		},
		cfg.ActionMenuSelect: {
			Keys:                   []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
		},
		cfg.ActionMenuBack: {
			Keys:                   []ebiten.Key{ebiten.KeyBackspace},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight},
		},
	}

	if cfg.Input.ArrowKeys {
		addKey(cfg.ActionMoveUp, ebiten.KeyArrowUp)
		addKey(cfg.ActionMoveDown, ebiten.KeyArrowDown)
		addKey(cfg.ActionMoveLeft, ebiten.KeyArrowLeft)
		addKey(cfg.ActionMoveRight, ebiten.KeyArrowRight)
	}
}

func addKey(action cfg.ActionID, key ebiten.Key) {
	b := Bindings[action]
	b.Keys = append(b.Keys, key)
	Bindings[action] = b
}

// Reusable slices to avoid allocations
var (
	gamepadIDs  []ebiten.GamepadID
	justKeys    []ebiten.Key
	justButtons []ebiten.StandardGamepadButton
)

// Poll rolls the previous frame and reads the keyboard and gamepads.
func Poll(in *components.InputData) {
	in.Advance()

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for action, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				in.Current[action] = true
			}
		}
		for _, id := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(id) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(id, btn) {
					in.Current[action] = true
				}
			}
		}
	}

	left, right, up, down := analogStick(gamepadIDs)
	in.Current[cfg.ActionMoveLeft] = in.Current[cfg.ActionMoveLeft] || left
	in.Current[cfg.ActionMoveRight] = in.Current[cfg.ActionMoveRight] || right
	in.Current[cfg.ActionMoveUp] = in.Current[cfg.ActionMoveUp] || up
	in.Current[cfg.ActionMoveDown] = in.Current[cfg.ActionMoveDown] || down

	justKeys = inpututil.AppendJustPressedKeys(justKeys[:0])
	in.AnyJustPressed = len(justKeys) > 0
	for _, id := range gamepadIDs {
		justButtons = inpututil.AppendJustPressedStandardGamepadButtons(id, justButtons[:0])
		if len(justButtons) > 0 {
			in.AnyJustPressed = true
		}
	}
}

// analogStick reads the left stick of every standard gamepad
func analogStick(gamepads []ebiten.GamepadID) (left, right, up, down bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, id := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)

		left = left || h < -deadzone
		right = right || h > deadzone
		// stick y grows downward
		up = up || v < -deadzone
		down = down || v > deadzone
	}
	return left, right, up, down
}
