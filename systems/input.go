package systems

import (
	"log"

	"github.com/automoto/chainrig/components"
	cfg "github.com/automoto/chainrig/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Binding lists the keys and standard gamepad buttons that trigger an action.
// Every entry is an alternate for the same logical command.
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Bindings maps logical actions to devices. The chain is steered with the
// same left and right commands that walk the player.
var Bindings = map[cfg.ActionID]Binding{
	cfg.ActionMoveLeft: {
		Keys:                   []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	cfg.ActionMoveRight: {
		Keys:                   []ebiten.Key{ebiten.KeyD, ebiten.KeyRight},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	cfg.ActionJump: {
		Keys:                   []ebiten.Key{ebiten.KeySpace, ebiten.KeyW, ebiten.KeyUp},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	cfg.ActionToggleDebug: {
		Keys:                   []ebiten.Key{ebiten.KeyF3},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterLeft},
	},
	cfg.ActionRestart: {
		Keys:                   []ebiten.Key{ebiten.KeyR},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
	},
	cfg.ActionPause: {
		Keys:                   []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	},
	cfg.ActionStep: {
		Keys:                   []ebiten.Key{ebiten.KeyPeriod},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopRight},
	},
}

// Reusable slices to avoid allocations
var (
	gamepadIDs     []ebiten.GamepadID
	justPressedIDs []ebiten.GamepadID
	justButtons    []ebiten.StandardGamepadButton
)

// UpdateInput polls raw input and updates the Input component.
// Must run BEFORE UpdatePlayer and UpdateChain in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	if cfg.Debug.LogGamepad {
		logGamepadEvents(gamepadIDs)
	}

	analogLeft, analogRight := getAnalogStickState(gamepadIDs)

	var keyboardUsed, gamepadUsed bool
	for actionID, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	// Merge analog stick into directional actions
	if analogLeft {
		input.Current[cfg.ActionMoveLeft] = true
		gamepadUsed = true
	}
	if analogRight {
		input.Current[cfg.ActionMoveRight] = true
		gamepadUsed = true
	}

	mouseUsed := updateMouse(input)

	// Gamepad takes priority if several devices were used
	switch {
	case gamepadUsed:
		input.LastInputMethod = components.InputGamepad
	case keyboardUsed:
		input.LastInputMethod = components.InputKeyboard
	case mouseUsed:
		input.LastInputMethod = components.InputMouse
	}
}

// updateMouse records how far the cursor moved since the last tick.
func updateMouse(input *components.InputData) bool {
	x, y := ebiten.CursorPosition()
	if !input.CursorSeen {
		input.CursorX, input.CursorY = x, y
		input.CursorSeen = true
		input.MouseDX, input.MouseDY = 0, 0
		return false
	}
	input.MouseDX = float64(x - input.CursorX)
	input.MouseDY = float64(y - input.CursorY)
	input.CursorX, input.CursorY = x, y
	return input.MouseDX != 0 || input.MouseDY != 0
}

// getAnalogStickState reads the left stick's horizontal axis from all gamepads
func getAnalogStickState(gamepads []ebiten.GamepadID) (left, right bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if horizontal < -deadzone {
			left = true
		}
		if horizontal > deadzone {
			right = true
		}
	}
	return
}

func logGamepadEvents(gamepads []ebiten.GamepadID) {
	justPressedIDs = inpututil.AppendJustConnectedGamepadIDs(justPressedIDs[:0])
	for _, gpID := range justPressedIDs {
		log.Printf("gamepad %d connected: %s", gpID, ebiten.GamepadName(gpID))
	}

	for _, gpID := range gamepads {
		if inpututil.IsGamepadJustDisconnected(gpID) {
			log.Printf("gamepad %d disconnected", gpID)
			continue
		}
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		justButtons = inpututil.AppendJustPressedStandardGamepadButtons(gpID, justButtons[:0])
		for _, btn := range justButtons {
			log.Printf("gamepad %d pressed %v (%.2f)", gpID, btn, ebiten.StandardGamepadButtonValue(gpID, btn))
		}
		justButtons = inpututil.AppendJustReleasedStandardGamepadButtons(gpID, justButtons[:0])
		for _, btn := range justButtons {
			log.Printf("gamepad %d released %v", gpID, btn)
		}
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}
