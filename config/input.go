package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionToggleDebug
	ActionRestart
	ActionPause
	ActionStep // Advance one tick while paused
	ActionCount // Must be last - used for array sizing
)

// InputConfig holds device independent input settings
type InputConfig struct {
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64 `yaml:"analog_deadzone"`
	// Trigger pressure below this is treated as released
	TriggerDeadzone float64 `yaml:"trigger_deadzone"`
}

// Input is the global input configuration
var Input = InputConfig{
	AnalogDeadzone:  0.25,
	TriggerDeadzone: 0.01,
}

func (a ActionID) String() string {
	switch a {
	case ActionMoveLeft:
		return "move_left"
	case ActionMoveRight:
		return "move_right"
	case ActionJump:
		return "jump"
	case ActionToggleDebug:
		return "toggle_debug"
	case ActionRestart:
		return "restart"
	case ActionPause:
		return "pause"
	case ActionStep:
		return "step"
	}
	return "none"
}
