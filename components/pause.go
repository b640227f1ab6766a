package components

import "github.com/yohamta/donburi"

// PauseData stores the pause state. While paused the simulation only moves
// when a single step is requested.
type PauseData struct {
	IsPaused      bool
	StepRequested bool
}

var Pause = donburi.NewComponentType[PauseData]()
