package components

import (
	cfg "github.com/automoto/chainrig/config"
	"github.com/yohamta/donburi"
)

// SettingsData is the live, persisted session state.
type SettingsData struct {
	Debug        bool
	MouseImpulse bool
	Scene        cfg.SceneID
}

var Settings = donburi.NewComponentType[SettingsData]()
