package systems

import (
	"github.com/automoto/chainrig/components"
	cfg "github.com/automoto/chainrig/config"
	"github.com/automoto/chainrig/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the singleton Settings component, seeding it
// from saved settings or the configuration on first use.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	if entry, ok := components.Settings.First(e.World); ok {
		return components.Settings.Get(entry)
	}

	entry := e.World.Entry(e.World.Create(components.Settings))
	settings := components.SettingsData{
		Debug:        cfg.Debug.Overlay,
		MouseImpulse: cfg.Player.MouseImpulse,
		Scene:        cfg.Settings.DefaultScene,
	}
	if savedSettings != nil {
		settings.Debug = savedSettings.Debug
		settings.MouseImpulse = settings.MouseImpulse || savedSettings.MouseImpulse
	}
	components.Settings.SetValue(entry, settings)
	return components.Settings.Get(entry)
}

// UpdateSettings handles the debug overlay toggle and the restart command.
func UpdateSettings(e *ecs.ECS) {
	inputEntry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	input := components.Input.Get(inputEntry)
	settings := GetOrCreateSettings(e)

	if input.Action(cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
		SaveCurrentSettings(settings)
	}

	if input.Action(cfg.ActionRestart).JustPressed {
		tags.Player.Each(e.World, func(entry *donburi.Entry) {
			RespawnPlayer(e, entry)
		})
	}
}
