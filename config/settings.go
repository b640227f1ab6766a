package config

// SceneID names a prototype scene
type SceneID string

const (
	SceneChain SceneID = "chain"
	SceneDrop  SceneID = "drop"
	SceneGrid  SceneID = "grid"
)

// SettingsConfig contains scene selection and persistence configuration
type SettingsConfig struct {
	Scenes       []SceneID
	DefaultScene SceneID
	Level        string // Embedded map file the chain scene plays on
	AppName      string // Directory name used for saved settings
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		Scenes:       []SceneID{SceneChain, SceneDrop, SceneGrid},
		DefaultScene: SceneChain,
		Level:        "chain_yard.tmx",
		AppName:      "chainrig",
	}
}

// ValidScene reports whether id names a known scene.
func ValidScene(id SceneID) bool {
	for _, s := range Settings.Scenes {
		if s == id {
			return true
		}
	}
	return false
}
