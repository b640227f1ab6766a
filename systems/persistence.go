package systems

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/automoto/chainrig/components"
	cfg "github.com/automoto/chainrig/config"
	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Debug        bool        `json:"debug"`
	LastScene    cfg.SceneID `json:"lastScene"`
	MouseImpulse bool        `json:"mouseImpulse"`
}

var gdataManager *gdata.Manager

// savedSettings seeds the Settings component of every new scene.
var savedSettings *SavedSettings

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return fmt.Errorf("opening settings storage: %w", err)
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. A missing file or storage that
// never opened yields nil settings and no error.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, fmt.Errorf("parsing saved settings: %w", err)
	}
	if !cfg.ValidScene(settings.LastScene) {
		settings.LastScene = ""
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings saves the live Settings component
func SaveCurrentSettings(s *components.SettingsData) {
	saved := &SavedSettings{
		Debug:        s.Debug,
		LastScene:    s.Scene,
		MouseImpulse: s.MouseImpulse,
	}
	savedSettings = saved
	_ = SaveSettings(saved)
}

// ApplySavedSettingsGlobal keeps loaded settings for the scenes created
// after startup.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	savedSettings = saved
}
