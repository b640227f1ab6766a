package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is the on-disk shape of a tuning file. Every section is optional;
// anything missing keeps its built-in default.
type Tuning struct {
	Window    *Config          `yaml:"window"`
	Chain     *ChainConfig     `yaml:"chain"`
	Breakaway *BreakawayConfig `yaml:"breakaway"`
	Player    *PlayerConfig    `yaml:"player"`
	Physics   *PhysicsConfig   `yaml:"physics"`
	Camera    *CameraConfig    `yaml:"camera"`
	Drop      *DropConfig      `yaml:"drop"`
	Grid      *GridConfig      `yaml:"grid"`
	Debug     *DebugConfig     `yaml:"debug"`
	Input     *InputConfig     `yaml:"input"`
	Telemetry *TelemetryConfig `yaml:"telemetry"`
}

// current points every section at the live configuration so unmarshalling
// only overwrites the fields present in the file.
func current() *Tuning {
	return &Tuning{
		Window:    C,
		Chain:     &Chain,
		Breakaway: &Breakaway,
		Player:    &Player,
		Physics:   &Physics,
		Camera:    &Camera,
		Drop:      &Drop,
		Grid:      &Grid,
		Debug:     &Debug,
		Input:     &Input,
		Telemetry: &Telemetry,
	}
}

// ApplyTuning overlays YAML data onto the live configuration.
func ApplyTuning(data []byte) error {
	if err := yaml.Unmarshal(data, current()); err != nil {
		return fmt.Errorf("parsing tuning: %w", err)
	}
	return nil
}

// LoadTuning reads a tuning file and overlays it. An empty path is a no-op.
func LoadTuning(path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading tuning file: %w", err)
	}
	return ApplyTuning(data)
}

// WriteTuning dumps the live configuration as YAML, a starting point for a
// tuning file.
func WriteTuning(path string) error {
	data, err := yaml.Marshal(current())
	if err != nil {
		return fmt.Errorf("marshaling tuning: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing tuning file: %w", err)
	}
	return nil
}
