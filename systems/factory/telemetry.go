package factory

import (
	"log"

	"github.com/automoto/chainrig/archetypes"
	"github.com/automoto/chainrig/components"
	cfg "github.com/automoto/chainrig/config"
	"github.com/automoto/chainrig/telemetry"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTelemetry opens the run log when a telemetry directory is
// configured. Without one, or if the directory cannot be opened, the scene
// runs without telemetry and nil is returned.
func CreateTelemetry(ecs *ecs.ECS) *donburi.Entry {
	out, err := telemetry.NewOutputManager(cfg.Telemetry.Dir)
	if err != nil {
		log.Printf("Warning: Could not open telemetry output: %v", err)
		return nil
	}
	if out == nil {
		return nil
	}
	if err := out.WriteConfig(); err != nil {
		log.Printf("Warning: Could not write telemetry config: %v", err)
	}

	entry := archetypes.Telemetry.Spawn(ecs)
	components.Telemetry.SetValue(entry, components.TelemetryData{
		Collector: telemetry.NewCollector(cfg.Telemetry.WindowSeconds, cfg.FixedStep()),
		Output:    out,
	})
	return entry
}
