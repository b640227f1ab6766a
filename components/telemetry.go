package components

import (
	"github.com/automoto/chainrig/telemetry"
	"github.com/yohamta/donburi"
)

// TelemetryData holds the scene's run log. Output is nil when telemetry is
// disabled.
type TelemetryData struct {
	Collector *telemetry.Collector
	Output    *telemetry.OutputManager
}

var Telemetry = donburi.NewComponentType[TelemetryData]()
