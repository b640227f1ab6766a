package systems

import (
	"log"

	"github.com/automoto/chainrig/chain"
	"github.com/automoto/chainrig/components"
	"github.com/automoto/chainrig/physics"
	"github.com/automoto/chainrig/tags"
	"github.com/automoto/chainrig/telemetry"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTelemetry samples the scene once per tick and writes a row whenever
// a window closes.
func UpdateTelemetry(ecs *ecs.ECS) {
	entry, ok := components.Telemetry.First(ecs.World)
	if !ok {
		return
	}
	tel := components.Telemetry.Get(entry)
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	world := components.Space.Get(spaceEntry).World

	sample := telemetry.Sample{DebrisLive: world.BodyCount(physics.RoleDebris)}
	if despawner, ok := components.Despawn.First(ecs.World); ok {
		stats := components.Stats.Get(despawner)
		sample.SimTimeSec = components.Clock.Get(despawner).Elapsed.Seconds()
		sample.Queued = components.Despawn.Get(despawner).Queue.Len()
		sample.Breakaways = stats.Breakaways
		sample.DebrisRemoved = stats.DebrisRemoved
		sample.Respawns = stats.Respawns
	}
	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		if rig := components.Chain.Get(playerEntry).Rig; rig != nil {
			sample.Offset = rig.Base.Offset
			sample.Links = len(rig.Links())
			sample.PeakRelSpeed = chain.PeakRelativeSpeed(world, rig)
		}
	}

	stats, closed := tel.Collector.Tick(sample)
	if !closed {
		return
	}
	if err := tel.Output.WriteTelemetry(stats); err != nil {
		log.Printf("Warning: Could not write telemetry: %v", err)
	}
}

// CloseTelemetry closes the scene's run log, if it has one.
func CloseTelemetry(ecs *ecs.ECS) {
	entry, ok := components.Telemetry.First(ecs.World)
	if !ok {
		return
	}
	if err := components.Telemetry.Get(entry).Output.Close(); err != nil {
		log.Printf("Warning: Could not close telemetry: %v", err)
	}
}
