package systems

import (
	"log"

	"github.com/automoto/chainrig/chain"
	"github.com/automoto/chainrig/components"
	cfg "github.com/automoto/chainrig/config"
	"github.com/automoto/chainrig/systems/factory"
	"github.com/automoto/chainrig/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBreakaway spawns a piece of debris for every link moving too fast
// relative to its controller after the last step. A link that stays fast
// keeps spawning debris every tick.
func UpdateBreakaway(ecs *ecs.ECS) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	world := components.Space.Get(spaceEntry).World

	var stats *components.StatsData
	if statsEntry, ok := components.Stats.First(ecs.World); ok {
		stats = components.Stats.Get(statsEntry)
	}

	var snaps []chain.Breakaway
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		snaps = append(snaps, chain.DetectBreakaways(world, components.Chain.Get(e).Rig, cfg.Breakaway.Threshold)...)
	})

	// Spawned after the query so the player archetype is not mutated mid-iteration.
	for _, b := range snaps {
		if factory.CreateDebris(ecs, b.Position, b.Impulse) == nil {
			continue
		}
		if stats != nil {
			stats.Breakaways++
		}
		if cfg.Debug.LogBreakaways {
			log.Printf("link %d snapped: dv=(%.1f, %.1f)", b.Index, b.Delta.X, b.Delta.Y)
		}
	}
}
