package systems

import (
	"github.com/automoto/chainrig/components"
	"github.com/automoto/chainrig/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDespawn removes every queued entity whose lifetime has run out by
// the simulation clock. Entities already gone are skipped.
func UpdateDespawn(ecs *ecs.ECS) {
	despawner, ok := components.Despawn.First(ecs.World)
	if !ok {
		return
	}
	queue := components.Despawn.Get(despawner).Queue
	now := components.Clock.Get(despawner).Now()
	stats := components.Stats.Get(despawner)

	// Collect first, remove after, so the query is not mutated mid-iteration.
	var expired []donburi.Entity
	queue.Sweep(now, func(entity donburi.Entity) {
		expired = append(expired, entity)
	})
	for _, entity := range expired {
		if ecs.World.Valid(entity) {
			stats.DebrisRemoved++
		}
		factory.RemoveBodyEntity(ecs, entity)
	}
}
