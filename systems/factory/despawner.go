package factory

import (
	"time"

	"github.com/automoto/chainrig/archetypes"
	"github.com/automoto/chainrig/components"
	"github.com/automoto/chainrig/despawn"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateDespawner creates the scene's removal queue and the simulation clock
// it is swept against.
func CreateDespawner(ecs *ecs.ECS) *donburi.Entry {
	despawner := archetypes.Despawner.Spawn(ecs)
	components.Despawn.SetValue(despawner, components.DespawnData{Queue: despawn.New[donburi.Entity]()})
	components.Clock.SetValue(despawner, components.ClockData{Start: time.Unix(0, 0)})
	components.Stats.SetValue(despawner, components.StatsData{})
	return despawner
}
