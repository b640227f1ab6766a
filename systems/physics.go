package systems

import (
	"github.com/automoto/chainrig/components"
	cfg "github.com/automoto/chainrig/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics advances the physics world and the simulation clock by one
// fixed step.
func UpdatePhysics(ecs *ecs.ECS) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	dt := cfg.FixedStep()
	components.Space.Get(spaceEntry).Step(dt)

	if despawner, ok := components.Clock.First(ecs.World); ok {
		components.Clock.Get(despawner).Advance(dt)
	}
}
