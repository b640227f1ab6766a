package factory

import (
	"github.com/automoto/chainrig/archetypes"
	"github.com/automoto/chainrig/components"
	cfg "github.com/automoto/chainrig/config"
	"github.com/automoto/chainrig/physics"
	"github.com/jakecoffman/cp"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	world := physics.NewWorld(physics.Config{
		Gravity:    cp.Vector{Y: cfg.Physics.Gravity},
		Iterations: cfg.Physics.Iterations,
	})
	components.Space.Set(space, &components.SpaceData{World: world})
	return space
}

// CreateTriggers creates the resolv space dead zones and the player probe
// are checked in.
func CreateTriggers(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	triggers := archetypes.Triggers.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Triggers.Set(triggers, &components.TriggerData{Space: spaceData})
	return triggers
}

// PhysicsWorld returns the scene's physics world, if it has one.
func PhysicsWorld(ecs *ecs.ECS) (*physics.World, bool) {
	entry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Space.Get(entry).World, true
}

// RemoveBodyEntity destroys an entity and the physics body it owns. Entities
// already removed through another path are ignored.
func RemoveBodyEntity(ecs *ecs.ECS, entity donburi.Entity) {
	if !ecs.World.Valid(entity) {
		return
	}
	entry := ecs.World.Entry(entity)
	if entry.HasComponent(components.Body) {
		if world, ok := PhysicsWorld(ecs); ok {
			world.DestroyBody(components.Body.Get(entry).ID)
		}
	}
	if entry.HasComponent(components.Object) {
		if triggers, ok := components.Triggers.First(ecs.World); ok {
			if obj := components.Object.Get(entry); obj.Object != nil {
				components.Triggers.Get(triggers).Remove(obj.Object)
			}
		}
	}
	ecs.World.Remove(entity)
}
