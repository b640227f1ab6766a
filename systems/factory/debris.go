package factory

import (
	"github.com/automoto/chainrig/archetypes"
	"github.com/automoto/chainrig/components"
	cfg "github.com/automoto/chainrig/config"
	"github.com/automoto/chainrig/physics"
	"github.com/jakecoffman/cp"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateDebris spawns a small piece at pos, kicks it with impulse and queues
// it for removal once the debris lifetime has passed.
func CreateDebris(ecs *ecs.ECS, pos, impulse cp.Vector) *donburi.Entry {
	world, ok := PhysicsWorld(ecs)
	if !ok {
		return nil
	}
	despawner, ok := components.Despawn.First(ecs.World)
	if !ok {
		return nil
	}

	debris := archetypes.Debris.Spawn(ecs)

	shape := physics.Circle(cfg.Breakaway.DebrisRadius)
	shape.Group = cfg.Breakaway.DebrisGroup
	body := world.CreateBody(shape, cfg.Breakaway.DebrisMass, pos, physics.RoleDebris)
	world.ApplyImpulse(body, impulse)
	components.Body.SetValue(debris, components.BodyData{ID: body, Color: cfg.Orange})

	ttl := cfg.Breakaway.DebrisTTL
	components.Debris.SetValue(debris, components.DebrisData{
		Fade:  gween.New(1, 0, float32(ttl.Seconds()), ease.InQuad),
		Alpha: 1,
	})

	clock := components.Clock.Get(despawner)
	components.Despawn.Get(despawner).Queue.Register(debris.Entity(), clock.Now(), ttl)

	return debris
}
