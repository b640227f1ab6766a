package archetypes

import (
	"github.com/automoto/chainrig/components"
	cfg "github.com/automoto/chainrig/config"
	"github.com/automoto/chainrig/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Body,
		components.Chain,
		components.Object,
	)
	ChainLink = newArchetype(
		tags.ChainLink,
		components.Body,
	)
	Debris = newArchetype(
		tags.Debris,
		components.Body,
		components.Debris,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Body,
	)
	Prop = newArchetype(
		tags.Prop,
		components.Body,
	)
	DeadZone = newArchetype(
		tags.DeadZone,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Triggers = newArchetype(
		components.Triggers,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Despawner = newArchetype(
		components.Despawn,
		components.Clock,
		components.Stats,
	)
	Telemetry = newArchetype(
		components.Telemetry,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
