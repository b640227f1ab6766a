package factory

import (
	"github.com/automoto/chainrig/archetypes"
	"github.com/automoto/chainrig/chain"
	"github.com/automoto/chainrig/components"
	cfg "github.com/automoto/chainrig/config"
	"github.com/automoto/chainrig/physics"
	"github.com/automoto/chainrig/tags"
	"github.com/jakecoffman/cp"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns the player body standing on spawn, the chain rig
// stacked above it, and the trigger probe that follows it.
func CreatePlayer(ecs *ecs.ECS, spawn math.Vec2) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	world, ok := PhysicsWorld(ecs)
	if !ok {
		panic("CreatePlayer: scene has no physics space")
	}

	w, h := cfg.Player.Width, cfg.Player.Height
	shape := physics.Box(w, h)
	shape.Friction = cfg.Player.Friction
	shape.FixedRotation = true
	// The rig shares the player's group so links resting on the player's
	// head do not push it around.
	shape.Group = cfg.Chain.Group

	center := cp.Vector{X: spawn.X, Y: spawn.Y + h/2}
	body := world.CreateBody(shape, cfg.Player.Mass, center, physics.RoleController)
	components.Body.SetValue(player, components.BodyData{ID: body, Color: cfg.LightBlue})

	components.Player.SetValue(player, components.PlayerData{
		Spawn:  math.Vec2{X: center.X, Y: center.Y},
		Facing: 1,
	})

	rig := chain.New(world, body, center, ChainParams())
	components.Chain.SetValue(player, components.ChainData{Rig: rig})
	for _, id := range rig.Links() {
		link := archetypes.ChainLink.Spawn(ecs)
		components.Body.SetValue(link, components.BodyData{ID: id, Color: cfg.Yellow})
	}

	obj := resolv.NewObject(0, 0, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	if triggers, ok := components.Triggers.First(ecs.World); ok {
		components.Triggers.Get(triggers).Add(obj)
	}

	return player
}

// ChainParams converts the chain configuration into rig parameters.
func ChainParams() chain.Params {
	return chain.Params{
		Links:      cfg.Chain.Links,
		LinkLength: cfg.Chain.LinkLength,
		LinkRadius: cfg.Chain.LinkRadius,
		LinkMass:   cfg.Chain.LinkMass,
		StackStart: cfg.Chain.StackStart,
		StackGap:   cfg.Chain.StackGap,
		Group:      cfg.Chain.Group,
	}
}
