package systems

import (
	"github.com/automoto/chainrig/components"
	"github.com/automoto/chainrig/tags"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeadZones moves each player's trigger probe onto its body and sends
// the player and its rig back to spawn when the probe touches a dead zone.
func UpdateDeadZones(ecs *ecs.ECS) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	world := components.Space.Get(spaceEntry).World

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).CurrentLevel
	if level == nil {
		return
	}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e).Object
		if obj == nil {
			return
		}
		pos, ok := world.Position(components.Body.Get(e).ID)
		if !ok {
			return
		}

		obj.X = pos.X - obj.W/2
		obj.Y = level.FlipY(pos.Y + obj.H/2)
		obj.Update()

		// Falling out of the bottom of the level counts as a dead zone too.
		if obj.Check(0, 0, tags.ResolvDeadZone) != nil || pos.Y < -float64(level.Height) {
			RespawnPlayer(ecs, e)
		}
	})
}

// RespawnPlayer puts the player and its rig back at the spawn point with the
// steering reset.
func RespawnPlayer(ecs *ecs.ECS, e *donburi.Entry) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	world := components.Space.Get(spaceEntry).World
	player := components.Player.Get(e)

	rig := components.Chain.Get(e).Rig
	spawn := cp.Vector{X: player.Spawn.X, Y: player.Spawn.Y}
	if rig != nil {
		rig.Base.Offset = 0
		rig.Teleport(world, spawn)
		rig.Apply(world)
	} else {
		world.Teleport(components.Body.Get(e).ID, spawn)
	}

	if stats, ok := components.Stats.First(ecs.World); ok {
		components.Stats.Get(stats).Respawns++
	}
}
