package systems

import (
	"github.com/automoto/chainrig/chain"
	"github.com/automoto/chainrig/components"
	cfg "github.com/automoto/chainrig/config"
	"github.com/automoto/chainrig/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateChain steers every rig once from the move input and writes the base
// anchor into the physics joint. Must run before UpdatePhysics.
func UpdateChain(ecs *ecs.ECS) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	world := components.Space.Get(spaceEntry).World

	dir := chain.None
	if inputEntry, ok := components.Input.First(ecs.World); ok {
		dir = steerDirection(components.Input.Get(inputEntry))
	}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		rig := components.Chain.Get(e).Rig
		if rig == nil {
			return
		}
		rig.Steer(dir)
		rig.Apply(world)
	})
}

func steerDirection(input *components.InputData) chain.Direction {
	left := input.Action(cfg.ActionMoveLeft).Pressed
	right := input.Action(cfg.ActionMoveRight).Pressed
	switch {
	case left && !right:
		return chain.Left
	case right && !left:
		return chain.Right
	}
	return chain.None
}
