package systems

import (
	"github.com/automoto/chainrig/components"
	cfg "github.com/automoto/chainrig/config"
	"github.com/automoto/chainrig/gamemath"
	"github.com/automoto/chainrig/physics"
	"github.com/automoto/chainrig/tags"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePlayer(ecs *ecs.ECS) {
	inputEntry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	input := components.Input.Get(inputEntry)

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	world := components.Space.Get(spaceEntry).World

	mouseImpulse := cfg.Player.MouseImpulse
	if settingsEntry, ok := components.Settings.First(ecs.World); ok {
		mouseImpulse = components.Settings.Get(settingsEntry).MouseImpulse
	}

	tags.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		player := components.Player.Get(playerEntry)
		body := components.Body.Get(playerEntry).ID
		if !world.Exists(body) {
			return
		}

		player.Grounded = world.Grounded(body)
		handleMovementInput(world, body, input, player)
		handleJumpInput(world, body, input, player)
		if mouseImpulse {
			handleMouseImpulse(world, body, input)
		}
	})
}

// handleMovementInput accelerates the body toward the walk speed in the held
// direction, or toward standing still when neither or both are held.
func handleMovementInput(world *physics.World, body physics.BodyID, input *components.InputData, player *components.PlayerData) {
	dir := gamemath.WalkDirection(
		input.Action(cfg.ActionMoveLeft).Pressed,
		input.Action(cfg.ActionMoveRight).Pressed,
	)
	if dir != 0 {
		player.Facing = dir
	}

	accel := cfg.Player.Acceleration
	if !player.Grounded {
		accel = cfg.Player.AirAccel
	}

	v, _ := world.Velocity(body)
	v.X = gamemath.Approach(v.X, dir*cfg.Player.WalkSpeed, accel*cfg.FixedStep())
	world.SetVelocity(body, v)
}

func handleJumpInput(world *physics.World, body physics.BodyID, input *components.InputData, player *components.PlayerData) {
	if !input.Action(cfg.ActionJump).JustPressed || !player.Grounded {
		return
	}
	world.ApplyImpulse(body, cp.Vector{Y: cfg.Player.JumpImpulse})
}

// handleMouseImpulse pushes the body along the mouse movement. Screen y is
// flipped to world y.
func handleMouseImpulse(world *physics.World, body physics.BodyID, input *components.InputData) {
	if input.MouseDX == 0 && input.MouseDY == 0 {
		return
	}
	impulse := cp.Vector{X: input.MouseDX, Y: -input.MouseDY}.Mult(cfg.Player.MouseImpulseFactor)
	world.ApplyImpulse(body, impulse)
}
