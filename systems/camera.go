package systems

import (
	"github.com/automoto/chainrig/components"
	"github.com/automoto/chainrig/config"
	"github.com/automoto/chainrig/gamemath"
	"github.com/automoto/chainrig/tags"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return // no player, skip camera update
	}
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	pos, ok := components.Space.Get(spaceEntry).Position(components.Body.Get(playerEntry).ID)
	if !ok {
		return
	}

	targetX, targetY := pos.X, pos.Y

	// Keep the level filling the screen when there is one.
	if levelEntry, ok := components.Level.First(e.World); ok {
		if level := components.Level.Get(levelEntry).CurrentLevel; level != nil {
			targetX = gamemath.ClampCameraAxis(targetX, float64(config.C.Width), float64(level.Width))
			targetY = gamemath.ClampCameraAxis(targetY, float64(config.C.Height), float64(level.Height))
		}
	}

	// Center the camera on the constrained target position, with some smoothing.
	camera.Position.X = gamemath.Lerp(camera.Position.X, targetX, config.Camera.FollowSmoothing)
	camera.Position.Y = gamemath.Lerp(camera.Position.Y, targetY, config.Camera.FollowSmoothing)
}
