package factory

import (
	"github.com/automoto/chainrig/archetypes"
	"github.com/automoto/chainrig/assets"
	"github.com/automoto/chainrig/components"
	cfg "github.com/automoto/chainrig/config"
	"github.com/automoto/chainrig/physics"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall creates a static box covering r.
func CreateWall(ecs *ecs.ECS, r assets.Rect) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	var id physics.BodyID
	if world, ok := PhysicsWorld(ecs); ok {
		c := r.Center()
		id = world.CreateBody(physics.Box(r.Width, r.Height), 0, cp.Vector{X: c.X, Y: c.Y}, physics.RoleStatic)
	}
	components.Body.SetValue(wall, components.BodyData{ID: id, Color: cfg.Grey})
	return wall
}
