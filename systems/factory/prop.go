package factory

import (
	"image/color"

	"github.com/automoto/chainrig/archetypes"
	"github.com/automoto/chainrig/components"
	"github.com/automoto/chainrig/physics"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateProp spawns a free body that is neither part of the player nor the
// level. A zero mass makes it static.
func CreateProp(ecs *ecs.ECS, shape physics.Shape, mass float64, pos cp.Vector, clr color.RGBA) *donburi.Entry {
	prop := archetypes.Prop.Spawn(ecs)

	var id physics.BodyID
	if world, ok := PhysicsWorld(ecs); ok {
		role := physics.RoleProp
		if mass <= 0 {
			role = physics.RoleStatic
		}
		id = world.CreateBody(shape, mass, pos, role)
	}
	components.Body.SetValue(prop, components.BodyData{ID: id, Color: clr})
	return prop
}
