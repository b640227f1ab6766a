package factory

import (
	"github.com/automoto/chainrig/archetypes"
	"github.com/automoto/chainrig/assets"
	"github.com/automoto/chainrig/components"
	"github.com/automoto/chainrig/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateDeadZone creates an invisible trigger that sends the player back to
// spawn when touched. r is in world space and is flipped into the trigger
// space's y-down coordinates.
func CreateDeadZone(ecs *ecs.ECS, level *assets.Level, r assets.Rect) *donburi.Entry {
	zone := archetypes.DeadZone.Spawn(ecs)

	obj := resolv.NewObject(r.X, level.FlipY(r.Y+r.Height), r.Width, r.Height, tags.ResolvDeadZone)
	obj.SetShape(resolv.NewRectangle(0, 0, r.Width, r.Height))
	obj.Data = zone

	components.Object.SetValue(zone, components.ObjectData{Object: obj})

	if triggers, ok := components.Triggers.First(ecs.World); ok {
		components.Triggers.Get(triggers).Add(obj)
	}
	return zone
}
