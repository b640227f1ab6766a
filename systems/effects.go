package systems

import (
	"github.com/automoto/chainrig/components"
	cfg "github.com/automoto/chainrig/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebris fades debris out over its lifetime. Removal is left to the
// despawn queue so a finished fade never removes anything by itself.
func UpdateDebris(ecs *ecs.ECS) {
	dt := float32(cfg.FixedStep())
	components.Debris.Each(ecs.World, func(e *donburi.Entry) {
		debris := components.Debris.Get(e)
		if debris.Fade == nil {
			return
		}
		alpha, _ := debris.Fade.Update(dt)
		debris.Alpha = alpha
	})
}
