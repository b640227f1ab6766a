package systems

import (
	"github.com/automoto/chainrig/components"
	cfg "github.com/automoto/chainrig/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Sky)

	v, ok := newView(ecs, screen)
	if !ok {
		return
	}

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).CurrentLevel
	if level == nil {
		return
	}

	// Decor tiles get a one pixel gap so the grid reads as tiles.
	for _, r := range level.Decor {
		if !v.visible(r.X, r.Y, r.Width, r.Height) {
			continue
		}
		v.fillRect(screen, r.X+0.5, r.Y+0.5, r.Width-1, r.Height-1, cfg.DarkBlue)
	}
	for _, r := range level.Solids {
		if !v.visible(r.X, r.Y, r.Width, r.Height) {
			continue
		}
		v.fillRect(screen, r.X, r.Y, r.Width, r.Height, cfg.Grey)
	}
}
