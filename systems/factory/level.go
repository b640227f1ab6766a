package factory

import (
	"fmt"

	"github.com/automoto/chainrig/archetypes"
	"github.com/automoto/chainrig/assets"
	"github.com/automoto/chainrig/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel loads an embedded Tiled map by file name.
func CreateLevel(ecs *ecs.ECS, name string) (*donburi.Entry, error) {
	loader := assets.NewLevelLoader()
	levelPath, err := loader.Resolve(name)
	if err != nil {
		return nil, fmt.Errorf("creating level: %w", err)
	}
	level, err := loader.LoadLevel(levelPath)
	if err != nil {
		return nil, fmt.Errorf("creating level: %w", err)
	}
	return CreateLevelFromData(ecs, level), nil
}

// CreateLevelFromData spawns the level entity along with a wall for each
// solid run and a trigger for each dead zone. The physics space must
// already exist; a trigger space the size of the level is created if the
// scene has none.
func CreateLevelFromData(ecs *ecs.ECS, level assets.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.Set(entry, &components.LevelData{CurrentLevel: &level})

	if _, ok := components.Triggers.First(ecs.World); !ok {
		cell := int(level.TileSize)
		if cell <= 0 {
			cell = 16
		}
		CreateTriggers(ecs, level.Width, level.Height, cell, cell)
	}

	for _, r := range level.Solids {
		CreateWall(ecs, r)
	}
	for _, r := range level.DeadZones {
		CreateDeadZone(ecs, &level, r)
	}
	return entry
}
