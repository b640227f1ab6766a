package scenes

import (
	"sync"

	"github.com/automoto/chainrig/assets"
	"github.com/automoto/chainrig/components"
	cfg "github.com/automoto/chainrig/config"
	"github.com/automoto/chainrig/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// GridScene is the chain scene on a generated tile grid, for trying the rig
// without a map file.
type GridScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

func NewGridScene(sc SceneChanger) *GridScene {
	return &GridScene{sceneChanger: sc}
}

func (gs *GridScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GridScene) Draw(screen *ebiten.Image) {
	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GridScene) Teardown() {
	teardown(gs.ecs)
}

func (gs *GridScene) configure() {
	gs.ecs = newSimulation()

	factory.CreateSpace(gs.ecs)
	factory.CreateDespawner(gs.ecs)
	factory.CreateTelemetry(gs.ecs)

	level := assets.GridLevel(cfg.Grid.Columns, cfg.Grid.Rows, cfg.Grid.TileSize)
	entry := factory.CreateLevelFromData(gs.ecs, level)

	spawn := components.Level.Get(entry).CurrentLevel.Spawn()
	factory.CreatePlayer(gs.ecs, spawn)
	factory.CreateCamera(gs.ecs, spawn)

	markScene(gs.ecs, cfg.SceneGrid)
}
