package scenes

import (
	"sync"

	"github.com/automoto/chainrig/components"
	cfg "github.com/automoto/chainrig/config"
	"github.com/automoto/chainrig/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// ChainScene is the player dragging a chain rig around a tile level.
type ChainScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

func NewChainScene(sc SceneChanger) *ChainScene {
	return &ChainScene{sceneChanger: sc}
}

func (cs *ChainScene) Update() {
	cs.once.Do(cs.configure)
	cs.ecs.Update()
}

func (cs *ChainScene) Draw(screen *ebiten.Image) {
	if cs.ecs == nil {
		return
	}
	cs.ecs.Draw(screen)
}

func (cs *ChainScene) Teardown() {
	teardown(cs.ecs)
}

func (cs *ChainScene) configure() {
	cs.ecs = newSimulation()

	// The physics space must exist before the level so walls have
	// somewhere to go.
	factory.CreateSpace(cs.ecs)
	factory.CreateDespawner(cs.ecs)
	factory.CreateTelemetry(cs.ecs)

	entry, err := factory.CreateLevel(cs.ecs, cfg.Settings.Level)
	if err != nil {
		panic(err)
	}
	levelData := components.Level.Get(entry).CurrentLevel

	spawn := levelData.Spawn()
	factory.CreatePlayer(cs.ecs, spawn)
	factory.CreateCamera(cs.ecs, spawn)

	markScene(cs.ecs, cfg.SceneChain)
}
