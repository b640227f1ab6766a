package scenes

import (
	"fmt"

	"github.com/automoto/chainrig/components"
	cfg "github.com/automoto/chainrig/config"
	"github.com/automoto/chainrig/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Scene is a self contained prototype the game can switch to.
type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	// Teardown releases the scene's pending removals. The scene is not
	// updated again afterwards.
	Teardown()
}

type SceneChanger interface {
	ChangeScene(scene Scene)
}

// New builds the scene registered under id.
func New(id cfg.SceneID, sc SceneChanger) (Scene, error) {
	switch id {
	case cfg.SceneChain:
		return NewChainScene(sc), nil
	case cfg.SceneDrop:
		return NewDropScene(sc), nil
	case cfg.SceneGrid:
		return NewGridScene(sc), nil
	}
	return nil, fmt.Errorf("unknown scene %q", id)
}

// newSimulation creates a world with the fixed tick pipeline and renderers
// every scene shares. The order of the systems is the tick order.
func newSimulation() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePause)
	e.AddSystem(systems.UpdateSettings)

	// Simulation systems wrapped with the pause check
	e.AddSystem(systems.WithPauseCheck(systems.UpdatePlayer))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateChain)) // Must run before UpdatePhysics
	e.AddSystem(systems.WithPauseCheck(systems.UpdatePhysics))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateBreakaway))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateDeadZones))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateDebris))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateDespawn))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateTelemetry))

	e.AddRenderer(cfg.Default, systems.DrawLevel)
	e.AddRenderer(cfg.Default, systems.DrawBodies)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.DrawPause)
	return e
}

// markScene records id as the scene in play so it is reopened next launch.
func markScene(e *ecs.ECS, id cfg.SceneID) {
	settings := systems.GetOrCreateSettings(e)
	settings.Scene = id
	systems.SaveCurrentSettings(settings)
}

// teardown drops every pending removal of the scene's despawner and closes
// its run log.
func teardown(e *ecs.ECS) {
	if e == nil {
		return
	}
	if despawner, ok := components.Despawn.First(e.World); ok {
		components.Despawn.Get(despawner).Queue.Clear()
	}
	systems.CloseTelemetry(e)
}
