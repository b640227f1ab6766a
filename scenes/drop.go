package scenes

import (
	"sync"

	"github.com/automoto/chainrig/components"
	cfg "github.com/automoto/chainrig/config"
	"github.com/automoto/chainrig/physics"
	"github.com/automoto/chainrig/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// DropScene drops a ball onto a large static ball. There is no player, so
// the camera stays put and restarting rebuilds the scene.
type DropScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

func NewDropScene(sc SceneChanger) *DropScene {
	return &DropScene{sceneChanger: sc}
}

func (ds *DropScene) Update() {
	ds.once.Do(ds.configure)
	ds.ecs.Update()

	if inputEntry, ok := components.Input.First(ds.ecs.World); ok {
		if components.Input.Get(inputEntry).Action(cfg.ActionRestart).JustPressed {
			ds.sceneChanger.ChangeScene(NewDropScene(ds.sceneChanger))
		}
	}
}

func (ds *DropScene) Draw(screen *ebiten.Image) {
	if ds.ecs == nil {
		return
	}
	ds.ecs.Draw(screen)
}

func (ds *DropScene) Teardown() {
	teardown(ds.ecs)
}

func (ds *DropScene) configure() {
	ds.ecs = newSimulation()

	factory.CreateSpace(ds.ecs)
	factory.CreateDespawner(ds.ecs)
	factory.CreateTelemetry(ds.ecs)

	d := cfg.Drop
	ball := physics.Circle(d.BallRadius)
	ball.Elasticity = 0.5
	factory.CreateProp(ds.ecs, ball, 1, cp.Vector{X: d.BallX}, cfg.LightBlue)

	ground := physics.Circle(d.GroundRadius)
	ground.Elasticity = 0.5
	factory.CreateProp(ds.ecs, ground, 0, cp.Vector{Y: d.GroundY}, cfg.Grey)

	// Frame the gap between the ball and the top of the ground.
	factory.CreateCamera(ds.ecs, math.Vec2{Y: (d.GroundY + d.GroundRadius) / 2})

	markScene(ds.ecs, cfg.SceneDrop)
}
