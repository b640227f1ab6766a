package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/chainrig/assets"
	"github.com/automoto/chainrig/config"
	"github.com/automoto/chainrig/scenes"
	"github.com/automoto/chainrig/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	bounds image.Rectangle
	scene  scenes.Scene
}

// ChangeScene switches to a new scene, tearing down the current one
func (g *Game) ChangeScene(scene scenes.Scene) {
	if g.scene != nil {
		g.scene.Teardown()
	}
	g.scene = scene
}

func NewGame(id config.SceneID) (*Game, error) {
	g := &Game{
		bounds: image.Rectangle{},
	}

	scene, err := scenes.New(id, g)
	if err != nil {
		return nil, err
	}
	g.scene = scene
	return g, nil
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	sceneFlag := flag.String("scene", "", "scene to open: chain, drop or grid (default: last played)")
	configFlag := flag.String("config", "", "optional YAML file overriding the built-in tuning")
	writeConfigFlag := flag.String("write-config", "", "write the effective tuning to this YAML file and exit")
	levelFlag := flag.String("level", "", "embedded map for the chain scene (default: chain_yard.tmx)")
	telemetryFlag := flag.String("telemetry", "", "directory to write a per-second CSV run log to")
	flag.Parse()

	if err := config.LoadTuning(*configFlag); err != nil {
		log.Fatalf("Failed to load tuning: %v", err)
	}
	if *telemetryFlag != "" {
		config.Telemetry.Dir = *telemetryFlag
	}
	if *levelFlag != "" {
		if _, err := assets.NewLevelLoader().Resolve(*levelFlag); err != nil {
			log.Fatalf("Invalid -level: %v", err)
		}
		config.Settings.Level = *levelFlag
	}
	if *writeConfigFlag != "" {
		if err := config.WriteTuning(*writeConfigFlag); err != nil {
			log.Fatalf("Failed to write tuning: %v", err)
		}
		return
	}

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, err := systems.LoadSettings()
	if err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	id := config.SceneID(*sceneFlag)
	if id == "" {
		id = config.Settings.DefaultScene
		if saved != nil && saved.LastScene != "" {
			id = saved.LastScene
		}
	}

	game, err := NewGame(id)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("chainrig")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
