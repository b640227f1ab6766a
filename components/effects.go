package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// DebrisData tracks a snapped-off piece while it fades out.
type DebrisData struct {
	Fade  *gween.Tween
	Alpha float32 // current opacity, 1 = solid
}

var Debris = donburi.NewComponentType[DebrisData]()

// StatsData counts events for the debug overlay.
type StatsData struct {
	Breakaways    int
	DebrisRemoved int
	Respawns      int
}

var Stats = donburi.NewComponentType[StatsData]()
