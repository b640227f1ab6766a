package components

import (
	"github.com/automoto/chainrig/despawn"
	"github.com/yohamta/donburi"
)

// DespawnData holds the scene's timed removal queue.
type DespawnData struct {
	Queue *despawn.Queue[donburi.Entity]
}

var Despawn = donburi.NewComponentType[DespawnData]()
