package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PlayerData struct {
	Spawn    math.Vec2 // Where the rig is put back after a dead zone
	Facing   float64   // -1 or 1
	Grounded bool
}

var Player = donburi.NewComponentType[PlayerData]()
