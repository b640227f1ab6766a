package components

import (
	"image/color"

	"github.com/automoto/chainrig/physics"
	"github.com/yohamta/donburi"
)

// SpaceData holds the physics world the scene simulates.
type SpaceData struct {
	*physics.World
}

var Space = donburi.NewComponentType[SpaceData]()

// BodyData links an entity to its physics body and how to draw it.
type BodyData struct {
	ID    physics.BodyID
	Color color.RGBA
}

var Body = donburi.NewComponentType[BodyData]()
