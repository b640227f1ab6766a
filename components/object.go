package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is a trigger shape in the resolv space. Trigger objects use
// resolv's y-down coordinates with the level flipped.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// TriggerData is the resolv space dead zones live in.
type TriggerData struct {
	*resolv.Space
}

var Triggers = donburi.NewComponentType[TriggerData]()
