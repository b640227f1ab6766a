package components

import (
	"github.com/automoto/chainrig/chain"
	"github.com/yohamta/donburi"
)

// ChainData holds the rig trailing its controller.
type ChainData struct {
	*chain.Rig
}

var Chain = donburi.NewComponentType[ChainData]()
