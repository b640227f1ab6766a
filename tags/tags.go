package tags

import "github.com/yohamta/donburi"

var (
	Player    = donburi.NewTag().SetName("Player")
	ChainLink = donburi.NewTag().SetName("ChainLink")
	Debris    = donburi.NewTag().SetName("Debris")
	Wall      = donburi.NewTag().SetName("Wall")
	Prop      = donburi.NewTag().SetName("Prop")
	DeadZone  = donburi.NewTag().SetName("DeadZone")
)

// Resolv tags for trigger checks
const (
	ResolvPlayer   = "Player"
	ResolvDeadZone = "deadzone"
)
