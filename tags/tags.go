package tags

import (
	"github.com/automoto/shapeshift/physics"
	"github.com/yohamta/donburi"
)

var (
	Player        = donburi.NewTag().SetName("Player")
	Block         = donburi.NewTag().SetName("Block")
	FloatingBlock = donburi.NewTag().SetName("FloatingBlock")
	Transformer   = donburi.NewTag().SetName("Transformer")
	Cave          = donburi.NewTag().SetName("Cave")
)

// Resolv tags for physics collision
const (
	ResolvSolid  = physics.TagSolid
	ResolvPlayer = "Player"
)
