package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Direction float64 // -1 left, 1 right
	Jumping   bool
}

var Player = donburi.NewComponentType[PlayerData]()
