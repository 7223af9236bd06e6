package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2 // world point at the center of the screen
	// Snap skips smoothing for one frame, used after a spawn.
	Snap bool
}

var Camera = donburi.NewComponentType[CameraData]()
