package components

import (
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	SpeedX   float64
	SpeedY   float64
	Gravity  float64
	OnGround bool
	// Steered is set by the morph system when a transformer owns the body's
	// velocity this tick; gravity and input are skipped.
	Steered bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
