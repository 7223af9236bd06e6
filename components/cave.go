package components

import (
	"github.com/automoto/shapeshift/shape"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CaveData struct {
	Target *shape.Shape
	// Position is the silhouette center from the level file.
	Position math.Vec2
	// Origin is where cell (0,0) of Target sits.
	Origin  math.Vec2
	Matched bool
}

var Cave = donburi.NewComponentType[CaveData]()
