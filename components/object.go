package components

import (
	"github.com/automoto/shapeshift/physics"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// Object is a single static collider such as a block.
var Object = donburi.NewComponentType[ObjectData]()

type BodyData struct {
	*physics.Body
}

// Body is the compound collider of a shape body, one part per cell.
var Body = donburi.NewComponentType[BodyData]()

// Space holds the resolv collision space for the level.
var Space = donburi.NewComponentType[resolv.Space]()
