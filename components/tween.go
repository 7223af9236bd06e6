package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Tween moves a floating block along its Y axis.
var Tween = donburi.NewComponentType[gween.Sequence]()
