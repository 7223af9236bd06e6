package components

import (
	"github.com/automoto/shapeshift/morph"
	"github.com/automoto/shapeshift/shape"
	"github.com/yohamta/donburi"
)

// ShapeData is the cell set a body currently has, and the render scale the
// transformer animation leaves it at.
type ShapeData struct {
	Shape *shape.Shape
	Scale float64
}

var Shape = donburi.NewComponentType[ShapeData]()

// MorphData is the per-body transformer animation state.
type MorphData struct {
	State morph.State
	// Landed is set by a contact with a vertical component and consumed by
	// the next morph tick.
	Landed bool
	// Near is the last proximity scan, parallel to the level's zones.
	Near []morph.Proximity
	// Commits counts transformations applied since spawn.
	Commits int
}

var Morph = donburi.NewComponentType[MorphData]()
