// Package leveldata parses TMX levels into blocks, transformer zones and
// caves. It has no dependencies on ebitengine, donburi entities, or resolv.
package leveldata

import (
	"github.com/automoto/shapeshift/morph"
	"github.com/automoto/shapeshift/shape"
	"github.com/yohamta/donburi/features/math"
)

// Object group names read from a TMX map.
const (
	GroupSpawn        = "PlayerSpawn"
	GroupBlocks       = "Blocks"
	GroupTransformers = "Transformers"
	GroupCaves        = "Caves"
)

// Level is everything needed to build one playable level.
type Level struct {
	Name   string
	Path   string
	Width  int
	Height int

	Spawn        math.Vec2
	Blocks       []Block
	Transformers []Transformer
	Caves        []Cave
}

// Block is a static solid rectangle. Blocks with a non-zero Travel float up
// and down by that many pixels.
type Block struct {
	X, Y, W, H float64
	Travel     float64
}

// Transformer is a circular zone that reshapes a body pulled into it.
type Transformer struct {
	Position math.Vec2
	Radius   float64
	Kind     shape.Kind
	Spit     math.Vec2
}

// Cave is the silhouette a body must fill to finish the level.
type Cave struct {
	Position math.Vec2
	Target   *shape.Shape
}

// Zones returns the level's transformers in map order.
func (l *Level) Zones() []morph.Zone {
	zones := make([]morph.Zone, len(l.Transformers))
	for i, t := range l.Transformers {
		zones[i] = t.Zone()
	}
	return zones
}

// Zone converts a transformer to the value the animator works with.
func (t Transformer) Zone() morph.Zone {
	return morph.Zone{
		Position: t.Position,
		Radius:   t.Radius,
		Kind:     t.Kind,
		Spit:     t.Spit,
	}
}
