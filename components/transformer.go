package components

import (
	"github.com/automoto/shapeshift/morph"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type TransformerData struct {
	Zone morph.Zone
	// Index is the zone's position in level order.
	Index int
	// Pulse drives the extra stroke width drawn around the zone.
	Pulse       *gween.Sequence
	PulseStroke float32
}

var Transformer = donburi.NewComponentType[TransformerData]()
