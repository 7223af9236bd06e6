package factory

import (
	"github.com/automoto/shapeshift/archetypes"
	"github.com/automoto/shapeshift/components"
	cfg "github.com/automoto/shapeshift/config"
	"github.com/automoto/shapeshift/leveldata"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTransformer spawns a zone. index is its position in level order,
// which the animator uses to refer back to it.
func CreateTransformer(ecs *ecs.ECS, index int, t leveldata.Transformer) *donburi.Entry {
	transformer := archetypes.Transformer.Spawn(ecs)

	w := cfg.Transformer.PulseWidth
	d := cfg.Transformer.PulseDuration
	pulse := gween.NewSequence(
		gween.New(0, w, d, ease.OutQuad),
		gween.New(w, 0, d, ease.InQuad),
	)
	pulse.SetLoop(-1)

	components.Transformer.SetValue(transformer, components.TransformerData{
		Zone:  t.Zone(),
		Index: index,
		Pulse: pulse,
	})

	return transformer
}
