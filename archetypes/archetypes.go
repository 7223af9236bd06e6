package archetypes

import (
	"github.com/automoto/shapeshift/components"
	cfg "github.com/automoto/shapeshift/config"
	"github.com/automoto/shapeshift/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Block = newArchetype(
		tags.Block,
		components.Object,
	)
	FloatingBlock = newArchetype(
		tags.Block,
		tags.FloatingBlock,
		components.Object,
		components.Tween,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Shape,
		components.Morph,
		components.Body,
		components.Physics,
	)
	Transformer = newArchetype(
		tags.Transformer,
		components.Transformer,
	)
	Cave = newArchetype(
		tags.Cave,
		components.Cave,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
