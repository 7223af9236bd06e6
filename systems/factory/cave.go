package factory

import (
	"github.com/automoto/shapeshift/archetypes"
	"github.com/automoto/shapeshift/components"
	cfg "github.com/automoto/shapeshift/config"
	"github.com/automoto/shapeshift/leveldata"
	"github.com/automoto/shapeshift/morph"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCave(ecs *ecs.ECS, c leveldata.Cave) *donburi.Entry {
	cave := archetypes.Cave.Spawn(ecs)
	components.Cave.SetValue(cave, components.CaveData{
		Target:   c.Target,
		Position: c.Position,
		Origin:   morph.CaveOrigin(c.Target, c.Position, cfg.Shape.CellSize),
	})
	return cave
}
