package factory

import (
	"github.com/automoto/shapeshift/archetypes"
	"github.com/automoto/shapeshift/components"
	cfg "github.com/automoto/shapeshift/config"
	"github.com/automoto/shapeshift/leveldata"
	"github.com/automoto/shapeshift/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBlock spawns a solid block. Blocks with a travel distance float.
func CreateBlock(ecs *ecs.ECS, b leveldata.Block) *donburi.Entry {
	if b.Travel != 0 {
		return CreateFloatingBlock(ecs, b)
	}

	block := archetypes.Block.Spawn(ecs)
	addSolid(ecs, block, b)
	return block
}

// CreateFloatingBlock spawns a block that moves up by b.Travel and back,
// forever.
func CreateFloatingBlock(ecs *ecs.ECS, b leveldata.Block) *donburi.Entry {
	block := archetypes.FloatingBlock.Spawn(ecs)
	addSolid(ecs, block, b)

	top := float32(b.Y - b.Travel)
	d := cfg.Block.TravelDuration
	tw := gween.NewSequence(
		gween.New(float32(b.Y), top, d, ease.InOutSine),
		gween.New(top, float32(b.Y), d, ease.InOutSine),
	)
	tw.SetLoop(-1)
	components.Tween.Set(block, tw)

	return block
}

func addSolid(ecs *ecs.ECS, block *donburi.Entry, b leveldata.Block) {
	obj := resolv.NewObject(b.X, b.Y, b.W, b.H, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, b.W, b.H))
	obj.Data = block // Link for O(1) lookup

	components.Object.SetValue(block, components.ObjectData{Object: obj})

	if space := getSpace(ecs); space != nil {
		space.Add(obj)
	}
}
