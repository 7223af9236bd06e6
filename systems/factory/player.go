package factory

import (
	"github.com/automoto/shapeshift/archetypes"
	"github.com/automoto/shapeshift/components"
	cfg "github.com/automoto/shapeshift/config"
	"github.com/automoto/shapeshift/morph"
	"github.com/automoto/shapeshift/physics"
	"github.com/automoto/shapeshift/shape"
	"github.com/automoto/shapeshift/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns a single-cell body with its cell (0,0) centered on
// spawn.
func CreatePlayer(ecs *ecs.ECS, spawn math.Vec2) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	s := shape.Unit()
	body := physics.NewBody(getSpace(ecs), s, spawn, cfg.Shape.CellSize, player, tags.ResolvPlayer)

	components.Body.SetValue(player, components.BodyData{Body: body})
	components.Shape.SetValue(player, components.ShapeData{
		Shape: s,
		Scale: 1,
	})
	components.Morph.SetValue(player, components.MorphData{
		State: morph.NotAnimating{},
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity: cfg.Physics.Gravity,
	})
	components.Player.SetValue(player, components.PlayerData{
		Direction: 1,
	})

	return player
}

// DestroyPlayer removes the body's colliders and the entity.
func DestroyPlayer(player *donburi.Entry) {
	if player.HasComponent(components.Body) {
		components.Body.Get(player).Remove()
	}
	player.Remove()
}
