package factory

import (
	"github.com/automoto/shapeshift/archetypes"
	"github.com/automoto/shapeshift/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreateCamera(ecs *ecs.ECS, at math.Vec2) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{
		Position: at,
		Snap:     true,
	})
	return camera
}
