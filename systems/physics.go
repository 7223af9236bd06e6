package systems

import (
	"math"

	"github.com/automoto/shapeshift/components"
	cfg "github.com/automoto/shapeshift/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates gravity. Bodies a transformer is steering keep
// the velocity the morph system gave them.
func UpdatePhysics(ecs *ecs.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		if physics.Steered {
			return
		}

		physics.SpeedY += physics.Gravity
		physics.SpeedY = math.Max(cfg.Physics.MaxRiseSpeed, math.Min(cfg.Physics.MaxFallSpeed, physics.SpeedY))
	})
}
