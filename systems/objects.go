package systems

import (
	"github.com/automoto/shapeshift/components"
	cfg "github.com/automoto/shapeshift/config"
	"github.com/automoto/shapeshift/physics"
	"github.com/automoto/shapeshift/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// riderTolerance is how far above a floating block a body may be and still
// be carried by it.
const riderTolerance = 1.0

// UpdateObjects advances floating blocks along their tweens, carrying any
// body standing on them, and the transformer pulses.
func UpdateObjects(ecs *ecs.ECS) {
	dt := tickSeconds()

	tags.FloatingBlock.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		y, _, _ := components.Tween.Get(e).Update(dt)

		dy := float64(y) - obj.Y
		if dy == 0 {
			return
		}

		var riders []*physics.Body
		components.Body.Each(ecs.World, func(be *donburi.Entry) {
			if b := components.Body.Get(be); b.RestsOn(obj.Object, riderTolerance) {
				riders = append(riders, b.Body)
			}
		})

		obj.Y = float64(y)
		obj.Update()

		for _, b := range riders {
			b.Move(0, dy)
		}
	})

	components.Transformer.Each(ecs.World, func(e *donburi.Entry) {
		t := components.Transformer.Get(e)
		t.PulseStroke, _, _ = t.Pulse.Update(dt)
	})
}

// tickSeconds is the length of one update at the configured rate.
func tickSeconds() float32 {
	return 1 / float32(cfg.C.TPS)
}
