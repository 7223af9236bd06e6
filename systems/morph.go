package systems

import (
	"github.com/automoto/shapeshift/components"
	cfg "github.com/automoto/shapeshift/config"
	"github.com/automoto/shapeshift/events"
	"github.com/automoto/shapeshift/morph"
	"github.com/automoto/shapeshift/physics"
	"github.com/automoto/shapeshift/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMorph runs one tick of the transformer animation for every body:
// scan the zones, advance the state machine, then perform its effects.
func UpdateMorph(ecs *ecs.ECS) {
	zones := levelZones(ecs)
	detector := morph.Detector{
		CellSize: cfg.Shape.CellSize,
		Distance: physics.PointDistance,
	}
	tuning := morphTuning()

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		m := components.Morph.Get(e)
		sh := components.Shape.Get(e)
		body := components.Body.Get(e)
		phys := components.Physics.Get(e)

		m.Near = detector.Scan(sh.Shape, body.Origin, zones)
		out := morph.Advance(tuning, m.State, morph.Input{
			Position: body.Origin,
			Shape:    sh.Shape,
			Zones:    zones,
			Near:     m.Near,
			Landed:   m.Landed,
			Scale:    sh.Scale,
		})
		m.Landed = false

		if from, to := stateName(m.State), stateName(out.State); from != to {
			log.Debug("morph state", "from", from, "to", to)
		}
		m.State = out.State
		sh.Scale = out.Scale

		for _, effect := range out.Effects {
			applyMorphEffect(ecs, body.Body, effect)
		}

		phys.Steered = out.Steer
		if out.Steer {
			phys.SpeedX = out.Velocity.X
			phys.SpeedY = out.Velocity.Y
		}

		if out.Committed {
			body.Rebuild(out.Shape)
			sh.Shape = out.Shape
			m.Commits++
			events.CommittedEvent.Publish(ecs.World, events.Committed{
				Entry: e,
				Kind:  out.Kind,
				Shape: out.Shape,
			})
		}
	})

	events.Process(ecs.World)
}

func applyMorphEffect(e *ecs.ECS, body *physics.Body, effect morph.Effect) {
	switch effect {
	case morph.EffectDisableCollision:
		body.Disabled = true
	case morph.EffectEnableCollision:
		body.Disabled = false
	case morph.EffectPlayApproachSound:
		PlaySFX(e, cfg.SoundApproach)
	case morph.EffectPlayCommitSound:
		PlaySFX(e, cfg.SoundCommit)
	}
}

func morphTuning() morph.Tuning {
	return morph.Tuning{
		CommitEpsilon: cfg.Morph.CommitEpsilon,
		PullGain:      cfg.Morph.PullGain,
		ShrinkRate:    cfg.Morph.ShrinkRate,
		GrowRate:      cfg.Morph.GrowRate,
	}
}

// levelZones returns the current level's zones in map order.
func levelZones(e *ecs.ECS) []morph.Zone {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return nil
	}
	level := components.Level.Get(levelEntry)
	if level.CurrentLevel == nil {
		return nil
	}
	return level.CurrentLevel.Zones()
}

func stateName(s morph.State) string {
	if s == nil {
		return morph.NotAnimating{}.Name()
	}
	return s.Name()
}
