package systems

import (
	"github.com/automoto/shapeshift/components"
	cfg "github.com/automoto/shapeshift/config"
	"github.com/automoto/shapeshift/events"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RegisterEventHandlers subscribes the gameplay reactions to contact,
// commit and match events for this world.
func RegisterEventHandlers(e *ecs.ECS) {
	events.ContactEvent.Subscribe(e.World, func(w donburi.World, ev events.Contact) {
		onContact(e, ev)
	})
	events.CommittedEvent.Subscribe(e.World, func(w donburi.World, ev events.Committed) {
		onCommitted(e, ev)
	})
	events.MatchedEvent.Subscribe(e.World, func(w donburi.World, ev events.Matched) {
		onMatched(e, ev)
	})
}

func onContact(e *ecs.ECS, ev events.Contact) {
	if !ev.Entry.Valid() {
		return
	}

	if ev.Entry.HasComponent(components.Player) {
		components.Player.Get(ev.Entry).Jumping = false
	}
	if ev.VerticalForce != 0 && ev.Entry.HasComponent(components.Morph) {
		components.Morph.Get(ev.Entry).Landed = true
	}
	if ev.Airborne && ev.Landed {
		PlaySFX(e, cfg.SoundLand)
		TriggerSquashStretch(ev.Entry, cfg.SquashStretch.LandScaleX, cfg.SquashStretch.LandScaleY)
	}
}

func onCommitted(e *ecs.ECS, ev events.Committed) {
	TriggerScreenShake(e, cfg.ScreenShake.CommitIntensity, cfg.ScreenShake.CommitDuration)
	log.Debug("shape committed", "kind", ev.Kind, "cells", ev.Shape.Len(), "shape", ev.Shape)
}

func onMatched(e *ecs.ECS, ev events.Matched) {
	PlaySFX(e, cfg.SoundMatch)
	TriggerScreenShake(e, cfg.ScreenShake.MatchIntensity, cfg.ScreenShake.MatchDuration)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	log.Info("level complete", "level", level.CurrentLevel.Name, "index", level.LevelIndex)

	recordCompletion(level.LevelIndex, level.CurrentLevel.Name)
	StartTransition(e, level.LevelIndex+1)
}
