package systems

import (
	"github.com/automoto/shapeshift/components"
	cfg "github.com/automoto/shapeshift/config"
	"github.com/automoto/shapeshift/events"
	"github.com/automoto/shapeshift/morph"
	"github.com/automoto/shapeshift/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCaves completes the level once the body sits in a cave with the
// cave's exact silhouette.
func UpdateCaves(ecs *ecs.ECS) {
	levelComplete := GetOrCreateLevelComplete(ecs)
	if levelComplete.IsComplete {
		return
	}

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	sh := components.Shape.Get(playerEntry)
	body := components.Body.Get(playerEntry)

	var matched *donburi.Entry
	tags.Cave.Each(ecs.World, func(e *donburi.Entry) {
		if matched != nil {
			return
		}
		cave := components.Cave.Get(e)
		if morph.Matches(sh.Shape, cave.Target, body.Origin, cave.Origin, cfg.Morph.MatchTolerance) {
			cave.Matched = true
			matched = e
		}
	})
	if matched == nil {
		return
	}

	levelComplete.IsComplete = true
	events.MatchedEvent.Publish(ecs.World, events.Matched{
		Entry: playerEntry,
		Cave:  matched,
	})
	events.Process(ecs.World)
}
