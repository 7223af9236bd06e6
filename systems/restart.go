package systems

import (
	"github.com/automoto/shapeshift/components"
	cfg "github.com/automoto/shapeshift/config"
	"github.com/automoto/shapeshift/systems/factory"
	"github.com/automoto/shapeshift/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRestart puts a fresh single-cell body back at the level spawn.
func UpdateRestart(e *ecs.ECS) {
	if !GetAction(getOrCreateInput(e), cfg.ActionRestart).JustPressed {
		return
	}

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).CurrentLevel

	if playerEntry, ok := tags.Player.First(e.World); ok {
		factory.DestroyPlayer(playerEntry)
	}
	factory.CreatePlayer(e, level.Spawn)

	if cameraEntry, ok := components.Camera.First(e.World); ok {
		components.Camera.Get(cameraEntry).Snap = true
	}

	PlaySFX(e, cfg.SoundRestart)
	log.Debug("level restarted", "level", level.Name)
}

// NewUpdateBack creates the system that returns to the menu on Escape.
func NewUpdateBack(sceneChanger SceneChanger, createMenu func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		if IsTransitioning(e) {
			return
		}
		if GetAction(getOrCreateInput(e), cfg.ActionMenuBack).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			sceneChanger.ChangeScene(createMenu())
		}
	}
}
