package systems

import (
	cfg "github.com/automoto/shapeshift/config"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateMenu creates the level select keyboard system. Enter continues
// at the furthest unlocked level and Escape quits.
func NewUpdateMenu(sceneChanger SceneChanger, levels int, createLevel func(index int) interface{}, quit func()) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			sceneChanger.ChangeScene(createLevel(ContinueLevel(levels)))
			return
		}
		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			quit()
		}
	}
}

// ContinueLevel is the level Enter starts: the furthest unlocked one.
func ContinueLevel(levels int) int {
	idx := Progress().Unlocked()
	if idx >= levels {
		idx = levels - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}
