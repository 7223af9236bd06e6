package systems

import (
	"github.com/automoto/shapeshift/components"
	cfg "github.com/automoto/shapeshift/config"
	"github.com/automoto/shapeshift/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateLevelComplete creates the system that leaves the final overlay
// for the menu.
func NewUpdateLevelComplete(sceneChanger SceneChanger, createMenu func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		levelComplete := GetOrCreateLevelComplete(e)
		if !levelComplete.Finished || IsTransitioning(e) {
			return
		}

		input := getOrCreateInput(e)
		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			sceneChanger.ChangeScene(createMenu())
		}
	}
}

// DrawLevelComplete renders the overlay shown after the last level
func DrawLevelComplete(e *ecs.ECS, screen *ebiten.Image) {
	levelComplete := GetOrCreateLevelComplete(e)
	if !levelComplete.Finished {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.LevelComplete.OverlayColor,
		false,
	)

	titleFont := fonts.Title.Get()
	title := cfg.LevelComplete.Title
	text.Draw(screen, title, titleFont, centerTextX(title, titleFont, width), int(cfg.LevelComplete.TitleY), cfg.LevelComplete.TitleColor)

	msgFont := fonts.Bold.Get()
	msg := cfg.LevelComplete.Message
	text.Draw(screen, msg, msgFont, centerTextX(msg, msgFont, width), int(cfg.LevelComplete.MessageY), cfg.LevelComplete.TextColor)

	hintFont := fonts.Small.Get()
	hint := getLevelCompleteHint(getOrCreateInput(e).LastInputMethod)
	text.Draw(screen, hint, hintFont, centerTextX(hint, hintFont, width), int(cfg.LevelComplete.HintY), cfg.LevelComplete.TextColor)
}

// centerTextX calculates the X position to center text on screen
func centerTextX(s string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, s)
	return int((screenWidth - float64(bounds.Dx())) / 2)
}

// getLevelCompleteHint returns the appropriate hint for level complete screen
func getLevelCompleteHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Press Cross to return to the menu"
	case components.InputXbox:
		return "Press A to return to the menu"
	}
	return cfg.LevelComplete.ContinueHint
}

// GetOrCreateLevelComplete returns the singleton LevelComplete component, creating if needed
func GetOrCreateLevelComplete(e *ecs.ECS) *components.LevelCompleteData {
	entry, ok := components.LevelComplete.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.LevelComplete))
	}
	return components.LevelComplete.Get(entry)
}

// IsLevelComplete checks if the level is complete
func IsLevelComplete(e *ecs.ECS) bool {
	return GetOrCreateLevelComplete(e).IsComplete
}

// WithLevelCompleteCheck wraps a system to skip execution when level is complete
func WithLevelCompleteCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsLevelComplete(e) {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution while a fade runs or
// once the level is complete
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithLevelCompleteCheck(func(e *ecs.ECS) {
		if IsTransitioning(e) {
			return
		}
		system(e)
	})
}
