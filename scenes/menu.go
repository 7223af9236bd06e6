package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/shapeshift/assets"
	cfg "github.com/automoto/shapeshift/config"
	"github.com/automoto/shapeshift/systems"
	"github.com/automoto/shapeshift/ui"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
	Quit()
}

// MenuScene displays the level select screen using ebitenui
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levelUI      *ui.LevelSelectUI
	once         sync.Once
	selected     int
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc, selected: -1}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)

	ms.ecs.Update()
	ms.levelUI.Update()

	if ms.selected >= 0 {
		idx := ms.selected
		ms.selected = -1
		systems.PlaySFX(ms.ecs, cfg.SoundMenuSelect)
		ms.sceneChanger.ChangeScene(NewPlatformerScene(ms.sceneChanger, idx))
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.levelUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	levels := assets.MustLoadLevels()
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	createLevel := func(index int) interface{} {
		return NewPlatformerScene(ms.sceneChanger, index)
	}

	// Audio system (runs first to initialize audio context)
	ms.ecs.AddSystem(systems.UpdateAudio)
	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.UpdateSettings)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.sceneChanger, len(levels), createLevel, ms.sceneChanger.Quit))

	save := systems.Progress()
	ms.levelUI = ui.NewLevelSelectUI(
		levels,
		save,
		func(index int) { ms.selected = index },
		ms.sceneChanger.Quit,
	)
	log.Debug("menu ready", "levels", len(levels), "unlocked", save.Unlocked())
}
