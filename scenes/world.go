package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/shapeshift/assets"
	cfg "github.com/automoto/shapeshift/config"
	"github.com/automoto/shapeshift/systems"
	"github.com/automoto/shapeshift/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlatformerScene plays a single level. Finishing it builds a new scene for
// the next one.
type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levelIndex   int
	once         sync.Once
}

// NewPlatformerScene creates the scene for the level at levelIndex
func NewPlatformerScene(sc SceneChanger, levelIndex int) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, levelIndex: levelIndex}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	// Preload assets to avoid lag on first use (important for WASM)
	systems.PreloadAllSFX()

	ecs := ecs.NewECS(donburi.NewWorld())
	systems.RegisterEventHandlers(ecs)

	createMenu := func() interface{} {
		return NewMenuScene(ps.sceneChanger)
	}
	createLevel := func(index int) interface{} {
		return NewPlatformerScene(ps.sceneChanger, index)
	}

	// Audio system (runs first, even during fades)
	ecs.AddSystem(systems.UpdateAudio)

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.NewUpdateBack(ps.sceneChanger, createMenu))

	// Game systems, frozen during fades and on the final overlay
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateRestart))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateMorph))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePhysics))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCollisions))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCaves))

	ecs.AddSystem(systems.NewUpdateTransition(ps.sceneChanger, createLevel))
	ecs.AddSystem(systems.NewUpdateLevelComplete(ps.sceneChanger, createMenu))
	ecs.AddSystem(systems.UpdateEffects)
	ecs.AddSystem(systems.UpdateCamera)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawCaves)
	ecs.AddRenderer(cfg.Default, systems.DrawTransformers)
	ecs.AddRenderer(cfg.Default, systems.DrawBodies)
	ecs.AddRenderer(cfg.Overlay, systems.DrawHUD)
	ecs.AddRenderer(cfg.Overlay, systems.DrawDebug)
	ecs.AddRenderer(cfg.Overlay, systems.DrawTransition)
	ecs.AddRenderer(cfg.Overlay, systems.DrawLevelComplete)

	ps.ecs = ecs

	factory.CreateLevelAtIndex(ps.ecs, assets.MustLoadLevels(), ps.levelIndex)
	factory.BuildLevel(ps.ecs)
	systems.BeginFadeIn(ps.ecs)
}
