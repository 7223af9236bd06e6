package systems

import (
	"image/color"

	"github.com/automoto/shapeshift/components"
	cfg "github.com/automoto/shapeshift/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// StartTransition fades the level out. Once black, the level at next is
// loaded, or the final overlay is shown when there is none.
func StartTransition(e *ecs.ECS, next int) {
	t := GetOrCreateTransition(e)
	t.Phase = components.TransitionFadeOut
	t.Fade = gween.New(0, 1, cfg.Transition.FadeOut, ease.InQuad)
	t.NextLevel = next
}

// BeginFadeIn starts a freshly built level from black.
func BeginFadeIn(e *ecs.ECS) {
	t := GetOrCreateTransition(e)
	t.Phase = components.TransitionFadeIn
	t.Fade = gween.New(1, 0, cfg.Transition.FadeIn, ease.OutQuad)
	t.Alpha = 1
}

// NewUpdateTransition creates the system that drives the fades. createLevel
// builds the scene for a level index.
func NewUpdateTransition(sceneChanger SceneChanger, createLevel func(index int) interface{}) ecs.System {
	return func(e *ecs.ECS) {
		t := GetOrCreateTransition(e)
		if t.Phase == components.TransitionNone {
			return
		}

		alpha, done := t.Fade.Update(tickSeconds())
		t.Alpha = alpha
		if !done {
			return
		}

		switch t.Phase {
		case components.TransitionFadeOut:
			if levels := levelCount(e); t.NextLevel < levels {
				sceneChanger.ChangeScene(createLevel(t.NextLevel))
				return
			}
			GetOrCreateLevelComplete(e).Finished = true
			BeginFadeIn(e)
		case components.TransitionFadeIn:
			t.Phase = components.TransitionNone
			t.Alpha = 0
		}
	}
}

// DrawTransition covers the screen while fading.
func DrawTransition(e *ecs.ECS, screen *ebiten.Image) {
	t := GetOrCreateTransition(e)
	if t.Alpha <= 0 {
		return
	}

	c := fade(cfg.Transition.OverlayColor, clamp01(t.Alpha))
	bounds := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(bounds.Dx()), float32(bounds.Dy()), c, false)
}

// IsTransitioning reports whether a fade is running.
func IsTransitioning(e *ecs.ECS) bool {
	return GetOrCreateTransition(e).Phase != components.TransitionNone
}

// GetOrCreateTransition returns the singleton Transition component, creating if needed
func GetOrCreateTransition(e *ecs.ECS) *components.TransitionData {
	entry, ok := components.Transition.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Transition))
	}
	return components.Transition.Get(entry)
}

func levelCount(e *ecs.ECS) int {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return 0
	}
	return len(components.Level.Get(levelEntry).Levels)
}

// fade scales a premultiplied color by a.
func fade(c color.RGBA, a float32) color.RGBA {
	return color.RGBA{
		R: uint8(float32(c.R) * a),
		G: uint8(float32(c.G) * a),
		B: uint8(float32(c.B) * a),
		A: uint8(float32(c.A) * a),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
