package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/shapeshift/components"
	cfg "github.com/automoto/shapeshift/config"
	"github.com/automoto/shapeshift/fonts"
	"github.com/automoto/shapeshift/physics"
	"github.com/automoto/shapeshift/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collider, each zone's trigger radius with the
// body's distance to it, and the animator state.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.Debug {
		return
	}

	view := newViewport(e, screen)
	small := fonts.Small.Get()

	if spaceEntry, ok := components.Space.First(e.World); ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			if !view.visible(obj.X, obj.Y, obj.W, obj.H) {
				continue
			}

			c := color.RGBA{0, 255, 255, 255}
			if obj.HasTags(physics.TagSolid) {
				c = color.RGBA{100, 100, 100, 255}
			} else if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255}
			}
			vector.StrokeRect(screen,
				float32(obj.X+view.offX), float32(obj.Y+view.offY),
				float32(obj.W), float32(obj.H),
				1, c, false)
		}
	}

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	m := components.Morph.Get(playerEntry)
	body := components.Body.Get(playerEntry)

	components.Transformer.Each(e.World, func(entry *donburi.Entry) {
		t := components.Transformer.Get(entry)
		z := t.Zone
		cx := float32(z.Position.X + view.offX)
		cy := float32(z.Position.Y + view.offY)
		vector.StrokeCircle(screen, cx, cy, float32(z.Radius), 1, cfg.HUD.DebugColor, true)

		if t.Index >= len(m.Near) {
			return
		}
		p := m.Near[t.Index]
		label := fmt.Sprintf("%s %.1f", z.Kind, p.Distance)
		if p.Near {
			label += " near"
		}
		text.Draw(screen, label, small, int(cx)-int(z.Radius), int(cy)-int(z.Radius)-6, cfg.HUD.DebugColor)
	})

	ox := body.Origin.X + view.offX
	oy := body.Origin.Y + view.offY
	vector.StrokeLine(screen, float32(ox-4), float32(oy), float32(ox+4), float32(oy), 1, cfg.HUD.DebugColor, false)
	vector.StrokeLine(screen, float32(ox), float32(oy-4), float32(ox), float32(oy+4), 1, cfg.HUD.DebugColor, false)

	sh := components.Shape.Get(playerEntry)
	phys := components.Physics.Get(playerEntry)
	lines := []string{
		fmt.Sprintf("state: %s", stateName(m.State)),
		fmt.Sprintf("shape: %s", sh.Shape),
		fmt.Sprintf("scale: %.2f  collision: %t", sh.Scale, !body.Disabled),
		fmt.Sprintf("origin: %.1f, %.1f  speed: %.2f, %.2f", body.Origin.X, body.Origin.Y, phys.SpeedX, phys.SpeedY),
		fmt.Sprintf("fps: %.0f  tps: %.0f", ebiten.ActualFPS(), ebiten.ActualTPS()),
	}
	x := screen.Bounds().Dx() - 320
	for i, line := range lines {
		text.Draw(screen, line, small, x, int(cfg.HUD.Margin)+16+i*16, cfg.HUD.DebugColor)
	}
}
