package systems

import (
	"github.com/automoto/shapeshift/components"
	cfg "github.com/automoto/shapeshift/config"
	"github.com/automoto/shapeshift/morph"
	"github.com/automoto/shapeshift/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// cullPadding keeps shapes from popping at the screen edges.
const cullPadding = 64.0

// viewport is the visible world rectangle plus the world to screen offset.
type viewport struct {
	offX, offY             float64
	minX, minY, maxX, maxY float64
}

func newViewport(e *ecs.ECS, screen *ebiten.Image) viewport {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	offX, offY := cameraOffset(e, w, h)
	return viewport{
		offX: offX,
		offY: offY,
		minX: -offX - cullPadding,
		minY: -offY - cullPadding,
		maxX: -offX + float64(w) + cullPadding,
		maxY: -offY + float64(h) + cullPadding,
	}
}

func (v viewport) visible(x, y, w, h float64) bool {
	return x+w >= v.minX && x <= v.maxX && y+h >= v.minY && y <= v.maxY
}

// DrawLevel clears the screen and draws the level's blocks.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Menu.BackgroundColor)
	view := newViewport(e, screen)

	tags.Block.Each(e.World, func(entry *donburi.Entry) {
		o := components.Object.Get(entry)
		if !view.visible(o.X, o.Y, o.W, o.H) {
			return
		}
		vector.FillRect(screen,
			float32(o.X+view.offX), float32(o.Y+view.offY),
			float32(o.W), float32(o.H),
			cfg.Block.Color, false)
	})
}

// DrawCaves draws each cave as its target silhouette.
func DrawCaves(e *ecs.ECS, screen *ebiten.Image) {
	view := newViewport(e, screen)

	tags.Cave.Each(e.World, func(entry *donburi.Entry) {
		cave := components.Cave.Get(entry)
		fill := cfg.Cave.FillColor
		if cave.Matched {
			fill = cfg.Cave.MatchedColor
		}
		for _, r := range morph.WorldRects(cave.Target, cave.Origin, cfg.Shape.CellSize) {
			if !view.visible(r.X, r.Y, r.W, r.H) {
				continue
			}
			vector.FillRect(screen,
				float32(r.X+view.offX), float32(r.Y+view.offY),
				float32(r.W), float32(r.H),
				fill, false)
		}
	})
}

// DrawTransformers draws every zone as a filled circle of its trigger
// radius, with a pulsing outline in the color of its transformation.
func DrawTransformers(e *ecs.ECS, screen *ebiten.Image) {
	view := newViewport(e, screen)

	components.Transformer.Each(e.World, func(entry *donburi.Entry) {
		t := components.Transformer.Get(entry)
		z := t.Zone
		if !view.visible(z.Position.X-z.Radius, z.Position.Y-z.Radius, 2*z.Radius, 2*z.Radius) {
			return
		}

		stroke := cfg.Transformer.StrokeColor
		if c, ok := cfg.Transformer.KindColors[z.Kind.String()]; ok {
			stroke = c
		}

		cx := float32(z.Position.X + view.offX)
		cy := float32(z.Position.Y + view.offY)
		vector.DrawFilledCircle(screen, cx, cy, float32(z.Radius), cfg.Transformer.FillColor, true)
		vector.StrokeCircle(screen, cx, cy, float32(z.Radius), cfg.Transformer.StrokeWidth+t.PulseStroke, stroke, true)
	})
}

// DrawBodies draws every shape body cell by cell. The transformer scale
// shrinks the body about its center; squash and stretch is anchored at the
// bottom.
func DrawBodies(e *ecs.ECS, screen *ebiten.Image) {
	view := newViewport(e, screen)

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		sh := components.Shape.Get(entry)
		body := components.Body.Get(entry)
		if sh.Scale <= 0 {
			return
		}

		rects := body.Rects()
		minX, minY, maxX, maxY := bounds(rects)
		if !view.visible(minX, minY, maxX-minX, maxY-minY) {
			return
		}

		sqX, sqY := squashScale(entry)
		cx, cy := (minX+maxX)/2, (minY+maxY)/2
		for _, r := range rects {
			// Squash about the bottom center.
			x := cx + (r.X-cx)*sqX
			y := maxY + (r.Y-maxY)*sqY
			w, h := r.W*sqX, r.H*sqY
			// Then the transformer scale about the body center.
			x = cx + (x-cx)*sh.Scale
			y = cy + (y-cy)*sh.Scale
			w, h = w*sh.Scale, h*sh.Scale

			drawCell(screen, x+view.offX, y+view.offY, w, h)
		}
	})
}

func drawCell(screen *ebiten.Image, x, y, w, h float64) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), cfg.Shape.FillColor, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), cfg.Shape.OutlineWidth, cfg.Shape.OutlineColor, false)
}

func bounds(rects []morph.Rect) (minX, minY, maxX, maxY float64) {
	if len(rects) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY = rects[0].X, rects[0].Y
	maxX, maxY = rects[0].X+rects[0].W, rects[0].Y+rects[0].H
	for _, r := range rects[1:] {
		minX = min(minX, r.X)
		minY = min(minY, r.Y)
		maxX = max(maxX, r.X+r.W)
		maxY = max(maxY, r.Y+r.H)
	}
	return minX, minY, maxX, maxY
}
