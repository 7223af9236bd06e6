package systems

import (
	"fmt"

	"github.com/automoto/shapeshift/components"
	cfg "github.com/automoto/shapeshift/config"
	"github.com/automoto/shapeshift/fonts"
	"github.com/automoto/shapeshift/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the level title and the shift counter in the top-left
// corner and the key hints along the bottom.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	margin := int(cfg.HUD.Margin)

	face := fonts.Bold.Get()
	title := fmt.Sprintf("%d/%d  %s", level.LevelIndex+1, len(level.Levels), level.CurrentLevel.Name)
	text.Draw(screen, title, face, margin, margin+20, cfg.HUD.TextColor)

	if playerEntry, ok := tags.Player.First(e.World); ok {
		m := components.Morph.Get(playerEntry)
		small := fonts.Small.Get()
		text.Draw(screen, fmt.Sprintf("shifts: %d", m.Commits), small, margin, margin+40, cfg.HUD.TextColor)
	}

	hint := getHUDHint(getOrCreateInput(e).LastInputMethod)
	small := fonts.Small.Get()
	text.Draw(screen, hint, small, margin, screen.Bounds().Dy()-margin, cfg.HUD.TextColor)
}

// getHUDHint returns the control reminder for the last used device
func getHUDHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "D-Pad: Move   Cross: Jump   Share: Restart   Circle: Menu"
	case components.InputXbox:
		return "D-Pad: Move   A: Jump   Back: Restart   B: Menu"
	}
	return "Arrows: Move   Up/Space: Jump   R: Restart   M: Mute   Esc: Menu"
}
