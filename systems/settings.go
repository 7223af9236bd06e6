package systems

import (
	"github.com/automoto/shapeshift/components"
	cfg "github.com/automoto/shapeshift/config"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the debug overlay and mute toggles.
func UpdateSettings(e *ecs.ECS) {
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings := GetOrCreateSettings(e)
		settings.Debug = !settings.Debug
	}

	if GetAction(input, cfg.ActionToggleMute).JustPressed {
		save := Progress()
		if err := save.SetMuted(!save.Muted()); err != nil {
			log.Warn("could not save settings", "err", err)
		}
		SetSFXVolume(save.SFXVolume())
	}
}

// GetOrCreateSettings returns the singleton Settings component. The debug
// overlay starts in whatever state the command line asked for.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			Debug: cfg.Debug.Overlay,
		})
	}
	return components.Settings.Get(entry)
}
