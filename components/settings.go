package components

import "github.com/yohamta/donburi"

// SettingsData stores runtime toggles for the current scene
type SettingsData struct {
	Debug bool
}

var Settings = donburi.NewComponentType[SettingsData]()
