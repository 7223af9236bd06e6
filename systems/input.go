package systems

import (
	"strings"

	"github.com/automoto/shapeshift/components"
	cfg "github.com/automoto/shapeshift/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var gamepadIDs []ebiten.GamepadID

// padMethods remembers which hint set each connected gamepad uses.
var padMethods = make(map[ebiten.GamepadID]components.InputMethod)

// playStationNames are gamepad name fragments that get PlayStation hints.
var playStationNames = []string{"ps4", "ps5", "playstation", "dualshock", "dualsense"}

// UpdateInput samples every bound key, button and stick direction into the
// Input singleton. Must run before the systems that read actions.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, padUsed bool
	var pad ebiten.GamepadID
	for id, binding := range cfg.Input.Bindings {
		if keyHeld(binding.Keys) {
			input.Current[id] = true
			keyboardUsed = true
		}
		if gp, ok := padHeld(binding); ok {
			input.Current[id] = true
			padUsed, pad = true, gp
		}
	}

	if !input.Primed {
		input.Previous = input.Current
		input.Primed = true
	}

	switch {
	case padUsed:
		input.LastInputMethod = padMethod(pad)
	case keyboardUsed:
		input.LastInputMethod = components.InputKeyboard
	}
}

func keyHeld(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// padHeld returns the first gamepad holding one of the binding's buttons or
// stick directions.
func padHeld(binding cfg.InputBinding) (ebiten.GamepadID, bool) {
	for _, gp := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gp) {
			continue
		}
		for _, btn := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gp, btn) {
				return gp, true
			}
		}
		for _, a := range binding.Axes {
			if ebiten.StandardGamepadAxisValue(gp, a.Axis)*a.Sign > cfg.Input.AnalogDeadzone {
				return gp, true
			}
		}
	}
	return 0, false
}

func padMethod(gp ebiten.GamepadID) components.InputMethod {
	if method, ok := padMethods[gp]; ok {
		return method
	}

	method := components.InputXbox
	name := strings.ToLower(ebiten.GamepadName(gp))
	for _, n := range playStationNames {
		if strings.Contains(name, n) {
			method = components.InputPlayStation
			break
		}
	}
	padMethods[gp] = method
	return method
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction derives the pressed edges of an action from this tick and the
// last one.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
