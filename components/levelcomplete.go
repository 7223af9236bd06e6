package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// LevelCompleteData stores the state of the level complete overlay
type LevelCompleteData struct {
	IsComplete bool
	// Finished is set once the last level is done and the final overlay shows.
	Finished bool
}

var LevelComplete = donburi.NewComponentType[LevelCompleteData]()

// TransitionPhase is where a level transition is.
type TransitionPhase int

const (
	TransitionNone TransitionPhase = iota
	TransitionFadeOut
	TransitionFadeIn
)

// TransitionData drives the fade between levels.
type TransitionData struct {
	Phase     TransitionPhase
	Fade      *gween.Tween
	Alpha     float32
	NextLevel int
}

var Transition = donburi.NewComponentType[TransitionData]()
