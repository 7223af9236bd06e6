package components

import (
	"github.com/automoto/shapeshift/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *leveldata.Level
	LevelIndex   int
	Levels       []*leveldata.Level
}

var Level = donburi.NewComponentType[LevelData]()
