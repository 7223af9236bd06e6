package factory

import (
	"github.com/automoto/shapeshift/archetypes"
	"github.com/automoto/shapeshift/components"
	cfg "github.com/automoto/shapeshift/config"
	"github.com/automoto/shapeshift/leveldata"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevelAtIndex registers the level list and selects one of them.
// Out of range indexes fall back to the first level.
func CreateLevelAtIndex(ecs *ecs.ECS, levels []*leveldata.Level, levelIndex int) *donburi.Entry {
	if len(levels) == 0 {
		panic("no levels to play")
	}

	if levelIndex < 0 || levelIndex >= len(levels) {
		levelIndex = 0
	}

	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		Levels:       levels,
		LevelIndex:   levelIndex,
		CurrentLevel: levels[levelIndex],
	})

	return level
}

// BuildLevel spawns the space, blocks, zones, caves, player and camera of
// the current level.
func BuildLevel(ecs *ecs.ECS) *donburi.Entry {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		panic("BuildLevel called without a level")
	}
	level := components.Level.Get(levelEntry).CurrentLevel

	cell := cfg.Physics.SpaceCellSize
	CreateSpace(ecs, level.Width, level.Height, cell, cell)

	for _, b := range level.Blocks {
		CreateBlock(ecs, b)
	}
	for i, t := range level.Transformers {
		CreateTransformer(ecs, i, t)
	}
	for _, c := range level.Caves {
		CreateCave(ecs, c)
	}

	player := CreatePlayer(ecs, level.Spawn)
	CreateCamera(ecs, level.Spawn)

	log.Debug("level built",
		"name", level.Name,
		"blocks", len(level.Blocks),
		"zones", len(level.Transformers),
		"caves", len(level.Caves))

	return player
}
