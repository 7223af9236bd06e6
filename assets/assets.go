package assets

import (
	"embed"
	"fmt"
	"sync"

	"github.com/automoto/shapeshift/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS

	levelsOnce sync.Once
	levels     []*leveldata.Level
	levelsErr  error
)

// LoadLevels parses every embedded level once, ordered by file name.
func LoadLevels() ([]*leveldata.Level, error) {
	levelsOnce.Do(func() {
		levels, levelsErr = leveldata.LoadAll(assetFS, "levels")
		if levelsErr == nil && len(levels) == 0 {
			levelsErr = fmt.Errorf("no level files found in assets/levels directory")
		}
	})
	return levels, levelsErr
}

// MustLoadLevels is LoadLevels for startup code that cannot go on without
// levels.
func MustLoadLevels() []*leveldata.Level {
	lv, err := LoadLevels()
	if err != nil {
		panic(fmt.Sprintf("Failed to load levels: %v", err))
	}
	return lv
}
