package systems

import (
	"github.com/automoto/shapeshift/progress"
	"github.com/charmbracelet/log"
)

var saveData *progress.Tracker

// InitPersistence opens the save file. Without one, progress lives only for
// this run.
func InitPersistence(appName string) error {
	t, err := progress.Open(appName)
	if t == nil {
		t, _ = progress.New(nil)
	}
	saveData = t
	SetSFXVolume(saveData.SFXVolume())
	if err != nil {
		log.Warn("could not load save data", "err", err)
		return err
	}
	return nil
}

// Progress returns the save data tracker.
func Progress() *progress.Tracker {
	if saveData == nil {
		saveData, _ = progress.New(nil)
	}
	return saveData
}

// recordCompletion saves a finished level; failures only cost persistence.
func recordCompletion(index int, name string) {
	if err := Progress().Complete(index, name); err != nil {
		log.Warn("could not save progress", "level", name, "err", err)
	}
}
