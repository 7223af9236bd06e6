// Package progress stores which levels the player has unlocked.
package progress

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
)

const itemKey = "progress"

// Store is the subset of *gdata.Manager the tracker needs.
type Store interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Data is the saved state.
type Data struct {
	// Unlocked is the highest level index that may be started.
	Unlocked  int      `json:"unlocked"`
	Completed []string `json:"completed"`
	SFXVolume float64  `json:"sfxVolume"`
	Muted     bool     `json:"muted"`
}

// Tracker keeps progress in memory and writes it through to a Store.
// A nil store keeps everything in memory.
type Tracker struct {
	store Store
	data  Data
}

// Open creates a tracker backed by the platform save directory for appName.
func Open(appName string) (*Tracker, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open save data: %w", err)
	}
	return New(m)
}

// New loads saved progress from store. Missing data starts a fresh save.
func New(store Store) (*Tracker, error) {
	t := &Tracker{
		store: store,
		data:  Data{SFXVolume: 1},
	}
	if store == nil {
		return t, nil
	}

	raw, err := store.LoadItem(itemKey)
	if err != nil {
		return t, fmt.Errorf("load progress: %w", err)
	}
	if raw == nil {
		return t, nil
	}
	if err := json.Unmarshal(raw, &t.data); err != nil {
		return t, fmt.Errorf("parse progress: %w", err)
	}
	if t.data.Unlocked < 0 {
		t.data.Unlocked = 0
	}
	return t, nil
}

// Unlocked returns the highest level index the player may start.
func (t *Tracker) Unlocked() int {
	return t.data.Unlocked
}

// IsUnlocked reports whether level index may be started.
func (t *Tracker) IsUnlocked(index int) bool {
	return index >= 0 && index <= t.data.Unlocked
}

// Completed reports whether the named level was ever finished.
func (t *Tracker) Completed(name string) bool {
	for _, n := range t.data.Completed {
		if n == name {
			return true
		}
	}
	return false
}

// Complete records that level index (named name) was finished and unlocks
// the one after it.
func (t *Tracker) Complete(index int, name string) error {
	if !t.Completed(name) {
		t.data.Completed = append(t.data.Completed, name)
	}
	if index+1 > t.data.Unlocked {
		t.data.Unlocked = index + 1
	}
	log.Debug("level completed", "level", name, "unlocked", t.data.Unlocked)
	return t.save()
}

// SFXVolume returns the saved effect volume, 0 when muted.
func (t *Tracker) SFXVolume() float64 {
	if t.data.Muted {
		return 0
	}
	return t.data.SFXVolume
}

// SetMuted toggles sound and saves.
func (t *Tracker) SetMuted(muted bool) error {
	t.data.Muted = muted
	return t.save()
}

// Muted reports whether sound is off.
func (t *Tracker) Muted() bool {
	return t.data.Muted
}

// Reset forgets all progress.
func (t *Tracker) Reset() error {
	t.data.Unlocked = 0
	t.data.Completed = nil
	return t.save()
}

func (t *Tracker) save() error {
	if t.store == nil {
		return nil
	}
	raw, err := json.Marshal(t.data)
	if err != nil {
		return fmt.Errorf("serialize progress: %w", err)
	}
	if err := t.store.SaveItem(itemKey, raw); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}
