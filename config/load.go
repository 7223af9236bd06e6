package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// fileConfig points at the live globals so decoding only overwrites the
// keys present in the file.
type fileConfig struct {
	Window     *Config           `toml:"window"`
	Shape      *ShapeConfig      `toml:"shape"`
	Morph      *MorphConfig      `toml:"morph"`
	Player     *PlayerConfig     `toml:"player"`
	Physics    *PhysicsConfig    `toml:"physics"`
	Block      *BlockConfig      `toml:"block"`
	Camera     *CameraConfig     `toml:"camera"`
	Transition *TransitionConfig `toml:"transition"`
	Audio      *AudioConfig      `toml:"audio"`
}

// LoadOverrides applies a TOML file on top of the defaults.
func LoadOverrides(path string) error {
	f := fileConfig{
		Window:     C,
		Shape:      &Shape,
		Morph:      &Morph,
		Player:     &Player,
		Physics:    &Physics,
		Block:      &Block,
		Camera:     &Camera,
		Transition: &Transition,
		Audio:      &Audio,
	}

	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		log.Warn("ignoring unknown config keys", "file", path, "keys", undecoded)
	}
	log.Info("config loaded", "file", path, "keys", len(md.Keys()))
	return nil
}
