package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Transformer sounds
	SoundApproach
	SoundCommit
	// Movement sounds
	SoundJump
	SoundLand
	// Level sounds
	SoundMatch
	SoundRestart
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int     `toml:"sample_rate"`
	DefaultSFXVol float64 `toml:"sfx_volume"`
}

// Tone is a synthesized effect: a sine sweep from Freq to EndFreq with a
// linear fade out.
type Tone struct {
	Freq     float64
	EndFreq  float64
	Duration float64 // seconds
	Volume   float64
}

// SoundConfig maps sound IDs to their tones
type SoundConfig struct {
	Tones map[SoundID]Tone
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.6,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]Tone{
			SoundApproach:     {Freq: 220, EndFreq: 660, Duration: 0.35, Volume: 0.5},
			SoundCommit:       {Freq: 880, EndFreq: 440, Duration: 0.2, Volume: 0.6},
			SoundJump:         {Freq: 300, EndFreq: 500, Duration: 0.1, Volume: 0.4},
			SoundLand:         {Freq: 140, EndFreq: 90, Duration: 0.08, Volume: 0.5},
			SoundMatch:        {Freq: 523, EndFreq: 1046, Duration: 0.6, Volume: 0.6},
			SoundRestart:      {Freq: 400, EndFreq: 200, Duration: 0.15, Volume: 0.4},
			SoundMenuNavigate: {Freq: 600, EndFreq: 600, Duration: 0.05, Volume: 0.3},
			SoundMenuSelect:   {Freq: 700, EndFreq: 900, Duration: 0.1, Volume: 0.4},
		},
	}
}
