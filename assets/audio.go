package assets

import (
	"encoding/binary"
	"fmt"
	"math"

	cfg "github.com/automoto/shapeshift/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader renders and caches the synthesized sound effects
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX renders a sound effect without creating a player.
func (l *AudioLoader) PreloadSFX(id cfg.SoundID) error {
	_, err := l.pcm(id)
	return err
}

// LoadSFX returns a new player for the effect each time.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	data, err := l.pcm(id)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayerFromBytes(data), nil
}

func (l *AudioLoader) pcm(id cfg.SoundID) ([]byte, error) {
	if data, ok := l.sfxCache[id]; ok {
		return data, nil
	}
	tone, ok := cfg.Sound.Tones[id]
	if !ok {
		return nil, fmt.Errorf("no tone for sound %d", id)
	}
	data := SynthesizeTone(tone, l.context.SampleRate())
	l.sfxCache[id] = data
	return data, nil
}

// SynthesizeTone renders a sine sweep from t.Freq to t.EndFreq with a linear
// fade out, as 16-bit little endian stereo PCM.
func SynthesizeTone(t cfg.Tone, sampleRate int) []byte {
	n := int(t.Duration * float64(sampleRate))
	out := make([]byte, n*4)

	phase := 0.0
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		freq := t.Freq + (t.EndFreq-t.Freq)*progress
		phase += 2 * math.Pi * freq / float64(sampleRate)

		v := math.Sin(phase) * t.Volume * (1 - progress)
		sample := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(out[i*4:], sample)
		binary.LittleEndian.PutUint16(out[i*4+2:], sample)
	}
	return out
}
