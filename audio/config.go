package audio

import (
	"github.com/lixenwraith/lane-racer/constants"
	"github.com/lixenwraith/lane-racer/core"
)

// Config holds the audio settings
type Config struct {
	Enabled       bool
	MasterVolume  float64
	SampleRate    int
	EffectVolumes map[core.SoundType]float64
	HumVolume     float64
}

// DefaultConfig returns the stock audio settings
func DefaultConfig() *Config {
	return &Config{
		Enabled:      constants.DefaultAudioOn,
		MasterVolume: constants.DefaultVolume,
		SampleRate:   constants.AudioSampleRate,
		EffectVolumes: map[core.SoundType]float64{
			core.SoundStart:     0.6,
			core.SoundCrash:     1.0,
			core.SoundHighScore: 0.8,
		},
		HumVolume: constants.HumVolume,
	}
}

// effectVolume returns the effective gain of a sound type, unknown types play at master volume
func (c *Config) effectVolume(t core.SoundType) float64 {
	v, ok := c.EffectVolumes[t]
	if !ok {
		v = 1
	}
	return v * c.MasterVolume
}
