package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/lane-racer/constants"
	"github.com/lixenwraith/lane-racer/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		val := waveSample(o.wave, o.phase)
		samples[i][0] = val
		samples[i][1] = val

		// Advance phase, kept in [0, 1)
		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// waveSample evaluates one wave at phase in [0, 1)
func waveSample(wave WaveType, phase float64) float64 {
	switch wave {
	case WaveSine:
		return math.Sin(2 * math.Pi * phase)
	case WaveSquare:
		if phase < 0.5 {
			return 1.0
		}
		return -1.0
	case WaveSaw:
		return 2.0 * (phase - 0.5)
	case WaveNoise:
		return rand.Float64()*2 - 1
	}
	return 0
}

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(total-att-rel, 0),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain, zero gain is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func note(freq float64, d, attack, release time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, attack, release, rate)
}

// CreateStartSound generates a short rising two-note blip
func CreateStartSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.StartSoundNoteDuration

	seq := beep.Seq(
		note(440.0, d, constants.StartSoundAttack, constants.StartSoundRelease, WaveSquare, rate),
		note(659.25, d, constants.StartSoundAttack, constants.StartSoundRelease, WaveSquare, rate),
	)
	return newVolume(seq, 0.5*cfg.effectVolume(core.SoundStart))
}

// CreateCrashSound generates a noisy low crunch for collisions
func CreateCrashSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.CrashSoundDuration

	mixed := beep.Take(rate.N(d), beep.Mix(
		newVolume(note(0, d, constants.CrashSoundAttack, constants.CrashSoundRelease, WaveNoise, rate), 0.6),
		newVolume(note(70.0, d, constants.CrashSoundAttack, constants.CrashSoundRelease, WaveSaw, rate), 0.4),
	))
	return newVolume(mixed, cfg.effectVolume(core.SoundCrash))
}

// CreateHighScoreSound generates an ascending major arpeggio (C6 E6 G6)
func CreateHighScoreSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	att := constants.ChimeAttack

	// Take bounds each note, a mix of drained streamers may keep yielding silence
	chime := func(freq float64, d, release time.Duration) beep.Streamer {
		return beep.Take(rate.N(d), beep.Mix(
			newVolume(note(freq, d, att, release, WaveSine, rate), 0.7),
			newVolume(note(freq*2, d, att, release/2, WaveSine, rate), 0.3),
		))
	}

	seq := beep.Seq(
		chime(1046.50, constants.ChimeNote1Duration, constants.ChimeNoteRelease),
		chime(1318.51, constants.ChimeNote2Duration, constants.ChimeNoteRelease),
		chime(1567.98, constants.ChimeNote3Duration, constants.ChimeFinalRelease),
	)
	return newVolume(seq, cfg.effectVolume(core.SoundHighScore))
}

// GetSoundEffect returns the appropriate sound effect streamer for the given type
func GetSoundEffect(soundType core.SoundType, cfg *Config) beep.Streamer {
	switch soundType {
	case core.SoundStart:
		return CreateStartSound(cfg)
	case core.SoundCrash:
		return CreateCrashSound(cfg)
	case core.SoundHighScore:
		return CreateHighScoreSound(cfg)
	default:
		return nil
	}
}
