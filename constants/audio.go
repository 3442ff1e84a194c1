package constants

import "time"

// Audio output
const (
	AudioSampleRate = 48000
	// AudioBufferDuration is the speaker buffer, latency vs underrun tradeoff
	AudioBufferDuration = 100 * time.Millisecond
)

// Start Sound Timing
const (
	StartSoundNoteDuration = 90 * time.Millisecond
	StartSoundAttack       = 5 * time.Millisecond
	StartSoundRelease      = 40 * time.Millisecond
)

// Crash Sound Timing
const (
	CrashSoundDuration = 450 * time.Millisecond
	CrashSoundAttack   = 5 * time.Millisecond
	CrashSoundRelease  = 350 * time.Millisecond
)

// High Score Chime Timing
const (
	ChimeNote1Duration = 120 * time.Millisecond
	ChimeNote2Duration = 120 * time.Millisecond
	ChimeNote3Duration = 400 * time.Millisecond
	ChimeAttack        = 5 * time.Millisecond
	ChimeNoteRelease   = 60 * time.Millisecond
	ChimeFinalRelease  = 300 * time.Millisecond
)

// Engine hum: pitch rises linearly with speed over the configured range
const (
	HumBaseFrequency = 55.0
	HumFrequencyGain = 11.0 // Hz per unit of speed
	HumMaxFrequency  = 240.0
	HumVolume        = 0.12
)
