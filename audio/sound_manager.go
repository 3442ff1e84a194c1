// Package audio synthesizes the game sounds with beep and plays them on the default speaker
package audio

import (
	"fmt"
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/lane-racer/constants"
	"github.com/lixenwraith/lane-racer/core"
)

// SoundManager manages all game audio
// Every method is safe without a device: calls before Initialize, or after a failed one, are no-ops
type SoundManager struct {
	mu   sync.Mutex
	cfg  *Config
	rate beep.SampleRate

	mixer   *beep.Mixer
	master  *beep.Ctrl // paused while muted
	hum     *HumGenerator
	humCtrl *beep.Ctrl

	muted       bool
	initialized bool

	// speaker lock, swapped out by tests that stream the mixer directly
	lock, unlock func()
}

// NewSoundManager creates a new sound manager, nil cfg uses the defaults
func NewSoundManager(cfg *Config) *SoundManager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	rate := beep.SampleRate(cfg.SampleRate)
	mixer := &beep.Mixer{}
	return &SoundManager{
		cfg:    cfg,
		rate:   rate,
		mixer:  mixer,
		master: &beep.Ctrl{Streamer: mixer},
		hum:    NewHumGenerator(rate),
		lock:   speaker.Lock,
		unlock: speaker.Unlock,
	}
}

// Initialize opens the speaker, a disabled config leaves the manager silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.master)
	sm.initialized = true
	log.Printf("audio: speaker at %d Hz", sm.cfg.SampleRate)
	return nil
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.lock()
	sm.mixer.Clear()
	sm.unlock()
	speaker.Close()

	sm.humCtrl = nil
	sm.initialized = false
}

// Play mixes in a one-shot effect, sounds given together play back to back
// Returns false when nothing was queued
func (sm *SoundManager) Play(types ...core.SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return false
	}

	streams := make([]beep.Streamer, 0, len(types))
	for _, t := range types {
		if s := GetSoundEffect(t, sm.cfg); s != nil {
			streams = append(streams, s)
		}
	}
	if len(streams) == 0 {
		return false
	}

	sm.lock()
	sm.mixer.Add(beep.Seq(streams...))
	sm.unlock()
	return true
}

// StartHum starts or resumes the engine drone
func (sm *SoundManager) StartHum() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.lock()
	defer sm.unlock()

	if sm.humCtrl == nil {
		sm.humCtrl = &beep.Ctrl{Streamer: newVolume(sm.hum, sm.cfg.HumVolume*sm.cfg.MasterVolume)}
		sm.mixer.Add(sm.humCtrl)
	}
	sm.humCtrl.Paused = false
}

// StopHum pauses the engine drone
func (sm *SoundManager) StopHum() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.humCtrl == nil {
		return
	}
	sm.lock()
	sm.humCtrl.Paused = true
	sm.unlock()
}

// SetSpeed retunes the engine drone to a vehicle speed
func (sm *SoundManager) SetSpeed(speed float64) {
	sm.hum.SetSpeed(speed)
}

// SetMuted silences or restores all output
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = muted
	if !sm.initialized {
		return
	}
	sm.lock()
	sm.master.Paused = muted
	sm.unlock()
}

// ToggleMute flips the mute state and returns the new one
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	muted := !sm.muted
	sm.mu.Unlock()

	sm.SetMuted(muted)
	return muted
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}
