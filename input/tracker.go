package input

import (
	"time"

	"github.com/lixenwraith/lane-racer/engine"
)

// KeyTracker answers KeyIsDown from press events alone
// Terminals report presses and auto-repeat but no releases, so a key counts as
// held for the hold window after its latest press
// Owned by the host loop goroutine, not safe for concurrent use
type KeyTracker struct {
	clock engine.TimeProvider
	hold  time.Duration

	tracked  map[string]struct{}
	lastSeen map[string]time.Time
}

// NewKeyTracker creates a tracker over the given key names
func NewKeyTracker(tracked []string, hold time.Duration, clock engine.TimeProvider) *KeyTracker {
	t := &KeyTracker{
		clock:    clock,
		hold:     hold,
		tracked:  make(map[string]struct{}, len(tracked)),
		lastSeen: make(map[string]time.Time, len(tracked)),
	}
	for _, k := range tracked {
		t.tracked[k] = struct{}{}
	}
	return t
}

// Press marks key as held, releasing every other tracked key
// Only the most recent key auto-repeats in a terminal
func (t *KeyTracker) Press(key string) bool {
	if _, ok := t.tracked[key]; !ok {
		return false
	}
	clear(t.lastSeen)
	t.lastSeen[key] = t.clock.Now()
	return true
}

// Release forgets a held key
func (t *KeyTracker) Release(key string) {
	delete(t.lastSeen, key)
}

// ReleaseAll forgets every held key
func (t *KeyTracker) ReleaseAll() {
	clear(t.lastSeen)
}

// KeyIsDown implements engine.KeyInput
func (t *KeyTracker) KeyIsDown(key string) bool {
	at, ok := t.lastSeen[key]
	if !ok {
		return false
	}
	if t.clock.Now().Sub(at) > t.hold {
		delete(t.lastSeen, key)
		return false
	}
	return true
}
