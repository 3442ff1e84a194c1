package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lane-racer/engine"
)

// Keyboard hands key trackers to the engine and feeds terminal events to the live one
type Keyboard struct {
	hold    time.Duration
	clock   engine.TimeProvider
	current *KeyTracker
}

// NewKeyboard creates a keyboard whose trackers use the given hold window
func NewKeyboard(hold time.Duration, clock engine.TimeProvider) *Keyboard {
	return &Keyboard{hold: hold, clock: clock}
}

// Subscribe implements engine.KeyInputFactory, replacing the previous subscription
func (kb *Keyboard) Subscribe(tracked []string) engine.KeyInput {
	kb.current = NewKeyTracker(tracked, kb.hold, kb.clock)
	return kb.current
}

// Current returns the live tracker, nil before the first subscription
func (kb *Keyboard) Current() *KeyTracker {
	return kb.current
}

// HandleEvent classifies ev and records steering presses on the live tracker
func (kb *Keyboard) HandleEvent(ev tcell.Event) Intent {
	intent := Classify(ev)
	if intent.Type == IntentSteer && kb.current != nil {
		kb.current.Press(intent.Key)
	}
	return intent
}
