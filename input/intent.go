package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lane-racer/constants"
)

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit       // q, Esc, Ctrl+C
	IntentStart      // Enter, Space: start or restart
	IntentToggleMute // m
	IntentSteer      // Arrows, a/h, d/l
	IntentResize     // Terminal resize event
)

// String returns the intent name
func (t IntentType) String() string {
	switch t {
	case IntentQuit:
		return "Quit"
	case IntentStart:
		return "Start"
	case IntentToggleMute:
		return "ToggleMute"
	case IntentSteer:
		return "Steer"
	case IntentResize:
		return "Resize"
	default:
		return "None"
	}
}

// Intent is a classified terminal event
type Intent struct {
	Type IntentType
	// Key is the tracked key name for IntentSteer
	Key string
}

// runeKeys maps steering letters to the tracked key they alias
var runeKeys = map[rune]string{
	'a': constants.KeyLeft,
	'h': constants.KeyLeft,
	'd': constants.KeyRight,
	'l': constants.KeyRight,
}

// KeyName returns the tracked key name of a key event, empty if it names none
func KeyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyLeft:
		return constants.KeyLeft
	case tcell.KeyRight:
		return constants.KeyRight
	case tcell.KeyRune:
		return runeKeys[ev.Rune()]
	}
	return ""
}

// Classify maps a terminal event to an intent
func Classify(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return Intent{Type: IntentQuit}
		case tcell.KeyEnter:
			return Intent{Type: IntentStart}
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return Intent{Type: IntentQuit}
			case ' ':
				return Intent{Type: IntentStart}
			case 'm', 'M':
				return Intent{Type: IntentToggleMute}
			}
		}
		if name := KeyName(ev); name != "" {
			return Intent{Type: IntentSteer, Key: name}
		}
	}
	return Intent{}
}
