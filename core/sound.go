package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundStart     SoundType = iota // Run started
	SoundCrash                      // Collision buzz
	SoundHighScore                  // New high score chime
	SoundTypeCount
)

func (s SoundType) String() string {
	names := [...]string{"start", "crash", "highscore"}
	if s >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "unknown"
}
