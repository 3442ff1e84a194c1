// Package score derives run scores from distance and tracks the persisted best score
package score

import (
	"fmt"
	"math"

	"github.com/lixenwraith/lane-racer/constants"
)

// Score converts distance traveled into whole points
func Score(distance float64) int {
	if !(distance > 0) {
		return 0
	}
	return int(math.Floor(distance / constants.ScoreDivisor))
}

// Outcome is the game-over report handed to the host
type Outcome struct {
	Score          int
	HighScore      int
	IsNewHighScore bool
}

// Message renders the report text shown by the host
func (o Outcome) Message() string {
	text := fmt.Sprintf("Final score: %d.", o.Score)
	if o.IsNewHighScore {
		return "New high score!\n" + text
	}
	return text
}

// IsNewHighScore applies the strict comparison: ties do not count
func IsNewHighScore(current, stored int, hasStored bool) bool {
	return !hasStored || current > stored
}

// Keeper compares finished runs against a Store
type Keeper struct {
	store Store
}

// NewKeeper creates a keeper over store, a nil store keeps nothing between runs
func NewKeeper(store Store) *Keeper {
	if store == nil {
		store = NewMemoryStore()
	}
	return &Keeper{store: store}
}

// Report scores a finished run and records a new high score
// On store failure the outcome still carries the run score
func (k *Keeper) Report(distance float64) (Outcome, error) {
	out := Outcome{Score: Score(distance)}

	stored, ok, err := k.store.HighScore()
	if err != nil {
		out.HighScore = out.Score
		return out, fmt.Errorf("read high score: %w", err)
	}

	out.HighScore = stored
	if IsNewHighScore(out.Score, stored, ok) {
		out.IsNewHighScore = true
		out.HighScore = out.Score
		if err := k.store.SetHighScore(out.Score); err != nil {
			return out, fmt.Errorf("write high score: %w", err)
		}
	}
	return out, nil
}

// HighScore returns the stored best score for display
func (k *Keeper) HighScore() (int, bool) {
	v, ok, err := k.store.HighScore()
	if err != nil {
		return 0, false
	}
	return v, ok
}
