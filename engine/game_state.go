package engine

import (
	"github.com/lixenwraith/lane-racer/components"
	"github.com/lixenwraith/lane-racer/score"
)

// GameState is one run generation of the simulation
// Mutated only by Game.Tick and spawn tasks issued for the same generation
type GameState struct {
	Phase Phase

	// Generation distinguishes this run from stale callbacks of earlier runs
	Generation uint64

	DistanceTraveled float64
	Ticks            uint64

	Player      *components.Car
	Enemies     []*components.Car
	Decorations []*components.Decoration
}

// newGameState creates an Idle state with the player at its default position
func newGameState(cfg *Config, generation uint64) *GameState {
	player := components.NewPlayerCar(
		cfg.PlayerStartX(),
		cfg.PlayerStartY(),
		cfg.MapWidth,
		components.NewCarBody(cfg.CarWidth, cfg.CarHeight, cfg.Palette.Player),
	)
	player.VerticalSpeed = cfg.SpeedCurve.SpeedAt(0)

	return &GameState{
		Phase:       PhaseIdle,
		Generation:  generation,
		Player:      player,
		Enemies:     make([]*components.Car, 0, 8),
		Decorations: make([]*components.Decoration, 0, 16),
	}
}

// Score returns the current run score
func (s *GameState) Score() int {
	return score.Score(s.DistanceTraveled)
}

// scrolled is any entity with a leading edge
type scrolled interface {
	Top() float64
}

// ActiveObjects drops entities whose leading edge passed limit, keeping survivor order
// Filters in place, the input slice must not be used afterwards
func ActiveObjects[T scrolled](items []T, limit float64) []T {
	kept := items[:0]
	for _, it := range items {
		if it.Top() <= limit {
			kept = append(kept, it)
		}
	}
	clear(items[len(kept):])
	return kept
}
