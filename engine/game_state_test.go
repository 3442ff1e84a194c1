package engine

import (
	"testing"

	"github.com/lixenwraith/lane-racer/components"
	"github.com/lixenwraith/lane-racer/core"
)

func TestActiveObjectsKeepsOrder(t *testing.T) {
	mk := func(y float64) *components.Decoration {
		return &components.Decoration{Rect: core.Rect{Y: y, Width: 1, Height: 1}}
	}
	a, b, c, d := mk(-10), mk(601), mk(600), mk(1000)
	items := []*components.Decoration{a, b, c, d}

	kept := ActiveObjects(items, 600)
	if len(kept) != 2 || kept[0] != a || kept[1] != c {
		t.Fatalf("Expected [a c], got %v", kept)
	}
	// Tail cleared so culled entities are not retained
	if items[2] != nil || items[3] != nil {
		t.Error("Culled tail not cleared")
	}
}

func TestGameStateScore(t *testing.T) {
	s := &GameState{DistanceTraveled: 2999.9}
	if s.Score() != 2 {
		t.Errorf("Score() = %d, want 2", s.Score())
	}
}
