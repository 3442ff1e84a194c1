package physics

import (
	"fmt"

	"github.com/lixenwraith/lane-racer/components"
)

// CollisionMode selects the rectangles compared by CarsCrashed
type CollisionMode int

const (
	// CollisionBounds compares the bounding rectangles of both cars
	CollisionBounds CollisionMode = iota
	// CollisionParts requires an overlapping pair of individual parts
	CollisionParts
)

// String returns the config name of the mode
func (m CollisionMode) String() string {
	switch m {
	case CollisionBounds:
		return "bounds"
	case CollisionParts:
		return "parts"
	default:
		return "unknown"
	}
}

// ParseCollisionMode resolves a config name
func ParseCollisionMode(s string) (CollisionMode, error) {
	switch s {
	case "", "bounds":
		return CollisionBounds, nil
	case "parts":
		return CollisionParts, nil
	default:
		return CollisionBounds, fmt.Errorf("unknown collision mode %q", s)
	}
}

// CarsCrashed reports whether enemy and player occupy overlapping space
// Touching edges are not a crash
func CarsCrashed(enemy, player *components.Car, mode CollisionMode) bool {
	eb, pb := enemy.BoundingRect(), player.BoundingRect()
	if !eb.Overlaps(pb) {
		return false
	}
	if mode != CollisionParts {
		return true
	}

	for ep := range enemy.PhysicalParts() {
		if !ep.Rect.Overlaps(pb) {
			continue
		}
		for pp := range player.PhysicalParts() {
			if ep.Rect.Overlaps(pp.Rect) {
				return true
			}
		}
	}
	return false
}

// AnyCrashed reports whether any enemy crashed into the player
func AnyCrashed(enemies []*components.Car, player *components.Car, mode CollisionMode) bool {
	for _, e := range enemies {
		if CarsCrashed(e, player, mode) {
			return true
		}
	}
	return false
}
