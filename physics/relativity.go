package physics

import "github.com/lixenwraith/lane-racer/components"

// Shiftable is any world entity the relativity system can scroll
type Shiftable interface {
	ShiftY(dy float64)
}

// VerticalRelativitySystem scrolls registered entities past a stationary player
// The shift equals the player's vertical speed captured at construction
type VerticalRelativitySystem struct {
	speed    float64
	elements []Shiftable
	seen     map[Shiftable]struct{}
}

// RelativeTo binds a relativity system to the player's current vertical speed
func RelativeTo(player *components.Car) *VerticalRelativitySystem {
	return &VerticalRelativitySystem{
		speed: player.VerticalSpeed,
		seen:  make(map[Shiftable]struct{}),
	}
}

// Speed returns the bound shift per MoveElements call
func (rs *VerticalRelativitySystem) Speed() float64 {
	return rs.speed
}

// AddElements registers entities; an entity registered twice is shifted once
func (rs *VerticalRelativitySystem) AddElements(elems ...Shiftable) *VerticalRelativitySystem {
	for _, e := range elems {
		if _, dup := rs.seen[e]; dup {
			continue
		}
		rs.seen[e] = struct{}{}
		rs.elements = append(rs.elements, e)
	}
	return rs
}

// MoveElements shifts every registered entity toward the trailing edge by speed
func (rs *VerticalRelativitySystem) MoveElements() {
	for _, e := range rs.elements {
		e.ShiftY(rs.speed)
	}
}

// Len returns the number of registered entities
func (rs *VerticalRelativitySystem) Len() int {
	return len(rs.elements)
}

// Cars converts a car slice for registration
func Cars(cars []*components.Car) []Shiftable {
	out := make([]Shiftable, len(cars))
	for i, c := range cars {
		out[i] = c
	}
	return out
}

// Decorations converts a decoration slice for registration
func Decorations(decs []*components.Decoration) []Shiftable {
	out := make([]Shiftable, len(decs))
	for i, d := range decs {
		out[i] = d
	}
	return out
}
