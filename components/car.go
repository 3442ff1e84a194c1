package components

import (
	"iter"

	"github.com/lixenwraith/lane-racer/core"
)

// CarKind tags the car variant
type CarKind int

const (
	KindPlayer CarKind = iota
	KindEnemy
)

// String returns the variant name
func (k CarKind) String() string {
	switch k {
	case KindPlayer:
		return "Player"
	case KindEnemy:
		return "Enemy"
	default:
		return "Unknown"
	}
}

// PhysicalPart is one drawable piece of a vehicle
type PhysicalPart struct {
	Rect  core.Rect
	Color core.RGB
}

// Car is the shared kinematic record of player and enemy vehicles
// X, Y is the anchor (top-left of the body template)
type Car struct {
	Kind          CarKind
	X, Y          float64
	VerticalSpeed float64

	// Lateral bounds for the anchor X
	MinX, MaxX float64

	Body Body
}

// NewPlayerCar creates the player car at x, y constrained to [0, fieldWidth - body width]
func NewPlayerCar(x, y, fieldWidth float64, body Body) *Car {
	c := &Car{
		Kind: KindPlayer,
		Y:    y,
		MinX: 0,
		MaxX: fieldWidth - body.Width(),
		Body: body,
	}
	c.X = core.Clamp(x, c.MinX, c.MaxX)
	return c
}

// NewEnemyCar creates an enemy car, x is clamped to the field like the player
func NewEnemyCar(x, y, fieldWidth float64, body Body) *Car {
	c := NewPlayerCar(x, y, fieldWidth, body)
	c.Kind = KindEnemy
	return c
}

// PhysicalParts yields the car parts at the current position, in body order
func (c *Car) PhysicalParts() iter.Seq[PhysicalPart] {
	return func(yield func(PhysicalPart) bool) {
		for _, t := range c.Body {
			if !yield(PhysicalPart{Rect: t.Offset.Translate(c.X, c.Y), Color: t.Color}) {
				return
			}
		}
	}
}

// BoundingRect returns the rectangle enclosing every part
func (c *Car) BoundingRect() core.Rect {
	return c.Body.Bounds().Translate(c.X, c.Y)
}

// MoveLeft steers left by step, never past MinX
func (c *Car) MoveLeft(step float64) {
	c.X = core.Clamp(c.X-step, c.MinX, c.MaxX)
}

// MoveRight steers right by step, never past MaxX
func (c *Car) MoveRight(step float64) {
	c.X = core.Clamp(c.X+step, c.MinX, c.MaxX)
}

// ShiftY moves the car vertically, used by the relativity system
func (c *Car) ShiftY(dy float64) {
	c.Y += dy
}

// Top returns the leading edge y-coordinate
func (c *Car) Top() float64 {
	return c.Y
}
