package components

import "github.com/lixenwraith/lane-racer/core"

// Decoration is a scrolled road marking with no collision
type Decoration struct {
	Rect  core.Rect
	Color core.RGB
}

// NewRoadMarking creates a centre-line marking just above the leading edge
func NewRoadMarking(fieldWidth, width, height float64, color core.RGB) *Decoration {
	return &Decoration{
		Rect: core.Rect{
			X:      (fieldWidth - width) / 2,
			Y:      -height,
			Width:  width,
			Height: height,
		},
		Color: color,
	}
}

// ShiftY moves the marking vertically
func (d *Decoration) ShiftY(dy float64) {
	d.Rect.Y += dy
}

// Top returns the leading edge y-coordinate
func (d *Decoration) Top() float64 {
	return d.Rect.Y
}
