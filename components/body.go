package components

import "github.com/lixenwraith/lane-racer/core"

// PartTemplate is a part rectangle relative to the car anchor
type PartTemplate struct {
	Offset core.Rect
	Color  core.RGB
}

// Body is the fixed, ordered part list of a vehicle, drawn first to last
type Body []PartTemplate

// BodyColors selects the palette of a car body
type BodyColors struct {
	Body       core.RGB
	Windshield core.RGB
	Wheel      core.RGB
}

// NewCarBody lays out four wheels, a chassis and a windshield within width x height
// Wheels sit flush with the outer edges so the bounds equal width x height
func NewCarBody(width, height float64, colors BodyColors) Body {
	wheelW := width * 0.16
	wheelH := height * 0.2
	inset := wheelW * 0.6

	return Body{
		{Offset: core.Rect{X: 0, Y: height * 0.12, Width: wheelW, Height: wheelH}, Color: colors.Wheel},
		{Offset: core.Rect{X: width - wheelW, Y: height * 0.12, Width: wheelW, Height: wheelH}, Color: colors.Wheel},
		{Offset: core.Rect{X: 0, Y: height * 0.68, Width: wheelW, Height: wheelH}, Color: colors.Wheel},
		{Offset: core.Rect{X: width - wheelW, Y: height * 0.68, Width: wheelW, Height: wheelH}, Color: colors.Wheel},
		{Offset: core.Rect{X: inset, Y: 0, Width: width - 2*inset, Height: height}, Color: colors.Body},
		{Offset: core.Rect{X: width * 0.25, Y: height * 0.2, Width: width * 0.5, Height: height * 0.15}, Color: colors.Windshield},
	}
}

// Bounds returns the union of all part offsets
func (b Body) Bounds() core.Rect {
	if len(b) == 0 {
		return core.Rect{}
	}
	r := b[0].Offset
	for _, t := range b[1:] {
		r = r.Union(t.Offset)
	}
	return r
}

// Width returns the horizontal extent measured from the anchor
func (b Body) Width() float64 {
	return b.Bounds().Right()
}

// Height returns the vertical extent measured from the anchor
func (b Body) Height() float64 {
	return b.Bounds().Bottom()
}
