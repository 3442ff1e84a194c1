package physics

import (
	"errors"
	"fmt"
)

// ErrDegenerateSpeed signals a speed curve that reaches zero or negative speed
var ErrDegenerateSpeed = errors.New("degenerate speed")

// SpeedCurve maps cumulative distance traveled to player vertical speed
// Implementations must be monotonic non-decreasing in distance
type SpeedCurve interface {
	SpeedAt(distance float64) float64
}

// SpeedFunc adapts a plain function to SpeedCurve
type SpeedFunc func(distance float64) float64

// SpeedAt implements SpeedCurve
func (f SpeedFunc) SpeedAt(distance float64) float64 {
	return f(distance)
}

// LinearCurve grows by Gain per 1000 units of distance from Base, capped at Max
// Max of zero leaves the curve uncapped
type LinearCurve struct {
	Base float64
	Gain float64
	Max  float64
}

// SpeedAt implements SpeedCurve
func (c LinearCurve) SpeedAt(distance float64) float64 {
	if distance < 0 {
		distance = 0
	}
	v := c.Base + c.Gain*distance/1000
	if c.Max > 0 && v > c.Max {
		v = c.Max
	}
	return v
}

// Validate rejects curves that can yield a non-positive speed or decrease
func (c LinearCurve) Validate() error {
	if c.Base <= 0 {
		return fmt.Errorf("%w: base speed %v must be positive", ErrDegenerateSpeed, c.Base)
	}
	if c.Gain < 0 {
		return fmt.Errorf("%w: gain %v must not be negative", ErrDegenerateSpeed, c.Gain)
	}
	if c.Max != 0 && c.Max < c.Base {
		return fmt.Errorf("%w: cap %v below base %v", ErrDegenerateSpeed, c.Max, c.Base)
	}
	return nil
}

// CheckSpeed returns ErrDegenerateSpeed when v cannot drive the simulation
func CheckSpeed(v float64) error {
	if !(v > 0) {
		return fmt.Errorf("%w: vertical speed %v", ErrDegenerateSpeed, v)
	}
	return nil
}
