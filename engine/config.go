package engine

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/lane-racer/components"
	"github.com/lixenwraith/lane-racer/constants"
	"github.com/lixenwraith/lane-racer/core"
	"github.com/lixenwraith/lane-racer/physics"
)

// ErrInvalidConfig is wrapped by every geometry or cadence validation failure
var ErrInvalidConfig = errors.New("invalid game config")

// Palette holds every color the simulation hands to the surface
type Palette struct {
	Background core.RGB
	Marking    core.RGB
	Player     components.BodyColors
	Enemy      components.BodyColors
}

// Config is the simulation configuration, all lengths in map units
type Config struct {
	MapWidth, MapHeight float64
	CarWidth, CarHeight float64
	PlayerBottomMargin  float64
	LateralStep         float64

	MarkingWidth, MarkingHeight float64

	// Spawn delay numerators in milliseconds times speed
	EnemySpawnConstant      float64
	DecorationSpawnConstant float64

	SpeedCurve physics.SpeedCurve
	Collision  physics.CollisionMode
	Palette    Palette

	// Seed for enemy lateral placement, zero picks a random seed
	Seed uint64
}

// DefaultPalette returns the stock colors
func DefaultPalette() Palette {
	wheel := core.MustParseHex(constants.WheelColor)
	windshield := core.MustParseHex(constants.WindshieldColor)
	return Palette{
		Background: core.MustParseHex(constants.BackgroundColor),
		Marking:    core.MustParseHex(constants.MarkingColor),
		Player:     components.BodyColors{Body: core.MustParseHex(constants.PlayerBodyColor), Windshield: windshield, Wheel: wheel},
		Enemy:      components.BodyColors{Body: core.MustParseHex(constants.EnemyBodyColor), Windshield: windshield, Wheel: wheel},
	}
}

// DefaultConfig returns the stock field and cadence
func DefaultConfig() Config {
	return Config{
		MapWidth:                constants.MapWidth,
		MapHeight:               constants.MapHeight,
		CarWidth:                constants.CarWidth,
		CarHeight:               constants.CarHeight,
		PlayerBottomMargin:      constants.PlayerBottomMargin,
		LateralStep:             constants.LateralStep,
		MarkingWidth:            constants.MarkingWidth,
		MarkingHeight:           constants.MarkingHeight,
		EnemySpawnConstant:      constants.EnemySpawnConstant,
		DecorationSpawnConstant: constants.DecorationSpawnConstant,
		SpeedCurve: physics.LinearCurve{
			Base: constants.SpeedBase,
			Gain: constants.SpeedGain,
			Max:  constants.SpeedMax,
		},
		Collision: physics.CollisionBounds,
		Palette:   DefaultPalette(),
	}
}

// Validate checks geometry, cadence and the speed curve at distance zero
func (c *Config) Validate() error {
	switch {
	case c.MapWidth <= 0 || c.MapHeight <= 0:
		return fmt.Errorf("%w: map %vx%v", ErrInvalidConfig, c.MapWidth, c.MapHeight)
	case c.CarWidth <= 0 || c.CarHeight <= 0:
		return fmt.Errorf("%w: car %vx%v", ErrInvalidConfig, c.CarWidth, c.CarHeight)
	case c.CarWidth >= c.MapWidth:
		return fmt.Errorf("%w: car width %v leaves no room in map width %v", ErrInvalidConfig, c.CarWidth, c.MapWidth)
	case c.CarHeight+c.PlayerBottomMargin > c.MapHeight:
		return fmt.Errorf("%w: car height %v does not fit map height %v", ErrInvalidConfig, c.CarHeight, c.MapHeight)
	case c.LateralStep < 0:
		return fmt.Errorf("%w: lateral step %v", ErrInvalidConfig, c.LateralStep)
	case c.MarkingWidth <= 0 || c.MarkingHeight <= 0:
		return fmt.Errorf("%w: marking %vx%v", ErrInvalidConfig, c.MarkingWidth, c.MarkingHeight)
	case c.EnemySpawnConstant <= 0 || c.DecorationSpawnConstant <= 0:
		return fmt.Errorf("%w: spawn constants %v/%v must be positive", ErrInvalidConfig,
			c.EnemySpawnConstant, c.DecorationSpawnConstant)
	case c.SpeedCurve == nil:
		return fmt.Errorf("%w: no speed curve", ErrInvalidConfig)
	}

	if v, ok := c.SpeedCurve.(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return physics.CheckSpeed(c.SpeedCurve.SpeedAt(0))
}

// PlayerStartX centers the player car
func (c *Config) PlayerStartX() float64 {
	return (c.MapWidth - c.CarWidth) / 2
}

// PlayerStartY places the player above the trailing edge
func (c *Config) PlayerStartY() float64 {
	return c.MapHeight - c.CarHeight - c.PlayerBottomMargin
}
