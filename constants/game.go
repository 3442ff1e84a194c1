package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the frame clock interval (~60 FPS), one tick per frame
	FrameUpdateInterval = 16 * time.Millisecond

	// KeyHoldWindow is how long a key press counts as held without a repeat
	KeyHoldWindow = 120 * time.Millisecond
)

// Field geometry in map units
const (
	MapWidth  = 400
	MapHeight = 600

	CarWidth  = 50
	CarHeight = 80

	// PlayerBottomMargin is the gap between the player car and the trailing edge
	PlayerBottomMargin = 20

	// LateralStep is the horizontal distance covered per tick while steering
	LateralStep = 5
)

// Spawn cadence numerators, delay = constant / verticalSpeed milliseconds
const (
	EnemySpawnConstant      = 5800
	DecorationSpawnConstant = 2000
)

// Speed curve: speed = SpeedBase + SpeedGain * distance/1000, capped at SpeedMax
const (
	SpeedBase = 4.0
	SpeedGain = 0.25
	SpeedMax  = 16.0
)

// ScoreDivisor converts distance traveled into score points
const ScoreDivisor = 1000

// Road marking geometry
const (
	MarkingWidth  = 6
	MarkingHeight = 40
)
