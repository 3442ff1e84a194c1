package engine

import (
	"github.com/lixenwraith/lane-racer/core"
	"github.com/lixenwraith/lane-racer/score"
)

// Surface is the drawing target, the core never reads pixels back
type Surface interface {
	DrawRect(r core.Rect, color core.RGB)
	Clear(color core.RGB)
	Width() int
	Height() int
}

// KeyInput answers whether a tracked key is currently held
type KeyInput interface {
	KeyIsDown(key string) bool
}

// KeyInputFactory subscribes a fresh key input over the tracked key names
type KeyInputFactory func(tracked []string) KeyInput

// FrameDriver is the external frame clock, each frame calls Game.Tick once
type FrameDriver interface {
	Start()
	Stop()
}

// ScoreReporter scores a finished run, *score.Keeper satisfies it
type ScoreReporter interface {
	Report(distance float64) (score.Outcome, error)
}

// Layer names a z-order slot, drawn lowest first
type Layer int

const (
	LayerDecorations Layer = iota
	LayerPlayer
	LayerEnemies
)

// DrawOrder is the fixed z-order: decorations under the player, player under enemies
var DrawOrder = [...]Layer{LayerDecorations, LayerPlayer, LayerEnemies}

type nopSurface struct{}

func (nopSurface) DrawRect(core.Rect, core.RGB) {}
func (nopSurface) Clear(core.RGB)               {}
func (nopSurface) Width() int                   { return 0 }
func (nopSurface) Height() int                  { return 0 }

type noKeys struct{}

func (noKeys) KeyIsDown(string) bool { return false }

type nopDriver struct{}

func (nopDriver) Start() {}
func (nopDriver) Stop()  {}
