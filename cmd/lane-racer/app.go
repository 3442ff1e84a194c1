package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lane-racer/constants"
	"github.com/lixenwraith/lane-racer/core"
	"github.com/lixenwraith/lane-racer/engine"
	"github.com/lixenwraith/lane-racer/input"
	"github.com/lixenwraith/lane-racer/render"
	"github.com/lixenwraith/lane-racer/score"
)

// soundPlayer is the slice of audio.SoundManager the host loop drives
type soundPlayer interface {
	Play(types ...core.SoundType) bool
	StartHum()
	StopHum()
	SetSpeed(speed float64)
	ToggleMute() bool
	Muted() bool
}

// frameSource is a frame driver the host loop can select on
type frameSource interface {
	engine.FrameDriver
	C() <-chan time.Time
}

// app owns the terminal, the game and the single goroutine that touches both
type app struct {
	screen   tcell.Screen
	surface  *render.TerminalSurface
	keyboard *input.Keyboard
	driver   frameSource
	clock    engine.TimeProvider
	keeper   *score.Keeper
	sound    soundPlayer
	game     *engine.Game
}

func newApp(screen tcell.Screen, cfg engine.Config, keeper *score.Keeper, sound soundPlayer, clock engine.TimeProvider) (*app, error) {
	a := &app{
		screen:   screen,
		surface:  render.NewTerminalSurface(screen, cfg.MapWidth, cfg.MapHeight),
		keyboard: input.NewKeyboard(constants.KeyHoldWindow, clock),
		driver:   engine.NewTickerDriver(constants.FrameUpdateInterval),
		clock:    clock,
		keeper:   keeper,
		sound:    sound,
	}

	game, err := engine.NewGame(cfg, engine.Options{
		Surface:    a.surface,
		Keys:       a.keyboard.Subscribe,
		Driver:     a.driver,
		Clock:      clock,
		Scores:     keeper,
		OnGameOver: a.onGameOver,
	})
	if err != nil {
		return nil, err
	}
	a.game = game
	return a, nil
}

// run is the host loop: terminal events, frames and spawn wake-ups are serialized here
// Returns nil on quit, or the first fatal simulation error
func (a *app) run() error {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)

	// Input polling goroutine, PollEvent returns nil once the screen is finalized
	core.Go(func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	})

	wake := time.NewTimer(time.Hour)
	defer wake.Stop()

	a.present()
	for {
		var wakeC <-chan time.Time
		if next, ok := a.game.NextWake(); ok {
			wake.Reset(max(next.Sub(a.clock.Now()), 0))
			wakeC = wake.C
		}

		select {
		case ev := <-events:
			if !a.handleEvent(ev) {
				return nil
			}

		case <-a.driver.C():
			if err := a.frame(); err != nil {
				return err
			}

		case <-wakeC:
			if err := a.game.Advance(a.clock.Now()); err != nil {
				return err
			}
		}
	}
}

// handleEvent applies one terminal event, returns false to quit
func (a *app) handleEvent(ev tcell.Event) bool {
	switch intent := a.keyboard.HandleEvent(ev); intent.Type {
	case input.IntentQuit:
		log.Printf("app: quit in phase %s", a.game.Phase())
		return false
	case input.IntentStart:
		a.start()
	case input.IntentToggleMute:
		muted := a.sound.ToggleMute()
		log.Printf("app: muted=%v", muted)
		a.present()
	case input.IntentResize:
		a.surface.Resize()
		a.screen.Sync()
		a.present()
	}
	return true
}

// start runs from Idle, or resets and runs again after game over
func (a *app) start() {
	switch a.game.Phase() {
	case engine.PhaseRunning:
		return
	case engine.PhaseOver:
		if err := a.game.Reset(); err != nil {
			log.Printf("app: reset: %v", err)
			return
		}
	}

	if err := a.game.Run(); err != nil {
		log.Printf("app: run: %v", err)
		return
	}
	a.sound.Play(core.SoundStart)
	a.sound.SetSpeed(a.game.State().Player.VerticalSpeed)
	a.sound.StartHum()
	a.present()
}

// frame advances the simulation by one tick and repaints
func (a *app) frame() error {
	if err := a.game.Tick(); err != nil {
		return err
	}
	a.sound.SetSpeed(a.game.State().Player.VerticalSpeed)
	a.present()
	return nil
}

func (a *app) onGameOver(out score.Outcome) {
	a.sound.StopHum()
	if out.IsNewHighScore {
		a.sound.Play(core.SoundCrash, core.SoundHighScore)
	} else {
		a.sound.Play(core.SoundCrash)
	}
}

// status assembles the HUD and banner for the current phase
func (a *app) status() render.Status {
	s := a.game.State()
	st := render.Status{
		Score:    s.Score(),
		Speed:    s.Player.VerticalSpeed,
		Distance: s.DistanceTraveled,
		Muted:    a.sound.Muted(),
	}
	st.HighScore, st.HasHighScore = a.keeper.HighScore()

	switch a.game.Phase() {
	case engine.PhaseIdle:
		st.Hint = "[Enter] start  [q] quit"
		st.Banner = "LANE RACER\n\n←/→ or a/d to steer\nPress Enter to start"
	case engine.PhaseRunning:
		st.Hint = "[←/→] steer  [m] mute  [q] quit"
	case engine.PhaseOver:
		out, _ := a.game.Outcome()
		st.Hint = "[Enter] restart  [q] quit"
		st.Banner = out.Message() + "\n\nPress Enter to restart"
	}
	return st
}

func (a *app) present() {
	a.surface.Present(a.status())
}
