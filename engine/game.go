package engine

import (
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/lane-racer/components"
	"github.com/lixenwraith/lane-racer/constants"
	"github.com/lixenwraith/lane-racer/physics"
	"github.com/lixenwraith/lane-racer/score"
)

// Options wires the external collaborators, nil fields fall back to inert defaults
type Options struct {
	Surface Surface
	Keys    KeyInputFactory
	Driver  FrameDriver
	Clock   TimeProvider
	Scores  ScoreReporter

	// OnGameOver receives the run report once per finished run
	OnGameOver func(score.Outcome)
}

// Game owns the GameState and drives one simulation tick per frame
// All methods must be called from the single host loop goroutine
type Game struct {
	cfg Config

	surface    Surface
	keyFactory KeyInputFactory
	keys       KeyInput
	driver     FrameDriver
	clock      TimeProvider
	sched      *Scheduler
	scores     ScoreReporter
	onGameOver func(score.Outcome)

	rng   *rand.Rand
	state *GameState

	spawnTokens []CancelToken
	outcome     score.Outcome
	err         error
}

// NewGame validates cfg and creates an Idle game
func NewGame(cfg Config, opts Options) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		cfg:        cfg,
		surface:    opts.Surface,
		keyFactory: opts.Keys,
		driver:     opts.Driver,
		clock:      opts.Clock,
		scores:     opts.Scores,
		onGameOver: opts.OnGameOver,
	}
	if g.surface == nil {
		g.surface = nopSurface{}
	}
	if g.keyFactory == nil {
		g.keyFactory = func([]string) KeyInput { return noKeys{} }
	}
	if g.driver == nil {
		g.driver = nopDriver{}
	}
	if g.clock == nil {
		g.clock = NewMonotonicTimeProvider()
	}
	if g.scores == nil {
		g.scores = score.NewKeeper(nil)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	g.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	g.sched = NewScheduler(g.clock)
	g.state = newGameState(&g.cfg, 1)
	g.keys = g.keyFactory(constants.TrackedKeys)
	g.clearSurface()

	return g, nil
}

// Run starts the frame driver and both spawn tasks, valid only from Idle
func (g *Game) Run() error {
	if err := g.transition(PhaseRunning); err != nil {
		return err
	}

	gen := g.state.Generation
	g.spawnTokens = append(g.spawnTokens,
		g.sched.RunEveryCalculated(g.guarded(gen, g.spawnEnemy), g.spawnDelay(g.cfg.EnemySpawnConstant)),
		g.sched.RunEveryCalculated(g.guarded(gen, g.spawnDecoration), g.spawnDelay(g.cfg.DecorationSpawnConstant)),
	)
	g.driver.Start()
	return nil
}

// Reset discards the run and returns to Idle with a new generation
// Valid from Over and Failed; from Idle it re-initializes without a phase change
func (g *Game) Reset() error {
	switch g.state.Phase {
	case PhaseOver, PhaseFailed:
		if err := g.transition(PhaseIdle); err != nil {
			return err
		}
	case PhaseIdle:
	default:
		return &TransitionError{From: g.state.Phase, To: PhaseIdle}
	}

	g.cancelSpawns()
	g.state = newGameState(&g.cfg, g.state.Generation+1)
	g.keys = g.keyFactory(constants.TrackedKeys)
	g.outcome = score.Outcome{}
	g.err = nil
	g.clearSurface()
	return nil
}

// Tick advances the simulation by one frame, a no-op unless Running
func (g *Game) Tick() error {
	s := g.state
	if s.Phase != PhaseRunning {
		return nil
	}

	g.clearSurface()
	g.steer()

	speed := g.cfg.SpeedCurve.SpeedAt(s.DistanceTraveled)
	if err := physics.CheckSpeed(speed); err != nil {
		return g.fail(fmt.Errorf("distance %v: %w", s.DistanceTraveled, err))
	}
	s.Player.VerticalSpeed = speed

	physics.RelativeTo(s.Player).
		AddElements(physics.Cars(s.Enemies)...).
		AddElements(physics.Decorations(s.Decorations)...).
		MoveElements()

	s.DistanceTraveled += s.Player.VerticalSpeed
	s.Ticks++

	g.destroyOffscreenObjects()
	g.drawEverything()

	if physics.AnyCrashed(s.Enemies, s.Player, g.cfg.Collision) {
		g.gameOver()
	}
	return nil
}

// Advance fires spawn tasks due at now, errors are fatal configuration errors
func (g *Game) Advance(now time.Time) error {
	if err := g.sched.RunDue(now); err != nil {
		if g.state.Phase != PhaseRunning {
			return err
		}
		return g.fail(err)
	}
	return nil
}

// NextWake returns when the next spawn task is due
func (g *Game) NextWake() (time.Time, bool) {
	return g.sched.NextDue()
}

// State exposes the current generation for read-only host use
func (g *Game) State() *GameState {
	return g.state
}

// Phase returns the lifecycle phase
func (g *Game) Phase() Phase {
	return g.state.Phase
}

// Outcome returns the report of the last finished run of this generation
func (g *Game) Outcome() (score.Outcome, bool) {
	return g.outcome, g.state.Phase == PhaseOver
}

// Err returns the fatal error that moved the run to Failed
func (g *Game) Err() error {
	return g.err
}

// Config returns the validated configuration
func (g *Game) Config() Config {
	return g.cfg
}

func (g *Game) transition(to Phase) error {
	from := g.state.Phase
	if !CanTransition(from, to) {
		return &TransitionError{From: from, To: to}
	}
	g.state.Phase = to
	log.Printf("game: generation %d %s -> %s", g.state.Generation, from, to)
	return nil
}

// guarded wraps a spawn task so it only mutates the generation it was issued for
func (g *Game) guarded(gen uint64, task func()) func() {
	return func() {
		if g.state.Generation != gen || g.state.Phase != PhaseRunning {
			return
		}
		task()
	}
}

// spawnDelay derives the next spawn delay from the live player speed
func (g *Game) spawnDelay(constant float64) DelayFunc {
	return func() (time.Duration, error) {
		v := g.state.Player.VerticalSpeed
		if err := physics.CheckSpeed(v); err != nil {
			return 0, err
		}
		return time.Duration(constant / v * float64(time.Millisecond)), nil
	}
}

func (g *Game) spawnEnemy() {
	x := g.rng.Float64() * (g.cfg.MapWidth - g.cfg.CarWidth)
	g.spawnEnemyAt(x, -g.cfg.CarHeight)
}

func (g *Game) spawnEnemyAt(x, y float64) *components.Car {
	enemy := components.NewEnemyCar(x, y, g.cfg.MapWidth,
		components.NewCarBody(g.cfg.CarWidth, g.cfg.CarHeight, g.cfg.Palette.Enemy))
	g.state.Enemies = append(g.state.Enemies, enemy)
	return enemy
}

func (g *Game) spawnDecoration() {
	g.state.Decorations = append(g.state.Decorations,
		components.NewRoadMarking(g.cfg.MapWidth, g.cfg.MarkingWidth, g.cfg.MarkingHeight, g.cfg.Palette.Marking))
}

func (g *Game) steer() {
	p := g.state.Player
	if g.keys.KeyIsDown(constants.KeyLeft) {
		p.MoveLeft(g.cfg.LateralStep)
	}
	if g.keys.KeyIsDown(constants.KeyRight) {
		p.MoveRight(g.cfg.LateralStep)
	}
}

func (g *Game) destroyOffscreenObjects() {
	s := g.state
	s.Enemies = ActiveObjects(s.Enemies, g.cfg.MapHeight)
	s.Decorations = ActiveObjects(s.Decorations, g.cfg.MapHeight)
}

func (g *Game) drawEverything() {
	s := g.state
	for _, layer := range DrawOrder {
		switch layer {
		case LayerDecorations:
			for _, d := range s.Decorations {
				g.surface.DrawRect(d.Rect, d.Color)
			}
		case LayerPlayer:
			g.drawCar(s.Player)
		case LayerEnemies:
			for _, e := range s.Enemies {
				g.drawCar(e)
			}
		}
	}
}

func (g *Game) drawCar(c *components.Car) {
	for part := range c.PhysicalParts() {
		g.surface.DrawRect(part.Rect, part.Color)
	}
}

func (g *Game) clearSurface() {
	g.surface.Clear(g.cfg.Palette.Background)
}

func (g *Game) gameOver() {
	if err := g.transition(PhaseOver); err != nil {
		log.Printf("game: %v", err)
		return
	}
	g.halt()

	out, err := g.scores.Report(g.state.DistanceTraveled)
	if err != nil {
		log.Printf("game: score store: %v", err)
	}
	log.Printf("High score: %d", out.HighScore)

	g.outcome = out
	if g.onGameOver != nil {
		g.onGameOver(out)
	}
}

// fail ends the running generation on a fatal error and returns it
func (g *Game) fail(err error) error {
	if terr := g.transition(PhaseFailed); terr != nil {
		log.Printf("game: %v", terr)
	}
	g.halt()
	g.err = err
	log.Printf("game: generation %d failed: %v", g.state.Generation, err)
	return err
}

// halt stops the frame driver and cancels the spawn tasks of this run
func (g *Game) halt() {
	g.driver.Stop()
	g.cancelSpawns()
}

func (g *Game) cancelSpawns() {
	if len(g.spawnTokens) == 0 {
		return
	}
	n := g.sched.CancelAll(g.spawnTokens...)
	log.Printf("game: generation %d cancelled %d spawn task(s)", g.state.Generation, n)
	g.spawnTokens = g.spawnTokens[:0]
}
