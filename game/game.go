package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Game is the simulation driver. Each tick it advances the ship, then the
// spark field, then applies the frame's control input, in that order, so
// Draw always sees a fully advanced, consistent state. Everything is owned
// and mutated by the driver alone; there is no concurrency.
type Game struct {
	cfg      Config
	log      *zap.Logger
	clock    Clock
	input    InputProvider
	ship     *Ship
	sparks   *SparkField
	renderer *Renderer

	lastTick float64
	started  bool
	tankDry  bool // fuel exhaustion already logged
}

// NewGame wires a game on the wall clock, keyboard input, and a
// time-seeded random source.
func NewGame(cfg Config, logger *zap.Logger) *Game {
	g := newSim(cfg, logger, newWallClock(), KeyboardInput{},
		rand.New(rand.NewSource(time.Now().UnixNano())))
	g.renderer = NewRenderer(cfg, logger)
	return g
}

// newSim builds the headless simulation core. Tests inject a manual clock,
// scripted input, and a seeded random source here; no renderer is attached.
func newSim(cfg Config, logger *zap.Logger, clock Clock, input InputProvider, rng *rand.Rand) *Game {
	return &Game{
		cfg:    cfg,
		log:    logger,
		clock:  clock,
		input:  input,
		ship:   NewShip(cfg),
		sparks: NewSparkField(cfg, rng),
	}
}

// Update runs one tick. The first call only primes the tick timestamp; wall
// time elapsed beyond MaxDeltaTime is dropped so a frame hitch cannot blow
// up the integration.
func (g *Game) Update() error {
	now := g.clock.Now()
	if !g.started {
		g.started = true
		g.lastTick = now
		return nil
	}
	dt := now - g.lastTick
	g.lastTick = now
	if dt > g.cfg.MaxDeltaTime {
		dt = g.cfg.MaxDeltaTime
	}
	return g.step(dt, now)
}

// step advances the simulation by dt. Factored out of Update so tests can
// drive exact time steps.
func (g *Game) step(dt, now float64) error {
	if err := g.ship.Advance(dt, now, g.sparks); err != nil {
		return fmt.Errorf("ship advance: %w", err)
	}
	if err := g.sparks.Advance(dt, now); err != nil {
		return fmt.Errorf("spark advance: %w", err)
	}

	steps := g.input.ThrottleSteps()
	for ; steps > 0; steps-- {
		g.ship.IncreaseThrottle()
	}
	for ; steps < 0; steps++ {
		g.ship.DecreaseThrottle()
	}
	g.ship.SetRotation(g.input.Rotation())

	if g.ship.Fuel == 0 && !g.tankDry {
		g.tankDry = true
		g.log.Info("fuel exhausted",
			zap.Float64("sim_time", now),
			zap.Float64("altitude", g.ship.Pos.Y),
			zap.Float64("speed", g.ship.Vel.Magnitude))
	}
	return nil
}

// Draw renders the current state. The renderer is nil only in headless
// tests, which never call Draw.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.ship, g.sparks)
}

// Layout reports the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.ScreenWidth, g.cfg.ScreenHeight
}
