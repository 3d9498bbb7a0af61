// Package tilt implements the tilt-ball game: roll a ball across a tilting
// plate to collect pickups while avoiding hazards and holes.
package tilt

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilt-arcade/internal/camera"
	"github.com/vovakirdan/tilt-arcade/internal/config"
	"github.com/vovakirdan/tilt-arcade/internal/core"
	"github.com/vovakirdan/tilt-arcade/internal/placement"
	"github.com/vovakirdan/tilt-arcade/internal/plate"
	"github.com/vovakirdan/tilt-arcade/internal/registry"
	"github.com/vovakirdan/tilt-arcade/internal/rules"
)

// Gameplay tuning that is not worth a config key.
const (
	holeCapture       = 0.7 // fraction of the hole radius the ball center must reach
	hazardRestitution = 0.5
)

// Game implements the tilt-ball game logic.
type Game struct {
	mode rules.Mode

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.TiltConfig
	difficulty *config.DifficultyManager
	clears     int // rounds won since the process started
	best       rules.BestTimeStore
	logger     *log.Logger

	// World
	board      *Board
	builtFor   int // clears the board was sized for
	plate      *Plate
	controller *plate.Controller
	ball       *Ball
	items      *Entities
	sampler    *placement.Sampler
	rng        *placement.RandSource

	// Round
	manager *rules.Manager
	shake   *camera.Shake
	zoom    *camera.Zoom
	paused  bool
	tick    uint64
	counted bool // clear already counted towards difficulty
}

// New creates a new tilt game in normal mode.
func New() *Game {
	return &Game{mode: rules.Normal}
}

// NewTimeTrial creates a new tilt game in time trial mode.
func NewTimeTrial() *Game {
	return &Game{mode: rules.TimeTrial}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == rules.TimeTrial {
		return "tilt_trial"
	}
	return "tilt"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == rules.TimeTrial {
		return "Tilt Ball (Time Trial)"
	}
	return "Tilt Ball"
}

// Description implements registry.Describer.
func (g *Game) Description() string {
	if g.mode == rules.TimeTrial {
		return "Clear every pickup as fast as you can"
	}
	return "Collect pickups, dodge hazards and holes"
}

// SetBestTimeStore implements registry.BestTimeAware.
func (g *Game) SetBestTimeStore(s rules.BestTimeStore) {
	g.best = s
}

// SetLogger sets the logger for the game and its sampler.
func (g *Game) SetLogger(l *log.Logger) {
	g.logger = l
}

// Mode returns the current mode.
func (g *Game) Mode() rules.Mode { return g.mode }

// Manager exposes the round state.
func (g *Game) Manager() *rules.Manager { return g.manager }

// Sampler exposes the item placer.
func (g *Game) Sampler() *placement.Sampler { return g.sampler }

// Reset builds a fresh board.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.logger == nil {
		g.logger = log.Default()
	}
	if g.best == nil {
		g.best = rules.NewMemoryBestTimes()
	}

	// Load game config
	cfg, err := LoadConfig()
	if err != nil {
		g.logger.Warn("using default tilt config", "error", err)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.rng = placement.NewRandSource(runtime.Seed)
	g.shake = camera.NewShake(runtime.Seed + 1)

	g.buildBoard()
	g.newRound()
	g.place()
}

// buildBoard lays out an empty board sized for the current clear count.
func (g *Game) buildBoard() {
	g.board = NewBoard(g.cfg, g.difficulty, g.clears, g.rng, g.logger)
	g.builtFor = g.clears
	g.plate, g.ball, g.items, g.sampler = g.board.Plate, g.board.Ball, g.board.Items, g.board.Sampler
	g.controller = plate.New(controllerConfig(g.cfg), g.plate.Center)
}

func (g *Game) place() {
	if _, err := g.board.Place(); err != nil {
		g.logger.Error("cannot place items", "error", err)
	}
}

// newRound resets everything but the placed items.
func (g *Game) newRound() {
	g.manager = rules.New(g.mode, rulesConfig(g.cfg),
		rules.WithBestTimes(g.best),
		rules.WithShaker(g.shake),
		rules.WithLogger(g.logger.WithPrefix("rules")),
	)
	g.sampler.SetRegistrar(g.manager)

	g.controller.Reset()
	g.plate.SetRotation(g.controller.Rotation())
	*g.ball = *NewBall(g.cfg.Ball.Radius)
	g.zoom = camera.NewZoom(zoomConfig(g.cfg))
	g.paused = false
	g.tick = 0
	g.counted = false
}

// restart reloads the board in place with a fresh layout. After a clear the
// board is rebuilt so the item mix follows the difficulty.
func (g *Game) restart() {
	if g.builtFor != g.clears && g.difficulty.IsEnabled() {
		g.buildBoard()
		g.newRound()
		g.place()
		return
	}

	g.newRound()
	if _, err := g.sampler.ClearAndRespawn(); err != nil {
		g.logger.Error("cannot respawn items", "error", err)
	}
}

// toggleMode flips between normal and time trial and reloads.
func (g *Game) toggleMode() {
	g.mode = g.mode.Toggle()
	g.Reset(g.runtime)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch {
	case in.Has(core.ActionToggleMode):
		g.toggleMode()
		return core.StepResult{State: g.State()}
	case in.Has(core.ActionRestart):
		g.restart()
		return core.StepResult{State: g.State()}
	case in.Has(core.ActionPause) && !g.manager.Ended():
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	dt := g.runtime.DeltaTime()
	anyInput := in.Any()
	g.manager.Tick(dt, anyInput)
	g.zoom.Update(dt, anyInput)

	// The board freezes once the round is over.
	if g.manager.Ended() {
		return core.StepResult{State: g.State()}
	}
	g.shake.Update(dt)

	g.controller.Update(plate.FromFrame(in), g.ball.Pos, dt)
	g.controller.FixedUpdate(dt)
	g.plate.SetRotation(g.controller.Rotation())

	g.ball.Step(dt, g.plate, g.cfg.Ball)
	g.checkTriggers()
	g.manager.CheckFall(g.ball.Pos.Y())
	g.tick++

	if g.manager.Won() && !g.counted {
		g.clears++
		g.counted = true
	}

	return core.StepResult{State: g.State()}
}

// checkTriggers resolves contacts between the ball and the items.
func (g *Game) checkTriggers() {
	for _, ent := range g.items.All() {
		if g.manager.Ended() {
			return
		}
		pos := g.items.WorldPos(ent)
		dist := core.PlanarDistance(g.ball.Pos, pos)
		reach := g.ball.Radius + ent.Item.Radius

		switch ent.Item.Category {
		case placement.Collectible:
			if dist < reach {
				g.manager.AddScore(ent.Points)
				g.manager.OnPickupConsumed()
				g.sampler.Release(ent.ID)
				g.items.Destroy(ent.ID)
			}

		case placement.Hazard:
			touching := dist < reach
			if touching && !ent.touching {
				g.manager.OnHazardHit(ent.Penalty)
				g.ball.Bounce(pos, reach, hazardRestitution)
			}
			ent.touching = touching

		case placement.Hole:
			if dist < ent.Item.Radius*holeCapture {
				g.ball.Falling = true
				g.manager.GameOver(rules.MsgHole)
			}
		}
	}
}

// State returns the current game state. Time trials report collected pickups
// as their score.
func (g *Game) State() core.GameState {
	score := g.manager.Score()
	if g.mode == rules.TimeTrial {
		remaining, total := g.manager.Remaining()
		score = total - remaining
	}
	return core.GameState{
		Score:    score,
		GameOver: g.manager.Ended(),
		Won:      g.manager.Won(),
		Paused:   g.paused,
	}
}

// Register the games
func init() {
	registry.Register("tilt", func() registry.Game {
		return New()
	})
	registry.Register("tilt_trial", func() registry.Game {
		return NewTimeTrial()
	})
}
