package tilt

import (
	"fmt"
	"hash/fnv"

	"github.com/vovakirdan/tilt-arcade/internal/placement"
)

// GameStateType represents the current round state.
type GameStateType string

const (
	StateIntro    GameStateType = "intro"
	StatePlaying  GameStateType = "playing"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
	StateWin      GameStateType = "win"
)

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Mode      string
	Score     int
	Elapsed   float64
	Remaining int
	Pickups   int
	Hazards   int
	Holes     int
	Fallbacks int
	BallX     float64
	BallZ     float64
	TiltX     float64
	TiltZ     float64
	Layout    uint64 // hash of the item positions
	State     GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.manager.Won():
		state = StateWin
	case g.manager.Ended():
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case !g.manager.Started():
		state = StateIntro
	}

	remaining, _ := g.manager.Remaining()
	e := g.controller.Euler()
	return Snapshot{
		Tick:      g.tick,
		Mode:      g.mode.String(),
		Score:     g.manager.Score(),
		Elapsed:   g.manager.Elapsed(),
		Remaining: remaining,
		Pickups:   g.items.Count(placement.Collectible),
		Hazards:   g.items.Count(placement.Hazard),
		Holes:     g.items.Count(placement.Hole),
		Fallbacks: placement.Total(g.sampler.Stats().Fallbacks),
		BallX:     g.ball.Pos.X(),
		BallZ:     g.ball.Pos.Z(),
		TiltX:     e.X(),
		TiltZ:     e.Z(),
		Layout:    layoutHash(g.items.All()),
		State:     state,
	}
}

func layoutHash(ents []*Entity) uint64 {
	h := fnv.New64a()
	for _, ent := range ents {
		p := ent.Item.Position
		fmt.Fprintf(h, "%d:%s:%.6f,%.6f,%.6f;", ent.Item.Category, ent.Item.Template.Name, p.X(), p.Y(), p.Z())
	}
	return h.Sum64()
}
