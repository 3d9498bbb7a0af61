package tilt

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilt-arcade/internal/config"
	"github.com/vovakirdan/tilt-arcade/internal/placement"
)

// Board is a level plate with its ball and the items placed on it. It has no
// round rules, so it can be laid out without playing.
type Board struct {
	Plate    *Plate
	Ball     *Ball
	Items    *Entities
	Sampler  *placement.Sampler
	requests []placement.Request
}

// NewBoard wires a plate, a ball at its center and an item sink to a sampler
// configured from cfg. The item mix grows with clears according to diff,
// which may be nil.
func NewBoard(cfg config.TiltConfig, diff *config.DifficultyManager, clears int, rnd placement.Random, logger *log.Logger) *Board {
	if logger == nil {
		logger = log.Default()
	}

	b := &Board{
		Plate: NewPlate(cfg.Plate.HalfSize, cfg.Plate.Thickness),
		Ball:  NewBall(cfg.Ball.Radius),
	}

	requests, meta := Requests(cfg, diff, clears)
	b.requests = requests
	b.Items = NewEntities(b.Plate, cfg.Spawner.ParentToPlate, meta)

	scfg := SamplerConfig(cfg)
	if diff != nil {
		scfg.MinSpacing = diff.Spacing(scfg.MinSpacing, clears)
	}
	b.Sampler = placement.New(scfg, placement.Deps{
		Surface: b.Plate,
		Probe:   b.Plate,
		Random:  rnd,
		Sink:    b.Items,
		Actor:   b.Ball,
	}, placement.WithLogger(logger.WithPrefix("placement")))
	return b
}

// Requests returns what the board asks the sampler for.
func (b *Board) Requests() []placement.Request {
	return b.requests
}

// Place starts a new placement session.
func (b *Board) Place() ([]placement.PlacedItem, error) {
	return b.Sampler.PlaceAll(b.requests)
}
