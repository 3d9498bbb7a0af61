package tilt

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tilt-arcade/internal/config"
	"github.com/vovakirdan/tilt-arcade/internal/placement"
)

func TestBoardPlace(t *testing.T) {
	cfg := config.DefaultTiltConfig()
	b := NewBoard(cfg, nil, 0, placement.NewRandSource(3), log.New(io.Discard))

	items, err := b.Place()
	if err != nil {
		t.Fatalf("Place: %v", err)
	}
	want := cfg.Spawner.Pickups.Count + cfg.Spawner.Hazards.Count + cfg.Spawner.Holes.Count
	if len(items) != want || b.Items.Len() != want {
		t.Fatalf("placed %d, live %d, want %d", len(items), b.Items.Len(), want)
	}

	// A second session replaces the first.
	if _, err := b.Place(); err != nil {
		t.Fatalf("Place: %v", err)
	}
	if b.Items.Len() != want {
		t.Errorf("live entities = %d after replacing, want %d", b.Items.Len(), want)
	}

	for _, ent := range b.Items.All() {
		if !ent.Parented {
			t.Fatal("items should follow the plate")
		}
		if ent.Item.Category == placement.Collectible && ent.Points != 1 {
			t.Errorf("%s points = %d, want 1", ent.Item.Template.Name, ent.Points)
		}
		if ent.Item.Category == placement.Hazard && ent.Penalty != 3 {
			t.Errorf("%s penalty = %d, want 3", ent.Item.Template.Name, ent.Penalty)
		}
	}
}

func TestBoardDifficulty(t *testing.T) {
	cfg := config.DefaultTiltConfig()
	diff := config.NewDifficultyManager(cfg.Difficulty)
	b := NewBoard(cfg, diff, cfg.Difficulty.Progression.MaxAt, placement.NewRandSource(3), log.New(io.Discard))

	counts := map[placement.Category]int{}
	for _, r := range b.Requests() {
		counts[r.Category] = r.Count
	}
	if counts[placement.Hazard] != 9 || counts[placement.Hole] != 4 {
		t.Errorf("hazards/holes at max level = %d/%d, want 9/4", counts[placement.Hazard], counts[placement.Hole])
	}
	if got := b.Sampler.Config().MinSpacing; got != cfg.Spawner.MinSpacing-0.15 {
		t.Errorf("MinSpacing = %v, want %v", got, cfg.Spawner.MinSpacing-0.15)
	}
}

func TestPlateProbe(t *testing.T) {
	p := NewPlate(5, 0.2)

	hit, ok := p.CastDown(mgl64.Vec3{1, 2, 1}, 5)
	if !ok || hit.Point.Y() != 0 {
		t.Errorf("CastDown = %+v, %v; want hit at y=0", hit, ok)
	}
	if _, ok := p.CastDown(mgl64.Vec3{6, 2, 0}, 5); ok {
		t.Error("probe outside the plate should miss")
	}
	if _, ok := p.CastDown(mgl64.Vec3{0, 2, 0}, 1); ok {
		t.Error("probe shorter than the drop should miss")
	}

	b := p.Bounds()
	if b.Min.X() != -5 || b.Max.X() != 5 || b.Max.Y() != 0 {
		t.Errorf("Bounds = %+v", b)
	}
}
