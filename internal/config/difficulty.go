package config

import "math"

// DifficultyManager scales layouts by difficulty level.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty level (0.0 to 1.0) after clears won rounds.
func (d *DifficultyManager) Level(clears int) float64 {
	if !d.IsEnabled() || d.cfg.Progression.Type != "clears" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	progress := clampF(float64(clears)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Hazards returns the hazard count for the level reached after clears.
func (d *DifficultyManager) Hazards(base, clears int) int {
	return base + int(math.Round(d.Level(clears)*float64(d.cfg.Scaling.ExtraHazards)))
}

// Holes returns the hole count for the level reached after clears.
func (d *DifficultyManager) Holes(base, clears int) int {
	return base + int(math.Round(d.Level(clears)*float64(d.cfg.Scaling.ExtraHoles)))
}

// Spacing returns the minimum item spacing for the level reached after clears.
func (d *DifficultyManager) Spacing(base float64, clears int) float64 {
	result := base - d.Level(clears)*d.cfg.Scaling.SpacingReduction
	if result < 0.05 { // Keep items visibly apart
		result = 0.05
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
