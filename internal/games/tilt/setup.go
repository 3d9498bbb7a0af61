package tilt

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tilt-arcade/internal/camera"
	"github.com/vovakirdan/tilt-arcade/internal/config"
	"github.com/vovakirdan/tilt-arcade/internal/core"
	"github.com/vovakirdan/tilt-arcade/internal/placement"
	"github.com/vovakirdan/tilt-arcade/internal/plate"
	"github.com/vovakirdan/tilt-arcade/internal/rules"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// LoadConfig loads the game configuration the way Reset does.
func LoadConfig() (config.TiltConfig, error) {
	cfg, err := config.LoadTilt(configPath)
	if err != nil {
		return config.DefaultTiltConfig(), err
	}
	if difficultyPreset != "" {
		config.ApplyTiltPreset(&cfg, difficultyPreset)
	}
	return cfg, nil
}

// SamplerConfig maps the spawner section onto the sampler tunables.
func SamplerConfig(cfg config.TiltConfig) placement.Config {
	s := cfg.Spawner
	return placement.Config{
		WallInset:              s.WallInset,
		YOffset:                s.YOffset,
		MinSpacing:             s.MinSpacing,
		MaxAttemptsPerItem:     s.MaxAttemptsPerItem,
		ActorPadding:           s.AvoidPlayerPadding,
		HoleForceUp:            s.HoleForceUp,
		HoleRandomYaw:          s.HoleRandomYaw,
		HoleExtraSpacing:       s.HoleExtraSpacing,
		InheritSurfaceRotation: s.InheritSurfaceRotation,
		ProbeHeight:            s.ProbeHeight,
		ProbeDistance:          s.ProbeDistance,
	}
}

func rulesConfig(cfg config.TiltConfig) rules.Config {
	r := cfg.Rules
	return rules.Config{
		TargetScore:          r.TargetScore,
		WinOnClearBoard:      r.WinOnClearBoard,
		HazardTimePenalty:    r.HazardTimePenalty,
		BestTimeKey:          r.BestTimeKey,
		HazardInvulnerable:   r.HazardInvulnerable,
		GameOverAtZero:       r.GameOverAtZero,
		DefaultHazardPenalty: r.DefaultHazardPenalty,
		FallY:                r.FallY,
	}
}

func controllerConfig(cfg config.TiltConfig) plate.Config {
	p := cfg.Plate
	return plate.Config{
		MaxTilt:             p.MaxTilt,
		SmoothTime:          p.SmoothTime,
		PlateRadius:         p.Radius,
		MinEdgeStrength:     p.MinEdgeStrength,
		AttenuationExponent: p.AttenuationExponent,
		ShiftScale:          p.ShiftScale,
		ScaleBlendTime:      p.ScaleBlendTime,
		Deadzone:            p.Deadzone,
	}
}

func zoomConfig(cfg config.TiltConfig) camera.ZoomConfig {
	return camera.ZoomConfig{
		StartFOV:  cfg.Camera.StartFOV,
		TargetFOV: cfg.Camera.TargetFOV,
		Duration:  cfg.Camera.ZoomDuration,
	}
}

// Template converts a configured template into a placement template.
func Template(tc config.TemplateConfig) placement.Template {
	t := placement.Template{Name: tc.Name}
	size := mgl64.Vec3(tc.Size)
	switch tc.Shape {
	case "sphere":
		t.Shape = placement.Sphere{Radius: tc.Radius}
	case "box":
		t.Shape = placement.Box{Size: size}
	case "bounds":
		t.Shape = placement.BoundingBox{Extents: size}
	}
	if tc.Scale != ([3]float64{}) {
		t.Scale = mgl64.Vec3(tc.Scale)
	}
	if tc.Rotation != ([3]float64{}) {
		t.Rotation = core.Euler(tc.Rotation[0], tc.Rotation[1], tc.Rotation[2])
	}
	return t
}

// Requests builds the placement requests for a board after clears won
// rounds, and the gameplay values of each template.
func Requests(cfg config.TiltConfig, diff *config.DifficultyManager, clears int) ([]placement.Request, map[itemKey]itemMeta) {
	meta := make(map[itemKey]itemMeta)
	build := func(c placement.Category, items config.ItemsConfig, count int) placement.Request {
		req := placement.Request{Category: c, Count: count}
		for _, tc := range items.Templates {
			req.Templates = append(req.Templates, Template(tc))
			meta[itemKey{c, tc.Name}] = itemMeta{points: tc.Points, penalty: tc.Penalty}
		}
		return req
	}

	s := cfg.Spawner
	hazards, holes := s.Hazards.Count, s.Holes.Count
	if diff != nil {
		hazards = diff.Hazards(hazards, clears)
		holes = diff.Holes(holes, clears)
	}
	return []placement.Request{
		build(placement.Collectible, s.Pickups, s.Pickups.Count),
		build(placement.Hazard, s.Hazards, hazards),
		build(placement.Hole, s.Holes, holes),
	}, meta
}
