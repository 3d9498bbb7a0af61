package config

import (
	_ "embed"
)

//go:embed defaults/tilt.yaml
var defaultTiltYAML []byte

// DefaultTiltConfig returns the default tilt game configuration.
func DefaultTiltConfig() TiltConfig {
	return TiltConfig{
		Plate: PlateConfig{
			HalfSize:            5,
			Thickness:           0.2,
			MaxTilt:             15,
			SmoothTime:          0.06,
			Radius:              5,
			MinEdgeStrength:     0.4,
			AttenuationExponent: 2,
			ShiftScale:          0.4,
			ScaleBlendTime:      0.18,
			Deadzone:            0.01,
		},
		Ball: BallConfig{
			Radius:   0.5,
			Gravity:  9.81,
			Drag:     0.6,
			MaxSpeed: 8,
		},
		Spawner: SpawnerConfig{
			WallInset:              0.6,
			YOffset:                0.01,
			MinSpacing:             0.3,
			MaxAttemptsPerItem:     40,
			AvoidPlayerPadding:     0.35,
			HoleForceUp:            true,
			HoleRandomYaw:          true,
			HoleExtraSpacing:       0.15,
			InheritSurfaceRotation: true,
			ProbeHeight:            2,
			ProbeDistance:          5,
			ParentToPlate:          true,
			Pickups: ItemsConfig{
				Count: 20,
				Templates: []TemplateConfig{
					{Name: "coin", Shape: "sphere", Radius: 0.25, Points: 1},
				},
			},
			Hazards: ItemsConfig{
				Count: 5,
				Templates: []TemplateConfig{
					{Name: "spike", Shape: "box", Size: [3]float64{0.6, 0.6, 0.6}, Penalty: 3},
				},
			},
			Holes: ItemsConfig{
				Count: 2,
				Templates: []TemplateConfig{
					{Name: "hole", Shape: "box", Size: [3]float64{1, 1, 0.02}},
				},
			},
		},
		Rules: RulesConfig{
			TargetScore:          20,
			WinOnClearBoard:      true,
			HazardTimePenalty:    2,
			BestTimeKey:          "BestTime_01",
			HazardInvulnerable:   1,
			DefaultHazardPenalty: 3,
			FallY:                -5,
		},
		Camera: CameraConfig{
			StartFOV:     80,
			TargetFOV:    60,
			ZoomDuration: 1.5,
			ShakeScale:   6,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "clears",
				MaxAt: 5,
			},
			Scaling: ScalingConfig{
				ExtraHazards:     4,
				ExtraHoles:       2,
				SpacingReduction: 0.15,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "tilt", "tilt_trial":
		return defaultTiltYAML
	default:
		return nil
	}
}
