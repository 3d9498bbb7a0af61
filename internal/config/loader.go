package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTilt loads the tilt game configuration.
// Search order: customPath -> ~/.arcade/configs/tilt.yaml -> ./configs/tilt.yaml -> embedded default
//
// Files are decoded over DefaultTiltConfig, so a partial file only overrides
// the keys it names.
func LoadTilt(customPath string) (TiltConfig, error) {
	cfg := DefaultTiltConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("tilt.yaml"); userCfgPath != "" {
		if c, ok := decodeFile(userCfgPath); ok {
			return c, nil
		}
	}

	// Try local configs directory
	if c, ok := decodeFile(filepath.Join("configs", "tilt.yaml")); ok {
		return c, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultTiltYAML, &cfg); err != nil {
		return DefaultTiltConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decodeFile reads an optional config file. Unreadable, malformed or invalid
// files are skipped.
func decodeFile(path string) (TiltConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TiltConfig{}, false
	}
	cfg := DefaultTiltConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return TiltConfig{}, false
	}
	if cfg.Validate() != nil {
		return TiltConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate rejects values the game cannot run with.
func (c TiltConfig) Validate() error {
	switch {
	case c.Plate.HalfSize <= 0:
		return fmt.Errorf("plate.half_size must be positive, got %v", c.Plate.HalfSize)
	case c.Ball.Radius <= 0:
		return fmt.Errorf("ball.radius must be positive, got %v", c.Ball.Radius)
	case c.Spawner.MaxAttemptsPerItem < 0:
		return fmt.Errorf("spawner.max_attempts_per_item must not be negative, got %d", c.Spawner.MaxAttemptsPerItem)
	}
	for name, items := range map[string]ItemsConfig{
		"pickups": c.Spawner.Pickups,
		"hazards": c.Spawner.Hazards,
		"holes":   c.Spawner.Holes,
	} {
		for _, t := range items.Templates {
			switch t.Shape {
			case "", "sphere", "box", "bounds":
			default:
				return fmt.Errorf("spawner.%s: template %q has unknown shape %q", name, t.Name, t.Shape)
			}
		}
	}
	return nil
}

// ApplyTiltPreset modifies the config based on a difficulty preset.
func ApplyTiltPreset(cfg *TiltConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust layout and penalties based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Spawner.Hazards.Count = 3
		cfg.Spawner.Holes.Count = 1
		cfg.Rules.DefaultHazardPenalty = 2
		cfg.Rules.HazardTimePenalty = 1
	case DifficultyHard:
		cfg.Spawner.Hazards.Count = 7
		cfg.Spawner.Holes.Count = 3
		cfg.Rules.DefaultHazardPenalty = 4
		cfg.Rules.HazardInvulnerable = 0.5
		cfg.Rules.HazardTimePenalty = 3
	default:
		return
	}

	// Hazard templates carry their own penalty
	templates := make([]TemplateConfig, len(cfg.Spawner.Hazards.Templates))
	for i, t := range cfg.Spawner.Hazards.Templates {
		t.Penalty = cfg.Rules.DefaultHazardPenalty
		templates[i] = t
	}
	cfg.Spawner.Hazards.Templates = templates
}
