// Package config provides YAML-based configuration loading and difficulty
// management for the tilt game.
package config

// TiltConfig contains all configuration for the tilt game.
type TiltConfig struct {
	Plate      PlateConfig      `yaml:"plate"`
	Ball       BallConfig       `yaml:"ball"`
	Spawner    SpawnerConfig    `yaml:"spawner"`
	Rules      RulesConfig      `yaml:"rules"`
	Camera     CameraConfig     `yaml:"camera"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PlateConfig defines the plate geometry and tilt response.
type PlateConfig struct {
	HalfSize            float64 `yaml:"half_size"`
	Thickness           float64 `yaml:"thickness"`
	MaxTilt             float64 `yaml:"max_tilt"` // degrees
	SmoothTime          float64 `yaml:"smooth_time"`
	Radius              float64 `yaml:"radius"` // edge attenuation radius
	MinEdgeStrength     float64 `yaml:"min_edge_strength"`
	AttenuationExponent float64 `yaml:"attenuation_exponent"`
	ShiftScale          float64 `yaml:"shift_scale"`
	ScaleBlendTime      float64 `yaml:"scale_blend_time"`
	Deadzone            float64 `yaml:"deadzone"`
}

// BallConfig defines the ball's drift on the plate.
type BallConfig struct {
	Radius   float64 `yaml:"radius"`
	Gravity  float64 `yaml:"gravity"`
	Drag     float64 `yaml:"drag"` // fraction of velocity lost per second
	MaxSpeed float64 `yaml:"max_speed"`
}

// SpawnerConfig defines how items are scattered over the plate.
type SpawnerConfig struct {
	WallInset              float64     `yaml:"wall_inset"`
	YOffset                float64     `yaml:"y_offset"`
	MinSpacing             float64     `yaml:"min_spacing"`
	MaxAttemptsPerItem     int         `yaml:"max_attempts_per_item"`
	AvoidPlayerPadding     float64     `yaml:"avoid_player_padding"`
	HoleForceUp            bool        `yaml:"hole_force_up"`
	HoleRandomYaw          bool        `yaml:"hole_random_yaw"`
	HoleExtraSpacing       float64     `yaml:"hole_extra_spacing"`
	InheritSurfaceRotation bool        `yaml:"inherit_surface_rotation"`
	ProbeHeight            float64     `yaml:"probe_height"`
	ProbeDistance          float64     `yaml:"probe_distance"`
	ParentToPlate          bool        `yaml:"parent_to_plate"` // items follow the plate's tilt
	Pickups                ItemsConfig `yaml:"pickups"`
	Hazards                ItemsConfig `yaml:"hazards"`
	Holes                  ItemsConfig `yaml:"holes"`
}

// ItemsConfig is one category of placed items.
type ItemsConfig struct {
	Count     int              `yaml:"count"`
	Templates []TemplateConfig `yaml:"templates"`
}

// TemplateConfig describes one item template.
type TemplateConfig struct {
	Name     string     `yaml:"name"`
	Shape    string     `yaml:"shape"`  // "sphere", "box", "bounds" or empty
	Radius   float64    `yaml:"radius"` // sphere
	Size     [3]float64 `yaml:"size"`   // box size or bounds extents
	Scale    [3]float64 `yaml:"scale"`
	Rotation [3]float64 `yaml:"rotation"` // euler degrees
	Points   int        `yaml:"points"`   // pickups
	Penalty  int        `yaml:"penalty"`  // hazards
}

// RulesConfig defines win and lose conditions.
type RulesConfig struct {
	TargetScore          int     `yaml:"target_score"`
	WinOnClearBoard      bool    `yaml:"win_on_clear_board"`
	HazardTimePenalty    float64 `yaml:"hazard_time_penalty"`
	BestTimeKey          string  `yaml:"best_time_key"`
	HazardInvulnerable   float64 `yaml:"hazard_invulnerable"`
	GameOverAtZero       bool    `yaml:"game_over_at_zero"`
	DefaultHazardPenalty int     `yaml:"default_hazard_penalty"`
	FallY                float64 `yaml:"fall_y"`
}

// CameraConfig defines the shake and the opening zoom.
type CameraConfig struct {
	StartFOV     float64 `yaml:"start_fov"`
	TargetFOV    float64 `yaml:"target_fov"`
	ZoomDuration float64 `yaml:"zoom_duration"`
	ShakeScale   float64 `yaml:"shake_scale"` // screen cells per world unit of shake
}

// DifficultyConfig defines how layouts get harder as rounds are cleared.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "clears" or "none"
	MaxAt int    `yaml:"max_at"` // cleared rounds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	ExtraHazards     int     `yaml:"extra_hazards"`     // hazards added at max difficulty
	ExtraHoles       int     `yaml:"extra_holes"`       // holes added at max difficulty
	SpacingReduction float64 `yaml:"spacing_reduction"` // min spacing removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI name to a preset. Unknown names yield "".
func ParsePreset(name string) DifficultyPreset {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
