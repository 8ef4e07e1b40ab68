// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Grid       SnakeGrid        `yaml:"grid"`
	Player     SnakePlayer      `yaml:"player"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SnakeGrid defines the toroidal board extents.
type SnakeGrid struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// SnakePlayer defines snake spawn and pacing parameters.
type SnakePlayer struct {
	InitialLength  int `yaml:"initial_length"`
	MoveEveryTicks int `yaml:"move_every_ticks"`
}

// RacerConfig contains all configuration for the Racer game.
type RacerConfig struct {
	Track      RacerTrack       `yaml:"track"`
	Physics    RacerPhysics     `yaml:"physics"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RacerTrack defines track bounds, start pose and the finish segment.
type RacerTrack struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	StartX     float64 `yaml:"start_x"`
	StartY     float64 `yaml:"start_y"`
	StartAngle float64 `yaml:"start_angle"` // Radians, 0 points up
	FinishY    float64 `yaml:"finish_y"`
	FinishX1   float64 `yaml:"finish_x1"`
	FinishX2   float64 `yaml:"finish_x2"`
	FinishDir  string  `yaml:"finish_dir"` // Preferred crossing direction: "up" or "down"
}

// RacerPhysics defines kinematic tuning. All rates are per millisecond of
// simulated time so variable tick deltas integrate correctly.
type RacerPhysics struct {
	Accel      float64 `yaml:"accel"`       // Cells per ms^2 under throttle
	BrakeAccel float64 `yaml:"brake_accel"` // Cells per ms^2 under brake
	MaxSpeed   float64 `yaml:"max_speed"`   // Cells per ms
	Friction   float64 `yaml:"friction"`    // Fractional decay per ms
	TurnRate   float64 `yaml:"turn_rate"`   // Radians per ms
}

// BubbleConfig contains all configuration for the Bubble game.
type BubbleConfig struct {
	Board      BubbleBoard      `yaml:"board"`
	Shooter    BubbleShooter    `yaml:"shooter"`
	Timing     BubbleTiming     `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BubbleBoard defines board extents and initial seeding.
type BubbleBoard struct {
	Cols     int `yaml:"cols"`
	Rows     int `yaml:"rows"`
	SeedRows int `yaml:"seed_rows"` // Rows pre-filled at reset
	Colors   int `yaml:"colors"`    // Distinct bubble colors in play
}

// BubbleShooter defines projectile and aiming parameters.
type BubbleShooter struct {
	ShotSpeed float64 `yaml:"shot_speed"` // Cells per ms
	ArcLimit  float64 `yaml:"arc_limit"`  // Max aim deviation from vertical, radians
	AimSpeed  float64 `yaml:"aim_speed"`  // Aim smoothing rate, radians per ms
}

// BubbleTiming defines the difficulty escalation schedule.
type BubbleTiming struct {
	RowShiftMs float64 `yaml:"row_shift_ms"` // Simulated ms between row shifts
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // Multiplier added to speed at max difficulty
	GapReduction     int     `yaml:"gap_reduction"`     // Gap size reduction at max difficulty
	SpacingReduction int     `yaml:"spacing_reduction"` // Spacing reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

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

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
