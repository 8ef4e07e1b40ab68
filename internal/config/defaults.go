package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/racer.yaml
var defaultRacerYAML []byte

//go:embed defaults/bubble.yaml
var defaultBubbleYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: SnakeGrid{
			Cols: 32,
			Rows: 20,
		},
		Player: SnakePlayer{
			InitialLength:  3,
			MoveEveryTicks: 6,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 40,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// DefaultRacerConfig returns the default Racer configuration.
func DefaultRacerConfig() RacerConfig {
	return RacerConfig{
		Track: RacerTrack{
			Width:      76,
			Height:     22,
			StartX:     10,
			StartY:     11,
			StartAngle: 0,
			FinishY:    11,
			FinishX1:   0,
			FinishX2:   20,
			FinishDir:  "up",
		},
		Physics: RacerPhysics{
			Accel:      0.00030,
			BrakeAccel: 0.00045,
			MaxSpeed:   0.035,
			Friction:   0.0012,
			TurnRate:   0.0032,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type: "none",
			},
		},
	}
}

// DefaultBubbleConfig returns the default Bubble configuration.
func DefaultBubbleConfig() BubbleConfig {
	return BubbleConfig{
		Board: BubbleBoard{
			Cols:     14,
			Rows:     18,
			SeedRows: 5,
			Colors:   5,
		},
		Shooter: BubbleShooter{
			ShotSpeed: 0.030,
			ArcLimit:  1.25,
			AimSpeed:  0.004,
		},
		Timing: BubbleTiming{
			RowShiftMs: 15000,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 18000, // Ticks until max difficulty at 60 FPS
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}
