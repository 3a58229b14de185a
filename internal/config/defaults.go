package config

import (
	_ "embed"
)

//go:embed defaults/pacmaze.yaml
var defaultYAML []byte

// DefaultConfig returns the default gameplay configuration.
func DefaultConfig() Config {
	return Config{
		Movement: MovementConfig{
			PlayerSpeed: 180,
			GhostSpeed:  180,
		},
		Frightened: FrightenedConfig{
			Duration:       10,
			BlinkThreshold: 3,
			BlinkInterval:  0.3,
		},
		Scoring: ScoringConfig{
			Dot:            10,
			PowerUp:        50,
			GhostBase:      200,
			GhostMax:       1600,
			ExtraLifeScore: 10000,
		},
		Gameplay: GameplayConfig{
			Lives: 3,
		},
		Animation: AnimationConfig{
			FrameInterval:      0.06,
			StageFlashDuration: 2.0,
			StageFlashInterval: 0.3,
		},
	}
}
