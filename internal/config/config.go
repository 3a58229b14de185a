// Package config provides YAML-based game configuration loading for the
// maze game: movement speeds, timers and scoring values.
package config

// Config contains all tunable gameplay parameters.
type Config struct {
	Movement   MovementConfig   `yaml:"movement"`
	Frightened FrightenedConfig `yaml:"frightened"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Animation  AnimationConfig  `yaml:"animation"`
}

// MovementConfig defines actor speeds in pixels per second.
type MovementConfig struct {
	PlayerSpeed float64 `yaml:"player_speed"`
	GhostSpeed  float64 `yaml:"ghost_speed"`
}

// FrightenedConfig defines the power-up scare window.
type FrightenedConfig struct {
	Duration       float64 `yaml:"duration"`        // seconds ghosts stay frightened
	BlinkThreshold float64 `yaml:"blink_threshold"` // remaining seconds at which blinking starts
	BlinkInterval  float64 `yaml:"blink_interval"`  // seconds between blink toggles
}

// ScoringConfig defines point values.
type ScoringConfig struct {
	Dot            int `yaml:"dot"`
	PowerUp        int `yaml:"power_up"`
	GhostBase      int `yaml:"ghost_base"`       // first ghost eaten per power-up
	GhostMax       int `yaml:"ghost_max"`        // cap for the doubling streak
	ExtraLifeScore int `yaml:"extra_life_score"` // one-time bonus life threshold
}

// GameplayConfig defines run structure parameters.
type GameplayConfig struct {
	Lives int `yaml:"lives"`
}

// AnimationConfig defines cosmetic timing.
type AnimationConfig struct {
	FrameInterval      float64 `yaml:"frame_interval"`       // walk/death animation frame advance
	StageFlashDuration float64 `yaml:"stage_flash_duration"` // length of the stage-complete flash
	StageFlashInterval float64 `yaml:"stage_flash_interval"` // color toggle period during the flash
}
