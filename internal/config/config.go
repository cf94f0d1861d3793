// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

import (
	"errors"
	"fmt"
	"time"
)

// FroggerConfig contains all tunable parameters of the crossing game.
// Board geometry is fixed and lives in the game package; everything here may
// be overridden from YAML.
type FroggerConfig struct {
	Enemies    FroggerEnemies   `yaml:"enemies"`
	Hitbox     FroggerHitbox    `yaml:"hitbox"`
	Gems       FroggerGems      `yaml:"gems"`
	Timing     FroggerTiming    `yaml:"timing"`
	Audio      FroggerAudio     `yaml:"audio"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FroggerEnemies defines lane bug parameters.
type FroggerEnemies struct {
	MinSpeed float64 `yaml:"min_speed"` // Pixels per second, inclusive
	MaxSpeed float64 `yaml:"max_speed"` // Pixels per second, exclusive
}

// FroggerHitbox defines how forgiving collision boxes are.
type FroggerHitbox struct {
	EnemyPadding      float64 `yaml:"enemy_padding"`
	PlayerSidePadding float64 `yaml:"player_side_padding"`
}

// FroggerGems defines point values per gem color.
type FroggerGems struct {
	Green  int `yaml:"green"`
	Blue   int `yaml:"blue"`
	Orange int `yaml:"orange"`
}

// FroggerTiming defines screen pacing.
type FroggerTiming struct {
	WelcomeDelay time.Duration `yaml:"welcome_delay"` // Pause after intro text completes
	TypingSpeed  float64       `yaml:"typing_speed"`  // Intro characters revealed per second
}

// FroggerAudio defines sound settings.
type FroggerAudio struct {
	Muted      bool    `yaml:"muted"`
	MoveVolume float64 `yaml:"move_volume"` // Gain of the movement cue, 1.0 = unchanged
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level" or "none"
	MaxAt int    `yaml:"max_at"` // Game level at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to the speed factor at max difficulty
}

// Validate checks that the configuration can drive a game.
func (c FroggerConfig) Validate() error {
	var errs []error
	if c.Enemies.MinSpeed <= 0 {
		errs = append(errs, fmt.Errorf("enemies.min_speed must be positive, got %v", c.Enemies.MinSpeed))
	}
	if c.Enemies.MaxSpeed <= c.Enemies.MinSpeed {
		errs = append(errs, fmt.Errorf("enemies.max_speed (%v) must exceed min_speed (%v)", c.Enemies.MaxSpeed, c.Enemies.MinSpeed))
	}
	if c.Hitbox.EnemyPadding < 0 || c.Hitbox.PlayerSidePadding < 0 {
		errs = append(errs, errors.New("hitbox paddings must not be negative"))
	}
	if c.Gems.Green < 0 || c.Gems.Blue < 0 || c.Gems.Orange < 0 {
		errs = append(errs, errors.New("gem values must not be negative"))
	}
	if c.Timing.WelcomeDelay < 0 {
		errs = append(errs, errors.New("timing.welcome_delay must not be negative"))
	}
	if c.Timing.TypingSpeed <= 0 {
		errs = append(errs, fmt.Errorf("timing.typing_speed must be positive, got %v", c.Timing.TypingSpeed))
	}
	switch c.Difficulty.Progression.Type {
	case "", "level":
		if c.Difficulty.Progression.MaxAt < 1 {
			errs = append(errs, fmt.Errorf("difficulty.progression.max_at must be at least 1, got %d", c.Difficulty.Progression.MaxAt))
		}
	case "none":
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type %q is not one of level, none", c.Difficulty.Progression.Type))
	}
	// Bugs only wrap when they move right
	if c.Difficulty.Scaling.SpeedMultiplier < 0 {
		errs = append(errs, fmt.Errorf("difficulty.scaling.speed_multiplier must not be negative, got %v", c.Difficulty.Scaling.SpeedMultiplier))
	}
	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string is accepted and means
// "keep the loaded config".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
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
