package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/frogger.yaml
var defaultFroggerYAML []byte

// DefaultFroggerConfig returns the built-in configuration, used when the
// embedded YAML cannot be parsed.
func DefaultFroggerConfig() FroggerConfig {
	return FroggerConfig{
		Enemies: FroggerEnemies{
			MinSpeed: 100,
			MaxSpeed: 300,
		},
		Hitbox: FroggerHitbox{
			EnemyPadding:      2,
			PlayerSidePadding: 33,
		},
		Gems: FroggerGems{
			Green:  10,
			Blue:   25,
			Orange: 50,
		},
		Timing: FroggerTiming{
			WelcomeDelay: time.Second,
			TypingSpeed:  18,
		},
		Audio: FroggerAudio{
			MoveVolume: 0.5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 6,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.75,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFroggerYAML
}
