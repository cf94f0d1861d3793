package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// localConfigPath is checked relative to the working directory.
const localConfigPath = "configs/frogger.yaml"

// LoadFrogger loads the game configuration.
// Search order: customPath -> $XDG_CONFIG_HOME/frogger/frogger.yaml -> ./configs/frogger.yaml -> embedded default
func LoadFrogger(customPath string) (FroggerConfig, error) {
	// An explicit path must work; no silent fallback
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FroggerConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return FroggerConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Discovered files may be absent, but one that exists has to be valid
	for _, path := range []string{userConfigPath(), localConfigPath} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return FroggerConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return FroggerConfig{}, fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
		return cfg, nil
	}

	cfg, err := parse(defaultFroggerYAML)
	if err != nil {
		return DefaultFroggerConfig(), nil // Fallback to hardcoded if embed is broken
	}
	return cfg, nil
}

// parse overlays YAML on top of the hardcoded defaults so partial files work,
// then validates the result.
func parse(data []byte) (FroggerConfig, error) {
	cfg := DefaultFroggerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FroggerConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return FroggerConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the per-user config file location.
func userConfigPath() string {
	if xdg.ConfigHome == "" {
		return ""
	}
	return filepath.Join(xdg.ConfigHome, "frogger", "frogger.yaml")
}

// ApplyFroggerPreset modifies the config based on a difficulty preset.
// The empty preset leaves the config untouched.
func ApplyFroggerPreset(cfg *FroggerConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
		if cfg.Difficulty.Progression.Type == "" || cfg.Difficulty.Progression.Type == "none" {
			cfg.Difficulty.Progression.Type = "level"
		}
	}
}
