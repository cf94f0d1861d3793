package config

import "testing"

func TestDifficultyDisabledKeepsBaseRange(t *testing.T) {
	d := NewDifficultyManager(DefaultFroggerConfig().Difficulty)

	for level := 1; level <= 10; level++ {
		lo, hi := d.SpeedRange(100, 300, level)
		if lo != 100 || hi != 300 {
			t.Errorf("level %d: range = [%v, %v), expected [100, 300)", level, lo, hi)
		}
	}
}

func TestDifficultyProgression(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "level", MaxAt: 5},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
	}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		level    int
		expected float64
	}{
		{1, 0.0},
		{3, 0.5},
		{5, 1.0},
		{9, 1.0}, // Clamped past max_at
	}

	for _, tc := range tests {
		if got := d.Level(tc.level); got != tc.expected {
			t.Errorf("Level(%d) = %v, expected %v", tc.level, got, tc.expected)
		}
	}

	lo, hi := d.SpeedRange(100, 300, 5)
	if lo != 200 || hi != 600 {
		t.Errorf("SpeedRange at max = [%v, %v), expected [200, 600)", lo, hi)
	}
}

func TestDifficultyInitialLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "level", MaxAt: 3},
	}
	d := NewDifficultyManager(cfg)

	if got := d.Level(1); got != 0.5 {
		t.Errorf("Level(1) = %v, expected initial 0.5", got)
	}
	if got := d.Level(3); got != 1.0 {
		t.Errorf("Level(3) = %v, expected 1.0", got)
	}
}
