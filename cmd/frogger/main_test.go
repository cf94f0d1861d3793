package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/adrg/xdg"

	"github.com/vovakirdan/frogger-arcade/internal/config"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	flagLevels, flagSprites, flagConfig, flagDifficulty = "", "", "", ""
	flagResolved, flagPreview = false, false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("frogger %s: %v", strings.Join(args, " "), err)
	}
	return out.String()
}

func TestLevelsCommand(t *testing.T) {
	out := execute(t, "levels")

	for _, want := range []string{
		"Level 1: Morning Commute (3 lanes)",
		"Level 2: Rush Hour (4 lanes)",
		"Level 3: Gem Fields (4 lanes)",
		"  ~~~~~",
		"  ..S..",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigCommandPrintsDefaults(t *testing.T) {
	out := execute(t, "config")
	if out != string(config.DefaultYAML()) {
		t.Errorf("config output differs from embedded defaults:\n%s", out)
	}
}

func TestConfigCommandResolved(t *testing.T) {
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()

	out := execute(t, "config", "--resolved", "--difficulty", "hard")
	if !strings.Contains(out, "enemies:") {
		t.Errorf("resolved config missing enemies section:\n%s", out)
	}
}

func TestConfigCommandRejectsUnknownPreset(t *testing.T) {
	flagResolved = false
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"config", "--resolved", "--difficulty", "brutal"})
	if err := rootCmd.Execute(); err == nil {
		t.Error("expected an error for an unknown preset")
	}
}

func TestSpritesCommand(t *testing.T) {
	out := execute(t, "sprites")
	for _, key := range []string{"char-boy", "enemy-bug", "gem-orange", "water-block"} {
		if !strings.Contains(out, key) {
			t.Errorf("sprite list missing %q", key)
		}
	}
}
