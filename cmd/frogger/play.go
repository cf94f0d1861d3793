package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/frogger-arcade/internal/assets"
	"github.com/vovakirdan/frogger-arcade/internal/audio"
	"github.com/vovakirdan/frogger-arcade/internal/config"
	"github.com/vovakirdan/frogger-arcade/internal/core"
	"github.com/vovakirdan/frogger-arcade/internal/games/frogger"
	"github.com/vovakirdan/frogger-arcade/internal/logging"
	"github.com/vovakirdan/frogger-arcade/internal/platform/tui"
	"github.com/vovakirdan/frogger-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSprites    string
	flagLevels     string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game on the welcome screen.

Controls:
  ←/→        - Choose character / option
  ↑/↓/←/→    - Move one cell
  Enter      - Accept
  Any key    - Dismiss level and lives banners
  Tab        - Show this session's runs
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit (only Ctrl+C while a banner is shown)

Difficulty options:
  easy   - Bug speeds start at base and ramp up with each level
  normal - Start at 30% difficulty, ramp up with each level
  hard   - Start at 70% difficulty, ramp up with each level
  fixed  - No progression, bug speeds stay at the base range

Examples:
  frogger play
  frogger play --difficulty hard
  frogger play --config ./my-frogger.yaml
  frogger play --levels ./my-levels.yaml --mute`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagSprites, "sprites", "", "Path to a custom sprite atlas YAML")
	playCmd.Flags().StringVar(&flagLevels, "levels", "", "Path to a custom level set YAML")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := logging.Open(logging.Options{Level: flagLogLevel, Path: flagLogFile})
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	atlas, err := loadAtlas()
	if err != nil {
		return err
	}

	levels, err := loadLevels()
	if err != nil {
		return err
	}

	sound, closeSound := openSound(cfg, logger)
	defer closeSound()

	deps := frogger.Deps{
		Config: &cfg,
		Atlas:  atlas,
		Levels: levels,
		Sound:  sound,
		Logger: logger,
	}
	opts := tui.Options{Logger: logger}

	// The ledger is optional; the game plays the same without it.
	store, err := storage.Open(storage.MemoryDSN)
	if err != nil {
		logger.Warn("could not open run ledger", "error", err)
	} else {
		defer store.Close()
		deps.History = store
		opts.Runs = store
	}

	game, err := frogger.New(deps)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rcfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if err := tui.Run(game, rcfg, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	if store != nil {
		printSessionSummary(store)
	}
	return nil
}

func loadConfig() (config.FroggerConfig, error) {
	cfg, err := config.LoadFrogger(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyFroggerPreset(&cfg, preset)

	if flagMute {
		cfg.Audio.Muted = true
	}
	return cfg, nil
}

func loadAtlas() (*assets.Atlas, error) {
	if flagSprites != "" {
		return assets.LoadFile(flagSprites)
	}
	return assets.LoadDefault()
}

func loadLevels() ([]frogger.Level, error) {
	if flagLevels != "" {
		return frogger.LoadLevelsFile(flagLevels)
	}
	return frogger.DefaultLevels()
}

// openSound returns the speaker-backed player, or a silent one when muted or
// when no audio device is available.
func openSound(cfg config.FroggerConfig, logger *log.Logger) (audio.Player, func()) {
	if cfg.Audio.Muted {
		return audio.Silent{}, func() {}
	}

	sm := audio.NewSoundManager(cfg.Audio.MoveVolume)
	if err := sm.Initialize(); err != nil {
		logger.Warn("audio unavailable, playing silently", "error", err)
		return audio.Silent{}, func() {}
	}
	return sm, sm.Close
}

func printSessionSummary(store *storage.Store) {
	stats, err := store.Stats()
	if err != nil || stats.Runs == 0 {
		return
	}
	fmt.Printf("Session: %d runs, best score %d, furthest level %d\n",
		stats.Runs, stats.BestScore, stats.MaxLevel)
}
