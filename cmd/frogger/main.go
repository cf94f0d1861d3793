// frogger is a Frogger-style crossing game for the terminal.
//
// Usage:
//
//	frogger play      - Play the game
//	frogger levels    - Print the level layouts
//	frogger config    - Print the default configuration
//	frogger sprites   - List (and preview) the sprite atlas
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible bug speeds
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Log file (default: $XDG_STATE_HOME/frogger/frogger.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "frogger",
	Short: "Frogger - cross the lanes in your terminal",
	Long: `Frogger is a terminal crossing game. Pick a character, dodge the bugs
racing along the stone lanes, collect gems and reach the water.

Available commands:
  play     - Play the game
  levels   - Print the level layouts
  config   - Print the default configuration
  sprites  - List the sprite atlas

Examples:
  frogger play
  frogger play --difficulty hard
  frogger play --seed 42 --mute
  frogger levels`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file path (default: XDG state dir)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(spritesCmd)
}
