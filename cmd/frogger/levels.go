package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Print the level layouts",
	Long: `Prints every level as a map, top row first.

Legend:
  ~  water (the goal)     =  bug lane
  .  grass                S  start cell
  #  rock                 g/b/o  green, blue, orange gem

Levels past the last one replay it.`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagLevels, "levels", "", "Path to a custom level set YAML")
}

func runLevels(cmd *cobra.Command, args []string) error {
	levels, err := loadLevels()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, lvl := range levels {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "Level %d: %s (%d lanes)\n", lvl.Number, lvl.Name, lvl.Lanes)
		for _, row := range lvl.Map() {
			fmt.Fprintf(out, "  %s\n", row)
		}
	}
	return nil
}
