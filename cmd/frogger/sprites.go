package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/frogger-arcade/internal/assets"
	"github.com/vovakirdan/frogger-arcade/internal/core"
	"github.com/vovakirdan/frogger-arcade/internal/platform/tui"
)

var flagPreview bool

var spritesCmd = &cobra.Command{
	Use:   "sprites",
	Short: "List the sprite atlas",
	Long: `Loads the sprite atlas, checks it against the manifest and lists every
sprite. With --preview, each sprite is drawn in color.`,
	Args: cobra.NoArgs,
	RunE: runSprites,
}

func init() {
	spritesCmd.Flags().StringVar(&flagSprites, "sprites", "", "Path to a custom sprite atlas YAML")
	spritesCmd.Flags().BoolVar(&flagPreview, "preview", false, "Draw each sprite")
}

func runSprites(cmd *cobra.Command, args []string) error {
	atlas, err := loadAtlas()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	maxKeyLen := 3 // "Key" header
	for _, k := range assets.Manifest {
		maxKeyLen = max(maxKeyLen, len(k))
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxKeyLen, "Key", "Size")
	fmt.Fprintf(out, "  %-*s  %s\n", maxKeyLen, "---", "----")
	for _, k := range assets.Manifest {
		s, _ := atlas.Get(k)
		fmt.Fprintf(out, "  %-*s  %dx%d\n", maxKeyLen, k, s.Width, s.Height)

		if flagPreview {
			screen := core.NewScreen(assets.MaxSpriteWidth, s.Height)
			s.Draw(screen, 0, 0)
			fmt.Fprintln(out, tui.RenderScreen(screen))
		}
	}
	return nil
}
