package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dropcatch/internal/config"
	"github.com/vovakirdan/dropcatch/internal/platform/gui"
)

var flagFont string

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a window. The play area is 600x500, or 320x400 when
the window is narrower than 700 pixels.

Controls:
  Left/Right, A/D  - Move the bucket
  Mouse            - Bucket follows the pointer
  Touch            - Tap or drag to move the bucket
  Enter/Space/Tap  - Start / play again
  P                - Pause
  M                - Sound on/off
  Esc              - Back to the start screen (after a round)
  Q                - Quit

The bundled font has no Arabic or emoji glyphs. Use --font with a font that
covers them, e.g. Noto Sans Arabic.

Examples:
  dropcatch window
  dropcatch window --touch
  dropcatch window --lang ar --font /usr/share/fonts/noto/NotoSansArabic-Regular.ttf`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagFont, "font", "", "TTF/OTF font file for display text")
}

func runWindow(_ *cobra.Command, _ []string) {
	logger, closeLog := fileLogger()
	defer closeLog()

	session, err := newLocalSession(func(c config.CatchConfig) config.ProfileConfig { return c.Window }, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runErr := gui.Run(session.game, gui.Options{
		Runtime:  runtimeConfig(gui.WideW, gui.WideH),
		FontPath: flagFont,
		Logger:   logger,
	})
	session.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
