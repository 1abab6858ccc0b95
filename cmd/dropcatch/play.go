package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dropcatch/internal/config"
	"github.com/vovakirdan/dropcatch/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  Left/Right, A/D  - Move the bucket
  Mouse            - Bucket follows the pointer (drag works too)
  Enter/Space      - Start / play again
  P                - Pause
  M                - Sound on/off
  Esc              - Back to the start screen (after a round)
  ?                - More help
  Q/Ctrl+C         - Quit

Difficulty options:
  easy    - Slower falls, fewer objects
  medium  - The classic 30 second round
  hard    - Faster falls, more objects

Examples:
  dropcatch play
  dropcatch play --difficulty hard
  dropcatch play --lang ar
  dropcatch play --config ./my-catch.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	logger, closeLog := fileLogger()
	defer closeLog()

	session, err := newLocalSession(func(c config.CatchConfig) config.ProfileConfig { return c.Terminal }, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(session.game, runtimeConfig(width, height), logger)
	session.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
