package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dropcatch/internal/platform/tui"
	"github.com/vovakirdan/dropcatch/internal/storage"
)

var (
	flagAll    bool
	flagLimit  int
	flagClear  bool
	flagBrowse bool
	flagPlayer string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the previous score and recent rounds",
	Long: `Display the score of your last round and the rounds recorded in the
database, newest first.

Examples:
  dropcatch scores
  dropcatch scores --all --limit 20
  dropcatch scores --player alice      # rounds played over SSH as alice
  dropcatch scores --browse            # interactive table
  dropcatch scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagAll, "all", false, "Show every player's rounds")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rounds to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the player's rounds and previous score")
	scoresCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Browse rounds in an interactive table")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Player name (default: current user)")
}

func runScores(_ *cobra.Command, _ []string) {
	player := flagPlayer
	if player == "" {
		player = playerName()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening rounds database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRounds(player); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if flagPlayer == "" {
			if prefs, prefsErr := storage.OpenLocal(appName); prefsErr == nil {
				//nolint:errcheck // Best-effort reset, the history is already gone
				prefs.SetPrevScore(0)
			}
		}
		fmt.Printf("Cleared rounds for %s.\n", player)
		return
	}

	if flagBrowse {
		filter := player
		if flagAll {
			filter = ""
		}
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, filter, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Printf("Previous Score: %d\n", previousScore(store, player))
	fmt.Println()

	filter := player
	if flagAll {
		filter = ""
	}
	rounds, err := store.RecentRounds(filter, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving rounds: %v\n", err)
		os.Exit(1)
	}

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Play 'dropcatch play' to record your first round!")
		return
	}

	fmt.Printf("  %-4s  %-12s  %-6s  %-8s  %s\n", "#", "Player", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-12s  %-6s  %-8s  %s\n", "-", "------", "-----", "-----", "----")
	for i, r := range rounds {
		fmt.Printf("  %-4d  %-12s  %-6d  %-8s  %s\n", i+1, r.Player, r.Score, r.Difficulty, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.Stats(player); err == nil && stats.Rounds > 0 {
		fmt.Println()
		fmt.Printf("%s: %d rounds, best %d, average %.1f\n", player, stats.Rounds, stats.BestScore, stats.AvgScore)
	}
}

// previousScore prefers the local data directory, which is what the game
// shows for local play, and falls back to the database.
func previousScore(store *storage.Store, player string) int {
	if flagPlayer == "" {
		if prefs, err := storage.OpenLocal(appName); err == nil {
			if score, err := prefs.PrevScore(); err == nil {
				return score
			}
		}
	}
	score, err := store.PrevScore(player)
	if err != nil {
		return 0
	}
	return score
}
