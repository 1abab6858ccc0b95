// dropcatch is the Water Drop Collector arcade game: catch clean water drops
// in a bucket and dodge pollutants before the 30 second timer runs out.
//
// Usage:
//
//	dropcatch play           - Play in the terminal
//	dropcatch window         - Play in a desktop window
//	dropcatch serve          - Start SSH server for remote play
//	dropcatch scores         - Show the previous score and recent rounds
//	dropcatch config         - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.dropcatch/rounds.db)
//	--config <path>      - Use a custom YAML config
//	--difficulty <name>  - easy, medium or hard
//	--lang <tag>         - Display language (default: from LANG)
//	--touch              - Show touch instructions
//	--mute               - Start with sound off
//	--log <path>         - Log file for interactive modes
package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dropcatch/internal/audio"
	"github.com/vovakirdan/dropcatch/internal/config"
	"github.com/vovakirdan/dropcatch/internal/core"
	"github.com/vovakirdan/dropcatch/internal/games/catch"
	"github.com/vovakirdan/dropcatch/internal/storage"
)

const appName = "dropcatch"

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLang       string
	flagTouch      bool
	flagMute       bool
	flagLogPath    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dropcatch",
	Short: "Water Drop Collector - catch clean water, dodge pollutants",
	Long: `Water Drop Collector is a short arcade round: move the bucket along
the bottom of the screen, catch falling water drops (+1) and avoid
pollutants (-2). Every drop you let fall costs a point (-1).

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window (mouse and touch)
  serve    - Start SSH server for remote play
  scores   - Show the previous score and recent rounds
  config   - Print the effective configuration

Examples:
  dropcatch play
  dropcatch play --difficulty hard --lang ar
  dropcatch window --touch
  dropcatch serve --ssh :2222
  dropcatch scores --all`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dropcatch/rounds.db", "Path to rounds database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, medium, hard")
	rootCmd.PersistentFlags().StringVar(&flagLang, "lang", "", "Display language, e.g. en or ar (default: from LANG)")
	rootCmd.PersistentFlags().BoolVar(&flagTouch, "touch", false, "Show touch instructions")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Start with sound off")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Log file (default: ~/.dropcatch/dropcatch.log)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the game config and applies the difficulty preset.
func loadConfig() (config.CatchConfig, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.CatchConfig{}, "", err
	}
	cfg, err := config.LoadCatch(flagConfig)
	if err != nil {
		return config.CatchConfig{}, "", err
	}
	config.ApplyCatchPreset(&cfg, preset)
	return cfg, preset, nil
}

// fileLogger logs to a file so the alternate screen stays clean. It falls
// back to discarding logs when the file cannot be opened.
func fileLogger() (*log.Logger, func()) {
	path := flagLogPath
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return log.New(io.Discard), func() {}
		}
		path = filepath.Join(home, ".dropcatch", "dropcatch.log")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		return log.New(io.Discard), func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          appName,
	})
	return logger, func() { f.Close() }
}

// detectLocale returns the --lang flag or the locale of the environment.
func detectLocale() string {
	if flagLang != "" {
		return flagLang
	}
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return "en"
}

// playerName identifies the local player in the round history.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "player"
}

// runtimeConfig builds the runtime config for a viewport.
func runtimeConfig(w, h int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  w,
		ScreenH:  h,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Locale:   detectLocale(),
		Touch:    flagTouch,
	}
}

// localSession holds the collaborators of a game played on this machine.
type localSession struct {
	game    *catch.Game
	history *storage.Store
	player  *audio.Player
}

// newLocalSession wires config, storage and audio into a game. Storage and
// audio failures only produce warnings.
func newLocalSession(profile func(config.CatchConfig) config.ProfileConfig, logger *log.Logger) (*localSession, error) {
	cfg, preset, err := loadConfig()
	if err != nil {
		return nil, err
	}

	s := &localSession{}
	store := storage.Local{Player: playerName(), Difficulty: string(preset)}

	if prefs, prefsErr := storage.OpenLocal(appName); prefsErr != nil {
		logger.Warn("previous score kept in memory only", "error", prefsErr)
		store.Prefs = storage.NewLocal(nil)
	} else {
		store.Prefs = prefs
	}

	if history, dbErr := storage.Open(flagDBPath); dbErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open rounds database: %v\n", dbErr)
		logger.Warn("round history disabled", "error", dbErr)
	} else {
		s.history = history
		store.History = history
	}

	opts := catch.Options{
		Config:     cfg,
		Profile:    profile(cfg),
		Difficulty: preset,
		Store:      store,
		Logger:     logger,
	}

	if s.player = startAudio(audio.Open, flagMute, logger); s.player != nil {
		opts.Sound = s.player
	}

	s.game = catch.New(opts)
	if flagMute {
		s.game.SetMuted(true)
	}
	return s, nil
}

// startAudio opens the speaker even when starting muted, so the mute key
// can turn sound on later. The game reads the initial state from the player.
func startAudio(open func() (*audio.Player, error), muted bool, logger *log.Logger) *audio.Player {
	player, err := open()
	if err != nil {
		logger.Warn("audio unavailable", "error", err)
		return nil
	}
	player.SetMuted(muted)
	return player
}

// Close releases storage and audio.
func (s *localSession) Close() {
	if s.player != nil {
		s.player.Close()
	}
	if s.history != nil {
		s.history.Close()
	}
}
