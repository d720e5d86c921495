// slide2048 is a sliding-tile merge puzzle for the terminal, SSH and the browser.
//
// Usage:
//
//	slide2048 list              - List game variants
//	slide2048 play [game]       - Play a variant (default: 2048)
//	slide2048 menu              - Pick variants interactively
//	slide2048 scores <game>     - Show high scores for a variant
//	slide2048 serve             - Start the SSH server for remote play
//	slide2048 web               - Start the browser front end
//	slide2048 config            - Print the default game config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: from config, 60)
//	--seed <value>        - Set RNG seed for reproducible games
//	--db <path>           - Set database path (default: ~/.slide2048/scores.db)
//	--config <path>       - Load game config from a YAML file
//	--difficulty <preset> - easy, normal or hard
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/slide2048/internal/config"
	"github.com/vovakirdan/slide2048/internal/core"
	"github.com/vovakirdan/slide2048/internal/games/t2048"
	"github.com/vovakirdan/slide2048/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slide2048",
	Short: "slide2048 - Slide and merge tiles in your terminal",
	Long: `slide2048 is the sliding-tile merge puzzle: slide the board in one of
four directions, equal tiles merge once per move, and a new 2 or 4 appears
after every move that changes the board. The game ends when no move can.

Available commands:
  list     - Show all variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  scores   - View high scores
  serve    - Start SSH server for remote play
  web      - Start the browser front end
  config   - Print the default game config

Examples:
  slide2048 play
  slide2048 play 2048_mini --difficulty easy
  slide2048 menu
  slide2048 serve --ssh :2222
  slide2048 web --http :8080
  slide2048 scores 2048`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return loadGameConfig()
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = display.tick_rate from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.slide2048/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGameConfig reads the config file, applies the difficulty preset and
// hands the result to the game package.
func loadGameConfig() error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg, preset)

	t2048.SetConfig(cfg)
	return nil
}

// tickRate returns --fps when set, otherwise the configured rate.
func tickRate() int {
	if flagFPS > 0 {
		return flagFPS
	}
	return t2048.CurrentConfig().Display.TickRate
}

// runtimeConfig builds the screen config from the current terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = tickRate()
	cfg.Seed = flagSeed
	return cfg
}

// openStoreBestEffort opens the score database, warning instead of failing
// so the game still works without it.
func openStoreBestEffort(path string) *storage.Store {
	store, err := storage.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// newLogger creates a server logger at the given level name.
func newLogger(prefix, level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if lvl, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	} else {
		logger.Warn("unknown log level, using info", "level", level)
	}
	return logger
}
