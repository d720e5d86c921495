package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/slide2048/internal/games/t2048"
	"github.com/vovakirdan/slide2048/internal/platform/tui"
	"github.com/vovakirdan/slide2048/internal/registry"
)

var flagLevel int

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified variant (default: 2048).

Controls:
  Arrows/WASD/hjkl - Slide tiles
  Mouse drag       - Swipe
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options (chance that a new tile is a 4):
  easy   - 5%
  normal - from config (10% by default)
  hard   - 25%

The campaign asks for a starting level unless --level is given.

Examples:
  slide2048 play
  slide2048 play 2048_big --difficulty hard
  slide2048 play 2048_campaign --level 3
  slide2048 play --config ./my-2048.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Campaign start level (0 = pick from a menu)")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := t2048.Variants[0].ID
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'slide2048 list' to see available games.")
		os.Exit(1)
	}

	cfg := runtimeConfig()

	level := 0
	if v, _ := t2048.VariantByID(gameID); v.Mode == t2048.ModeCampaign {
		level = flagLevel
		if level < 0 || level > t2048.LevelCount() {
			fmt.Fprintf(os.Stderr, "Error: level must be 1..%d\n", t2048.LevelCount())
			os.Exit(1)
		}
		if level == 0 {
			selected, err := tui.RunLevelSelector(cfg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			// User pressed back or quit
			if selected == 0 {
				return
			}
			level = selected
		}
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	if g, ok := game.(*t2048.Game); ok && level > 0 {
		g.StartAt(level)
	}

	store := openStoreBestEffort(flagDBPath)

	runErr := tui.Run(game, store, cfg, t2048.CurrentConfig().Scores.Limit)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
