package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/slide2048/internal/games/t2048"
	"github.com/vovakirdan/slide2048/internal/platform/web"
	"github.com/vovakirdan/slide2048/internal/storage"
)

var flagHTTPAddr string

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Start the browser front end",
	Long: `Start an HTTP server with a browser version of the game.

Each browser tab plays its own game over a WebSocket. Arrow keys and WASD
slide the tiles; touch or mouse swipes longer than the configured
input.swipe_threshold (50px by default) do too.

Endpoints:
  /             - the game page
  /ws?game=<id> - game session socket
  /api/games    - variants offered in the browser
  /api/scores   - ?game=<id>&limit=<n> high scores as JSON
  /healthz      - liveness probe

Examples:
  slide2048 web                 # Listen on $SLIDE2048_HTTP_ADDR or :8048
  slide2048 web --http :8080`,
	Run: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "HTTP server address (default $SLIDE2048_HTTP_ADDR or :8048)")
}

func runWeb(cmd *cobra.Command, _ []string) {
	sc := serverSettings(cmd)
	logger := newLogger("slide2048-web", sc.LogLevel)

	store, err := storage.Open(sc.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	cfg := web.ConfigFromEnv(sc)
	if flagHTTPAddr != "" {
		cfg.Addr = flagHTTPAddr
	}
	cfg.Game = t2048.CurrentConfig()
	cfg.Store = store
	cfg.Seed = flagSeed
	cfg.Logger = logger

	fmt.Printf("Starting slide2048 web server on %s\n", cfg.Addr)
	fmt.Println("Press Ctrl+C to stop")

	runErr := web.NewServer(cfg).ListenAndServe()

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", runErr)
		os.Exit(1)
	}
}
