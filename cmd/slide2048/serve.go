package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/slide2048/internal/config"
	"github.com/vovakirdan/slide2048/internal/games/t2048"
	"github.com/vovakirdan/slide2048/internal/platform/tui"
	"github.com/vovakirdan/slide2048/internal/platform/web"
	"github.com/vovakirdan/slide2048/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagAlsoHTTP    string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with a variant picker menu.
Scores are stored per-server (all users share the same leaderboard).

Settings come from SLIDE2048_* environment variables; flags override them:
  SLIDE2048_SSH_ADDR, SLIDE2048_HOST_KEY, SLIDE2048_IDLE_TIMEOUT,
  SLIDE2048_DB, SLIDE2048_LOG_LEVEL

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.slide2048/host_key

Examples:
  slide2048 serve                           # Listen on :23234 with auto-generated key
  slide2048 serve --ssh :2222               # Listen on port 2222
  slide2048 serve --host-key ./my_host_key  # Use specific host key
  slide2048 serve --http :8048              # Also serve the browser front end

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (default $SLIDE2048_SSH_ADDR or :23234)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes (default $SLIDE2048_IDLE_TIMEOUT or 30)")
	serveCmd.Flags().StringVar(&flagAlsoHTTP, "http", "", "Also serve the browser front end on this address")
}

// serverSettings loads SLIDE2048_* settings and applies the shared flags.
func serverSettings(cmd *cobra.Command) config.ServerConfig {
	sc, err := config.LoadServerConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if cmd.Flags().Changed("db") {
		sc.DBPath = flagDBPath
	}
	return sc
}

func runServe(cmd *cobra.Command, _ []string) {
	sc := serverSettings(cmd)
	logger := newLogger("slide2048-ssh", sc.LogLevel)

	store, err := storage.Open(sc.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	closeStore := func() {
		if store != nil {
			store.Close()
		}
	}

	cfg := tui.SSHServerConfigFromEnv(sc)
	if flagSSHAddr != "" {
		cfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}
	cfg.Store = store
	cfg.Logger = logger
	cfg.TickRate = tickRate()
	cfg.ScoreLimit = t2048.CurrentConfig().Scores.Limit

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		closeStore()
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	webErr := make(chan error, 1)
	if flagAlsoHTTP != "" {
		webCfg := web.ConfigFromEnv(sc)
		webCfg.Addr = flagAlsoHTTP
		webCfg.Game = t2048.CurrentConfig()
		webCfg.Store = store
		webCfg.Seed = flagSeed
		webCfg.Logger = newLogger("slide2048-web", sc.LogLevel)

		go func() {
			webErr <- web.NewServer(webCfg).Serve(ctx)
		}()
	} else {
		close(webErr)
	}

	port := cfg.Address[strings.LastIndex(cfg.Address, ":")+1:]
	fmt.Printf("Starting slide2048 SSH server on %s\n", cfg.Address)
	fmt.Printf("Connect with: ssh localhost -p %s\n", port)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.Serve(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		stop()
	}
	if err := <-webErr; err != nil {
		fmt.Fprintf(os.Stderr, "Web server error: %v\n", err)
	}
	closeStore()
}
