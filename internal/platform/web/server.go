// Package web serves the game to browsers: an embedded page, a WebSocket
// endpoint that runs one game per connection, and a small JSON API for
// high scores.
package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"io/fs"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/slide2048/internal/config"
	"github.com/vovakirdan/slide2048/internal/games/t2048"
	"github.com/vovakirdan/slide2048/internal/storage"
)

//go:embed static
var staticFiles embed.FS

// Config holds settings for the web server.
type Config struct {
	// Addr is the host:port to listen on (e.g., ":8048").
	Addr string

	// Game is the game configuration every session starts from.
	Game config.Config

	// Store persists scores. Nil disables high scores.
	Store *storage.Store

	// Logger receives server events. Defaults to a stderr logger.
	Logger *log.Logger

	// Seed fixes the first game of every connection. 0 seeds from the clock.
	Seed int64

	// ReadWait is how long a connection may stay silent, pongs included.
	ReadWait time.Duration
	// WriteWait bounds a single write.
	WriteWait time.Duration
	// PingPeriod is how often pings are sent. Must be less than ReadWait.
	PingPeriod time.Duration
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Addr:       ":8048",
		Game:       config.Default(),
		ReadWait:   60 * time.Second,
		WriteWait:  10 * time.Second,
		PingPeriod: 30 * time.Second,
	}
}

// ConfigFromEnv maps environment server settings onto the defaults.
func ConfigFromEnv(sc config.ServerConfig) Config {
	cfg := DefaultConfig()
	if sc.HTTPAddr != "" {
		cfg.Addr = sc.HTTPAddr
	}
	return cfg
}

// Server is the HTTP front end.
type Server struct {
	config     Config
	upgrader   *Upgrader
	logger     *log.Logger
	httpServer *http.Server

	// ctx is cancelled on shutdown so hijacked connections close too.
	ctx    context.Context
	cancel context.CancelFunc

	// mu guards closed and every wg.Add so no socket joins after Wait starts.
	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NewServer creates a web server. Zero durations take their defaults.
func NewServer(cfg Config) *Server {
	defaults := DefaultConfig()
	if cfg.ReadWait <= 0 {
		cfg.ReadWait = defaults.ReadWait
	}
	if cfg.WriteWait <= 0 {
		cfg.WriteWait = defaults.WriteWait
	}
	if cfg.PingPeriod <= 0 || cfg.PingPeriod >= cfg.ReadWait {
		cfg.PingPeriod = cfg.ReadWait * 9 / 10
	}
	if cfg.Game.Scores.Limit <= 0 {
		cfg.Game = config.Default()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "slide2048-web",
		})
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		config:   cfg,
		upgrader: NewUpgrader(),
		logger:   logger,
		ctx:      ctx,
		cancel:   cancel,
	}
	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.httpServer.RegisterOnShutdown(cancel)
	return s
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err) // embedded at build time
	}

	mux := http.NewServeMux()
	mux.Handle("GET /", http.FileServer(http.FS(static)))
	mux.HandleFunc("GET /ws", s.handleSocket)
	mux.HandleFunc("GET /api/games", s.handleGames)
	mux.HandleFunc("GET /api/scores", s.handleScores)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok\n"))
	})
	return mux
}

// ListenAndServe starts the server and blocks until SIGINT or SIGTERM.
func (s *Server) ListenAndServe() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Serve(ctx)
}

// Serve runs the server until ctx is cancelled, then shuts it down.
func (s *Server) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return err
	}
	return s.serveListener(ctx, ln)
}

func (s *Server) serveListener(ctx context.Context, ln net.Listener) error {
	s.logger.Info("starting web server", "address", ln.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			s.logger.Error("server error", "error", err)
			s.cancel()
			return err
		}
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown stops accepting requests, closes open game sockets and waits
// for them to finish.
func (s *Server) Shutdown() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.httpServer.Shutdown(ctx)
	s.cancel()
	s.wg.Wait()
	return err
}

// track registers a socket with the shutdown wait group. It reports false
// once Shutdown has started.
func (s *Server) track() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.wg.Add(1)
	return true
}

// webVariant resolves the game query parameter. The campaign needs the
// terminal level flow and is not offered here.
func webVariant(id string) (t2048.Variant, bool) {
	if id == "" {
		return t2048.Variants[0], true
	}
	v, ok := t2048.VariantByID(id)
	if !ok || v.Mode != t2048.ModeClassic {
		return t2048.Variant{}, false
	}
	return v, true
}

type gameInfo struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Size  int    `json:"size"`
}

func (s *Server) handleGames(w http.ResponseWriter, _ *http.Request) {
	games := make([]gameInfo, 0, len(t2048.Variants))
	for _, v := range t2048.Variants {
		if v.Mode != t2048.ModeClassic {
			continue
		}
		games = append(games, gameInfo{
			ID:    v.ID,
			Title: v.Title,
			Size:  v.Apply(s.config.Game).Board.Size,
		})
	}
	writeJSON(w, http.StatusOK, games)
}

type scoreEntry struct {
	Score     int       `json:"score"`
	MaxTile   int       `json:"maxTile"`
	Moves     int       `json:"moves"`
	CreatedAt time.Time `json:"createdAt"`
}

type scoresResponse struct {
	Game   string       `json:"game"`
	Scores []scoreEntry `json:"scores"`
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	v, ok := webVariant(r.URL.Query().Get("game"))
	if !ok {
		writeJSON(w, http.StatusNotFound, Message{Type: TypeError, Error: "unknown game"})
		return
	}

	limit := s.config.Game.Scores.Limit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 100 {
			writeJSON(w, http.StatusBadRequest, Message{Type: TypeError, Error: "limit must be 1..100"})
			return
		}
		limit = n
	}

	resp := scoresResponse{Game: v.ID, Scores: []scoreEntry{}}
	if s.config.Store != nil {
		entries, err := s.config.Store.TopScores(v.ID, limit)
		if err != nil {
			s.logger.Error("could not load scores", "game", v.ID, "error", err)
			writeJSON(w, http.StatusInternalServerError, Message{Type: TypeError, Error: "could not load scores"})
			return
		}
		for _, e := range entries {
			resp.Scores = append(resp.Scores, scoreEntry{
				Score:     e.Score,
				MaxTile:   e.MaxTile,
				Moves:     e.Moves,
				CreatedAt: e.CreatedAt,
			})
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // The client may have gone away
	json.NewEncoder(w).Encode(v)
}
