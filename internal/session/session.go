// Package session owns one game of 2048: the engine, its random source and
// the high-score bookkeeping that happens when the game ends. Each SSH or
// WebSocket connection gets its own Session; nothing is shared between them
// except the score store.
package session

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/slide2048/internal/board"
	"github.com/vovakirdan/slide2048/internal/config"
	"github.com/vovakirdan/slide2048/internal/core"
	"github.com/vovakirdan/slide2048/internal/storage"
)

// Options configures a new Session.
type Options struct {
	GameID    string
	Config    config.Config
	Store     ScoreStore
	Presenter board.Presenter
	Seed      int64 // 0 means seed from the clock
	Logger    *log.Logger
}

// Outcome describes the effect of one input on the session.
type Outcome struct {
	Changed  bool // The board moved and a tile was spawned
	Ignored  bool // The input did not map to a move (short swipe)
	Terminal bool // The game is over

	// HighScores is set only on the move that ended the game.
	HighScores []int
}

// Session is a single game owned by one player.
// It is not safe for concurrent use.
type Session struct {
	gameID     string
	cfg        config.Config
	engine     *board.Engine
	recorder   *Recorder
	highScores []int
	logger     *log.Logger
}

// New creates a session and starts its first game.
func New(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	engineOpts := opts.Config.EngineOptions()
	engineOpts.Presenter = opts.Presenter

	s := &Session{
		gameID:   opts.GameID,
		cfg:      opts.Config,
		engine:   board.NewEngine(engineOpts),
		recorder: NewRecorder(opts.Store, opts.GameID, opts.Config.Scores.Limit),
		logger:   logger,
	}
	s.Reset(opts.Seed)
	return s
}

// Reset starts a new game. A zero seed picks one from the clock.
func (s *Session) Reset(seed int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s.engine.SetRand(rand.New(rand.NewSource(seed)))
	s.recorder.Reset()
	s.highScores = nil
	s.engine.Initialize()
}

// Move applies a move. When the move ends the game the score is recorded
// and the ranked list is returned in the outcome.
func (s *Session) Move(dir board.Direction) (Outcome, error) {
	changed, err := s.engine.Move(dir)
	if err != nil {
		return Outcome{}, err
	}

	out := Outcome{
		Changed:  changed,
		Terminal: s.engine.IsTerminal(),
	}
	if out.Terminal && !s.recorder.Recorded() {
		out.HighScores = s.finish()
	}
	return out, nil
}

// Swipe classifies a pointer displacement and applies the resulting move.
// Short or zero-length gestures are reported as Ignored.
func (s *Session) Swipe(dx, dy int) (Outcome, error) {
	action, ok := core.ClassifySwipe(dx, dy, s.cfg.Input.SwipeThreshold)
	if !ok {
		return Outcome{Ignored: true, Terminal: s.engine.IsTerminal()}, nil
	}
	return s.Move(DirectionFor(action))
}

func (s *Session) finish() []int {
	snap := s.engine.Snapshot()
	scores, err := s.recorder.Record(storage.Result{Score: snap.Score, MaxTile: snap.MaxTile, Moves: snap.Moves})
	if err != nil {
		s.logger.Warn("could not record score", "game", s.gameID, "score", snap.Score, "error", err)
	}
	s.highScores = scores
	return scores
}

// Snapshot returns the current engine state.
func (s *Session) Snapshot() board.Snapshot {
	return s.engine.Snapshot()
}

// HighScores returns the ranked list loaded when the game ended, or nil
// while the game is in progress.
func (s *Session) HighScores() []int {
	return s.highScores
}

// GameID returns the variant this session records scores under.
func (s *Session) GameID() string {
	return s.gameID
}

// DirectionFor maps a move action to a board direction.
// Non-move actions map to an invalid direction.
func DirectionFor(a core.Action) board.Direction {
	switch a {
	case core.ActionUp:
		return board.DirUp
	case core.ActionDown:
		return board.DirDown
	case core.ActionLeft:
		return board.DirLeft
	case core.ActionRight:
		return board.DirRight
	default:
		return board.Direction(-1)
	}
}
