package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/slide2048/internal/core"
	"github.com/vovakirdan/slide2048/internal/games/t2048"
	"github.com/vovakirdan/slide2048/internal/registry"
	"github.com/vovakirdan/slide2048/internal/session"
	"github.com/vovakirdan/slide2048/internal/storage"
)

// resizable is implemented by games that can adapt to a new window size
// without restarting.
type resizable interface {
	Resize(w, h int)
}

// controller is implemented by games that publish a control hint line.
type controller interface {
	Controls() string
}

// GameModel runs one registry game inside Bubble Tea. It saves the final
// score once per game and hands the ranked list back to the game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	recorder   *session.Recorder
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	logger     *log.Logger // nil for local play
	standalone bool        // Back quits the program instead of returning to a menu
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a new game model. scoreLimit is the length of the
// high-score list shown on game over.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, scoreLimit int) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		recorder:   session.NewRecorder(scoreStore(store), game.ID(), scoreLimit),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// scoreStore keeps a nil *storage.Store from becoming a non-nil interface.
func scoreStore(store *storage.Store) session.ScoreStore {
	if store == nil {
		return nil
	}
	return store
}

// WithLogger returns a copy of the model that logs score-save failures.
func (m GameModel) WithLogger(logger *log.Logger) GameModel {
	m.logger = logger
	return m
}

// Init initializes the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		if action, ok := m.keyMapper.MapMouse(msg); ok {
			m.inputFrame.Set(action)
		}
		return m, nil
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionBack && (m.gameState.GameOver || m.gameState.Paused):
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, nil

	case action == core.ActionBack:
		// Esc pauses a running game; a second Esc leaves it.
		m.inputFrame.Set(core.ActionPause)

	case action == core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}

	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if g, ok := m.game.(resizable); ok {
		g.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.recorder.Reset()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.recorder.Recorded() {
		m.recordScore()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// recordScore saves the final score and passes the ranked list to the game.
// Failures never stop the game.
func (m GameModel) recordScore() {
	res := storage.Result{Score: m.gameState.Score}
	if g, ok := m.game.(*t2048.Game); ok {
		snap := g.Snapshot()
		res.MaxTile, res.Moves = snap.MaxTile, snap.Moves
	}
	scores, err := m.recorder.Record(res)
	if err != nil && m.logger != nil {
		m.logger.Warn("could not record score", "game", m.game.ID(), "score", m.gameState.Score, "error", err)
	}
	if hs, ok := m.game.(registry.HighScoreAware); ok {
		hs.SetHighScores(scores)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".slide2048", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if c, ok := m.game.(controller); ok {
		drawStatusLine(m.screen, c.Controls())
	}
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// GameState returns the state after the last tick.
func (m GameModel) GameState() core.GameState {
	return m.gameState
}

// Run plays a single game in the local terminal.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, scoreLimit int) error {
	model := NewGameModel(game, store, cfg, scoreLimit)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Drag to swipe
	)

	_, err := p.Run()
	return err
}
