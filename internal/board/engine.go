package board

import (
	"fmt"
	"math/rand"
	"time"
)

// DefaultSpawn4Prob is the chance that a spawned tile is a 4 instead of a 2.
const DefaultSpawn4Prob = 0.10

// DefaultStartTiles is the number of tiles placed by Initialize.
const DefaultStartTiles = 2

// Snapshot is an immutable view of the engine state handed to presenters.
type Snapshot struct {
	Grid     Board
	Score    int
	Moves    int
	MaxTile  int
	Terminal bool
}

// Presenter receives a snapshot after every state change.
type Presenter interface {
	Present(s Snapshot)
}

// PresenterFunc adapts a function to the Presenter interface.
type PresenterFunc func(s Snapshot)

// Present calls f(s).
func (f PresenterFunc) Present(s Snapshot) {
	f(s)
}

// Options configures a new Engine. Zero values select the defaults.
type Options struct {
	Size       int
	StartTiles int
	Spawn4Prob float64
	Rand       *rand.Rand
	Presenter  Presenter
}

// Engine owns a board and score and applies moves to them.
// It is not safe for concurrent use.
type Engine struct {
	board      Board
	score      int
	moves      int
	terminal   bool
	startTiles int
	spawn4Prob float64
	rng        *rand.Rand
	presenter  Presenter
}

// NewEngine creates an engine with an empty board. Call Initialize to
// place the starting tiles.
func NewEngine(opts Options) *Engine {
	size := opts.Size
	if size < MinSize || size > MaxSize {
		size = DefaultSize
	}
	start := opts.StartTiles
	if start <= 0 {
		start = DefaultStartTiles
	}
	prob := opts.Spawn4Prob
	if prob <= 0 || prob > 1 {
		prob = DefaultSpawn4Prob
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Engine{
		board:      New(size),
		startTiles: start,
		spawn4Prob: prob,
		rng:        rng,
		presenter:  opts.Presenter,
	}
}

// SetPresenter replaces the presenter. nil disables notifications.
func (e *Engine) SetPresenter(p Presenter) {
	e.presenter = p
}

// SetRand replaces the random source used for spawns.
func (e *Engine) SetRand(rng *rand.Rand) {
	if rng != nil {
		e.rng = rng
	}
}

// SetSpawn4Prob changes the 4-tile spawn probability for future spawns.
// Values outside (0, 1] are ignored.
func (e *Engine) SetSpawn4Prob(p float64) {
	if p <= 0 || p > 1 {
		return
	}
	e.spawn4Prob = p
}

// Initialize clears the board, resets the score and places the starting
// tiles.
func (e *Engine) Initialize() {
	e.board = New(e.board.Size())
	e.score = 0
	e.moves = 0
	e.terminal = false

	for range e.startTiles {
		e.SpawnTile()
	}
	e.terminal = !e.board.HasPossibleMoves()
	e.notify()
}

// Load replaces the board and score with a prepared position. The grid
// must match the engine's size.
func (e *Engine) Load(grid Board, score int) error {
	if err := grid.Validate(); err != nil {
		return err
	}
	if grid.Size() != e.board.Size() {
		return fmt.Errorf("%w: size %d, engine is %d", ErrInvalidBoard, grid.Size(), e.board.Size())
	}
	if score < 0 {
		return fmt.Errorf("%w: negative score %d", ErrInvalidBoard, score)
	}
	e.board = grid.Clone()
	e.score = score
	e.moves = 0
	e.terminal = !e.board.HasPossibleMoves()
	e.notify()
	return nil
}

// SpawnTile places a 2 (or a 4 with the configured probability) on a
// uniformly chosen empty cell. Returns false when the board is full.
func (e *Engine) SpawnTile() (Cell, bool) {
	empty := e.board.EmptyCells()
	if len(empty) == 0 {
		return Cell{}, false
	}

	cell := empty[e.rng.Intn(len(empty))]
	value := 2
	if e.rng.Float64() < e.spawn4Prob {
		value = 4
	}
	e.board[cell.Y][cell.X] = value
	return cell, true
}

// Move slides the board in the given direction. It reports whether the
// board changed; when it did, a new tile is spawned and the terminal state
// is re-evaluated.
func (e *Engine) Move(dir Direction) (bool, error) {
	next, gain, changed, err := Shift(e.board, dir)
	if err != nil {
		return false, err
	}
	if !changed {
		return false, nil
	}

	e.board = next
	e.score += gain
	e.moves++
	e.SpawnTile()
	e.terminal = !e.board.HasPossibleMoves()
	e.notify()
	return true, nil
}

// HasPossibleMoves reports whether any move could still change the board.
func (e *Engine) HasPossibleMoves() bool {
	return e.board.HasPossibleMoves()
}

// Grid returns a copy of the current board.
func (e *Engine) Grid() Board {
	return e.board.Clone()
}

// Score returns the accumulated merge score.
func (e *Engine) Score() int {
	return e.score
}

// Moves returns the number of effective moves since Initialize.
func (e *Engine) Moves() int {
	return e.moves
}

// Size returns the board dimension.
func (e *Engine) Size() int {
	return e.board.Size()
}

// MaxTile returns the highest tile on the board.
func (e *Engine) MaxTile() int {
	return e.board.MaxTile()
}

// IsTerminal reports whether the game is over.
func (e *Engine) IsTerminal() bool {
	return e.terminal
}

// Snapshot returns an immutable copy of the engine state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Grid:     e.board.Clone(),
		Score:    e.score,
		Moves:    e.moves,
		MaxTile:  e.board.MaxTile(),
		Terminal: e.terminal,
	}
}

func (e *Engine) notify() {
	if e.presenter != nil {
		e.presenter.Present(e.Snapshot())
	}
}
