package t2048

import "github.com/vovakirdan/slide2048/internal/board"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StatePaused       GameStateType = "paused"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Mode    Mode
	Level   int // Current level (1-indexed), 0 outside the campaign
	Target  int // Current target tile value, 0 when there is none
	Score   int
	Moves   int
	Board   board.Board
	MaxTile int
	State   GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.levelCleared:
		state = StateLevelCleared
	case g.engine.IsTerminal():
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	level := 0
	if g.variant.Mode == ModeCampaign {
		level = g.levelIndex + 1
	}

	es := g.engine.Snapshot()
	return Snapshot{
		Tick:    g.tick,
		Mode:    g.variant.Mode,
		Level:   level,
		Target:  g.currentTarget,
		Score:   es.Score,
		Moves:   es.Moves,
		Board:   es.Grid,
		MaxTile: es.MaxTile,
		State:   state,
	}
}
