package web

import "github.com/vovakirdan/slide2048/internal/board"

// MessageType names a WebSocket message.
type MessageType string

const (
	// Client to server.
	TypeMove    MessageType = "move"
	TypeSwipe   MessageType = "swipe"
	TypeRestart MessageType = "restart"

	// Server to client.
	TypeState    MessageType = "state"
	TypeGameOver MessageType = "game_over"
	TypeError    MessageType = "error"
)

// Message is the single JSON envelope used in both directions.
type Message struct {
	Type       MessageType `json:"type"`
	Direction  string      `json:"direction,omitempty"`
	Swipe      *Swipe      `json:"swipe,omitempty"`
	State      *State      `json:"state,omitempty"`
	HighScores []int       `json:"highScores,omitempty"`
	Error      string      `json:"error,omitempty"`
}

// Swipe is a pointer gesture in page pixels.
type Swipe struct {
	StartX int `json:"startX"`
	StartY int `json:"startY"`
	EndX   int `json:"endX"`
	EndY   int `json:"endY"`
}

// Delta returns the displacement of the gesture. Positive dy points down.
func (s Swipe) Delta() (dx, dy int) {
	return s.EndX - s.StartX, s.EndY - s.StartY
}

// State is the board as seen by the browser.
type State struct {
	Game     string  `json:"game"`
	Grid     [][]int `json:"grid"`
	Score    int     `json:"score"`
	Moves    int     `json:"moves"`
	MaxTile  int     `json:"maxTile"`
	Terminal bool    `json:"terminal"`
}

func newState(gameID string, snap board.Snapshot) *State {
	grid := make([][]int, len(snap.Grid))
	for i, row := range snap.Grid {
		grid[i] = append([]int(nil), row...)
	}
	return &State{
		Game:     gameID,
		Grid:     grid,
		Score:    snap.Score,
		Moves:    snap.Moves,
		MaxTile:  snap.MaxTile,
		Terminal: snap.Terminal,
	}
}
