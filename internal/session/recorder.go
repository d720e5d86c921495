package session

import (
	"fmt"

	"github.com/vovakirdan/slide2048/internal/storage"
)

// ScoreStore is the part of the score database a session needs.
type ScoreStore interface {
	SaveResult(r storage.Result) (int64, error)
	RankedScores(gameID string, limit int) ([]int, error)
}

// Recorder saves the final score of one game exactly once and loads the
// ranked high-score list that goes with it. A nil store disables saving.
type Recorder struct {
	store    ScoreStore
	gameID   string
	limit    int
	recorded bool
}

// NewRecorder creates a recorder for the given game variant.
func NewRecorder(store ScoreStore, gameID string, limit int) *Recorder {
	return &Recorder{
		store:  store,
		gameID: gameID,
		limit:  limit,
	}
}

// Record saves the result if this game has not been recorded yet and
// returns the current top scores. Zero scores are not saved. Later calls
// only reload the list.
func (r *Recorder) Record(res storage.Result) ([]int, error) {
	if r.store == nil {
		r.recorded = true
		return nil, nil
	}

	if !r.recorded {
		r.recorded = true
		if res.Score > 0 {
			res.GameID = r.gameID
			if _, err := r.store.SaveResult(res); err != nil {
				return nil, fmt.Errorf("record score for %s: %w", r.gameID, err)
			}
		}
	}

	return r.HighScores()
}

// HighScores loads the ranked list without saving anything.
func (r *Recorder) HighScores() ([]int, error) {
	if r.store == nil {
		return nil, nil
	}
	scores, err := r.store.RankedScores(r.gameID, r.limit)
	if err != nil {
		return nil, fmt.Errorf("load high scores for %s: %w", r.gameID, err)
	}
	return scores, nil
}

// Recorded reports whether the current game's score has been handled.
func (r *Recorder) Recorded() bool {
	return r.recorded
}

// Reset arms the recorder for a new game.
func (r *Recorder) Reset() {
	r.recorded = false
}
