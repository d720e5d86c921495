package config

import (
	_ "embed"

	"github.com/vovakirdan/slide2048/internal/board"
	"github.com/vovakirdan/slide2048/internal/core"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// DefaultScoreLimit is the number of high scores shown on game over.
const DefaultScoreLimit = 5

// Default returns the hardcoded default configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Size:              board.DefaultSize,
			StartTiles:        board.DefaultStartTiles,
			Spawn4Probability: board.DefaultSpawn4Prob,
		},
		Input: InputConfig{
			SwipeThreshold: core.DefaultSwipeThreshold,
		},
		Scores: ScoresConfig{
			Limit: DefaultScoreLimit,
		},
		Display: DisplayConfig{
			TickRate: 60,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
