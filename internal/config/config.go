// Package config provides YAML-based game configuration loading,
// difficulty presets and environment-driven server settings.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/slide2048/internal/board"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("invalid config")

// Config contains all configuration for the 2048 game.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Input   InputConfig   `yaml:"input"`
	Scores  ScoresConfig  `yaml:"scores"`
	Display DisplayConfig `yaml:"display"`
}

// BoardConfig defines the grid and tile spawning parameters.
type BoardConfig struct {
	Size              int     `yaml:"size"`
	StartTiles        int     `yaml:"start_tiles"`
	Spawn4Probability float64 `yaml:"spawn4_probability"` // (0.0, 1.0]
}

// InputConfig defines pointer gesture parameters.
type InputConfig struct {
	SwipeThreshold int `yaml:"swipe_threshold"` // Minimum pointer travel in pixels for a browser swipe
}

// ScoresConfig defines the high-score list.
type ScoresConfig struct {
	Limit int `yaml:"limit"` // Entries shown on game over
}

// DisplayConfig defines rendering parameters.
type DisplayConfig struct {
	TickRate int `yaml:"tick_rate"`
}

const (
	maxScoreLimit = 100
	maxTickRate   = 240
)

// Validate checks that every setting is within its allowed range.
func (c Config) Validate() error {
	if c.Board.Size < board.MinSize || c.Board.Size > board.MaxSize {
		return fmt.Errorf("%w: board.size %d not in %d..%d", ErrInvalidConfig, c.Board.Size, board.MinSize, board.MaxSize)
	}
	cells := c.Board.Size * c.Board.Size
	if c.Board.StartTiles < 1 || c.Board.StartTiles > cells {
		return fmt.Errorf("%w: board.start_tiles %d not in 1..%d", ErrInvalidConfig, c.Board.StartTiles, cells)
	}
	if c.Board.Spawn4Probability <= 0 || c.Board.Spawn4Probability > 1 {
		return fmt.Errorf("%w: board.spawn4_probability %v not in (0, 1]", ErrInvalidConfig, c.Board.Spawn4Probability)
	}
	if c.Input.SwipeThreshold <= 0 {
		return fmt.Errorf("%w: input.swipe_threshold must be positive, got %d", ErrInvalidConfig, c.Input.SwipeThreshold)
	}
	if c.Scores.Limit < 1 || c.Scores.Limit > maxScoreLimit {
		return fmt.Errorf("%w: scores.limit %d not in 1..%d", ErrInvalidConfig, c.Scores.Limit, maxScoreLimit)
	}
	if c.Display.TickRate < 1 || c.Display.TickRate > maxTickRate {
		return fmt.Errorf("%w: display.tick_rate %d not in 1..%d", ErrInvalidConfig, c.Display.TickRate, maxTickRate)
	}
	return nil
}

// EngineOptions converts the board settings into engine options.
// The random source and presenter are left for the caller.
func (c Config) EngineOptions() board.Options {
	return board.Options{
		Size:       c.Board.Size,
		StartTiles: c.Board.StartTiles,
		Spawn4Prob: c.Board.Spawn4Probability,
	}
}
