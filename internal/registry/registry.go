// Package registry keeps the catalogue of playable variants. Variants
// register at init time and front ends list and create them by ID.
package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/vovakirdan/slide2048/internal/core"
)

// ErrUnknownGame is returned by Create for IDs nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is a tick-driven variant. Implementations hold only game logic;
// the front end owns timing, input mapping and output.
type Game interface {
	// ID is the stable identifier used on the command line and as the
	// high-score key, e.g. "2048" or "2048_mini".
	ID() string
	Title() string

	// Reset starts a new game. It is also how a finished game restarts.
	Reset(cfg core.RuntimeConfig)

	// Step applies one frame of input.
	Step(in core.InputFrame) core.StepResult

	Render(dst *core.Screen)
	State() core.GameState
}

// HighScoreAware is implemented by games that show the ranked high-score
// list once they end.
type HighScoreAware interface {
	SetHighScores(scores []int)
}

// GameInfo describes a registered variant.
type GameInfo struct {
	ID    string
	Title string
	Size  int // Board side length, 0 when it comes from the config
}

// Factory returns a fresh game instance.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries []entry
	byID    = make(map[string]int)
)

// Register adds a variant. Registering the same ID twice panics.
func Register(info GameInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := byID[info.ID]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", info.ID))
	}
	byID[info.ID] = len(entries)
	entries = append(entries, entry{info: info, factory: f})
}

// List returns every variant in registration order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, len(entries))
	for i, e := range entries {
		out[i] = e.info
	}
	return out
}

// Lookup returns the info for a registered variant.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	i, ok := byID[id]
	if !ok {
		return GameInfo{}, false
	}
	return entries[i].info, true
}

// Create returns a new instance of the variant.
func Create(id string) (Game, error) {
	mu.RLock()
	i, ok := byID[id]
	var f Factory
	if ok {
		f = entries[i].factory
	}
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return f(), nil
}

// Exists reports whether a variant is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}
