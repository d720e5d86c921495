package t2048

import (
	"math/rand"

	"github.com/vovakirdan/slide2048/internal/board"
	"github.com/vovakirdan/slide2048/internal/config"
	"github.com/vovakirdan/slide2048/internal/core"
	"github.com/vovakirdan/slide2048/internal/registry"
	"github.com/vovakirdan/slide2048/internal/session"
)

// levelClearDelay is how long the level-cleared overlay stays up (2s at 60fps).
const levelClearDelay = 120

// gameConfig is the configuration handed to games built by the registry.
// The CLI sets it once at startup.
var gameConfig = config.Default()

// SetConfig sets the configuration used by games created afterwards.
// Games already created keep the configuration they were built with.
func SetConfig(cfg config.Config) {
	gameConfig = cfg
}

// CurrentConfig returns the configuration new games will use.
func CurrentConfig() config.Config {
	return gameConfig
}

// Game adapts the board engine to the tick-driven registry interface.
type Game struct {
	variant Variant
	base    config.Config
	cfg     config.Config
	engine  *board.Engine
	tick    uint64

	levelIndex    int // Current level (0-indexed), campaign only
	startLevel    int // 1-indexed level Reset starts from, 0 for the first
	currentTarget int // Current tile target, 0 when there is none

	screenW int
	screenH int

	levelCleared    bool
	won             bool
	paused          bool
	tooSmall        bool
	levelClearTicks int
	highScores      []int
}

// NewVariant creates a game for the given variant using the current
// configuration.
func NewVariant(v Variant) *Game {
	return NewVariantWithConfig(v, gameConfig)
}

// NewVariantWithConfig creates a game for the given variant. The variant
// overrides are applied on top of cfg at every Reset.
func NewVariantWithConfig(v Variant, cfg config.Config) *Game {
	return &Game{variant: v, base: cfg}
}

// New creates a classic 4x4 game.
func New() *Game {
	return NewVariant(Variants[0])
}

// NewCampaign creates a campaign mode game.
func NewCampaign() *Game {
	v, _ := VariantByID("2048_campaign")
	return NewVariant(v)
}

func init() {
	for _, v := range Variants {
		info := registry.GameInfo{ID: v.ID, Title: v.Title, Size: v.Size}
		registry.Register(info, func() registry.Game {
			return NewVariant(v)
		})
	}
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// Mode returns the game mode.
func (g *Game) Mode() Mode {
	return g.variant.Mode
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = g.variant.Apply(g.base)
	g.tick = 0
	g.levelCleared = false
	g.won = false
	g.paused = false
	g.levelClearTicks = 0
	g.highScores = nil

	opts := g.cfg.EngineOptions()
	opts.Rand = rand.New(rand.NewSource(cfg.Seed))
	g.engine = board.NewEngine(opts)

	g.levelIndex = 0
	if g.variant.Mode == ModeCampaign && g.startLevel > 0 && g.startLevel <= LevelCount() {
		g.levelIndex = g.startLevel - 1
	}
	g.loadLevel()

	g.engine.Initialize()
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// StartAt makes every following Reset begin at the given campaign level
// (1-indexed). 0 starts from the first level.
func (g *Game) StartAt(level int) {
	g.startLevel = level
}

// Resize updates the screen dimensions without restarting the game.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < g.minWidth() || h < g.minHeight()
}

// loadLevel sets up the current level parameters.
func (g *Game) loadLevel() {
	if g.variant.Mode != ModeCampaign {
		g.currentTarget = 0
		g.engine.SetSpawn4Prob(g.cfg.Board.Spawn4Probability)
		return
	}

	level := GetLevel(g.levelIndex)
	if level == nil {
		level = GetLevel(LevelCount() - 1)
	}
	g.currentTarget = level.Target
	g.engine.SetSpawn4Prob(level.Spawn4)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.over() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.levelCleared {
		g.levelClearTicks++
		if g.levelClearTicks >= levelClearDelay {
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	if g.over() {
		return core.StepResult{State: g.State()}
	}

	// At most one move per tick; vertical wins if several keys arrived.
	moved := false
	for _, action := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		if in.Has(action) {
			moved = g.processMove(action)
			break
		}
	}

	return core.StepResult{State: g.State(), Moved: moved}
}

// processMove applies a move and checks the campaign target.
func (g *Game) processMove(action core.Action) bool {
	changed, err := g.engine.Move(session.DirectionFor(action))
	if err != nil || !changed {
		return false
	}

	if g.currentTarget > 0 && g.engine.MaxTile() >= g.currentTarget {
		g.levelCleared = true
		g.levelClearTicks = 0
	}
	return true
}

// advanceLevel moves to the next level, keeping board and score.
func (g *Game) advanceLevel() {
	g.levelCleared = false
	g.levelClearTicks = 0

	if g.levelIndex >= LevelCount()-1 {
		g.won = true
		return
	}

	g.levelIndex++
	g.loadLevel()
}

// over reports whether the game has ended, by loss or by finishing the campaign.
func (g *Game) over() bool {
	return g.won || (g.engine.IsTerminal() && !g.levelCleared)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.engine.Score(),
		GameOver: g.over(),
		Paused:   g.paused || g.tooSmall || g.levelCleared,
	}
}

// SetHighScores sets the ranked list shown on the game-over overlay.
func (g *Game) SetHighScores(scores []int) {
	g.highScores = append([]int(nil), scores...)
}

// Load places a prepared position of the variant's size, keeping mode and
// level.
func (g *Game) Load(grid board.Board, score int) error {
	return g.engine.Load(grid, score)
}
