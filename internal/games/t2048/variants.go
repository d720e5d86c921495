package t2048

import "github.com/vovakirdan/slide2048/internal/config"

// Mode represents the game mode.
type Mode string

const (
	ModeClassic  Mode = "classic"
	ModeCampaign Mode = "campaign"
)

// Variant is a registered flavor of the game. Each variant keeps its own
// high-score list.
type Variant struct {
	ID    string
	Title string
	Mode  Mode
	Size  int // 0 uses board.size from the config
}

// Variants lists every registered variant. The first is the default.
var Variants = []Variant{
	{ID: "2048", Title: "2048", Mode: ModeClassic},
	{ID: "2048_campaign", Title: "2048 (Campaign)", Mode: ModeCampaign},
	{ID: "2048_mini", Title: "2048 Mini (3x3)", Mode: ModeClassic, Size: 3},
	{ID: "2048_big", Title: "2048 Big (5x5)", Mode: ModeClassic, Size: 5},
}

// VariantByID looks up a registered variant.
func VariantByID(id string) (Variant, bool) {
	for _, v := range Variants {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}

// Apply returns cfg adjusted for the variant's board size.
// Start tiles are capped so they always fit on the board.
func (v Variant) Apply(cfg config.Config) config.Config {
	if v.Size > 0 {
		cfg.Board.Size = v.Size
	}
	if cells := cfg.Board.Size * cfg.Board.Size; cfg.Board.StartTiles > cells {
		cfg.Board.StartTiles = cells
	}
	return cfg
}
