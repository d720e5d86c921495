// Package t2048 wraps the board engine as a tick-driven game with classic,
// campaign, mini and big variants.
package t2048

// Level is one stage of the campaign. Building the Target tile clears it;
// the board and score carry over into the next stage.
type Level struct {
	Name   string
	Target int
	Spawn4 float64
}

// Levels is the campaign in play order. Targets double up to 8192, after
// which only the share of spawned 4s rises.
var Levels = []Level{
	{"First Merges", 128, 0.10},
	{"Corner Habit", 256, 0.10},
	{"Snake Line", 512, 0.10},
	{"Four Digits", 1024, 0.10},
	{"The Tile", 2048, 0.10},
	{"Past 2048", 4096, 0.12},
	{"Eight K", 8192, 0.15},
	{"Heavy Spawns", 8192, 0.18},
	{"Crowded Board", 8192, 0.20},
	{"Last Stand", 8192, 0.25},
}

// LevelCount returns the number of campaign levels.
func LevelCount() int {
	return len(Levels)
}

// GetLevel returns the level at a 0-based index, or nil if out of range.
func GetLevel(index int) *Level {
	if index < 0 || index >= len(Levels) {
		return nil
	}
	return &Levels[index]
}
