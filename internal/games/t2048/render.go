package t2048

import (
	"fmt"
	"math/bits"
	"strconv"

	"github.com/vovakirdan/slide2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including the left border)
	cellHeight = 2 // Height of each cell (including the top border)
	hudHeight  = 3
	maxLabel   = cellWidth - 1
)

// tileColors is the tile ramp in ANSI 256-color codes, from pale grey
// through orange and red to gold. Larger values use the last entry.
var tileColors = []struct {
	value int
	color core.Color
}{
	{2, 252},
	{4, 230},
	{8, 215},
	{16, 209},
	{32, 203},
	{64, 196},
	{128, 229},
	{256, 228},
	{512, 227},
	{1024, 221},
	{2048, 220},
	{4096, 213},
	{8192, 135},
}

// TileColor returns the display color for a tile value.
func TileColor(value int) core.Color {
	for _, tc := range tileColors {
		if value <= tc.value {
			return tc.color
		}
	}
	return tileColors[len(tileColors)-1].color
}

// TileLabel formats a tile value to fit inside a cell, switching to
// exponent notation for very large tiles.
func TileLabel(value int) string {
	s := strconv.Itoa(value)
	if len(s) <= maxLabel {
		return s
	}
	return fmt.Sprintf("2^%d", bits.TrailingZeros(uint(value)))
}

func (g *Game) boardSize() int {
	return g.cfg.Board.Size
}

func (g *Game) boardWidth() int {
	return g.boardSize()*cellWidth + 1
}

func (g *Game) boardHeight() int {
	return g.boardSize()*cellHeight + 1
}

func (g *Game) minWidth() int {
	return max(g.boardWidth()+2, 30)
}

func (g *Game) minHeight() int {
	return max(g.boardHeight()+hudHeight+2, 16)
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW := g.boardWidth()
	boardH := g.boardHeight()
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorAlert)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", g.minWidth(), g.minHeight()), core.ColorDefault)
}

// renderHUD draws the title, score and level or max tile.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := g.variant.Title
	dst.DrawTextColored(boardX+(boardW-len(title))/2, 0, title, core.ColorAccent)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.engine.Score()))

	var info string
	if g.variant.Mode == ModeCampaign {
		info = fmt.Sprintf("Level %d/%d  Target: %d", g.levelIndex+1, LevelCount(), g.currentTarget)
	} else {
		info = fmt.Sprintf("Max: %d", g.engine.MaxTile())
	}
	dst.DrawText(max(boardX+boardW-len(info), boardX), 1, info)

	moves := fmt.Sprintf("Moves: %d", g.engine.Moves())
	dst.DrawTextColored(boardX+(boardW-len(moves))/2, 2, moves, core.ColorMuted)
}

// renderBoard draws the grid with box-drawing borders and colored tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	n := g.boardSize()

	for y := range n + 1 {
		for x := range n + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			dst.SetColored(px, py, gridCorner(x, y, n), core.ColorMuted)

			if x < n {
				for i := 1; i < cellWidth; i++ {
					dst.SetColored(px+i, py, '─', core.ColorMuted)
				}
			}
			if y < n {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', core.ColorMuted)
				}
			}
		}
	}

	grid := g.engine.Grid()
	for y, row := range grid {
		for x, val := range row {
			if val == 0 {
				continue
			}
			label := TileLabel(val)
			cellX := boardX + x*cellWidth + 1
			cellY := boardY + y*cellHeight + 1
			pad := (maxLabel - len(label) + 1) / 2
			dst.DrawTextColored(cellX+pad, cellY, label, TileColor(val))
		}
	}
}

func gridCorner(x, y, n int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == n:
		return '┐'
	case y == n && x == 0:
		return '└'
	case y == n && x == n:
		return '┘'
	case y == 0:
		return '┬'
	case y == n:
		return '┴'
	case x == 0:
		return '├'
	case x == n:
		return '┤'
	default:
		return '┼'
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	switch {
	case g.paused:
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")

	case g.levelCleared:
		target := fmt.Sprintf("Target %d reached!", g.currentTarget)
		if g.levelIndex >= LevelCount()-1 {
			g.drawOverlay(dst, centerX, centerY, target, "Final level complete!")
		} else {
			g.drawOverlay(dst, centerX, centerY, target, fmt.Sprintf("Next: Level %d", g.levelIndex+2))
		}

	case g.won:
		lines := append([]string{"CAMPAIGN COMPLETE!", fmt.Sprintf("Score: %d", g.engine.Score())}, g.highScoreLines()...)
		g.drawOverlay(dst, centerX, centerY, append(lines, "Press R to restart")...)

	case g.engine.IsTerminal():
		lines := []string{
			"GAME OVER",
			fmt.Sprintf("Score: %d", g.engine.Score()),
			fmt.Sprintf("Max tile: %d", g.engine.MaxTile()),
		}
		lines = append(lines, g.highScoreLines()...)
		g.drawOverlay(dst, centerX, centerY, append(lines, "Press R to restart")...)
	}
}

// highScoreLines formats the ranked list for the game-over overlay.
func (g *Game) highScoreLines() []string {
	if len(g.highScores) == 0 {
		return nil
	}
	lines := []string{"", "High scores"}
	for i, s := range g.highScores {
		lines = append(lines, fmt.Sprintf("%d. %d", i+1, s))
	}
	return append(lines, "")
}

// drawOverlay draws a centered boxed text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.Rect{X: centerX - boxW/2, Y: max(centerY-boxH/2, 0), W: boxW, H: boxH}

	dst.FillRect(box)
	dst.DrawFrame(box, core.ColorDefault)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/HJKL or drag: Move | P: Pause | R: Restart | Q: Quit"
}
