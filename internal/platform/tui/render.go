package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/slide2048/internal/core"
)

// styleCache holds one lipgloss style per color seen so far.
type styleCache map[core.Color]lipgloss.Style

func (sc styleCache) get(c core.Color) lipgloss.Style {
	style, ok := sc[c]
	if !ok {
		style = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Code()))
		sc[c] = style
	}
	return style
}

// RenderScreen converts a Screen into styled terminal output. Runs of
// cells sharing a color are rendered together.
func RenderScreen(s *core.Screen) string {
	styles := styleCache{}
	rows := make([]string, s.Height())

	for y := range rows {
		var sb strings.Builder
		var run []rune
		runColor := core.ColorDefault

		flush := func() {
			if len(run) == 0 {
				return
			}
			if runColor == core.ColorDefault {
				sb.WriteString(string(run))
			} else {
				sb.WriteString(styles.get(runColor).Render(string(run)))
			}
			run = run[:0]
		}

		for x := range s.Width() {
			cell := s.At(x, y)
			if cell.Color != runColor {
				flush()
				runColor = cell.Color
			}
			run = append(run, cell.Rune)
		}
		flush()
		rows[y] = sb.String()
	}
	return strings.Join(rows, "\n")
}

// drawStatusLine writes a hint on the bottom row.
func drawStatusLine(s *core.Screen, text string) {
	if s.Height() == 0 || text == "" {
		return
	}
	s.DrawTextCentered(s.Height()-1, text, core.ColorMuted)
}
