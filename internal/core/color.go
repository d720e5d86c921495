package core

import "strconv"

// Color is an ANSI 256-color foreground code. The zero value keeps the
// terminal's default foreground.
type Color uint8

// Interface colors shared by the board renderer and the status line.
const (
	ColorDefault Color = 0
	ColorMuted   Color = 245
	ColorAccent  Color = 220
	ColorAlert   Color = 203
	ColorOK      Color = 114
)

// Code returns the color in the decimal form terminals and lipgloss accept.
func (c Color) Code() string {
	return strconv.Itoa(int(c))
}
