package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/slide2048/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"w", runeKey('w'), core.ActionUp, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"j", runeKey('j'), core.ActionDown, false},
		{"l", runeKey('l'), core.ActionRight, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"pause", runeKey('p'), core.ActionPause, false},
		{"restart", runeKey('r'), core.ActionRestart, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('x'), core.ActionNone, false},
	}

	km := NewKeyMapper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%s) = %v, %v; want %v, %v", tt.msg, action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapMouseSwipe(t *testing.T) {
	press := func(x, y int) tea.MouseMsg {
		return tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}
	}
	release := func(x, y int) tea.MouseMsg {
		return tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonNone, Action: tea.MouseActionRelease}
	}

	tests := []struct {
		name     string
		from, to [2]int
		action   core.Action
		ok       bool
	}{
		{"drag right", [2]int{10, 5}, [2]int{20, 5}, core.ActionRight, true},
		{"drag left", [2]int{20, 5}, [2]int{10, 6}, core.ActionLeft, true},
		{"drag down", [2]int{10, 5}, [2]int{11, 8}, core.ActionDown, true},
		{"drag up", [2]int{10, 8}, [2]int{10, 5}, core.ActionUp, true},
		{"click", [2]int{10, 5}, [2]int{11, 5}, core.ActionNone, false},
		// Two rows count as four columns, so the vertical axis wins.
		{"aspect scaled", [2]int{10, 5}, [2]int{13, 7}, core.ActionDown, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			km := NewKeyMapper()
			if _, ok := km.MapMouse(press(tt.from[0], tt.from[1])); ok {
				t.Fatal("press alone should not produce an action")
			}
			action, ok := km.MapMouse(release(tt.to[0], tt.to[1]))
			if action != tt.action || ok != tt.ok {
				t.Errorf("swipe = %v, %v; want %v, %v", action, ok, tt.action, tt.ok)
			}
		})
	}
}

func TestMapMouseReleaseWithoutPress(t *testing.T) {
	km := NewKeyMapper()
	msg := tea.MouseMsg{X: 40, Y: 10, Action: tea.MouseActionRelease}
	if _, ok := km.MapMouse(msg); ok {
		t.Error("release without press should be ignored")
	}
}

func TestMapMouseOtherButtonCancels(t *testing.T) {
	km := NewKeyMapper()
	km.MapMouse(tea.MouseMsg{X: 10, Y: 5, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	km.MapMouse(tea.MouseMsg{X: 10, Y: 5, Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})

	if _, ok := km.MapMouse(tea.MouseMsg{X: 40, Y: 5, Action: tea.MouseActionRelease}); ok {
		t.Error("wheel during a drag should cancel the swipe")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('q'), MenuActionQuit},
		{runeKey('z'), MenuActionNone},
	}

	km := NewKeyMapper()
	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.expected {
			t.Errorf("MapKeyToMenuAction(%s) = %v, want %v", tt.msg, got, tt.expected)
		}
	}
}
