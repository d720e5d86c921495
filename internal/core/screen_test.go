package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)

	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 6x3", s.Width(), s.Height())
	}
	want := strings.Repeat("      \n", 2) + "      "
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestNewScreenNegativeSize(t *testing.T) {
	s := NewScreen(-4, -1)

	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("size = %dx%d, want 0x0", s.Width(), s.Height())
	}
	if s.String() != "" {
		t.Errorf("String() = %q, want empty", s.String())
	}
}

func TestScreenSetOutOfBounds(t *testing.T) {
	s := NewScreen(4, 4)

	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 4}} {
		s.Set(p[0], p[1], 'X')
		if got := s.At(p[0], p[1]); got != blank {
			t.Errorf("At(%d, %d) = %v, want blank", p[0], p[1], got)
		}
	}
	if strings.ContainsRune(s.String(), 'X') {
		t.Errorf("out of bounds write leaked:\n%s", s.String())
	}
}

func TestScreenDrawText(t *testing.T) {
	tests := []struct {
		name string
		x    int
		text string
		want string
	}{
		{"inside", 1, "ab", " ab   "},
		{"clipped right", 4, "abcd", "    ab"},
		{"clipped left", -2, "abcd", "cd    "},
		{"unicode", 0, "→2", "→2    "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(6, 1)
			s.DrawText(tt.x, 0, tt.text)
			if got := s.Line(0); got != tt.want {
				t.Errorf("Line(0) = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawTextCentered(1, "2048", ColorAccent)

	if got := s.Line(1); got != "   2048   " {
		t.Errorf("Line(1) = %q, want centered text", got)
	}
	if c := s.At(3, 1); c.Color != ColorAccent {
		t.Errorf("color = %v, want %v", c.Color, ColorAccent)
	}
}

func TestScreenFrame(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawText(0, 1, "xxxxx")
	r := Rect{X: 0, Y: 0, W: 5, H: 3}
	s.FillRect(r)
	s.DrawFrame(r, ColorMuted)

	want := "┌───┐\n│   │\n└───┘\n     "
	if got := s.String(); got != want {
		t.Errorf("frame:\n%s\nwant:\n%s", got, want)
	}
	if s.At(0, 0).Color != ColorMuted {
		t.Errorf("corner color = %v, want %v", s.At(0, 0).Color, ColorMuted)
	}
}

func TestScreenResizeClears(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "abcd")

	s.Resize(2, 3)
	if s.Width() != 2 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 2x3", s.Width(), s.Height())
	}
	if got := s.String(); got != "  \n  \n  " {
		t.Errorf("String() after resize = %q", got)
	}
}

func TestColorCode(t *testing.T) {
	if got := ColorAccent.Code(); got != "220" {
		t.Errorf("Code() = %q, want 220", got)
	}
}
