package board

import (
	"errors"
	"testing"
)

func TestRotateFourTimesIsIdentity(t *testing.T) {
	board := Board{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4096},
		{0, 2, 0, 4},
	}

	rotated := board
	for range 4 {
		rotated = Rotate(rotated)
	}

	if !rotated.Equal(board) {
		t.Errorf("four rotations: got\n%v\nwant\n%v", rotated, board)
	}
}

func TestRotateClockwise(t *testing.T) {
	board := Board{
		{1, 2},
		{3, 4},
	}
	expected := Board{
		{3, 1},
		{4, 2},
	}

	if got := Rotate(board); !got.Equal(expected) {
		t.Errorf("Rotate = %v, want %v", got, expected)
	}
}

func TestTransposeRectangular(t *testing.T) {
	board := Board{{2, 0, 2, 0}}
	expected := Board{{2}, {0}, {2}, {0}}

	got := Transpose(board)
	if !got.Equal(expected) {
		t.Errorf("Transpose = %v, want %v", got, expected)
	}
	if !Transpose(got).Equal(board) {
		t.Errorf("Transpose twice = %v, want %v", Transpose(got), board)
	}
}

func TestHasPossibleMoves(t *testing.T) {
	tests := []struct {
		name     string
		board    Board
		expected bool
	}{
		{
			name: "full board without equal neighbours",
			board: Board{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 65536},
			},
			expected: false,
		},
		{
			name: "horizontal pair",
			board: Board{
				{2, 2, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 65536},
			},
			expected: true,
		},
		{
			name: "vertical pair in last column",
			board: Board{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 4096},
			},
			expected: true,
		},
		{
			name: "one empty cell and no merges",
			board: Board{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 0, 4096},
				{8192, 16384, 32768, 65536},
			},
			expected: true,
		},
		{
			name: "checkerboard",
			board: Board{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 2, 4},
				{4, 2, 4, 2},
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.board.HasPossibleMoves(); got != tt.expected {
				t.Errorf("HasPossibleMoves() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestEmptyCells(t *testing.T) {
	board := Board{
		{2, 0, 8, 0},
		{0, 64, 0, 256},
		{512, 0, 2048, 0},
		{0, 16, 0, 64},
	}

	cells := board.EmptyCells()
	if len(cells) != 8 {
		t.Fatalf("EmptyCells count = %d, want 8", len(cells))
	}
	for _, c := range cells {
		if board[c.Y][c.X] != 0 {
			t.Errorf("cell (%d,%d) is not empty", c.X, c.Y)
		}
	}
}

func TestMaxTileAndSum(t *testing.T) {
	board := Board{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4},
		{8, 16, 32, 0},
	}

	if got := board.MaxTile(); got != 2048 {
		t.Errorf("MaxTile = %d, want 2048", got)
	}
	if got := board.TileCount(); got != 15 {
		t.Errorf("TileCount = %d, want 15", got)
	}
	if got := board.Sum(); got != 4154 {
		t.Errorf("Sum = %d, want 4154", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		ok    bool
	}{
		{"empty 4x4", New(4), true},
		{"too small", Board{{2}}, false},
		{"too big", New(MaxSize + 1), false},
		{"ragged", Board{{2, 0}, {0}}, false},
		{"not power of two", Board{{2, 3}, {0, 0}}, false},
		{"value one", Board{{1, 0}, {0, 0}}, false},
		{"negative", Board{{-2, 0}, {0, 0}}, false},
		{"valid tiles", Board{{2, 4}, {1024, 0}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.board.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidBoard) {
				t.Errorf("Validate() = %v, want ErrInvalidBoard", err)
			}
		})
	}
}

func TestParseDirection(t *testing.T) {
	for _, dir := range Directions {
		parsed, err := ParseDirection(dir.String())
		if err != nil {
			t.Fatalf("ParseDirection(%q): %v", dir.String(), err)
		}
		if parsed != dir {
			t.Errorf("ParseDirection(%q) = %v, want %v", dir.String(), parsed, dir)
		}
	}

	if d, err := ParseDirection(" Left "); err != nil || d != DirLeft {
		t.Errorf("ParseDirection(\" Left \") = %v, %v", d, err)
	}

	if _, err := ParseDirection("diagonal"); !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("ParseDirection(diagonal) error = %v, want ErrInvalidDirection", err)
	}
}
