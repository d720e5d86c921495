package board

import (
	"errors"
	"slices"
	"testing"
)

func TestSlideLine(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		expected []int
		gain     int
	}{
		{
			name:     "simple merge",
			input:    []int{2, 2, 0, 0},
			expected: []int{4, 0, 0, 0},
			gain:     4,
		},
		{
			name:     "merge across gap",
			input:    []int{2, 0, 2, 0},
			expected: []int{4, 0, 0, 0},
			gain:     4,
		},
		{
			name:     "merge with trailing tile",
			input:    []int{2, 2, 2, 0},
			expected: []int{4, 2, 0, 0},
			gain:     4,
		},
		{
			name:     "double merge",
			input:    []int{2, 2, 2, 2},
			expected: []int{4, 4, 0, 0},
			gain:     8,
		},
		{
			name:     "merged tile does not merge again",
			input:    []int{4, 4, 8, 0},
			expected: []int{8, 8, 0, 0},
			gain:     8,
		},
		{
			name:     "two different pairs",
			input:    []int{2, 2, 4, 4},
			expected: []int{4, 8, 0, 0},
			gain:     12,
		},
		{
			name:     "no merge possible",
			input:    []int{2, 4, 8, 16},
			expected: []int{2, 4, 8, 16},
			gain:     0,
		},
		{
			name:     "slide only",
			input:    []int{0, 0, 0, 2},
			expected: []int{2, 0, 0, 0},
			gain:     0,
		},
		{
			name:     "empty line",
			input:    []int{0, 0, 0, 0},
			expected: []int{0, 0, 0, 0},
			gain:     0,
		},
		{
			name:     "longer line",
			input:    []int{2, 0, 2, 4, 0, 4},
			expected: []int{4, 8, 0, 0, 0, 0},
			gain:     12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, gain := SlideLine(tt.input)
			if !slices.Equal(result, tt.expected) {
				t.Errorf("SlideLine(%v) = %v, want %v", tt.input, result, tt.expected)
			}
			if gain != tt.gain {
				t.Errorf("SlideLine(%v) gain = %d, want %d", tt.input, gain, tt.gain)
			}
		})
	}
}

func TestSlideLineDoesNotModifyInput(t *testing.T) {
	line := []int{2, 2, 0, 4}
	SlideLine(line)
	if !slices.Equal(line, []int{2, 2, 0, 4}) {
		t.Errorf("SlideLine modified its input: %v", line)
	}
}

func TestSlideLineIdempotent(t *testing.T) {
	lines := [][]int{
		{2, 2, 2, 0},
		{2, 0, 2, 8},
		{4, 4, 2, 2},
		{8, 0, 8, 2},
		{16, 16, 16, 0},
		{2, 4, 2, 4},
		{0, 0, 0, 8},
	}

	for _, line := range lines {
		once, _ := SlideLine(line)
		twice, gain := SlideLine(once)
		if gain != 0 {
			t.Errorf("SlideLine(%v): second pass merged again (%v -> %v)", line, once, twice)
		}
		if !slices.Equal(once, twice) {
			t.Errorf("SlideLine(%v): second pass changed %v to %v", line, once, twice)
		}
	}
}

func TestSlideLineSecondPassMergesNewPairs(t *testing.T) {
	// Tiles produced by one pass may form a new pair; they only merge on
	// the next move.
	once, gain := SlideLine([]int{2, 2, 4, 0})
	if !slices.Equal(once, []int{4, 4, 0, 0}) || gain != 4 {
		t.Fatalf("first pass = %v (gain %d), want [4 4 0 0] (gain 4)", once, gain)
	}

	twice, gain := SlideLine(once)
	if !slices.Equal(twice, []int{8, 0, 0, 0}) || gain != 8 {
		t.Errorf("second pass = %v (gain %d), want [8 0 0 0] (gain 8)", twice, gain)
	}
}

func TestShiftRowExamples(t *testing.T) {
	row := Board{{2, 0, 2, 0}}

	left, gain, changed, err := Shift(row, DirLeft)
	if err != nil {
		t.Fatalf("Shift left: %v", err)
	}
	if !left.Equal(Board{{4, 0, 0, 0}}) {
		t.Errorf("Shift left = %v, want [[4 0 0 0]]", left)
	}
	if gain != 4 || !changed {
		t.Errorf("Shift left gain=%d changed=%v, want 4 true", gain, changed)
	}

	right, _, _, err := Shift(row, DirRight)
	if err != nil {
		t.Fatalf("Shift right: %v", err)
	}
	if !right.Equal(Board{{0, 0, 0, 4}}) {
		t.Errorf("Shift right = %v, want [[0 0 0 4]]", right)
	}

	if !row.Equal(Board{{2, 0, 2, 0}}) {
		t.Errorf("Shift modified its input: %v", row)
	}
}

func TestShiftDirections(t *testing.T) {
	board := Board{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}

	tests := []struct {
		dir      Direction
		expected Board
		gain     int
	}{
		{
			dir: DirLeft,
			expected: Board{
				{4, 0, 0, 0},
				{8, 0, 0, 0},
				{4, 4, 0, 0},
				{2, 0, 0, 0},
			},
			gain: 20,
		},
		{
			dir: DirRight,
			expected: Board{
				{0, 0, 0, 4},
				{0, 0, 0, 8},
				{0, 0, 4, 4},
				{0, 0, 0, 2},
			},
			gain: 20,
		},
		{
			dir: DirUp,
			expected: Board{
				{2, 4, 4, 4},
				{4, 0, 2, 0},
				{2, 0, 0, 0},
				{0, 0, 0, 0},
			},
			gain: 8,
		},
		{
			dir: DirDown,
			expected: Board{
				{0, 0, 0, 0},
				{2, 0, 0, 0},
				{4, 0, 4, 0},
				{2, 4, 2, 4},
			},
			gain: 8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			result, gain, changed, err := Shift(board, tt.dir)
			if err != nil {
				t.Fatalf("Shift(%s): %v", tt.dir, err)
			}
			if !result.Equal(tt.expected) {
				t.Errorf("Shift(%s): got\n%v\nwant\n%v", tt.dir, result, tt.expected)
			}
			if gain != tt.gain {
				t.Errorf("Shift(%s) gain = %d, want %d", tt.dir, gain, tt.gain)
			}
			if !changed {
				t.Errorf("Shift(%s) should report a change", tt.dir)
			}
		})
	}
}

func TestShiftNoChange(t *testing.T) {
	board := Board{
		{4, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	_, gain, changed, err := Shift(board, DirLeft)
	if err != nil {
		t.Fatal(err)
	}
	if changed || gain != 0 {
		t.Errorf("Shift left on aligned tiles: changed=%v gain=%d, want false 0", changed, gain)
	}
}

func TestShiftInvalidDirection(t *testing.T) {
	board := New(4)
	_, _, _, err := Shift(board, Direction(42))
	if !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("Shift with bad direction error = %v, want ErrInvalidDirection", err)
	}
}

func TestShiftMatchesRotation(t *testing.T) {
	// Moving up equals rotating clockwise, moving right, and rotating back.
	board := Board{
		{2, 4, 2, 0},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 2},
	}

	up, upGain, _, err := Shift(board, DirUp)
	if err != nil {
		t.Fatal(err)
	}

	rotated := Rotate(board)
	slid, rotGain, _, err := Shift(rotated, DirRight)
	if err != nil {
		t.Fatal(err)
	}
	back := Rotate(Rotate(Rotate(slid)))

	if !up.Equal(back) {
		t.Errorf("up move and rotated right move differ:\n%v\nvs\n%v", up, back)
	}
	if upGain != rotGain {
		t.Errorf("gain mismatch: %d vs %d", upGain, rotGain)
	}
}
