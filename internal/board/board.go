// Package board implements the sliding-tile merge engine behind slide2048.
// It has no terminal or network dependencies: front ends drive it through
// Move and observe it through snapshots.
package board

import (
	"errors"
	"fmt"
)

// Board size limits.
const (
	DefaultSize = 4
	MinSize     = 2
	MaxSize     = 8
)

// ErrInvalidBoard is returned when a grid is not square or holds a value
// that is neither empty nor a power of two.
var ErrInvalidBoard = errors.New("board: invalid grid")

// Board is a row-major grid of tile values. 0 marks an empty cell.
type Board [][]int

// Cell identifies a grid position.
type Cell struct {
	X, Y int
}

// New returns an empty size×size board.
func New(size int) Board {
	b := make(Board, size)
	for y := range b {
		b[y] = make([]int, size)
	}
	return b
}

// Size returns the number of rows.
func (b Board) Size() int {
	return len(b)
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	out := make(Board, len(b))
	for y, row := range b {
		out[y] = append([]int(nil), row...)
	}
	return out
}

// Equal reports whether two boards have the same shape and values.
func (b Board) Equal(other Board) bool {
	if len(b) != len(other) {
		return false
	}
	for y := range b {
		if len(b[y]) != len(other[y]) {
			return false
		}
		for x := range b[y] {
			if b[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// Validate checks that the board is square, within size limits, and only
// holds empty cells or powers of two.
func (b Board) Validate() error {
	n := len(b)
	if n < MinSize || n > MaxSize {
		return fmt.Errorf("%w: size %d outside %d..%d", ErrInvalidBoard, n, MinSize, MaxSize)
	}
	for y, row := range b {
		if len(row) != n {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidBoard, y, len(row), n)
		}
		for x, v := range row {
			if v != 0 && !isTileValue(v) {
				return fmt.Errorf("%w: value %d at (%d,%d)", ErrInvalidBoard, v, x, y)
			}
		}
	}
	return nil
}

func isTileValue(v int) bool {
	return v >= 2 && v&(v-1) == 0
}

// EmptyCells returns the coordinates of all empty cells in row-major order.
func (b Board) EmptyCells() []Cell {
	var cells []Cell
	for y, row := range b {
		for x, v := range row {
			if v == 0 {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// HasEmptyCell returns true if there's at least one empty cell.
func (b Board) HasEmptyCell() bool {
	for _, row := range b {
		for _, v := range row {
			if v == 0 {
				return true
			}
		}
	}
	return false
}

// HasPossibleMerge returns true if any horizontally or vertically adjacent
// pair holds equal non-zero values.
func (b Board) HasPossibleMerge() bool {
	for y, row := range b {
		for x, v := range row {
			if v == 0 {
				continue
			}
			if x < len(row)-1 && row[x+1] == v {
				return true
			}
			if y < len(b)-1 && x < len(b[y+1]) && b[y+1][x] == v {
				return true
			}
		}
	}
	return false
}

// HasPossibleMoves returns true unless the board is full and no adjacent
// pair can merge.
func (b Board) HasPossibleMoves() bool {
	return b.HasEmptyCell() || b.HasPossibleMerge()
}

// MaxTile returns the highest tile value on the board.
func (b Board) MaxTile() int {
	maxVal := 0
	for _, row := range b {
		for _, v := range row {
			if v > maxVal {
				maxVal = v
			}
		}
	}
	return maxVal
}

// TileCount returns the number of non-empty cells.
func (b Board) TileCount() int {
	n := 0
	for _, row := range b {
		for _, v := range row {
			if v != 0 {
				n++
			}
		}
	}
	return n
}

// Sum returns the total of all tile values.
func (b Board) Sum() int {
	total := 0
	for _, row := range b {
		for _, v := range row {
			total += v
		}
	}
	return total
}

// Transpose returns the matrix transpose. Works on any rectangular grid.
func Transpose(b Board) Board {
	if len(b) == 0 {
		return Board{}
	}
	rows, cols := len(b), len(b[0])
	out := make(Board, cols)
	for x := range cols {
		out[x] = make([]int, rows)
		for y := range rows {
			out[x][y] = b[y][x]
		}
	}
	return out
}

// ReverseRows returns a copy with every row reversed.
func ReverseRows(b Board) Board {
	out := make(Board, len(b))
	for y, row := range b {
		out[y] = reverseLine(row)
	}
	return out
}

// Rotate returns the grid rotated 90° clockwise.
func Rotate(b Board) Board {
	return ReverseRows(Transpose(b))
}

func reverseLine(line []int) []int {
	out := make([]int, len(line))
	for i, v := range line {
		out[len(line)-1-i] = v
	}
	return out
}
