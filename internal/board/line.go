package board

import "fmt"

// SlideLine slides a line toward its front and merges equal neighbours.
// Zeros are removed first, then each adjacent equal pair merges once into
// a tile of double value; a merged tile does not merge again in the same
// pass. The result is padded with zeros to the input length. The returned
// gain is the sum of all merged tile values.
func SlideLine(line []int) (result []int, gain int) {
	compact := make([]int, 0, len(line))
	for _, v := range line {
		if v != 0 {
			compact = append(compact, v)
		}
	}

	result = make([]int, 0, len(line))
	for i := 0; i < len(compact); i++ {
		if i+1 < len(compact) && compact[i] == compact[i+1] {
			merged := compact[i] * 2
			result = append(result, merged)
			gain += merged
			i++ // skip the consumed partner
			continue
		}
		result = append(result, compact[i])
	}

	for len(result) < len(line) {
		result = append(result, 0)
	}
	return result, gain
}

// orient reshapes the grid so that dir becomes a move to the left.
func orient(b Board, dir Direction) Board {
	switch dir {
	case DirRight:
		return ReverseRows(b)
	case DirUp:
		return Transpose(b)
	case DirDown:
		return ReverseRows(Transpose(b))
	default:
		return b.Clone()
	}
}

// restore undoes orient.
func restore(b Board, dir Direction) Board {
	switch dir {
	case DirRight:
		return ReverseRows(b)
	case DirUp:
		return Transpose(b)
	case DirDown:
		return Transpose(ReverseRows(b))
	default:
		return b
	}
}

// Shift applies a move to a grid without spawning.
// Returns the new grid, the score gained, and whether any cell changed.
// The input grid is not modified. Any rectangular grid is accepted.
func Shift(b Board, dir Direction) (Board, int, bool, error) {
	if !dir.Valid() {
		return b, 0, false, fmt.Errorf("%w: %d", ErrInvalidDirection, int(dir))
	}

	lines := orient(b, dir)
	total := 0
	for i, line := range lines {
		slid, gain := SlideLine(line)
		lines[i] = slid
		total += gain
	}

	next := restore(lines, dir)
	return next, total, !next.Equal(b), nil
}
