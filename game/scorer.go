package game

// PerfectClearBonus is added by both scorers when a drop empties the board.
const PerfectClearBonus = 10

// Scorer turns the outcome of one hard drop into points.
type Scorer interface {
	ScoreDrop(lines int, tspin, perfectClear bool) float64
}

// ClassicScorer awards nothing for a single, one for a double, two for a
// triple and four for a tetris. A T-spin awards the raw line count instead.
// A drop that clears nothing costs one point.
type ClassicScorer struct{}

func (ClassicScorer) ScoreDrop(lines int, tspin, perfectClear bool) float64 {
	var score float64
	switch {
	case tspin:
		score = float64(lines)
	case lines == 4:
		score = 4
	default:
		score = float64(lines - 1)
	}
	if perfectClear {
		score += PerfectClearBonus
	}
	return score
}

// ModernScorer awards the square of the cleared lines, doubled on a T-spin.
type ModernScorer struct{}

func (ModernScorer) ScoreDrop(lines int, tspin, perfectClear bool) float64 {
	score := float64(lines * lines)
	if tspin {
		score *= 2
	}
	if perfectClear {
		score += PerfectClearBonus
	}
	return score
}
