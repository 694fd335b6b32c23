package searcher

import (
	"fmt"
	"math"

	"tetris/game"
)

// Feature measures one property of a board snapshot.
type Feature struct {
	Name  string
	Score func(s *game.Snapshot) float64
}

// Heuristic is an ordered list of features scored against a weight vector of
// the same length.
type Heuristic []Feature

// Predict returns the weighted sum of every feature of s.
func (h Heuristic) Predict(weights []float64, s *game.Snapshot) float64 {
	if len(weights) != len(h) {
		panic(fmt.Sprintf("heuristic has %d features but got %d weights", len(h), len(weights)))
	}
	var score float64
	for i, f := range h {
		if weights[i] == 0 {
			continue
		}
		score += weights[i] * f.Score(s)
	}
	return score
}

// Names lists the feature names in weight order.
func (h Heuristic) Names() []string {
	names := make([]string, len(h))
	for i, f := range h {
		names[i] = f.Name
	}
	return names
}

// DefaultHeuristic is the feature set the default weights are tuned for.
func DefaultHeuristic() Heuristic {
	return Heuristic{
		AggregateHeight,
		CompleteLines,
		Holes,
		HoleDistanceFactor,
		HoleDepthFactor,
		Bumpiness,
		MaxHeight,
		TSpinTriple,
		DiffFactor,
	}
}

var AggregateHeight = Feature{"aggregate_height", func(s *game.Snapshot) float64 {
	var sum int
	for _, h := range s.Heights() {
		sum += h
	}
	return float64(sum)
}}

var CompleteLines = Feature{"complete_lines", func(s *game.Snapshot) float64 {
	return float64(s.LinesCleared)
}}

var Holes = Feature{"holes", func(s *game.Snapshot) float64 {
	return weightedHoles(s, func(y, maxHeight int) float64 { return 1 })
}}

// HoleDistanceFactor only counts holes within five rows of the top of the
// stack, weighting them by their row and their distance below that band.
var HoleDistanceFactor = Feature{"hole_distance_factor", func(s *game.Snapshot) float64 {
	return weightedHoles(s, func(y, maxHeight int) float64 {
		if y <= maxHeight-5 {
			return 0
		}
		c := y - (maxHeight - 5)
		return float64(y * c)
	})
}}

// HoleDepthFactor weights holes by how high above the floor they are.
var HoleDepthFactor = Feature{"hole_depth_factor", func(s *game.Snapshot) float64 {
	return weightedHoles(s, func(y, maxHeight int) float64 {
		switch {
		case y < 10:
			return 1
		case y < 20:
			return float64(y) / 10
		default:
			return 2
		}
	})
}}

var Bumpiness = Feature{"bumpiness", func(s *game.Snapshot) float64 {
	heights := s.Heights()
	var sum int
	for i := 1; i < len(heights); i++ {
		d := heights[i] - heights[i-1]
		if d < 0 {
			d = -d
		}
		sum += d
	}
	return float64(sum)
}}

var MaxHeight = Feature{"max_height", func(s *game.Snapshot) float64 {
	return float64(maxOf(s.Heights()))
}}

var TSpinTriple = Feature{"tspin_triple", func(s *game.Snapshot) float64 {
	if s.LinesCleared == 3 && s.TSpin {
		return 1
	}
	return 0
}}

// DiffFactor is the total deviation of the column heights from their mean.
var DiffFactor = Feature{"diff_factor", func(s *game.Snapshot) float64 {
	heights := s.Heights()
	avg := mean(heights)
	var sum float64
	for _, h := range heights {
		sum += math.Abs(float64(h) - avg)
	}
	return sum
}}

// HFactor sums the heights of the columns next to the tallest one.
var HFactor = Feature{"h_factor", func(s *game.Snapshot) float64 {
	heights := s.Heights()
	tallest := 0
	for x, h := range heights {
		if h > heights[tallest] {
			tallest = x
		}
	}
	var sum int
	if tallest > 0 {
		sum += heights[tallest-1]
	}
	if tallest < game.Width-1 {
		sum += heights[tallest+1]
	}
	return float64(sum)
}}

// ClearUselessFactor rewards clearing lines only on a stack above half height.
var ClearUselessFactor = Feature{"clear_useless_factor", func(s *game.Snapshot) float64 {
	return float64(s.LinesCleared) * (mean(s.Heights()) - 10)
}}

// weightedHoles sums weight(y, maxHeight) over every empty cell covered by an
// occupied cell in the same column.
func weightedHoles(s *game.Snapshot, weight func(y, maxHeight int) float64) float64 {
	maxHeight := maxOf(s.Heights())
	var holes float64
	for x := 0; x < game.Width; x++ {
		covered := false
		for y := maxHeight - 1; y >= 0; y-- {
			if s.Board.At(x, y) != game.Empty {
				covered = true
			} else if covered {
				holes += weight(y, maxHeight)
			}
		}
	}
	return holes
}

func maxOf(heights [game.Width]int) int {
	m := 0
	for _, h := range heights {
		if h > m {
			m = h
		}
	}
	return m
}

func mean(heights [game.Width]int) float64 {
	var sum int
	for _, h := range heights {
		sum += h
	}
	return float64(sum) / float64(len(heights))
}
