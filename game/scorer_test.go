package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScorers(t *testing.T) {
	tests := []struct {
		lines   int
		tspin   bool
		pclear  bool
		classic float64
		modern  float64
	}{
		{lines: 0, classic: -1, modern: 0},
		{lines: 1, classic: 0, modern: 1},
		{lines: 2, classic: 1, modern: 4},
		{lines: 3, classic: 2, modern: 9},
		{lines: 4, classic: 4, modern: 16},
		{lines: 0, tspin: true, classic: 0, modern: 0},
		{lines: 2, tspin: true, classic: 2, modern: 8},
		{lines: 3, tspin: true, classic: 3, modern: 18},
		{lines: 1, pclear: true, classic: 10, modern: 11},
		{lines: 4, pclear: true, classic: 14, modern: 26},
		{lines: 2, tspin: true, pclear: true, classic: 12, modern: 18},
	}

	for _, tt := range tests {
		require.Equal(t, tt.classic, ClassicScorer{}.ScoreDrop(tt.lines, tt.tspin, tt.pclear), "classic %+v", tt)
		require.Equal(t, tt.modern, ModernScorer{}.ScoreDrop(tt.lines, tt.tspin, tt.pclear), "modern %+v", tt)
	}
}
