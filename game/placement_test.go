package game

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindPossiblePlacements(t *testing.T) {
	t.Run("O on an empty board lands once per column pair", func(t *testing.T) {
		g := New(ClassicScorer{}, 1)
		withPiece(g, O)

		placements := g.FindPossiblePlacements()

		require.Len(t, placements, 9)
		for i, p := range placements {
			require.Equal(t, Placement{X: i, Y: 0, Orientation: 0}, p)
		}
	})

	t.Run("T on an empty board", func(t *testing.T) {
		g := New(ClassicScorer{}, 1)
		withPiece(g, T)

		placements := g.FindPossiblePlacements()

		perOrientation := map[int]int{}
		for _, p := range placements {
			perOrientation[p.Orientation]++
		}
		require.Equal(t, map[int]int{0: 8, 1: 9, 2: 8, 3: 9}, perOrientation)
		require.Contains(t, placements, Placement{X: 0, Y: -1, Orientation: 0})
		require.Contains(t, placements, Placement{X: -1, Y: 0, Orientation: 1})
		require.Contains(t, placements, Placement{X: 7, Y: 0, Orientation: 2})
	})

	t.Run("I on an empty board", func(t *testing.T) {
		g := New(ClassicScorer{}, 1)
		withPiece(g, I)

		placements := g.FindPossiblePlacements()

		require.Len(t, placements, 7+10+7+10)
		require.Contains(t, placements, Placement{X: -2, Y: 0, Orientation: 1})
		require.Contains(t, placements, Placement{X: 6, Y: -2, Orientation: 0})
	})

	t.Run("finds placements tucked under an overhang", func(t *testing.T) {
		g := New(ClassicScorer{}, 1)
		for x := 0; x < 6; x++ {
			g.board.Set(x, 2, Red)
		}
		withPiece(g, O)

		placements := g.FindPossiblePlacements()

		require.Len(t, placements, 15)
		for x := 0; x <= 8; x++ {
			require.Contains(t, placements, Placement{X: x, Y: 0})
		}
		for x := 0; x <= 5; x++ {
			require.Contains(t, placements, Placement{X: x, Y: 3})
		}
	})

	t.Run("results are sorted and distinct", func(t *testing.T) {
		g := New(ClassicScorer{}, 77)
		for i := 0; i < 6; i++ {
			g.HardDrop()
		}

		placements := g.FindPossiblePlacements()

		require.NotEmpty(t, placements)
		require.True(t, sort.SliceIsSorted(placements, func(i, j int) bool {
			a, b := placements[i], placements[j]
			if a.Orientation != b.Orientation {
				return a.Orientation < b.Orientation
			}
			if a.X != b.X {
				return a.X < b.X
			}
			return a.Y < b.Y
		}))
		seen := map[Placement]bool{}
		for _, p := range placements {
			require.False(t, seen[p], "duplicate %+v", p)
			seen[p] = true
		}
	})

	t.Run("every result locks where it says", func(t *testing.T) {
		g := New(ClassicScorer{}, 9)
		for i := 0; i < 4; i++ {
			g.HardDrop()
		}
		family := g.Piece()

		for _, p := range g.FindPossiblePlacements() {
			clone := g.Clone()
			clone.SetPosition(p.X, p.Y, p.Orientation)
			require.False(t, clone.Move(0, -1), "%+v must rest on the stack", p)
			_, ok := clone.HardDrop()
			require.True(t, ok)

			board := clone.Board()
			color := family.Color()
			for _, q := range Catalog(family).Shape(p.Orientation).Points {
				x, y := p.X+q.X, p.Y+q.Y
				if y < Height && clone.LinesCleared() == 0 {
					require.Equal(t, color, board.At(x, y))
				}
			}
		}
	})

	t.Run("searching twice is idempotent and leaves the game alone", func(t *testing.T) {
		g := New(ClassicScorer{}, 31)
		g.HardDrop()
		g.Rotate(CW)
		g.Move(1, 0)
		before := g.Snapshot(5)

		first := g.FindPossiblePlacements()
		require.Equal(t, before, g.Snapshot(5))
		second := g.FindPossiblePlacements()
		require.Equal(t, before, g.Snapshot(5))
		require.Equal(t, first, second)
	})

	t.Run("colliding root yields nothing", func(t *testing.T) {
		g := New(ClassicScorer{}, 1)
		g.board.Set(0, 0, Red)
		withPiece(g, O)
		g.SetPosition(0, 0, 0)
		require.Empty(t, g.FindPossiblePlacements())
	})
}

func TestPlacementKey(t *testing.T) {
	seen := map[uint32]Placement{}
	for o := 0; o < 4; o++ {
		for x := -3; x <= Width; x++ {
			for y := -3; y <= Height; y++ {
				p := Placement{X: x, Y: y, Orientation: o}
				other, dup := seen[p.key()]
				require.False(t, dup, "%+v collides with %+v", p, other)
				seen[p.key()] = p
			}
		}
	}
}
