package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func fillRow(b *Board, y int, c Color) {
	for x := 0; x < Width; x++ {
		b.Set(x, y, c)
	}
}

func occupied(b *Board) int {
	n := 0
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if b.At(x, y) != Empty {
				n++
			}
		}
	}
	return n
}

func TestBoardCollides(t *testing.T) {
	var b Board
	square := Catalog(O).Shape(0)

	require.False(t, b.Collides(square, 0, 0))
	require.False(t, b.Collides(square, Width-2, Height-2))
	require.True(t, b.Collides(square, -1, 0), "left wall")
	require.True(t, b.Collides(square, Width-1, 0), "right wall")
	require.True(t, b.Collides(square, 0, -1), "floor")
	require.True(t, b.Collides(square, 0, Height-1), "ceiling")

	b.Set(5, 5, Red)
	require.True(t, b.Collides(square, 4, 4))
	require.True(t, b.Collides(square, 5, 5))
	require.False(t, b.Collides(square, 6, 5))
}

func TestBoardFreeze(t *testing.T) {
	t.Run("writes the piece color into its cells", func(t *testing.T) {
		var b Board
		shape := Catalog(T).Shape(0)
		b.Freeze(shape, Purple, 3, 0)

		require.Equal(t, Purple, b.At(3, 1))
		require.Equal(t, Purple, b.At(4, 1))
		require.Equal(t, Purple, b.At(5, 1))
		require.Equal(t, Purple, b.At(4, 2))
		require.Equal(t, 4, occupied(&b))
	})

	t.Run("overlapping placement overwrites without checking", func(t *testing.T) {
		var b Board
		b.Set(0, 0, Red)
		b.Freeze(Catalog(O).Shape(0), Yellow, 0, 0)

		require.Equal(t, Yellow, b.At(0, 0), "Freeze trusts the caller's collision check")
		require.Equal(t, 4, occupied(&b))
	})

	t.Run("out of range placement panics", func(t *testing.T) {
		var b Board
		require.Panics(t, func() { b.Freeze(Catalog(O).Shape(0), Yellow, -1, 0) })
	})
}

func TestBoardClearLines(t *testing.T) {
	t.Run("non-contiguous full rows", func(t *testing.T) {
		var b Board
		for y := 0; y < Height; y++ {
			b.Set(y%Width, y, Color(1+y%7))
		}
		fillRow(&b, 3, Blue)
		fillRow(&b, 7, Green)
		original := b.Clone()

		require.Equal(t, 2, b.ClearLines())

		for y := 0; y < 3; y++ {
			require.Equal(t, original[y], b[y], "row %d below the first clear is untouched", y)
		}
		for y := 3; y < 6; y++ {
			require.Equal(t, original[y+1], b[y], "row %d shifts down once", y)
		}
		for y := 6; y < Height-2; y++ {
			require.Equal(t, original[y+2], b[y], "row %d shifts down twice", y)
		}
		require.Equal(t, [Width]Color{}, b[Height-2])
		require.Equal(t, [Width]Color{}, b[Height-1])
	})

	t.Run("adjacent full rows at the top", func(t *testing.T) {
		var b Board
		fillRow(&b, Height-1, Red)
		fillRow(&b, Height-2, Red)
		b.Set(0, 0, Blue)

		require.Equal(t, 2, b.ClearLines())
		require.Equal(t, 1, occupied(&b))
		require.Equal(t, Blue, b.At(0, 0))
	})

	t.Run("no full rows", func(t *testing.T) {
		var b Board
		for x := 0; x < Width-1; x++ {
			b.Set(x, 0, Red)
		}
		before := b.Clone()

		require.Equal(t, 0, b.ClearLines())
		require.Equal(t, before, b)
	})

	t.Run("columns stay grounded after compaction", func(t *testing.T) {
		var b Board
		heights := [Width]int{3, 5, 1, 7, 2, 6, 4, 8, 0, 2}
		for x, h := range heights {
			for y := 0; y < h; y++ {
				b.Set(x, y, Orange)
			}
		}
		fillRow(&b, 1, Orange)
		fillRow(&b, 2, Orange)

		require.Equal(t, 2, b.ClearLines())
		for x := 0; x < Width; x++ {
			top := -1
			for y := 0; y < Height; y++ {
				if b.At(x, y) != Empty {
					top = y
				}
			}
			for y := 0; y < top; y++ {
				require.NotEqual(t, Empty, b.At(x, y), "column %d has a gap at row %d", x, y)
			}
		}
	})
}

func TestBoardIsEmptyAndClone(t *testing.T) {
	var b Board
	require.True(t, b.IsEmpty())

	clone := b.Clone()
	clone.Set(9, 39, Cyan)
	require.True(t, b.IsEmpty(), "Clone must not share cells")
	require.False(t, clone.IsEmpty())
}

func TestBoardString(t *testing.T) {
	var b Board
	b.Set(0, 0, Red)
	s := b.String()
	require.Equal(t, spawnRows*(Width+1), len(s))
	require.Equal(t, "#.........\n", s[len(s)-(Width+1):])
}
