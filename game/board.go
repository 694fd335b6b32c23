package game

import "strings"

const (
	Width  = 10
	Height = 40

	spawnRows = 22
)

// Board is the grid of frozen cells, indexed [y][x] with y = 0 at the bottom.
// It is a value type: assigning a Board copies the grid.
type Board [Height][Width]Color

// At returns the cell at (x, y). Coordinates must be on the board.
func (b *Board) At(x, y int) Color {
	return b[y][x]
}

// Set overwrites the cell at (x, y). Coordinates must be on the board.
func (b *Board) Set(x, y int, c Color) {
	b[y][x] = c
}

// Collides reports whether shape placed with its box origin at (x, y) leaves
// the grid or overlaps a frozen cell.
func (b *Board) Collides(shape Shape, x, y int) bool {
	for _, p := range shape.Points {
		px, py := x+p.X, y+p.Y
		if px < 0 || px >= Width || py < 0 || py >= Height {
			return true
		}
		if b[py][px] != Empty {
			return true
		}
	}
	return false
}

// Freeze writes color into every cell of shape placed at (x, y).
//
// The caller must have checked Collides first. Freeze does not check again:
// an overlapping placement silently overwrites frozen cells and an
// out-of-range placement panics.
func (b *Board) Freeze(shape Shape, color Color, x, y int) {
	for _, p := range shape.Points {
		b[y+p.Y][x+p.X] = color
	}
}

func (b *Board) rowFull(y int) bool {
	for x := 0; x < Width; x++ {
		if b[y][x] == Empty {
			return false
		}
	}
	return true
}

// ClearLines removes every full row, shifting the rows above it down and
// refilling the top with empty rows. It returns the number of rows removed.
func (b *Board) ClearLines() int {
	cleared := 0
	for y := 0; y < Height; {
		if !b.rowFull(y) {
			y++
			continue
		}
		copy(b[y:Height-1], b[y+1:Height])
		b[Height-1] = [Width]Color{}
		cleared++
	}
	return cleared
}

// IsEmpty reports whether no cell is occupied.
func (b *Board) IsEmpty() bool {
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if b[y][x] != Empty {
				return false
			}
		}
	}
	return true
}

// Clone returns a copy of the grid.
func (b *Board) Clone() Board {
	return *b
}

// String draws the rows up to the spawn area top-down, '#' for occupied and
// '.' for empty.
func (b *Board) String() string {
	var sb strings.Builder
	for y := spawnRows - 1; y >= 0; y-- {
		for x := 0; x < Width; x++ {
			if b[y][x] == Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('#')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
