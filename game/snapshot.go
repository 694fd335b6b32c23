package game

// Snapshot is a read-only view of a game, the only state heuristics get to see.
type Snapshot struct {
	Board        Board
	Piece        Family
	X, Y         int
	Orientation  int
	Held         Family // NoFamily when HasHeld is false
	HasHeld      bool
	CanSwap      bool
	Next         []Family
	LinesCleared int
	TSpin        bool
	PerfectClear bool
	GameOver     bool
}

// Snapshot copies the observable state, including up to next queued families.
func (g *Game) Snapshot(next int) Snapshot {
	return Snapshot{
		Board:        g.board,
		Piece:        g.piece.family,
		X:            g.piece.x,
		Y:            g.piece.y,
		Orientation:  g.piece.orientation,
		Held:         g.held,
		HasHeld:      g.held != NoFamily,
		CanSwap:      g.canSwap,
		Next:         g.bag.Peek(next),
		LinesCleared: g.linesCleared,
		TSpin:        g.tspin,
		PerfectClear: g.perfectClear,
		GameOver:     g.gameOver,
	}
}

// ColumnHeight returns one more than the row of the highest occupied cell in
// column x, or 0 for an empty column.
func (s *Snapshot) ColumnHeight(x int) int {
	for y := Height - 1; y >= 0; y-- {
		if s.Board[y][x] != Empty {
			return y + 1
		}
	}
	return 0
}

// Heights returns the height of every column.
func (s *Snapshot) Heights() [Width]int {
	var heights [Width]int
	for x := range heights {
		heights[x] = s.ColumnHeight(x)
	}
	return heights
}
