package game

import (
	"sort"

	"github.com/kamstrup/intmap"
)

// Placement is where and how a piece locks.
type Placement struct {
	X, Y        int
	Orientation int
}

// keyBias keeps box origins hanging off the left or bottom edge non-negative.
const keyBias = 8

func (p Placement) key() uint32 {
	return uint32(p.Orientation&3)<<16 | (uint32(p.X+keyBias)&0xff)<<8 | uint32(p.Y+keyBias)&0xff
}

// FindPossiblePlacements returns every distinct placement the falling piece
// can lock at through any sequence of shifts, rotations and single-row drops,
// sorted by orientation, then x, then y.
//
// The search walks a scratch cursor over the board and leaves the game
// untouched.
func (g *Game) FindPossiblePlacements() []Placement {
	if g.gameOver || !g.piece.fits(&g.board) {
		return nil
	}
	board := &g.board

	visited := intmap.New[uint32, struct{}](1024)
	landed := intmap.New[uint32, struct{}](64)
	var placements []Placement

	root := g.piece
	visited.Put(root.placement().key(), struct{}{})
	queue := []cursor{root}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]

		landing := c.dropped(board).placement()
		if _, ok := landed.Get(landing.key()); !ok {
			landed.Put(landing.key(), struct{}{})
			placements = append(placements, landing)
		}

		for _, next := range neighbors(board, c) {
			k := next.placement().key()
			if _, ok := visited.Get(k); ok {
				continue
			}
			visited.Put(k, struct{}{})
			queue = append(queue, next)
		}
	}

	sort.Slice(placements, func(i, j int) bool {
		a, b := placements[i], placements[j]
		if a.Orientation != b.Orientation {
			return a.Orientation < b.Orientation
		}
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Y < b.Y
	})
	return placements
}

// neighbors returns the cursors one legal move away from c.
func neighbors(board *Board, c cursor) []cursor {
	next := make([]cursor, 0, 5)
	if n, ok := c.moved(board, -1, 0); ok {
		next = append(next, n)
	}
	if n, ok := c.moved(board, 1, 0); ok {
		next = append(next, n)
	}
	if n, ok := c.rotated(board, CW); ok {
		next = append(next, n)
	}
	if n, ok := c.rotated(board, CCW); ok {
		next = append(next, n)
	}
	if n, ok := c.moved(board, 0, -1); ok {
		next = append(next, n)
	}
	return next
}
