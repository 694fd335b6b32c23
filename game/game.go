package game

import "fmt"

// cursor is the position of the falling piece.
type cursor struct {
	family      Family
	orientation int
	x, y        int
}

func (c cursor) shape() Shape {
	return Catalog(c.family).Shape(c.orientation)
}

func (c cursor) fits(b *Board) bool {
	return !b.Collides(c.shape(), c.x, c.y)
}

func (c cursor) moved(b *Board, dx, dy int) (cursor, bool) {
	if b.Collides(c.shape(), c.x+dx, c.y+dy) {
		return c, false
	}
	c.x += dx
	c.y += dy
	return c, true
}

// rotated resolves a rotation with the first collision-free kick.
func (c cursor) rotated(b *Board, r Rotation) (cursor, bool) {
	n := c.family.Orientations()
	orientation := ((c.orientation+int(r))%n + n) % n
	shape := Catalog(c.family).Shape(orientation)
	for _, k := range Wallkicks(c.family, r, c.orientation) {
		if !b.Collides(shape, c.x+k.DX, c.y+k.DY) {
			return cursor{family: c.family, orientation: orientation, x: c.x + k.DX, y: c.y + k.DY}, true
		}
	}
	return c, false
}

func (c cursor) dropped(b *Board) cursor {
	for {
		next, ok := c.moved(b, 0, -1)
		if !ok {
			return c
		}
		c = next
	}
}

func (c cursor) placement() Placement {
	return Placement{X: c.x, Y: c.y, Orientation: c.orientation}
}

var diagonals = [...]Kick{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}

// SwapOutcome is the result of Game.Swap.
type SwapOutcome int

const (
	SwapRejected  SwapOutcome = iota // hold unavailable or game over
	SwapHeld                         // hold was empty; the next queued piece became active
	SwapExchanged                    // active and held pieces traded places
)

// OK reports whether the swap changed the active piece.
func (o SwapOutcome) OK() bool {
	return o != SwapRejected
}

type Option func(g *Game)

// WithPieceBudget ends the game once n pieces have been locked.
func WithPieceBudget(n int) Option {
	return func(g *Game) {
		if n > 0 {
			g.budget = n
		}
	}
}

// Game is a single-player match: the board, the piece supply, the falling
// piece and the hold slot. A Game is not safe for concurrent use; Clone it
// before exploring futures from another goroutine.
type Game struct {
	board        Board
	bag          *Bag
	scorer       Scorer
	piece        cursor
	held         Family
	canSwap      bool
	gameOver     bool
	budget       int // pieces left before the game ends, -1 when unbounded
	locked       int
	linesCleared int
	tspin        bool
	perfectClear bool
}

// New starts a match scored by scorer whose piece sequence is determined by seed.
func New(scorer Scorer, seed uint64, options ...Option) *Game {
	if scorer == nil {
		panic("game requires a scorer")
	}
	g := &Game{
		bag:     NewBag(seed),
		scorer:  scorer,
		held:    NoFamily,
		canSwap: true,
		budget:  -1,
	}
	for _, option := range options {
		option(g)
	}
	g.spawn(g.bag.Next())
	return g
}

func spawnCursor(f Family) cursor {
	size := Catalog(f).Shapes[0].Size
	y := 19
	if size == 2 {
		y = 20
	}
	return cursor{family: f, x: 5 - (size+1)/2, y: y}
}

func (g *Game) spawn(f Family) {
	g.piece = spawnCursor(f)
	if !g.piece.fits(&g.board) {
		g.gameOver = true
	}
}

// Move shifts the falling piece by (dx, dy). It fails without side effects
// when the game is over or the target position collides.
func (g *Game) Move(dx, dy int) bool {
	if g.gameOver {
		return false
	}
	next, ok := g.piece.moved(&g.board, dx, dy)
	if ok {
		g.piece = next
	}
	return ok
}

// Rotate turns the falling piece, trying each wall kick in order.
func (g *Game) Rotate(r Rotation) bool {
	if g.gameOver {
		return false
	}
	next, ok := g.piece.rotated(&g.board, r)
	if ok {
		g.piece = next
	}
	return ok
}

// HardDrop locks the falling piece at its lowest reachable row and returns
// the points awarded by the scorer. It fails when the game is over or the
// piece was teleported into a colliding position.
func (g *Game) HardDrop() (float64, bool) {
	if g.gameOver || !g.piece.fits(&g.board) {
		return 0, false
	}
	g.piece = g.piece.dropped(&g.board)
	tspin := g.piece.family == T && g.wedged()

	piece := Catalog(g.piece.family)
	g.board.Freeze(g.piece.shape(), piece.Color, g.piece.x, g.piece.y)
	lines := g.board.ClearLines()
	perfect := g.board.IsEmpty()

	g.spawn(g.bag.Next())
	g.canSwap = true
	g.linesCleared = lines
	g.tspin = tspin
	g.perfectClear = perfect
	g.locked++
	if g.budget > 0 {
		g.budget--
		if g.budget == 0 {
			g.gameOver = true
		}
	}

	return g.scorer.ScoreDrop(lines, tspin, perfect), true
}

// wedged reports whether the piece cannot move one cell diagonally in any
// of the four directions.
func (g *Game) wedged() bool {
	shape := g.piece.shape()
	for _, d := range diagonals {
		if !g.board.Collides(shape, g.piece.x+d.DX, g.piece.y+d.DY) {
			return false
		}
	}
	return true
}

// Swap puts the falling piece in the hold slot. An empty slot takes the
// piece and the next queued piece becomes active; otherwise the held piece
// comes back in its spawn orientation. Hold is available again after the
// next successful HardDrop.
func (g *Game) Swap() SwapOutcome {
	if g.gameOver || !g.canSwap {
		return SwapRejected
	}
	current := g.piece.family
	g.canSwap = false
	if g.held == NoFamily {
		g.held = current
		g.spawn(g.bag.Next())
		return SwapHeld
	}
	next := g.held
	g.held = current
	g.spawn(next)
	return SwapExchanged
}

// SetPosition teleports the falling piece. The position is not validated
// here; HardDrop rejects it if it collides.
func (g *Game) SetPosition(x, y, orientation int) {
	if g.gameOver {
		return
	}
	n := g.piece.family.Orientations()
	g.piece.x = x
	g.piece.y = y
	g.piece.orientation = (orientation%n + n) % n
}

// Place teleports the falling piece to p and hard drops it.
func (g *Game) Place(p Placement) (float64, bool) {
	g.SetPosition(p.X, p.Y, p.Orientation)
	return g.HardDrop()
}

// Clone returns an independent copy of the game. Piece definitions and the
// scorer are shared; the board, queue and randomizer state are copied.
func (g *Game) Clone() *Game {
	clone := *g
	clone.bag = g.bag.Clone()
	return &clone
}

func (g *Game) GameOver() bool { return g.gameOver }

func (g *Game) CanSwap() bool { return g.canSwap }

// Piece returns the falling piece's family.
func (g *Game) Piece() Family { return g.piece.family }

// Position returns where the falling piece currently is.
func (g *Game) Position() Placement { return g.piece.placement() }

// Held returns the family in the hold slot, if any.
func (g *Game) Held() (Family, bool) { return g.held, g.held != NoFamily }

// Next returns up to n upcoming families.
func (g *Game) Next(n int) []Family { return g.bag.Peek(n) }

// Board returns a copy of the frozen cells.
func (g *Game) Board() Board { return g.board }

// LinesCleared is the number of rows removed by the last hard drop.
func (g *Game) LinesCleared() int { return g.linesCleared }

// TSpin reports whether the last hard drop was a T-spin.
func (g *Game) TSpin() bool { return g.tspin }

// PerfectClear reports whether the last hard drop emptied the board.
func (g *Game) PerfectClear() bool { return g.perfectClear }

// Locked is the number of pieces locked so far.
func (g *Game) Locked() int { return g.locked }

// RemainingPieces returns the pieces left before the budget ends the game,
// or -1 when the game has no budget.
func (g *Game) RemainingPieces() int { return g.budget }

func (g *Game) String() string {
	held, _ := g.Held()
	return fmt.Sprintf("piece=%s at (%d,%d) o=%d held=%s next=%v\n%s",
		g.piece.family, g.piece.x, g.piece.y, g.piece.orientation, held, g.Next(5), g.board.String())
}
