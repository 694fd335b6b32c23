package engine

import (
	"tetris/experiments/metrics"
	"tetris/game"
	"tetris/searcher"
)

// MaxPieces caps a game when the caller does not set a budget.
const MaxPieces = 10000

// Agent chooses the next move for a live game without modifying it.
type Agent interface {
	FindMove(g *game.Game) (searcher.Decision, metrics.SearchMetric, bool)
}

type Engine interface {
	// Run plays until the game is over or the piece budget is spent
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
