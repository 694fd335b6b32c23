package engine

import (
	"time"

	"tetris/experiments/metrics"
	"tetris/game"

	"github.com/rs/zerolog/log"
)

var _ Engine = (*Local)(nil)

type Local struct {
	Game  *game.Game
	Agent Agent
	seed  uint64
}

// LocalEngine sets up a game that agent plays alone. A non-positive
// maxPieces falls back to MaxPieces.
func LocalEngine(agent Agent, scorer game.Scorer, seed uint64, maxPieces int) *Local {
	if agent == nil {
		panic("engine requires an agent")
	}
	if maxPieces <= 0 {
		maxPieces = MaxPieces
	}
	return &Local{
		Game:  game.New(scorer, seed, game.WithPieceBudget(maxPieces)),
		Agent: agent,
		seed:  seed,
	}
}

// Run executes the game loop until the game is over.
func (e *Local) Run() (metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{Seed: e.seed, StartTime: time.Now()}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("game with seed %d is starting", e.seed)

	for step := 1; !e.Game.GameOver(); step++ {
		piece := e.Game.Piece()
		decision, searchMetric, ok := e.Agent.FindMove(e.Game)
		if !ok {
			log.Debug().Msgf("no placement for %s at step %d", piece, step)
			break
		}

		if decision.Swap {
			if !e.Game.Swap().OK() {
				log.Warn().Msgf("agent asked for a rejected swap at step %d", step)
				break
			}
			piece = e.Game.Piece()
		}
		score, ok := e.Game.Place(decision.Placement)
		if !ok {
			log.Warn().Msgf("agent chose an invalid placement %+v for %s at step %d", decision.Placement, piece, step)
			break
		}

		gameMetric.Score += score
		gameMetric.Pieces++
		gameMetric.Lines += e.Game.LinesCleared()
		if e.Game.TSpin() {
			gameMetric.TSpins++
		}
		if e.Game.PerfectClear() {
			gameMetric.PerfectClears++
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Piece:        piece.String(),
			Swap:         decision.Swap,
			Score:        score,
			SearchMetric: searchMetric,
		})
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)

	log.Debug().Msgf("game with seed %d over after %d pieces with score %g", e.seed, gameMetric.Pieces, gameMetric.Score)

	return gameMetric, moveMetrics
}
