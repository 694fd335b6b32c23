package experiments

import (
	"context"
	"fmt"
	"strings"

	"tetris/engine"
	"tetris/experiments/metrics"
	"tetris/game"
	"tetris/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

// Config holds the settings shared by every agent of an experiment.
type Config struct {
	Root      string // records go to Root/experiments/<name>/<run id>
	Games     int    // per agent
	Workers   int    // games played concurrently
	MaxPieces int
	Seed      uint64 // master seed the game seeds are drawn from
}

// Report collects the records of every game played in an experiment.
type Report struct {
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
}

// Fitness is the summed score of every game agent played.
func (r *Report) Fitness(agent int) float64 {
	var fitness float64
	for _, g := range r.Games {
		if g.Agent == agent {
			fitness += g.Score
		}
	}
	return fitness
}

// ScorerByName resolves the scorer named in an agent config.
func ScorerByName(name string) (game.Scorer, error) {
	switch strings.ToLower(name) {
	case "", "classic":
		return game.ClassicScorer{}, nil
	case "modern":
		return game.ModernScorer{}, nil
	default:
		return nil, fmt.Errorf("unknown scorer %q", name)
	}
}

// Seeds draws n game seeds from master. Every agent plays the same seeds.
func Seeds(master uint64, n int) []uint64 {
	rng := rand.New(rand.NewSource(master))
	seeds := make([]uint64, n)
	for i := range seeds {
		seeds[i] = rng.Uint64()
	}
	return seeds
}

// RunEvaluation plays config.Games games with a single agent and stores the records.
func RunEvaluation(ctx context.Context, config Config, agent metrics.AgentConfig) (*Report, error) {
	return runExperiment(ctx, "evaluation", config, []metrics.AgentConfig{agent})
}

// RunBeamExperiment compares the greedy searcher with beam lookaheads of
// increasing depth.
func RunBeamExperiment(ctx context.Context, config Config, weights []float64) (*Report, error) {
	configs := []metrics.AgentConfig{
		{ID: 1, Goroutines: 4, BeamWidth: 1, Depth: 1, Weights: weights}, // Greedy baseline
		{ID: 2, Goroutines: 4, BeamWidth: 2, Depth: 2, EvalLimit: 200, Weights: weights},
		{ID: 3, Goroutines: 4, BeamWidth: 4, Depth: 2, EvalLimit: 400, Weights: weights},
		{ID: 4, Goroutines: 4, BeamWidth: 4, Depth: 3, EvalLimit: 400, Weights: weights},
		{ID: 5, Goroutines: 4, BeamWidth: 4, Depth: 2, EvalLimit: 400, Hold: true, Weights: weights},
	}
	return runExperiment(ctx, "beam", config, configs)
}

// Evaluate plays config.Games games for each agent, spreading them over
// config.Workers goroutines. Game and move records come back ordered by
// agent and seed regardless of completion order.
func Evaluate(ctx context.Context, config Config, agents []metrics.AgentConfig) (*Report, error) {
	if config.Games <= 0 {
		return nil, fmt.Errorf("experiment needs at least one game, got %d", config.Games)
	}
	for _, agent := range agents {
		if _, err := ScorerByName(agent.Scorer); err != nil {
			return nil, fmt.Errorf("agent %d: %w", agent.ID, err)
		}
		if len(agent.Weights) != len(searcher.DefaultHeuristic()) {
			return nil, fmt.Errorf("agent %d: got %d weights for %d features", agent.ID, len(agent.Weights), len(searcher.DefaultHeuristic()))
		}
	}

	seeds := Seeds(config.Seed, config.Games)
	games := make([]metrics.GameRecord, len(agents)*len(seeds))
	moves := make([][]metrics.MoveMetric, len(games))

	g, ctx := errgroup.WithContext(ctx)
	if config.Workers > 0 {
		g.SetLimit(config.Workers)
	}
	for ai, agent := range agents {
		agent := agent
		for si, seed := range seeds {
			si, seed := si, seed
			idx := ai*len(seeds) + si
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				log.Debug().Msgf("starting agent %d game %d of %d...", agent.ID, si+1, len(seeds))

				gameMetric, moveMetrics, err := runGame(agent, seed, config.MaxPieces)
				if err != nil {
					return fmt.Errorf("agent %d game %d: %w", agent.ID, si+1, err)
				}
				games[idx] = metrics.GameRecord{ID: idx + 1, Agent: agent.ID, GameMetric: gameMetric}
				moves[idx] = moveMetrics

				log.Info().Msgf("completed agent %d game %d of %d with score %g after %d pieces", agent.ID, si+1, len(seeds), gameMetric.Score, gameMetric.Pieces)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{Games: games}
	for idx, mms := range moves {
		for _, mm := range mms {
			report.Moves = append(report.Moves, metrics.MoveRecord{Game: idx + 1, MoveMetric: mm})
		}
	}
	return report, nil
}

func runExperiment(ctx context.Context, name string, config Config, agents []metrics.AgentConfig) (*Report, error) {
	log.Info().Msgf("starting %s experiment...", name)

	report, err := Evaluate(ctx, config, agents)
	if err != nil {
		return nil, fmt.Errorf("%s experiment failed: %w", name, err)
	}
	for _, agent := range agents {
		log.Info().Msgf("agent %d fitness over %d games: %g", agent.ID, config.Games, report.Fitness(agent.ID))
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(config.Root, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(agents)
	if err != nil {
		return nil, fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(report.Games)
	if err != nil {
		return nil, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(report.Moves)
	if err != nil {
		return nil, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())

	return report, nil
}

// runGame plays a single game with the agent described by config.
func runGame(config metrics.AgentConfig, seed uint64, maxPieces int) (metrics.GameMetric, []metrics.MoveMetric, error) {
	scorer, err := ScorerByName(config.Scorer)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	e := engine.LocalEngine(createSearcher(config), scorer, seed, maxPieces)
	gameMetric, moveMetrics := e.Run()
	return gameMetric, moveMetrics, nil
}

func createSearcher(config metrics.AgentConfig) *searcher.Searcher {
	options := []searcher.Option{}

	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}
	if config.Depth > 1 {
		options = append(options, searcher.WithBeam(max(config.BeamWidth, 1), config.Depth))
	}
	if config.EvalLimit > 0 {
		options = append(options, searcher.WithEvalLimit(config.EvalLimit))
	}
	if config.Hold {
		options = append(options, searcher.WithHold())
	}

	options = append(options, searcher.WithMetrics())
	return searcher.New(config.Weights, options...)
}
