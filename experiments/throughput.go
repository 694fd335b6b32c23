package experiments

import (
	"context"
	"time"

	"tetris/experiments/metrics"

	"github.com/rs/zerolog/log"
)

var parallelGoroutines = []int{1, 2, 4, 8, 16, 32}

// RunParallelizationExperiment plays the same seeds with a beam searcher at
// increasing goroutine counts. Every agent makes the same decisions, so only
// the search durations differ.
func RunParallelizationExperiment(ctx context.Context, config Config, weights []float64) (*Report, error) {
	configs := make([]metrics.AgentConfig, len(parallelGoroutines))
	for i, goroutines := range parallelGoroutines {
		configs[i] = metrics.AgentConfig{ID: i + 1, Goroutines: goroutines, BeamWidth: 2, Depth: 2, Weights: weights}
	}

	// Games run one at a time so goroutine counts do not compete for cores
	config.Workers = 1
	report, err := runExperiment(ctx, "parallelization", config, configs)
	if err != nil {
		return nil, err
	}

	for _, c := range configs {
		t := Throughput(report, c.ID)
		log.Info().Msgf("agent %d with %d goroutines: %.0f evaluations/s", c.ID, c.Goroutines, t)
	}
	return report, nil
}

// Throughput is the number of boards agent evaluated per second of search.
func Throughput(report *Report, agent int) float64 {
	games := make(map[int]bool)
	for _, g := range report.Games {
		if g.Agent == agent {
			games[g.ID] = true
		}
	}

	var evaluated int
	var elapsed time.Duration
	for _, m := range report.Moves {
		if games[m.Game] {
			evaluated += m.Evaluated
			elapsed += m.Duration
		}
	}
	if elapsed == 0 {
		return 0
	}
	return float64(evaluated) / elapsed.Seconds()
}
